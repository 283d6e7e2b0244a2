package replacer

import "sync/atomic"

type replacerCounters struct {
	accesses  atomic.Int64
	evictions atomic.Int64
	removals  atomic.Int64
}

func (c *replacerCounters) snapshot() (accesses, evictions, removals int64) {
	return c.accesses.Load(), c.evictions.Load(), c.removals.Load()
}

func newReplacerCounters() *replacerCounters {
	return &replacerCounters{
		accesses:  atomic.Int64{},
		evictions: atomic.Int64{},
		removals:  atomic.Int64{},
	}
}
