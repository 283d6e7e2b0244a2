package sketch

import "sync/atomic"

type sketchCounters struct {
	adds     atomic.Int64
	computes atomic.Int64
}

func (c *sketchCounters) snapshot() (adds, computes int64) {
	return c.adds.Load(), c.computes.Load()
}

func newSketchCounters() *sketchCounters {
	return &sketchCounters{
		adds:     atomic.Int64{},
		computes: atomic.Int64{},
	}
}
