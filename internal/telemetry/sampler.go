package telemetry

import (
	"github.com/Borislavv/go-ash-engine/internal/replacer"
)

type sampler struct {
	replacer replacer.Replacer
}

func newSampler(r replacer.Replacer) sampler {
	return sampler{replacer: r}
}

// snapshot holds cumulative counters (monotonic).
type snapshot struct {
	accesses  uint64
	evictions uint64
	removals  uint64
}

func (s sampler) snapshot() snapshot {
	accesses, evictions, removals := s.replacer.Metrics()

	return snapshot{
		accesses:  uint64(max(accesses, 0)),
		evictions: uint64(max(evictions, 0)),
		removals:  uint64(max(removals, 0)),
	}
}

// deltaSnapshot converts cumulative snapshots to per-interval deltas.
// If counters reset (cur < prev), it treats cur as the delta.
func deltaSnapshot(prev, cur snapshot) snapshot {
	return snapshot{
		accesses:  delta(prev.accesses, cur.accesses),
		evictions: delta(prev.evictions, cur.evictions),
		removals:  delta(prev.removals, cur.removals),
	}
}

func delta(prev, cur uint64) uint64 {
	if cur >= prev {
		return cur - prev
	}
	return cur
}
