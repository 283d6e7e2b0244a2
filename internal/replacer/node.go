package replacer

// node is exclusively owned by the replacer store; it never leaks outside
// a single call.
type node struct {
	id        int32
	history   []uint64 // newest first, at most k entries
	evictable bool
}

// record pushes a fresh timestamp at the front of the history, trimming it
// down to the k most recent accesses.
func (n *node) record(ts, k uint64) {
	if uint64(len(n.history)) < k {
		n.history = append(n.history, 0)
	}
	copy(n.history[1:], n.history)
	n.history[0] = ts
}

// distance returns the backward k-distance relative to the given clock.
// A frame with fewer than k retained accesses reports infinite=true and
// the dist value is meaningless.
func (n *node) distance(clock, k uint64) (dist uint64, infinite bool) {
	if uint64(len(n.history)) < k {
		return 0, true
	}
	return clock - n.history[k-1], false
}

// oldest is the oldest retained timestamp, the canonical LRU-K tie-breaker.
func (n *node) oldest() uint64 {
	return n.history[len(n.history)-1]
}
