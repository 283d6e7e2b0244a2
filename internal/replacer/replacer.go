package replacer

import (
	"errors"
	"fmt"
	"sync"
)

// AccessType classifies the buffer-pool access that triggered RecordAccess.
// The policy accepts it but does not act on it yet; reserved for future
// access-aware variants.
type AccessType int

const (
	Unknown AccessType = iota
	Get
	Scan
	Lookup
)

var ErrInvalidFrame = errors.New("invalid frame id")

type Replacer interface {
	RecordAccess(frameID int32, at AccessType) error
	SetEvictable(frameID int32, evictable bool) error
	Remove(frameID int32) error
	Evict() (frameID int32, ok bool)
	Size() uint64
	Metrics() (accesses, evictions, removals int64)
}

// LRUK selects eviction victims by largest backward k-distance: the gap
// between the logical clock and the k-th most recent access of a frame.
// Frames with fewer than k recorded accesses have infinite distance and are
// always preferred; ties fall back to the oldest retained timestamp.
type LRUK struct {
	mu       sync.Mutex
	frames   uint64
	k        uint64
	clock    uint64
	currSize uint64
	nodes    map[int32]*node
	counters *replacerCounters
}

func NewLRUK(frames, k uint64) *LRUK {
	if k < 1 {
		k = 1
	}
	return &LRUK{
		frames:   frames,
		k:        k,
		nodes:    make(map[int32]*node, frames),
		counters: newReplacerCounters(),
	}
}

// RecordAccess advances the logical clock and stamps the frame's history,
// tracking the frame as non-evictable if it is seen for the first time.
func (r *LRUK) RecordAccess(frameID int32, at AccessType) error {
	if err := r.validate(frameID); err != nil {
		return fmt.Errorf("record access: %w", err)
	}
	_ = at // reserved

	r.mu.Lock()
	defer r.mu.Unlock()

	r.clock++
	n, ok := r.nodes[frameID]
	if !ok {
		n = &node{id: frameID}
		r.nodes[frameID] = n
	}
	n.record(r.clock, r.k)
	r.counters.accesses.Add(1)
	return nil
}

// SetEvictable toggles eviction eligibility of a tracked frame. Untracked
// frames are left alone; repeating the current state changes nothing.
func (r *LRUK) SetEvictable(frameID int32, evictable bool) error {
	if err := r.validate(frameID); err != nil {
		return fmt.Errorf("set evictable: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.nodes[frameID]
	if !ok || n.evictable == evictable {
		return nil
	}
	n.evictable = evictable
	if evictable {
		r.currSize++
	} else {
		r.currSize--
	}
	return nil
}

// Remove drops a specific evictable frame with its whole access history,
// regardless of its backward k-distance. Removing a tracked non-evictable
// frame is an error; removing an untracked one is a no-op.
func (r *LRUK) Remove(frameID int32) error {
	if err := r.validate(frameID); err != nil {
		return fmt.Errorf("remove: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.nodes[frameID]
	if !ok {
		return nil
	}
	if !n.evictable {
		return fmt.Errorf("remove: frame %d is not evictable: %w", frameID, ErrInvalidFrame)
	}
	delete(r.nodes, frameID)
	r.currSize--
	r.counters.removals.Add(1)
	return nil
}

// Evict scans evictable frames for the largest backward k-distance victim
// and discards it together with its history. Infinite distances (fewer than
// k accesses) beat every finite one; among ties the frame whose oldest
// retained timestamp is furthest in the past wins.
func (r *LRUK) Evict() (int32, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currSize == 0 {
		return 0, false
	}

	var victim *node
	var victimDist uint64
	var victimInf bool
	for _, n := range r.nodes {
		if !n.evictable {
			continue
		}
		dist, inf := n.distance(r.clock, r.k)
		if victim == nil || beats(dist, inf, n.oldest(), victimDist, victimInf, victim.oldest()) {
			victim, victimDist, victimInf = n, dist, inf
		}
	}

	delete(r.nodes, victim.id)
	r.currSize--
	r.counters.evictions.Add(1)
	return victim.id, true
}

func (r *LRUK) Size() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currSize
}

func (r *LRUK) Metrics() (accesses, evictions, removals int64) {
	return r.counters.snapshot()
}

// validate is called before the lock is taken: invalid ids never touch state.
func (r *LRUK) validate(frameID int32) error {
	if frameID < 0 || uint64(frameID) >= r.frames {
		return fmt.Errorf("%w: %d (capacity %d)", ErrInvalidFrame, frameID, r.frames)
	}
	return nil
}

// beats reports whether the candidate ordering key wins over the current
// victim's. Infinity is kept as an explicit flag rather than a magic zero so
// the total order stays honest for freshly accessed frames.
func beats(dist uint64, inf bool, oldest, vDist uint64, vInf bool, vOldest uint64) bool {
	if inf != vInf {
		return inf
	}
	if !inf && dist != vDist {
		return dist > vDist
	}
	return oldest < vOldest
}
