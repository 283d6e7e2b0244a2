package replacer

import (
	"math/rand"
	"testing"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"github.com/stretchr/testify/require"
)

// TestLRUK_K1MatchesClassicLRU pits the policy with k=1 against a classic
// LRU list: the backward 1-distance victim is exactly the least recently
// used frame, so eviction order must match simplelru's.
func TestLRUK_K1MatchesClassicLRU(t *testing.T) {
	const frames = 32
	r := NewLRUK(frames, 1)
	oracle, err := simplelru.NewLRU[int32, struct{}](frames, nil)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		id := int32(rng.Intn(frames))
		require.NoError(t, r.RecordAccess(id, Get))
		oracle.Add(id, struct{}{})
	}
	for id := int32(0); id < frames; id++ {
		require.NoError(t, r.SetEvictable(id, true))
	}

	for oracle.Len() > 0 {
		want, _, ok := oracle.RemoveOldest()
		require.True(t, ok)

		got, evicted := r.Evict()
		require.True(t, evicted)
		require.Equal(t, want, got)
	}

	_, evicted := r.Evict()
	require.False(t, evicted)
}
