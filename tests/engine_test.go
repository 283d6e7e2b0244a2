package tests

import (
	"context"
	"fmt"
	"testing"
	"time"

	ashengine "github.com/Borislavv/go-ash-engine"
	"github.com/Borislavv/go-ash-engine/tests/help"
	"github.com/stretchr/testify/require"
)

// TestEngine_BufferPoolScenario drives the engine the way a buffer pool
// would: pages are pinned on access, unpinned once released, and the
// replacer hands back victims in backward k-distance order.
func TestEngine_BufferPoolScenario(t *testing.T) {
	engine := ashengine.New(context.Background(), help.Cfg(7, 2, 10), help.Logger())
	defer func() { _ = engine.Close() }()

	// Two access rounds over six frames, then release all of them.
	for round := 0; round < 2; round++ {
		for id := int32(1); id <= 6; id++ {
			require.NoError(t, engine.RecordAccess(id, ashengine.AccessGet))
		}
	}
	for id := int32(1); id <= 6; id++ {
		require.NoError(t, engine.SetEvictable(id, true))
	}

	for _, want := range []int32{1, 2, 3} {
		got, ok := engine.Evict()
		require.True(t, ok)
		require.Equal(t, want, got)
	}

	// Pin frame 4 again: it leaves the candidate set until released.
	require.NoError(t, engine.SetEvictable(4, false))

	got, ok := engine.Evict()
	require.True(t, ok)
	require.Equal(t, int32(5), got)

	require.NoError(t, engine.SetEvictable(4, true))
	require.NoError(t, engine.Remove(4))
	require.Equal(t, uint64(1), engine.Size())
}

// TestEngine_TelemetryObservesSketches lets the stat worker tick a couple
// of times while sketches are being fed; the run must stay quiet and the
// estimates sane.
func TestEngine_TelemetryObservesSketches(t *testing.T) {
	engine := ashengine.New(context.Background(), help.Cfg(16, 2, 10), help.Logger())
	defer func() { _ = engine.Close() }()

	hll := ashengine.NewHLL[string](help.Cfg(16, 2, 10))
	presto := ashengine.NewHLLPresto[string](help.Cfg(16, 2, 10))
	engine.Observe("classical", hll)
	engine.Observe("presto", presto)

	const n = 5_000
	for i := 0; i < n; i++ {
		key := fmt.Sprintf("page-%d", i)
		hll.AddElem(key)
		presto.AddElem(key)
	}
	hll.ComputeCardinality()
	presto.ComputeCardinality()

	time.Sleep(3 * engine.Interval())

	require.InDelta(t, float64(n), float64(hll.GetCardinality()), 0.3*n)
	require.InDelta(t, float64(n), float64(presto.GetCardinality()), 0.3*n)
}

// TestEngine_ConfigDefaults fills the telemetry interval when the yaml
// leaves it out.
func TestEngine_ConfigDefaults(t *testing.T) {
	cfg := help.Cfg(8, 0, -1)
	require.Equal(t, uint64(1), cfg.Replacer.K)
	require.Equal(t, int16(0), cfg.Sketch.LeadingBits)

	engine := ashengine.New(context.Background(), cfg, help.Logger())
	defer func() { _ = engine.Close() }()

	require.NoError(t, engine.RecordAccess(0, ashengine.AccessScan))
	require.NoError(t, engine.SetEvictable(0, true))

	got, ok := engine.Evict()
	require.True(t, ok)
	require.Equal(t, int32(0), got)
}
