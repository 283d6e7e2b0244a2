package ashengine

import (
	"context"
	"log/slog"
	"testing"

	"github.com/Borislavv/go-ash-engine/config"
	"github.com/stretchr/testify/require"
)

// TestEngine_Close cancels context and stops background workers.
func TestEngine_Close(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Engine{
		Replacer: config.ReplacerCfg{
			Frames: 16,
			K:      2,
		},
		Sketch: config.SketchCfg{
			LeadingBits: 10,
		},
		IsTelemetryLogsEnabled: true,
	}
	cfg.AdjustConfig()

	logger := slog.Default()
	engine := New(ctx, cfg, logger)

	require.NoError(t, engine.RecordAccess(0, AccessGet))
	require.NoError(t, engine.SetEvictable(0, true))
	require.Equal(t, uint64(1), engine.Size())

	require.NoError(t, engine.Close())
}

// TestEngine_SketchObservation registers facade-built sketches with the
// telemetry worker without disturbing their estimates.
func TestEngine_SketchObservation(t *testing.T) {
	cfg := &config.Engine{
		Replacer: config.ReplacerCfg{Frames: 8, K: 2},
		Sketch:   config.SketchCfg{LeadingBits: 6},
	}
	cfg.AdjustConfig()

	engine := New(context.Background(), cfg, slog.Default())
	defer func() { _ = engine.Close() }()

	hll := NewHLL[string](cfg)
	presto := NewHLLPresto[string](cfg)
	engine.Observe("classical", hll)
	engine.Observe("presto", presto)

	hll.AddElem("page-1")
	presto.AddElem("page-1")
	hll.ComputeCardinality()
	presto.ComputeCardinality()

	require.GreaterOrEqual(t, hll.GetCardinality(), uint64(1))
	require.GreaterOrEqual(t, presto.GetCardinality(), uint64(1))
}
