package help

import (
	"time"

	"github.com/Borislavv/go-ash-engine/config"
)

func Cfg(frames, k uint64, leadingBits int16) *config.Engine {
	cfg := &config.Engine{
		Replacer: config.ReplacerCfg{
			Frames: frames,
			K:      k,
		},
		Sketch: config.SketchCfg{
			LeadingBits: leadingBits,
		},
		IsTelemetryLogsEnabled: true,
		TelemetryLogsInterval:  50 * time.Millisecond,
	}
	cfg.AdjustConfig()
	return cfg
}
