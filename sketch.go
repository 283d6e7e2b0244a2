package ashengine

import (
	"github.com/Borislavv/go-ash-engine/config"
	"github.com/Borislavv/go-ash-engine/internal/sketch"
)

// Key restricts sketch inputs: int64 values hash as themselves, strings are
// hashed over their raw bytes.
type Key = sketch.Key

type Estimator[K Key] = sketch.Estimator[K]

type HLL[K Key] = sketch.HLL[K]

type HLLPresto[K Key] = sketch.HLLPresto[K]

// NewHLL builds a classical HyperLogLog with 2^cfg.Sketch.LeadingBits
// registers.
func NewHLL[K Key](cfg *config.Engine) *HLL[K] {
	return sketch.NewHLL[K](cfg.Sketch.LeadingBits)
}

// NewHLLPresto builds a Presto-layout HyperLogLog (packed 4-bit dense
// registers plus a sparse 3-bit overflow map).
func NewHLLPresto[K Key](cfg *config.Engine) *HLLPresto[K] {
	return sketch.NewHLLPresto[K](cfg.Sketch.LeadingBits)
}
