package sketch

import (
	"math"
	"math/bits"

	"github.com/rs/zerolog/log"
)

const (
	// hashBits is the width of the hash every estimator consumes.
	hashBits = 64

	// alpha is the bias-correction constant of the harmonic-mean estimator.
	alpha = 0.79402
)

// Estimator is the shared surface of both register layouts.
type Estimator[K Key] interface {
	AddElem(v K)
	ComputeCardinality()
	GetCardinality() uint64
	Metrics() (adds, computes int64)
	Footprint() uint64
}

// HLL is the classical HyperLogLog: one byte-wide register per bucket
// holding the maximum leading-one position seen for hashes routed there.
//
// Register state is not synchronized; callers serialize AddElem against
// ComputeCardinality/GetCardinality. The counters are atomic so telemetry
// may sample concurrently.
type HLL[K Key] struct {
	registers   []uint8
	leadingBits uint8
	cardinality uint64
	counters    *sketchCounters
}

// NewHLL allocates 2^leadingBits zeroed registers; a negative precision is
// clamped to zero (a single register).
func NewHLL[K Key](leadingBits int16) *HLL[K] {
	if leadingBits < 0 {
		leadingBits = 0
	}
	m := uint64(1) << leadingBits
	log.Debug().Int16("leading_bits", leadingBits).Uint64("registers", m).Msg("hyperloglog initialized")
	return &HLL[K]{
		registers:   make([]uint8, m),
		leadingBits: uint8(leadingBits),
		counters:    newSketchCounters(),
	}
}

// AddElem routes the element's hash to a register by its top leadingBits
// bits and max-updates that register with the leading-one position of the
// remaining window.
func (h *HLL[K]) AddElem(v K) {
	hash := hashOf(v)
	j := bucketIndex(hash, h.leadingBits)
	rho := leadingOnePosition(hash, h.leadingBits)
	if rho > h.registers[j] {
		h.registers[j] = rho
	}
	h.counters.adds.Add(1)
}

// ComputeCardinality refreshes the cached estimate from current register
// state: floor(alpha * m^2 / sum(2^-reg)). No small- or large-range
// correction is applied.
func (h *HLL[K]) ComputeCardinality() {
	m := float64(len(h.registers))
	var sum float64
	for _, reg := range h.registers {
		sum += math.Pow(2, -float64(reg))
	}
	h.cardinality = uint64(math.Floor(alpha * m * m / sum))
	h.counters.computes.Add(1)
	log.Debug().Uint64("cardinality", h.cardinality).Float64("sum", sum).Msg("hyperloglog cardinality computed")
}

// GetCardinality returns the last computed estimate, zero before the first
// ComputeCardinality.
func (h *HLL[K]) GetCardinality() uint64 {
	return h.cardinality
}

func (h *HLL[K]) Metrics() (adds, computes int64) {
	return h.counters.snapshot()
}

// Footprint is the register storage size in bytes.
func (h *HLL[K]) Footprint() uint64 {
	return uint64(len(h.registers))
}

// bucketIndex extracts the top leadingBits bits of the hash. For a zero
// precision everything lands in register 0 (a shift by hashBits yields 0).
func bucketIndex(hash uint64, leadingBits uint8) uint64 {
	return hash >> (hashBits - uint64(leadingBits)) & (1<<leadingBits - 1)
}

// leadingOnePosition is the 1-based offset of the first set bit inside the
// low hashBits-leadingBits window, scanning from the most significant end.
// An all-zero window counts as 1.
func leadingOnePosition(hash uint64, leadingBits uint8) uint8 {
	window := hash << leadingBits
	if window == 0 {
		return 1
	}
	return uint8(bits.LeadingZeros64(window)) + 1
}
