package sketch

import (
	"math"
	"math/bits"

	"github.com/rs/zerolog/log"
)

const (
	denseBits    = 4
	overflowBits = 3

	denseMask    = 1<<denseBits - 1
	overflowMask = 1<<overflowBits - 1

	// nibblesPerWord packs sixteen 4-bit dense registers into one uint64.
	nibblesPerWord = 16
)

// HLLPresto is the Presto register layout of the same estimator: each
// register is logically 7 bits wide, split into a 4-bit dense part packed
// as nibbles and a sparse 3-bit overflow part kept in a map. A missing
// overflow entry means the high bits are zero, so most registers cost half
// a byte.
//
// Like HLL, register state needs external serialization.
type HLLPresto[K Key] struct {
	words       []uint64         // packed dense nibbles, 16 per word
	overflow    map[uint64]uint8 // register index -> 3-bit high part
	registers   uint64           // m = 2^leadingBits
	leadingBits uint8
	cardinality uint64
	counters    *sketchCounters
}

func NewHLLPresto[K Key](leadingBits int16) *HLLPresto[K] {
	if leadingBits < 0 {
		leadingBits = 0
	}
	m := uint64(1) << leadingBits
	log.Debug().Int16("leading_bits", leadingBits).Uint64("registers", m).Msg("presto hyperloglog initialized")
	return &HLLPresto[K]{
		words:       make([]uint64, (m+nibblesPerWord-1)/nibblesPerWord),
		overflow:    make(map[uint64]uint8),
		registers:   m,
		leadingBits: uint8(leadingBits),
		counters:    newSketchCounters(),
	}
}

// AddElem routes the hash by its top leadingBits bits and max-updates the
// register with the trailing-zero run of the remaining low window. The
// current value is always read first: writing below it would silently clear
// a sparse overflow part.
func (h *HLLPresto[K]) AddElem(v K) {
	hash := hashOf(v)
	j := bucketIndex(hash, h.leadingBits)
	rho := trailingZeroRun(hash, h.leadingBits)
	h.counters.adds.Add(1)

	if rho < h.effective(j) {
		return
	}
	h.setNibble(j, uint8(rho&denseMask))
	if rho > denseMask {
		h.overflow[j] = uint8(rho >> denseBits & overflowMask)
	}
}

// ComputeCardinality refreshes the cached estimate from the effective 7-bit
// register values, using the same constant and harmonic-mean form as the
// classical layout.
func (h *HLLPresto[K]) ComputeCardinality() {
	m := float64(h.registers)
	var sum float64
	for j := uint64(0); j < h.registers; j++ {
		sum += math.Pow(2, -float64(h.effective(j)))
	}
	h.cardinality = uint64(math.Floor(alpha * m * m / sum))
	h.counters.computes.Add(1)
	log.Debug().Uint64("cardinality", h.cardinality).Float64("sum", sum).Msg("presto hyperloglog cardinality computed")
}

func (h *HLLPresto[K]) GetCardinality() uint64 {
	return h.cardinality
}

func (h *HLLPresto[K]) Metrics() (adds, computes int64) {
	return h.counters.snapshot()
}

// Footprint is the register storage size in bytes; overflow map entries are
// accounted as key+value pairs, bucket overhead excluded.
func (h *HLLPresto[K]) Footprint() uint64 {
	return uint64(len(h.words))*8 + uint64(len(h.overflow))*9
}

// GetDenseBucket unpacks the dense 4-bit parts into one byte per register.
func (h *HLLPresto[K]) GetDenseBucket() []uint8 {
	dense := make([]uint8, h.registers)
	for j := range dense {
		dense[j] = h.getNibble(uint64(j))
	}
	return dense
}

// GetOverflowBucketOfIndex returns the 3-bit high part of a register, zero
// when it never overflowed.
func (h *HLLPresto[K]) GetOverflowBucketOfIndex(j uint64) uint8 {
	return h.overflow[j]
}

// effective combines the sparse high part with the dense nibble.
func (h *HLLPresto[K]) effective(j uint64) uint64 {
	return uint64(h.overflow[j])<<denseBits | uint64(h.getNibble(j))
}

func (h *HLLPresto[K]) getNibble(j uint64) uint8 {
	w, sh := wordShift(j)
	return uint8(h.words[w]>>sh) & denseMask
}

func (h *HLLPresto[K]) setNibble(j uint64, v uint8) {
	w, sh := wordShift(j)
	h.words[w] = h.words[w]&^(uint64(denseMask)<<sh) | uint64(v)<<sh
}

// wordShift maps a register index to (word index, bit shift) inside words.
func wordShift(j uint64) (uint64, uint) {
	// 16 nibbles per word => word = j / 16, shift = (j % 16) * 4
	return j >> 4, uint(j&0xF) << 2
}

// trailingZeroRun counts consecutive zero bits from the least significant
// end of the low hashBits-leadingBits window, up to the window width when
// the window is all zeros.
func trailingZeroRun(hash uint64, leadingBits uint8) uint64 {
	window := hashBits - uint64(leadingBits)
	if leadingBits > 0 {
		hash &= 1<<window - 1
	}
	if hash == 0 {
		return window
	}
	return uint64(bits.TrailingZeros64(hash))
}
