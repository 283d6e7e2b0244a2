package sketch

import "github.com/zeebo/xxh3"

// Key covers the two input kinds the estimators accept: 64-bit integers are
// used as their own hash (they are assumed pre-mixed), strings run through
// xxh3 over their raw bytes.
type Key interface {
	int64 | string
}

func hashOf[K Key](v K) uint64 {
	switch val := any(v).(type) {
	case int64:
		return uint64(val)
	case string:
		return xxh3.HashString(val)
	default:
		return 0
	}
}
