package sketch

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zeebo/xxh3"
)

// TestHashOf_Int64Identity uses 64-bit integers as their own hash.
func TestHashOf_Int64Identity(t *testing.T) {
	require.Equal(t, uint64(42), hashOf[int64](42))
	require.Equal(t, ^uint64(0), hashOf[int64](-1))
	require.Equal(t, uint64(0), hashOf[int64](0))
}

// TestHashOf_StringUsesXXH3 hashes string bytes through xxh3.
func TestHashOf_StringUsesXXH3(t *testing.T) {
	require.Equal(t, xxh3.HashString("abc"), hashOf("abc"))
	require.NotEqual(t, hashOf("abc"), hashOf("abd"))
	require.Equal(t, xxh3.HashString(""), hashOf(""))
}
