package bloom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptimalParams(t *testing.T) {
	m, k := OptimalParams(1000, 0.01)
	require.Equal(t, uint64(9592), m)
	require.Equal(t, uint32(6), k)

	m, k = OptimalParams(100000, 0.001)
	require.Equal(t, uint64(1437760), m)
	require.Equal(t, uint32(9), k)

	// Small sets are padded to MinBitSize but keep the k of the unpadded size.
	m, k = OptimalParams(10, 0.001)
	require.Equal(t, uint64(MinBitSize), m)
	require.Equal(t, uint32(9), k)

	m, k = OptimalParams(0, 0.01)
	require.Equal(t, uint64(MinBitSize), m)
	require.Equal(t, uint32(EmptySetHashCount), k)
}

func TestBitsetBytes(t *testing.T) {
	require.Equal(t, uint64(0), BitsetBytes(0))
	require.Equal(t, uint64(1), BitsetBytes(1))
	require.Equal(t, uint64(1), BitsetBytes(8))
	require.Equal(t, uint64(2), BitsetBytes(10))
	require.Equal(t, uint64(1024), BitsetBytes(8192))
}

func TestEstimateFPR(t *testing.T) {
	m, k := OptimalParams(1000, 0.01)
	require.InDelta(t, 0.01, EstimateFPR(m, k, 1000), 0.002)
	require.Equal(t, float64(1), EstimateFPR(0, k, 1000))
}

func TestModArithmetic(t *testing.T) {
	const m = ^uint64(0) - 58 // large modulus close to 2^64
	require.Equal(t, m-2, addMod(m-1, m-1, m))
	require.Equal(t, uint64(0), addMod(1, m-1, m))

	// 2^64 mod m == 59
	require.Equal(t, uint64(59), reduceBE([]byte{0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0}, m))
	require.Equal(t, uint64(5), reduceBE([]byte{0, 0, 0, 0, 0, 0, 0, 12}, 7))
}
