package bloom

import "math"

const (
	// MinBitSize is the smallest bit_size the builder emits.
	MinBitSize = 8 * 1024
	// EmptySetHashCount is the hash_count used when no elements are expected.
	EmptySetHashCount = 3
)

// OptimalParams returns (bit_size, hash_count) for n expected elements at
// false positive rate fpr:
//
//	m = -(n * ln(fpr)) / (ln 2)^2
//	k = (m/n) * ln 2
//
// m is rounded up to a multiple of 8 and is at least MinBitSize. k is
// computed from the unrounded m.
func OptimalParams(n uint64, fpr float64) (uint64, uint32) {
	if n == 0 || fpr <= 0 || fpr >= 1 {
		return MinBitSize, EmptySetHashCount
	}
	m := uint64(-(float64(n) * math.Log(fpr)) / (math.Ln2 * math.Ln2))
	k := uint32(max(1, int64(float64(m)/float64(n)*math.Ln2)))
	m = (m + 7) / 8 * 8
	return max(MinBitSize, m), k
}

// BitsetBytes returns ceil(mBits/8).
func BitsetBytes(mBits uint64) uint64 {
	return mBits/8 + min(1, mBits%8)
}

// EstimateFPR returns the expected false positive rate after inserting n
// elements into a filter of mBits bits probed k times.
//
//	(1 - e^(-k*n/m))^k
func EstimateFPR(mBits uint64, k uint32, n uint64) float64 {
	if mBits == 0 {
		return 1
	}
	return math.Pow(1-math.Exp(-float64(k)*float64(n)/float64(mBits)), float64(k))
}
