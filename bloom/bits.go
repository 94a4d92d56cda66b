package bloom

import "fmt"

// Indices appends exactly k bit indices for elem to dst[:0] and returns it.
//
//	index_i = (h1 + i*h2) mod mBits
//
// mBits must be non zero.
func Indices(dst []uint64, scheme Scheme, elem []byte, mBits uint64, k uint32) []uint64 {
	d1, d2 := scheme.seeds(elem)
	j := reduceBE(d1, mBits)
	step := reduceBE(d2, mBits)

	dst = dst[:0]
	for i := uint32(0); i < k; i++ {
		dst = append(dst, j)
		j = addMod(j, step, mBits)
	}
	return dst
}

// TestBits reports whether every index in indices is set in bitset. It stops
// at the first unset bit.
func TestBits(bitset []byte, order BitOrder, indices []uint64) (bool, error) {
	for _, j := range indices {
		byteIdx := j >> 3
		if byteIdx >= uint64(len(bitset)) {
			return false, fmt.Errorf(
				"%w: bit %d needs byte %d, bitset has %d bytes",
				ErrIndexOutOfRange, j, byteIdx, len(bitset))
		}
		if bitset[byteIdx]&order.mask(j) == 0 {
			return false, nil
		}
	}
	return true, nil
}

func setBits(bitset []byte, order BitOrder, indices []uint64) {
	for _, j := range indices {
		bitset[j>>3] |= order.mask(j)
	}
}
