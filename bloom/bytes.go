package bloom

import (
	"encoding/binary"
	"math/bits"
)

func readU64BE(b []byte) uint64 { return binary.BigEndian.Uint64(b) }

// reduceBE returns the big-endian integer in digest modulo m.
// len(digest) must be a multiple of 8.
func reduceBE(digest []byte, m uint64) uint64 {
	var r uint64
	for off := 0; off+8 <= len(digest); off += 8 {
		r = bits.Rem64(r, readU64BE(digest[off:off+8]), m)
	}
	return r
}

// addMod returns (a + b) mod m for a, b < m.
func addMod(a, b, m uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 || s >= m {
		s -= m
	}
	return s
}
