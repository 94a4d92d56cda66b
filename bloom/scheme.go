package bloom

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Scheme identifies how (h1, h2) are derived from an element.
type Scheme uint8

const (
	// SchemeSHA256 uses two domain separated SHA-256 digests at full width.
	SchemeSHA256 Scheme = iota + 1
	// SchemeSHA256Blake2b uses SHA-256 truncated to 64 bits and BLAKE2b-64.
	SchemeSHA256Blake2b
)

const (
	HashAlgoSHA256        = "sha256"
	HashAlgoSHA256Blake2b = "sha256+blake2b"
)

// BitOrder is the numbering of bits within a bitset byte.
type BitOrder uint8

const (
	// BitOrderMSB0 means bit 0 is the most-significant bit of byte 0.
	BitOrderMSB0 BitOrder = iota + 1
	// BitOrderLSB0 means bit 0 is the least-significant bit of byte 0.
	BitOrderLSB0
)

const (
	BitOrderNameMSB0 = "msb0"
	BitOrderNameLSB0 = "lsb0"
)

// ParseScheme maps a header hash_algo value to a Scheme.
func ParseScheme(name string) (Scheme, error) {
	switch name {
	case HashAlgoSHA256:
		return SchemeSHA256, nil
	case HashAlgoSHA256Blake2b:
		return SchemeSHA256Blake2b, nil
	}
	return 0, fmt.Errorf("%w: %w: %q", ErrFormat, ErrUnknownHashAlgo, name)
}

func (s Scheme) String() string {
	switch s {
	case SchemeSHA256:
		return HashAlgoSHA256
	case SchemeSHA256Blake2b:
		return HashAlgoSHA256Blake2b
	}
	return fmt.Sprintf("Scheme(%d)", uint8(s))
}

// DefaultBitOrder is the bit numbering the builder pairs with the scheme.
func (s Scheme) DefaultBitOrder() BitOrder {
	if s == SchemeSHA256Blake2b {
		return BitOrderLSB0
	}
	return BitOrderMSB0
}

// seeds returns the big-endian digests for h1 and h2. Both have a length
// that is a multiple of 8.
func (s Scheme) seeds(elem []byte) (d1 []byte, d2 []byte) {
	switch s {
	case SchemeSHA256Blake2b:
		sum := sha256.Sum256(elem)
		// New only fails for an invalid size or an oversized key.
		h, _ := blake2b.New(8, nil)
		h.Write(elem)
		return sum[:8], h.Sum(nil)
	default:
		h := sha256.New()
		h.Write(elem)
		h.Write([]byte{0x00})
		d1 = h.Sum(nil)
		h.Reset()
		h.Write(elem)
		h.Write([]byte{0x01})
		return d1, h.Sum(nil)
	}
}

// ParseBitOrder maps a header bit_order value to a BitOrder.
func ParseBitOrder(name string) (BitOrder, error) {
	switch name {
	case BitOrderNameMSB0:
		return BitOrderMSB0, nil
	case BitOrderNameLSB0:
		return BitOrderLSB0, nil
	}
	return 0, fmt.Errorf("%w: %w: %q", ErrFormat, ErrUnknownBitOrder, name)
}

func (o BitOrder) String() string {
	switch o {
	case BitOrderMSB0:
		return BitOrderNameMSB0
	case BitOrderLSB0:
		return BitOrderNameLSB0
	}
	return fmt.Sprintf("BitOrder(%d)", uint8(o))
}

func (o BitOrder) mask(j uint64) byte {
	if o == BitOrderLSB0 {
		return 1 << (j & 7)
	}
	return 1 << (7 - (j & 7))
}

// resolveScheme picks the scheme and bit order for h, falling back to def
// when the header does not name a hash_algo.
func resolveScheme(h Header, def Scheme) (Scheme, BitOrder, error) {
	scheme := def
	if h.HashAlgo != "" {
		var err error
		if scheme, err = ParseScheme(h.HashAlgo); err != nil {
			return 0, 0, err
		}
	}
	order := scheme.DefaultBitOrder()
	if h.BitOrder != "" {
		var err error
		if order, err = ParseBitOrder(h.BitOrder); err != nil {
			return 0, 0, err
		}
	}
	return scheme, order, nil
}
