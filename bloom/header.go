package bloom

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// Parse splits buf at the first newline into a decoded header and the raw
// bitset that follows it.
//
// The returned bitset aliases buf. The bitset length is not checked against
// bit_size here, a short bitset is reported by TestBits instead.
func Parse(buf []byte) (Header, []byte, error) {
	nl := bytes.IndexByte(buf, HeaderTerminator)
	if nl < 0 {
		return Header{}, nil, fmt.Errorf("%w: %w", ErrFormat, ErrHeaderNoNewline)
	}
	h, err := DecodeHeader(buf[:nl])
	if err != nil {
		return Header{}, nil, err
	}
	return h, buf[nl+1:], nil
}

// DecodeHeader decodes and checks the JSON header segment (without the
// terminating newline).
func DecodeHeader(segment []byte) (Header, error) {
	if !utf8.Valid(segment) {
		return Header{}, fmt.Errorf("%w: %w", ErrFormat, ErrHeaderNotUTF8)
	}

	var h Header
	if err := json.Unmarshal(segment, &h); err != nil {
		return Header{}, fmt.Errorf("%w: %w: %v", ErrFormat, ErrHeaderJSON, err)
	}
	if err := checkHeader(h); err != nil {
		return Header{}, err
	}
	return h, nil
}

// EncodeHeader serializes h as compact JSON followed by the terminator.
func EncodeHeader(h Header) ([]byte, error) {
	if err := checkHeader(h); err != nil {
		return nil, err
	}
	b, err := json.Marshal(h)
	if err != nil {
		return nil, err
	}
	return append(b, HeaderTerminator), nil
}

func checkHeader(h Header) error {
	if h.BitSize == 0 {
		return fmt.Errorf("%w: %w", ErrFormat, ErrBadBitSize)
	}
	if h.HashCount == 0 || h.HashCount > MaxHashCount {
		return fmt.Errorf("%w: %w: %d", ErrFormat, ErrBadHashCount, h.HashCount)
	}
	return nil
}
