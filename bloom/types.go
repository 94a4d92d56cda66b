package bloom

import "errors"

const (
	// FormatV1 is the format tag written by the dataset builder.
	FormatV1 = "commonpass-bloom-v1"

	// HeaderTerminator separates the JSON header from the bitset.
	HeaderTerminator byte = '\n'

	// MaxHashCount bounds the per query probe count.
	MaxHashCount = 1024
)

var (
	// ErrFormat is wrapped by every error that rejects a dataset file.
	ErrFormat = errors.New("bloom: malformed filter file")

	ErrHeaderNoNewline = errors.New("bloom: header terminator not found")
	ErrHeaderNotUTF8   = errors.New("bloom: header is not valid utf-8")
	ErrHeaderJSON      = errors.New("bloom: header json invalid")
	ErrBadBitSize      = errors.New("bloom: header bit_size invalid")
	ErrBadHashCount    = errors.New("bloom: header hash_count invalid")
	ErrUnknownHashAlgo = errors.New("bloom: header hash_algo unsupported")
	ErrUnknownBitOrder = errors.New("bloom: header bit_order unsupported")

	// ErrIndexOutOfRange means a derived index addressed a byte past the end
	// of the bitset. The dataset is truncated or corrupt.
	ErrIndexOutOfRange = errors.New("bloom: bit index out of range")
)

// Header is the decoded JSON header of a filter file.
type Header struct {
	Format        string  `json:"format,omitempty"`
	BitSize       uint64  `json:"bit_size"`
	HashCount     uint32  `json:"hash_count"`
	HashAlgo      string  `json:"hash_algo,omitempty"`
	BitOrder      string  `json:"bit_order,omitempty"`
	Normalization string  `json:"normalization,omitempty"`
	Version       string  `json:"version,omitempty"`
	Tier          string  `json:"tier,omitempty"`
	ExpectedN     uint64  `json:"expected_n,omitempty"`
	FPR           float64 `json:"fpr,omitempty"`
}
