package bloom

import "bytes"

// Filter is a parsed, read-only filter. It owns a private copy of the bitset
// and is safe for concurrent use.
type Filter struct {
	header Header
	scheme Scheme
	order  BitOrder
	bits   []byte
}

type FilterOptions struct {
	// DefaultScheme applies when the header carries no hash_algo.
	DefaultScheme Scheme
}

type FilterOption func(*FilterOptions)

// WithDefaultScheme sets the scheme used for files without a hash_algo.
func WithDefaultScheme(s Scheme) FilterOption {
	return func(o *FilterOptions) {
		o.DefaultScheme = s
	}
}

// NewFilter parses buf and copies its bitset. buf may be reused by the caller
// once NewFilter returns.
func NewFilter(buf []byte, opts ...FilterOption) (*Filter, error) {
	options := FilterOptions{DefaultScheme: SchemeSHA256}
	for _, o := range opts {
		o(&options)
	}

	h, bitset, err := Parse(buf)
	if err != nil {
		return nil, err
	}
	scheme, order, err := resolveScheme(h, options.DefaultScheme)
	if err != nil {
		return nil, err
	}
	return &Filter{
		header: h,
		scheme: scheme,
		order:  order,
		bits:   bytes.Clone(bitset),
	}, nil
}

func (f *Filter) Header() Header     { return f.header }
func (f *Filter) Scheme() Scheme     { return f.scheme }
func (f *Filter) BitOrder() BitOrder { return f.order }

// Indices returns the hash_count indices probed for elem.
func (f *Filter) Indices(elem string) []uint64 {
	return Indices(
		make([]uint64, 0, f.header.HashCount),
		f.scheme, []byte(elem), f.header.BitSize, f.header.HashCount)
}

// MaybeContains checks membership for elem, which must already be
// normalized.
//
// Returns (false,nil) if the filter says "definitely not present".
// Returns (true,nil) if the filter says "maybe present".
func (f *Filter) MaybeContains(elem string) (bool, error) {
	return TestBits(f.bits, f.order, f.Indices(elem))
}
