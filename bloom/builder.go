package bloom

// Builder produces filter files in the dataset format. It mirrors the
// offline dataset pipeline and exists so fixtures can be generated with the
// same hashing and bit numbering the reader applies.
type Builder struct {
	header Header
	scheme Scheme
	order  BitOrder
	bits   []byte
	idx    []uint64
}

// NewBuilder allocates a zero filled bitset for h. A header without
// hash_algo is built with SchemeSHA256.
func NewBuilder(h Header) (*Builder, error) {
	if err := checkHeader(h); err != nil {
		return nil, err
	}
	scheme, order, err := resolveScheme(h, SchemeSHA256)
	if err != nil {
		return nil, err
	}
	if h.Format == "" {
		h.Format = FormatV1
	}
	return &Builder{
		header: h,
		scheme: scheme,
		order:  order,
		bits:   make([]byte, BitsetBytes(h.BitSize)),
		idx:    make([]uint64, 0, h.HashCount),
	}, nil
}

// Add inserts elem, which must already be normalized.
func (b *Builder) Add(elem string) {
	b.idx = Indices(b.idx, b.scheme, []byte(elem), b.header.BitSize, b.header.HashCount)
	setBits(b.bits, b.order, b.idx)
}

// Encode returns the header line followed by the bitset.
func (b *Builder) Encode() ([]byte, error) {
	hdr, err := EncodeHeader(b.header)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(hdr)+len(b.bits))
	out = append(out, hdr...)
	return append(out, b.bits...), nil
}
