package bloom

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// goldenWords were inserted into both testdata filters by the reference
// dataset pipelines.
var goldenWords = []string{
	"sample_password", "123456", "password", "qwerty", "letmein", "p\u00e4ssw\u00f6rd", "dragon",
}

func readGolden(t *testing.T, name string) []byte {
	t.Helper()
	buf, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return buf
}

func TestIndicesMatchReference(t *testing.T) {
	tests := []struct {
		name   string
		scheme Scheme
		elem   string
		mBits  uint64
		k      uint32
		want   []uint64
	}{
		{
			"sha256", SchemeSHA256, "sample_password", 8192, 7,
			[]uint64{6421, 6710, 6999, 7288, 7577, 7866, 8155},
		},
		{
			"sha256 prime size", SchemeSHA256, "sample_password", 1000003, 5,
			[]uint64{331554, 401299, 471044, 540789, 610534},
		},
		{
			"sha256 absent", SchemeSHA256, "totally_unique_candidate_x7q9", 8192, 7,
			[]uint64{2548, 3148, 3748, 4348, 4948, 5548, 6148},
		},
		{
			"sha256+blake2b", SchemeSHA256Blake2b, "sample_password", 8192, 7,
			[]uint64{2764, 1679, 594, 7701, 6616, 5531, 4446},
		},
		{
			"sha256+blake2b prime size", SchemeSHA256Blake2b, "sample_password", 1000003, 5,
			[]uint64{514418, 420926, 327434, 233942, 140450},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Indices(nil, tt.scheme, []byte(tt.elem), tt.mBits, tt.k)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestIndicesDeterministic(t *testing.T) {
	a := Indices(nil, SchemeSHA256, []byte("letmein"), 9592, 6)
	b := Indices(make([]uint64, 3), SchemeSHA256, []byte("letmein"), 9592, 6)
	require.Len(t, a, 6)
	require.Equal(t, a, b)
	for _, j := range a {
		require.Less(t, j, uint64(9592))
	}
}

func TestIndicesSingleBit(t *testing.T) {
	got := Indices(nil, SchemeSHA256Blake2b, []byte("x"), 1, 4)
	require.Equal(t, []uint64{0, 0, 0, 0}, got)
}

func TestFilterGolden(t *testing.T) {
	tests := []struct {
		file   string
		opts   []FilterOption
		scheme Scheme
		order  BitOrder
	}{
		{"sha256_msb0.bf", nil, SchemeSHA256, BitOrderMSB0},
		{
			"sha256_blake2b_lsb0.bf",
			[]FilterOption{WithDefaultScheme(SchemeSHA256Blake2b)},
			SchemeSHA256Blake2b, BitOrderLSB0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			f, err := NewFilter(readGolden(t, tt.file), tt.opts...)
			require.NoError(t, err)

			h := f.Header()
			require.Equal(t, FormatV1, h.Format)
			require.Equal(t, uint64(8192), h.BitSize)
			require.Equal(t, uint32(7), h.HashCount)
			require.Equal(t, "v20250101.1", h.Version)
			require.Equal(t, "tiny", h.Tier)
			require.Equal(t, tt.scheme, f.Scheme())
			require.Equal(t, tt.order, f.BitOrder())

			for _, w := range goldenWords {
				ok, err := f.MaybeContains(w)
				require.NoError(t, err)
				assert.True(t, ok, w)
			}
			for _, w := range []string{"totally_unique_candidate_x7q9", "Sample_Password", "dragon "} {
				ok, err := f.MaybeContains(w)
				require.NoError(t, err)
				assert.False(t, ok, w)
			}
		})
	}
}

func TestTestBitsWrongBitOrder(t *testing.T) {
	_, bitset, err := Parse(readGolden(t, "sha256_msb0.bf"))
	require.NoError(t, err)

	idx := Indices(nil, SchemeSHA256, []byte("sample_password"), 8192, 7)
	ok, err := TestBits(bitset, BitOrderMSB0, idx)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = TestBits(bitset, BitOrderLSB0, idx)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFilterCopiesBitset(t *testing.T) {
	buf := readGolden(t, "sha256_msb0.bf")
	f, err := NewFilter(buf)
	require.NoError(t, err)

	// Zero the caller's bitset, the filter must not observe it.
	_, bitset, err := Parse(buf)
	require.NoError(t, err)
	clear(bitset)

	ok, err := f.MaybeContains("sample_password")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestFilterIndexOutOfRange(t *testing.T) {
	b, err := NewBuilder(Header{BitSize: 8192, HashCount: 7})
	require.NoError(t, err)
	b.Add("sample_password")
	buf, err := b.Encode()
	require.NoError(t, err)

	// Keep the header and a single bitset byte.
	hdrLen := len(buf) - int(BitsetBytes(8192))
	f, err := NewFilter(buf[:hdrLen+1])
	require.NoError(t, err)

	_, err = f.MaybeContains("sample_password")
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestFilterEmptySet(t *testing.T) {
	b, err := NewBuilder(Header{BitSize: 4096, HashCount: 5})
	require.NoError(t, err)
	buf, err := b.Encode()
	require.NoError(t, err)

	f, err := NewFilter(buf)
	require.NoError(t, err)
	for i := 0; i < 200; i++ {
		ok, err := f.MaybeContains(fmt.Sprintf("candidate-%d", i))
		require.NoError(t, err)
		require.False(t, ok)
	}
}

func TestFilterTrailingBytesIgnored(t *testing.T) {
	buf := append(readGolden(t, "sha256_msb0.bf"), 0xFF, 0xFF, 0xFF)
	f, err := NewFilter(buf)
	require.NoError(t, err)

	ok, err := f.MaybeContains("totally_unique_candidate_x7q9")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFilterNoFalseNegativesAndFPR(t *testing.T) {
	const n = 1000
	mBits, k := OptimalParams(n, 0.01)
	for _, scheme := range []string{HashAlgoSHA256, HashAlgoSHA256Blake2b} {
		t.Run(scheme, func(t *testing.T) {
			b, err := NewBuilder(Header{BitSize: mBits, HashCount: k, HashAlgo: scheme})
			require.NoError(t, err)
			for i := 0; i < n; i++ {
				b.Add(fmt.Sprintf("common-%d", i))
			}
			buf, err := b.Encode()
			require.NoError(t, err)

			f, err := NewFilter(buf)
			require.NoError(t, err)
			for i := 0; i < n; i++ {
				ok, err := f.MaybeContains(fmt.Sprintf("common-%d", i))
				require.NoError(t, err)
				require.True(t, ok)
			}

			const probes = 10000
			falsePositives := 0
			for i := 0; i < probes; i++ {
				ok, err := f.MaybeContains(fmt.Sprintf("absent-%d", i))
				require.NoError(t, err)
				if ok {
					falsePositives++
				}
			}
			require.Less(t, float64(falsePositives)/probes, 0.02)
		})
	}
}
