package bloom

/*

# Bloom primitives for commonpass datasets

This package provides the read side of the commonpass bloom filter dataset
format, plus a small builder that produces files in the same format.

It keeps the go-merklelog `bloom` style:

- small, composable functions
- explicit byte layouts
- index arithmetic on byte slices
- named, versioned parameters instead of implied defaults

## What Bloom filters are (and are not)

Bloom filters provide a *probabilistic prefilter*:

- If the filter says "definitely not present", then the element is not present.
- If the filter says "maybe present", then the element may or may not be present
  (false positives are possible).

A commonpass filter answers "is this candidate a common password". It is not a
strength estimator and it is not a cryptographic commitment. It never returns
the matched password.

## File layout

	+----------------------+  UTF-8 JSON header object
	| {"bit_size":...}     |
	+----------------------+  single 0x0A byte
	| '\n'                 |
	+----------------------+  ceil(bit_size/8) bytes, extra trailing bytes ignored
	| bitset               |
	+----------------------+

The header carries `bit_size` and `hash_count` (required) and optionally
`version`, `format`, `hash_algo`, `bit_order`, `normalization`, `tier`,
`expected_n` and `fpr`.

## Indexing and bit numbering

Indices are derived by double hashing:

	index_i = (h1 + i*h2) mod bit_size,  i in [0, hash_count)

h1 and h2 are big-endian digest integers. The arithmetic is exact at the full
digest width: both values are reduced modulo bit_size before the linear
combination, which gives the same result as arbitrary precision integers.

Two schemes exist in published datasets and they are NOT compatible on the
same bits:

- `sha256`: h1 = SHA-256(s || 0x00), h2 = SHA-256(s || 0x01), 256 bit values,
  MSB0 bit numbering (bit 0 is the most significant bit of byte 0).
- `sha256+blake2b`: h1 = SHA-256(s)[:8], h2 = BLAKE2b-64(s), LSB0 bit
  numbering (bit 0 is the least significant bit of byte 0).

The header `hash_algo` selects the scheme. `bit_order` overrides the scheme's
bit numbering. A file with neither is read with the configured default, which
is `sha256`/MSB0. Any change to either rule requires a new dataset `version`.

*/
