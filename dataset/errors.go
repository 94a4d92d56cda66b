package dataset

import "errors"

var (
	ErrUnknownTier       = errors.New("dataset: unknown tier")
	ErrVersionRequired   = errors.New("dataset: a version or an explicit filter path must be provided")
	ErrChecksumMismatch  = errors.New("dataset: filter file does not match the metadata checksum")
	ErrSizeMismatch      = errors.New("dataset: filter file does not match the metadata size")
	ErrFileNotInMetadata = errors.New("dataset: filter file is not listed in the metadata")
	ErrNoTiers           = errors.New("dataset: at least one tier must be requested")
)
