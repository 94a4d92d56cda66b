package dataset

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Metadata is the metadata.json the dataset builder writes beside the tier
// files of a version.
type Metadata struct {
	Version string         `json:"version"`
	Date    string         `json:"date"`
	Sources []string       `json:"sources"`
	Counts  map[string]int `json:"counts"`
	Files   []FileEntry    `json:"files"`
	Bloom   BloomParams    `json:"bloom"`
}

type FileEntry struct {
	Name   string `json:"name"`
	SHA256 string `json:"sha256"`
	Size   int64  `json:"size"`
}

// BloomParams are the sizing inputs and outputs recorded for the tiny tier.
type BloomParams struct {
	ExpectedN uint64  `json:"expected_n"`
	FPR       float64 `json:"fpr"`
	HashCount uint32  `json:"hash_count"`
	BitSize   uint64  `json:"bit_size"`
}

func ReadMetadata(r io.Reader) (Metadata, error) {
	var md Metadata
	if err := json.NewDecoder(r).Decode(&md); err != nil {
		return Metadata{}, fmt.Errorf("dataset: metadata json invalid: %w", err)
	}
	return md, nil
}

// File returns the entry for name.
func (md Metadata) File(name string) (FileEntry, bool) {
	for _, f := range md.Files {
		if f.Name == name {
			return f, true
		}
	}
	return FileEntry{}, false
}

// Verify checks data against the entry for name.
func (md Metadata) Verify(name string, data []byte) error {
	entry, ok := md.File(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrFileNotInMetadata, name)
	}
	if entry.Size != int64(len(data)) {
		return fmt.Errorf("%w: %s is %d bytes, expected %d", ErrSizeMismatch, name, len(data), entry.Size)
	}
	sum := sha256.Sum256(data)
	if got := hex.EncodeToString(sum[:]); got != strings.ToLower(entry.SHA256) {
		return fmt.Errorf("%w: %s has sha256 %s, expected %s", ErrChecksumMismatch, name, got, entry.SHA256)
	}
	return nil
}
