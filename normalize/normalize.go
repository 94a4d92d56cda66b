// Package normalize canonicalizes candidate text before it is hashed.
//
// The mode applied at query time must be the mode the dataset builder applied
// when inserting. A mismatch is not detectable here, it silently changes
// membership results.
package normalize

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Mode selects the canonicalization rule.
type Mode uint8

const (
	// NFCTrim applies Unicode canonical composition (NFC) then trims leading
	// and trailing whitespace.
	NFCTrim Mode = iota
	// Preserve trims leading and trailing whitespace only.
	Preserve
)

const (
	NameNFCTrim  = "nfc_trim"
	NamePreserve = "preserve_unicode"
)

// Default is the mode the dataset pipeline uses.
const Default = NFCTrim

var ErrUnknownMode = errors.New("normalize: unknown normalization mode")

// ParseMode maps a dataset or config name to a Mode. The empty string is
// Default.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "", NameNFCTrim:
		return NFCTrim, nil
	case NamePreserve:
		return Preserve, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

func (m Mode) String() string {
	switch m {
	case NFCTrim:
		return NameNFCTrim
	case Preserve:
		return NamePreserve
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// String returns s canonicalized according to mode.
func String(s string, mode Mode) string {
	if mode == NFCTrim {
		s = norm.NFC.String(s)
	}
	return strings.TrimSpace(s)
}
