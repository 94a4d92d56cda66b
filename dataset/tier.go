package dataset

import (
	"fmt"
	"path/filepath"
)

// Tier names a prefix of the frequency ordered password list.
type Tier string

const (
	TierTiny   Tier = "tiny"   // top 1,000
	TierSmall  Tier = "small"  // top 10,000
	TierMedium Tier = "medium" // top 100,000
	TierFull   Tier = "full"
)

const (
	DefaultRoot = "datasets"
	DefaultTier = TierTiny

	MetadataFileName = "metadata.json"
)

// Tiers lists every tier, smallest first.
var Tiers = []Tier{TierTiny, TierSmall, TierMedium, TierFull}

func ParseTier(name string) (Tier, error) {
	if name == "" {
		return DefaultTier, nil
	}
	for _, t := range Tiers {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTier, name)
}

// FilterFileName returns the bloom filter file name for the tier,
// common_<tier>.bf
func (t Tier) FilterFileName() string {
	return fmt.Sprintf("common_%s.bf", t)
}

// Source identifies one filter file.
//
// When Path is set it is used as is. Otherwise the file is
// <Root>/<Version>/common_<Tier>.bf
type Source struct {
	Root    string
	Version string
	Tier    Tier
	Path    string
}

// FilterPath resolves the filter file path.
func (s Source) FilterPath() (string, error) {
	if s.Path != "" {
		return s.Path, nil
	}
	if s.Version == "" {
		return "", ErrVersionRequired
	}
	root := s.Root
	if root == "" {
		root = DefaultRoot
	}
	tier := s.Tier
	if tier == "" {
		tier = DefaultTier
	}
	if _, err := ParseTier(string(tier)); err != nil {
		return "", err
	}
	return filepath.Join(root, s.Version, tier.FilterFileName()), nil
}

// WithTier returns a copy of s selecting tier. An explicit Path is dropped.
func (s Source) WithTier(tier Tier) Source {
	s.Tier = tier
	s.Path = ""
	return s
}
