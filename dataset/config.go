package dataset

import (
	"errors"
	"fmt"
	"io"

	"github.com/forestrie/go-commonpass/bloom"
	"github.com/forestrie/go-commonpass/commonpass"
	"github.com/forestrie/go-commonpass/normalize"
	"gopkg.in/yaml.v3"
)

// Config selects a dataset file and how it is queried.
//
//	root: datasets
//	version: v20250101.1
//	tier: tiny
//	normalization: nfc_trim
//	hash_algo: sha256
//	verify_checksum: true
type Config struct {
	Root    string `yaml:"root"`
	Version string `yaml:"version"`
	Tier    string `yaml:"tier"`
	// Path overrides Root, Version and Tier.
	Path string `yaml:"path"`
	// Normalization is the default for datasets whose header does not record
	// one.
	Normalization string `yaml:"normalization"`
	// HashAlgo is the scheme for datasets whose header does not record one.
	HashAlgo       string `yaml:"hash_algo"`
	VerifyChecksum bool   `yaml:"verify_checksum"`
}

// ReadConfig decodes YAML from r, fills defaults and validates the result.
func ReadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("dataset: config yaml invalid: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Root == "" {
		c.Root = DefaultRoot
	}
	if c.Tier == "" {
		c.Tier = string(DefaultTier)
	}
	if c.Normalization == "" {
		c.Normalization = normalize.NameNFCTrim
	}
	if c.HashAlgo == "" {
		c.HashAlgo = bloom.HashAlgoSHA256
	}
}

func (c Config) Validate() error {
	if _, err := ParseTier(c.Tier); err != nil {
		return err
	}
	if c.Path == "" && c.Version == "" {
		return ErrVersionRequired
	}
	if _, err := normalize.ParseMode(c.Normalization); err != nil {
		return err
	}
	if c.HashAlgo != "" {
		if _, err := bloom.ParseScheme(c.HashAlgo); err != nil {
			return err
		}
	}
	return nil
}

func (c Config) Source() Source {
	return Source{
		Root:    c.Root,
		Version: c.Version,
		Tier:    Tier(c.Tier),
		Path:    c.Path,
	}
}

// HandleOptions converts the query settings. c must be valid.
func (c Config) HandleOptions() []commonpass.Option {
	var opts []commonpass.Option
	if mode, err := normalize.ParseMode(c.Normalization); err == nil {
		opts = append(opts, commonpass.WithNormalization(mode))
	}
	if c.HashAlgo != "" {
		if scheme, err := bloom.ParseScheme(c.HashAlgo); err == nil {
			opts = append(opts, commonpass.WithDefaultScheme(scheme))
		}
	}
	return opts
}

// LoaderOptions converts the loading settings.
func (c Config) LoaderOptions() []LoaderOption {
	return []LoaderOption{
		WithVerifyChecksum(c.VerifyChecksum),
		WithHandleOptions(c.HandleOptions()...),
	}
}
