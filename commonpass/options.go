package commonpass

import (
	"github.com/forestrie/go-commonpass/bloom"
	"github.com/forestrie/go-commonpass/normalize"
)

type Options struct {
	// DefaultScheme applies to datasets whose header has no hash_algo.
	DefaultScheme bloom.Scheme
	// Normalization applies to datasets whose header has no normalization.
	Normalization normalize.Mode
}

type Option func(*Options)

func WithDefaultScheme(s bloom.Scheme) Option {
	return func(o *Options) {
		o.DefaultScheme = s
	}
}

func WithNormalization(m normalize.Mode) Option {
	return func(o *Options) {
		o.Normalization = m
	}
}

// QueryOptions apply to a single IsCommon call.
type QueryOptions struct {
	Normalization normalize.Mode
}

type QueryOption func(*QueryOptions)

// WithQueryNormalization overrides the dataset's normalization for one query.
// The caller is responsible for matching the mode the dataset was built with.
func WithQueryNormalization(m normalize.Mode) QueryOption {
	return func(o *QueryOptions) {
		o.Normalization = m
	}
}
