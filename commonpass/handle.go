package commonpass

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-commonpass/bloom"
	"github.com/forestrie/go-commonpass/normalize"
)

// ReasonBloomMatch is the Result reason for a positive filter test.
const ReasonBloomMatch = "bloom-match"

// Result is the outcome of a membership query.
type Result struct {
	Common  bool   `json:"common"`
	Reason  string `json:"reason,omitempty"`
	Version string `json:"version,omitempty"`
}

// loaded is immutable once published.
type loaded struct {
	filter  *bloom.Filter
	version string
	mode    normalize.Mode
}

// Handle holds at most one loaded filter. The zero value is not usable, use
// NewHandle.
//
// Loads are copy-on-load: a new immutable state is built and then published
// with a single atomic store. A query reads the published pointer once, so a
// concurrent Load never changes the filter a query is already using.
type Handle struct {
	log  logger.Logger
	opts Options

	// mu serializes Load and Reset. Queries do not take it.
	mu    sync.Mutex
	state atomic.Pointer[loaded]
}

// NewHandle creates an unloaded handle. log may be nil.
func NewHandle(log logger.Logger, opts ...Option) *Handle {
	h := &Handle{
		log: log,
		opts: Options{
			DefaultScheme: bloom.SchemeSHA256,
			Normalization: normalize.Default,
		},
	}
	for _, o := range opts {
		o(&h.opts)
	}
	return h
}

// Load parses buf and replaces any previously loaded filter. buf is not
// retained.
//
// The dataset version is the header version if present, otherwise
// declaredVersion. On error the previous state is left in place and the error
// wraps bloom.ErrFormat.
func (h *Handle) Load(buf []byte, declaredVersion string) error {
	st, err := h.prepare(buf, declaredVersion)
	if err != nil {
		h.infof("filter load rejected: %v", err)
		return err
	}

	h.mu.Lock()
	h.state.Store(st)
	h.mu.Unlock()

	hdr := st.filter.Header()
	h.infof(
		"filter loaded: version=%s tier=%s bit_size=%d hash_count=%d scheme=%s bit_order=%s normalization=%s",
		st.version, hdr.Tier, hdr.BitSize, hdr.HashCount,
		st.filter.Scheme(), st.filter.BitOrder(), st.mode)
	return nil
}

// LoadReader reads r to the end and loads the result.
func (h *Handle) LoadReader(r io.Reader, declaredVersion string) error {
	buf, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return h.Load(buf, declaredVersion)
}

func (h *Handle) prepare(buf []byte, declaredVersion string) (*loaded, error) {
	f, err := bloom.NewFilter(buf, bloom.WithDefaultScheme(h.opts.DefaultScheme))
	if err != nil {
		return nil, err
	}
	hdr := f.Header()

	mode := h.opts.Normalization
	if hdr.Normalization != "" {
		if mode, err = normalize.ParseMode(hdr.Normalization); err != nil {
			return nil, fmt.Errorf("%w: %w", bloom.ErrFormat, err)
		}
	}

	version := hdr.Version
	if version == "" {
		version = declaredVersion
	}
	return &loaded{filter: f, version: version, mode: mode}, nil
}

// Reset drops the loaded filter. Subsequent queries report not common.
func (h *Handle) Reset() {
	h.mu.Lock()
	h.state.Store(nil)
	h.mu.Unlock()
}

// Loaded reports whether a filter is currently loaded.
func (h *Handle) Loaded() bool {
	return h.state.Load() != nil
}

// CurrentVersion returns the dataset version of the loaded filter. ok is
// false when nothing is loaded.
func (h *Handle) CurrentVersion() (version string, ok bool) {
	st := h.state.Load()
	if st == nil {
		return "", false
	}
	return st.version, true
}

// Header returns the header of the loaded filter.
func (h *Handle) Header() (bloom.Header, bool) {
	st := h.state.Load()
	if st == nil {
		return bloom.Header{}, false
	}
	return st.filter.Header(), true
}

// IsCommon reports whether text is in the loaded set.
//
// An unloaded handle reports {Common: false} and no error. The only error is
// one wrapping bloom.ErrIndexOutOfRange, which means the loaded dataset is
// truncated or corrupt.
func (h *Handle) IsCommon(text string, opts ...QueryOption) (Result, error) {
	st := h.state.Load()
	if st == nil {
		return Result{}, nil
	}

	q := QueryOptions{Normalization: st.mode}
	for _, o := range opts {
		o(&q)
	}

	ok, err := st.filter.MaybeContains(normalize.String(text, q.Normalization))
	if err != nil {
		return Result{}, fmt.Errorf("dataset %s: %w", st.version, err)
	}
	if !ok {
		return Result{}, nil
	}
	return Result{Common: true, Reason: ReasonBloomMatch, Version: st.version}, nil
}

func (h *Handle) infof(format string, args ...any) {
	if h.log == nil {
		return
	}
	h.log.Infof(format, args...)
}
