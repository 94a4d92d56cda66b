package dataset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-commonpass/commonpass"
	"golang.org/x/sync/errgroup"
)

type Opener interface {
	Open(string) (io.ReadCloser, error)
}

// OSOpener opens files on the local filesystem.
type OSOpener struct{}

func (OSOpener) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

type LoaderOptions struct {
	// VerifyChecksum requires the filter file to match the sha256 and size
	// recorded in the metadata.json beside it.
	VerifyChecksum bool

	// HandleOptions are applied to handles created by LoadTiers.
	HandleOptions []commonpass.Option
}

type LoaderOption func(*LoaderOptions)

func WithVerifyChecksum(verify bool) LoaderOption {
	return func(o *LoaderOptions) {
		o.VerifyChecksum = verify
	}
}

func WithHandleOptions(opts ...commonpass.Option) LoaderOption {
	return func(o *LoaderOptions) {
		o.HandleOptions = append(o.HandleOptions, opts...)
	}
}

// Loader reads filter files from a local dataset tree and loads them into
// handles. Reads are synchronous, with no timeout and no retry.
type Loader struct {
	log    logger.Logger
	opener Opener
	opts   LoaderOptions
}

// NewLoader creates a loader. log may be nil and a nil opener reads the local
// filesystem.
func NewLoader(log logger.Logger, opener Opener, opts ...LoaderOption) *Loader {
	if opener == nil {
		opener = OSOpener{}
	}
	l := &Loader{log: log, opener: opener}
	for _, o := range opts {
		o(&l.opts)
	}
	return l
}

// ReadFilter returns the raw filter file for src, verified against the
// metadata when the loader is configured to do so.
func (l *Loader) ReadFilter(src Source) ([]byte, error) {
	path, err := src.FilterPath()
	if err != nil {
		return nil, err
	}
	data, err := l.readAll(path)
	if err != nil {
		return nil, err
	}
	if !l.opts.VerifyChecksum {
		return data, nil
	}

	md, err := l.ReadMetadata(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	if err := md.Verify(filepath.Base(path), data); err != nil {
		return nil, err
	}
	return data, nil
}

// ReadMetadata reads metadata.json from a version directory.
func (l *Loader) ReadMetadata(versionDir string) (Metadata, error) {
	rc, err := l.opener.Open(filepath.Join(versionDir, MetadataFileName))
	if err != nil {
		return Metadata{}, err
	}
	defer rc.Close()
	return ReadMetadata(rc)
}

// Load reads the filter for src and loads it into h. src.Version is the
// declared version used when the file header carries none.
func (l *Loader) Load(h *commonpass.Handle, src Source) error {
	data, err := l.ReadFilter(src)
	if err != nil {
		l.infof("dataset read failed: %v", err)
		return err
	}
	if err := h.Load(data, src.Version); err != nil {
		path, _ := src.FilterPath()
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadTiers loads each tier of src into its own handle. The tiers are read
// concurrently and any failure fails the whole call.
func (l *Loader) LoadTiers(src Source, tiers ...Tier) (map[Tier]*commonpass.Handle, error) {
	if len(tiers) == 0 {
		return nil, ErrNoTiers
	}

	for _, tier := range tiers {
		if _, err := ParseTier(string(tier)); err != nil {
			return nil, err
		}
	}

	handles := make([]*commonpass.Handle, len(tiers))
	var g errgroup.Group
	for i, tier := range tiers {
		handles[i] = commonpass.NewHandle(l.log, l.opts.HandleOptions...)
		g.Go(func() error {
			return l.Load(handles[i], src.WithTier(tier))
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[Tier]*commonpass.Handle, len(tiers))
	for i, tier := range tiers {
		out[tier] = handles[i]
	}
	return out, nil
}

func (l *Loader) readAll(path string) ([]byte, error) {
	rc, err := l.opener.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func (l *Loader) infof(format string, args ...any) {
	if l.log == nil {
		return
	}
	l.log.Infof(format, args...)
}
