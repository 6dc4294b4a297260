package definition

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-intakeform/pkg/model"
)

// Loader resolves a Source into a form model.
type Loader interface {
	Load(ctx context.Context, src Source) (model.Form, error)
}

// Option configures the default loader.
type Option func(*fileLoader)

// WithFS supplies the filesystem used for SourceFromFS lookups.
func WithFS(fsys fs.FS) Option {
	return func(l *fileLoader) {
		l.fs = fsys
	}
}

// WithEmbeddedFS replaces the built-in definitions used for SourceEmbedded.
func WithEmbeddedFS(fsys fs.FS) Option {
	return func(l *fileLoader) {
		if fsys != nil {
			l.embedded = fsys
		}
	}
}

type fileLoader struct {
	fs       fs.FS
	embedded fs.FS
}

var _ Loader = (*fileLoader)(nil)

// NewLoader returns a loader handling file, fs.FS, and embedded sources.
func NewLoader(options ...Option) Loader {
	l := &fileLoader{embedded: EmbeddedFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Load reads and parses the document referenced by src.
func (l *fileLoader) Load(ctx context.Context, src Source) (model.Form, error) {
	if src == nil {
		return model.Form{}, errors.New("definition: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return model.Form{}, err
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case SourceKindFile:
		data, err = os.ReadFile(src.Location())
	case SourceKindFS:
		data, err = readFS(l.fs, src.Location())
	case SourceKindEmbedded:
		data, err = readFS(l.embedded, src.Location())
	default:
		return model.Form{}, fmt.Errorf("%w: %q", ErrUnsupportedSource, src.Kind())
	}
	if err != nil {
		return model.Form{}, fmt.Errorf("definition: read %s: %w", src.Location(), err)
	}

	return Parse(data, src.Location())
}

func readFS(fsys fs.FS, name string) ([]byte, error) {
	if fsys == nil {
		return nil, errors.New("filesystem is not configured")
	}
	if name == "" {
		return nil, errors.New("path is required")
	}
	return fs.ReadFile(fsys, name)
}

// Default loads the embedded business intake form.
func Default() (model.Form, error) {
	return NewLoader().Load(context.Background(), SourceEmbedded())
}

// MustDefault is Default for init-time wiring; it panics on error.
func MustDefault() model.Form {
	form, err := Default()
	if err != nil {
		panic(err)
	}
	return form
}
