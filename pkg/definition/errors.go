package definition

import "errors"

var (
	// ErrEmptyDocument is returned for blank definition files.
	ErrEmptyDocument = errors.New("definition: document is empty")
	// ErrInvalidDocument wraps structural problems (missing titles, unknown
	// block kinds, negative counts).
	ErrInvalidDocument = errors.New("definition: invalid document")
	// ErrUnsupportedSource is returned when a loader cannot resolve a source kind.
	ErrUnsupportedSource = errors.New("definition: unsupported source")
)
