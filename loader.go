package intakeform

import (
	"github.com/goliatone/go-intakeform/pkg/definition"
	"github.com/goliatone/go-intakeform/pkg/model"
)

// NewLoader constructs a definition loader while keeping the concrete type
// hidden from consumers.
func NewLoader(options ...definition.Option) definition.Loader {
	return definition.NewLoader(options...)
}

// Parse decodes a JSON or YAML form definition.
func Parse(data []byte, source string) (model.Form, error) {
	return definition.Parse(data, source)
}

// DefaultForm returns the built-in business intake form.
func DefaultForm() (model.Form, error) {
	return definition.Default()
}
