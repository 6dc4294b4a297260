package render

import (
	"context"

	"github.com/goliatone/go-intakeform/pkg/model"
)

// Renderer converts a form into a printable byte representation (HTML, text).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.Form, options RenderOptions) ([]byte, error)
}
