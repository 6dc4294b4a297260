package intakeform

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-intakeform/pkg/definition"
	"github.com/goliatone/go-intakeform/pkg/model"
	"github.com/goliatone/go-intakeform/pkg/orchestrator"
	"github.com/goliatone/go-intakeform/pkg/render"
	"github.com/goliatone/go-intakeform/pkg/renderers/html"
	"github.com/goliatone/go-intakeform/pkg/renderers/text"
)

// Request aliases orchestrator.Request for callers that only import the root
// package.
type Request = orchestrator.Request

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// ChromeClasses aliases render.ChromeClasses.
type ChromeClasses = render.ChromeClasses

// Form aliases model.Form.
type Form = model.Form

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML loads the form named by source (nil for the built-in business
// intake form) and renders it as a printable HTML document.
func GenerateHTML(ctx context.Context, source definition.Source, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: html.Name,
	})
}

// GenerateText renders the form as unstyled plain text.
func GenerateText(ctx context.Context, source definition.Source, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: text.Name,
		Plain:    true,
	})
}

// GenerateHTMLFromForm renders an in-memory form, bypassing the loader.
func GenerateHTMLFromForm(ctx context.Context, form model.Form, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Form:     &form,
		Renderer: html.Name,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeProvider resolves themes from provider with the given defaults.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) orchestrator.Option {
	return orchestrator.WithThemeProvider(provider, defaultTheme, defaultVariant)
}

// WithThemeManifests registers extra theme manifests next to the built-in one.
func WithThemeManifests(manifests ...*theme.Manifest) orchestrator.Option {
	return orchestrator.WithThemeManifests(manifests...)
}

// WithTheme selects the default theme and variant.
func WithTheme(name, variant string) orchestrator.Option {
	return orchestrator.WithTheme(name, variant)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}

// WithBranding overrides the logo, title, subtitle and credit of the loaded
// form.
func WithBranding(branding model.Branding) orchestrator.Option {
	if branding.Empty() {
		return nil
	}
	return orchestrator.WithDecorators(branding)
}
