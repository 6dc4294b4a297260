package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-intakeform/pkg/definition"
	"github.com/goliatone/go-intakeform/pkg/model"
	"github.com/goliatone/go-intakeform/pkg/render"
	"github.com/goliatone/go-intakeform/pkg/renderers/html"
	"github.com/goliatone/go-intakeform/pkg/renderers/text"
)

const defaultRendererName = html.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom definition loader.
func WithLoader(loader definition.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithDecorators registers decorators that run against the loaded form before
// rendering.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		if len(decorators) == 0 {
			return
		}
		o.decorators = append(o.decorators, decorators...)
	}
}

// Orchestrator coordinates loading, decorating, theming and rendering. Missing
// dependencies fall back to the built-in form, the html and text renderers and
// the intake theme.
type Orchestrator struct {
	loader          definition.Loader
	registry        *render.Registry
	defaultRenderer string
	decorators      []model.Decorator

	themeSelector  theme.ThemeSelector
	themeProvider  theme.ThemeProvider
	themeManifests []*theme.Manifest
	themeFallbacks map[string]string
	themeName      string
	themeVariant   string
	themeDisabled  bool

	initOnce      sync.Once
	initialiseErr error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes a single rendering.
type Request struct {
	// Form bypasses the loader when set.
	Form *model.Form

	// Source names the definition to load. Nil selects the embedded form.
	Source definition.Source

	// Renderer names the renderer to use; empty uses the default.
	Renderer string

	ThemeName    string
	ThemeVariant string

	// Sections restricts output to the named sections, by ID or title.
	Sections []string

	HidePrintControl bool

	ChromeClasses *render.ChromeClasses
	Plain         bool
}

// Generate loads the form, applies decorators, resolves the theme and renders
// the result with the requested renderer.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	o.applyDefaults()
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	form, err := o.resolveForm(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := o.applyDecorators(&form); err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	themeConfig, err := o.resolveTheme(req)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, form, render.RenderOptions{
		Theme:            themeConfig,
		Sections:         req.Sections,
		HidePrintControl: req.HidePrintControl,
		ChromeClasses:    req.ChromeClasses,
		Plain:            req.Plain,
	})
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Renderer exposes the renderer the orchestrator would use for name.
func (o *Orchestrator) Renderer(name string) (render.Renderer, error) {
	o.applyDefaults()
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	return o.rendererFor(name)
}

// Form loads and decorates a form without rendering it.
func (o *Orchestrator) Form(ctx context.Context, src definition.Source) (model.Form, error) {
	o.applyDefaults()
	form, err := o.resolveForm(ctx, Request{Source: src})
	if err != nil {
		return model.Form{}, err
	}
	if err := o.applyDecorators(&form); err != nil {
		return model.Form{}, err
	}
	return form, nil
}

func (o *Orchestrator) resolveForm(ctx context.Context, req Request) (model.Form, error) {
	if req.Form != nil {
		return cloneForm(*req.Form), nil
	}
	src := req.Source
	if src == nil {
		src = definition.SourceEmbedded()
	}
	form, err := o.loader.Load(ctx, src)
	if err != nil {
		return model.Form{}, fmt.Errorf("orchestrator: load form: %w", err)
	}
	return form, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDecorators(form *model.Form) error {
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(form); err != nil {
			return fmt.Errorf("orchestrator: decorate form: %w", err)
		}
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	o.initOnce.Do(func() {
		if o.loader == nil {
			o.loader = definition.NewLoader()
		}
		if o.registry == nil {
			o.registry = render.NewRegistry()
			renderer, err := html.New()
			if err != nil {
				o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
				return
			}
			o.registry.MustRegister(renderer)
			o.registry.MustRegister(text.New())
		}
		if o.defaultRenderer == "" {
			o.defaultRenderer = defaultRendererName
		}
		if err := o.ensureThemeSelector(); err != nil {
			o.initialiseErr = err
		}
	})
}

// cloneForm copies the section and question slices so decorators and subsets
// never mutate a caller's form.
func cloneForm(form model.Form) model.Form {
	out := form
	out.Instructions.Items = append([]string(nil), form.Instructions.Items...)
	if form.Metadata != nil {
		out.Metadata = make(map[string]string, len(form.Metadata))
		for key, value := range form.Metadata {
			out.Metadata[key] = value
		}
	}
	out.Sections = make([]model.Section, len(form.Sections))
	for i, section := range form.Sections {
		section.Questions = append([]model.Question(nil), section.Questions...)
		out.Sections[i] = section
	}
	return out
}
