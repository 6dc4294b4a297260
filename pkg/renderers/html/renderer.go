package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/goliatone/go-template/templatehooks"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-intakeform/pkg/model"
	"github.com/goliatone/go-intakeform/pkg/render"
	rendertemplate "github.com/goliatone/go-intakeform/pkg/render/template"
	gotemplate "github.com/goliatone/go-intakeform/pkg/render/template/gotemplate"
	"github.com/goliatone/go-intakeform/pkg/renderers/html/components"
	"github.com/goliatone/go-intakeform/pkg/sanitize"
)

// Name is the registry key of the HTML renderer.
const Name = "html"

// ThemeStylesheetAsset is the theme asset key linked as an extra stylesheet.
const ThemeStylesheetAsset = "stylesheet"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	registry         *components.Registry
	stylesheets      []string
	inlineStyles     bool
	lang             string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithComponentRegistry replaces the default component registry.
func WithComponentRegistry(registry *components.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithStylesheet links additional stylesheets in the document head.
func WithStylesheet(hrefs ...string) Option {
	return func(cfg *config) {
		for _, href := range hrefs {
			if trimmed := strings.TrimSpace(href); trimmed != "" {
				cfg.stylesheets = append(cfg.stylesheets, trimmed)
			}
		}
	}
}

// WithoutInlineStyles stops embedding the default stylesheet, e.g. when the
// preview server links it from /assets instead.
func WithoutInlineStyles() Option {
	return func(cfg *config) {
		cfg.inlineStyles = false
	}
}

// WithLanguage sets the document lang attribute.
func WithLanguage(lang string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(lang); trimmed != "" {
			cfg.lang = trimmed
		}
	}
}

// Renderer produces a standalone printable HTML document.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	registry     *components.Registry
	stylesheets  []string
	inlineStyles bool
	lang         string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:   TemplatesFS(),
		inlineStyles: true,
		lang:         "en",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	templates := cfg.templateRenderer
	if templates == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
			gotemplate.WithPostHooks(templatehooks.NewCommonHooks().RemoveTrailingWhitespaceHook()),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		templates = engine
	}

	registry := cfg.registry
	if registry == nil {
		registry = components.NewDefaultRegistry()
	}

	return &Renderer{
		templates:    templates,
		registry:     registry,
		stylesheets:  slices.Clone(cfg.stylesheets),
		inlineStyles: cfg.inlineStyles,
		lang:         cfg.lang,
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render writes the complete document. Sections listed in options are applied
// as a subset; the print button is dropped when hidden by the form or options.
func (r *Renderer) Render(ctx context.Context, form model.Form, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	render.ApplySubset(&form, options.Sections)

	partials := themePartials(options.Theme)
	classes := resolveChromeClasses(options.ChromeClasses)
	cr := newComponentRenderer(r.templates, r.registry, partials, classes, metadataConfig(form.Metadata))

	sections := make([]any, 0, len(form.Sections))
	for _, section := range form.Sections {
		markup, err := cr.renderSection(section)
		if err != nil {
			return nil, fmt.Errorf("html renderer: %w", err)
		}
		sections = append(sections, markup)
	}

	printControl := ""
	if !options.HidePrintControl && !form.Print.Hidden {
		markup, err := cr.renderPrintControl(form.Print)
		if err != nil {
			return nil, fmt.Errorf("html renderer: %w", err)
		}
		printControl = markup
	}

	instructions := make([]any, 0, len(form.Instructions.Items))
	for _, item := range form.Instructions.Items {
		if cleaned := sanitize.Inline(item); cleaned != "" {
			instructions = append(instructions, cleaned)
		}
	}

	stylesheets := slices.Clone(r.stylesheets)
	stylesheets = append(stylesheets, themeStylesheets(options.Theme)...)
	stylesheets = append(stylesheets, cr.stylesheets()...)

	inlineStylesheet := ""
	if r.inlineStyles {
		inlineStylesheet = defaultStylesheet()
	}

	payload := map[string]any{
		"lang":    r.lang,
		"form_id": form.ID,
		"header": map[string]any{
			"title":    form.Header.Title,
			"subtitle": form.Header.Subtitle,
			"logo_url": form.Header.LogoURL,
			"logo_alt": form.Header.LogoAlt,
		},
		"instructions": map[string]any{
			"title": form.Instructions.Title,
			"items": instructions,
		},
		"footer": map[string]any{
			"thanks": form.Footer.Thanks,
			"note":   form.Footer.Note,
			"credit": form.Footer.Credit,
		},
		"sections":          sections,
		"print_control":     printControl,
		"classes":           classes,
		"stylesheets":       stringsToAny(stylesheets),
		"inline_stylesheet": inlineStylesheet,
		"theme":             themeInfo(options.Theme),
		"css_vars":          themeCSSVars(options.Theme),
	}

	templateName := pageTemplate
	if candidate := strings.TrimSpace(partials[components.PartialPage]); candidate != "" {
		templateName = candidate
	}

	result, err := r.templates.RenderTemplate(templateName, payload)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func themePartials(cfg *theme.RendererConfig) map[string]string {
	if cfg == nil || len(cfg.Partials) == 0 {
		return nil
	}
	out := make(map[string]string, len(cfg.Partials))
	for key, value := range cfg.Partials {
		out[key] = value
	}
	return out
}

func themeStylesheets(cfg *theme.RendererConfig) []string {
	if cfg == nil || cfg.AssetURL == nil {
		return nil
	}
	if href := strings.TrimSpace(cfg.AssetURL(ThemeStylesheetAsset)); href != "" {
		return []string{href}
	}
	return nil
}

func themeInfo(cfg *theme.RendererConfig) map[string]any {
	if cfg == nil {
		return map[string]any{}
	}
	return map[string]any{
		"name":    cfg.Theme,
		"variant": cfg.Variant,
	}
}

func themeCSSVars(cfg *theme.RendererConfig) map[string]any {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return nil
	}
	out := make(map[string]any, len(cfg.CSSVars))
	for key, value := range cfg.CSSVars {
		out[key] = value
	}
	return out
}

func metadataConfig(metadata map[string]string) map[string]any {
	if len(metadata) == 0 {
		return nil
	}
	out := make(map[string]any, len(metadata))
	for key, value := range metadata {
		out[key] = value
	}
	return out
}
