package orchestrator

import (
	"fmt"
	"maps"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-intakeform/pkg/renderers/html/components"
)

const (
	DefaultThemeName    = "intake"
	DefaultThemeVariant = "screen"
	PrintThemeVariant   = "print"
)

// WithThemeSelector resolves themes through selector instead of the built-in
// manifests.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeProvider resolves themes from provider through a go-theme selector.
// defaultTheme and defaultVariant apply when a request names none.
// Manifests passed to WithThemeManifests are ignored once a provider is set.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) Option {
	return func(o *Orchestrator) {
		o.themeProvider = provider
		o.themeName = strings.TrimSpace(defaultTheme)
		o.themeVariant = strings.TrimSpace(defaultVariant)
	}
}

// WithThemeManifests registers manifests alongside the built-in intake theme.
func WithThemeManifests(manifests ...*theme.Manifest) Option {
	return func(o *Orchestrator) {
		o.themeManifests = append(o.themeManifests, manifests...)
	}
}

// WithTheme sets the theme and variant used when a request names none.
func WithTheme(name, variant string) Option {
	return func(o *Orchestrator) {
		o.themeName = strings.TrimSpace(name)
		o.themeVariant = strings.TrimSpace(variant)
	}
}

// WithThemeFallbacks overrides the partials used when a theme does not name a
// template for a component.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = maps.Clone(fallbacks)
	}
}

// WithoutTheme renders without any theme configuration.
func WithoutTheme() Option {
	return func(o *Orchestrator) {
		o.themeDisabled = true
	}
}

// DefaultThemeManifest describes the built-in look: blue headings, red
// required markers and grey rules, plus a monochrome print variant.
func DefaultThemeManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultThemeName,
		Version: "1.0.0",
		Tokens: map[string]string{
			"heading-color":      "#1e3a8a",
			"text-color":         "#1f2937",
			"label-color":        "#374151",
			"muted-color":        "#6b7280",
			"required-color":     "#ef4444",
			"rule-color":         "#9ca3af",
			"index-color":        "#9ca3af",
			"divider-color":      "#e5e7eb",
			"accent-color":       "#2563eb",
			"callout-background": "#eff6ff",
			"callout-border":     "#bfdbfe",
			"page-background":    "#f3f4f6",
			"sheet-background":   "#ffffff",
		},
		Variants: map[string]theme.Variant{
			DefaultThemeVariant: {},
			PrintThemeVariant: {
				Tokens: map[string]string{
					"heading-color":      "#000000",
					"text-color":         "#000000",
					"label-color":        "#000000",
					"muted-color":        "#404040",
					"required-color":     "#000000",
					"rule-color":         "#000000",
					"index-color":        "#404040",
					"callout-background": "#ffffff",
					"callout-border":     "#000000",
					"page-background":    "#ffffff",
				},
			},
		},
	}
}

func defaultThemeFallbacks() map[string]string {
	const prefix = "templates/components/"
	return map[string]string{
		components.PartialSection:      prefix + "section.tmpl",
		components.PartialQuestion:     prefix + "question.tmpl",
		components.PartialAnswerSpace:  prefix + "answer_space.tmpl",
		components.PartialNumberedList: prefix + "numbered_list.tmpl",
		components.PartialChoice:       prefix + "choice.tmpl",
		components.PartialNote:         prefix + "note.tmpl",
		components.PartialPageBreak:    prefix + "page_break.tmpl",
		components.PartialPrintButton:  prefix + "print_button.tmpl",
	}
}

func (o *Orchestrator) ensureThemeSelector() error {
	if o.themeFallbacks == nil {
		o.themeFallbacks = defaultThemeFallbacks()
	}
	if o.themeDisabled || o.themeSelector != nil {
		return nil
	}

	provider := o.themeProvider
	if provider == nil {
		registry := theme.NewRegistry()
		for _, manifest := range append([]*theme.Manifest{DefaultThemeManifest()}, o.themeManifests...) {
			if manifest == nil {
				continue
			}
			if err := registry.Register(manifest); err != nil {
				return fmt.Errorf("orchestrator: theme: register %q: %w", manifest.Name, err)
			}
		}
		provider = registry
	}

	defaultTheme, defaultVariant := o.themeName, o.themeVariant
	if defaultTheme == "" {
		defaultTheme = DefaultThemeName
	}
	if defaultVariant == "" {
		defaultVariant = DefaultThemeVariant
	}
	o.themeSelector = strictSelector{
		Selector: theme.Selector{
			Registry:       provider,
			DefaultTheme:   defaultTheme,
			DefaultVariant: defaultVariant,
		},
	}
	return nil
}

func (o *Orchestrator) resolveTheme(req Request) (*theme.RendererConfig, error) {
	if o.themeDisabled || o.themeSelector == nil {
		return nil, nil
	}

	name := strings.TrimSpace(req.ThemeName)
	if name == "" {
		name = o.themeName
	}
	variant := strings.TrimSpace(req.ThemeVariant)
	if variant == "" {
		variant = o.themeVariant
	}

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q: %w", name, err)
	}
	if selection == nil {
		return nil, nil
	}
	cfg := selection.RendererTheme(o.themeFallbacks)
	return &cfg, nil
}

// strictSelector rejects names and variants that were asked for but are not
// registered. theme.Selector would fall back to the default theme instead.
// A missing default variant resolves to the base manifest.
type strictSelector struct {
	theme.Selector
}

var _ theme.ThemeSelector = strictSelector{}

func (s strictSelector) Select(name, variant string, opts ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	variant = strings.TrimSpace(variant)

	selection, err := s.Selector.Select(name, variant, opts...)
	if err != nil {
		return nil, err
	}
	manifest := selection.Manifest
	if manifest == nil {
		return selection, nil
	}
	if name != "" && !strings.EqualFold(manifest.Name, name) {
		return nil, fmt.Errorf("%w: %s", theme.ErrThemeNotFound, name)
	}
	selection.Theme = manifest.Name

	if _, ok := manifest.Variants[selection.Variant]; !ok && selection.Variant != "" {
		if variant != "" {
			return nil, fmt.Errorf("theme %q has no variant %q", manifest.Name, variant)
		}
		selection.Variant = ""
	}
	return selection, nil
}
