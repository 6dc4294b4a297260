package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-intakeform/pkg/definition"
	"github.com/goliatone/go-intakeform/pkg/model"
	"github.com/goliatone/go-intakeform/pkg/render"
	"github.com/goliatone/go-intakeform/pkg/renderers/html/components"
)

func TestOrchestrator_DefaultsRenderEmbeddedForm(t *testing.T) {
	orch := New()

	output, err := orch.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	got := string(output)
	if !strings.Contains(got, "Business Information Form") {
		t.Fatalf("expected embedded form title in output")
	}
	if !strings.Contains(got, "--heading-color: #1e3a8a;") {
		t.Fatalf("expected intake theme tokens as css vars")
	}

	text, err := orch.Generate(context.Background(), Request{Renderer: "text", Plain: true})
	if err != nil {
		t.Fatalf("generate text: %v", err)
	}
	if !strings.Contains(string(text), "1. Business Name *") {
		t.Fatalf("expected text prompt, got:\n%s", text)
	}
}

func TestOrchestrator_PassesRequestToRenderer(t *testing.T) {
	renderer := &captureRenderer{}
	orch := New(
		WithRegistry(render.NewRegistry(renderer)),
		WithDefaultRenderer(renderer.Name()),
	)

	form := sampleForm()
	_, err := orch.Generate(context.Background(), Request{
		Form:             &form,
		Sections:         []string{"b"},
		HidePrintControl: true,
		ThemeVariant:     PrintThemeVariant,
		Plain:            true,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	opts := renderer.options
	if len(opts.Sections) != 1 || opts.Sections[0] != "b" {
		t.Fatalf("sections not forwarded: %v", opts.Sections)
	}
	if !opts.HidePrintControl || !opts.Plain {
		t.Fatalf("flags not forwarded: %+v", opts)
	}
	if opts.Theme == nil || opts.Theme.Theme != DefaultThemeName || opts.Theme.Variant != PrintThemeVariant {
		t.Fatalf("unexpected theme config: %+v", opts.Theme)
	}
	if opts.Theme.Tokens["heading-color"] != "#000000" {
		t.Fatalf("expected print variant tokens, got %s", opts.Theme.Tokens["heading-color"])
	}
	if opts.Theme.Tokens["divider-color"] != "#e5e7eb" {
		t.Fatalf("expected base tokens kept under variant")
	}
	if renderer.form.Header.Title != "Sample" {
		t.Fatalf("expected supplied form, got %q", renderer.form.Header.Title)
	}
}

func TestOrchestrator_DecoratorsDoNotMutateCallerForm(t *testing.T) {
	renderer := &captureRenderer{}
	orch := New(
		WithRegistry(render.NewRegistry(renderer)),
		WithDefaultRenderer(renderer.Name()),
		WithDecorators(model.Branding{Title: "Acme Intake"}, model.DecoratorFunc(func(f *model.Form) error {
			f.Sections[0].Title = "Changed"
			return nil
		})),
	)

	form := sampleForm()
	if _, err := orch.Generate(context.Background(), Request{Form: &form}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if renderer.form.Header.Title != "Acme Intake" || renderer.form.Sections[0].Title != "Changed" {
		t.Fatalf("decorators not applied: %+v", renderer.form.Header)
	}
	if form.Header.Title != "Sample" || form.Sections[0].Title != "A" {
		t.Fatalf("caller form mutated")
	}
}

func TestOrchestrator_DecoratorError(t *testing.T) {
	boom := errors.New("boom")
	orch := New(
		WithRegistry(render.NewRegistry(&captureRenderer{})),
		WithDecorators(model.DecoratorFunc(func(*model.Form) error { return boom })),
	)
	form := sampleForm()
	if _, err := orch.Generate(context.Background(), Request{Form: &form}); !errors.Is(err, boom) {
		t.Fatalf("expected decorator error, got %v", err)
	}
}

func TestOrchestrator_RendererResolution(t *testing.T) {
	renderer := &captureRenderer{}
	orch := New(WithRegistry(render.NewRegistry(renderer)))
	form := sampleForm()

	if _, err := orch.Generate(context.Background(), Request{Form: &form}); err != nil {
		t.Fatalf("expected fallback to first registered renderer: %v", err)
	}
	if _, err := orch.Generate(context.Background(), Request{Form: &form, Renderer: "pdf"}); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected renderer not found, got %v", err)
	}

	empty := New(WithRegistry(render.NewRegistry()))
	if _, err := empty.Generate(context.Background(), Request{Form: &form}); err == nil {
		t.Fatalf("expected error with empty registry")
	}
}

func TestOrchestrator_LoaderErrorsAndContext(t *testing.T) {
	orch := New(WithRegistry(render.NewRegistry(&captureRenderer{})))

	_, err := orch.Generate(context.Background(), Request{Source: definition.SourceFromFS("missing.yaml")})
	if err == nil || !strings.Contains(err.Error(), "orchestrator: load form") {
		t.Fatalf("expected load error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := orch.Generate(ctx, Request{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
}

func TestOrchestrator_PassesThemeConfigToRenderer(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens:  map[string]string{"brand": "#123456"},
	}
	selection := &theme.Selection{Theme: "acme", Variant: "custom-variant", Manifest: manifest}
	selector := &stubThemeSelector{selection: selection}

	renderer := &captureRenderer{}
	orch := New(
		WithRegistry(render.NewRegistry(renderer)),
		WithThemeSelector(selector),
	)

	form := sampleForm()
	_, err := orch.Generate(context.Background(), Request{
		Form:         &form,
		ThemeName:    "custom-theme",
		ThemeVariant: "custom-variant",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(selector.calls) != 1 {
		t.Fatalf("expected selector called once, got %d", len(selector.calls))
	}
	if selector.calls[0].name != "custom-theme" || selector.calls[0].variant != "custom-variant" {
		t.Fatalf("unexpected selector args: %+v", selector.calls[0])
	}

	cfg := renderer.options.Theme
	if cfg == nil {
		t.Fatalf("expected theme config passed to renderer")
	}
	if cfg.Theme != "acme" || cfg.Variant != "custom-variant" {
		t.Fatalf("unexpected selection: %s/%s", cfg.Theme, cfg.Variant)
	}
	if cfg.Partials[components.PartialQuestion] != defaultThemeFallbacks()[components.PartialQuestion] {
		t.Fatalf("partials not merged with fallbacks")
	}
	if cfg.CSSVars["--brand"] != "#123456" {
		t.Fatalf("css vars not derived from tokens")
	}
}

func TestOrchestrator_SelectorError(t *testing.T) {
	selector := &stubThemeSelector{err: errors.New("no theme")}
	orch := New(WithRegistry(render.NewRegistry(&captureRenderer{})), WithThemeSelector(selector))
	form := sampleForm()
	if _, err := orch.Generate(context.Background(), Request{Form: &form}); err == nil {
		t.Fatalf("expected selector error")
	}
}

func TestOrchestrator_ManifestVariantsAndAssets(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens:  map[string]string{"brand": "#123456"},
		Templates: map[string]string{
			components.PartialNote: "themes/acme/note.tmpl",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files:  map[string]string{"stylesheet": "theme.css"},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens:    map[string]string{"brand": "#654321"},
				Templates: map[string]string{components.PartialChoice: "themes/acme/dark/choice.tmpl"},
				Assets:    theme.Assets{Files: map[string]string{"logo": "logo.dark.svg"}},
			},
		},
	}

	renderer := &captureRenderer{}
	orch := New(
		WithRegistry(render.NewRegistry(renderer)),
		WithThemeManifests(manifest),
		WithTheme("acme", "dark"),
	)
	form := sampleForm()
	if _, err := orch.Generate(context.Background(), Request{Form: &form}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	cfg := renderer.options.Theme
	if cfg.Partials[components.PartialNote] != "themes/acme/note.tmpl" {
		t.Fatalf("expected base template override, got %s", cfg.Partials[components.PartialNote])
	}
	if cfg.Partials[components.PartialChoice] != "themes/acme/dark/choice.tmpl" {
		t.Fatalf("expected variant template override")
	}
	if cfg.Partials[components.PartialSection] != defaultThemeFallbacks()[components.PartialSection] {
		t.Fatalf("fallback partial not applied")
	}
	if cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("expected variant token, got %s", cfg.CSSVars["--brand"])
	}
	if got := cfg.AssetURL("stylesheet"); got != "/assets/themes/acme/theme.css" {
		t.Fatalf("unexpected stylesheet url %s", got)
	}
	if got := cfg.AssetURL("logo"); got != "/assets/themes/acme/logo.dark.svg" {
		t.Fatalf("unexpected variant asset url %s", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("expected empty url for unknown asset, got %s", got)
	}

	if _, err := orch.Generate(context.Background(), Request{Form: &form, ThemeVariant: "sepia"}); err == nil {
		t.Fatalf("expected unknown variant error")
	}
	if _, err := orch.Generate(context.Background(), Request{Form: &form, ThemeName: "nope"}); err == nil {
		t.Fatalf("expected unknown theme error")
	}
}

func TestOrchestrator_WithoutTheme(t *testing.T) {
	renderer := &captureRenderer{}
	orch := New(WithRegistry(render.NewRegistry(renderer)), WithoutTheme())
	form := sampleForm()
	if _, err := orch.Generate(context.Background(), Request{Form: &form}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if renderer.options.Theme != nil {
		t.Fatalf("expected no theme config")
	}
}

func sampleForm() model.Form {
	return model.Form{
		ID:     "sample",
		Header: model.Header{Title: "Sample"},
		Sections: []model.Section{
			model.NewSection("A", model.NewQuestion("1", "Name", model.WithContent(model.AnswerSpace()))),
			model.NewSection("B", model.NewQuestion("2", "Email", model.WithContent(model.AnswerSpace()))),
		},
	}
}

type captureRenderer struct {
	options render.RenderOptions
	form    model.Form
}

func (r *captureRenderer) Name() string        { return "capture" }
func (r *captureRenderer) ContentType() string { return "text/plain" }

func (r *captureRenderer) Render(_ context.Context, form model.Form, opts render.RenderOptions) ([]byte, error) {
	r.options = opts
	r.form = form
	return []byte(form.ID), nil
}

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}

func TestStrictSelector_ImplicitVariantFallsBackToBase(t *testing.T) {
	orch := New(WithThemeManifests(&theme.Manifest{Name: "plain", Version: "1.0.0"}))
	if err := orch.ensureThemeSelector(); err != nil {
		t.Fatalf("ensure selector: %v", err)
	}
	selector := orch.themeSelector

	selection, err := selector.Select("plain", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if selection.Theme != "plain" || selection.Variant != "" {
		t.Fatalf("expected plain base variant, got %s/%q", selection.Theme, selection.Variant)
	}
	if _, err := selector.Select("plain", PrintThemeVariant); err == nil {
		t.Fatalf("expected error for explicit missing variant")
	}
	if _, err := selector.Select("missing", ""); !errors.Is(err, theme.ErrThemeNotFound) {
		t.Fatalf("expected theme not found, got %v", err)
	}

	selection, err = selector.Select("", "")
	if err != nil {
		t.Fatalf("select default: %v", err)
	}
	if selection.Theme != DefaultThemeName || selection.Variant != DefaultThemeVariant {
		t.Fatalf("unexpected default selection %s/%s", selection.Theme, selection.Variant)
	}
}

func TestOrchestrator_PrintVariantMatchesSelectionRendererTheme(t *testing.T) {
	registry := theme.NewRegistry()
	if err := registry.Register(DefaultThemeManifest()); err != nil {
		t.Fatalf("register: %v", err)
	}
	selection, err := theme.Selector{Registry: registry}.Select(DefaultThemeName, PrintThemeVariant)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	want := selection.RendererTheme(defaultThemeFallbacks())

	renderer := &captureRenderer{}
	orch := New(WithRegistry(render.NewRegistry(renderer)))
	form := sampleForm()
	if _, err := orch.Generate(context.Background(), Request{Form: &form, ThemeVariant: PrintThemeVariant}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	got := renderer.options.Theme
	if diff := cmp.Diff(want.Tokens, got.Tokens); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want.CSSVars, got.CSSVars); diff != "" {
		t.Fatalf("css vars mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want.Partials, got.Partials); diff != "" {
		t.Fatalf("partials mismatch (-want +got):\n%s", diff)
	}
	if got.CSSVars["--heading-color"] != "#000000" {
		t.Fatalf("expected monochrome heading, got %s", got.CSSVars["--heading-color"])
	}
}

func TestOrchestrator_WithThemeProviderUsesDefaults(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens:  map[string]string{"brand": "#123456"},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files:  map[string]string{"stylesheet": "theme.css"},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens:    map[string]string{"brand": "#654321"},
				Templates: map[string]string{components.PartialQuestion: "themes/acme/dark/question.tmpl"},
			},
		},
	}
	provider := theme.NewRegistry()
	if err := provider.Register(manifest); err != nil {
		t.Fatalf("register manifest: %v", err)
	}

	renderer := &captureRenderer{}
	orch := New(
		WithRegistry(render.NewRegistry(renderer)),
		WithThemeProvider(provider, "acme", "dark"),
	)
	form := sampleForm()
	if _, err := orch.Generate(context.Background(), Request{Form: &form}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	cfg := renderer.options.Theme
	if cfg == nil {
		t.Fatalf("expected theme config passed to renderer")
	}
	if cfg.Theme != "acme" || cfg.Variant != "dark" {
		t.Fatalf("unexpected selection %s/%s", cfg.Theme, cfg.Variant)
	}
	if cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("expected variant token, got %s", cfg.CSSVars["--brand"])
	}
	if cfg.Partials[components.PartialQuestion] != "themes/acme/dark/question.tmpl" {
		t.Fatalf("expected variant partial, got %s", cfg.Partials[components.PartialQuestion])
	}
	if got := cfg.AssetURL("stylesheet"); got != "/assets/themes/acme/theme.css" {
		t.Fatalf("unexpected stylesheet url %s", got)
	}

	if _, err := orch.Generate(context.Background(), Request{Form: &form, ThemeName: DefaultThemeName}); err == nil {
		t.Fatalf("expected built-in theme to be absent from custom provider")
	}
}
