package intakeform

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-intakeform/pkg/model"
)

func TestAssetsFSContainsStylesheet(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), "intakeform.css")
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	if !strings.Contains(string(data), "@media print") {
		t.Fatalf("expected print media rules in stylesheet")
	}
}

func TestEmbeddedTemplatesContainPage(t *testing.T) {
	if _, err := fs.Stat(EmbeddedTemplates(), "templates/page.tmpl"); err != nil {
		t.Fatalf("expected page template: %v", err)
	}
}

func TestGenerateHTML_Branding(t *testing.T) {
	output, err := GenerateHTML(context.Background(), nil, WithBranding(model.Branding{Title: "Acme Onboarding"}))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(output), "Acme Onboarding") {
		t.Fatalf("expected branded title")
	}
	if strings.Count(string(output), "window.print()") != 1 {
		t.Fatalf("expected exactly one print trigger")
	}
}

func TestGenerateText(t *testing.T) {
	output, err := GenerateText(context.Background(), nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	got := string(output)
	prev := -1
	for _, prompt := range []string{"1. Business Name", "9. What is the main goal", "21. "} {
		idx := strings.Index(got, prompt)
		if idx <= prev {
			t.Fatalf("expected %q after previous prompt", prompt)
		}
		prev = idx
	}
}

func TestGenerateHTMLFromForm(t *testing.T) {
	form := Form{
		Header:   model.Header{Title: "Mini"},
		Sections: []model.Section{model.NewSection("Only", model.NewQuestion("1", "Name"))},
	}
	output, err := GenerateHTMLFromForm(context.Background(), form, WithTheme("intake", "print"))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(output), `data-fg-variant="print"`) {
		t.Fatalf("expected print variant")
	}
}

func TestGenerateHTML_WithThemeProvider(t *testing.T) {
	provider := theme.NewRegistry()
	if err := provider.Register(&theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens:  map[string]string{"heading-color": "#112233"},
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	output, err := GenerateHTML(context.Background(), nil, WithThemeProvider(provider, "acme", ""))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	got := string(output)
	if !strings.Contains(got, `data-fg-theme="acme"`) {
		t.Fatalf("expected acme theme marker")
	}
	if !strings.Contains(got, "--heading-color: #112233") {
		t.Fatalf("expected provider token as css variable")
	}
}

func TestDefaultFormAndParse(t *testing.T) {
	form, err := DefaultForm()
	if err != nil {
		t.Fatalf("default form: %v", err)
	}
	if got := len(form.Questions()); got != 21 {
		t.Fatalf("expected 21 questions, got %d", got)
	}
	if _, err := Parse([]byte("header: {title: x}\nsections: [{title: a, questions: [{number: '1', label: b}]}]"), "inline"); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if NewLoader() == nil {
		t.Fatalf("expected loader")
	}
}
