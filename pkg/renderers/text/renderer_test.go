package text_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-intakeform/pkg/model"
	"github.com/goliatone/go-intakeform/pkg/render"
	"github.com/goliatone/go-intakeform/pkg/renderers/text"
	"github.com/goliatone/go-intakeform/pkg/testsupport"
)

func renderPlain(t *testing.T, form model.Form, options render.RenderOptions) string {
	t.Helper()

	options.Plain = true
	output, err := text.New(text.WithLineWidth(20)).Render(testsupport.Context(), form, options)
	require.NoError(t, err)
	return string(output)
}

func TestRenderer_Metadata(t *testing.T) {
	renderer := text.New()
	assert.Equal(t, "text", renderer.Name())
	assert.Equal(t, "text/plain; charset=utf-8", renderer.ContentType())
}

func TestRenderer_PromptsAndRequiredMarkers(t *testing.T) {
	output := renderPlain(t, testsupport.MustDefaultForm(t), render.RenderOptions{})

	var prompts []string
	required := map[string]bool{}
	for _, line := range strings.Split(output, "\n") {
		number, _, ok := strings.Cut(line, ". ")
		if !ok || number == "" || strings.Trim(number, "0123456789") != "" {
			continue
		}
		if prompt, marked := strings.CutSuffix(line, " *"); marked {
			required[number] = true
			line = prompt
		}
		prompts = append(prompts, line)
	}

	if diff := testsupport.CompareGolden(testsupport.IntakePrompts(), prompts); diff != "" {
		t.Fatalf("prompt mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, map[string]bool{"1": true, "9": true, "13": true}, required)
}

func TestRenderer_AnswerLinesAndLists(t *testing.T) {
	form := model.Form{
		Header: model.Header{Title: "Sample"},
		Sections: []model.Section{
			model.NewSection("One",
				model.NewQuestion("1", "Three", model.WithContent(model.AnswerLines(3))),
				model.NewQuestion("2", "None", model.WithContent(model.AnswerLines(0))),
				model.NewQuestion("3", "Keywords", model.WithContent(model.NumberedList(4, 2))),
				model.NewQuestion("4", "Services", model.WithContent(model.NumberedList(3, 1))),
				model.NewQuestion("5", "WhatsApp?", model.WithContent(model.Choice("Yes", "No"))),
			),
		},
	}
	output := renderPlain(t, form, render.RenderOptions{})
	rule := strings.Repeat("_", 20)

	assert.Contains(t, output, "1. Three\n   "+rule+"\n   "+rule+"\n   "+rule+"\n\n2. None\n\n3. Keywords")
	assert.Contains(t, output, "   1. ________   2. ________\n   3. ________   4. ________\n")
	assert.Contains(t, output, "   1. _______________\n   2. _______________\n   3. _______________\n")
	assert.Contains(t, output, "   [ ] Yes    [ ] No\n")
}

func TestRenderer_DefaultFormStructure(t *testing.T) {
	output := renderPlain(t, testsupport.MustDefaultForm(t), render.RenderOptions{})

	assert.True(t, strings.HasPrefix(output, "BUSINESS INFORMATION FORM\n"))
	assert.Contains(t, output, "  - Complete all required fields (marked with *).\n")
	assert.Contains(t, output, `[Please attach image files separately. Label them clearly (e.g., "Product 1," "Team Photo").]`)
	assert.Equal(t, 1, strings.Count(output, "\f"))
	assert.Contains(t, output, "\f\nServices / Products\n")

	for _, title := range []string{
		"Business Details & Branding", "About Your Business", "Marketing & SEO",
		"Services / Products", "Contact & Social Media", "Business Images",
	} {
		assert.Equal(t, 1, strings.Count(output, "\n"+title+"\n"), "section %q", title)
	}

	keywordCell := strings.Repeat("_", 8)
	assert.Contains(t, output, "    1. "+keywordCell+"    2. "+keywordCell+"\n")
	assert.Contains(t, output, "    9. "+keywordCell+"   10. "+keywordCell+"\n")

	serviceCell := strings.Repeat("_", 14)
	for _, label := range []string{" 1.", " 5.", "10."} {
		assert.Contains(t, output, "   "+label+" "+serviceCell+"\n")
	}
	assert.NotContains(t, output, "<span")
}

func TestRenderer_SubsetAndStyled(t *testing.T) {
	form := testsupport.MustDefaultForm(t)

	output := renderPlain(t, form, render.RenderOptions{Sections: []string{"services"}})
	assert.NotContains(t, output, "\f")
	assert.NotContains(t, output, "Business Name")
	assert.Contains(t, output, "12. List up to 10 key services or products")

	styled, err := text.New().Render(testsupport.Context(), form, render.RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, string(styled), "1. Business Name")
	assert.Contains(t, string(styled), "Services / Products")
}

func TestRenderer_UnsupportedBlock(t *testing.T) {
	form := model.Form{
		Header: model.Header{Title: "Sample"},
		Sections: []model.Section{
			model.NewSection("One", model.NewQuestion("1", "Sign", model.WithContent(model.Block{Kind: "signature"}))),
		},
	}
	_, err := text.New().Render(testsupport.Context(), form, render.RenderOptions{})
	assert.Error(t, err)
}
