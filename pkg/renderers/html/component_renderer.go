package html

import (
	"bytes"
	"fmt"

	"github.com/goliatone/go-intakeform/pkg/model"
	"github.com/goliatone/go-intakeform/pkg/render/template"
	"github.com/goliatone/go-intakeform/pkg/renderers/html/components"
	"github.com/goliatone/go-intakeform/pkg/sanitize"
)

type componentRenderer struct {
	templates template.TemplateRenderer
	registry  *components.Registry
	partials  map[string]string
	classes   map[string]any
	config    map[string]any

	used     []string
	usedSeen map[string]struct{}
}

func newComponentRenderer(templates template.TemplateRenderer, registry *components.Registry, partials map[string]string, classes map[string]any, config map[string]any) *componentRenderer {
	if registry == nil {
		registry = components.NewDefaultRegistry()
	}
	return &componentRenderer{
		templates: templates,
		registry:  registry,
		partials:  partials,
		classes:   classes,
		config:    config,
		usedSeen:  make(map[string]struct{}),
	}
}

func (r *componentRenderer) render(name string, payload map[string]any) (string, error) {
	descriptor, ok := r.registry.Descriptor(name)
	if !ok {
		return "", fmt.Errorf("component %q not registered", name)
	}

	payload["classes"] = r.classes
	data := components.ComponentData{
		Template:      r.templates,
		ThemePartials: r.partials,
		Config:        r.config,
	}

	var buf bytes.Buffer
	if err := descriptor.Renderer(&buf, payload, data); err != nil {
		return "", fmt.Errorf("render component %q: %w", name, err)
	}

	if _, seen := r.usedSeen[descriptor.Name]; !seen {
		r.usedSeen[descriptor.Name] = struct{}{}
		r.used = append(r.used, descriptor.Name)
	}
	return buf.String(), nil
}

func (r *componentRenderer) renderSection(section model.Section) (string, error) {
	questions := make([]any, 0, len(section.Questions))
	for _, question := range section.Questions {
		markup, err := r.renderQuestion(question)
		if err != nil {
			return "", fmt.Errorf("section %q: %w", section.ID, err)
		}
		questions = append(questions, markup)
	}

	pageBreak := ""
	if section.PageBreakBefore {
		markup, err := r.render(components.NamePageBreak, map[string]any{})
		if err != nil {
			return "", err
		}
		pageBreak = markup
	}

	return r.render(components.NameSection, map[string]any{
		"section": map[string]any{
			"id":    section.ID,
			"title": section.Title,
		},
		"page_break": pageBreak,
		"questions":  questions,
	})
}

func (r *componentRenderer) renderQuestion(question model.Question) (string, error) {
	content := make([]any, 0, len(question.Content))
	for idx, block := range question.Content {
		markup, err := r.renderBlock(block)
		if err != nil {
			return "", fmt.Errorf("question %s block %d: %w", question.Number, idx+1, err)
		}
		if markup == "" {
			continue
		}
		content = append(content, markup)
	}

	return r.render(components.NameQuestion, map[string]any{
		"question": map[string]any{
			"number":   question.Number,
			"label":    question.Label,
			"prompt":   question.Number + ". " + question.Label,
			"required": question.Required,
		},
		"content": content,
	})
}

func (r *componentRenderer) renderBlock(block model.Block) (string, error) {
	switch block.Kind {
	case model.BlockAnswerSpace:
		return r.render(components.NameAnswerSpace, map[string]any{
			"lines": block.Lines,
			"slots": intsToAny(block.LineSlots()),
		})
	case model.BlockNumberedList:
		rows := make([]any, 0, block.Count)
		for _, row := range block.Rows() {
			rows = append(rows, map[string]any{
				"index": row.Index,
				"label": row.Label,
			})
		}
		return r.render(components.NameNumberedList, map[string]any{
			"count":   block.Count,
			"columns": block.Columns,
			"grid":    block.Grid(),
			"rows":    rows,
		})
	case model.BlockChoice:
		return r.render(components.NameChoice, map[string]any{
			"options": stringsToAny(block.Options),
		})
	case model.BlockNote:
		return r.render(components.NameNote, map[string]any{
			"text": sanitize.Inline(block.Text),
		})
	default:
		// Custom kinds resolve to a component registered under the same name.
		return r.render(string(block.Kind), map[string]any{
			"block": block,
		})
	}
}

func (r *componentRenderer) renderPrintControl(control model.PrintControl) (string, error) {
	icon := sanitize.Icon(control.Icon)
	if icon == "" {
		icon = DefaultPrintIcon
	}
	label := control.Label
	if label == "" {
		label = "Print Form"
	}
	return r.render(components.NamePrintButton, map[string]any{
		"label": label,
		"icon":  icon,
	})
}

func (r *componentRenderer) stylesheets() []string {
	return r.registry.Stylesheets(r.used)
}

func intsToAny(values []int) []any {
	out := make([]any, 0, len(values))
	for _, value := range values {
		out = append(out, value)
	}
	return out
}

func stringsToAny(values []string) []any {
	out := make([]any, 0, len(values))
	for _, value := range values {
		out = append(out, value)
	}
	return out
}
