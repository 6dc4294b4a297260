package components

import (
	"bytes"
	"fmt"
	"strings"
)

const templatePrefix = "templates/components/"

// NewDefaultRegistry constructs a registry with the built-in printable form
// components.
func NewDefaultRegistry() *Registry {
	registry := New()

	registry.MustRegister(NameSection, Descriptor{
		Renderer: templateComponentRenderer(PartialSection, templatePrefix+"section.tmpl"),
	})
	registry.MustRegister(NameQuestion, Descriptor{
		Renderer: templateComponentRenderer(PartialQuestion, templatePrefix+"question.tmpl"),
	})
	registry.MustRegister(NameAnswerSpace, Descriptor{
		Renderer: skipWhenEmpty("slots", templateComponentRenderer(PartialAnswerSpace, templatePrefix+"answer_space.tmpl")),
	})
	registry.MustRegister(NameNumberedList, Descriptor{
		Renderer: skipWhenEmpty("rows", templateComponentRenderer(PartialNumberedList, templatePrefix+"numbered_list.tmpl")),
	})
	registry.MustRegister(NameChoice, Descriptor{
		Renderer: templateComponentRenderer(PartialChoice, templatePrefix+"choice.tmpl"),
	})
	registry.MustRegister(NameNote, Descriptor{
		Renderer: templateComponentRenderer(PartialNote, templatePrefix+"note.tmpl"),
	})
	registry.MustRegister(NamePageBreak, Descriptor{
		Renderer: templateComponentRenderer(PartialPageBreak, templatePrefix+"page_break.tmpl"),
	})
	registry.MustRegister(NamePrintButton, Descriptor{
		Renderer: templateComponentRenderer(PartialPrintButton, templatePrefix+"print_button.tmpl"),
	})

	return registry
}

func templateComponentRenderer(partialKey, templateName string) Renderer {
	return func(buf *bytes.Buffer, payload map[string]any, data ComponentData) error {
		if data.Template == nil {
			return fmt.Errorf("components: template renderer not configured for %q", templateName)
		}

		resolvedTemplate := templateName
		if data.ThemePartials != nil {
			if candidate := strings.TrimSpace(data.ThemePartials[partialKey]); candidate != "" {
				resolvedTemplate = candidate
			}
		}

		view := make(map[string]any, len(payload)+1)
		for key, value := range payload {
			view[key] = value
		}
		view["config"] = data.Config

		rendered, err := data.Template.RenderTemplate(resolvedTemplate, view)
		if err != nil {
			return fmt.Errorf("components: render template %q: %w", resolvedTemplate, err)
		}
		buf.WriteString(rendered)
		return nil
	}
}

// skipWhenEmpty renders nothing when payload[key] is an empty slice, so an
// answer space with zero lines leaves no wrapper behind.
func skipWhenEmpty(key string, next Renderer) Renderer {
	return func(buf *bytes.Buffer, payload map[string]any, data ComponentData) error {
		if items, ok := payload[key].([]any); ok && len(items) == 0 {
			return nil
		}
		if payload[key] == nil {
			return nil
		}
		return next(buf, payload, data)
	}
}
