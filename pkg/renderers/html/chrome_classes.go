package html

import (
	"strings"

	"github.com/goliatone/go-intakeform/pkg/render"
)

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassPage     ChromeClass = "fg-page"
	ClassHeader   ChromeClass = "fg-header"
	ClassSection  ChromeClass = "fg-section"
	ClassQuestion ChromeClass = "fg-question"
	ClassActions  ChromeClass = "fg-actions"
)

// Default*Class values are applied when RenderOptions.ChromeClasses overrides are empty.
const (
	DefaultPageClass     = string(ClassPage)
	DefaultHeaderClass   = string(ClassHeader)
	DefaultSectionClass  = string(ClassSection)
	DefaultQuestionClass = string(ClassQuestion)
	DefaultActionsClass  = string(ClassActions)
)

func resolveChromeClasses(overrides *render.ChromeClasses) map[string]any {
	pick := func(override, fallback string) string {
		if cleaned := strings.Join(strings.Fields(override), " "); cleaned != "" {
			return cleaned
		}
		return fallback
	}

	classes := render.ChromeClasses{}
	if overrides != nil {
		classes = *overrides
	}
	return map[string]any{
		"page":     pick(classes.Page, DefaultPageClass),
		"header":   pick(classes.Header, DefaultHeaderClass),
		"section":  pick(classes.Section, DefaultSectionClass),
		"question": pick(classes.Question, DefaultQuestionClass),
		"actions":  pick(classes.Actions, DefaultActionsClass),
	}
}
