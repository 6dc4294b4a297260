package render

import (
	"strings"

	"github.com/goliatone/go-intakeform/pkg/model"
)

// ApplySubset keeps only the sections named in filters, matching by ID or by
// title (case-insensitive), and preserves document order. The first kept
// section never carries a page break so a filtered print does not start with a
// blank page. An empty filter list leaves the form unchanged.
func ApplySubset(form *model.Form, filters []string) {
	if form == nil {
		return
	}

	wanted := normaliseTokens(filters)
	if len(wanted) == 0 {
		return
	}

	kept := make([]model.Section, 0, len(form.Sections))
	for _, section := range form.Sections {
		if sectionMatches(section, wanted) {
			kept = append(kept, section)
		}
	}
	if len(kept) > 0 {
		kept[0].PageBreakBefore = false
	}
	if len(kept) == 0 {
		kept = nil
	}
	form.Sections = kept
}

func sectionMatches(section model.Section, wanted map[string]struct{}) bool {
	for _, candidate := range []string{section.ID, section.Title} {
		if token := normaliseToken(candidate); token != "" {
			if _, ok := wanted[token]; ok {
				return true
			}
		}
	}
	return false
}

func normaliseTokens(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(values))
	for _, value := range values {
		for _, token := range parseTokenList(value) {
			out[token] = struct{}{}
		}
	}
	return out
}

// parseTokenList splits comma separated lists so "--sections a,b" and repeated
// flags behave the same.
func parseTokenList(raw string) []string {
	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := normaliseToken(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

func normaliseToken(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
