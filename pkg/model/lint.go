package model

import (
	"fmt"
	"strconv"
	"strings"
)

// IssueKind classifies authoring problems reported by Lint.
type IssueKind string

const (
	IssueEmptyNumber     IssueKind = "empty-number"
	IssueDuplicateNumber IssueKind = "duplicate-number"
	IssueOutOfOrder      IssueKind = "out-of-order"
)

// Issue is a single Lint finding.
type Issue struct {
	Kind    IssueKind
	Section string
	Number  string
	Message string
}

func (i Issue) String() string {
	if i.Section == "" {
		return fmt.Sprintf("%s: %s", i.Kind, i.Message)
	}
	return fmt.Sprintf("%s [%s]: %s", i.Kind, i.Section, i.Message)
}

// Lint checks that question ordinals are present, unique, and ascending in
// printed order. Renderers never call it: ordinals are an authoring concern.
func Lint(form Form) []Issue {
	var issues []Issue
	seen := make(map[string]string)
	prev := ""

	for _, section := range form.Sections {
		for _, question := range section.Questions {
			number := strings.TrimSpace(question.Number)
			if number == "" {
				issues = append(issues, Issue{
					Kind:    IssueEmptyNumber,
					Section: section.ID,
					Message: fmt.Sprintf("question %q has no number", question.Label),
				})
				continue
			}
			if owner, dup := seen[number]; dup {
				issues = append(issues, Issue{
					Kind:    IssueDuplicateNumber,
					Section: section.ID,
					Number:  number,
					Message: fmt.Sprintf("number %s already used in section %q", number, owner),
				})
				continue
			}
			seen[number] = section.ID

			if prev != "" && compareOrdinals(prev, number) >= 0 {
				issues = append(issues, Issue{
					Kind:    IssueOutOfOrder,
					Section: section.ID,
					Number:  number,
					Message: fmt.Sprintf("number %s follows %s", number, prev),
				})
			}
			prev = number
		}
	}
	return issues
}

func compareOrdinals(a, b string) int {
	ai, aErr := strconv.Atoi(a)
	bi, bErr := strconv.Atoi(b)
	if aErr == nil && bErr == nil {
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}
