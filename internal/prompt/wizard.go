// Package prompt asks for render settings on the terminal.
package prompt

import (
	"context"
	"slices"
	"strings"

	"github.com/goliatone/go-intakeform/pkg/model"
)

// Choices are the render settings collected by Ask.
type Choices struct {
	Format    string
	Sections  []string
	Variant   string
	ShowPrint bool
}

var (
	formats  = []string{"html", "text"}
	variants = []string{"screen", "print"}
)

// Ask walks the user through format, sections, theme variant and print button
// visibility, starting from defaults. Choosing every section clears the
// subset.
func Ask(ctx context.Context, driver Driver, form model.Form, defaults Choices) (Choices, error) {
	out := defaults

	idx, err := driver.Select(ctx, SelectConfig{
		Message:      "Output format",
		Options:      formats,
		Help:         "html opens in a browser with a print button; text suits terminals and lp.",
		DefaultIndex: max(indexOf(formats, strings.ToLower(defaults.Format)), 0),
	})
	if err != nil {
		return Choices{}, err
	}
	if idx >= 0 {
		out.Format = formats[idx]
	}

	titles := make([]string, len(form.Sections))
	var selected []int
	for i, section := range form.Sections {
		titles[i] = section.Title
		if len(defaults.Sections) == 0 || containsFold(defaults.Sections, section.ID) || containsFold(defaults.Sections, section.Title) {
			selected = append(selected, i)
		}
	}
	picked, err := driver.MultiSelect(ctx, SelectConfig{
		Message:  "Sections to include",
		Options:  titles,
		Defaults: selected,
		PageSize: len(titles),
		Help:     "Question numbers stay as printed on the full form.",
		Required: true,
	})
	if err != nil {
		return Choices{}, err
	}
	out.Sections = nil
	if len(picked) > 0 && len(picked) < len(form.Sections) {
		for _, i := range picked {
			out.Sections = append(out.Sections, form.Sections[i].ID)
		}
	}

	idx, err = driver.Select(ctx, SelectConfig{
		Message:      "Theme variant",
		Options:      variants,
		Help:         "print uses black ink only.",
		DefaultIndex: max(indexOf(variants, strings.ToLower(defaults.Variant)), 0),
	})
	if err != nil {
		return Choices{}, err
	}
	if idx >= 0 {
		out.Variant = variants[idx]
	}

	if out.Format == "html" {
		show, err := driver.Confirm(ctx, ConfirmConfig{
			Message: "Include the print button?",
			Default: defaults.ShowPrint,
			Help:    "The button is never printed on paper.",
		})
		if err != nil {
			return Choices{}, err
		}
		out.ShowPrint = show
	}
	return out, nil
}

func containsFold(values []string, target string) bool {
	return slices.ContainsFunc(values, func(v string) bool {
		return strings.EqualFold(strings.TrimSpace(v), target)
	})
}
