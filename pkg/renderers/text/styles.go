package text

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	theme "github.com/goliatone/go-theme"
)

const (
	colorHeading  lipgloss.Color = "#1e3a8a"
	colorRequired lipgloss.Color = "#ef4444"
	colorMuted    lipgloss.Color = "#6b7280"
	colorRule     lipgloss.Color = "#9ca3af"
)

// styles groups the lipgloss styles used for each part of the document. The
// zero value renders plain text.
type styles struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	heading  lipgloss.Style
	prompt   lipgloss.Style
	required lipgloss.Style
	rule     lipgloss.Style
	index    lipgloss.Style
	note     lipgloss.Style
	muted    lipgloss.Style
}

func plainStyles() styles {
	plain := lipgloss.NewStyle()
	return styles{
		title:    plain,
		subtitle: plain,
		heading:  plain,
		prompt:   plain,
		required: plain,
		rule:     plain,
		index:    plain,
		note:     plain,
		muted:    plain,
	}
}

// themedStyles derives colours from theme tokens, falling back to the
// built-in palette when a token is missing.
func themedStyles(cfg *theme.RendererConfig) styles {
	heading := tokenColor(cfg, "heading-color", colorHeading)
	required := tokenColor(cfg, "required-color", colorRequired)
	muted := tokenColor(cfg, "muted-color", colorMuted)
	rule := tokenColor(cfg, "rule-color", colorRule)

	return styles{
		title:    lipgloss.NewStyle().Foreground(heading).Bold(true),
		subtitle: lipgloss.NewStyle().Foreground(muted),
		heading:  lipgloss.NewStyle().Foreground(heading).Bold(true).Underline(true),
		prompt:   lipgloss.NewStyle().Bold(true),
		required: lipgloss.NewStyle().Foreground(required).Bold(true),
		rule:     lipgloss.NewStyle().Foreground(rule),
		index:    lipgloss.NewStyle().Foreground(rule).Bold(true),
		note:     lipgloss.NewStyle().Foreground(muted).Italic(true),
		muted:    lipgloss.NewStyle().Foreground(muted),
	}
}

func tokenColor(cfg *theme.RendererConfig, key string, fallback lipgloss.Color) lipgloss.Color {
	if cfg == nil || cfg.Tokens == nil {
		return fallback
	}
	if value := strings.TrimSpace(cfg.Tokens[key]); value != "" {
		return lipgloss.Color(value)
	}
	return fallback
}
