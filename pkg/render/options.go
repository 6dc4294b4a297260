package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request settings renderers use to customise their
// output without mutating the form.
type RenderOptions struct {
	// Theme carries the resolved theme: partial overrides keyed by component
	// partial name, tokens, CSS variables and an asset resolver.
	Theme *theme.RendererConfig
	// Sections restricts output to the named sections (ID or title). Empty
	// renders the whole form. Renderers expect the orchestrator to have applied
	// the subset already; standalone callers can use ApplySubset.
	Sections []string
	// HidePrintControl drops the print button, e.g. for the text renderer or
	// when the document is sent straight to a spooler.
	HidePrintControl bool
	// ChromeClasses overrides the CSS classes of the document chrome.
	ChromeClasses *ChromeClasses
	// Plain disables terminal styling in renderers that support it.
	Plain bool
}

// ChromeClasses lets callers swap the structural CSS classes of the HTML
// document. Empty fields keep the renderer defaults.
type ChromeClasses struct {
	Page     string
	Header   string
	Section  string
	Question string
	Actions  string
}
