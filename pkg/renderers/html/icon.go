package html

// DefaultPrintIcon is the printer glyph shown in the print button when the
// form does not supply its own icon.
const DefaultPrintIcon = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 20 20" fill="currentColor" aria-hidden="true">` +
	`<path fill-rule="evenodd" clip-rule="evenodd" d="M5 4v3H4a2 2 0 00-2 2v6a2 2 0 002 2h12a2 2 0 002-2V9a2 2 0 00-2-2h-1V4a2 2 0 00-2-2H7a2 2 0 00-2 2zm8 0H7v3h6V4zm0 8H7V9h6v3z"/>` +
	`<path d="M9 17a1 1 0 011-1h0a1 1 0 011 1v1a1 1 0 01-1 1h0a1 1 0 01-1-1v-1z"/>` +
	`</svg>`
