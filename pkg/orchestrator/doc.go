// Package orchestrator wires the definition loader, form decorators, theme
// selection and renderer registry behind a single Generate call.
package orchestrator
