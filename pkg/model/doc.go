// Package model defines the printable form model consumed by renderers. A Form
// is composed declaratively: Sections hold Questions and Questions hold content
// Blocks (blank answer lines, numbered row lists, checkbox-style choices, and
// italic notes). All values are plain data so definitions can be decoded from
// YAML/JSON and renderers can serialise them directly into template contexts.
//
// The Required flag on a Question is a visual annotation only. Nothing in this
// package or the renderers enforces it; the printed form is completed by hand.
package model
