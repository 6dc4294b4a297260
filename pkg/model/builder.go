package model

import (
	"strconv"
	"strings"
)

// AnswerSpace returns a block with the default single blank line.
func AnswerSpace() Block {
	return AnswerLines(DefaultAnswerLines)
}

// AnswerLines returns a block with n blank lines. Negative counts are clamped
// to zero, which renders nothing.
func AnswerLines(n int) Block {
	if n < 0 {
		n = 0
	}
	return Block{Kind: BlockAnswerSpace, Lines: n}
}

// NumberedList returns count numbered rows, each paired with one blank line.
// columns <= 1 produces a single column; larger values request a grid.
func NumberedList(count, columns int) Block {
	if count < 0 {
		count = 0
	}
	if columns < 1 {
		columns = 1
	}
	return Block{Kind: BlockNumberedList, Count: count, Columns: columns}
}

// Choice returns a checkbox-style option row.
func Choice(options ...string) Block {
	return Block{Kind: BlockChoice, Options: append([]string(nil), options...)}
}

// Note returns an italic instruction paragraph.
func Note(text string) Block {
	return Block{Kind: BlockNote, Text: strings.TrimSpace(text)}
}

// Row is a single numbered entry of a numbered list.
type Row struct {
	Index int
	Label string
}

// Rows expands a numbered list into its rows, indices starting at 1. Other
// block kinds have no rows.
func (b Block) Rows() []Row {
	if b.Kind != BlockNumberedList || b.Count <= 0 {
		return nil
	}
	rows := make([]Row, b.Count)
	for i := range rows {
		rows[i] = Row{Index: i + 1, Label: strconv.Itoa(i+1) + "."}
	}
	return rows
}

// LineSlots returns one entry per blank line of an answer space.
func (b Block) LineSlots() []int {
	if b.Kind != BlockAnswerSpace || b.Lines <= 0 {
		return nil
	}
	slots := make([]int, b.Lines)
	for i := range slots {
		slots[i] = i + 1
	}
	return slots
}

// Grid reports whether a numbered list spans more than one column.
func (b Block) Grid() bool {
	return b.Kind == BlockNumberedList && b.Columns > 1
}

// QuestionOption customises NewQuestion.
type QuestionOption func(*Question)

// Required marks the question with the visual required indicator.
func Required() QuestionOption {
	return func(q *Question) {
		q.Required = true
	}
}

// WithContent appends nested blocks below the prompt.
func WithContent(blocks ...Block) QuestionOption {
	return func(q *Question) {
		q.Content = append(q.Content, blocks...)
	}
}

// NewQuestion builds a question from its printed ordinal and prompt.
func NewQuestion(number, label string, options ...QuestionOption) Question {
	q := Question{
		Number: strings.TrimSpace(number),
		Label:  strings.TrimSpace(label),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&q)
	}
	return q
}

// NewSection builds a titled group. The ID is derived from the title.
func NewSection(title string, questions ...Question) Section {
	return Section{
		ID:        Slug(title),
		Title:     strings.TrimSpace(title),
		Questions: append([]Question(nil), questions...),
	}
}

// Slug lowercases s and joins its alphanumeric runs with dashes.
func Slug(s string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		default:
			pendingDash = true
		}
	}
	return b.String()
}
