package text

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-intakeform/pkg/model"
	"github.com/goliatone/go-intakeform/pkg/render"
	"github.com/goliatone/go-intakeform/pkg/sanitize"
)

// Name is the registry key of the text renderer.
const Name = "text"

const (
	defaultLineWidth = 48
	pageBreak        = "\f"
	indent           = "   "
)

type Option func(*Renderer)

// WithLineWidth sets the number of underscores used for an answer line.
func WithLineWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.lineWidth = width
		}
	}
}

// WithPlain disables terminal styling for every render, regardless of
// RenderOptions.Plain.
func WithPlain() Option {
	return func(r *Renderer) {
		r.plain = true
	}
}

// Renderer prints the form as plain or terminal-styled text. Answer lines are
// underscores, choices are "[ ] option" boxes and page breaks are form feeds.
type Renderer struct {
	lineWidth int
	plain     bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the text renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{lineWidth: defaultLineWidth}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, form model.Form, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	render.ApplySubset(&form, options.Sections)

	st := plainStyles()
	if !r.plain && !options.Plain {
		st = themedStyles(options.Theme)
	}

	w := &writer{styles: st, lineWidth: r.lineWidth}
	w.header(form.Header)
	w.instructions(form.Instructions)

	for _, section := range form.Sections {
		if err := w.section(section); err != nil {
			return nil, fmt.Errorf("text renderer: %w", err)
		}
	}

	w.footer(form.Footer)
	return []byte(w.String()), nil
}

type writer struct {
	strings.Builder
	styles    styles
	lineWidth int
}

func (w *writer) line(parts ...string) {
	w.WriteString(strings.Join(parts, ""))
	w.WriteByte('\n')
}

func (w *writer) blank() {
	w.WriteByte('\n')
}

func (w *writer) header(header model.Header) {
	w.line(w.styles.title.Render(strings.ToUpper(header.Title)))
	if header.Subtitle != "" {
		w.line(w.styles.subtitle.Render(header.Subtitle))
	}
	if header.LogoURL != "" {
		label := "Logo"
		if header.LogoAlt != "" {
			label = header.LogoAlt
		}
		w.line(w.styles.muted.Render(label + ": " + header.LogoURL))
	}
	w.blank()
}

func (w *writer) instructions(instructions model.Instructions) {
	if len(instructions.Items) == 0 {
		return
	}
	if instructions.Title != "" {
		w.line(w.styles.heading.Render(instructions.Title))
	}
	for _, item := range instructions.Items {
		if text := sanitize.Text(item); text != "" {
			w.line("  - ", text)
		}
	}
	w.blank()
}

func (w *writer) section(section model.Section) error {
	if section.PageBreakBefore {
		w.line(pageBreak)
	}
	w.line(w.styles.heading.Render(section.Title))
	w.blank()

	for _, question := range section.Questions {
		if err := w.question(question); err != nil {
			return fmt.Errorf("section %q: %w", section.ID, err)
		}
	}
	return nil
}

func (w *writer) question(question model.Question) error {
	prompt := w.styles.prompt.Render(question.Number + ". " + question.Label)
	if question.Required {
		prompt += " " + w.styles.required.Render("*")
	}
	w.line(prompt)

	for idx, block := range question.Content {
		if err := w.block(block); err != nil {
			return fmt.Errorf("question %s block %d: %w", question.Number, idx+1, err)
		}
	}
	w.blank()
	return nil
}

func (w *writer) block(block model.Block) error {
	switch block.Kind {
	case model.BlockAnswerSpace:
		for range block.LineSlots() {
			w.line(indent, w.rule(w.lineWidth))
		}
	case model.BlockNumberedList:
		w.numberedList(block)
	case model.BlockChoice:
		boxes := make([]string, 0, len(block.Options))
		for _, option := range block.Options {
			boxes = append(boxes, "[ ] "+option)
		}
		w.line(indent, strings.Join(boxes, "    "))
	case model.BlockNote:
		w.line(indent, w.styles.note.Render(sanitize.Text(block.Text)))
	default:
		return fmt.Errorf("unsupported block kind %q", block.Kind)
	}
	return nil
}

func (w *writer) numberedList(block model.Block) {
	rows := block.Rows()
	if len(rows) == 0 {
		return
	}
	columns := max(block.Columns, 1)
	labelWidth := len(rows[len(rows)-1].Label)
	cellWidth := max(w.lineWidth/columns-labelWidth-3, 8)

	for start := 0; start < len(rows); start += columns {
		end := min(start+columns, len(rows))
		cells := make([]string, 0, columns)
		for _, row := range rows[start:end] {
			label := fmt.Sprintf("%*s", labelWidth, row.Label)
			cells = append(cells, w.styles.index.Render(label)+" "+w.rule(cellWidth))
		}
		w.line(indent, strings.Join(cells, "   "))
	}
}

func (w *writer) rule(width int) string {
	return w.styles.rule.Render(strings.Repeat("_", width))
}

func (w *writer) footer(footer model.Footer) {
	for _, text := range []string{footer.Thanks, footer.Note, footer.Credit} {
		if text != "" {
			w.line(w.styles.muted.Render(text))
		}
	}
}
