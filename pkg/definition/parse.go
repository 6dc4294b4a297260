package definition

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-intakeform/pkg/model"
)

const defaultPrintLabel = "Print Form"

type documentFile struct {
	ID           string            `json:"id" yaml:"id"`
	Header       headerFile        `json:"header" yaml:"header"`
	Instructions instructionsFile  `json:"instructions" yaml:"instructions"`
	Sections     []sectionFile     `json:"sections" yaml:"sections"`
	Footer       footerFile        `json:"footer" yaml:"footer"`
	Print        printFile         `json:"print" yaml:"print"`
	Metadata     map[string]string `json:"metadata" yaml:"metadata"`
}

type headerFile struct {
	Logo     logoFile `json:"logo" yaml:"logo"`
	Title    string   `json:"title" yaml:"title"`
	Subtitle string   `json:"subtitle" yaml:"subtitle"`
}

type logoFile struct {
	URL string `json:"url" yaml:"url"`
	Alt string `json:"alt" yaml:"alt"`
}

type instructionsFile struct {
	Title string   `json:"title" yaml:"title"`
	Items []string `json:"items" yaml:"items"`
}

type sectionFile struct {
	ID              string         `json:"id" yaml:"id"`
	Title           string         `json:"title" yaml:"title"`
	PageBreakBefore bool           `json:"pageBreakBefore" yaml:"pageBreakBefore"`
	Questions       []questionFile `json:"questions" yaml:"questions"`
}

type questionFile struct {
	Number   string      `json:"number" yaml:"number"`
	Label    string      `json:"label" yaml:"label"`
	Required bool        `json:"required" yaml:"required"`
	Content  []blockFile `json:"content" yaml:"content"`
}

// blockFile keeps counts as pointers so an omitted line count can default to
// one while an explicit zero still renders nothing.
type blockFile struct {
	Kind    string   `json:"kind" yaml:"kind"`
	Lines   *int     `json:"lines,omitempty" yaml:"lines,omitempty"`
	Count   *int     `json:"count,omitempty" yaml:"count,omitempty"`
	Columns *int     `json:"columns,omitempty" yaml:"columns,omitempty"`
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`
	Text    string   `json:"text,omitempty" yaml:"text,omitempty"`
}

type footerFile struct {
	Thanks string `json:"thanks" yaml:"thanks"`
	Note   string `json:"note" yaml:"note"`
	Credit string `json:"credit" yaml:"credit"`
}

type printFile struct {
	Label  string `json:"label" yaml:"label"`
	Icon   string `json:"icon" yaml:"icon"`
	Hidden bool   `json:"hidden" yaml:"hidden"`
}

// Parse decodes a JSON or YAML definition and normalises it into a form. The
// source is only used in error messages.
func Parse(data []byte, source string) (model.Form, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return model.Form{}, fmt.Errorf("%w: %s", ErrEmptyDocument, source)
	}

	doc, err := decodeDocument(data)
	if err != nil {
		return model.Form{}, fmt.Errorf("definition: parse %s: invalid JSON or YAML: %w", source, err)
	}

	return normaliseDocument(doc, source)
}

func decodeDocument(data []byte) (documentFile, error) {
	var doc documentFile
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, err
	}
	return doc, nil
}

func normaliseDocument(doc documentFile, source string) (model.Form, error) {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s: %s", ErrInvalidDocument, source, fmt.Sprintf(format, args...))
	}

	title := strings.TrimSpace(doc.Header.Title)
	if title == "" {
		return model.Form{}, invalid("header title is required")
	}
	if len(doc.Sections) == 0 {
		return model.Form{}, invalid("at least one section is required")
	}

	form := model.Form{
		ID: strings.TrimSpace(doc.ID),
		Header: model.Header{
			LogoURL:  strings.TrimSpace(doc.Header.Logo.URL),
			LogoAlt:  strings.TrimSpace(doc.Header.Logo.Alt),
			Title:    title,
			Subtitle: strings.TrimSpace(doc.Header.Subtitle),
		},
		Instructions: model.Instructions{
			Title: strings.TrimSpace(doc.Instructions.Title),
		},
		Footer: model.Footer{
			Thanks: strings.TrimSpace(doc.Footer.Thanks),
			Note:   strings.TrimSpace(doc.Footer.Note),
			Credit: strings.TrimSpace(doc.Footer.Credit),
		},
		Print: model.PrintControl{
			Label:  strings.TrimSpace(doc.Print.Label),
			Icon:   strings.TrimSpace(doc.Print.Icon),
			Hidden: doc.Print.Hidden,
		},
		Metadata: cloneMetadata(doc.Metadata),
	}
	if form.ID == "" {
		form.ID = model.Slug(title)
	}
	if form.Print.Label == "" {
		form.Print.Label = defaultPrintLabel
	}

	for _, item := range doc.Instructions.Items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			form.Instructions.Items = append(form.Instructions.Items, trimmed)
		}
	}

	seenSections := make(map[string]struct{}, len(doc.Sections))
	for sIdx, rawSection := range doc.Sections {
		sectionTitle := strings.TrimSpace(rawSection.Title)
		if sectionTitle == "" {
			return model.Form{}, invalid("section %d has no title", sIdx+1)
		}
		id := strings.TrimSpace(rawSection.ID)
		if id == "" {
			id = model.Slug(sectionTitle)
		}
		if _, dup := seenSections[id]; dup {
			return model.Form{}, invalid("duplicate section id %q", id)
		}
		seenSections[id] = struct{}{}

		section := model.Section{
			ID:              id,
			Title:           sectionTitle,
			PageBreakBefore: rawSection.PageBreakBefore,
		}
		if len(rawSection.Questions) == 0 {
			return model.Form{}, invalid("section %q has no questions", id)
		}

		for qIdx, rawQuestion := range rawSection.Questions {
			number := strings.TrimSpace(rawQuestion.Number)
			label := strings.TrimSpace(rawQuestion.Label)
			if number == "" || label == "" {
				return model.Form{}, invalid("section %q question %d needs a number and a label", id, qIdx+1)
			}

			question := model.Question{
				Number:   number,
				Label:    label,
				Required: rawQuestion.Required,
			}
			for bIdx, rawBlock := range rawQuestion.Content {
				block, err := normaliseBlock(rawBlock)
				if err != nil {
					return model.Form{}, invalid("question %s block %d: %v", number, bIdx+1, err)
				}
				question.Content = append(question.Content, block)
			}
			section.Questions = append(section.Questions, question)
		}

		form.Sections = append(form.Sections, section)
	}

	return form, nil
}

func normaliseBlock(raw blockFile) (model.Block, error) {
	switch model.BlockKind(strings.TrimSpace(raw.Kind)) {
	case model.BlockAnswerSpace:
		lines := model.DefaultAnswerLines
		if raw.Lines != nil {
			lines = *raw.Lines
		}
		if lines < 0 {
			return model.Block{}, fmt.Errorf("lines must not be negative, got %d", lines)
		}
		return model.AnswerLines(lines), nil

	case model.BlockNumberedList:
		if raw.Count == nil || *raw.Count <= 0 {
			return model.Block{}, fmt.Errorf("numbered list needs a positive count")
		}
		columns := 1
		if raw.Columns != nil {
			columns = *raw.Columns
		}
		if columns < 1 {
			return model.Block{}, fmt.Errorf("columns must be at least 1, got %d", columns)
		}
		return model.NumberedList(*raw.Count, columns), nil

	case model.BlockChoice:
		options := make([]string, 0, len(raw.Options))
		for _, option := range raw.Options {
			if trimmed := strings.TrimSpace(option); trimmed != "" {
				options = append(options, trimmed)
			}
		}
		if len(options) == 0 {
			return model.Block{}, fmt.Errorf("choice needs at least one option")
		}
		return model.Choice(options...), nil

	case model.BlockNote:
		text := strings.TrimSpace(raw.Text)
		if text == "" {
			return model.Block{}, fmt.Errorf("note text is required")
		}
		return model.Note(text), nil

	case "":
		return model.Block{}, fmt.Errorf("block kind is required")
	default:
		return model.Block{}, fmt.Errorf("unknown block kind %q", raw.Kind)
	}
}

func cloneMetadata(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for key, value := range src {
		if key = strings.TrimSpace(key); key != "" {
			out[key] = value
		}
	}
	return out
}
