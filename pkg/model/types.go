package model

// BlockKind identifies the content rendered beneath a question prompt.
type BlockKind string

const (
	BlockAnswerSpace  BlockKind = "answer_space"
	BlockNumberedList BlockKind = "numbered_list"
	BlockChoice       BlockKind = "choice"
	BlockNote         BlockKind = "note"
)

// DefaultAnswerLines is the line count used when an answer space omits one.
const DefaultAnswerLines = 1

// Block is a single piece of nested question content. Only the fields relevant
// to Kind are populated:
//
//   - answer_space: Lines blank writable lines (0 renders nothing)
//   - numbered_list: Count rows labelled 1..Count, laid out in Columns
//   - choice: one checkbox per entry in Options
//   - note: Text, already sanitised inline markup
type Block struct {
	Kind    BlockKind `json:"kind"`
	Lines   int       `json:"lines,omitempty"`
	Count   int       `json:"count,omitempty"`
	Columns int       `json:"columns,omitempty"`
	Options []string  `json:"options,omitempty"`
	Text    string    `json:"text,omitempty"`
}

// Question is a numbered prompt with optional nested content.
type Question struct {
	Number   string  `json:"number"`
	Label    string  `json:"label"`
	Required bool    `json:"required"`
	Content  []Block `json:"content,omitempty"`
}

// Section groups related questions under a title. PageBreakBefore asks print
// renderers to start the section on a fresh page.
type Section struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	PageBreakBefore bool       `json:"pageBreakBefore,omitempty"`
	Questions       []Question `json:"questions"`
}

// Header carries the branding shown above the first section. The logo is
// referenced by URL and never fetched by the renderers.
type Header struct {
	LogoURL  string `json:"logoUrl,omitempty"`
	LogoAlt  string `json:"logoAlt,omitempty"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
}

// Instructions is the titled bullet list rendered between header and sections.
// Items may contain sanitised inline markup.
type Instructions struct {
	Title string   `json:"title,omitempty"`
	Items []string `json:"items,omitempty"`
}

// Footer closes the document.
type Footer struct {
	Thanks string `json:"thanks,omitempty"`
	Note   string `json:"note,omitempty"`
	Credit string `json:"credit,omitempty"`
}

// PrintControl describes the single interactive control of the document.
type PrintControl struct {
	Label  string `json:"label,omitempty"`
	Icon   string `json:"icon,omitempty"`
	Hidden bool   `json:"hidden,omitempty"`
}

// Form is the complete document handed to renderers.
type Form struct {
	ID           string            `json:"id"`
	Header       Header            `json:"header"`
	Instructions Instructions      `json:"instructions"`
	Sections     []Section         `json:"sections"`
	Footer       Footer            `json:"footer"`
	Print        PrintControl      `json:"print"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// Questions returns every question in document order.
func (f Form) Questions() []Question {
	var out []Question
	for _, section := range f.Sections {
		out = append(out, section.Questions...)
	}
	return out
}

// Section looks up a section by ID.
func (f Form) Section(id string) (Section, bool) {
	for _, section := range f.Sections {
		if section.ID == id {
			return section, true
		}
	}
	return Section{}, false
}
