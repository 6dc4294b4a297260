package components

// Component names used by the HTML renderer and the default registry. Block
// components share their names with model.BlockKind values.
const (
	NamePage         = "page"
	NameSection      = "section"
	NameQuestion     = "question"
	NameAnswerSpace  = "answer_space"
	NameNumberedList = "numbered_list"
	NameChoice       = "choice"
	NameNote         = "note"
	NamePageBreak    = "page_break"
	NamePrintButton  = "print_button"
)

// Theme partial keys. A theme can point any of these at its own template.
const (
	PartialPage         = "intake.page"
	PartialSection      = "intake.section"
	PartialQuestion     = "intake.question"
	PartialAnswerSpace  = "intake.answer-space"
	PartialNumberedList = "intake.numbered-list"
	PartialChoice       = "intake.choice"
	PartialNote         = "intake.note"
	PartialPageBreak    = "intake.page-break"
	PartialPrintButton  = "intake.print-button"
)
