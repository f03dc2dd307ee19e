package docconv

// Element is a sealed interface for the block descriptors handed to a
// document-packing collaborator. It mirrors the paragraph and table model
// of word processing documents rather than markdown structure.
type Element interface {
	element()
}

// Measurements used by the structured-document model. Spacing is in
// twentieths of a point and run sizes are in half-points.
const (
	CodeFont    = "Courier New"
	CodeSize    = 20
	CodeShading = "F5F5F5"
)

// Spacing is the vertical space around a paragraph, in twips.
type Spacing struct {
	Before int
	After  int
}

// ListRef attaches a paragraph to a list. Paragraphs sharing Instance
// belong to the same list; numbering restarts for each instance.
type ListRef struct {
	Ordered  bool
	Instance int
	Level    int
}

// TextRun is a styled span of text. Newlines inside Text are line breaks.
type TextRun struct {
	Text   string
	Bold   bool
	Italic bool
	Font   string // empty means the document default
	Size   int    // half-points; 0 means the document default
}

// ParagraphElement is one paragraph of the target document.
type ParagraphElement struct {
	Runs    []TextRun
	Heading int // 0 for body text, 1..6 for headings
	List    *ListRef
	Spacing Spacing
	Shading string // hex fill, empty for none
	Rule    bool   // paragraph renders as a horizontal rule
}

func (ParagraphElement) element() {}

// TableCellElement is one cell of a table row.
type TableCellElement struct {
	Runs []TextRun
}

// TableRowElement is one row of a table.
type TableRowElement struct {
	Cells  []TableCellElement
	Header bool
}

// TableElement is a table built from one contiguous run of table rows.
type TableElement struct {
	Rows []TableRowElement
}

// Columns returns the widest row's cell count.
func (t TableElement) Columns() int {
	n := 0
	for _, r := range t.Rows {
		if len(r.Cells) > n {
			n = len(r.Cells)
		}
	}
	return n
}

func (TableElement) element() {}

// Interface compliance checks.
var (
	_ Element = ParagraphElement{}
	_ Element = TableElement{}
)
