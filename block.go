package docconv

// Block is a sealed interface representing one structural unit of a
// Document. The unexported marker method prevents external implementations,
// so a type switch over the variants below is exhaustive.
type Block interface {
	isBlock()
}

// Heading is an ATX heading.
type Heading struct {
	Level int // 1..6
	Text  string
	Runs  []InlineRun
}

func (Heading) isBlock() {}

// CodeBlock holds the verbatim content of a fenced code block. Every line of
// Content, including the last, ends with a newline.
type CodeBlock struct {
	Language string
	Content  string
}

func (CodeBlock) isBlock() {}

// ListItem is a single bullet or numbered item. Items are stored
// individually; adjacent items form one logical list (see Groups).
type ListItem struct {
	Text    string
	Runs    []InlineRun
	Ordered bool
	// Index is the 1-based position of the item within its list. An item
	// with Index 1 starts a new list.
	Index int
}

func (ListItem) isBlock() {}

// TableRow is one pipe-delimited line.
type TableRow struct {
	Cells    []string
	IsHeader bool
}

func (TableRow) isBlock() {}

// IsDelimiter reports whether the row is a markdown table delimiter row
// such as "| --- | :-: |".
func (r TableRow) IsDelimiter() bool {
	if len(r.Cells) == 0 {
		return false
	}
	for _, c := range r.Cells {
		if !isDelimiterCell(c) {
			return false
		}
	}
	return true
}

func isDelimiterCell(c string) bool {
	if len(c) > 0 && c[0] == ':' {
		c = c[1:]
	}
	if len(c) > 0 && c[len(c)-1] == ':' {
		c = c[:len(c)-1]
	}
	if c == "" {
		return false
	}
	for i := 0; i < len(c); i++ {
		if c[i] != '-' {
			return false
		}
	}
	return true
}

// Paragraph is a run of prose lines decomposed into formatted spans.
type Paragraph struct {
	Runs []InlineRun
}

func (Paragraph) isBlock() {}

// Rule is a horizontal rule.
type Rule struct{}

func (Rule) isBlock() {}

// InlineRun is a maximal span of text sharing the same formatting.
type InlineRun struct {
	Text   string
	Bold   bool
	Italic bool
	IsCode bool
}

// Document is the ordered block sequence produced by one conversion call.
type Document struct {
	Blocks []Block
}

// Len returns the number of blocks.
func (d Document) Len() int { return len(d.Blocks) }

// PlainText concatenates the text of runs.
func PlainText(runs []InlineRun) string {
	switch len(runs) {
	case 0:
		return ""
	case 1:
		return runs[0].Text
	}
	n := 0
	for _, r := range runs {
		n += len(r.Text)
	}
	b := make([]byte, 0, n)
	for _, r := range runs {
		b = append(b, r.Text...)
	}
	return string(b)
}

// Interface compliance checks.
var (
	_ Block = Heading{}
	_ Block = CodeBlock{}
	_ Block = ListItem{}
	_ Block = TableRow{}
	_ Block = Paragraph{}
	_ Block = Rule{}
)
