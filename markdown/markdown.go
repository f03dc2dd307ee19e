// Package markdown parses markdown-like text into a docconv.Document with a
// single forward pass over lines.
//
// The parser is total: any input yields a document. Unterminated code fences
// run to the end of input and lines that look like broken tables become
// table rows or paragraphs according to the rules below, never errors.
//
// Lines are classified in this order, first match wins:
//
//   - inside a fence, every line is code until a closing fence
//   - "# text" .. "###### text" is a heading
//   - "```lang" opens a fence
//   - a line with an unescaped "|" is a table row
//   - "* ", "- ", "+ " or "1. " starts a list item
//   - three or more "-" alone is a rule
//   - anything else non-blank is paragraph text
package markdown

import (
	"strings"

	"github.com/fwojciec/docconv"
)

// Parse converts markdown text into a document.
func Parse(source string) docconv.Document {
	p := &parser{}
	for _, line := range splitLines(source) {
		p.line(line)
	}
	p.finish()
	return docconv.Document{Blocks: p.blocks}
}

// parser holds the scan state for one Parse call.
type parser struct {
	blocks []docconv.Block

	inCode   bool
	codeLang string
	code     strings.Builder

	para []string

	// listIndex is the Index of the last emitted list item, 0 when the
	// previous line did not produce one.
	listIndex   int
	listOrdered bool

	// inTable is set while consecutive lines produce table rows.
	inTable bool
}

func (p *parser) line(line string) {
	if p.inCode {
		if isFence(line) {
			p.closeCode()
			return
		}
		p.code.WriteString(line)
		p.code.WriteByte('\n')
		return
	}

	if strings.TrimSpace(line) == "" {
		p.closeParagraph()
		p.listIndex = 0
		p.inTable = false
		return
	}

	if level, text, ok := heading(line); ok {
		p.emit(docconv.Heading{Level: level, Text: text, Runs: docconv.FormatInline(text)})
		return
	}

	if isFence(line) {
		p.emit(nil)
		p.inCode = true
		p.codeLang = fenceLanguage(line)
		return
	}

	if cells, ok := tableCells(line); ok {
		header := !p.inTable
		p.emit(docconv.TableRow{Cells: cells, IsHeader: header})
		p.inTable = true
		return
	}

	if ordered, text, ok := listItem(line); ok {
		index := 1
		if p.listIndex > 0 && p.listOrdered == ordered {
			index = p.listIndex + 1
		}
		p.emit(docconv.ListItem{
			Text:    text,
			Runs:    docconv.FormatInline(text),
			Ordered: ordered,
			Index:   index,
		})
		p.listIndex = index
		p.listOrdered = ordered
		return
	}

	if isRule(line) {
		p.emit(docconv.Rule{})
		return
	}

	p.listIndex = 0
	p.inTable = false
	p.para = append(p.para, strings.TrimSpace(line))
}

// emit closes any open paragraph, resets run state for constructs other than
// b, and appends b. A nil b only closes state.
func (p *parser) emit(b docconv.Block) {
	p.closeParagraph()
	if _, ok := b.(docconv.ListItem); !ok {
		p.listIndex = 0
	}
	if _, ok := b.(docconv.TableRow); !ok {
		p.inTable = false
	}
	if b != nil {
		p.blocks = append(p.blocks, b)
	}
}

func (p *parser) closeParagraph() {
	if len(p.para) == 0 {
		return
	}
	text := strings.Join(p.para, " ")
	p.blocks = append(p.blocks, docconv.Paragraph{Runs: docconv.FormatInline(text)})
	p.para = p.para[:0]
}

func (p *parser) closeCode() {
	p.blocks = append(p.blocks, docconv.CodeBlock{
		Language: p.codeLang,
		Content:  p.code.String(),
	})
	p.inCode = false
	p.codeLang = ""
	p.code.Reset()
}

func (p *parser) finish() {
	if p.inCode {
		p.closeCode()
	}
	p.closeParagraph()
}

func splitLines(source string) []string {
	if source == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(source, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
