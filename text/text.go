// Package text renders a docconv.Document as plain text with all markdown
// syntax removed.
package text

import (
	"regexp"
	"strings"

	"github.com/fwojciec/docconv"
	"github.com/fwojciec/docconv/markdown"
	"github.com/rivo/uniseg"
)

const bullet = "• "

var excessNewlines = regexp.MustCompile(`\n{3,}`)

// Render returns the visible text of doc. Groups are separated by one blank
// line, list items and table rows sit on consecutive lines, and code block
// content is kept verbatim. Runs of three or more newlines outside code are
// collapsed to two.
//
// Re-parsing the output never yields more blocks than doc holds, except for
// code blocks: their content is not fenced, so blank lines and markdown
// syntax inside them parse as separate blocks.
func Render(doc docconv.Document) string {
	var parts []string
	for _, g := range docconv.Groups(doc) {
		var s string
		switch g.Kind {
		case docconv.GroupList:
			s = renderList(g)
		case docconv.GroupTable:
			s = renderTable(g.Rows())
		default:
			s = renderBlock(g.Blocks[0])
		}
		if s == "" {
			continue
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "\n\n")
}

// Normalize parses source and renders it back as plain text.
func Normalize(source string) string {
	return Render(markdown.Parse(source))
}

func renderBlock(b docconv.Block) string {
	switch b := b.(type) {
	case docconv.Heading:
		return collapse(docconv.PlainText(b.Runs))
	case docconv.Paragraph:
		return collapse(docconv.PlainText(b.Runs))
	case docconv.CodeBlock:
		return strings.TrimSuffix(b.Content, "\n")
	case docconv.Rule:
		return ""
	// Groups never yields these alone; kept for exhaustiveness.
	case docconv.ListItem:
		return renderItem(b)
	case docconv.TableRow:
		return renderTable([]docconv.TableRow{b})
	}
	return ""
}

func renderList(g docconv.Group) string {
	items := g.Items()
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = renderItem(item)
	}
	return strings.Join(lines, "\n")
}

func renderItem(item docconv.ListItem) string {
	text := collapse(docconv.PlainText(item.Runs))
	if item.Ordered {
		return text
	}
	return bullet + text
}

// renderTable pads cells to the widest cell of each column. Widths are
// measured in terminal cells so wide characters line up.
func renderTable(rows []docconv.TableRow) string {
	if len(rows) == 0 {
		return ""
	}
	cells := make([][]string, len(rows))
	var widths []int
	for i, r := range rows {
		cells[i] = make([]string, len(r.Cells))
		for j, c := range r.Cells {
			v := docconv.PlainText(docconv.FormatInline(c))
			cells[i][j] = v
			if j >= len(widths) {
				widths = append(widths, 0)
			}
			widths[j] = max(widths[j], uniseg.StringWidth(v))
		}
	}

	lines := make([]string, len(cells))
	for i, row := range cells {
		var b strings.Builder
		for j, v := range row {
			if j > 0 {
				b.WriteString("  ")
			}
			b.WriteString(v)
			if j < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[j]-uniseg.StringWidth(v)))
			}
		}
		lines[i] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(lines, "\n")
}

func collapse(s string) string {
	return excessNewlines.ReplaceAllString(s, "\n\n")
}
