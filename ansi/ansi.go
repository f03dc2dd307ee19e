// Package ansi renders a docconv.Document to ANSI-styled terminal output
// using lipgloss for styling.
package ansi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/docconv"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const defaultWidth = 80

// Render returns styled terminal output for doc. Paragraphs, headings and
// list items are word-wrapped to width. Code blocks are rendered at full
// width without reflow.
func Render(doc docconv.Document, width int, theme docconv.Theme) string {
	if len(doc.Blocks) == 0 {
		return ""
	}
	if width <= 0 {
		width = defaultWidth
	}
	r := newRenderer(theme)
	return r.render(doc, width)
}

type renderer struct {
	code    lipgloss.Style
	heading lipgloss.Style
	muted   lipgloss.Style
	accent  lipgloss.Style
}

func newRenderer(theme docconv.Theme) *renderer {
	return &renderer{
		code:    lipgloss.NewStyle().Foreground(ansiColor(theme.Code)),
		heading: lipgloss.NewStyle().Foreground(ansiColor(theme.Heading)).Bold(true),
		muted:   lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true),
		accent:  lipgloss.NewStyle().Foreground(ansiColor(theme.Accent)).Bold(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

func (r *renderer) render(doc docconv.Document, width int) string {
	var b strings.Builder
	groups := docconv.Groups(doc)
	for i, g := range groups {
		switch g.Kind {
		case docconv.GroupList:
			r.renderList(&b, g, width)
		case docconv.GroupTable:
			r.renderTable(&b, g.Rows(), width)
		default:
			r.renderBlock(&b, g.Blocks[0], width)
		}
		if i < len(groups)-1 {
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *renderer) renderBlock(b *strings.Builder, block docconv.Block, width int) {
	switch block := block.(type) {
	case docconv.Heading:
		prefix := r.muted.Render(strings.Repeat("#", block.Level)) + " "
		styled := r.heading.Render(r.inline(block.Runs))
		b.WriteString(lipgloss.NewStyle().Width(width).Render(prefix + styled))
		b.WriteString("\n")

	case docconv.Paragraph:
		b.WriteString(lipgloss.NewStyle().Width(width).Render(r.inline(block.Runs)))
		b.WriteString("\n")

	case docconv.CodeBlock:
		if block.Language != "" {
			b.WriteString(r.muted.Render(block.Language))
			b.WriteString("\n")
		}
		gutter := r.muted.Render("│") + " "
		for _, line := range strings.Split(strings.TrimSuffix(block.Content, "\n"), "\n") {
			b.WriteString(gutter + r.code.Render(line))
			b.WriteString("\n")
		}

	case docconv.Rule:
		b.WriteString(r.muted.Render(strings.Repeat("─", width)))
		b.WriteString("\n")

	// Groups never yields these alone; kept for exhaustiveness.
	case docconv.ListItem:
		r.renderList(b, docconv.Group{Kind: docconv.GroupList, Blocks: []docconv.Block{block}}, width)

	case docconv.TableRow:
		r.renderTable(b, []docconv.TableRow{block}, width)
	}
}

func (r *renderer) renderList(b *strings.Builder, g docconv.Group, width int) {
	for _, item := range g.Items() {
		marker := "- "
		if item.Ordered {
			marker = fmt.Sprintf("%d. ", item.Index)
		}
		r.writeListItem(b, marker, r.inline(item.Runs), width)
	}
}

// writeListItem writes a list item with continuation lines indented under
// the item text.
func (r *renderer) writeListItem(b *strings.Builder, marker, content string, width int) {
	itemWidth := max(width-len(marker), 10)
	wrapped := lipgloss.NewStyle().Width(itemWidth).Render(content)
	continuation := strings.Repeat(" ", len(marker))
	for i, line := range strings.Split(wrapped, "\n") {
		if i == 0 {
			b.WriteString(r.accent.Render(marker) + line + "\n")
		} else {
			b.WriteString(continuation + line + "\n")
		}
	}
}

// renderTable lays out columns by display width. Cells wider than their
// share of width are truncated with an ellipsis.
func (r *renderer) renderTable(b *strings.Builder, rows []docconv.TableRow, width int) {
	if len(rows) == 0 {
		return
	}
	plain := make([][]string, len(rows))
	var widths []int
	for i, row := range rows {
		plain[i] = make([]string, len(row.Cells))
		for j, c := range row.Cells {
			v := docconv.PlainText(docconv.FormatInline(c))
			plain[i][j] = v
			if j >= len(widths) {
				widths = append(widths, 0)
			}
			widths[j] = max(widths[j], uniseg.StringWidth(v))
		}
	}
	if len(widths) == 0 {
		return
	}
	const sep = " │ "
	maxCol := max((width-len(widths)*3)/len(widths), 3)
	for j := range widths {
		widths[j] = min(widths[j], maxCol)
	}

	for i, row := range plain {
		cells := make([]string, len(widths))
		for j := range widths {
			var v string
			if j < len(row) {
				v = runewidth.Truncate(row[j], widths[j], "…")
			}
			v += strings.Repeat(" ", max(widths[j]-uniseg.StringWidth(v), 0))
			if rows[i].IsHeader {
				v = r.accent.Render(v)
			}
			cells[j] = v
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, r.muted.Render(sep)), " "))
		b.WriteString("\n")
		if rows[i].IsHeader {
			rule := make([]string, len(widths))
			for j, w := range widths {
				rule[j] = strings.Repeat("─", w)
			}
			b.WriteString(r.muted.Render(strings.Join(rule, "─┼─")))
			b.WriteString("\n")
		}
	}
}

// inline renders runs with bold, italic and code styling.
func (r *renderer) inline(runs []docconv.InlineRun) string {
	var b strings.Builder
	for _, run := range runs {
		if run.Text == "" {
			continue
		}
		style := lipgloss.NewStyle()
		if run.IsCode {
			style = r.code
		}
		if run.Bold {
			style = style.Bold(true)
		}
		if run.Italic {
			style = style.Italic(true)
		}
		b.WriteString(style.Render(run.Text))
	}
	return b.String()
}
