// Package html renders a docconv.Document as HTML.
package html

import (
	"fmt"
	"html"
	"strings"

	"github.com/fwojciec/docconv"
)

// Render returns an HTML fragment for doc, one top-level element per line.
// Adjacent list items are wrapped in a single <ul> or <ol>, and adjacent
// table rows in a single <table> whose header row goes into <thead>.
// Delimiter rows are omitted.
func Render(doc docconv.Document) string {
	var b strings.Builder
	for _, g := range docconv.Groups(doc) {
		switch g.Kind {
		case docconv.GroupList:
			writeList(&b, g)
		case docconv.GroupTable:
			writeTable(&b, g.Rows())
		default:
			writeBlock(&b, g.Blocks[0])
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func writeBlock(b *strings.Builder, block docconv.Block) {
	switch block := block.(type) {
	case docconv.Heading:
		fmt.Fprintf(b, "<h%d>", block.Level)
		writeRuns(b, block.Runs)
		fmt.Fprintf(b, "</h%d>\n", block.Level)
	case docconv.Paragraph:
		b.WriteString("<p>")
		writeRuns(b, block.Runs)
		b.WriteString("</p>\n")
	case docconv.CodeBlock:
		b.WriteString("<pre><code")
		if block.Language != "" {
			fmt.Fprintf(b, ` class="language-%s"`, html.EscapeString(block.Language))
		}
		b.WriteString(">")
		b.WriteString(html.EscapeString(block.Content))
		b.WriteString("</code></pre>\n")
	case docconv.Rule:
		b.WriteString("<hr>\n")
	// Groups never yields these alone; kept for exhaustiveness.
	case docconv.ListItem:
		writeList(b, docconv.Group{Kind: docconv.GroupList, Blocks: []docconv.Block{block}})
	case docconv.TableRow:
		writeTable(b, []docconv.TableRow{block})
	}
}

func writeList(b *strings.Builder, g docconv.Group) {
	tag := "ul"
	if g.Ordered() {
		tag = "ol"
	}
	fmt.Fprintf(b, "<%s>\n", tag)
	for _, item := range g.Items() {
		b.WriteString("<li>")
		writeRuns(b, item.Runs)
		b.WriteString("</li>\n")
	}
	fmt.Fprintf(b, "</%s>\n", tag)
}

func writeTable(b *strings.Builder, rows []docconv.TableRow) {
	if len(rows) == 0 {
		return
	}
	b.WriteString("<table>\n")
	body := rows
	if rows[0].IsHeader {
		b.WriteString("<thead>\n")
		writeRow(b, rows[0], "th")
		b.WriteString("</thead>\n")
		body = rows[1:]
	}
	if len(body) > 0 {
		b.WriteString("<tbody>\n")
		for _, r := range body {
			writeRow(b, r, "td")
		}
		b.WriteString("</tbody>\n")
	}
	b.WriteString("</table>\n")
}

func writeRow(b *strings.Builder, r docconv.TableRow, cell string) {
	b.WriteString("<tr>")
	for _, c := range r.Cells {
		fmt.Fprintf(b, "<%s>", cell)
		writeRuns(b, docconv.FormatInline(c))
		fmt.Fprintf(b, "</%s>", cell)
	}
	b.WriteString("</tr>\n")
}

// writeRuns emits runs with nested tags in a fixed order: strong, em, code.
func writeRuns(b *strings.Builder, runs []docconv.InlineRun) {
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		if r.Bold {
			b.WriteString("<strong>")
		}
		if r.Italic {
			b.WriteString("<em>")
		}
		if r.IsCode {
			b.WriteString("<code>")
		}
		b.WriteString(html.EscapeString(r.Text))
		if r.IsCode {
			b.WriteString("</code>")
		}
		if r.Italic {
			b.WriteString("</em>")
		}
		if r.Bold {
			b.WriteString("</strong>")
		}
	}
}
