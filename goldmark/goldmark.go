// Package goldmark parses markdown into a docconv.Document using the
// CommonMark-compliant goldmark parser with GitHub table support.
//
// It is an alternative front end to package markdown for input that relies
// on CommonMark details the line scanner does not model, such as nested
// lists, block quotes, setext headings and indented code.
package goldmark

import (
	"strings"

	"github.com/fwojciec/docconv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Parse converts markdown source into a document. Nested lists are
// flattened in document order and block quotes contribute their children.
func Parse(source string) docconv.Document {
	if source == "" {
		return docconv.Document{}
	}
	src := []byte(source)
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader(src))

	w := &walker{source: src}
	w.walkBlock(root)
	return docconv.Document{Blocks: w.blocks}
}

type walker struct {
	source []byte
	blocks []docconv.Block
}

func (w *walker) walkBlock(node ast.Node) {
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		w.renderBlock(c)
	}
}

func (w *walker) renderBlock(node ast.Node) {
	switch n := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		w.blocks = append(w.blocks, docconv.Paragraph{Runs: nonEmpty(w.collectInline(n))})

	case *ast.Heading:
		runs := nonEmpty(w.collectInline(n))
		w.blocks = append(w.blocks, docconv.Heading{Level: n.Level, Text: Markup(runs), Runs: runs})

	case *ast.FencedCodeBlock:
		w.blocks = append(w.blocks, docconv.CodeBlock{
			Language: string(n.Language(w.source)),
			Content:  w.code(n),
		})

	case *ast.CodeBlock:
		w.blocks = append(w.blocks, docconv.CodeBlock{Content: w.code(n)})

	case *ast.List:
		w.renderList(n)

	case *ast.ThematicBreak:
		w.blocks = append(w.blocks, docconv.Rule{})

	case *ast.HTMLBlock:
		content := w.lines(n)
		if n.HasClosure() {
			content += string(n.ClosureLine.Value(w.source))
		}
		content = strings.TrimSpace(content)
		if content != "" {
			w.blocks = append(w.blocks, docconv.Paragraph{Runs: []docconv.InlineRun{{Text: content}}})
		}

	case *east.Table:
		w.renderTable(n)

	default:
		// Block quotes and unrecognized containers: recurse into children.
		w.walkBlock(node)
	}
}

func (w *walker) renderList(node *ast.List) {
	ordered := node.IsOrdered()
	index := 0
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		index++
		var (
			runs   []docconv.InlineRun
			nested []ast.Node
		)
		for ic := item.FirstChild(); ic != nil; ic = ic.NextSibling() {
			switch in := ic.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				if len(runs) > 0 {
					runs = append(runs, docconv.InlineRun{Text: " "})
				}
				runs = append(runs, w.collectInline(in)...)
			default:
				nested = append(nested, ic)
			}
		}
		runs = nonEmpty(merge(runs))
		w.blocks = append(w.blocks, docconv.ListItem{
			Text:    Markup(runs),
			Runs:    runs,
			Ordered: ordered,
			Index:   index,
		})
		if len(nested) > 0 {
			for _, n := range nested {
				w.renderBlock(n)
			}
			// Items after a nested block start a new list.
			index = 0
		}
	}
}

func (w *walker) renderTable(node *east.Table) {
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		switch row := c.(type) {
		case *east.TableHeader:
			w.blocks = append(w.blocks, docconv.TableRow{Cells: w.cells(row), IsHeader: true})
		case *east.TableRow:
			w.blocks = append(w.blocks, docconv.TableRow{Cells: w.cells(row)})
		}
	}
}

func (w *walker) cells(row ast.Node) []string {
	var cells []string
	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		if _, ok := c.(*east.TableCell); !ok {
			continue
		}
		cells = append(cells, Markup(w.collectInline(c)))
	}
	if len(cells) == 0 {
		cells = []string{""}
	}
	return cells
}

// lines joins the raw source lines of a block node verbatim.
func (w *walker) lines(node ast.Node) string {
	var b strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(w.source))
	}
	return b.String()
}

// code is like lines but terminates the last line, which may lack a newline
// when the block ends the source.
func (w *walker) code(node ast.Node) string {
	content := w.lines(node)
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content
}

// nonEmpty guarantees at least one run.
func nonEmpty(runs []docconv.InlineRun) []docconv.InlineRun {
	if len(runs) == 0 {
		return []docconv.InlineRun{{}}
	}
	return runs
}
