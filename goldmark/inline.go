package goldmark

import (
	"strings"

	"github.com/fwojciec/docconv"
	"github.com/yuin/goldmark/ast"
)

// style is the formatting inherited by inline nodes.
type style struct {
	bold, italic, code bool
}

// collectInline recursively collects formatted runs from a node's children.
func (w *walker) collectInline(node ast.Node) []docconv.InlineRun {
	var runs []docconv.InlineRun
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		runs = w.renderInline(c, style{}, runs)
	}
	return merge(runs)
}

func (w *walker) renderInline(node ast.Node, st style, runs []docconv.InlineRun) []docconv.InlineRun {
	emit := func(s string) []docconv.InlineRun {
		if s == "" {
			return runs
		}
		return append(runs, docconv.InlineRun{Text: s, Bold: st.bold, Italic: st.italic, IsCode: st.code})
	}

	switch n := node.(type) {
	case *ast.Text:
		runs = emit(string(n.Segment.Value(w.source)))
		if n.SoftLineBreak() || n.HardLineBreak() {
			runs = emit(" ")
		}
		return runs

	case *ast.String:
		return emit(string(n.Value))

	case *ast.Emphasis:
		inner := st
		switch n.Level {
		case 1:
			inner.italic = true
		default:
			// Level 2 = bold. Goldmark represents ***bold italic*** as
			// nested Emphasis nodes, so level 3+ is not reachable.
			inner.bold = true
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			runs = w.renderInline(c, inner, runs)
		}
		return runs

	case *ast.CodeSpan:
		inner := st
		inner.code = true
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			runs = w.renderInline(c, inner, runs)
		}
		return runs

	case *ast.Link:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			runs = w.renderInline(c, st, runs)
		}
		return emit(" (" + string(n.Destination) + ")")

	case *ast.AutoLink:
		return emit(string(n.URL(w.source)))

	case *ast.Image:
		// Alt text only.
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			runs = w.renderInline(c, st, runs)
		}
		return runs

	case *ast.RawHTML:
		var b strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			b.Write(seg.Value(w.source))
		}
		return emit(b.String())

	default:
		// Recurse for any unrecognized inline.
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			runs = w.renderInline(c, st, runs)
		}
		return runs
	}
}

// merge joins adjacent runs with identical formatting so runs stay maximal.
func merge(runs []docconv.InlineRun) []docconv.InlineRun {
	if len(runs) < 2 {
		return runs
	}
	out := runs[:1]
	for _, r := range runs[1:] {
		last := &out[len(out)-1]
		if last.Bold == r.Bold && last.Italic == r.Italic && last.IsCode == r.IsCode {
			last.Text += r.Text
			continue
		}
		out = append(out, r)
	}
	return out
}

// Markup serializes runs back to the inline syntax understood by
// docconv.FormatInline, so that FormatInline(Markup(runs)) reproduces the
// formatting of runs whose text contains no asterisks or backticks.
func Markup(runs []docconv.InlineRun) string {
	var b strings.Builder
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		if r.Bold {
			b.WriteString("**")
		}
		if r.Italic {
			b.WriteString("*")
		}
		if r.IsCode {
			b.WriteString("`")
		}
		b.WriteString(r.Text)
		if r.IsCode {
			b.WriteString("`")
		}
		if r.Italic {
			b.WriteString("*")
		}
		if r.Bold {
			b.WriteString("**")
		}
	}
	return b.String()
}
