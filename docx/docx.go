// Package docx maps a docconv.Document onto the structured-document element
// model consumed by word processing packers.
package docx

import (
	"strings"

	"github.com/fwojciec/docconv"
)

// Spacing presets in twips.
var (
	headingSpacing = [...]docconv.Spacing{
		{Before: 400, After: 200},
		{Before: 360, After: 180},
		{Before: 320, After: 160},
		{Before: 280, After: 140},
		{Before: 240, After: 120},
		{Before: 200, After: 100},
	}
	paragraphSpacing = docconv.Spacing{Before: 120, After: 120}
	listSpacing      = docconv.Spacing{Before: 80, After: 80}
	codeSpacing      = docconv.Spacing{Before: 200, After: 200}
)

// Render converts doc into elements. Each list group becomes paragraphs
// sharing one list instance, so numbering restarts per list, and each table
// group becomes one table element.
func Render(doc docconv.Document) []docconv.Element {
	var (
		elems    []docconv.Element
		instance int
	)
	for _, g := range docconv.Groups(doc) {
		switch g.Kind {
		case docconv.GroupList:
			instance++
			for _, item := range g.Items() {
				elems = append(elems, docconv.ParagraphElement{
					Runs:    textRuns(item.Runs),
					List:    &docconv.ListRef{Ordered: item.Ordered, Instance: instance},
					Spacing: listSpacing,
				})
			}
		case docconv.GroupTable:
			if t, ok := table(g.Rows()); ok {
				elems = append(elems, t)
			}
		default:
			elems = append(elems, element(g.Blocks[0]))
		}
	}
	return elems
}

func element(b docconv.Block) docconv.Element {
	switch b := b.(type) {
	case docconv.Heading:
		level := min(max(b.Level, 1), len(headingSpacing))
		return docconv.ParagraphElement{
			Runs:    textRuns(b.Runs),
			Heading: level,
			Spacing: headingSpacing[level-1],
		}
	case docconv.CodeBlock:
		return docconv.ParagraphElement{
			Runs: []docconv.TextRun{{
				Text: strings.TrimSuffix(b.Content, "\n"),
				Font: docconv.CodeFont,
				Size: docconv.CodeSize,
			}},
			Spacing: codeSpacing,
			Shading: docconv.CodeShading,
		}
	case docconv.Rule:
		return docconv.ParagraphElement{Rule: true, Spacing: paragraphSpacing}
	case docconv.Paragraph:
		return docconv.ParagraphElement{Runs: textRuns(b.Runs), Spacing: paragraphSpacing}
	// Groups never yields these alone; kept for exhaustiveness.
	case docconv.ListItem:
		return docconv.ParagraphElement{
			Runs:    textRuns(b.Runs),
			List:    &docconv.ListRef{Ordered: b.Ordered},
			Spacing: listSpacing,
		}
	case docconv.TableRow:
		t, _ := table([]docconv.TableRow{b})
		return t
	}
	return docconv.ParagraphElement{}
}

func table(rows []docconv.TableRow) (docconv.TableElement, bool) {
	if len(rows) == 0 {
		return docconv.TableElement{}, false
	}
	t := docconv.TableElement{Rows: make([]docconv.TableRowElement, len(rows))}
	for i, r := range rows {
		cells := make([]docconv.TableCellElement, len(r.Cells))
		for j, c := range r.Cells {
			runs := textRuns(docconv.FormatInline(c))
			if r.IsHeader {
				for k := range runs {
					runs[k].Bold = true
				}
			}
			cells[j] = docconv.TableCellElement{Runs: runs}
		}
		t.Rows[i] = docconv.TableRowElement{Cells: cells, Header: r.IsHeader}
	}
	return t, true
}

// textRuns maps inline runs to styled runs. Code runs use the fixed
// monospace font and size and drop emphasis.
func textRuns(runs []docconv.InlineRun) []docconv.TextRun {
	out := make([]docconv.TextRun, 0, len(runs))
	for _, r := range runs {
		if r.Text == "" && len(runs) > 1 {
			continue
		}
		if r.IsCode {
			out = append(out, docconv.TextRun{Text: r.Text, Font: docconv.CodeFont, Size: docconv.CodeSize})
			continue
		}
		out = append(out, docconv.TextRun{Text: r.Text, Bold: r.Bold, Italic: r.Italic})
	}
	return out
}
