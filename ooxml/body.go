package ooxml

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/fwojciec/docconv"
)

// listDef is one numbering instance referenced from document.xml.
type listDef struct {
	numID   int
	ordered bool
}

// bodyWriter accumulates document.xml and the numbering instances it uses.
type bodyWriter struct {
	b     strings.Builder
	lists []listDef
	// numIDs maps ListRef.Instance to its numId.
	numIDs map[int]int
}

// writeBody renders document.xml for elems.
func writeBody(elems []docconv.Element) (string, []listDef) {
	w := &bodyWriter{numIDs: make(map[int]int)}
	w.b.WriteString(xml.Header)
	w.b.WriteString(`<w:document xmlns:w="` + nsMain + `"><w:body>`)

	var prevTable bool
	for _, e := range elems {
		switch e := e.(type) {
		case docconv.ParagraphElement:
			w.paragraph(e)
			prevTable = false
		case docconv.TableElement:
			// Adjacent tables would merge into one.
			if prevTable {
				w.b.WriteString("<w:p/>")
			}
			w.table(e)
			prevTable = true
		}
	}
	if prevTable {
		w.b.WriteString("<w:p/>")
	}

	w.b.WriteString(`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/>` +
		`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="708" w:footer="708" w:gutter="0"/>` +
		`</w:sectPr></w:body></w:document>`)
	return w.b.String(), w.lists
}

func (w *bodyWriter) paragraph(p docconv.ParagraphElement) {
	w.b.WriteString("<w:p><w:pPr>")
	if p.Heading > 0 {
		w.b.WriteString(`<w:pStyle w:val="Heading` + strconv.Itoa(p.Heading) + `"/>`)
	}
	if p.List != nil {
		w.b.WriteString(`<w:numPr><w:ilvl w:val="` + strconv.Itoa(p.List.Level) +
			`"/><w:numId w:val="` + strconv.Itoa(w.numID(p.List)) + `"/></w:numPr>`)
	}
	if p.Rule {
		w.b.WriteString(`<w:pBdr><w:bottom w:val="single" w:sz="6" w:space="1" w:color="auto"/></w:pBdr>`)
	}
	if p.Shading != "" {
		w.b.WriteString(`<w:shd w:val="clear" w:color="auto" w:fill="`)
		escape(&w.b, p.Shading)
		w.b.WriteString(`"/>`)
	}
	w.b.WriteString(`<w:spacing w:before="` + strconv.Itoa(p.Spacing.Before) +
		`" w:after="` + strconv.Itoa(p.Spacing.After) + `"/>`)
	w.b.WriteString("</w:pPr>")
	w.runs(p.Runs)
	w.b.WriteString("</w:p>")
}

// numID returns the numbering instance for ref. Refs without an instance
// get a fresh numbering of their own.
func (w *bodyWriter) numID(ref *docconv.ListRef) int {
	if ref.Instance > 0 {
		if id, ok := w.numIDs[ref.Instance]; ok {
			return id
		}
	}
	id := len(w.lists) + 1
	w.lists = append(w.lists, listDef{numID: id, ordered: ref.Ordered})
	if ref.Instance > 0 {
		w.numIDs[ref.Instance] = id
	}
	return id
}

func (w *bodyWriter) table(t docconv.TableElement) {
	cols := t.Columns()
	if cols == 0 {
		return
	}
	w.b.WriteString(`<w:tbl><w:tblPr><w:tblW w:w="0" w:type="auto"/><w:tblBorders>`)
	for _, side := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		w.b.WriteString(`<w:` + side + ` w:val="single" w:sz="4" w:space="0" w:color="auto"/>`)
	}
	w.b.WriteString(`</w:tblBorders><w:tblLook w:val="04A0"/></w:tblPr><w:tblGrid>`)
	colWidth := strconv.Itoa(textWidth / cols)
	for i := 0; i < cols; i++ {
		w.b.WriteString(`<w:gridCol w:w="` + colWidth + `"/>`)
	}
	w.b.WriteString("</w:tblGrid>")

	for _, row := range t.Rows {
		w.b.WriteString("<w:tr>")
		if row.Header {
			w.b.WriteString("<w:trPr><w:tblHeader/></w:trPr>")
		}
		for i := 0; i < cols; i++ {
			w.b.WriteString(`<w:tc><w:tcPr><w:tcW w:w="` + colWidth + `" w:type="dxa"/></w:tcPr><w:p>`)
			if i < len(row.Cells) {
				w.runs(row.Cells[i].Runs)
			}
			w.b.WriteString("</w:p></w:tc>")
		}
		w.b.WriteString("</w:tr>")
	}
	w.b.WriteString("</w:tbl>")
}

func (w *bodyWriter) runs(runs []docconv.TextRun) {
	for _, r := range runs {
		w.run(r)
	}
}

// run writes one run. Newlines become line breaks and tabs become tab
// stops.
func (w *bodyWriter) run(r docconv.TextRun) {
	w.b.WriteString("<w:r>")
	if r.Font != "" || r.Bold || r.Italic || r.Size > 0 {
		w.b.WriteString("<w:rPr>")
		if r.Font != "" {
			w.b.WriteString(`<w:rFonts w:ascii="`)
			escape(&w.b, r.Font)
			w.b.WriteString(`" w:hAnsi="`)
			escape(&w.b, r.Font)
			w.b.WriteString(`" w:cs="`)
			escape(&w.b, r.Font)
			w.b.WriteString(`"/>`)
		}
		if r.Bold {
			w.b.WriteString("<w:b/>")
		}
		if r.Italic {
			w.b.WriteString("<w:i/>")
		}
		if r.Size > 0 {
			size := strconv.Itoa(r.Size)
			w.b.WriteString(`<w:sz w:val="` + size + `"/><w:szCs w:val="` + size + `"/>`)
		}
		w.b.WriteString("</w:rPr>")
	}
	for i, line := range strings.Split(r.Text, "\n") {
		if i > 0 {
			w.b.WriteString("<w:br/>")
		}
		for j, seg := range strings.Split(line, "\t") {
			if j > 0 {
				w.b.WriteString("<w:tab/>")
			}
			if seg == "" {
				continue
			}
			w.b.WriteString(`<w:t xml:space="preserve">`)
			escape(&w.b, seg)
			w.b.WriteString("</w:t>")
		}
	}
	w.b.WriteString("</w:r>")
}

// escape writes s with XML special characters escaped. Characters that
// are invalid in XML 1.0 are replaced by U+FFFD.
func escape(b *strings.Builder, s string) {
	_ = xml.EscapeText(b, []byte(s))
}
