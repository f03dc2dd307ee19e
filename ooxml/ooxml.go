// Package ooxml packs structured-document elements into a WordprocessingML
// (.docx) container.
package ooxml

import (
	"archive/zip"
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/docconv"
)

// Ensure Packer implements docconv.Packer at compile time.
var _ docconv.Packer = (*Packer)(nil)

// Packer writes .docx files.
type Packer struct {
	// Now returns the creation timestamp recorded in the document
	// properties. Defaults to time.Now.
	Now func() time.Time
}

// NewPacker creates a Packer.
func NewPacker() *Packer {
	return &Packer{Now: time.Now}
}

// Pack writes elems as a .docx archive to w.
func (p *Packer) Pack(w io.Writer, elems []docconv.Element, meta docconv.Meta) error {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	body, lists := writeBody(elems)
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"docProps/core.xml", coreXML(meta.Title, now().UTC())},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/document.xml", body},
		{"word/styles.xml", stylesXML},
		{"word/numbering.xml", numberingXML(lists)},
	}

	zw := zip.NewWriter(w)
	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("create %s: %w", part.name, err)
		}
		if _, err := io.WriteString(f, part.content); err != nil {
			return fmt.Errorf("write %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}
	return nil
}
