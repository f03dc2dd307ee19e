package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/docconv"
	"github.com/fwojciec/docconv/ansi"
	"github.com/fwojciec/docconv/docx"
	"github.com/fwojciec/docconv/html"
	docjson "github.com/fwojciec/docconv/json"
	"github.com/fwojciec/docconv/text"
)

// errNoBrowser is returned when a browser format is requested without a
// configured browser.
var errNoBrowser = errors.New("no browser configured")

// exporter renders a document in one output format.
type exporter struct {
	packer     docconv.Packer
	printer    docconv.Printer
	rasterizer docconv.Rasterizer
	width      int
	theme      docconv.Theme
}

func (e *exporter) export(ctx context.Context, w io.Writer, format docconv.Format, doc docconv.Document, meta docconv.Meta) error {
	switch format {
	case docconv.FormatText:
		return writeString(w, text.Render(doc))

	case docconv.FormatHTML:
		return writeString(w, html.Page(doc, meta.Title))

	case docconv.FormatANSI:
		return writeString(w, ansi.Render(doc, e.width, e.theme))

	case docconv.FormatJSON:
		data, err := docjson.MarshalDocument(doc, meta)
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = w.Write(data)
		return err

	case docconv.FormatDOCX:
		if err := e.packer.Pack(w, docx.Render(doc), meta); err != nil {
			return fmt.Errorf("pack docx: %w", err)
		}
		return nil

	case docconv.FormatPDF:
		if e.printer == nil {
			return fmt.Errorf("pdf: %w", errNoBrowser)
		}
		data, err := e.printer.Print(ctx, html.Page(doc, meta.Title))
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err

	case docconv.FormatPNG:
		if e.rasterizer == nil {
			return fmt.Errorf("png: %w", errNoBrowser)
		}
		data, err := e.rasterizer.Rasterize(ctx, html.Page(doc, meta.Title))
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err

	default:
		return fmt.Errorf("%q: %w", format, docconv.ErrUnknownFormat)
	}
}

// writeString writes s terminated by a newline. Empty output stays empty.
func writeString(w io.Writer, s string) error {
	if s != "" && !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	_, err := io.WriteString(w, s)
	return err
}
