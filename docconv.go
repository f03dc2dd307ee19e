// Package docconv converts markdown-like text into typed document blocks and
// renders them to plain text, HTML, terminal output and word processing
// documents.
//
// The root package holds the domain types and the interfaces of the
// external collaborators. Parsers, renderers and collaborator
// implementations live in subpackages named after their concern or the
// library they wrap.
package docconv

import (
	"context"
	"io"
)

// Meta describes the document being exported.
type Meta struct {
	Title string
}

// Packer serializes structured-document elements into a binary container.
type Packer interface {
	Pack(w io.Writer, elems []Element, meta Meta) error
}

// Printer turns a standalone HTML page into a PDF document.
type Printer interface {
	Print(ctx context.Context, html string) ([]byte, error)
}

// Rasterizer turns a standalone HTML page into a PNG image.
type Rasterizer interface {
	Rasterize(ctx context.Context, html string) ([]byte, error)
}

// Importer converts an HTML document into markdown text.
type Importer interface {
	Import(html string) (string, error)
}

// Clipboard hands plain text to the host clipboard.
type Clipboard interface {
	Copy(text string) error
}
