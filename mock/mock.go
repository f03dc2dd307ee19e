// Package mock provides test doubles for docconv interfaces using function
// fields.
package mock

import (
	"context"
	"io"

	"github.com/fwojciec/docconv"
)

// Interface compliance checks.
var (
	_ docconv.Packer     = (*Packer)(nil)
	_ docconv.Printer    = (*Printer)(nil)
	_ docconv.Rasterizer = (*Rasterizer)(nil)
	_ docconv.Importer   = (*Importer)(nil)
	_ docconv.Clipboard  = (*Clipboard)(nil)
)

// Packer is a test double for docconv.Packer.
// Set PackFn before calling Pack.
type Packer struct {
	PackFn func(w io.Writer, elems []docconv.Element, meta docconv.Meta) error
}

// Pack delegates to PackFn.
func (p *Packer) Pack(w io.Writer, elems []docconv.Element, meta docconv.Meta) error {
	return p.PackFn(w, elems, meta)
}

// Printer is a test double for docconv.Printer.
// Set PrintFn before calling Print.
type Printer struct {
	PrintFn func(ctx context.Context, html string) ([]byte, error)
}

// Print delegates to PrintFn.
func (p *Printer) Print(ctx context.Context, html string) ([]byte, error) {
	return p.PrintFn(ctx, html)
}

// Rasterizer is a test double for docconv.Rasterizer.
// Set RasterizeFn before calling Rasterize.
type Rasterizer struct {
	RasterizeFn func(ctx context.Context, html string) ([]byte, error)
}

// Rasterize delegates to RasterizeFn.
func (r *Rasterizer) Rasterize(ctx context.Context, html string) ([]byte, error) {
	return r.RasterizeFn(ctx, html)
}

// Importer is a test double for docconv.Importer.
// Set ImportFn before calling Import.
type Importer struct {
	ImportFn func(html string) (string, error)
}

// Import delegates to ImportFn.
func (i *Importer) Import(html string) (string, error) {
	return i.ImportFn(html)
}

// Clipboard is a test double for docconv.Clipboard.
// Set CopyFn before calling Copy.
type Clipboard struct {
	CopyFn func(text string) error
}

// Copy delegates to CopyFn.
func (c *Clipboard) Copy(text string) error {
	return c.CopyFn(text)
}
