package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fwojciec/docconv"
	"github.com/fwojciec/docconv/text"
)

// converter drives read, export and write for each input.
type converter struct {
	reader    *inputReader
	exporter  *exporter
	clipboard docconv.Clipboard
	stdout    io.Writer
	logger    *slog.Logger
}

// convertAll converts every input. With several inputs a non-stdout output
// names a directory, created when missing. Outputs whose derived names
// collide get a numeric suffix.
func (c *converter) convertAll(ctx context.Context, inputs []string, format docconv.Format, output, title string) error {
	dir := ""
	if len(inputs) > 1 && output != "" && output != stdinName {
		if err := os.MkdirAll(output, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		dir = output
		output = ""
	}

	used := make(map[string]bool)
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		doc, meta, err := c.reader.read(in)
		if err != nil {
			return fmt.Errorf("%s: %w", displayName(in), err)
		}
		meta.Title = resolveTitle(title, meta, doc, in)
		c.logger.Debug("parsed", "input", displayName(in), "blocks", doc.Len(), "title", meta.Title)

		var buf bytes.Buffer
		if err := c.exporter.export(ctx, &buf, format, doc, meta); err != nil {
			return fmt.Errorf("%s: %w", displayName(in), err)
		}

		path := output
		if path == "" {
			path = uniquePath(filepath.Join(dir, docconv.FileName(meta.Title, format.Ext())), used)
		}
		if path == stdinName {
			if _, err := c.stdout.Write(buf.Bytes()); err != nil {
				return fmt.Errorf("write stdout: %w", err)
			}
			continue
		}
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		c.logger.Info("converted", "input", displayName(in), "format", string(format), "output", path, "bytes", buf.Len())
	}
	return nil
}

// copyAll places the plain-text rendering of every input on the clipboard.
// Inputs are separated by a blank line.
func (c *converter) copyAll(ctx context.Context, inputs []string) error {
	var parts []string
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		doc, _, err := c.reader.read(in)
		if err != nil {
			return fmt.Errorf("%s: %w", displayName(in), err)
		}
		if s := text.Render(doc); s != "" {
			parts = append(parts, s)
		}
	}
	s := strings.Join(parts, "\n\n")
	if err := c.clipboard.Copy(s); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	c.logger.Info("copied", "inputs", len(inputs), "bytes", len(s))
	return nil
}

// uniquePath returns path, or path with "_2", "_3"... inserted before the
// extension when an earlier input already produced it.
func uniquePath(path string, used map[string]bool) string {
	candidate := path
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for n := 2; used[candidate]; n++ {
		candidate = stem + "_" + strconv.Itoa(n) + ext
	}
	used[candidate] = true
	return candidate
}

func displayName(in string) string {
	if in == stdinName {
		return "stdin"
	}
	return in
}
