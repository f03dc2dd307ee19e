package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/docconv"
	"github.com/fwojciec/docconv/mock"
	"github.com/fwojciec/docconv/ooxml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConverter(stdin string, stdout io.Writer) *converter {
	return &converter{
		reader: newTestReader(stdin),
		exporter: &exporter{
			packer: ooxml.NewPacker(),
			width:  80,
			theme:  docconv.DefaultTheme(),
		},
		stdout: stdout,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestConverter_ConvertAll(t *testing.T) {
	t.Parallel()

	t.Run("stdin to stdout as text", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		c := newTestConverter("# Title\n\n- a\n- b", &out)
		require.NoError(t, c.convertAll(context.Background(), []string{"-"}, docconv.FormatText, "-", ""))
		assert.Equal(t, "Title\n\n• a\n• b\n", out.String())
	})

	t.Run("explicit output file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "out.html")
		c := newTestConverter("**hi**", io.Discard)
		require.NoError(t, c.convertAll(context.Background(), []string{"-"}, docconv.FormatHTML, path, "Greeting"))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "<title>Greeting</title>")
		assert.Contains(t, string(data), "<strong>hi</strong>")
	})

	t.Run("several inputs write into a directory named by titles", func(t *testing.T) {
		t.Parallel()
		src := t.TempDir()
		a := filepath.Join(src, "a.md")
		b := filepath.Join(src, "b.md")
		d := filepath.Join(src, "d.md")
		require.NoError(t, os.WriteFile(a, []byte("# Café Notes"), 0o644))
		require.NoError(t, os.WriteFile(b, []byte("no heading"), 0o644))
		require.NoError(t, os.WriteFile(d, []byte("# Cafe notes"), 0o644))

		dir := filepath.Join(t.TempDir(), "out")
		c := newTestConverter("", io.Discard)
		require.NoError(t, c.convertAll(context.Background(), []string{a, b, d}, docconv.FormatDOCX, dir, ""))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		assert.ElementsMatch(t, []string{"cafe_notes.docx", "b.docx", "cafe_notes_2.docx"}, names)
	})

	t.Run("pdf uses the printer with a full page", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		c := newTestConverter("# Report", &out)
		c.exporter.printer = &mock.Printer{PrintFn: func(ctx context.Context, html string) ([]byte, error) {
			assert.Contains(t, html, "<!DOCTYPE html>")
			assert.Contains(t, html, "<h1>Report</h1>")
			return []byte("%PDF-1.7"), nil
		}}
		require.NoError(t, c.convertAll(context.Background(), []string{"-"}, docconv.FormatPDF, "-", ""))
		assert.Equal(t, "%PDF-1.7", out.String())
	})

	t.Run("collaborator errors are returned", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("browser crashed")
		c := newTestConverter("x", io.Discard)
		c.exporter.rasterizer = &mock.Rasterizer{RasterizeFn: func(context.Context, string) ([]byte, error) {
			return nil, wantErr
		}}
		err := c.convertAll(context.Background(), []string{"-"}, docconv.FormatPNG, "-", "")
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("cancelled context stops before reading", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		c := newTestConverter("x", io.Discard)
		err := c.convertAll(ctx, []string{"-"}, docconv.FormatText, "-", "")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestConverter_CopyAll(t *testing.T) {
	t.Parallel()

	t.Run("copies the plain text", func(t *testing.T) {
		t.Parallel()
		var got string
		c := newTestConverter("# Title\n\n- a\n- **b**", io.Discard)
		c.clipboard = &mock.Clipboard{CopyFn: func(text string) error {
			got = text
			return nil
		}}
		require.NoError(t, c.copyAll(context.Background(), []string{"-"}))
		assert.Equal(t, "Title\n\n• a\n• b", got)
	})

	t.Run("several inputs are joined by a blank line", func(t *testing.T) {
		t.Parallel()
		src := t.TempDir()
		a := filepath.Join(src, "a.md")
		b := filepath.Join(src, "b.md")
		require.NoError(t, os.WriteFile(a, []byte("# One"), 0o644))
		require.NoError(t, os.WriteFile(b, []byte("two"), 0o644))

		var got string
		c := newTestConverter("", io.Discard)
		c.clipboard = &mock.Clipboard{CopyFn: func(text string) error {
			got = text
			return nil
		}}
		require.NoError(t, c.copyAll(context.Background(), []string{a, b}))
		assert.Equal(t, "One\n\ntwo", got)
	})

	t.Run("clipboard errors are returned", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("no terminal")
		c := newTestConverter("x", io.Discard)
		c.clipboard = &mock.Clipboard{CopyFn: func(string) error { return wantErr }}
		assert.ErrorIs(t, c.copyAll(context.Background(), []string{"-"}), wantErr)
	})

	t.Run("cancelled context stops before reading", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		c := newTestConverter("x", io.Discard)
		c.clipboard = &mock.Clipboard{CopyFn: func(string) error {
			t.Error("unexpected copy")
			return nil
		}}
		assert.ErrorIs(t, c.copyAll(ctx, []string{"-"}), context.Canceled)
	})
}

func TestClipboardOptions(t *testing.T) {
	t.Parallel()

	assert.Empty(t, clipboardOptions("", ""))
	assert.Len(t, clipboardOptions("/tmp/tmux-0/default,1,0", ""), 1)
	assert.Len(t, clipboardOptions("", "1234.pts-0.host"), 1)
}

func TestExporter_Export(t *testing.T) {
	t.Parallel()

	t.Run("browser formats need a browser", func(t *testing.T) {
		t.Parallel()
		e := &exporter{}
		err := e.export(context.Background(), io.Discard, docconv.FormatPDF, docconv.Document{}, docconv.Meta{})
		assert.ErrorIs(t, err, errNoBrowser)
		err = e.export(context.Background(), io.Discard, docconv.FormatPNG, docconv.Document{}, docconv.Meta{})
		assert.ErrorIs(t, err, errNoBrowser)
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()
		e := &exporter{}
		err := e.export(context.Background(), io.Discard, docconv.Format("rtf"), docconv.Document{}, docconv.Meta{})
		assert.ErrorIs(t, err, docconv.ErrUnknownFormat)
	})

	t.Run("docx goes through the packer", func(t *testing.T) {
		t.Parallel()
		var got docconv.Meta
		e := &exporter{packer: &mock.Packer{PackFn: func(w io.Writer, elems []docconv.Element, meta docconv.Meta) error {
			got = meta
			assert.Len(t, elems, 1)
			return nil
		}}}
		err := e.export(context.Background(), io.Discard, docconv.FormatDOCX, docconv.Document{Blocks: []docconv.Block{docconv.Rule{}}}, docconv.Meta{Title: "T"})
		require.NoError(t, err)
		assert.Equal(t, "T", got.Title)
	})

	t.Run("json output round trips", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		e := &exporter{}
		doc := docconv.Document{Blocks: []docconv.Block{docconv.Rule{}}}
		require.NoError(t, e.export(context.Background(), &buf, docconv.FormatJSON, doc, docconv.Meta{Title: "T"}))
		assert.Contains(t, buf.String(), `"title": "T"`)
	})
}

func TestResolveBrowserOptions(t *testing.T) {
	t.Parallel()

	assert.Len(t, resolveBrowserOptions("", "", false, "", false, time.Second), 1)
	assert.Len(t, resolveBrowserOptions("/usr/bin/chromium", "", false, "", false, time.Second), 2)
	assert.Len(t, resolveBrowserOptions("", "/opt/chrome", false, "true", true, time.Second), 4)
	assert.Len(t, resolveBrowserOptions("", "", false, "nope", false, time.Second), 1)
}

func TestResolveParser(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "line", "commonmark", "goldmark"} {
		parse, err := resolveParser(name)
		require.NoError(t, err, name)
		assert.Equal(t, 1, parse("# x").Len(), name)
	}
	_, err := resolveParser("pandoc")
	assert.Error(t, err)
}
