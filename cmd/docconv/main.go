// Command docconv converts markdown documents to plain text, HTML, Word,
// PDF, PNG, JSON or styled terminal output.
//
// Usage:
//
//	docconv [flags] [file|glob ...]
//
// With no arguments, or "-", markdown is read from stdin. Inputs ending in
// .html or .htm are imported as HTML first; .json inputs are loaded as saved
// documents.
//
// Flags:
//
//	-format string      Output format: txt, html, docx, pdf, png, json, ansi (default html)
//	-o string           Output file, directory for several inputs, or - for stdout
//	-title string       Document title (default: first heading or file name)
//	-parser string      Markdown parser: line, commonmark (default line)
//	-select string      CSS selector narrowing HTML inputs
//	-view               Preview in the terminal instead of writing output
//	-copy               Copy the plain text to the clipboard instead of writing output
//	-width int          Wrap width for ansi output (default 80)
//	-chrome string      Chrome executable for pdf and png (env DOCCONV_CHROME_PATH)
//	-no-sandbox         Disable the Chrome sandbox (env DOCCONV_NO_SANDBOX)
//	-download-browser   Download Chromium when none is configured
//	-timeout duration   Per-document browser timeout (default 30s)
//	-v                  Verbose logging
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/fwojciec/docconv"
	bt "github.com/fwojciec/docconv/bubbletea"
	"github.com/fwojciec/docconv/chromedp"
	"github.com/fwojciec/docconv/goldmark"
	"github.com/fwojciec/docconv/htmltomarkdown"
	"github.com/fwojciec/docconv/markdown"
	"github.com/fwojciec/docconv/ooxml"
	"github.com/fwojciec/docconv/osc52"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "docconv: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		formatFlag = flag.String("format", string(docconv.FormatHTML), "Output format: txt, html, docx, pdf, png, json, ansi")
		output     = flag.String("o", "", "Output file, directory for several inputs, or - for stdout")
		title      = flag.String("title", "", "Document title (default: first heading or file name)")
		parserFlag = flag.String("parser", "line", "Markdown parser: line, commonmark")
		selector   = flag.String("select", "", "CSS selector narrowing HTML inputs")
		view       = flag.Bool("view", false, "Preview in the terminal instead of writing output")
		copyText   = flag.Bool("copy", false, "Copy the plain text to the clipboard instead of writing output")
		width      = flag.Int("width", 80, "Wrap width for ansi output")
		chromePath = flag.String("chrome", "", "Chrome executable for pdf and png")
		noSandbox  = flag.Bool("no-sandbox", false, "Disable the Chrome sandbox")
		download   = flag.Bool("download-browser", false, "Download Chromium when none is configured")
		timeout    = flag.Duration("timeout", 30*time.Second, "Per-document browser timeout")
		verbose    = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	format, err := docconv.ParseFormat(*formatFlag)
	if err != nil {
		return err
	}
	parse, err := resolveParser(*parserFlag)
	if err != nil {
		return err
	}
	importer, err := htmltomarkdown.NewImporter(*selector)
	if err != nil {
		return err
	}

	// Env vars are read here and passed as values.
	browserOpts := resolveBrowserOptions(*chromePath, os.Getenv("DOCCONV_CHROME_PATH"),
		*noSandbox, os.Getenv("DOCCONV_NO_SANDBOX"), *download, *timeout)

	inputs, err := expandInputs(flag.Args())
	if err != nil {
		return err
	}
	reader := &inputReader{stdin: os.Stdin, importer: importer, parse: parse}

	if *view {
		return preview(ctx, reader, inputs, *title)
	}
	if *copyText {
		tty, closeTTY := openTerminal()
		defer closeTTY()
		c := &converter{
			reader:    reader,
			clipboard: osc52.New(tty, clipboardOptions(os.Getenv("TMUX"), os.Getenv("STY"))...),
			logger:    logger,
		}
		return c.copyAll(ctx, inputs)
	}

	exp := &exporter{
		packer: ooxml.NewPacker(),
		width:  *width,
		theme:  docconv.DefaultTheme(),
	}
	if format == docconv.FormatPDF || format == docconv.FormatPNG {
		browser, err := chromedp.New(browserOpts...)
		if err != nil {
			return err
		}
		defer browser.Close()
		exp.printer = browser
		exp.rasterizer = browser
	}

	c := &converter{
		reader:   reader,
		exporter: exp,
		stdout:   os.Stdout,
		logger:   logger,
	}
	return c.convertAll(ctx, inputs, format, *output, *title)
}

func resolveParser(name string) (func(string) docconv.Document, error) {
	switch name {
	case "", "line":
		return markdown.Parse, nil
	case "commonmark", "goldmark":
		return goldmark.Parse, nil
	default:
		return nil, fmt.Errorf("unknown parser %q (want line or commonmark)", name)
	}
}

// resolveBrowserOptions merges flags with their environment fallbacks.
func resolveBrowserOptions(chromeFlag, chromeEnv string, noSandboxFlag bool, noSandboxEnv string, download bool, timeout time.Duration) []chromedp.Option {
	opts := []chromedp.Option{chromedp.WithTimeout(timeout)}
	path := chromeFlag
	if path == "" {
		path = chromeEnv
	}
	if path != "" {
		opts = append(opts, chromedp.WithChromePath(path))
	}
	if noSandboxFlag || truthy(noSandboxEnv) {
		opts = append(opts, chromedp.WithNoSandbox())
	}
	if download {
		opts = append(opts, chromedp.WithDownload())
	}
	return opts
}

// clipboardOptions picks the escape passthrough for the multiplexer named by
// the TMUX and STY environment variables.
func clipboardOptions(tmuxEnv, styEnv string) []osc52.Option {
	switch {
	case tmuxEnv != "":
		return []osc52.Option{osc52.WithTmux()}
	case styEnv != "":
		return []osc52.Option{osc52.WithScreen()}
	}
	return nil
}

// openTerminal returns the controlling terminal, or stderr when there is
// none, so clipboard sequences bypass redirected stdout.
func openTerminal() (io.Writer, func()) {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return os.Stderr, func() {}
	}
	return tty, func() { _ = tty.Close() }
}

func truthy(s string) bool {
	v, err := strconv.ParseBool(s)
	return err == nil && v
}

// preview shows each input in turn in the terminal viewer.
func preview(ctx context.Context, reader *inputReader, inputs []string, title string) error {
	for _, in := range inputs {
		doc, meta, err := reader.read(in)
		if err != nil {
			return err
		}
		if err := bt.Run(ctx, bt.New(doc, resolveTitle(title, meta, doc, in), docconv.DefaultTheme())); err != nil {
			return fmt.Errorf("preview: %w", err)
		}
		if ctx.Err() != nil {
			return nil
		}
	}
	return nil
}
