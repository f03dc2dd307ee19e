// Package htmltomarkdown imports HTML pages as markdown using
// JohannesKaufmann/html-to-markdown. A CSS selector can narrow the page to
// the element holding the content, such as a saved conversation transcript.
package htmltomarkdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/docconv"
	"golang.org/x/net/html"
)

var _ docconv.Importer = (*Importer)(nil)

// Importer converts HTML to markdown.
type Importer struct {
	conv *converter.Converter
	sel  cascadia.Selector
}

// NewImporter returns an Importer. A non-empty selector restricts the
// conversion to the first element it matches.
func NewImporter(selector string) (*Importer, error) {
	imp := &Importer{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
	if selector != "" {
		sel, err := cascadia.Compile(selector)
		if err != nil {
			return nil, fmt.Errorf("compiling selector %q: %w", selector, err)
		}
		imp.sel = sel
	}
	return imp, nil
}

// Import transforms HTML content into markdown.
func (i *Importer) Import(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", fmt.Errorf("import: %w", docconv.ErrEmptyInput)
	}

	if i.sel != nil {
		selected, err := i.selectContent(src)
		if err != nil {
			return "", err
		}
		src = selected
	}

	md, err := i.conv.ConvertString(src)
	if err != nil {
		return "", fmt.Errorf("converting html: %w", err)
	}
	return trimCodeBlockWhitespace(md), nil
}

// selectContent returns the outer HTML of the first node matching the
// selector.
func (i *Importer) selectContent(src string) (string, error) {
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}
	node := i.sel.MatchFirst(root)
	if node == nil {
		return "", fmt.Errorf("import: %w", docconv.ErrNoMatch)
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, node); err != nil {
		return "", fmt.Errorf("rendering selection: %w", err)
	}
	return buf.String(), nil
}

// trimCodeBlockWhitespace removes blank lines just inside code fences, left
// over from whitespace between tags. Blank lines between a fence and the
// surrounding blocks, and blank lines in the middle of code, are kept.
func trimCodeBlockWhitespace(md string) string {
	lines := strings.Split(md, "\n")
	out := make([]string, 0, len(lines))
	var (
		fence   string   // opening backtick run; empty outside code
		leading bool     // no content line seen since the opening fence
		held    []string // blank lines inside code awaiting the next content line
	)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case fence == "" && strings.HasPrefix(trimmed, "```"):
			fence = trimmed[:len(trimmed)-len(strings.TrimLeft(trimmed, "`"))]
			leading = true
			out = append(out, line)
		case fence != "" && isClosingFence(trimmed, fence):
			fence, held = "", held[:0]
			out = append(out, line)
		case fence != "" && trimmed == "":
			if !leading {
				held = append(held, line)
			}
		case fence != "":
			leading = false
			out = append(out, held...)
			held = held[:0]
			out = append(out, line)
		default:
			out = append(out, line)
		}
	}
	out = append(out, held...)
	return strings.Join(out, "\n")
}

func isClosingFence(trimmed, fence string) bool {
	return len(trimmed) >= len(fence) && strings.Trim(trimmed, "`") == ""
}
