package ansi_test

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/docconv"
	"github.com/fwojciec/docconv/ansi"
	"github.com/fwojciec/docconv/markdown"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

var csi = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return csi.ReplaceAllString(s, "")
}

func TestMain(m *testing.M) {
	// Force ANSI color output so styled elements produce visible escape
	// codes.
	lipgloss.SetColorProfile(termenv.ANSI)
	os.Exit(m.Run())
}

// render returns the visible text of the rendered markdown.
func render(src string, width int) string {
	return stripANSI(renderStyled(src, width))
}

func renderStyled(src string, width int) string {
	return ansi.Render(markdown.Parse(src), width, docconv.DefaultTheme())
}

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("empty input returns empty string", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", render("", 80))
	})

	t.Run("plain paragraph", func(t *testing.T) {
		t.Parallel()
		assert.Contains(t, render("hello world", 80), "hello world")
	})

	t.Run("heading differs from paragraph", func(t *testing.T) {
		t.Parallel()
		heading := renderStyled("# Title", 80)
		paragraph := renderStyled("Title", 80)
		assert.Contains(t, stripANSI(heading), "Title")
		assert.NotEqual(t, heading, paragraph)
	})

	t.Run("styled runs emit escape codes", func(t *testing.T) {
		t.Parallel()
		styled := renderStyled("**bold**", 80)
		assert.NotEqual(t, stripANSI(styled), styled)
	})

	t.Run("negative theme index disables color", func(t *testing.T) {
		t.Parallel()
		theme := docconv.Theme{Heading: -1, Code: -1, Muted: -1, Accent: -1}
		out := ansi.Render(markdown.Parse("`x`"), 80, theme)
		assert.Equal(t, "x", strings.TrimSpace(stripANSI(out)))
	})

	t.Run("inline markers are removed", func(t *testing.T) {
		t.Parallel()
		result := render("**bold** *italic* `code`", 80)
		assert.Contains(t, result, "bold")
		assert.Contains(t, result, "italic")
		assert.Contains(t, result, "code")
		assert.NotContains(t, result, "**")
		assert.NotContains(t, result, "`")
	})

	t.Run("code block preserves content without reflow", func(t *testing.T) {
		t.Parallel()
		result := render("```go\nfmt.Println(\"hello world\")\n```", 20)
		assert.Contains(t, result, `fmt.Println("hello world")`)
		assert.Contains(t, result, "go")
		assert.Contains(t, result, "│")
	})

	t.Run("lists show markers", func(t *testing.T) {
		t.Parallel()
		result := render("- one\n- two\n\n1. first\n2. second", 80)
		assert.Contains(t, result, "- one")
		assert.Contains(t, result, "- two")
		assert.Contains(t, result, "1. first")
		assert.Contains(t, result, "2. second")
	})

	t.Run("paragraph wraps to width", func(t *testing.T) {
		t.Parallel()
		long := "word1 word2 word3 word4 word5 word6 word7 word8 word9 word10 word11 word12"
		result := render(long, 30)
		assert.Contains(t, result, "word1")
		assert.Contains(t, result, "word12")
		assert.Greater(t, len(strings.Split(result, "\n")), 1)
	})

	t.Run("table columns", func(t *testing.T) {
		t.Parallel()
		result := render("| name | qty |\n|---|---|\n| apple | 3 |", 80)
		assert.Contains(t, result, "name")
		assert.Contains(t, result, "apple")
		assert.Contains(t, result, "┼")
		assert.NotContains(t, result, "---")
	})

	t.Run("narrow tables truncate cells", func(t *testing.T) {
		t.Parallel()
		result := render("| "+strings.Repeat("x", 50)+" | y |", 20)
		assert.Contains(t, result, "…")
	})

	t.Run("rule spans width", func(t *testing.T) {
		t.Parallel()
		assert.Contains(t, render("---", 10), strings.Repeat("─", 10))
	})

	t.Run("zero width uses default", func(t *testing.T) {
		t.Parallel()
		assert.Contains(t, render("text", 0), "text")
	})
}
