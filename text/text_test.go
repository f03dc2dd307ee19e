package text_test

import (
	"testing"

	"github.com/fwojciec/docconv"
	"github.com/fwojciec/docconv/markdown"
	"github.com/fwojciec/docconv/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", text.Render(docconv.Document{}))
	})

	t.Run("strips heading and emphasis markers", func(t *testing.T) {
		t.Parallel()
		got := text.Normalize("# The **Title**\n\nSome *soft* and `code` words.")
		assert.Equal(t, "The Title\n\nSome soft and code words.", got)
	})

	t.Run("lists", func(t *testing.T) {
		t.Parallel()
		got := text.Normalize("* one\n* two\n\n1. first\n2. second")
		assert.Equal(t, "• one\n• two\n\nfirst\nsecond", got)
	})

	t.Run("code block content is verbatim", func(t *testing.T) {
		t.Parallel()
		got := text.Normalize("```python\ndef f():\n\n\n\n    return **x**\n```")
		assert.Equal(t, "def f():\n\n\n\n    return **x**", got)
	})

	t.Run("rules are dropped", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "above\n\nbelow", text.Normalize("above\n\n---\n\nbelow"))
	})

	t.Run("tables align columns and skip delimiter rows", func(t *testing.T) {
		t.Parallel()
		got := text.Normalize("| Name | Qty |\n|------|-----|\n| **apple** | 3 |\n| kiwi | 12 |")
		assert.Equal(t, "Name   Qty\napple  3\nkiwi   12", got)
	})

	t.Run("wide characters align", func(t *testing.T) {
		t.Parallel()
		got := text.Normalize("| 日本 | x |\n| a | y |")
		assert.Equal(t, "日本  x\na     y", got)
	})
}

func TestRender_StableUnderRenormalization(t *testing.T) {
	t.Parallel()

	sources := []string{
		"# Title\n\nBody text with **bold**.\n\n* a\n* b\n\n1. x\n2. y",
		"| a | b |\n|---|---|\n| c | d |\n\nafter",
		"para one\nstill one\n\n---\n\n## Sub\n\n- item *one*\n- item `two`",
		"```\nfn main() {}\n```\n\ntrailing",
		"| `a \\| b` | c |\n|---|---|\n| 1 | 2 |",
		"# `---`\n\nParagraph with `- not a list`\n\n**1.** bold number",
		"- `#` hash\n- plain",
	}
	for _, src := range sources {
		first := markdown.Parse(text.Normalize(src))
		second := markdown.Parse(text.Render(first))
		assert.LessOrEqual(t, second.Len(), first.Len(), src)
		assert.LessOrEqual(t, first.Len(), markdown.Parse(src).Len(), src)
	}
}

func TestRender_CodeBlockContentReparsesAsMarkdown(t *testing.T) {
	t.Parallel()

	src := "```\na\n\n# b\n```"
	require.Len(t, markdown.Parse(src).Blocks, 1)

	got := text.Normalize(src)
	assert.Equal(t, "a\n\n# b", got)
	assert.Equal(t, []docconv.Block{
		docconv.Paragraph{Runs: []docconv.InlineRun{{Text: "a"}}},
		docconv.Heading{Level: 1, Text: "b", Runs: []docconv.InlineRun{{Text: "b"}}},
	}, markdown.Parse(got).Blocks)
}
