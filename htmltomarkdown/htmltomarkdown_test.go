package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/docconv"
	"github.com/fwojciec/docconv/htmltomarkdown"
	"github.com/fwojciec/docconv/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImporter_Import(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and emphasis", func(t *testing.T) {
		t.Parallel()
		imp, err := htmltomarkdown.NewImporter("")
		require.NoError(t, err)
		md, err := imp.Import("<h1>Title</h1><p>Hello <strong>world</strong></p>")
		require.NoError(t, err)
		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "Hello **world**")
	})

	t.Run("output feeds the parser", func(t *testing.T) {
		t.Parallel()
		imp, err := htmltomarkdown.NewImporter("")
		require.NoError(t, err)
		md, err := imp.Import("<h2>Steps</h2><ol><li>one</li><li>two</li></ol>")
		require.NoError(t, err)
		doc := markdown.Parse(md)
		require.NoError(t, docconv.Validate(doc))
		require.Len(t, doc.Blocks, 3)
		assert.Equal(t, docconv.Heading{Level: 2, Text: "Steps", Runs: []docconv.InlineRun{{Text: "Steps"}}}, doc.Blocks[0])
		item, ok := doc.Blocks[2].(docconv.ListItem)
		require.True(t, ok)
		assert.True(t, item.Ordered)
		assert.Equal(t, 2, item.Index)
		assert.Equal(t, "two", item.Text)
	})

	t.Run("selector narrows the page", func(t *testing.T) {
		t.Parallel()
		imp, err := htmltomarkdown.NewImporter("article")
		require.NoError(t, err)
		md, err := imp.Import("<nav>menu</nav><article><p>body</p></article><footer>legal</footer>")
		require.NoError(t, err)
		assert.Contains(t, md, "body")
		assert.NotContains(t, md, "menu")
		assert.NotContains(t, md, "legal")
	})

	t.Run("selector without match", func(t *testing.T) {
		t.Parallel()
		imp, err := htmltomarkdown.NewImporter(".transcript")
		require.NoError(t, err)
		_, err = imp.Import("<p>nothing here</p>")
		assert.ErrorIs(t, err, docconv.ErrNoMatch)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		imp, err := htmltomarkdown.NewImporter("")
		require.NoError(t, err)
		_, err = imp.Import(" \n ")
		assert.ErrorIs(t, err, docconv.ErrEmptyInput)
	})

	t.Run("invalid selector", func(t *testing.T) {
		t.Parallel()
		_, err := htmltomarkdown.NewImporter("[")
		assert.Error(t, err)
	})

	t.Run("code fences lose padding lines", func(t *testing.T) {
		t.Parallel()
		imp, err := htmltomarkdown.NewImporter("")
		require.NoError(t, err)
		md, err := imp.Import("<pre><code class=\"language-go\">\n\nx := 1\n\n</code></pre>")
		require.NoError(t, err)
		assert.Contains(t, md, "x := 1")
		assert.NotContains(t, md, "```go\n\n")
		assert.NotContains(t, md, "\n\n```")
	})

	t.Run("blank lines around code blocks survive", func(t *testing.T) {
		t.Parallel()
		imp, err := htmltomarkdown.NewImporter("")
		require.NoError(t, err)
		md, err := imp.Import("<p>para</p><pre><code>x</code></pre><p>after</p>")
		require.NoError(t, err)
		assert.Contains(t, md, "para\n\n```")
		assert.Contains(t, md, "```\n\nafter")
	})
}

func TestTrimCodeBlockWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "padding inside fences is removed",
			in:   "```go\n\n\nx := 1\n\n```",
			want: "```go\nx := 1\n```",
		},
		{
			name: "blank lines outside fences are kept",
			in:   "para\n\n```go\n\nx\n\n```\n\nafter",
			want: "para\n\n```go\nx\n```\n\nafter",
		},
		{
			name: "blank lines between code lines are kept",
			in:   "```\na\n\nb\n```",
			want: "```\na\n\nb\n```",
		},
		{
			name: "adjacent code blocks stay separated",
			in:   "```\na\n```\n\n```\nb\n```",
			want: "```\na\n```\n\n```\nb\n```",
		},
		{
			name: "longer fences close only on a long enough run",
			in:   "````md\n```\n\n````",
			want: "````md\n```\n````",
		},
		{
			name: "no fences",
			in:   "a\n\n\nb",
			want: "a\n\n\nb",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, htmltomarkdown.TrimCodeBlockWhitespace(tt.in))
		})
	}
}
