package docconv_test

import (
	"testing"

	"github.com/fwojciec/docconv"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func(blocks ...docconv.Block) docconv.Document {
		return docconv.Document{Blocks: blocks}
	}

	t.Run("empty document is valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, docconv.Validate(docconv.Document{}))
	})

	t.Run("well formed document", func(t *testing.T) {
		t.Parallel()
		doc := valid(
			docconv.Heading{Level: 2, Text: "x"},
			docconv.ListItem{Text: "a", Index: 1},
			docconv.ListItem{Text: "b", Index: 2},
			docconv.TableRow{Cells: []string{"h"}, IsHeader: true},
			docconv.TableRow{Cells: []string{"v"}},
			docconv.Paragraph{Runs: []docconv.InlineRun{{Text: "p"}}},
			docconv.CodeBlock{Content: "c\n"},
			docconv.Rule{},
		)
		assert.NoError(t, docconv.Validate(doc))
	})

	t.Run("heading level out of range", func(t *testing.T) {
		t.Parallel()
		err := docconv.Validate(valid(docconv.Heading{Level: 7}))
		assert.ErrorIs(t, err, docconv.ErrValidation)
		assert.Contains(t, err.Error(), "block 0")
	})

	t.Run("list index must be positive", func(t *testing.T) {
		t.Parallel()
		err := docconv.Validate(valid(docconv.ListItem{Text: "a"}))
		assert.ErrorIs(t, err, docconv.ErrValidation)
	})

	t.Run("list index must continue previous item", func(t *testing.T) {
		t.Parallel()
		err := docconv.Validate(valid(
			docconv.ListItem{Text: "a", Index: 1},
			docconv.ListItem{Text: "b", Index: 3},
		))
		assert.ErrorIs(t, err, docconv.ErrValidation)

		err = docconv.Validate(valid(
			docconv.ListItem{Text: "a", Index: 1},
			docconv.ListItem{Text: "b", Index: 2, Ordered: true},
		))
		assert.ErrorIs(t, err, docconv.ErrValidation)
	})

	t.Run("table must start with header", func(t *testing.T) {
		t.Parallel()
		err := docconv.Validate(valid(docconv.TableRow{Cells: []string{"a"}}))
		assert.ErrorIs(t, err, docconv.ErrValidation)
	})

	t.Run("table row needs cells", func(t *testing.T) {
		t.Parallel()
		err := docconv.Validate(valid(docconv.TableRow{IsHeader: true}))
		assert.ErrorIs(t, err, docconv.ErrValidation)
	})

	t.Run("paragraph needs runs", func(t *testing.T) {
		t.Parallel()
		err := docconv.Validate(valid(docconv.Paragraph{}))
		assert.ErrorIs(t, err, docconv.ErrValidation)
	})

	t.Run("nil block", func(t *testing.T) {
		t.Parallel()
		err := docconv.Validate(valid(nil))
		assert.ErrorIs(t, err, docconv.ErrValidation)
	})
}
