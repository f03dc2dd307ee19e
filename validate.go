package docconv

import "fmt"

// Validate checks the structural invariants of a document. Documents built
// by the parsers always pass; documents decoded from external sources may
// not.
func Validate(doc Document) error {
	var (
		prevList *ListItem
		inTable  bool
	)
	for i, b := range doc.Blocks {
		if err := validateBlock(b); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
		switch b := b.(type) {
		case ListItem:
			switch {
			case b.Index < 1:
				return fmt.Errorf("block %d: list index must be positive, got %d: %w", i, b.Index, ErrValidation)
			case b.Index > 1 && (prevList == nil || prevList.Ordered != b.Ordered || prevList.Index != b.Index-1):
				return fmt.Errorf("block %d: list index %d does not continue a list: %w", i, b.Index, ErrValidation)
			}
			prevList = &b
			inTable = false
		case TableRow:
			if !inTable && !b.IsHeader {
				return fmt.Errorf("block %d: table must start with a header row: %w", i, ErrValidation)
			}
			inTable = true
			prevList = nil
		default:
			prevList = nil
			inTable = false
		}
	}
	return nil
}

func validateBlock(b Block) error {
	switch b := b.(type) {
	case Heading:
		if b.Level < 1 || b.Level > 6 {
			return fmt.Errorf("heading level must be in [1, 6], got %d: %w", b.Level, ErrValidation)
		}
	case TableRow:
		if len(b.Cells) == 0 {
			return fmt.Errorf("table row has no cells: %w", ErrValidation)
		}
	case Paragraph:
		if len(b.Runs) == 0 {
			return fmt.Errorf("paragraph has no runs: %w", ErrValidation)
		}
	case CodeBlock, ListItem, Rule:
	case nil:
		return fmt.Errorf("nil block: %w", ErrValidation)
	default:
		return fmt.Errorf("unknown block type %T: %w", b, ErrValidation)
	}
	return nil
}
