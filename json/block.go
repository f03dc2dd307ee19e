package json

import (
	"fmt"

	"github.com/fwojciec/docconv"
)

// blockDTO is the JSON representation of a Block with a type discriminator.
type blockDTO struct {
	Type     string   `json:"type"`
	Level    *int     `json:"level,omitempty"`
	Text     *string  `json:"text,omitempty"`
	Runs     []runDTO `json:"runs,omitempty"`
	Language *string  `json:"language,omitempty"`
	Content  *string  `json:"content,omitempty"`
	Ordered  *bool    `json:"ordered,omitempty"`
	Index    *int     `json:"index,omitempty"`
	Cells    []string `json:"cells,omitempty"`
	Header   *bool    `json:"header,omitempty"`
}

// runDTO is the JSON representation of an InlineRun. Unset flags are
// omitted.
type runDTO struct {
	Text   string `json:"text"`
	Bold   bool   `json:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty"`
	Code   bool   `json:"code,omitempty"`
}

func marshalBlock(b docconv.Block) (blockDTO, error) {
	switch v := b.(type) {
	case docconv.Heading:
		return blockDTO{Type: "heading", Level: &v.Level, Text: &v.Text, Runs: marshalRuns(v.Runs)}, nil
	case docconv.CodeBlock:
		return blockDTO{Type: "code", Language: &v.Language, Content: &v.Content}, nil
	case docconv.ListItem:
		return blockDTO{Type: "list_item", Text: &v.Text, Runs: marshalRuns(v.Runs), Ordered: &v.Ordered, Index: &v.Index}, nil
	case docconv.TableRow:
		return blockDTO{Type: "table_row", Cells: v.Cells, Header: &v.IsHeader}, nil
	case docconv.Paragraph:
		return blockDTO{Type: "paragraph", Runs: marshalRuns(v.Runs)}, nil
	case docconv.Rule:
		return blockDTO{Type: "rule"}, nil
	default:
		return blockDTO{}, fmt.Errorf("unknown block type: %T", b)
	}
}

func unmarshalBlock(dto blockDTO) (docconv.Block, error) {
	switch dto.Type {
	case "heading":
		var level int
		if dto.Level != nil {
			level = *dto.Level
		}
		text := deref(dto.Text)
		return docconv.Heading{Level: level, Text: text, Runs: runsOrFormat(dto.Runs, text)}, nil
	case "code":
		return docconv.CodeBlock{Language: deref(dto.Language), Content: deref(dto.Content)}, nil
	case "list_item":
		text := deref(dto.Text)
		item := docconv.ListItem{Text: text, Runs: runsOrFormat(dto.Runs, text), Index: 1}
		if dto.Ordered != nil {
			item.Ordered = *dto.Ordered
		}
		if dto.Index != nil {
			item.Index = *dto.Index
		}
		return item, nil
	case "table_row":
		row := docconv.TableRow{Cells: dto.Cells}
		if dto.Header != nil {
			row.IsHeader = *dto.Header
		}
		return row, nil
	case "paragraph":
		return docconv.Paragraph{Runs: unmarshalRuns(dto.Runs)}, nil
	case "rule":
		return docconv.Rule{}, nil
	default:
		return nil, fmt.Errorf("unknown block type: %q", dto.Type)
	}
}

func marshalRuns(runs []docconv.InlineRun) []runDTO {
	if len(runs) == 0 {
		return nil
	}
	out := make([]runDTO, len(runs))
	for i, r := range runs {
		out[i] = runDTO{Text: r.Text, Bold: r.Bold, Italic: r.Italic, Code: r.IsCode}
	}
	return out
}

func unmarshalRuns(dtos []runDTO) []docconv.InlineRun {
	if len(dtos) == 0 {
		return nil
	}
	out := make([]docconv.InlineRun, len(dtos))
	for i, d := range dtos {
		out[i] = docconv.InlineRun{Text: d.Text, Bold: d.Bold, Italic: d.Italic, IsCode: d.Code}
	}
	return out
}

// runsOrFormat decodes runs, deriving them from text when the document was
// written without them.
func runsOrFormat(dtos []runDTO, text string) []docconv.InlineRun {
	if len(dtos) == 0 {
		return docconv.FormatInline(text)
	}
	return unmarshalRuns(dtos)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
