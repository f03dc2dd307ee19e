package docconv

import "strings"

// FormatInline splits a line into formatted runs.
//
// The scanner keeps three toggles. "**" toggles bold and "*" toggles italic;
// a run of three or more asterisks is consumed as pairs of bold toggles
// followed by at most one italic toggle. A backtick toggles code, and while
// code is active asterisks are literal. Markers never appear in run text.
// Toggles are not validated against each other: a stray marker leaves the
// rest of the line in that state.
//
// FormatInline never fails and returns at least one run.
func FormatInline(line string) []InlineRun {
	var (
		runs                 []InlineRun
		buf                  strings.Builder
		bold, italic, isCode bool
	)
	flush := func() {
		if buf.Len() == 0 {
			return
		}
		runs = append(runs, InlineRun{
			Text:   buf.String(),
			Bold:   bold,
			Italic: italic,
			IsCode: isCode,
		})
		buf.Reset()
	}

	for i := 0; i < len(line); {
		c := line[i]
		switch {
		case c == '`':
			flush()
			isCode = !isCode
			i++
		case c == '*' && !isCode:
			n := 1
			for i+n < len(line) && line[i+n] == '*' {
				n++
			}
			flush()
			for k := 0; k < n/2; k++ {
				bold = !bold
			}
			if n%2 == 1 {
				italic = !italic
			}
			i += n
		default:
			buf.WriteByte(c)
			i++
		}
	}
	flush()

	if len(runs) == 0 {
		return []InlineRun{{}}
	}
	return runs
}
