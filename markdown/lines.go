package markdown

import "strings"

const maxHeadingLevel = 6

// heading matches "#{1,} text". Runs longer than six hashes are capped at
// level 6.
func heading(line string) (level int, text string, ok bool) {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n == len(line) || !isSpace(line[n]) {
		return 0, "", false
	}
	level = min(n, maxHeadingLevel)
	text = strings.TrimSpace(strings.TrimLeft(line[n:], "# \t"))
	return level, text, true
}

func isFence(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "```")
}

func fenceLanguage(line string) string {
	rest := strings.TrimPrefix(strings.TrimSpace(line), "```")
	rest = strings.TrimLeft(rest, "`")
	if i := strings.IndexAny(rest, " \t{"); i >= 0 {
		rest = rest[:i]
	}
	return strings.TrimSpace(rest)
}

// tableCells splits a line on unescaped pipes. Empty cells produced by a
// leading or trailing boundary pipe are dropped; interior cells are trimmed
// and "\|" is unescaped.
func tableCells(line string) ([]string, bool) {
	var (
		cells []string
		cell  strings.Builder
		pipes int
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '\\' && i+1 < len(line) && line[i+1] == '|' {
			cell.WriteByte('|')
			i++
			continue
		}
		if c == '|' {
			pipes++
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
			continue
		}
		cell.WriteByte(c)
	}
	if pipes == 0 {
		return nil, false
	}
	cells = append(cells, strings.TrimSpace(cell.String()))

	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "|") && len(cells) > 0 && cells[0] == "" {
		cells = cells[1:]
	}
	if strings.HasSuffix(trimmed, "|") && !strings.HasSuffix(trimmed, `\|`) && len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	if len(cells) == 0 {
		cells = []string{""}
	}
	return cells, true
}

// listItem matches "* x", "- x", "+ x" and "12. x", allowing leading
// indentation.
func listItem(line string) (ordered bool, text string, ok bool) {
	s := strings.TrimLeft(line, " \t")
	if len(s) >= 2 && (s[0] == '*' || s[0] == '-' || s[0] == '+') && isSpace(s[1]) {
		return false, strings.TrimSpace(s[2:]), true
	}
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n > 0 && n+1 < len(s) && s[n] == '.' && isSpace(s[n+1]) {
		return true, strings.TrimSpace(s[n+2:]), true
	}
	return false, "", false
}

func isRule(line string) bool {
	s := strings.TrimSpace(line)
	return len(s) >= 3 && strings.Trim(s, "-") == ""
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}
