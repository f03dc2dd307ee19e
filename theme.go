package docconv

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so output
// matches any color scheme. A negative index means no color.
type Theme struct {
	Heading int // Headings
	Code    int // Inline code and code block text
	Muted   int // Gutters, rules, language labels, status bar
	Accent  int // List markers, table headers
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Heading: 5,
		Code:    3,
		Muted:   8,
		Accent:  4,
	}
}
