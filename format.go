package docconv

import (
	"fmt"
	"strings"
)

// Format names an output representation.
type Format string

const (
	FormatText Format = "txt"
	FormatHTML Format = "html"
	FormatDOCX Format = "docx"
	FormatPDF  Format = "pdf"
	FormatPNG  Format = "png"
	FormatJSON Format = "json"
	FormatANSI Format = "ansi"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatHTML, FormatDOCX, FormatPDF, FormatPNG, FormatJSON, FormatANSI}

// ParseFormat resolves a format name or common alias, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "txt", "text", "plain":
		return FormatText, nil
	case "html", "htm":
		return FormatHTML, nil
	case "docx", "word":
		return FormatDOCX, nil
	case "pdf":
		return FormatPDF, nil
	case "png", "image":
		return FormatPNG, nil
	case "json":
		return FormatJSON, nil
	case "ansi", "term", "terminal":
		return FormatANSI, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// Ext returns the file extension for the format, without the dot. Terminal
// output is saved as plain text.
func (f Format) Ext() string {
	if f == FormatANSI {
		return "txt"
	}
	return string(f)
}

// Binary reports whether the format produces non-text bytes.
func (f Format) Binary() bool {
	switch f {
	case FormatDOCX, FormatPDF, FormatPNG:
		return true
	}
	return false
}
