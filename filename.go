package docconv

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	defaultFileStem  = "document"
	maxStemGraphemes = 80
)

// FileName derives a download file name from a document title. The stem is
// lowercased with diacritics folded, and every run of characters outside
// [a-z0-9] becomes a single underscore. Leading and trailing underscores are
// trimmed, so "  Q1 - Notes!" gives "q1_notes" rather than the one underscore
// per character "__q1___notes_".
func FileName(title, ext string) string {
	stem := slug(title)
	if stem == "" {
		stem = defaultFileStem
	}
	if ext == "" {
		return stem
	}
	return stem + "." + strings.TrimPrefix(ext, ".")
}

func slug(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, title)
	if err != nil {
		folded = title
	}
	folded = strings.ToLower(truncateGraphemes(folded, maxStemGraphemes))

	var b strings.Builder
	underscore := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			underscore = false
			continue
		}
		if !underscore {
			b.WriteByte('_')
			underscore = true
		}
	}
	return strings.Trim(b.String(), "_")
}

func truncateGraphemes(s string, n int) string {
	if uniseg.GraphemeClusterCount(s) <= n {
		return s
	}
	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for i := 0; i < n && g.Next(); i++ {
		b.WriteString(g.Str())
	}
	return b.String()
}
