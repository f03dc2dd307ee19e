package html

import (
	"html"
	"strings"

	"github.com/fwojciec/docconv"
)

// stylesheet is embedded in every standalone page. The @page and
// page-break rules shape PDF output when the page is printed.
const stylesheet = `body { font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; font-size: 11pt; line-height: 1.5; color: #1f2328; max-width: 48em; margin: 0 auto; padding: 1em; }
h1, h2, h3, h4, h5, h6 { line-height: 1.25; margin: 1.2em 0 0.5em; page-break-after: avoid; }
pre { background: #f5f5f5; padding: 0.75em 1em; border-radius: 4px; white-space: pre-wrap; word-wrap: break-word; page-break-inside: avoid; }
code { font-family: "Courier New", Courier, monospace; font-size: 10pt; }
p code, li code, td code, th code { background: #f5f5f5; padding: 0 0.2em; border-radius: 3px; }
table { border-collapse: collapse; margin: 1em 0; }
th, td { border: 1px solid #d0d7de; padding: 0.3em 0.7em; text-align: left; }
th { background: #f6f8fa; }
tr { page-break-inside: avoid; }
hr { border: 0; border-top: 1px solid #d0d7de; margin: 1.5em 0; }
@page { margin: 1.5cm; }`

// Page returns a complete HTML document for doc, suitable for saving,
// printing to PDF or rasterizing.
func Page(doc docconv.Document, title string) string {
	if title == "" {
		title = "Document"
	}
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</title>\n<style>\n")
	b.WriteString(stylesheet)
	b.WriteString("\n</style>\n</head>\n<body>\n")
	if body := Render(doc); body != "" {
		b.WriteString(body)
		b.WriteString("\n")
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
