package styles

import "strings"

// Font stack used by every text element of the diagram.
const FontFamily = "system-ui, -apple-system, Segoe UI, Roboto"

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&apos;",
	`"`, "&quot;",
)

// EscapeXML escapes s for use as SVG text or attribute content. Characters
// outside the XML 1.0 Char production are dropped.
func EscapeXML(s string) string {
	return xmlEscaper.Replace(strings.Map(xmlChar, s))
}

func xmlChar(r rune) rune {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return r
	case r >= 0x20 && r <= 0xD7FF,
		r >= 0xE000 && r <= 0xFFFD,
		r >= 0x10000 && r <= 0x10FFFF:
		return r
	}
	return -1
}
