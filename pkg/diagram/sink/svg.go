package sink

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/matzehuels/proofgen/pkg/diagram/layout"
	"github.com/matzehuels/proofgen/pkg/diagram/styles"
)

const (
	boxRadius  = 18.0
	boxPadX    = 18.0
	stripeH    = 6.0
	labelDY    = 38.0
	linesDY    = 66.0
	lineHeight = 20.0
)

// AriaLabel is the accessible name of the rendered image.
const AriaLabel = "System architecture visualization"

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	prolog    bool
	ariaLabel string
}

// WithoutProlog omits the XML declaration, for inlining into HTML.
func WithoutProlog() SVGOption { return func(r *svgRenderer) { r.prolog = false } }

// WithAriaLabel overrides the accessible name of the image.
func WithAriaLabel(label string) SVGOption { return func(r *svgRenderer) { r.ariaLabel = label } }

// RenderSVG renders a positioned diagram. It is pure and never fails:
// equal layouts always produce identical bytes.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{prolog: true, ariaLabel: AriaLabel}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := num(l.Width), num(l.Height)

	var buf bytes.Buffer
	if r.prolog {
		buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	}
	fmt.Fprintf(&buf, `<svg width="%s" height="%s" viewBox="0 0 %s %s" xmlns="http://www.w3.org/2000/svg" role="img" aria-label="%s">`+"\n",
		w, h, w, h, styles.EscapeXML(r.ariaLabel))

	renderDefs(&buf)
	fmt.Fprintf(&buf, `  <rect width="%s" height="%s" fill="url(#bg)"/>`+"\n", w, h)
	fmt.Fprintf(&buf, `  <rect width="%s" height="%s" fill="url(#grid)" opacity="0.55"/>`+"\n", w, h)

	renderText(&buf, 64, 78, "rgba(255,255,255,0.92)", 34, true, l.Title)
	if l.Subtitle != "" {
		renderText(&buf, 64, 112, "rgba(255,255,255,0.62)", 16, false, l.Subtitle)
	}

	buf.WriteString(`  <g filter="url(#softShadow)">` + "\n")
	for _, b := range l.Boxes {
		renderBox(&buf, b)
	}
	buf.WriteString("  </g>\n")

	for _, a := range l.Arrows {
		renderArrow(&buf, a)
	}

	renderText(&buf, 64, 626, "rgba(255,255,255,0.55)", 13, false, l.Footer)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <linearGradient id="bg" x1="0" y1="0" x2="0" y2="1">
      <stop offset="0%" stop-color="#070b14"/>
      <stop offset="100%" stop-color="#0b1220"/>
    </linearGradient>
    <pattern id="grid" width="48" height="48" patternUnits="userSpaceOnUse">
      <path d="M48 0H0V48" fill="none" stroke="rgba(255,255,255,0.06)" stroke-width="1"/>
    </pattern>
    <filter id="softShadow" x="-20%" y="-20%" width="140%" height="140%">
      <feDropShadow dx="0" dy="12" stdDeviation="14" flood-color="rgba(0,0,0,0.55)"/>
    </filter>
  </defs>
`)
}

func renderText(buf *bytes.Buffer, x, y float64, fill string, size int, bold bool, s string) {
	weight := ""
	if bold {
		weight = ` font-weight="800"`
	}
	fmt.Fprintf(buf, `  <text x="%s" y="%s" fill="%s" font-family="%s" font-size="%d"%s>%s</text>`+"\n",
		num(x), num(y), fill, styles.FontFamily, size, weight, styles.EscapeXML(s))
}

func renderBox(buf *bytes.Buffer, b layout.Box) {
	x, y := num(b.X), num(b.Y)
	buf.WriteString("    <g>\n")
	fmt.Fprintf(buf, `      <rect x="%s" y="%s" rx="%s" ry="%s" width="%s" height="%s" fill="rgba(255,255,255,0.04)" stroke="rgba(255,255,255,0.10)"/>`+"\n",
		x, y, num(boxRadius), num(boxRadius), num(b.W), num(b.H))
	fmt.Fprintf(buf, `      <rect x="%s" y="%s" rx="%s" ry="%s" width="%s" height="%s" fill="%s" opacity="0.95"/>`+"\n",
		x, y, num(boxRadius), num(boxRadius), num(b.W), num(stripeH), styles.EscapeXML(b.Accent))
	fmt.Fprintf(buf, `      <text x="%s" y="%s" fill="rgba(255,255,255,0.92)" font-family="%s" font-size="16" font-weight="800">%s</text>`+"\n",
		num(b.X+boxPadX), num(b.Y+labelDY), styles.FontFamily, styles.EscapeXML(b.Label))
	for i, line := range b.Lines {
		fmt.Fprintf(buf, `      <text x="%s" y="%s" fill="rgba(255,255,255,0.68)" font-family="%s" font-size="14">%s</text>`+"\n",
			num(b.X+boxPadX), num(b.Y+linesDY+float64(i)*lineHeight), styles.FontFamily, styles.EscapeXML(line))
	}
	buf.WriteString("    </g>\n")
}

func renderArrow(buf *bytes.Buffer, a layout.Arrow) {
	color := styles.EscapeXML(a.Color)
	buf.WriteString("  <g>\n")
	fmt.Fprintf(buf, `    <path d="M %s %s L %s %s" stroke="%s" stroke-width="3" fill="none" opacity="0.85"/>`+"\n",
		num(a.X1), num(a.Y1), num(a.X2), num(a.Y2), color)
	fmt.Fprintf(buf, `    <path d="M %s %s l -10 -6 l 2 12 z" fill="%s" opacity="0.85"/>`+"\n",
		num(a.X2), num(a.Y2), color)
	buf.WriteString("  </g>\n")
}

// num formats a coordinate without trailing zeros: 70, 481, 12.5.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
