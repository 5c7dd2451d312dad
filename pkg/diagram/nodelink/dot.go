package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/proofgen/pkg/diagram/archetype"
	"github.com/matzehuels/proofgen/pkg/diagram/layout"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed appends each node's detail lines to its label.
	// When false, only the label is shown.
	Detailed bool
}

// ToDOT converts a template to Graphviz DOT. Nodes keep their grid rows:
// the first four share a rank, the bottom-row nodes share the next one.
// Arrows follow [layout.Links], so the graph matches the grid diagram.
func ToDOT(tpl archetype.Template, opts Options) string {
	topN := min(layout.TopRowMax, len(tpl.Nodes))
	total := min(len(tpl.Nodes), layout.TopRowMax+layout.BottomRowMax)

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  label=%s;\n", quoteDOT(tpl.Title))
	buf.WriteString("  labelloc=t;\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"#070b14\";\n")
	buf.WriteString("  fontcolor=white;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=\"#111827\", fontcolor=white, color=\"#ffffff33\", fontsize=16, margin=\"0.3,0.15\"];\n")
	buf.WriteString("  edge [color=\"#9ca3af\", penwidth=2];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	for i, n := range tpl.Nodes[:total] {
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeID(i), strings.Join(fmtAttrs(n, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	writeRank(&buf, 0, topN)
	writeRank(&buf, topN, total)

	buf.WriteString("\n")
	for _, ln := range layout.Links(tpl) {
		attrs := ""
		switch ln.Kind {
		case layout.LinkChain:
			attrs = " [constraint=false]"
		case layout.LinkEdge:
			attrs = " [style=dashed, constraint=false]"
		}
		fmt.Fprintf(&buf, "  %s -> %s%s;\n", nodeID(ln.From), nodeID(ln.To), attrs)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(i int) string { return "n" + strconv.Itoa(i) }

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// quoteDOT returns s as a DOT quoted string. Newlines become the \n line
// break escape; every other character is passed through.
func quoteDOT(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

func writeRank(buf *bytes.Buffer, from, to int) {
	if to-from < 2 {
		return
	}
	ids := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		ids = append(ids, nodeID(i))
	}
	fmt.Fprintf(buf, "  { rank=same; %s; }\n", strings.Join(ids, "; "))
}

func fmtAttrs(n archetype.NodeSpec, detailed bool) []string {
	label := n.Label
	if detailed && len(n.Lines) > 0 {
		label += "\n" + strings.Join(n.Lines, "\n")
	}
	attrs := []string{"label=" + quoteDOT(label)}
	// Graphviz understands hex colors only.
	if strings.HasPrefix(n.Accent, "#") {
		attrs = append(attrs, "color="+quoteDOT(n.Accent), "penwidth=2")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// The result can be rasterized with the render package like the grid diagram.
func RenderSVG(dot string) ([]byte, error) {
	return RenderSVGContext(context.Background(), dot)
}

// RenderSVGContext is [RenderSVG] with a caller-supplied context.
func RenderSVGContext(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with a
// unitless one so the SVG scales like the grid diagram.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
