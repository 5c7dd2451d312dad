package sink_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/proofgen/pkg/diagram/archetype"
	"github.com/matzehuels/proofgen/pkg/diagram/layout"
	"github.com/matzehuels/proofgen/pkg/diagram/sink"
)

func ExampleRenderSVG() {
	tpl := archetype.Lookup("Workflow")
	l := layout.Build(tpl, layout.DefaultWidth, layout.DefaultHeight,
		layout.WithAccent("rgba(87,242,135,0.85)"),
		layout.WithProblem("Invoices sit in inboxes"),
	)

	svg := string(sink.RenderSVG(l))

	fmt.Println("Starts with prolog:", strings.HasPrefix(svg, "<?xml"))
	fmt.Println("Boxes:", strings.Count(svg, `height="120"`))
	fmt.Println("Arrows:", strings.Count(svg, `stroke-width="3"`))
	// Output:
	// Starts with prolog: true
	// Boxes: 5
	// Arrows: 5
}

func ExampleRenderSVG_inline() {
	l := layout.Build(archetype.Lookup(""), 0, 0)
	svg := string(sink.RenderSVG(l, sink.WithoutProlog()))

	fmt.Println(svg[:4])
	// Output:
	// <svg
}
