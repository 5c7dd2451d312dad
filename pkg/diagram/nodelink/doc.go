// Package nodelink renders a diagram template as a Graphviz node-link graph.
//
// # Overview
//
// The grid diagram is the primary output. This package offers the same
// template as a conventional directed graph laid out by Graphviz, which is
// handy when the diagram is pasted into tools that speak DOT.
//
// # Usage
//
//	tpl := archetype.Lookup("custody")
//	dot := nodelink.ToDOT(tpl, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(dot)
//
// Chain arrows and template edges are added with constraint=false so that
// only the bottom link affects ranking; template edges are dashed.
//
// Graphviz runs in-process through go-graphviz (WebAssembly), so no system
// installation is needed for SVG. PNG output additionally needs rsvg-convert.
package nodelink
