// Package render converts SVG documents into other output formats.
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG using the external rsvg-convert tool
// (from librsvg). Both the grid diagram sink and the Graphviz node-link
// renderer hand their SVG to this package.
//
//	svg := sink.RenderSVG(l)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [Available] reports whether the converter is installed, so callers can
// reject png/pdf requests up front instead of failing mid-pipeline.
package render
