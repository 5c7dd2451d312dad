// Package sink turns a computed [layout.Layout] into output bytes.
//
// # SVG Output
//
// [RenderSVG] writes a self-contained dark-themed diagram: gradient and
// grid background, title and "Problem:" subtitle, one rounded box per node
// with an accent stripe, straight arrows with triangular heads, and a
// footer. Every free-text string is XML-escaped, so user input can never
// inject markup.
//
//	svg := sink.RenderSVG(l)
//	inline := sink.RenderSVG(l, sink.WithoutProlog())
//
// Rendering is pure: identical layouts yield identical bytes.
//
// # Other Formats
//
//   - [RenderJSON]: the layout geometry as indented JSON
//
// PNG and PDF are produced from the SVG by the render package.
package sink
