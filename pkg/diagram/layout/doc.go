// Package layout places template nodes on a fixed grid and connects them
// with arrows.
//
// # Grid
//
// Up to four nodes form the top row, left to right, starting at [MarginX]
// and separated by [ColGap]. Up to three further nodes form the bottom row,
// [RowGap] below the top row and centered under the span of a full top row:
//
//	startX = MarginX + max(0, (spanW - bottomSpanW) / 2)
//
// # Arrows
//
// Arrows are emitted in a fixed order:
//
//  1. A chain across the top row, right-center to left-center.
//  2. When a bottom row exists, one vertical link from the bottom-center of
//     box [archetype.Template.BottomFrom] to the top-center of the first
//     bottom box. An out-of-range BottomFrom falls back to box 1.
//  3. One arrow per template edge, right-center to left-center. Edges whose
//     indices fall outside the placed boxes are skipped.
//
// Horizontal arrows attach [AnchorY] below the box top.
//
// # Usage
//
//	tpl := archetype.Lookup("DAO treasury")
//	l := layout.Build(tpl, layout.DefaultWidth, layout.DefaultHeight,
//	    layout.WithAccent(styles.Accent(systemType, problem)),
//	    layout.WithProblem(problem),
//	)
//
// A [Layout] is plain data; render it with the sink package.
package layout
