// Package diagram renders the deterministic architecture diagram for a
// system type and a one-sentence problem statement.
//
// # Overview
//
// [Render] is the single entry point. It wires the subpackages together:
//
//  1. [archetype.Classify] picks a template from the system type
//  2. [styles.Accent] derives the accent color from the input pair
//  3. [layout.Build] places boxes and arrows on a 1200×675 grid
//  4. [sink.RenderSVG] writes escaped, self-contained SVG
//
// The same input always produces byte-identical SVG. No step performs I/O.
//
// # Usage
//
//	res, err := diagram.Render("Lead generation pipeline", "Reps lose track of inbound leads")
//	if errors.Is(err, errors.ErrCodeMissingProblem) {
//	    fmt.Println(errors.UserMessage(err)) // "Type one sentence first."
//	}
//	os.WriteFile("system-image.svg", res.SVG, 0o644)
package diagram
