// Package styles holds the visual constants of the architecture diagram:
// the accent palette and its seed hash, the font stack, and text escaping.
//
// The accent is a pure function of the input pair:
//
//	accent := styles.Accent("Lead generation pipeline", "Reps lose track of leads")
//
// Identical inputs always produce the identical accent, which is what makes
// rendered diagrams byte-for-byte reproducible.
package styles
