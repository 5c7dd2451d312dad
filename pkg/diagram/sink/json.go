package sink

import (
	"encoding/json"

	"github.com/matzehuels/proofgen/pkg/diagram/layout"
)

// RenderJSON exports the positioned layout, for tools that draw their own
// diagram from the same geometry.
func RenderJSON(l layout.Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}
