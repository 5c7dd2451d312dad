package bundle

import (
	"fmt"
	"strings"
)

// PromptStyle selects one of the image-generator prompt templates.
type PromptStyle string

const (
	// PromptCanonical is the short four-line prompt shipped in every bundle.
	PromptCanonical PromptStyle = "canonical"
	// PromptLocked spells out style, layout and content rules for
	// generators that drift without them.
	PromptLocked PromptStyle = "locked"
)

// PromptStyles lists the supported styles.
func PromptStyles() []PromptStyle { return []PromptStyle{PromptCanonical, PromptLocked} }

// ParsePromptStyle resolves a style name; empty means canonical.
func ParsePromptStyle(s string) (PromptStyle, error) {
	switch PromptStyle(strings.ToLower(strings.TrimSpace(s))) {
	case "", PromptCanonical:
		return PromptCanonical, nil
	case PromptLocked:
		return PromptLocked, nil
	}
	return "", fmt.Errorf("unknown prompt style %q (want canonical or locked)", s)
}

// CanonicalPrompt fills the fixed prompt template. It is plain text: no
// escaping is applied to either argument.
func CanonicalPrompt(systemType, problem string) string {
	return fmt.Sprintf(`A high-fidelity system architecture visualization of a %s designed to solve "%s".
The image shows clearly defined components including input, processing logic, automation, and outputs.
Dark technical interface style, grid-based layout, modern infrastructure aesthetic, no people, no branding, no marketing visuals.
Clean, professional, engineered, and realistic — suitable for a technical architecture document.`, systemType, problem)
}

// LockedPrompt is the long-form prompt with explicit style and layout rules.
func LockedPrompt(systemType, problem string) string {
	return fmt.Sprintf(`A high-fidelity system architecture visualization of a "%s" designed to solve:
"%s"

STYLE (locked):
- Dark technical HUD interface on a subtle square grid background (like an ops / infrastructure diagram)
- Clean metallic panels with soft inner shadows, faint neon edge glow
- High contrast, low saturation, engineered and deterministic (NOT artistic)
- Minimal color accents only: cool blue/cyan + optional small amber indicators
- Crisp typography, sharp lines, professional documentation-grade

LAYOUT (locked):
- 16:9 landscape
- Title centered at top (short, technical)
- Four vertical lanes (left-to-right), each with a header bar:
  1) INPUTS
  2) PROCESSING & LOGIC
  3) AUTOMATION
  4) OUTPUTS
- Boxes stacked within lanes, connected with clear arrows (left-to-right flow)
- Optional bottom band: "Databases" or "On-Chain / Storage" with 3–4 small database icons

CONTENT RULES (locked):
- Each box label is 1–3 words max (e.g., "Lead Enrichment", "Workflow Automation")
- Use simple monochrome line icons inside some boxes (email, web, shield, database, charts)
- No people, no characters, no scenery, no abstract art
- No branding, no logos, no marketing copy, no UI mockups/screenshots
- This is an architecture diagram suitable for a GitHub README / technical documentation

RENDERING:
- Photorealistic lighting is NOT required; it should look like a premium digital infographic / architecture plate.
- Keep it consistent and repeatable across different thoughts.`, strings.TrimSpace(systemType), strings.TrimSpace(problem))
}

// Prompt renders the prompt for the given style.
func Prompt(style PromptStyle, systemType, problem string) string {
	if style == PromptLocked {
		return LockedPrompt(systemType, problem)
	}
	return CanonicalPrompt(systemType, problem)
}

// NegativePrompt lists what image generators should avoid.
const NegativePrompt = `Avoid:
- White backgrounds, colorful cartoons, hand-drawn sketches
- 3D scenes, people, mascots, faces
- Marketing posters, product UI mockups, website screenshots
- Abstract concept art, messy layouts, cluttered text paragraphs
- Overly saturated neon rainbow palettes
- Long labels, dense sentences in boxes`
