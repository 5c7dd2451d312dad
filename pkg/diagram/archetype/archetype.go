// Package archetype holds the compiled-in diagram templates and the rules
// that map a free-text system type onto one of them.
//
// Classification is a case-insensitive substring match checked in a fixed
// priority order; the first keyword found wins:
//
//	lead → dao → custody → workflow → data intake
//
// so "DAO treasury workflow" resolves to [DAO]. Anything else resolves to
// [Generic], whose title echoes the system type.
package archetype

import (
	"fmt"
	"slices"
	"strings"
)

// Kind identifies one of the built-in templates.
type Kind int

const (
	Generic Kind = iota
	Lead
	DAO
	Custody
	Workflow
	DataIntake
)

var kindNames = [...]string{
	Generic:    "generic",
	Lead:       "lead",
	DAO:        "dao",
	Custody:    "custody",
	Workflow:   "workflow",
	DataIntake: "data-intake",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, ok := ParseKind(string(b))
	if !ok {
		return fmt.Errorf("unknown archetype %q", b)
	}
	*k = parsed
	return nil
}

// ParseKind resolves a kind name as printed by [Kind.String].
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return Generic, false
}

// Kinds returns every kind in priority order, with Generic last.
func Kinds() []Kind {
	out := make([]Kind, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.kind)
	}
	return append(out, Generic)
}

type rule struct {
	keyword string
	kind    Kind
}

// rules is the classification order. Do not reorder.
var rules = []rule{
	{"lead", Lead},
	{"dao", DAO},
	{"custody", Custody},
	{"workflow", Workflow},
	{"data intake", DataIntake},
}

// Keyword returns the substring that selects k, or "" for Generic.
func Keyword(k Kind) string {
	for _, r := range rules {
		if r.kind == k {
			return r.keyword
		}
	}
	return ""
}

// Classify maps a system type onto a template kind. It is total.
func Classify(systemType string) Kind {
	t := strings.ToLower(strings.TrimSpace(systemType))
	for _, r := range rules {
		if strings.Contains(t, r.keyword) {
			return r.kind
		}
	}
	return Generic
}

// Lookup returns a copy of the template selected by systemType.
func Lookup(systemType string) Template {
	return ForKind(Classify(systemType), systemType)
}

// ForKind returns a copy of the template for k. systemType is only used for
// the Generic title; an empty value yields "System".
func ForKind(k Kind, systemType string) Template {
	tpl, ok := templates[k]
	if !ok {
		tpl = templates[Generic]
		k = Generic
	}
	tpl = tpl.Clone()
	if k == Generic {
		tpl.Title = GenericTitle(systemType)
	}
	return tpl
}

// GenericTitle is the title used by the fallback template.
func GenericTitle(systemType string) string {
	if t := strings.TrimSpace(systemType); t != "" {
		return t
	}
	return "System"
}

// NodeSpec describes one box of a template.
type NodeSpec struct {
	Label  string   `json:"label"`
	Lines  []string `json:"lines,omitempty"`
	Accent string   `json:"accent,omitempty"` // empty uses the diagram accent
}

// Template is a type-shaped diagram description. The first four nodes form
// the top row; up to three more form the bottom row.
type Template struct {
	Title  string     `json:"title"`
	Footer string     `json:"footer"`
	Nodes  []NodeSpec `json:"nodes"`
	// BottomFrom is the top-row index linked down to the first bottom node.
	BottomFrom int `json:"bottom_from"`
	// Edges are extra arrows between box indices.
	Edges [][2]int `json:"edges,omitempty"`
}

// Clone returns a deep copy of t.
func (t Template) Clone() Template {
	out := t
	out.Nodes = make([]NodeSpec, len(t.Nodes))
	for i, n := range t.Nodes {
		n.Lines = slices.Clone(n.Lines)
		out.Nodes[i] = n
	}
	out.Edges = slices.Clone(t.Edges)
	return out
}

// Validate reports structural problems in a hand-built template.
// The built-in templates always pass.
func (t Template) Validate() error {
	if n := len(t.Nodes); n < 4 || n > 7 {
		return fmt.Errorf("template %q: want 4 to 7 nodes, got %d", t.Title, n)
	}
	for i, n := range t.Nodes {
		if strings.TrimSpace(n.Label) == "" {
			return fmt.Errorf("template %q: node %d has no label", t.Title, i)
		}
		if len(n.Lines) > 4 {
			return fmt.Errorf("template %q: node %q has %d detail lines (max 4)", t.Title, n.Label, len(n.Lines))
		}
	}
	if t.BottomFrom < 0 || t.BottomFrom > 3 {
		return fmt.Errorf("template %q: bottom link must start on the top row, got %d", t.Title, t.BottomFrom)
	}
	return nil
}
