package archetype

import (
	"encoding/json"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		systemType string
		want       Kind
	}{
		{"Lead generation pipeline", Lead},
		{"  LEAD scoring ", Lead},
		{"DAO treasury workflow", DAO},
		{"dao", DAO},
		{"Bitcoin custody", Custody},
		{"custody workflow", Custody},
		{"Invoice workflow", Workflow},
		{"Data intake system", DataIntake},
		{"data  intake", Generic},
		{"leadership dashboard", Lead},
		{"Customer support bot", Generic},
		{"", Generic},
	}

	for _, tt := range tests {
		t.Run(tt.systemType, func(t *testing.T) {
			if got := Classify(tt.systemType); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.systemType, got, tt.want)
			}
		})
	}
}

func TestLookupTitles(t *testing.T) {
	tests := []struct {
		systemType string
		title      string
	}{
		{"Lead generation pipeline", "Lead generation pipeline"},
		{"DAO treasury workflow", "DAO governance system"},
		{"custody", "Non-custodial custody workflow"},
		{"workflow", "Workflow automation"},
		{"data intake", "Data intake + processing system"},
		{"  Support desk  ", "Support desk"},
		{"", "System"},
		{"   ", "System"},
	}

	for _, tt := range tests {
		t.Run(tt.systemType, func(t *testing.T) {
			if got := Lookup(tt.systemType).Title; got != tt.title {
				t.Errorf("Lookup(%q).Title = %q, want %q", tt.systemType, got, tt.title)
			}
		})
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	a := Lookup("lead")
	a.Nodes[0].Label = "mutated"
	a.Nodes[0].Lines[0] = "mutated"
	a.Edges[0] = [2]int{0, 0}

	b := Lookup("lead")
	if b.Nodes[0].Label != "Sources" || b.Nodes[0].Lines[0] != "Lists" {
		t.Errorf("registry was mutated through a lookup: %+v", b.Nodes[0])
	}
	if b.Edges[0] != [2]int{2, 4} {
		t.Errorf("edges mutated: %v", b.Edges)
	}
}

func TestBuiltinTemplatesValid(t *testing.T) {
	for _, k := range Kinds() {
		tpl := ForKind(k, "")
		if err := tpl.Validate(); err != nil {
			t.Errorf("%v: %v", k, err)
		}
		if len(tpl.Nodes) != 5 {
			t.Errorf("%v: %d nodes, want 5", k, len(tpl.Nodes))
		}
	}
}

func TestBottomFrom(t *testing.T) {
	want := map[Kind]int{Lead: 1, DAO: 3, Custody: 2, Workflow: 1, DataIntake: 2, Generic: 1}
	for k, from := range want {
		if got := ForKind(k, "").BottomFrom; got != from {
			t.Errorf("%v.BottomFrom = %d, want %d", k, got, from)
		}
	}
}

func TestValidate(t *testing.T) {
	base := ForKind(Generic, "")

	short := base.Clone()
	short.Nodes = short.Nodes[:3]
	if short.Validate() == nil {
		t.Error("3 nodes should be rejected")
	}

	noLabel := base.Clone()
	noLabel.Nodes[2].Label = " "
	if noLabel.Validate() == nil {
		t.Error("blank label should be rejected")
	}

	tooManyLines := base.Clone()
	tooManyLines.Nodes[0].Lines = []string{"a", "b", "c", "d", "e"}
	if tooManyLines.Validate() == nil {
		t.Error("5 detail lines should be rejected")
	}

	badFrom := base.Clone()
	badFrom.BottomFrom = 4
	if badFrom.Validate() == nil {
		t.Error("bottom link from the bottom row should be rejected")
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		parsed, ok := ParseKind(k.String())
		if !ok || parsed != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), parsed, ok)
		}
	}
	if _, ok := ParseKind("spaceship"); ok {
		t.Error("ParseKind accepted an unknown name")
	}

	b, err := json.Marshal(struct{ K Kind }{DataIntake})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"K":"data-intake"}` {
		t.Errorf("json = %s", b)
	}
	if Kind(42).String() != "kind(42)" {
		t.Errorf("out of range String() = %q", Kind(42).String())
	}
}

func TestKindsOrder(t *testing.T) {
	got := Kinds()
	want := []Kind{Lead, DAO, Custody, Workflow, DataIntake, Generic}
	if len(got) != len(want) {
		t.Fatalf("Kinds() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Kinds()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if Keyword(DataIntake) != "data intake" || Keyword(Generic) != "" {
		t.Error("Keyword mismatch")
	}
}
