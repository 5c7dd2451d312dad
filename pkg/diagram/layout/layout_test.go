package layout

import (
	"math"
	"testing"

	"github.com/matzehuels/proofgen/pkg/diagram/archetype"
)

func nodes(n int) []archetype.NodeSpec {
	out := make([]archetype.NodeSpec, n)
	for i := range out {
		out[i] = archetype.NodeSpec{Label: string(rune('A' + i))}
	}
	return out
}

func TestBuildTopRow(t *testing.T) {
	l := Build(archetype.Template{Nodes: nodes(4)}, 0, 0)

	if len(l.Boxes) != 4 {
		t.Fatalf("got %d boxes, want 4", len(l.Boxes))
	}
	wantX := []float64{70, 344, 618, 892}
	for i, b := range l.Boxes {
		if b.X != wantX[i] || b.Y != TopY {
			t.Errorf("box %d at (%v,%v), want (%v,%v)", i, b.X, b.Y, wantX[i], TopY)
		}
		if b.W != BoxW || b.H != BoxH {
			t.Errorf("box %d size %vx%v", i, b.W, b.H)
		}
	}
	if len(l.Arrows) != 3 {
		t.Errorf("got %d arrows, want 3", len(l.Arrows))
	}
	if l.Width != DefaultWidth || l.Height != DefaultHeight {
		t.Errorf("canvas %vx%v, want defaults", l.Width, l.Height)
	}
}

func TestBuildBottomRowCentered(t *testing.T) {
	spanCenter := MarginX + rowSpan(4)/2

	for n := 1; n <= 3; n++ {
		l := Build(archetype.Template{Nodes: nodes(4 + n), BottomFrom: 1}, 1200, 675)
		bottom := l.BottomRow()
		if len(bottom) != n {
			t.Fatalf("n=%d: bottom row has %d boxes", n, len(bottom))
		}
		left := bottom[0].X
		right := bottom[len(bottom)-1].Right()
		if c := (left + right) / 2; math.Abs(c-spanCenter) > 1 {
			t.Errorf("n=%d: bottom row center %v, want %v±1", n, c, spanCenter)
		}
		for _, b := range bottom {
			if b.Y != TopY+BoxH+RowGap {
				t.Errorf("n=%d: bottom y = %v", n, b.Y)
			}
		}
	}
}

func TestBuildBottomRowCapped(t *testing.T) {
	l := Build(archetype.Template{Nodes: nodes(9)}, 1200, 675)
	if len(l.Boxes) != 7 {
		t.Errorf("got %d boxes, want 7", len(l.Boxes))
	}
	if len(l.TopRow()) != 4 || len(l.BottomRow()) != 3 {
		t.Errorf("rows %d/%d", len(l.TopRow()), len(l.BottomRow()))
	}
}

func TestBuildNoOverlap(t *testing.T) {
	for _, k := range archetype.Kinds() {
		l := Build(archetype.ForKind(k, ""), 1200, 675)
		for i := range l.Boxes {
			for j := i + 1; j < len(l.Boxes); j++ {
				if overlaps(l.Boxes[i], l.Boxes[j]) {
					t.Errorf("%v: boxes %d and %d overlap", k, i, j)
				}
			}
		}
	}
}

func overlaps(a, b Box) bool {
	return a.X < b.Right() && b.X < a.Right() && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func TestBuildArrowCount(t *testing.T) {
	tests := []struct {
		name  string
		tpl   archetype.Template
		count int
	}{
		{"4+1 without edges", archetype.Template{Nodes: nodes(5), BottomFrom: 1}, 4},
		{"4+1 with one edge", archetype.Template{Nodes: nodes(5), BottomFrom: 1, Edges: [][2]int{{2, 4}}}, 5},
		{"out of range edge skipped", archetype.Template{Nodes: nodes(5), Edges: [][2]int{{2, 9}, {-1, 0}}}, 4},
		{"three nodes", archetype.Template{Nodes: nodes(3)}, 2},
		{"one node", archetype.Template{Nodes: nodes(1)}, 0},
		{"no nodes", archetype.Template{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Build(tt.tpl, 1200, 675)
			if len(l.Arrows) != tt.count {
				t.Errorf("got %d arrows, want %d", len(l.Arrows), tt.count)
			}
		})
	}
}

func TestBuildArrowGeometry(t *testing.T) {
	tpl := archetype.Template{Nodes: nodes(5), BottomFrom: 3, Edges: [][2]int{{1, 4}}}
	l := Build(tpl, 1200, 675, WithAccent("red"))

	chain := l.Arrows[0]
	if chain.X1 != 320 || chain.Y1 != 250 || chain.X2 != 344 || chain.Y2 != 250 {
		t.Errorf("chain arrow = %+v", chain)
	}

	down := l.Arrows[3]
	from, to := l.Boxes[3], l.Boxes[4]
	if down.X1 != from.CenterX() || down.Y1 != from.Y+from.H || down.X2 != to.CenterX() || down.Y2 != to.Y {
		t.Errorf("bottom link = %+v", down)
	}

	edge := l.Arrows[4]
	if edge.X1 != l.Boxes[1].Right() || edge.X2 != l.Boxes[4].X || edge.Y2 != l.Boxes[4].Y+AnchorY {
		t.Errorf("extra edge = %+v", edge)
	}

	for i, a := range l.Arrows {
		if a.Color != "red" {
			t.Errorf("arrow %d color %q", i, a.Color)
		}
	}
}

func TestBuildBottomFromFallback(t *testing.T) {
	l := Build(archetype.Template{Nodes: nodes(5), BottomFrom: 12}, 1200, 675)
	down := l.Arrows[3]
	if down.X1 != l.Boxes[1].CenterX() {
		t.Errorf("fallback link starts at x=%v, want box 1", down.X1)
	}
}

func TestBuildAccents(t *testing.T) {
	ns := nodes(4)
	ns[2].Accent = "#fff"
	l := Build(archetype.Template{Nodes: ns}, 1200, 675, WithAccent("rgba(1,2,3,0.85)"))

	if l.Boxes[2].Accent != "#fff" {
		t.Errorf("node accent ignored: %q", l.Boxes[2].Accent)
	}
	if l.Boxes[0].Accent != "rgba(1,2,3,0.85)" {
		t.Errorf("global accent not applied: %q", l.Boxes[0].Accent)
	}
}

func TestBuildText(t *testing.T) {
	tpl := archetype.Lookup("lead")
	l := Build(tpl, 1200, 675, WithProblem("Leads go cold"))
	if l.Title != "Lead generation pipeline" {
		t.Errorf("Title = %q", l.Title)
	}
	if l.Subtitle != "Problem: Leads go cold" {
		t.Errorf("Subtitle = %q", l.Subtitle)
	}
	if l.Footer != tpl.Footer {
		t.Errorf("Footer = %q", l.Footer)
	}
}

func TestLinks(t *testing.T) {
	got := Links(archetype.Lookup("dao"))
	want := []Link{
		{0, 1, LinkChain}, {1, 2, LinkChain}, {2, 3, LinkChain},
		{3, 4, LinkBottom},
		{1, 4, LinkEdge},
	}
	if len(got) != len(want) {
		t.Fatalf("Links() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Links()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
