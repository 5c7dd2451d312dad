package layout

import (
	"github.com/matzehuels/proofgen/pkg/diagram/archetype"
)

// Canvas and box geometry. The box constants are tuned for the default
// 1200×675 canvas and are not scaled with it.
const (
	DefaultWidth  = 1200.0
	DefaultHeight = 675.0

	MarginX = 70.0
	TopY    = 190.0
	RowGap  = 44.0
	ColGap  = 24.0
	BoxW    = 250.0
	BoxH    = 120.0

	// AnchorY is the vertical offset of horizontal arrow endpoints.
	AnchorY = 60.0

	TopRowMax    = 4
	BottomRowMax = 3
)

// Box is a node placed on the canvas.
type Box struct {
	Label  string   `json:"label"`
	Lines  []string `json:"lines,omitempty"`
	Accent string   `json:"accent"`
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	W      float64  `json:"w"`
	H      float64  `json:"h"`
	Bottom bool     `json:"bottom,omitempty"` // placed on the bottom row
}

// Right returns the x coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// CenterX returns the horizontal center.
func (b Box) CenterX() float64 { return b.X + b.W/2 }

// Arrow is a straight directed connector.
type Arrow struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Color string  `json:"color"`
}

// Layout is a fully positioned diagram, ready for a sink.
type Layout struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle,omitempty"`
	Footer   string  `json:"footer"`
	Accent   string  `json:"accent"`
	Boxes    []Box   `json:"boxes"`
	Arrows   []Arrow `json:"arrows"`
}

// TopRow returns the boxes on the top row.
func (l Layout) TopRow() []Box {
	for i, b := range l.Boxes {
		if b.Bottom {
			return l.Boxes[:i]
		}
	}
	return l.Boxes
}

// BottomRow returns the boxes on the bottom row.
func (l Layout) BottomRow() []Box {
	for i, b := range l.Boxes {
		if b.Bottom {
			return l.Boxes[i:]
		}
	}
	return nil
}

// Option configures [Build].
type Option func(*config)

type config struct {
	accent  string
	problem string
}

// WithAccent sets the diagram accent. It colors every arrow and every box
// whose node declares no accent of its own.
func WithAccent(accent string) Option { return func(c *config) { c.accent = accent } }

// WithProblem sets the problem statement shown as the subtitle.
func WithProblem(problem string) Option { return func(c *config) { c.problem = problem } }

// Build places the template's nodes and connects them. Non-positive
// dimensions fall back to the default canvas. Build never fails: short
// templates produce fewer boxes and arrows, and extra edges that point
// outside the placed boxes are dropped.
func Build(tpl archetype.Template, width, height float64, opts ...Option) Layout {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	l := Layout{
		Width:  width,
		Height: height,
		Title:  tpl.Title,
		Footer: tpl.Footer,
		Accent: cfg.accent,
	}
	if cfg.problem != "" {
		l.Subtitle = "Problem: " + cfg.problem
	}

	top := tpl.Nodes[:min(TopRowMax, len(tpl.Nodes))]
	var bottom []archetype.NodeSpec
	if len(tpl.Nodes) > TopRowMax {
		bottom = tpl.Nodes[TopRowMax:min(len(tpl.Nodes), TopRowMax+BottomRowMax)]
	}

	l.Boxes = make([]Box, 0, len(top)+len(bottom))
	for i, n := range top {
		l.Boxes = append(l.Boxes, place(n, MarginX+float64(i)*(BoxW+ColGap), TopY, cfg.accent, false))
	}
	if len(bottom) > 0 {
		startX := MarginX + max(0, (rowSpan(TopRowMax)-rowSpan(len(bottom)))/2)
		y := TopY + BoxH + RowGap
		for i, n := range bottom {
			l.Boxes = append(l.Boxes, place(n, startX+float64(i)*(BoxW+ColGap), y, cfg.accent, true))
		}
	}

	l.Arrows = buildArrows(tpl, l.Boxes, cfg.accent)
	return l
}

func place(n archetype.NodeSpec, x, y float64, accent string, bottom bool) Box {
	if n.Accent != "" {
		accent = n.Accent
	}
	return Box{
		Label:  n.Label,
		Lines:  n.Lines,
		Accent: accent,
		X:      x,
		Y:      y,
		W:      BoxW,
		H:      BoxH,
		Bottom: bottom,
	}
}

// rowSpan is the width of n boxes separated by the column gap.
func rowSpan(n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*BoxW + float64(n-1)*ColGap
}

// LinkKind distinguishes the three arrow families.
type LinkKind int

const (
	LinkChain  LinkKind = iota // top row, left to right
	LinkBottom                 // top row down to the bottom row
	LinkEdge                   // declared by the template
)

// Link is a directed connection between two box indices.
type Link struct {
	From, To int
	Kind     LinkKind
}

// Links returns the connections Build draws for tpl, in drawing order.
// Other renderers use it to stay consistent with the grid diagram.
func Links(tpl archetype.Template) []Link {
	topN := min(TopRowMax, len(tpl.Nodes))
	bottomN := min(max(len(tpl.Nodes)-TopRowMax, 0), BottomRowMax)
	total := topN + bottomN

	links := make([]Link, 0, topN+len(tpl.Edges))
	for i := 0; i < topN-1; i++ {
		links = append(links, Link{From: i, To: i + 1, Kind: LinkChain})
	}

	if bottomN > 0 {
		from := tpl.BottomFrom
		if from < 0 || from >= total {
			from = 1
		}
		links = append(links, Link{From: from, To: topN, Kind: LinkBottom})
	}

	for _, e := range tpl.Edges {
		if e[0] < 0 || e[0] >= total || e[1] < 0 || e[1] >= total {
			continue
		}
		links = append(links, Link{From: e[0], To: e[1], Kind: LinkEdge})
	}
	return links
}

func buildArrows(tpl archetype.Template, boxes []Box, color string) []Arrow {
	links := Links(tpl)
	arrows := make([]Arrow, 0, len(links))
	for _, ln := range links {
		a, b := boxes[ln.From], boxes[ln.To]
		if ln.Kind == LinkBottom {
			arrows = append(arrows, Arrow{
				X1: a.CenterX(), Y1: a.Y + a.H,
				X2: b.CenterX(), Y2: b.Y,
				Color: color,
			})
			continue
		}
		arrows = append(arrows, horizontal(a, b, color))
	}
	return arrows
}

func horizontal(a, b Box, color string) Arrow {
	return Arrow{X1: a.Right(), Y1: a.Y + AnchorY, X2: b.X, Y2: b.Y + AnchorY, Color: color}
}
