package diagram

import (
	"strings"

	"github.com/matzehuels/proofgen/pkg/diagram/archetype"
	"github.com/matzehuels/proofgen/pkg/diagram/layout"
	"github.com/matzehuels/proofgen/pkg/diagram/sink"
	"github.com/matzehuels/proofgen/pkg/diagram/styles"
	"github.com/matzehuels/proofgen/pkg/errors"
)

// Input is one generation request.
type Input struct {
	SystemType string `json:"system_type" toml:"system_type"`
	Problem    string `json:"problem" toml:"problem"`
}

// Normalize trims surrounding whitespace from both fields.
func (in Input) Normalize() Input {
	return Input{
		SystemType: strings.TrimSpace(in.SystemType),
		Problem:    strings.TrimSpace(in.Problem),
	}
}

// Validate checks the input without rendering anything. Only a blank problem
// is refused; any system type is accepted.
func (in Input) Validate() error {
	return errors.ValidateProblem(in.Problem)
}

// Result is a rendered diagram together with the decisions behind it.
type Result struct {
	Title    string             `json:"title"`
	SVG      []byte             `json:"-"`
	Accent   string             `json:"accent"`
	Kind     archetype.Kind     `json:"kind"`
	Template archetype.Template `json:"-"`
	Layout   layout.Layout      `json:"layout"`
}

// Option configures [RenderInput].
type Option func(*options)

type options struct {
	width, height float64
	svgOpts       []sink.SVGOption
}

// WithSize sets the canvas size. Box geometry is unaffected.
func WithSize(width, height float64) Option {
	return func(o *options) { o.width, o.height = width, height }
}

// WithSVGOptions forwards options to [sink.RenderSVG].
func WithSVGOptions(opts ...sink.SVGOption) Option {
	return func(o *options) { o.svgOpts = append(o.svgOpts, opts...) }
}

// Render produces the diagram for a system type and problem statement.
// Both are trimmed first. A blank problem fails with
// [errors.ErrCodeMissingProblem] before any markup is produced; a blank
// system type selects the generic template titled "System".
func Render(systemType, problem string) (Result, error) {
	return RenderInput(Input{SystemType: systemType, Problem: problem})
}

// RenderInput is [Render] with options.
func RenderInput(in Input, opts ...Option) (Result, error) {
	o := options{width: layout.DefaultWidth, height: layout.DefaultHeight}
	for _, opt := range opts {
		opt(&o)
	}

	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	kind := archetype.Classify(in.SystemType)
	tpl := archetype.ForKind(kind, in.SystemType)
	accent := styles.Accent(in.SystemType, in.Problem)

	l := layout.Build(tpl, o.width, o.height,
		layout.WithAccent(accent),
		layout.WithProblem(in.Problem),
	)

	return Result{
		Title:    tpl.Title,
		SVG:      sink.RenderSVG(l, o.svgOpts...),
		Accent:   accent,
		Kind:     kind,
		Template: tpl,
		Layout:   l,
	}, nil
}
