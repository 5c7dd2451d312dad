package pipeline

import (
	"context"

	"github.com/matzehuels/proofgen/pkg/diagram"
	"github.com/matzehuels/proofgen/pkg/diagram/nodelink"
	"github.com/matzehuels/proofgen/pkg/diagram/sink"
	"github.com/matzehuels/proofgen/pkg/render"
)

// RenderFormat produces one output format from a rendered diagram.
func RenderFormat(ctx context.Context, res diagram.Result, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return res.SVG, nil
	case FormatJSON:
		return sink.RenderJSON(res.Layout)
	case FormatPNG:
		return render.ToPNGContext(ctx, res.SVG, opts.Scale)
	case FormatPDF:
		return render.ToPDFContext(ctx, res.SVG)
	case FormatDOT:
		return []byte(nodelink.ToDOT(res.Template, nodelink.Options{Detailed: opts.Detailed})), nil
	case FormatNodelink:
		dot := nodelink.ToDOT(res.Template, nodelink.Options{Detailed: opts.Detailed})
		return nodelink.RenderSVGContext(ctx, dot)
	}
	return nil, ValidateFormat(format)
}
