package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/proofgen/pkg/errors"
	"github.com/matzehuels/proofgen/pkg/pipeline"
)

// diagramOpts holds the flags for the diagram command.
type diagramOpts struct {
	systemType string
	format     string
	output     string // file path; empty writes to stdout
	width      float64
	height     float64
	scale      float64
	detailed   bool // node-link boxes list their lines
	noCache    bool
}

func (c *CLI) diagramCommand() *cobra.Command {
	var opts diagramOpts

	cmd := &cobra.Command{
		Use:   "diagram [problem]",
		Short: "Render only the system diagram",
		Long: `Diagram renders the system diagram in one format and writes it to stdout
or a file. Formats: svg (default), png, pdf, json (layout), dot, nodelink
(Graphviz SVG of the same boxes and arrows).`,
		Example: `  proofgen diagram -t workflow "Approvals take days" > diagram.svg
  proofgen diagram -t dao -f dot "Quorum never reached"
  proofgen diagram -f png -o diagram.png "Leads go cold"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDiagram(cmd.Context(), cmd.OutOrStdout(), problemArg(args), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.systemType, "type", "t", "", "system type")
	cmd.Flags().StringVarP(&opts.format, "format", "f", pipeline.FormatSVG, "output format: svg, png, pdf, json, dot, nodelink")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "canvas width")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "canvas height")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include box lines in dot/nodelink output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func (c *CLI) runDiagram(ctx context.Context, w io.Writer, problem string, opts *diagramOpts) error {
	format := strings.ToLower(strings.TrimSpace(opts.format))
	if err := pipeline.ValidateFormat(format); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := c.pipelineOptions(opts.systemType, problem, format, opts.width, opts.height, "")
	popts.Scale = opts.scale
	popts.Detailed = opts.detailed
	popts.Logger = loggerFromContext(ctx)

	res, err := runner.Diagram(ctx, popts)
	if err != nil {
		return err
	}
	artifacts, err := runner.Render(ctx, res, popts)
	if err != nil {
		return err
	}
	data := artifacts[format]

	if opts.output == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", opts.output)
	}
	printSuccess("Rendered %s", StyleHighlight.Render(res.Title))
	printFile(fmt.Sprintf("%s (%s)", opts.output, formatBytes(len(data))))
	return nil
}
