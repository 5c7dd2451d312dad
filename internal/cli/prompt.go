package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/proofgen/pkg/bundle"
	"github.com/matzehuels/proofgen/pkg/diagram"
)

func (c *CLI) promptCommand() *cobra.Command {
	var (
		systemType string
		style      string
		negative   bool
	)

	cmd := &cobra.Command{
		Use:   "prompt [problem]",
		Short: "Print the image-generation prompt",
		Long: `Prompt prints the text-to-image prompt for a system type and problem.
The canonical style is the short prompt shipped in every bundle; the locked
style spells out layout and content rules for generators that drift.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if style == "" {
				style = c.Config.Render.PromptStyle
			}
			ps, err := bundle.ParsePromptStyle(style)
			if err != nil {
				return err
			}
			in := diagram.Input{SystemType: systemType, Problem: problemArg(args)}.Normalize()
			if err := in.Validate(); err != nil {
				return err
			}
			return writePrompt(cmd.OutOrStdout(), ps, in, negative)
		},
	}

	cmd.Flags().StringVarP(&systemType, "type", "t", "", "system type")
	cmd.Flags().StringVar(&style, "style", "", "prompt style: canonical (default), locked")
	cmd.Flags().BoolVar(&negative, "negative", false, "also print the negative prompt")

	return cmd
}

func writePrompt(w io.Writer, style bundle.PromptStyle, in diagram.Input, negative bool) error {
	if _, err := fmt.Fprintln(w, bundle.Prompt(style, in.SystemType, in.Problem)); err != nil {
		return err
	}
	if negative {
		_, err := fmt.Fprintf(w, "\n%s\n", bundle.NegativePrompt)
		return err
	}
	return nil
}
