package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/proofgen/pkg/diagram/archetype"
	"github.com/matzehuels/proofgen/pkg/diagram/layout"
	"github.com/matzehuels/proofgen/pkg/diagram/nodelink"
	"github.com/matzehuels/proofgen/pkg/errors"
)

func (c *CLI) templatesCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the built-in diagram templates",
		Long: `Templates lists the diagram templates and the system-type keywords that
select them. Keywords are matched case-insensitively as substrings, in the
order shown; anything else uses the generic template.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				return writeTemplatesJSON(cmd.OutOrStdout())
			}
			fmt.Fprintln(cmd.OutOrStdout(), templatesTable())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print templates as JSON")
	cmd.AddCommand(c.templatesShowCommand())
	return cmd
}

func (c *CLI) templatesShowCommand() *cobra.Command {
	var dot bool

	cmd := &cobra.Command{
		Use:       "show <template>",
		Short:     "Show the boxes of one template",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kindNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, ok := archetype.ParseKind(strings.ToLower(args[0]))
			if !ok {
				return errors.New(errors.ErrCodeNotFound,
					"unknown template %q (want one of: %s)", args[0], strings.Join(kindNames(), ", "))
			}
			tpl := archetype.ForKind(k, "")
			w := cmd.OutOrStdout()
			if dot {
				_, err := io.WriteString(w, nodelink.ToDOT(tpl, nodelink.Options{Detailed: true}))
				return err
			}
			writeTemplate(w, tpl)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dot, "dot", false, "print the template as Graphviz DOT")
	return cmd
}

func writeTemplate(w io.Writer, tpl archetype.Template) {
	fmt.Fprintln(w, StyleTitle.Render(tpl.Title))
	for i, n := range tpl.Nodes {
		row := "top"
		if i >= layout.TopRowMax {
			row = "bottom"
		}
		fmt.Fprintf(w, "  %d %-6s %s\n", i, StyleDim.Render(row), StyleValue.Render(n.Label))
		for _, line := range n.Lines {
			fmt.Fprintln(w, "           "+StyleDim.Render(line))
		}
	}
	fmt.Fprintln(w, StyleDim.Render(tpl.Footer))
}

func writeTemplatesJSON(w io.Writer) error {
	kinds := archetype.Kinds()
	out := make([]archetype.Template, len(kinds))
	for i, k := range kinds {
		out[i] = archetype.ForKind(k, "")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func kindNames() []string {
	kinds := archetype.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}
