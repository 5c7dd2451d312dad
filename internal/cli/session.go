package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/proofgen/pkg/session"
)

// sessionCommand creates the session management command.
func (c *CLI) sessionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Show or forget the last request",
	}
	cmd.AddCommand(c.sessionShowCommand())
	cmd.AddCommand(c.sessionClearCommand())
	return cmd
}

func (c *CLI) sessionShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the last saved request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := c.openSessions(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			last, err := session.LoadLast(ctx, store)
			if err != nil {
				return err
			}
			if last == nil {
				printInfo("No saved request")
				return nil
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "system type: %s\n", last.SystemType)
			fmt.Fprintf(w, "problem:     %s\n", last.Problem)
			fmt.Fprintf(w, "updated:     %s\n", last.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
			return nil
		},
	}
}

func (c *CLI) sessionClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget the last saved request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := c.openSessions(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := session.ClearLast(ctx, store); err != nil {
				return err
			}
			printSuccess("Forgot last request")
			if fs, ok := store.(*session.FileStore); ok {
				printDetail("Directory: %s", fs.Path())
			}
			return nil
		},
	}
}
