package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/proofgen/pkg/config"
	"github.com/matzehuels/proofgen/pkg/pipeline"
	"github.com/matzehuels/proofgen/pkg/server"
	"github.com/matzehuels/proofgen/pkg/session"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		rateLimit float64
		burst     int
		noCache   bool
		noSession bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local dashboard",
		Long: `Serve runs the dashboard: a page with the problem form, a live diagram
preview, the image prompt and downloads for the SVG, each bundle file and
the ZIP. Generated bundles are kept in memory for an hour.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			flags := cmd.Flags()

			cfg := serverConfig(c.Config.Server)
			if err := pipeline.ValidateFormats(cfg.Formats); err != nil {
				return err
			}
			if flags.Changed("addr") {
				cfg.Addr = addr
			}
			if flags.Changed("rate-limit") {
				cfg.RateLimit = rateLimit
			}
			if flags.Changed("burst") {
				cfg.Burst = burst
			}

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			var store session.Store
			if !noSession {
				store, err = c.openSessions(ctx)
				if err != nil {
					return err
				}
				defer store.Close()
			}

			return server.New(cfg, runner, store, c.Logger).ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, "+server.DefaultAddr+")")
	cmd.Flags().Float64Var(&rateLimit, "rate-limit", 0, "generate requests per second, 0 disables (default from config, 5)")
	cmd.Flags().IntVar(&burst, "burst", 0, fmt.Sprintf("rate limiter burst (default from config, %d)", server.DefaultBurst))
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&noSession, "no-session", false, "do not remember the last request")

	return cmd
}

func serverConfig(sc config.ServerConfig) server.Config {
	return server.Config{
		Addr:      sc.Addr,
		RateLimit: sc.RateLimit,
		Burst:     sc.Burst,
		ResultTTL: sc.ResultTTL.Duration,
		Formats:   sc.Formats,
	}
}
