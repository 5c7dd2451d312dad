package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/proofgen/pkg/buildinfo"
	"github.com/matzehuels/proofgen/pkg/cache"
	"github.com/matzehuels/proofgen/pkg/config"
	"github.com/matzehuels/proofgen/pkg/observability"
	"github.com/matzehuels/proofgen/pkg/pipeline"
	"github.com/matzehuels/proofgen/pkg/session"
)

// =============================================================================
// Constants
// =============================================================================

// appName is used for directories and display.
const appName = "proofgen"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded in the root command's pre-run.
	Config config.Config

	configPath string
}

// New creates a CLI whose logger writes to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level. Debug also routes pipeline,
// cache and HTTP events to the log.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		observability.NewLogHooks(c.Logger).Register()
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "proofgen turns one sentence into a system diagram and a proof-of-work repo",
		Long: `proofgen takes a system type and a one-sentence problem statement and
produces a deterministic architecture diagram (SVG), an image-generation
prompt, and a small repository bundle documenting the build.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/proofgen/config.toml)")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.diagramCommand())
	root.AddCommand(c.promptCommand())
	root.AddCommand(c.templatesCommand())
	root.AddCommand(c.sessionCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache. Keys
// are scoped by generator version because cached bundles embed it.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cc, err := c.openCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(nil, buildinfo.Version+":")
	r := pipeline.NewRunner(cc, keyer, c.Logger)
	r.TTL = c.Config.Cache.TTL.Duration
	return r, nil
}

func (c *CLI) openCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir := c.Config.Cache.Dir
	if dir == "" {
		d, err := cacheDir()
		if err != nil {
			c.Logger.Warn("no cache directory, caching disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		dir = d
	}
	cc, err := cache.Open(ctx, cache.Options{
		Backend: c.Config.Cache.Backend,
		Dir:     dir,
		Redis:   c.redisCacheConfig(),
	})
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	return cc, nil
}

func (c *CLI) redisCacheConfig() cache.RedisConfig {
	r := c.Config.Redis
	return cache.RedisConfig{Addr: r.Addr, Password: r.Password, DB: r.DB, Prefix: r.Prefix + "cache:"}
}

// openSessions opens the configured session store.
func (c *CLI) openSessions(ctx context.Context) (session.Store, error) {
	r := c.Config.Redis
	store, err := session.Open(ctx, session.Options{
		Backend: c.Config.Session.Backend,
		Dir:     c.Config.Session.Dir,
		Redis: session.RedisStoreConfig{
			Addr:     r.Addr,
			Password: r.Password,
			DB:       r.DB,
			Prefix:   r.Prefix + "session:",
		},
		Mongo: session.MongoStoreConfig{
			URI:      c.Config.Mongo.URI,
			Database: c.Config.Mongo.Database,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	return store, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/proofgen/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats splits a comma-separated --format value. Empty falls back to
// the configured formats.
func (c *CLI) parseFormats(s string) []string {
	if strings.TrimSpace(s) == "" {
		if len(c.Config.Render.Formats) > 0 {
			return c.Config.Render.Formats
		}
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// problemArg joins positional arguments into one problem statement, so
// quoting is optional.
func problemArg(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
