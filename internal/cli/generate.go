package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/proofgen/pkg/bundle"
	"github.com/matzehuels/proofgen/pkg/errors"
	"github.com/matzehuels/proofgen/pkg/pipeline"
	"github.com/matzehuels/proofgen/pkg/session"
)

// generateOpts holds the flags for the generate command.
type generateOpts struct {
	systemType  string
	formats     string
	output      string  // bundle directory, or archive path with --zip
	zip         bool    // write a .zip instead of a directory
	promptStyle string  // canonical or locked
	width       float64 // canvas width, 0 = config
	height      float64 // canvas height, 0 = config
	noCache     bool
	refresh     bool
	interactive bool // pick a template when no system type is given
	noSession   bool // neither load nor save the last request
}

func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate [problem]",
		Short: "Render the diagram and write the repository bundle",
		Long: `Generate renders the system diagram for a one-sentence problem and writes
the proof-of-work bundle (README, architecture notes, assumptions,
disclaimer, diagram, prompts and a static page) to a directory or ZIP.

Without a problem argument the last saved request is reused.`,
		Example: `  proofgen generate -t "DAO treasury" "Votes stall for weeks"
  proofgen generate -t custody --zip -f svg,png "Keys live on one laptop"
  proofgen generate            # reuse the last request`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), problemArg(args), &opts, cmd.Flags().Changed("type"))
		},
	}

	cmd.Flags().StringVarP(&opts.systemType, "type", "t", "", "system type, e.g. \"lead intake\", \"DAO\", \"custody\"")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "extra output format(s): svg, png, pdf, json, dot, nodelink (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (or .zip path with --zip); default ./<name>")
	cmd.Flags().BoolVar(&opts.zip, "zip", false, "write a ZIP archive instead of a directory")
	cmd.Flags().StringVar(&opts.promptStyle, "prompt-style", "", "image prompt style: canonical (default), locked")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "canvas width (default from config, 1200)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "canvas height (default from config, 675)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "choose a template interactively")
	cmd.Flags().BoolVar(&opts.noSession, "no-session", false, "do not load or save the last request")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, problem string, opts *generateOpts, typeSet bool) error {
	logger := loggerFromContext(ctx)
	systemType := opts.systemType

	var store session.Store
	if !opts.noSession {
		s, err := c.openSessions(ctx)
		if err != nil {
			logger.Warn("sessions unavailable", "err", err)
		} else {
			store = s
			defer store.Close()
		}
	}

	if problem == "" && store != nil {
		last, err := session.LoadLast(ctx, store)
		if err != nil {
			logger.Warn("could not read last request", "err", err)
		}
		if last != nil {
			problem = last.Problem
			if !typeSet {
				systemType = last.SystemType
			}
			printInfo("%s: %s", session.LoadedMessage, StyleHighlight.Render(problem))
		}
	}
	if problem == "" {
		return errors.New(errors.ErrCodeMissingProblem, errors.MissingProblemMessage)
	}

	if opts.interactive && systemType == "" {
		picked, ok, err := pickTemplate()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		systemType = picked
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := c.pipelineOptions(systemType, problem, opts.formats, opts.width, opts.height, opts.promptStyle)
	popts.Refresh = opts.refresh
	popts.Logger = logger

	spinner := newSpinnerWithContext(ctx, "Rendering...")
	if needsSpinner(popts.Formats) {
		spinner.Start()
	}
	prog := newProgress(logger)
	res, err := runner.Execute(ctx, popts)
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done("Generated bundle", "name", res.Bundle.Name)

	if store != nil {
		if err := session.SaveLast(ctx, store, res.Input.SystemType, res.Input.Problem); err != nil {
			logger.Warn("could not save request", "err", err)
		}
	}

	written, err := writeGenerateOutput(res, opts)
	if err != nil {
		return err
	}

	printSuccess("Generated %s", StyleHighlight.Render(res.Title))
	printKeyValue("template", res.Kind.String())
	printKeyValue("accent", accentSwatch(res.Accent))
	printRenderStats(len(res.Artifacts), res.Stats.ArtifactBytes, res.CacheInfo.RenderHit)
	for _, p := range written {
		printFile(p)
	}
	return nil
}

// pipelineOptions fills unset values from the configuration.
func (c *CLI) pipelineOptions(systemType, problem, formats string, width, height float64, promptStyle string) pipeline.Options {
	if width <= 0 {
		width = float64(c.Config.Render.Width)
	}
	if height <= 0 {
		height = float64(c.Config.Render.Height)
	}
	if promptStyle == "" {
		promptStyle = c.Config.Render.PromptStyle
	}
	return pipeline.Options{
		SystemType:  systemType,
		Problem:     problem,
		Formats:     c.parseFormats(formats),
		Width:       width,
		Height:      height,
		PromptStyle: promptStyle,
	}
}

// writeGenerateOutput writes the bundle and any extra formats, returning
// the paths written.
func writeGenerateOutput(res *pipeline.Result, opts *generateOpts) ([]string, error) {
	b := res.Bundle
	var written []string

	if opts.zip {
		path := opts.output
		if path == "" {
			path = b.ZipName()
		}
		if err := writeZipFile(b, path); err != nil {
			return nil, err
		}
		written = append(written, path)
		extras, err := writeArtifacts(res, filepath.Dir(path), b.Name)
		return append(written, extras...), err
	}

	dir := opts.output
	if dir == "" {
		dir = b.Name
	}
	if err := b.WriteDir(dir); err != nil {
		return nil, err
	}
	written = append(written, dir+string(filepath.Separator))
	extras, err := writeArtifacts(res, filepath.Join(dir, "assets"), "system-image")
	return append(written, extras...), err
}

func writeZipFile(b *bundle.Bundle, path string) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return b.WriteZip(f)
}

// writeArtifacts writes every non-SVG artifact as dir/base.<ext>. The SVG is
// already part of the bundle.
func writeArtifacts(res *pipeline.Result, dir, base string) ([]string, error) {
	var written []string
	for _, format := range pipeline.AllFormats() {
		data, ok := res.Artifacts[format]
		if !ok || format == pipeline.FormatSVG {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return written, fmt.Errorf("create %s: %w", dir, err)
		}
		path := filepath.Join(dir, base+"."+pipeline.FileExt(format))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// needsSpinner reports whether any format shells out or runs Graphviz.
func needsSpinner(formats []string) bool {
	return slices.ContainsFunc(formats, func(f string) bool {
		return f == pipeline.FormatPNG || f == pipeline.FormatPDF || f == pipeline.FormatNodelink
	})
}

// pickTemplate runs the template picker. ok is false when the user quits
// without choosing.
func pickTemplate() (systemType string, ok bool, err error) {
	final, err := tea.NewProgram(NewTemplatePickerModel()).Run()
	if err != nil {
		return "", false, fmt.Errorf("template picker: %w", err)
	}
	m, _ := final.(TemplatePickerModel)
	if m.Selected == nil {
		return "", false, nil
	}
	return systemTypeFor(*m.Selected), true, nil
}
