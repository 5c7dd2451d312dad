// Package pipeline runs a generation request end to end.
//
// The same pipeline backs the CLI and the dashboard server:
//
//  1. Validate: trim and check the system type and problem
//  2. Classify: pick the template and accent
//  3. Render: produce every requested format, concurrently, with caching
//  4. Bundle: assemble the proof-of-work repository files
//
// # Usage
//
//	runner := pipeline.NewRunner(cache.NewMemoryCache(0, 0), nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    SystemType: "DAO treasury",
//	    Problem:    "Votes stall for weeks",
//	    Formats:    []string{"svg", "png"},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
//	zipName := result.Bundle.ZipName()
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/proofgen/pkg/bundle"
	"github.com/matzehuels/proofgen/pkg/cache"
	"github.com/matzehuels/proofgen/pkg/diagram"
	"github.com/matzehuels/proofgen/pkg/diagram/archetype"
	"github.com/matzehuels/proofgen/pkg/diagram/layout"
	"github.com/matzehuels/proofgen/pkg/errors"
)

// =============================================================================
// Default Values - shared by the CLI and the server
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = layout.DefaultWidth

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = layout.DefaultHeight

	// DefaultScale is the raster scale for PNG output.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG      = "svg"
	FormatPNG      = "png"
	FormatPDF      = "pdf"
	FormatJSON     = "json"
	FormatDOT      = "dot"
	FormatNodelink = "nodelink"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:      true,
	FormatPNG:      true,
	FormatPDF:      true,
	FormatJSON:     true,
	FormatDOT:      true,
	FormatNodelink: true,
}

// AllFormats lists the formats in display order.
func AllFormats() []string {
	return []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON, FormatDOT, FormatNodelink}
}

// FileExt returns the file extension for a format's output, without the dot.
func FileExt(format string) string {
	switch format {
	case FormatNodelink:
		return "nodelink.svg"
	default:
		return format
	}
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one run. It supports JSON for API
// requests.
type Options struct {
	SystemType  string   `json:"system_type"`
	Problem     string   `json:"problem"`
	Formats     []string `json:"formats,omitempty"`
	Width       float64  `json:"width,omitempty"`
	Height      float64  `json:"height,omitempty"`
	Scale       float64  `json:"scale,omitempty"`
	PromptStyle string   `json:"prompt_style,omitempty"`
	Detailed    bool     `json:"detailed,omitempty"` // node-link output lists each node's lines
	Refresh     bool     `json:"refresh,omitempty"`  // bypass cached artifacts

	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Input  diagram.Input
	Title  string
	Accent string
	Kind   archetype.Kind
	Prompt string

	// Diagram is the in-memory render the artifacts derive from.
	Diagram diagram.Result

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Bundle *bundle.Bundle

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains timing and size information.
type Stats struct {
	RenderTime    time.Duration
	BundleTime    time.Duration
	ArtifactBytes int
}

// CacheInfo tracks which outputs came from the cache.
type CacheInfo struct {
	Hits      []string // formats served from cache
	RenderHit bool     // every requested format came from cache
	BundleHit bool
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid. Formats are case-sensitive;
// ValidateAndSetDefaults lowercases them first.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(AllFormats(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults trims the input, checks it, and fills in defaults.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	in := o.Input().Normalize()
	if err := in.Validate(); err != nil {
		return err
	}
	o.SystemType, o.Problem = in.SystemType, in.Problem

	if err := o.normalizeFormats(); err != nil {
		return err
	}

	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	style, err := bundle.ParsePromptStyle(o.PromptStyle)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "prompt style")
	}
	o.PromptStyle = string(style)
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

func (o *Options) normalizeFormats() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
		return nil
	}
	seen := make(map[string]bool, len(o.Formats))
	formats := make([]string, 0, len(o.Formats))
	for _, f := range o.Formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		if err := ValidateFormat(f); err != nil {
			return err
		}
		seen[f] = true
		formats = append(formats, f)
	}
	if len(formats) == 0 {
		formats = []string{FormatSVG}
	}
	o.Formats = formats
	return nil
}

// Input returns the request part of the options.
func (o *Options) Input() diagram.Input {
	return diagram.Input{SystemType: o.SystemType, Problem: o.Problem}
}

// Wants reports whether format was requested.
func (o *Options) Wants(format string) bool {
	return slices.Contains(o.Formats, format)
}

// InputHash identifies the normalized input in cache keys.
func (o *Options) InputHash() string {
	return cache.InputHash(o.SystemType, o.Problem)
}

// ArtifactKeyOpts returns cache key options for one format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format, Width: o.Width, Height: o.Height}
	switch format {
	case FormatPNG:
		opts.Scale = o.Scale
	case FormatDOT, FormatNodelink:
		opts.Detailed = o.Detailed
	}
	return opts
}

// BundleKeyOpts returns cache key options for the bundle.
func (o *Options) BundleKeyOpts() cache.BundleKeyOpts {
	return cache.BundleKeyOpts{PromptStyle: o.PromptStyle, Width: o.Width, Height: o.Height}
}

func (o *Options) String() string {
	return fmt.Sprintf("%q / %q %v", o.SystemType, o.Problem, o.Formats)
}
