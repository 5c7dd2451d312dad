// Package bundle assembles the "first build" file set for a generation
// request: documentation, the rendered diagram, image prompts, a static
// HTML scaffold and a TOML manifest.
//
// Files are kept in a fixed order so that listings, "copy all" output and
// ZIP archives are reproducible:
//
//	b, err := bundle.Build(in, res)
//	fmt.Print(b.Concat())
//	b.WriteZip(w)
package bundle

import (
	"slices"
	"strings"

	"github.com/matzehuels/proofgen/pkg/buildinfo"
	"github.com/matzehuels/proofgen/pkg/diagram"
	"github.com/matzehuels/proofgen/pkg/errors"
)

// Bundle-relative paths, in bundle order.
const (
	PathReadme         = "README.md"
	PathArchitecture   = "architecture.md"
	PathAssumptions    = "assumptions.md"
	PathDisclaimer     = "DISCLAIMER.md"
	PathDiagram        = "assets/system-image.svg"
	PathPrompt         = "assets/image-prompt.txt"
	PathNegativePrompt = "assets/negative-prompt.txt"
	PathIndex          = "static/index.html"
	PathStyles         = "static/styles.css"
)

// Paths returns every bundle path in order, manifest last.
func Paths() []string {
	return []string{
		PathReadme, PathArchitecture, PathAssumptions, PathDisclaimer,
		PathDiagram, PathPrompt, PathNegativePrompt,
		PathIndex, PathStyles,
		ManifestPath,
	}
}

// File is one bundle entry.
type File struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Bundle is an ordered set of generated files.
type Bundle struct {
	Name     string        `json:"name"`
	Input    diagram.Input `json:"input"`
	Prompt   string        `json:"prompt"`
	Manifest Manifest      `json:"manifest"`
	Files    []File        `json:"files"`
}

// Option configures [Build].
type Option func(*options)

type options struct {
	style PromptStyle
}

// WithPromptStyle selects the prompt written to assets/image-prompt.txt.
func WithPromptStyle(s PromptStyle) Option { return func(o *options) { o.style = s } }

// Build assembles the bundle for a rendered diagram. The input must be the
// one res was rendered from.
func Build(in diagram.Input, res diagram.Result, opts ...Option) (*Bundle, error) {
	o := options{style: PromptCanonical}
	for _, opt := range opts {
		opt(&o)
	}

	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if len(res.SVG) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "bundle needs a rendered diagram")
	}

	name := Slug(in.Problem)
	prompt := Prompt(o.style, in.SystemType, in.Problem)
	paths := Paths()

	index, err := renderIndex(name, in.Problem)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", PathIndex)
	}

	manifest := Manifest{
		Name:       name,
		SystemType: in.SystemType,
		Problem:    in.Problem,
		Archetype:  res.Kind,
		Title:      res.Title,
		Accent:     res.Accent,
		Generator:  buildinfo.Generator(),
		Files:      paths[:len(paths)-1],
	}
	manifestData, err := manifest.Encode()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode %s", ManifestPath)
	}

	contents := map[string]string{
		PathReadme: renderReadme(readmeData{
			Name:       name,
			SystemType: in.SystemType,
			Problem:    in.Problem,
			Files:      paths,
		}),
		PathArchitecture:   architectureDoc,
		PathAssumptions:    assumptionsDoc,
		PathDisclaimer:     disclaimerDoc,
		PathDiagram:        string(res.SVG),
		PathPrompt:         prompt,
		PathNegativePrompt: NegativePrompt,
		PathIndex:          index,
		PathStyles:         stylesCSS,
		ManifestPath:       string(manifestData),
	}

	b := &Bundle{
		Name:     name,
		Input:    in,
		Prompt:   prompt,
		Manifest: manifest,
		Files:    make([]File, 0, len(paths)),
	}
	for _, p := range paths {
		b.Files = append(b.Files, File{Path: p, Content: contents[p]})
	}
	return b, nil
}

// File returns the entry at path.
func (b *Bundle) File(path string) (File, bool) {
	i := slices.IndexFunc(b.Files, func(f File) bool { return f.Path == path })
	if i < 0 {
		return File{}, false
	}
	return b.Files[i], true
}

// Paths returns the bundle's file paths in order.
func (b *Bundle) Paths() []string {
	out := make([]string, len(b.Files))
	for i, f := range b.Files {
		out[i] = f.Path
	}
	return out
}

// Concat joins every file as "--- path ---\ncontent\n", separated by blank
// lines, for pasting the whole bundle at once.
func (b *Bundle) Concat() string {
	parts := make([]string, len(b.Files))
	for i, f := range b.Files {
		parts[i] = "--- " + f.Path + " ---\n" + f.Content + "\n"
	}
	return strings.Join(parts, "\n")
}
