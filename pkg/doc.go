// Package pkg provides the core libraries for proofgen, which turns a system
// type and a one-sentence problem statement into a proof-of-concept
// repository bundle built around a deterministic architecture diagram.
//
// # Overview
//
// The pkg directory is organized into four areas:
//
//  1. [diagram] - Domain logic (classification, accent color, layout, SVG)
//  2. [bundle] - The ten-file repository bundle and its ZIP archive
//  3. [pipeline] - Orchestration (diagram → artifacts → bundle) with caching
//  4. Infrastructure: [cache], [session], [config], [server], [observability]
//
// # Architecture
//
// The typical data flow through proofgen:
//
//	system type + problem
//	         ↓
//	    [diagram/archetype] (pick one of six templates)
//	         ↓
//	    [diagram/styles] (FNV-1a accent from the input pair)
//	         ↓
//	    [diagram/layout] (boxes and arrows on a 1200×675 grid)
//	         ↓
//	    [diagram/sink] (SVG, layout JSON) → [render] (PNG/PDF)
//	         ↓
//	    [bundle] (README, docs, prompts, static page, proof.toml)
//
// # Quick Start
//
//	res, err := diagram.Render("DAO treasury", "Votes stall for weeks")
//	if err != nil {
//	    return err
//	}
//	b, err := bundle.Build(diagram.Input{SystemType: "DAO treasury", Problem: "Votes stall for weeks"}, res)
//	if err != nil {
//	    return err
//	}
//	f, _ := os.Create(b.ZipName())
//	defer f.Close()
//	return b.WriteZip(f)
//
// # Package Organization
//
// ## Diagram
//
// [diagram] - Single entry point that classifies, colors, lays out and
// renders. The same input always yields byte-identical SVG.
//
//   - [diagram/archetype]: Templates and keyword classification
//   - [diagram/styles]: Accent palette and XML escaping
//   - [diagram/layout]: Grid placement of boxes and arrows
//   - [diagram/sink]: SVG and JSON output
//   - [diagram/nodelink]: Graphviz DOT and node-link SVG of the same boxes
//
// [render] - SVG to PNG/PDF conversion via rsvg-convert.
//
// ## Bundle
//
// [bundle] - Builds the ordered file set, the image prompts, the repository
// slug and a reproducible ZIP archive.
//
// ## Orchestration
//
// [pipeline] - Runs diagram, artifact rendering and bundling with per-format
// caching. Used by both the CLI and the HTTP server.
//
// ## Infrastructure
//
// [cache] - Content-addressed artifact cache with file, memory, Redis and
// null backends.
//
// [session] - Remembers the last request. File, memory, Redis and MongoDB
// backends.
//
// [config] - TOML configuration with environment overrides.
//
// [server] - HTTP API and embedded dashboard.
//
// [observability] - Global hooks for render, cache, session and HTTP events.
//
// [errors] - Coded errors and input validation shared by every entry point.
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/diagram/...            # Specific package
//	go test -run Example                 # Examples only
//
// Redis and MongoDB tests run only when PROOFGEN_TEST_REDIS or
// PROOFGEN_TEST_MONGO point at a live server.
//
// [diagram]: https://pkg.go.dev/github.com/matzehuels/proofgen/pkg/diagram
// [diagram/archetype]: https://pkg.go.dev/github.com/matzehuels/proofgen/pkg/diagram/archetype
// [diagram/styles]: https://pkg.go.dev/github.com/matzehuels/proofgen/pkg/diagram/styles
// [diagram/layout]: https://pkg.go.dev/github.com/matzehuels/proofgen/pkg/diagram/layout
// [diagram/sink]: https://pkg.go.dev/github.com/matzehuels/proofgen/pkg/diagram/sink
// [diagram/nodelink]: https://pkg.go.dev/github.com/matzehuels/proofgen/pkg/diagram/nodelink
// [render]: https://pkg.go.dev/github.com/matzehuels/proofgen/pkg/render
// [bundle]: https://pkg.go.dev/github.com/matzehuels/proofgen/pkg/bundle
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/proofgen/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/proofgen/pkg/cache
// [session]: https://pkg.go.dev/github.com/matzehuels/proofgen/pkg/session
// [config]: https://pkg.go.dev/github.com/matzehuels/proofgen/pkg/config
// [server]: https://pkg.go.dev/github.com/matzehuels/proofgen/pkg/server
// [observability]: https://pkg.go.dev/github.com/matzehuels/proofgen/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/proofgen/pkg/errors
package pkg
