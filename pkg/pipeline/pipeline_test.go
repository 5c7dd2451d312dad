package pipeline

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/proofgen/pkg/bundle"
	"github.com/matzehuels/proofgen/pkg/cache"
	"github.com/matzehuels/proofgen/pkg/diagram/archetype"
	"github.com/matzehuels/proofgen/pkg/errors"
	"github.com/matzehuels/proofgen/pkg/observability"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"dot", false},
		{"nodelink", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{
		SystemType: "  DAO treasury ",
		Problem:    "\nVotes stall\t",
		Formats:    []string{"SVG", " json", "svg", ""},
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.SystemType != "DAO treasury" || opts.Problem != "Votes stall" {
		t.Errorf("input not trimmed: %q / %q", opts.SystemType, opts.Problem)
	}
	if !reflect.DeepEqual(opts.Formats, []string{"svg", "json"}) {
		t.Errorf("formats = %v", opts.Formats)
	}
	if opts.Width != DefaultWidth || opts.Height != DefaultHeight || opts.Scale != DefaultScale {
		t.Errorf("defaults = %vx%v @%v", opts.Width, opts.Height, opts.Scale)
	}
	if opts.PromptStyle != string(bundle.PromptCanonical) {
		t.Errorf("prompt style = %q", opts.PromptStyle)
	}
	if opts.Logger == nil {
		t.Error("logger not defaulted")
	}

	// Idempotent
	before := opts
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(before.Formats, opts.Formats) || before.Problem != opts.Problem {
		t.Error("second call changed options")
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"blank problem", Options{Problem: "   "}, errors.ErrCodeMissingProblem},
		{"bad format", Options{Problem: "x", Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"bad prompt style", Options{Problem: "x", PromptStyle: "baroque"}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{Problem: "x", Detailed: true}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if k := opts.ArtifactKeyOpts(FormatSVG); k.Scale != 0 || k.Detailed {
		t.Errorf("svg key opts carry unrelated fields: %+v", k)
	}
	if k := opts.ArtifactKeyOpts(FormatPNG); k.Scale != DefaultScale {
		t.Errorf("png key opts scale = %v", k.Scale)
	}
	if k := opts.ArtifactKeyOpts(FormatDOT); !k.Detailed {
		t.Error("dot key opts should carry Detailed")
	}
}

func TestFileExt(t *testing.T) {
	if FileExt(FormatSVG) != "svg" || FileExt(FormatNodelink) != "nodelink.svg" {
		t.Errorf("FileExt: svg=%q nodelink=%q", FileExt(FormatSVG), FileExt(FormatNodelink))
	}
}

func TestExecute(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	result, err := runner.Execute(context.Background(), Options{
		SystemType: "Lead intake bot",
		Problem:    "Leads go cold before anyone replies",
		Formats:    []string{"svg", "json", "dot"},
	})
	if err != nil {
		t.Fatal(err)
	}

	if result.Kind != archetype.Lead {
		t.Errorf("kind = %v, want lead", result.Kind)
	}
	if result.Title != "Lead generation pipeline" {
		t.Errorf("title = %q", result.Title)
	}
	if !strings.HasPrefix(result.Accent, "rgba(") {
		t.Errorf("accent = %q", result.Accent)
	}
	if len(result.Artifacts) != 3 {
		t.Fatalf("artifacts = %d, want 3", len(result.Artifacts))
	}
	if !strings.HasPrefix(string(result.Artifacts["svg"]), "<?xml") {
		t.Error("svg artifact missing prolog")
	}
	if !json.Valid(result.Artifacts["json"]) {
		t.Error("json artifact is not valid JSON")
	}
	if !strings.HasPrefix(string(result.Artifacts["dot"]), "digraph") {
		t.Errorf("dot artifact = %.40q", result.Artifacts["dot"])
	}

	if result.Bundle == nil {
		t.Fatal("no bundle")
	}
	if result.Bundle.Name != "leads-go-cold-before-anyone-replies" {
		t.Errorf("bundle name = %q", result.Bundle.Name)
	}
	f, ok := result.Bundle.File(bundle.PathDiagram)
	if !ok || f.Content != string(result.Artifacts["svg"]) {
		t.Error("bundle diagram differs from svg artifact")
	}
	if !strings.Contains(result.Prompt, "Leads go cold before anyone replies") {
		t.Errorf("prompt = %q", result.Prompt)
	}
	if result.Stats.ArtifactBytes == 0 {
		t.Error("ArtifactBytes not recorded")
	}
	if result.CacheInfo.RenderHit || result.CacheInfo.BundleHit {
		t.Error("null cache reported a hit")
	}
}

func TestExecuteDeterministic(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	opts := Options{SystemType: "custody", Problem: "Keys live on one laptop", Formats: []string{"svg", "json"}}

	a, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.Artifacts, b.Artifacts) {
		t.Error("artifacts differ between runs")
	}
	if a.Bundle.Concat() != b.Bundle.Concat() {
		t.Error("bundles differ between runs")
	}
}

func TestExecuteCaching(t *testing.T) {
	c := cache.NewMemoryCache(time.Hour, 0)
	runner := NewRunner(c, nil, nil)
	ctx := context.Background()
	opts := Options{SystemType: "workflow", Problem: "Approvals take days", Formats: []string{"svg", "dot"}}

	first, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(first.CacheInfo.Hits) != 0 || first.CacheInfo.BundleHit {
		t.Fatalf("first run hit cache: %+v", first.CacheInfo)
	}

	second, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.RenderHit || !second.CacheInfo.BundleHit {
		t.Errorf("second run missed cache: %+v", second.CacheInfo)
	}
	if !reflect.DeepEqual(second.CacheInfo.Hits, []string{"dot", "svg"}) {
		t.Errorf("hits = %v", second.CacheInfo.Hits)
	}
	if !reflect.DeepEqual(first.Artifacts, second.Artifacts) {
		t.Error("cached artifacts differ")
	}
	if first.Bundle.Concat() != second.Bundle.Concat() {
		t.Error("cached bundle differs")
	}
	if second.Bundle.Manifest.Archetype != archetype.Workflow {
		t.Errorf("cached manifest archetype = %v", second.Bundle.Manifest.Archetype)
	}

	opts.Refresh = true
	third, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(third.CacheInfo.Hits) != 0 || third.CacheInfo.BundleHit {
		t.Errorf("refresh run hit cache: %+v", third.CacheInfo)
	}
}

func TestExecuteInvalid(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	_, err := runner.Execute(context.Background(), Options{SystemType: "dao"})
	if !errors.Is(err, errors.ErrCodeMissingProblem) {
		t.Errorf("err = %v, want MISSING_PROBLEM", err)
	}
	if msg := errors.UserMessage(err); msg != errors.MissingProblemMessage {
		t.Errorf("user message = %q", msg)
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	observability.NoopCacheHooks

	mu       sync.Mutex
	kinds    []string
	rendered int
	bundles  []string
	hits     int
	misses   int
	sets     int
}

func (h *recordingHooks) OnClassify(_ context.Context, _ string, kind string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.kinds = append(h.kinds, kind)
}

func (h *recordingHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rendered++
}

func (h *recordingHooks) OnBundle(_ context.Context, name string, _ int, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.bundles = append(h.bundles, name)
}

func (h *recordingHooks) OnCacheHit(context.Context, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hits++
}

func (h *recordingHooks) OnCacheMiss(context.Context, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.misses++
}

func (h *recordingHooks) OnCacheSet(context.Context, string, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sets++
}

func TestExecuteHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(hooks)
	t.Cleanup(observability.Reset)

	runner := NewRunner(cache.NewMemoryCache(time.Hour, 0), nil, nil)
	opts := Options{SystemType: "DAO", Problem: "Quorum never reached", Formats: []string{"svg"}}
	for range 2 {
		if _, err := runner.Execute(context.Background(), opts); err != nil {
			t.Fatal(err)
		}
	}

	if !reflect.DeepEqual(hooks.kinds, []string{"dao", "dao"}) {
		t.Errorf("classify events = %v", hooks.kinds)
	}
	if hooks.rendered != 2 {
		t.Errorf("render events = %d", hooks.rendered)
	}
	if len(hooks.bundles) != 2 || hooks.bundles[0] != "quorum-never-reached" {
		t.Errorf("bundle events = %v", hooks.bundles)
	}
	// First run: svg + bundle miss and set. Second run: both hit.
	if hooks.misses != 2 || hooks.sets != 2 || hooks.hits != 2 {
		t.Errorf("cache events: hits=%d misses=%d sets=%d", hooks.hits, hooks.misses, hooks.sets)
	}
}
