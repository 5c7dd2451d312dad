package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/proofgen/pkg/bundle"
	"github.com/matzehuels/proofgen/pkg/cache"
	"github.com/matzehuels/proofgen/pkg/diagram"
	"github.com/matzehuels/proofgen/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger, so one Runner
// can serve concurrent requests with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL applies to cache writes. Zero means cache.DefaultTTL.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs validate → classify → render → bundle.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	res, err := r.Diagram(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Input:   opts.Input(),
		Title:   res.Title,
		Accent:  res.Accent,
		Kind:    res.Kind,
		Diagram: res,
	}

	renderStart := time.Now()
	artifacts, hits, err := r.RenderWithCacheInfo(ctx, res, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	for _, data := range artifacts {
		result.Stats.ArtifactBytes += len(data)
	}
	result.CacheInfo.Hits = hits
	result.CacheInfo.RenderHit = len(hits) == len(opts.Formats)

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", len(hits),
		"duration", result.Stats.RenderTime)

	bundleStart := time.Now()
	b, bundleHit, err := r.BundleWithCacheInfo(ctx, res, opts)
	if err != nil {
		return nil, fmt.Errorf("bundle: %w", err)
	}
	result.Bundle = b
	result.Prompt = b.Prompt
	result.Stats.BundleTime = time.Since(bundleStart)
	result.CacheInfo.BundleHit = bundleHit

	opts.Logger.Info("assembled bundle",
		"name", b.Name,
		"files", len(b.Files),
		"duration", result.Stats.BundleTime)

	return result, nil
}

// Diagram validates opts and renders the SVG diagram. It never touches the
// cache: the render is cheap and every other output derives from it.
func (r *Runner) Diagram(ctx context.Context, opts Options) (diagram.Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return diagram.Result{}, err
	}

	res, err := diagram.RenderInput(opts.Input(), diagram.WithSize(opts.Width, opts.Height))
	if err != nil {
		return diagram.Result{}, err
	}
	observability.Pipeline().OnClassify(ctx, opts.SystemType, res.Kind.String())
	opts.Logger.Debug("classified input",
		"system_type", opts.SystemType,
		"template", res.Kind,
		"accent", res.Accent)
	return res, nil
}

// RenderWithCacheInfo renders every requested format concurrently. It
// returns the artifacts and the formats that were served from cache, in
// sorted order.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, res diagram.Result, opts Options) (map[string][]byte, []string, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	var (
		mu        sync.Mutex
		artifacts = make(map[string][]byte, len(opts.Formats))
		hits      []string
	)
	inputHash := opts.InputHash()

	g, gctx := errgroup.WithContext(ctx)
	for _, format := range opts.Formats {
		g.Go(func() error {
			key := r.Keyer.ArtifactKey(inputHash, opts.ArtifactKeyOpts(format))

			if !opts.Refresh {
				if data, ok := r.cacheGet(gctx, key); ok {
					mu.Lock()
					artifacts[format] = data
					hits = append(hits, format)
					mu.Unlock()
					return nil
				}
			}

			data, err := RenderFormat(gctx, res, format, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", format, err)
			}
			r.cacheSet(gctx, key, data)

			mu.Lock()
			artifacts[format] = data
			mu.Unlock()
			return nil
		})
	}
	err := g.Wait()
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, nil, err
	}

	sort.Strings(hits)
	return artifacts, hits, nil
}

// Render is RenderWithCacheInfo without the hit list.
func (r *Runner) Render(ctx context.Context, res diagram.Result, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, res, opts)
	return artifacts, err
}

// BundleWithCacheInfo assembles the repository bundle, reusing a cached
// copy when one exists.
func (r *Runner) BundleWithCacheInfo(ctx context.Context, res diagram.Result, opts Options) (*bundle.Bundle, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	key := r.Keyer.BundleKey(opts.InputHash(), opts.BundleKeyOpts())
	if !opts.Refresh {
		if data, ok := r.cacheGet(ctx, key); ok {
			var b bundle.Bundle
			if err := json.Unmarshal(data, &b); err == nil && len(b.Files) > 0 {
				observability.Pipeline().OnBundle(ctx, b.Name, len(b.Files), nil)
				return &b, true, nil
			}
			opts.Logger.Warn("discarding unreadable cached bundle", "key", key)
		}
	}

	b, err := bundle.Build(opts.Input(), res, bundle.WithPromptStyle(bundle.PromptStyle(opts.PromptStyle)))
	if err != nil {
		observability.Pipeline().OnBundle(ctx, "", 0, err)
		return nil, false, err
	}
	observability.Pipeline().OnBundle(ctx, b.Name, len(b.Files), nil)

	if data, err := json.Marshal(b); err == nil {
		r.cacheSet(ctx, key, data)
	}
	return b, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	hooks := observability.Cache()
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "key", key, "err", err)
		hit = false
	}
	if !hit {
		hooks.OnCacheMiss(ctx, cache.KeyType(key))
		return nil, false
	}
	hooks.OnCacheHit(ctx, cache.KeyType(key))
	return data, true
}

func (r *Runner) cacheSet(ctx context.Context, key string, data []byte) {
	ttl := r.TTL
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, cache.KeyType(key), len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
