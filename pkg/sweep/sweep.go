// Package sweep drives batch generation of astrolabes across a grid of
// latitudes.
//
// A sweep walks the configured latitude grid, composes all five plates for
// each latitude that admits a stereographic projection, renders them in
// every requested format and writes the artifacts to the output directory.
// Latitudes inside the forbidden equatorial band are skipped and reported,
// never treated as failures.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely share one Runner.
package sweep

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dcf21/astrolabe/pkg/cache"
	"github.com/dcf21/astrolabe/pkg/catalog"
	"github.com/dcf21/astrolabe/pkg/config"
	"github.com/dcf21/astrolabe/pkg/errors"
	"github.com/dcf21/astrolabe/pkg/observability"
	"github.com/dcf21/astrolabe/pkg/plate"
	"github.com/dcf21/astrolabe/pkg/render"
)

// Options parameterizes one sweep run.
type Options struct {
	// Config drives layout, star selection and rendering for every
	// latitude of the run.
	Config config.Config

	// Latitudes overrides the grid derived from Config.Sweep. Leave nil
	// to sweep the configured grid.
	Latitudes []float64

	// Formats overrides Config.Output.Formats.
	Formats []string

	// OutputDir overrides Config.Output.Dir.
	OutputDir string

	// Refresh bypasses cache reads, forcing every artifact to be
	// regenerated. Fresh results are still written back to the cache.
	Refresh bool
}

// ValidateAndSetDefaults fills unset fields from the config and rejects
// unusable values.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Latitudes == nil {
		o.Latitudes = Latitudes(o.Config.Sweep)
	}
	if len(o.Formats) == 0 {
		o.Formats = o.Config.Output.Formats
	}
	if len(o.Formats) == 0 {
		o.Formats = append([]string(nil), config.DefaultFormats...)
	}
	for _, f := range o.Formats {
		if err := config.ValidateFormat(f); err != nil {
			return err
		}
	}
	if o.OutputDir == "" {
		o.OutputDir = o.Config.Output.Dir
	}
	if o.OutputDir == "" {
		o.OutputDir = config.DefaultOutputDir
	}
	return nil
}

// Artifact describes one rendered file written by a sweep.
type Artifact struct {
	Name      string
	Path      string
	Kind      plate.Kind
	Latitude  float64
	Format    string
	Size      int
	FromCache bool
}

// Result summarizes a completed sweep.
type Result struct {
	RunID     string
	Artifacts []Artifact
	Skipped   []float64 // latitudes inside the forbidden band
	CacheHits int
	Duration  time.Duration
}

// Runner executes sweeps with artifact caching.
//
// If Cache is nil artifacts are always regenerated; if Logger is nil the
// default logger is used.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and logger, substituting
// a NullCache and the default logger for nil arguments.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Latitudes builds the grid of observing latitudes for a sweep: the
// regular steps from MinLatitude to MaxLatitude inclusive, plus the extra
// latitude when one is configured. The result is sorted ascending and free
// of duplicates. Latitudes inside the forbidden band are included; the
// runner skips them at execution time so the caller sees them reported.
func Latitudes(s config.Sweep) []float64 {
	step := s.Step
	if step <= 0 {
		step = config.DefaultSweepStep
	}

	var lats []float64
	for i := 0; ; i++ {
		v := s.MinLatitude + float64(i)*step
		if v > s.MaxLatitude+1e-9 {
			break
		}
		lats = append(lats, v)
	}

	if s.ExtraLatitude != 0 {
		found := false
		for _, v := range lats {
			if math.Abs(v-s.ExtraLatitude) < 1e-9 {
				found = true
				break
			}
		}
		if !found {
			lats = append(lats, s.ExtraLatitude)
		}
	}

	sort.Float64s(lats)
	return lats
}

// ArtifactName returns the canonical file name for one rendered plate,
// e.g. "rete_52N.svg".
func ArtifactName(kind plate.Kind, latitude float64, format string) string {
	hemi := "N"
	if latitude < 0 {
		hemi = "S"
	}
	return fmt.Sprintf("%s_%g%s.%s", kind, math.Abs(latitude), hemi, format)
}

// Run executes a complete sweep and returns the generated artifacts.
//
// Latitudes rejected with LATITUDE_OUT_OF_RANGE are recorded in
// Result.Skipped and the sweep continues; any other error aborts the run.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	start := time.Now()
	result := &Result{RunID: uuid.NewString()}
	logger := r.Logger.With("run", result.RunID[:8])

	stars, err := r.loadStars(opts.Config.Rete)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create output dir %s", opts.OutputDir)
	}

	renderOpts := renderOptions(opts.Config)

	logger.Info("starting sweep",
		"latitudes", len(opts.Latitudes),
		"formats", opts.Formats,
		"output", opts.OutputDir)
	observability.Sweep().OnSweepStart(ctx, result.RunID, len(opts.Latitudes))

	workers := opts.Config.Sweep.Workers
	if workers <= 0 {
		workers = 1
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, lat := range opts.Latitudes {
		lat := lat
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			observability.Sweep().OnLatitudeStart(gctx, lat)
			latStart := time.Now()

			artifacts, err := r.runLatitude(gctx, lat, stars, opts, renderOpts)
			if err != nil {
				if errors.Is(err, errors.ErrCodeLatitudeOutOfRange) {
					logger.Warn("skipping latitude", "latitude", lat, "reason", err)
					observability.Sweep().OnLatitudeSkipped(gctx, lat, err.Error())
					mu.Lock()
					result.Skipped = append(result.Skipped, lat)
					mu.Unlock()
					return nil
				}
				return fmt.Errorf("latitude %g: %w", lat, err)
			}

			hits := 0
			for _, a := range artifacts {
				if a.FromCache {
					hits++
				}
			}

			mu.Lock()
			result.Artifacts = append(result.Artifacts, artifacts...)
			result.CacheHits += hits
			mu.Unlock()

			logger.Debug("generated latitude",
				"latitude", lat,
				"artifacts", len(artifacts),
				"duration", time.Since(latStart))
			observability.Sweep().OnLatitudeComplete(gctx, lat, len(artifacts), time.Since(latStart))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		observability.Sweep().OnSweepComplete(ctx, result.RunID, len(result.Artifacts), time.Since(start), err)
		return nil, err
	}

	sort.Slice(result.Artifacts, func(i, j int) bool {
		return result.Artifacts[i].Name < result.Artifacts[j].Name
	})
	sort.Float64s(result.Skipped)
	result.Duration = time.Since(start)

	logger.Info("sweep complete",
		"artifacts", len(result.Artifacts),
		"skipped", len(result.Skipped),
		"cacheHits", result.CacheHits,
		"duration", result.Duration)
	observability.Sweep().OnSweepComplete(ctx, result.RunID, len(result.Artifacts), result.Duration, nil)

	return result, nil
}

// runLatitude composes and renders all five plates for one latitude.
func (r *Runner) runLatitude(ctx context.Context, lat float64, stars []catalog.Star, opts Options, renderOpts []render.Option) ([]Artifact, error) {
	composer, err := plate.NewComposer(lat, opts.Config, stars)
	if err != nil {
		return nil, err
	}

	plates, err := composer.ComposeAll()
	if err != nil {
		return nil, err
	}

	artifacts := make([]Artifact, 0, len(plates)*len(opts.Formats))
	for _, p := range plates {
		for _, format := range opts.Formats {
			data, hit, err := r.renderCached(ctx, p, format, opts, renderOpts)
			if err != nil {
				return nil, err
			}

			name := ArtifactName(p.Kind, lat, format)
			path := filepath.Join(opts.OutputDir, name)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
			}

			artifacts = append(artifacts, Artifact{
				Name:      name,
				Path:      path,
				Kind:      p.Kind,
				Latitude:  lat,
				Format:    format,
				Size:      len(data),
				FromCache: hit,
			})
		}
	}
	return artifacts, nil
}

// renderCached renders one plate in one format, consulting the artifact
// cache first. Artifacts never expire: the key covers every input that
// affects the bytes, so a stale entry is impossible.
func (r *Runner) renderCached(ctx context.Context, p *plate.Plate, format string, opts Options, renderOpts []render.Option) ([]byte, bool, error) {
	key := cache.ArtifactKey(string(p.Kind), p.Latitude, format, opts.Config)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, key)
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, key)
	}

	data, err := render.Render(p, format, renderOpts...)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, data, 0); err != nil {
		// A broken cache degrades to regeneration, never to a failed run.
		r.Logger.Debug("cache write failed", "key", key, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, key, len(data))
	}
	return data, false, nil
}

// loadStars resolves the star list: an explicit catalogue path wins over
// the embedded list.
func (r *Runner) loadStars(cfg config.Rete) ([]catalog.Star, error) {
	if cfg.CatalogPath != "" {
		return catalog.Load(cfg.CatalogPath)
	}
	return catalog.Embedded(), nil
}

// renderOptions translates the run configuration into sink options shared
// by every plate of the sweep.
func renderOptions(cfg config.Config) []render.Option {
	opts := []render.Option{
		render.WithTheme(cfg.Theme),
		render.WithLayout(cfg.Layout),
		render.WithPNGScale(cfg.Output.PNGScale),
	}
	if cfg.Output.FontPath != "" {
		opts = append(opts, render.WithFontPath(cfg.Output.FontPath))
	}
	return opts
}
