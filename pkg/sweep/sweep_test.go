package sweep

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcf21/astrolabe/pkg/cache"
	"github.com/dcf21/astrolabe/pkg/config"
	"github.com/dcf21/astrolabe/pkg/errors"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	cfg := config.Default()
	cfg.Output.Dir = t.TempDir()
	cfg.Output.Formats = []string{"svg"}
	cfg.Sweep.Workers = 4
	return Options{Config: cfg, OutputDir: cfg.Output.Dir}
}

func quietRunner(c cache.Cache) *Runner {
	return NewRunner(c, log.New(io.Discard))
}

func TestLatitudesGrid(t *testing.T) {
	lats := Latitudes(config.Default().Sweep)

	// -90..90 at step 5 gives 37 values, plus the extra 52.
	require.Len(t, lats, 38)
	assert.Equal(t, -90.0, lats[0])
	assert.Equal(t, 90.0, lats[len(lats)-1])
	assert.Contains(t, lats, 52.0)

	for i := 1; i < len(lats); i++ {
		assert.Greater(t, lats[i], lats[i-1], "latitudes must be sorted and distinct")
	}
}

func TestLatitudesExtraDisabled(t *testing.T) {
	s := config.Default().Sweep
	s.ExtraLatitude = 0
	assert.Len(t, Latitudes(s), 37)
}

func TestLatitudesExtraOnGrid(t *testing.T) {
	s := config.Default().Sweep
	s.ExtraLatitude = 45
	lats := Latitudes(s)
	assert.Len(t, lats, 37, "an extra latitude already on the grid must not duplicate")
}

func TestArtifactName(t *testing.T) {
	assert.Equal(t, "rete_52N.svg", ArtifactName("rete", 52, "svg"))
	assert.Equal(t, "mother_back_35S.png", ArtifactName("mother_back", -35, "png"))
	assert.Equal(t, "rule_90N.json", ArtifactName("rule", 90, "json"))
	assert.Equal(t, "alidade_17.5N.pdf", ArtifactName("alidade", 17.5, "pdf"))
}

func TestRunGeneratesFullGrid(t *testing.T) {
	opts := testOptions(t)
	res, err := quietRunner(nil).Run(context.Background(), opts)
	require.NoError(t, err)

	// 38 latitudes minus the 5 inside the forbidden band, five plates each.
	assert.Len(t, res.Artifacts, 33*5)
	assert.Equal(t, []float64{-10, -5, 0, 5, 10}, res.Skipped)
	assert.NotEmpty(t, res.RunID)
	assert.Zero(t, res.CacheHits)

	for _, a := range res.Artifacts {
		info, err := os.Stat(a.Path)
		require.NoError(t, err, "artifact %s must exist on disk", a.Name)
		assert.EqualValues(t, a.Size, info.Size())
	}
}

func TestRunReteIsLatitudeInvariant(t *testing.T) {
	opts := testOptions(t)
	_, err := quietRunner(nil).Run(context.Background(), opts)
	require.NoError(t, err)

	a, err := os.ReadFile(filepath.Join(opts.OutputDir, "rete_52N.svg"))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(opts.OutputDir, "rete_30N.svg"))
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a, b), "rete must not depend on latitude")
}

func TestRunUsesCacheOnSecondPass(t *testing.T) {
	opts := testOptions(t)
	opts.Latitudes = []float64{30, 52}

	fc, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	defer fc.Close()
	r := quietRunner(fc)

	first, err := r.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Zero(t, first.CacheHits)

	second, err := r.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, len(second.Artifacts), second.CacheHits, "every artifact should come from cache")
	assert.Len(t, second.Artifacts, len(first.Artifacts))
}

func TestRunRefreshBypassesCache(t *testing.T) {
	opts := testOptions(t)
	opts.Latitudes = []float64{52}

	fc, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	defer fc.Close()
	r := quietRunner(fc)

	_, err = r.Run(context.Background(), opts)
	require.NoError(t, err)

	opts.Refresh = true
	res, err := r.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Zero(t, res.CacheHits)
}

// brokenCache accepts reads but fails every write.
type brokenCache struct{ cache.Cache }

func (c *brokenCache) Set(context.Context, string, []byte, time.Duration) error {
	return fmt.Errorf("disk full")
}

func TestRunSurvivesFailingCacheWrites(t *testing.T) {
	opts := testOptions(t)
	opts.Latitudes = []float64{52}

	r := quietRunner(&brokenCache{Cache: cache.NewNullCache()})
	res, err := r.Run(context.Background(), opts)
	require.NoError(t, err, "cache write failures must not fail the run")
	assert.Len(t, res.Artifacts, 5)
	assert.Zero(t, res.CacheHits)

	for _, a := range res.Artifacts {
		_, err := os.Stat(a.Path)
		assert.NoError(t, err)
	}
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	opts := testOptions(t)
	opts.Formats = []string{"webp"}

	_, err := quietRunner(nil).Run(context.Background(), opts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}

func TestRunOnlyForbiddenLatitudes(t *testing.T) {
	opts := testOptions(t)
	opts.Latitudes = []float64{-5, 0, 5}

	res, err := quietRunner(nil).Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Empty(t, res.Artifacts)
	assert.Equal(t, []float64{-5, 0, 5}, res.Skipped)
}

func TestRunIsDeterministic(t *testing.T) {
	opts := testOptions(t)
	opts.Latitudes = []float64{35}
	opts.Formats = []string{"json"}

	r := quietRunner(nil)
	_, err := r.Run(context.Background(), opts)
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(opts.OutputDir, "mother_back_35N.json"))
	require.NoError(t, err)

	_, err = r.Run(context.Background(), opts)
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(opts.OutputDir, "mother_back_35N.json"))
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second))
}
