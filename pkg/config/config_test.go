package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dcf21/astrolabe/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
}

func TestLoadMissingPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "astrolabe.toml")
	data := `
[layout]
outer_radius = 10.0

[sweep]
step = 10.0
extra_latitude = 0.0

[output]
formats = ["svg", "json"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 10.0, cfg.Layout.OuterRadius)
	require.Equal(t, 10.0, cfg.Sweep.Step)
	require.Equal(t, []string{"svg", "json"}, cfg.Output.Formats)
	// Untouched sections keep their defaults.
	require.Equal(t, Default().Theme, cfg.Theme)
	require.Equal(t, DefaultMagnitudeLimit, cfg.Rete.MagnitudeLimit)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero outer radius", func(c *Config) { c.Layout.OuterRadius = 0 }},
		{"ring gap too large", func(c *Config) { c.Layout.RingGapFraction = 0.6 }},
		{"obliquity out of range", func(c *Config) { c.Layout.Obliquity = 90 }},
		{"zero step", func(c *Config) { c.Sweep.Step = 0 }},
		{"inverted range", func(c *Config) { c.Sweep.MinLatitude = 50; c.Sweep.MaxLatitude = -50 }},
		{"negative workers", func(c *Config) { c.Sweep.Workers = -1 }},
		{"ecliptic step too coarse", func(c *Config) { c.Rete.EclipticStep = 5 }},
		{"bad format", func(c *Config) { c.Output.Formats = []string{"gif"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	require.NoError(t, ValidateFormat("svg"))
	err := ValidateFormat("bmp")
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}
