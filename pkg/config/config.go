// Package config defines the immutable configuration value threaded through
// a generation run.
//
// A single Config drives the projector, the plate composers and the sweep
// driver, ensuring the five physical pieces produced for one latitude share
// identical layout constants and therefore nest when assembled. Configs are
// loaded once, validated once, and never mutated afterwards.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/dcf21/astrolabe/pkg/errors"
)

// Default values. These are the single source of truth shared by the CLI
// and the sweep driver.
const (
	// DefaultOuterRadius is the outer radius of the astrolabe in plate
	// units (centimetres on the printed page).
	DefaultOuterRadius = 8.5

	// DefaultRingGapFraction is the spacing between concentric scale rings
	// as a fraction of the outer radius.
	DefaultRingGapFraction = 0.07

	// DefaultObliquity is the inclination of the ecliptic in degrees.
	DefaultObliquity = 23.44

	// DefaultCentreHoleScale scales the central pivot hole relative to the
	// ring gap.
	DefaultCentreHoleScale = 0.24

	// DefaultTabHalfWidth is the angular half-width, in degrees, of the tab
	// which slots the climate into the mother.
	DefaultTabHalfWidth = 5.0

	// DefaultSweepStep is the latitude spacing of the default sweep, degrees.
	DefaultSweepStep = 5.0

	// DefaultExtraLatitude is generated in addition to the regular grid.
	// 52 degrees north is the classic climate engraved on most surviving
	// European instruments.
	DefaultExtraLatitude = 52.0

	// DefaultMagnitudeLimit excludes catalogue stars fainter than this from
	// the rete.
	DefaultMagnitudeLimit = 4.0

	// DefaultEclipticStep is the sampling interval of the ecliptic curve in
	// degrees of ecliptic longitude.
	DefaultEclipticStep = 2.0

	// DefaultOutputDir receives the generated artifacts.
	DefaultOutputDir = "output"

	// DefaultPNGScale is the raster scale factor for PNG output.
	DefaultPNGScale = 2.0
)

// DefaultFormats are rendered when no formats are configured.
var DefaultFormats = []string{"svg"}

// Layout holds the shared geometric constants for all five plates of one run.
type Layout struct {
	OuterRadius     float64 `toml:"outer_radius"`
	RingGapFraction float64 `toml:"ring_gap_fraction"`
	Obliquity       float64 `toml:"obliquity"`
	CentreHoleScale float64 `toml:"centre_hole_scale"`
	TabHalfWidth    float64 `toml:"tab_half_width"`
	FontSize        float64 `toml:"font_size"`
	LineWidth       float64 `toml:"line_width"`
}

// RingGap returns the spacing between concentric rings in plate units.
func (l Layout) RingGap() float64 { return l.OuterRadius * l.RingGapFraction }

// Sweep configures the latitude sweep driver.
type Sweep struct {
	MinLatitude   float64 `toml:"min_latitude"`
	MaxLatitude   float64 `toml:"max_latitude"`
	Step          float64 `toml:"step"`
	ExtraLatitude float64 `toml:"extra_latitude"` // 0 disables
	Workers       int     `toml:"workers"`
}

// Output configures artifact emission.
type Output struct {
	Dir      string   `toml:"dir"`
	Formats  []string `toml:"formats"`
	PNGScale float64  `toml:"png_scale"`
	FontPath string   `toml:"font_path"` // optional TTF for PNG labels
	CacheDir string   `toml:"cache_dir"` // empty disables artifact caching
}

// Theme holds the stroke and text colors as "#rrggbb" strings.
type Theme struct {
	Lines  string `toml:"lines"`
	Text   string `toml:"text"`
	Curves string `toml:"curves"` // almucantars and azimuth arcs
	Faint  string `toml:"faint"`
}

// Rete configures star selection and ecliptic sampling.
type Rete struct {
	MagnitudeLimit float64 `toml:"magnitude_limit"`
	EclipticStep   float64 `toml:"ecliptic_step"`
	CatalogPath    string  `toml:"catalog_path"` // empty uses the embedded list
}

// Config is the complete configuration for a generation run.
type Config struct {
	Layout Layout `toml:"layout"`
	Sweep  Sweep  `toml:"sweep"`
	Output Output `toml:"output"`
	Theme  Theme  `toml:"theme"`
	Rete   Rete   `toml:"rete"`
}

// Default returns a fully populated configuration.
func Default() Config {
	return Config{
		Layout: Layout{
			OuterRadius:     DefaultOuterRadius,
			RingGapFraction: DefaultRingGapFraction,
			Obliquity:       DefaultObliquity,
			CentreHoleScale: DefaultCentreHoleScale,
			TabHalfWidth:    DefaultTabHalfWidth,
			FontSize:        0.32,
			LineWidth:       0.02,
		},
		Sweep: Sweep{
			MinLatitude:   -90,
			MaxLatitude:   90,
			Step:          DefaultSweepStep,
			ExtraLatitude: DefaultExtraLatitude,
			Workers:       1,
		},
		Output: Output{
			Dir:      DefaultOutputDir,
			Formats:  append([]string(nil), DefaultFormats...),
			PNGScale: DefaultPNGScale,
		},
		Theme: Theme{
			Lines:  "#000000",
			Text:   "#000000",
			Curves: "#bfbfbf",
			Faint:  "#bfbfbf",
		},
		Rete: Rete{
			MagnitudeLimit: DefaultMagnitudeLimit,
			EclipticStep:   DefaultEclipticStep,
		},
	}
}

// Load reads a TOML configuration file and merges it over the defaults.
// A missing path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	"svg":  true,
	"png":  true,
	"pdf":  true,
	"json": true,
}

// ValidateFormat checks that a single format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// Validate checks the configuration for values no run could succeed with.
func (c Config) Validate() error {
	if c.Layout.OuterRadius <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "layout.outer_radius must be positive")
	}
	if c.Layout.RingGapFraction <= 0 || c.Layout.RingGapFraction >= 0.5 {
		return errors.New(errors.ErrCodeInvalidConfig, "layout.ring_gap_fraction must be in (0, 0.5)")
	}
	if c.Layout.Obliquity <= 0 || c.Layout.Obliquity >= 90 {
		return errors.New(errors.ErrCodeInvalidConfig, "layout.obliquity must be in (0, 90)")
	}
	if c.Sweep.Step <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "sweep.step must be positive")
	}
	if c.Sweep.MinLatitude > c.Sweep.MaxLatitude {
		return errors.New(errors.ErrCodeInvalidConfig, "sweep.min_latitude exceeds sweep.max_latitude")
	}
	if c.Sweep.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "sweep.workers must not be negative")
	}
	if c.Rete.EclipticStep <= 0 || c.Rete.EclipticStep > 2 {
		// The design rule is at least one sample per 2 degrees of ecliptic
		// longitude, to bound visible faceting.
		return errors.New(errors.ErrCodeInvalidConfig, "rete.ecliptic_step must be in (0, 2]")
	}
	for _, f := range c.Output.Formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}
