package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dcf21/astrolabe/pkg/catalog"
	"github.com/dcf21/astrolabe/pkg/config"
	"github.com/dcf21/astrolabe/pkg/plate"
	"github.com/dcf21/astrolabe/pkg/render"
	"github.com/dcf21/astrolabe/pkg/sweep"
)

// plateOpts holds the command-line flags for the plate command.
type plateOpts struct {
	latitude   float64 // observing latitude in degrees, south negative
	output     string  // output directory
	configPath string  // TOML configuration file
	formats    string  // comma-separated output formats
}

// plateCommand creates the plate command for generating a single part.
func (c *CLI) plateCommand() *cobra.Command {
	opts := plateOpts{latitude: config.DefaultExtraLatitude}

	kinds := make([]string, 0, len(plate.Kinds())+1)
	for _, k := range plate.Kinds() {
		kinds = append(kinds, string(k))
	}
	kinds = append(kinds, "all")

	cmd := &cobra.Command{
		Use:   "plate [" + strings.Join(kinds, "|") + "]",
		Short: "Generate one part of the astrolabe for a single latitude",
		Long: `Generate one of the five parts of the astrolabe (or all of them) for a
single observing latitude and write it in the requested formats.

Southern latitudes are negative. Latitudes closer than 15 degrees to the
equator are rejected: the stereographic projection pushes the visible pole
off the plate there and no working instrument can be engraved.`,
		ValidArgs: kinds,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlate(cmd, args[0], &opts)
		},
	}

	cmd.Flags().Float64VarP(&opts.latitude, "latitude", "l", opts.latitude, "observing latitude in degrees (south negative)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default from config)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), json, pdf, png (comma-separated)")

	return cmd
}

// runPlate composes the requested plate kinds and writes one file per
// kind and format.
func (c *CLI) runPlate(cmd *cobra.Command, kindArg string, opts *plateOpts) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	formats := parseFormats(opts.formats)
	if len(formats) == 0 {
		formats = cfg.Output.Formats
	}
	for _, f := range formats {
		if err := config.ValidateFormat(f); err != nil {
			return err
		}
	}

	outputDir := opts.output
	if outputDir == "" {
		outputDir = cfg.Output.Dir
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}

	stars, err := loadStars(cfg)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(cmd.Context(), fmt.Sprintf("Projecting latitude %g", opts.latitude))
	spinner.Start()

	composer, err := plate.NewComposer(opts.latitude, cfg, stars)
	if err != nil {
		spinner.StopWithError(err.Error())
		return err
	}

	kinds := plate.Kinds()
	if kindArg != "all" {
		kinds = []plate.Kind{plate.Kind(kindArg)}
	}

	renderOpts := []render.Option{
		render.WithTheme(cfg.Theme),
		render.WithLayout(cfg.Layout),
		render.WithPNGScale(cfg.Output.PNGScale),
	}
	if cfg.Output.FontPath != "" {
		renderOpts = append(renderOpts, render.WithFontPath(cfg.Output.FontPath))
	}

	logger := loggerFromContext(cmd.Context())

	var paths []string
	var instructions int
	for _, kind := range kinds {
		p, err := composer.Compose(kind)
		if err != nil {
			spinner.StopWithError(err.Error())
			return err
		}
		instructions += len(p.Instructions)
		logger.Debugf("Composed %s: %d instructions", kind, len(p.Instructions))

		for _, format := range formats {
			data, err := render.Render(p, format, renderOpts...)
			if err != nil {
				spinner.StopWithError(err.Error())
				return err
			}
			path := filepath.Join(outputDir, sweep.ArtifactName(kind, opts.latitude, format))
			if err := os.WriteFile(path, data, 0o644); err != nil {
				spinner.StopWithError(err.Error())
				return err
			}
			paths = append(paths, path)
		}
	}

	spinner.StopWithSuccess(fmt.Sprintf("Generated %d file(s) for latitude %g", len(paths), opts.latitude))
	printArtifactStats(instructions, formats, false)
	for _, path := range paths {
		printFile(path)
	}
	if kindArg != "all" {
		printNextStep("Generate the full grid", "astrolabe sweep")
	}
	return nil
}

// loadStars resolves the star list for the rete: an explicit catalogue path
// wins over the embedded list.
func loadStars(cfg config.Config) ([]catalog.Star, error) {
	if cfg.Rete.CatalogPath != "" {
		return catalog.Load(cfg.Rete.CatalogPath)
	}
	return catalog.Embedded(), nil
}
