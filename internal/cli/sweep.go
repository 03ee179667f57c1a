package cli

import (
	"github.com/spf13/cobra"

	"github.com/dcf21/astrolabe/pkg/config"
	"github.com/dcf21/astrolabe/pkg/sweep"
)

// sweepOpts holds the command-line flags for the sweep command.
type sweepOpts struct {
	output     string // output directory
	configPath string // TOML configuration file
	formats    string // comma-separated output formats
	workers    int    // parallel latitude workers
	noCache    bool   // disable the artifact cache
	refresh    bool   // regenerate even when cached
	plain      bool   // disable the progress display
}

// sweepCommand creates the sweep command for batch generation.
func (c *CLI) sweepCommand() *cobra.Command {
	var opts sweepOpts

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Generate astrolabes across the configured latitude grid",
		Long: `Generate all five parts of the astrolabe for every latitude in the
configured grid (by default every 5 degrees from pole to pole, plus 52
degrees north). Latitudes inside the forbidden equatorial band are skipped
and reported at the end.

Previously rendered artifacts are reused from the cache unless --refresh
is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSweep(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default from config)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), json, pdf, png (comma-separated)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "parallel latitude workers (default from config)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "regenerate artifacts even when cached")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "disable the live progress display")

	return cmd
}

// runSweep executes a full sweep, with a live progress display unless
// plain output was requested.
func (c *CLI) runSweep(cmd *cobra.Command, opts *sweepOpts) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.workers > 0 {
		cfg.Sweep.Workers = opts.workers
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	runOpts := sweep.Options{
		Config:    cfg,
		Formats:   parseFormats(opts.formats),
		OutputDir: opts.output,
		Refresh:   opts.refresh,
	}

	track := newProgress(c.Logger)

	var result *sweep.Result
	if opts.plain {
		result, err = runner.Run(cmd.Context(), runOpts)
	} else {
		result, err = runSweepTUI(cmd.Context(), runner, runOpts)
	}
	if err != nil {
		return err
	}

	track.done("Sweep complete")
	printSuccess("Generated %d artifacts across %d latitudes",
		len(result.Artifacts), countLatitudes(result))
	if result.CacheHits > 0 {
		printDetail("%d artifacts served from cache", result.CacheHits)
	}
	if len(result.Skipped) > 0 {
		printWarning("Skipped %d latitudes inside the forbidden band: %v",
			len(result.Skipped), result.Skipped)
	}
	printDetail("Run ID: %s", result.RunID)
	return nil
}

// countLatitudes counts the distinct latitudes that produced artifacts.
func countLatitudes(result *sweep.Result) int {
	seen := map[float64]bool{}
	for _, a := range result.Artifacts {
		seen[a.Latitude] = true
	}
	return len(seen)
}
