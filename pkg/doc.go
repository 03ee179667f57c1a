// Package pkg provides the core libraries for astrolabe generation.
//
// # Overview
//
// Astrolabe computes the stereographic projection of the celestial sphere
// for an observing latitude and turns it into the five printable parts of
// a working planispheric astrolabe. The pkg directory is organized into
// three main areas:
//
//  1. Geometry ([projection], [catalog]) - the maths and the star data
//  2. Composition ([plate]) - turning geometry into drawing instructions
//  3. Output ([render], [sweep], [cache]) - artifacts and batch runs
//
// # Architecture
//
// The typical data flow:
//
//	latitude + layout config
//	         ↓
//	    [projection] package (stereographic projection, curve generators)
//	         ↓
//	    [plate] package (mother, rete, rule, alidade composers)
//	         ↓
//	    [render] package (SVG, JSON, PNG, PDF sinks)
//	         ↓
//	    [sweep] package (latitude grid, artifact files)
//
// # Quick Start
//
// Compose and render one rete:
//
//	import (
//	    "github.com/dcf21/astrolabe/pkg/catalog"
//	    "github.com/dcf21/astrolabe/pkg/config"
//	    "github.com/dcf21/astrolabe/pkg/plate"
//	    "github.com/dcf21/astrolabe/pkg/render"
//	)
//
//	cfg := config.Default()
//	composer, _ := plate.NewComposer(52, cfg, catalog.Embedded())
//	p, _ := composer.Compose(plate.Rete)
//	svg, _ := render.Render(p, "svg", render.WithTheme(cfg.Theme))
//
// # Main Packages
//
// [projection] - The stereographic projection from the hidden celestial
// pole onto the equatorial plane, plus the closed-form circles it induces:
// almucantars, azimuth arcs, declination parallels, and the ecliptic.
//
// [catalog] - The bright star list plotted on the rete, with an embedded
// default catalogue.
//
// [plate] - Composers for the five parts of the instrument. Each produces
// a flat, renderer-independent instruction list.
//
// [config] - TOML configuration covering layout constants, the sweep grid,
// output formats, and theming.
//
// [render] - Output sinks. SVG is the deterministic reference backend;
// JSON dumps the instruction stream; PNG rasterises natively; PDF shells
// out to rsvg-convert.
//
// [sweep] - The batch driver generating astrolabes across a latitude grid
// with parallel workers and artifact caching.
//
// [cache] - Content-addressed artifact cache with file-backed and no-op
// implementations.
//
// [errors] - Coded errors shared across the module, matched with
// errors.Is against stable codes.
//
// [observability] - Hook interfaces for instrumenting sweeps and cache
// operations without coupling the core packages to a metrics backend.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...               # All tests
//	go test ./pkg/projection/...    # Specific package
//
// [projection]: https://pkg.go.dev/github.com/dcf21/astrolabe/pkg/projection
// [catalog]: https://pkg.go.dev/github.com/dcf21/astrolabe/pkg/catalog
// [plate]: https://pkg.go.dev/github.com/dcf21/astrolabe/pkg/plate
// [config]: https://pkg.go.dev/github.com/dcf21/astrolabe/pkg/config
// [render]: https://pkg.go.dev/github.com/dcf21/astrolabe/pkg/render
// [sweep]: https://pkg.go.dev/github.com/dcf21/astrolabe/pkg/sweep
// [cache]: https://pkg.go.dev/github.com/dcf21/astrolabe/pkg/cache
// [errors]: https://pkg.go.dev/github.com/dcf21/astrolabe/pkg/errors
// [observability]: https://pkg.go.dev/github.com/dcf21/astrolabe/pkg/observability
package pkg
