// Package render turns composed plates into output artifacts.
//
// The SVG sink is the reference backend: every instruction maps to one SVG
// element and the output is byte-for-byte deterministic. JSON dumps the raw
// instruction stream for downstream tooling, PNG rasterises natively, and
// PDF delegates to rsvg-convert.
package render

import (
	"github.com/dcf21/astrolabe/pkg/config"
	"github.com/dcf21/astrolabe/pkg/errors"
	"github.com/dcf21/astrolabe/pkg/plate"
)

// unitsPerCM scales plate centimetres into SVG user units and PNG pixels.
const unitsPerCM = 10.0

// Option configures a renderer.
type Option func(*renderer)

type renderer struct {
	theme    config.Theme
	fontSize float64 // cm
	lineBase float64 // cm
	pngScale float64
	fontPath string
}

// WithTheme overrides the default black-on-white theme.
func WithTheme(t config.Theme) Option { return func(r *renderer) { r.theme = t } }

// WithLayout picks up the base font size and line width from the layout
// configuration.
func WithLayout(l config.Layout) Option {
	return func(r *renderer) {
		if l.FontSize > 0 {
			r.fontSize = l.FontSize
		}
		if l.LineWidth > 0 {
			r.lineBase = l.LineWidth
		}
	}
}

// WithPNGScale sets the raster resolution multiplier.
func WithPNGScale(scale float64) Option {
	return func(r *renderer) {
		if scale > 0 {
			r.pngScale = scale
		}
	}
}

// WithFontPath points the PNG sink at a TTF file. Without it, labels fall
// back to a built-in bitmap face.
func WithFontPath(path string) Option { return func(r *renderer) { r.fontPath = path } }

func newRenderer(opts ...Option) renderer {
	r := renderer{
		theme:    config.Default().Theme,
		fontSize: 0.32,
		lineBase: 0.02,
		pngScale: config.DefaultPNGScale,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Render produces the plate in the named format.
func Render(p *plate.Plate, format string, opts ...Option) ([]byte, error) {
	switch format {
	case "svg":
		return RenderSVG(p, opts...), nil
	case "json":
		return RenderJSON(p)
	case "png":
		return RenderPNG(p, opts...)
	case "pdf":
		return RenderPDF(p, opts...)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported output format %q", format)
	}
}

// paint resolves an instruction paint class to a theme colour.
func (r *renderer) paint(p plate.Paint) string {
	switch p {
	case plate.PaintText:
		return r.theme.Text
	case plate.PaintCurves:
		return r.theme.Curves
	case plate.PaintFaint:
		return r.theme.Faint
	case plate.PaintBackground:
		return "#ffffff"
	default:
		return r.theme.Lines
	}
}
