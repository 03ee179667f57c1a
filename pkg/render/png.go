package render

import (
	"bytes"
	"image/png"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/dcf21/astrolabe/pkg/errors"
	"github.com/dcf21/astrolabe/pkg/plate"
)

// RenderPNG rasterises a plate natively. Labels use the TTF configured
// with WithFontPath, falling back to a small bitmap face.
func RenderPNG(p *plate.Plate, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)
	k := unitsPerCM * r.pngScale
	size := int(math.Ceil(2 * p.Extent * k))

	dc := gg.NewContext(size, size)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	ttf, err := r.loadFont()
	if err != nil {
		return nil, err
	}
	canvas := pngCanvas{r: &r, dc: dc, k: k, extent: p.Extent, ttf: ttf, faces: map[float64]font.Face{}}

	for _, ins := range p.Instructions {
		if err := canvas.draw(ins); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderBackend, err, "failed to encode png")
	}
	return buf.Bytes(), nil
}

// loadFont parses the configured TTF. A nil return with nil error means no
// font was configured and labels use the bitmap fallback.
func (r *renderer) loadFont() (*truetype.Font, error) {
	if r.fontPath == "" {
		return nil, nil
	}
	data, err := os.ReadFile(r.fontPath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "failed to read font %s", r.fontPath)
	}
	parsed, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderBackend, err, "failed to parse font %s", r.fontPath)
	}
	return parsed, nil
}

type pngCanvas struct {
	r      *renderer
	dc     *gg.Context
	k      float64 // pixels per centimetre
	extent float64
	ttf    *truetype.Font
	faces  map[float64]font.Face
}

// face returns a cached font face scaled by the label's size multiplier.
func (c pngCanvas) face(size float64) font.Face {
	if c.ttf == nil {
		return basicfont.Face7x13
	}
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(c.ttf, &truetype.Options{
		Size:    size * c.r.fontSize * c.k,
		Hinting: font.HintingNone,
	})
	c.faces[size] = f
	return f
}

func (c pngCanvas) px(x float64) float64 { return (c.extent + x) * c.k }
func (c pngCanvas) py(y float64) float64 { return (c.extent + y) * c.k }

func (c pngCanvas) stroke(width float64, dotted bool, paint plate.Paint) {
	if width <= 0 {
		width = 1
	}
	c.dc.SetHexColor(c.r.paint(paint))
	c.dc.SetLineWidth(width * c.r.lineBase * c.k)
	if dotted {
		c.dc.SetDash(0.1*c.k, 0.1*c.k)
	} else {
		c.dc.SetDash()
	}
	c.dc.Stroke()
}

func (c pngCanvas) draw(ins plate.Instruction) error {
	switch v := ins.(type) {
	case plate.StrokeCircle:
		c.dc.DrawCircle(c.px(v.CX), c.py(v.CY), v.R*c.k)
		c.stroke(v.Width, v.Dotted, v.Paint)

	case plate.StrokeArc:
		c.dc.DrawArc(c.px(v.CX), c.py(v.CY), v.R*c.k, v.From, v.To)
		c.stroke(v.Width, v.Dotted, v.Paint)

	case plate.StrokeLine:
		c.dc.DrawLine(c.px(v.X1), c.py(v.Y1), c.px(v.X2), c.py(v.Y2))
		c.stroke(v.Width, v.Dotted, v.Paint)

	case plate.StrokePolyline:
		for i := range v.X {
			if i == 0 {
				c.dc.MoveTo(c.px(v.X[i]), c.py(v.Y[i]))
			} else {
				c.dc.LineTo(c.px(v.X[i]), c.py(v.Y[i]))
			}
		}
		if v.Closed {
			c.dc.ClosePath()
		}
		c.stroke(v.Width, false, v.Paint)

	case plate.FillCircle:
		c.dc.SetHexColor(c.r.paint(v.Paint))
		c.dc.DrawCircle(c.px(v.CX), c.py(v.CY), v.R*c.k)
		c.dc.Fill()

	case plate.Label:
		c.label(v)

	default:
		return errors.New(errors.ErrCodeRenderBackend, "unknown instruction type %T", ins)
	}
	return nil
}

func (c pngCanvas) label(v plate.Label) {
	size := v.Size
	if size <= 0 {
		size = 1
	}
	c.dc.SetHexColor(c.r.paint(v.Paint))
	c.dc.SetFontFace(c.face(size))

	x, y := c.px(v.X), c.py(v.Y)
	ax := (1 + float64(v.HAlign)) / 2
	ay := (1 + float64(v.VAlign)) / 2

	c.dc.Push()
	if v.Rotation != 0 {
		c.dc.RotateAbout(v.Rotation, x, y)
	}
	c.dc.DrawStringAnchored(v.Text, x, y, ax, ay)
	c.dc.Pop()
}
