package plate

import (
	"fmt"
	"math"

	"github.com/dcf21/astrolabe/pkg/catalog"
	"github.com/dcf21/astrolabe/pkg/projection"
)

// zodiacSigns in ecliptic longitude order, starting at the vernal equinox.
var zodiacSigns = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricornus", "Aquarius", "Pisces",
}

// starDotScale converts a star's magnitude into a dot radius: brighter
// stars get larger dots, fading to nothing at the magnitude cut.
const starDotScale = 0.05

// rete composes the rotating star web: the bright stars, the ecliptic
// band with its zodiac calibration, and the right ascension scale. The
// star positions depend only on the hemisphere, so the rete for latitude
// 30 is identical to the one for latitude 52.
func (c *Composer) rete() (*Plate, error) {
	g := c.geom
	var ins []Instruction

	inner, _ := c.proj.Tropics()
	ins = append(ins,
		StrokeCircle{R: g.rWork, Width: 1.8, Paint: PaintLines},
		StrokeCircle{R: c.proj.EquatorRadius(), Width: 1, Paint: PaintLines},
		StrokeCircle{R: inner.R, Width: 1, Paint: PaintLines},
	)

	c.reteStars(&ins)
	c.raScale(&ins)
	if err := c.eclipticBand(&ins); err != nil {
		return nil, err
	}

	// Blank and outline the pivot hole last so nothing crosses it.
	ins = append(ins,
		FillCircle{R: g.rHole, Paint: PaintBackground},
		StrokeCircle{R: g.rHole, Width: 1, Paint: PaintLines},
	)

	return &Plate{
		Kind:         Rete,
		Latitude:     c.proj.Latitude(),
		Extent:       g.rWork * 1.05,
		Instructions: ins,
	}, nil
}

// reteStars plots the catalogue stars brighter than the configured limit.
func (c *Composer) reteStars(out *[]Instruction) {
	for _, s := range catalog.BrighterThan(c.stars, c.cfg.Rete.MagnitudeLimit) {
		pt, err := c.proj.Project(projection.Equatorial{RA: s.RA, Dec: s.Dec})
		if err != nil {
			// The star sits at the hidden pole; nothing to plot.
			continue
		}
		if math.Hypot(pt.X, pt.Y) > c.geom.rWork {
			continue
		}
		*out = append(*out, FillCircle{
			CX: pt.X, CY: pt.Y,
			R:     starDotScale * (5 - s.Mag),
			Paint: PaintLines,
		})
	}
}

// raScale engraves the right ascension ring: hour ticks with labels and a
// fine ten minute scale just inside the rim.
func (c *Composer) raScale(out *[]Instruction) {
	g := c.geom
	rTick := g.rWork * 0.98
	for h := 0; h < 24; h++ {
		theta := float64(h) / 24 * 2 * math.Pi
		display := h
		if c.proj.Southern() && h > 0 {
			display = 24 - h
		}
		*out = append(*out,
			StrokeLine{
				X1: -g.rWork * math.Cos(theta), Y1: -g.rWork * math.Sin(theta),
				X2: -rTick * math.Cos(theta), Y2: -rTick * math.Sin(theta),
				Width: 1, Paint: PaintLines,
			},
			Label{
				Text: fmt.Sprintf("%dh", display),
				X:    -rTick * math.Cos(theta), Y: -rTick * math.Sin(theta),
				HAlign: 0, VAlign: -1,
				Rotation: theta - math.Pi/2,
				Size:     0.8, Paint: PaintText,
			},
		)
	}

	rFine := g.rWork * 0.99
	for i := 0; i < 144; i++ {
		theta := float64(i) / 144 * 2 * math.Pi
		*out = append(*out, StrokeLine{
			X1: -g.rWork * math.Cos(theta), Y1: -g.rWork * math.Sin(theta),
			X2: -rFine * math.Cos(theta), Y2: -rFine * math.Sin(theta),
			Width: 1, Paint: PaintLines,
		})
	}
}

// eclipticBand draws the sampled ecliptic, an inner band edge, tick ribs
// every two degrees of ecliptic longitude, and the zodiac sign names.
func (c *Composer) eclipticBand(out *[]Instruction) error {
	g := c.geom
	samples, err := c.proj.Ecliptic(c.cfg.Rete.EclipticStep)
	if err != nil {
		return err
	}

	// The band centre sits midway between the two tropic extremes on the
	// meridian; the inner edge shrinks the curve toward it.
	inner, _ := c.proj.Tropics()
	bandCY := (g.rWork - inner.R) / 2
	const bandScale = 0.9

	outerX := make([]float64, len(samples))
	outerY := make([]float64, len(samples))
	innerX := make([]float64, len(samples))
	innerY := make([]float64, len(samples))
	for i, p := range samples {
		outerX[i], outerY[i] = p.X, p.Y
		innerX[i] = p.X * bandScale
		innerY[i] = bandCY + (p.Y-bandCY)*bandScale
	}
	*out = append(*out,
		StrokePolyline{X: outerX, Y: outerY, Closed: true, Width: 1.8, Paint: PaintCurves},
		StrokePolyline{X: innerX, Y: innerY, Closed: true, Width: 1, Paint: PaintCurves},
	)

	// Tick ribs: full depth at sign boundaries, half depth every ten
	// degrees, quarter depth on the two degree grid.
	step := 360 / float64(len(samples))
	for i, p := range samples {
		lambda := float64(i) * step
		depth := 0.25
		switch {
		case math.Mod(lambda, 30) < 1e-9:
			depth = 1.0
		case math.Mod(lambda, 10) < 1e-9:
			depth = 0.5
		}
		ix := p.X + (innerX[i]-p.X)*depth
		iy := p.Y + (innerY[i]-p.Y)*depth
		*out = append(*out, StrokeLine{
			X1: p.X, Y1: p.Y, X2: ix, Y2: iy,
			Width: 1, Paint: PaintCurves,
		})
	}

	// Sign names along the middle of the band.
	for i, name := range zodiacSigns {
		mid := float64(i)*30 + 15
		pt, err := c.proj.ZodiacRib(mid)
		if err != nil {
			return err
		}
		// Label radius partway between the band edges, measured from the
		// band centre.
		vx := pt.X
		vy := pt.Y - bandCY
		radius := math.Hypot(vx, vy) * (1 + 2*bandScale) / 3
		azimuth := math.Atan2(-vy, vx)/projection.Deg + 90
		circularText(out, name, 0, bandCY, radius, azimuth, 1.0)
	}

	return nil
}
