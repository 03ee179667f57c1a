package plate

import (
	"fmt"
	"math"

	"github.com/dcf21/astrolabe/pkg/errors"
	"github.com/dcf21/astrolabe/pkg/projection"
)

// compassPoints are the sixteen bearings engraved where the azimuth arcs
// meet the horizon, indexed clockwise from north.
var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// motherBack composes the back of the mother: the graduated rim, the
// horizon frame of almucantars and azimuth arcs for the observing
// latitude, the shadow square and the unequal hours scale.
func (c *Composer) motherBack() (*Plate, error) {
	g := c.geom
	var ins []Instruction

	g.handle(&ins)

	r2 := g.r1 - g.gap
	r3 := r2 - g.gap/2
	r4 := r3 - g.gap

	for _, r := range []float64{g.r1, r2, r3, r4, g.rWork} {
		ins = append(ins, StrokeCircle{R: r, Width: 1, Paint: PaintLines})
	}
	rimScale(&ins, r2, r3, r4, (g.r1+r2)/2)

	if err := c.horizonFrame(&ins); err != nil {
		return nil, err
	}

	// Centre lines: the meridian stands in for the degenerate azimuth
	// circle, the horizontal line joins the east and west points.
	ins = append(ins,
		StrokeLine{X1: -g.rWork, Y1: 0, X2: g.rWork, Y2: 0, Width: 1, Paint: PaintLines},
		StrokeLine{X1: 0, Y1: -g.rWork, X2: 0, Y2: g.rWork, Width: 1, Paint: PaintLines},
	)

	c.shadowSquare(&ins)
	c.unequalHours(&ins)

	hemisphere := "N"
	if c.proj.Southern() {
		hemisphere = "S"
	}
	caption := fmt.Sprintf("MODEL ASTROLABE FOR LATITUDE %.0f%s",
		math.Abs(c.proj.Latitude()), hemisphere)
	circularText(&ins, caption, 0, 0, g.rWork-0.5, 270, 0.7)

	ins = append(ins, StrokeCircle{R: g.rHole, Width: 1, Paint: PaintLines})

	return &Plate{
		Kind:         MotherBack,
		Latitude:     c.proj.Latitude(),
		Extent:       g.extent(),
		Instructions: ins,
	}, nil
}

// horizonFrame draws the altitude and azimuth grid for the observing
// latitude inside the working radius.
func (c *Composer) horizonFrame(out *[]Instruction) error {
	g := c.geom

	// Almucantars every ten degrees, with the civil twilight line at -6
	// dotted and the horizon itself emphasised.
	alts := []float64{-6, 0, 10, 20, 30, 40, 50, 60, 70, 80}
	for _, alt := range alts {
		circ, err := c.proj.Almucantar(alt)
		if err != nil {
			return err
		}

		width := 0.6
		if alt == 0 {
			width = 1.8
		}
		paint := PaintCurves
		if alt <= 0 {
			paint = PaintLines
		}

		arc, full, visible := clipToPlate(circ, g.rWork)
		if !visible {
			continue
		}
		if full {
			*out = append(*out, StrokeCircle{
				CX: circ.CX, CY: circ.CY, R: circ.R,
				Width: width, Dotted: alt < 0, Paint: paint,
			})
			if alt > 0 {
				*out = append(*out, Label{
					Text: fmt.Sprintf("%.0f", alt),
					X:    circ.CX, Y: circ.CY - circ.R,
					HAlign: 0, VAlign: -1,
					Size: 0.8, Bold: true, Paint: PaintText,
				})
			}
			continue
		}
		*out = append(*out, StrokeArc{
			CX: arc.CX, CY: arc.CY, R: arc.R,
			From: arc.From, To: arc.To,
			Width: width, Dotted: alt < 0, Paint: paint,
		})
		if alt > 0 {
			for _, a := range []float64{arc.From + 0.12, arc.To - 0.12} {
				*out = append(*out, Label{
					Text: fmt.Sprintf("%.0f", alt),
					X:    arc.CX + arc.R*math.Cos(a),
					Y:    arc.CY + arc.R*math.Sin(a),
					HAlign: 0, VAlign: 0,
					Rotation: a + math.Pi/2,
					Size:     0.8, Bold: true, Paint: PaintText,
				})
			}
		}
	}

	// Sixteen azimuth arcs at 11.25 degree intervals; each one meets the
	// horizon at two opposite compass bearings. The meridian pair is the
	// centre line drawn by the caller.
	for step := 1; step < 16; step++ {
		azimuth := -90 + 11.25*float64(step)
		arc, err := c.proj.AzimuthArc(azimuth)
		if err != nil {
			if errors.Is(err, errors.ErrCodeDegenerateProjection) {
				continue
			}
			return err
		}
		*out = append(*out, StrokeArc{
			CX: arc.CX, CY: arc.CY, R: arc.R,
			From: arc.From, To: arc.To,
			Width: 0.5, Paint: PaintCurves,
		})

		if step%2 != 0 {
			continue
		}
		start := compassPoints[step/2]
		end := compassPoints[step/2+8]
		if c.proj.Southern() {
			start, end = end, start
		}
		c.bearingLabel(out, arc, arc.To, start)
		c.bearingLabel(out, arc, arc.From, end)
	}

	// North (or south) point of the horizon, on the meridian.
	horizon, err := c.proj.Horizon()
	if err != nil {
		return err
	}
	meridianMark := "N"
	if c.proj.Southern() {
		meridianMark = "S"
	}
	*out = append(*out, Label{
		Text: meridianMark,
		X:    0, Y: horizon.CY + horizon.R,
		HAlign: 0, VAlign: 1,
		Size: 0.8, Bold: true, Paint: PaintText,
	})

	// Circles of perpetual visibility and invisibility.
	visible, invisible := c.proj.PerpetualCircles()
	for _, circ := range []projection.Circle{visible, invisible} {
		if c.proj.OnPlate(circ) {
			*out = append(*out, StrokeCircle{
				CX: circ.CX, CY: circ.CY, R: circ.R,
				Width: 0.6, Dotted: true, Paint: PaintFaint,
			})
		}
	}

	return nil
}

// bearingLabel places a compass bearing just outside the end of an
// azimuth arc, rotated to read along the local radial.
func (c *Composer) bearingLabel(out *[]Instruction, arc projection.Arc, angle float64, text string) {
	x := arc.CX + arc.R*math.Cos(angle)
	y := arc.CY + arc.R*math.Sin(angle)
	if math.Hypot(x, y) > 0.9*c.geom.rWork {
		return
	}
	*out = append(*out, Label{
		Text: text,
		X:    x, Y: y,
		HAlign: 0, VAlign: 1,
		Rotation: math.Atan2(y, x) + math.Pi/2,
		Size:     0.8, Bold: true, Paint: PaintText,
	})
}

// shadowSquare engraves the umbra recta / umbra versa scale below the
// centre, twelve divisions to a side.
func (c *Composer) shadowSquare(out *[]Instruction) {
	g := c.geom
	r12 := g.rShadow
	half := r12 * math.Cos(45*projection.Deg)

	rs1 := r12 - 0.75*g.gap/2
	rs2 := rs1 - 0.75*g.gap
	half1 := rs1 * math.Cos(45*projection.Deg)
	half2 := rs2 * math.Cos(45*projection.Deg)

	// Nested square outlines, open along the horizontal axis.
	for _, h := range []float64{half, half1, half2} {
		*out = append(*out,
			StrokeLine{X1: -h, Y1: 0, X2: -h, Y2: h, Width: 1, Paint: PaintLines},
			StrokeLine{X1: -h, Y1: h, X2: h, Y2: h, Width: 1, Paint: PaintLines},
			StrokeLine{X1: h, Y1: h, X2: h, Y2: 0, Width: 1, Paint: PaintLines},
		)
	}
	*out = append(*out,
		StrokeLine{X1: 0, Y1: half, X2: 0, Y2: g.rHole, Width: 1, Paint: PaintLines},
	)

	// Twelve divisions per side, numbered every fourth.
	rLabel := (half1 + half2) / 2
	for i := 1; i < 12; i++ {
		frac := float64(i) / 12
		inner := half1
		if i%4 == 0 {
			inner = half2
		}
		// Verticals carry the umbra recta scale, horizontals the versa.
		*out = append(*out,
			StrokeLine{X1: half * frac, Y1: half, X2: half * frac, Y2: inner, Width: 1, Paint: PaintLines},
			StrokeLine{X1: -half * frac, Y1: half, X2: -half * frac, Y2: inner, Width: 1, Paint: PaintLines},
			StrokeLine{X1: half, Y1: half * frac, X2: inner, Y2: half * frac, Width: 1, Paint: PaintLines},
			StrokeLine{X1: -half, Y1: half * frac, X2: -inner, Y2: half * frac, Width: 1, Paint: PaintLines},
		)
		if i%4 == 0 {
			num := fmt.Sprintf("%d", i)
			*out = append(*out,
				Label{Text: num, X: half * frac, Y: rLabel, HAlign: 0, VAlign: 0, Size: 0.64, Paint: PaintText},
				Label{Text: num, X: -half * frac, Y: rLabel, HAlign: 0, VAlign: 0, Size: 0.64, Paint: PaintText},
				Label{Text: num, X: rLabel, Y: half * frac, HAlign: 0, VAlign: 0, Rotation: math.Pi / 2, Size: 0.64, Paint: PaintText},
				Label{Text: num, X: -rLabel, Y: half * frac, HAlign: 0, VAlign: 0, Rotation: -math.Pi / 2, Size: 0.64, Paint: PaintText},
			)
		}
	}

	*out = append(*out,
		Label{Text: "12", X: half, Y: rLabel, HAlign: 0, VAlign: 0, Rotation: -math.Pi / 4, Size: 0.64, Paint: PaintText},
		Label{Text: "12", X: -half, Y: rLabel, HAlign: 0, VAlign: 0, Rotation: math.Pi / 4, Size: 0.64, Paint: PaintText},
		Label{Text: "UMBRA", X: -0.1, Y: half2, HAlign: 1, VAlign: -1, Size: 0.64, Paint: PaintText},
		Label{Text: "RECTA", X: 0.1, Y: half2, HAlign: -1, VAlign: -1, Size: 0.64, Paint: PaintText},
		Label{Text: "UMBRA", X: -half2, Y: 0.1, HAlign: -1, VAlign: -1, Rotation: math.Pi / 2, Size: 0.64, Paint: PaintText},
		Label{Text: "VERSA", X: half2, Y: 0.1, HAlign: 1, VAlign: -1, Rotation: -math.Pi / 2, Size: 0.64, Paint: PaintText},
		Label{Text: "ORIENS", X: -r12 * 0.95, Y: 0, HAlign: -1, VAlign: -1, Size: 0.64, Paint: PaintText},
		Label{Text: "OCCIDENS", X: r12 * 0.95, Y: 0, HAlign: 1, VAlign: -1, Size: 0.64, Paint: PaintText},
	)
}

// unequalHours draws the scale of seasonal hours above the centre: a
// circle on the vertical axis and one arc per hour division.
func (c *Composer) unequalHours(out *[]Instruction) {
	r12 := c.geom.rShadow
	*out = append(*out, StrokeCircle{
		CX: 0, CY: -r12 / 2, R: r12 / 2,
		Width: 1, Paint: PaintLines,
	})

	for d := 15.0; d <= 75; d += 15 {
		theta := d * projection.Deg
		yc := r12*math.Cos(theta)/2 + r12*math.Sin(theta)/2*math.Tan(theta)
		end := math.Atan2(r12*math.Sin(theta), r12*math.Cos(theta)/2-r12*math.Sin(theta)/2*math.Tan(theta))

		from := end - math.Pi/2
		to := -end - math.Pi/2
		if to < from {
			to += 2 * math.Pi
		}
		*out = append(*out, StrokeArc{
			CX: 0, CY: -yc, R: yc,
			From: from, To: to,
			Width: 1, Paint: PaintLines,
		})
	}
}
