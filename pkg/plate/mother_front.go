package plate

import "math"

// hourLetters label the 24 hours around the limb of the mother, with a
// cross marking midnight. J, V and W are skipped in the traditional
// lettering.
var hourLetters = [24]string{
	"✠", "A", "B", "C", "D", "E", "F", "G", "H", "I", "K", "L",
	"M", "N", "O", "P", "Q", "R", "S", "T", "U", "X", "Y", "Z",
}

// motherFront composes the front of the mother: the graduated limb with
// its 24 hour lettering, the recess that keys the rete, and the fixed
// equatorial circles of the latitude's climate.
func (c *Composer) motherFront() (*Plate, error) {
	g := c.geom
	var ins []Instruction

	g.handle(&ins)

	r2 := g.r1 - g.gap*1.5
	r3 := r2 - g.gap
	r4 := r3 - g.gap/2

	for _, r := range []float64{g.r1, r2, r3} {
		ins = append(ins, StrokeCircle{R: r, Width: 1, Paint: PaintLines})
	}

	// The innermost ring leaves a gap at the top where the tab of the
	// rete keys in.
	ins = append(ins, StrokeArc{
		R:    r4,
		From: -math.Pi/2 + g.tabRad, To: 3*math.Pi/2 - g.tabRad,
		Width: 1, Paint: PaintLines,
	})

	rimScale(&ins, r3, r4, r2, (r2+r3)/2)

	// 24 hour letters around the limb, midnight at the bottom.
	rt := (g.r1 + r2) / 2
	for i, letter := range hourLetters {
		theta := float64(i) / 24 * 2 * math.Pi
		if c.proj.Southern() {
			theta = -theta
		}
		ins = append(ins, Label{
			Text: letter,
			X:    rt * math.Sin(theta), Y: rt * math.Cos(theta),
			HAlign: 0, VAlign: 0,
			Rotation: -theta,
			Size:     2.0, Paint: PaintText,
		})
	}

	// Equatorial frame engraved in the recess: plate edge at the outer
	// tropic, the equator, the inner tropic, and declination parallels
	// every ten degrees.
	inner, outer := c.proj.Tropics()
	ins = append(ins,
		StrokeCircle{R: outer.R, Width: 1.8, Paint: PaintLines},
		StrokeCircle{R: c.proj.EquatorRadius(), Width: 1.8, Paint: PaintLines},
		StrokeCircle{R: inner.R, Width: 1, Paint: PaintLines},
	)
	for dec := -20.0; dec <= 80; dec += 10 {
		if dec == 0 {
			continue
		}
		circ, err := c.proj.DeclinationParallel(dec)
		if err != nil {
			return nil, err
		}
		if !c.proj.OnPlate(circ) {
			continue
		}
		width := 0.6
		dotted := false
		if math.Mod(dec, 30) != 0 {
			dotted = true
		}
		ins = append(ins, StrokeCircle{
			CX: circ.CX, CY: circ.CY, R: circ.R,
			Width: width, Dotted: dotted, Paint: PaintFaint,
		})
	}

	// Meridian and east-west line through the recess.
	ins = append(ins,
		StrokeLine{X1: -g.rWork, Y1: 0, X2: g.rWork, Y2: 0, Width: 0.6, Paint: PaintFaint},
		StrokeLine{X1: 0, Y1: -g.rWork, X2: 0, Y2: g.rWork, Width: 0.6, Paint: PaintFaint},
	)

	ins = append(ins, StrokeCircle{R: g.rHole, Width: 1, Paint: PaintLines})

	return &Plate{
		Kind:         MotherFront,
		Latitude:     c.proj.Latitude(),
		Extent:       g.extent(),
		Instructions: ins,
	}, nil
}
