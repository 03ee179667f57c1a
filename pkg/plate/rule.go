package plate

import (
	"fmt"
	"math"

	"github.com/dcf21/astrolabe/pkg/projection"
)

const (
	armHalfWidth = 0.8 // half-width of the rule and alidade arms
	armMargin    = 2.0 // extra arm length beyond the plate edge
	majorTick    = 0.4
	minorTick    = 0.2
)

// rule composes the rule: a rotating pointer for the front of the
// astrolabe carrying a declination scale along its fiducial edge.
func (c *Composer) rule() (*Plate, error) {
	g := c.geom
	var ins []Instruction

	c.armOutline(&ins)
	ins = append(ins, Label{
		Text: "RULE", X: -0.7, Y: g.rWork + armMargin + 1.5*armHalfWidth,
		HAlign: -1, VAlign: 0, Size: 0.9, Paint: PaintText,
	})
	c.declinationScale(&ins)

	return &Plate{
		Kind:         Rule,
		Latitude:     c.proj.Latitude(),
		Extent:       g.extent(),
		Instructions: ins,
	}, nil
}

// alidade composes the alidade: the sighting pointer for the back,
// carrying fold-up sight vanes and a solar altitude scale.
func (c *Composer) alidade() (*Plate, error) {
	g := c.geom
	var ins []Instruction

	c.armOutline(&ins)
	ins = append(ins, Label{
		Text: "ALIDADE", X: -0.7, Y: g.rWork + armMargin + 1.5*armHalfWidth,
		HAlign: -1, VAlign: 0, Size: 0.9, Paint: PaintText,
	})

	// Two sight vanes, folded up along their long edge after cutting.
	sw := g.rWork * 0.1
	s1, s2 := g.rWork*0.65, g.rWork*0.85
	ins = append(ins,
		StrokePolyline{
			X: []float64{0, sw, sw, 0}, Y: []float64{-s1, -s1, -s2, -s2},
			Closed: true, Width: 1, Paint: PaintLines,
		},
		StrokePolyline{
			X: []float64{0, -sw, -sw, 0}, Y: []float64{s1, s1, s2, s2},
			Closed: true, Width: 1, Paint: PaintLines,
		},
	)

	c.altitudeScale(&ins)

	return &Plate{
		Kind:         Alidade,
		Latitude:     c.proj.Latitude(),
		Extent:       g.extent(),
		Instructions: ins,
	}, nil
}

// armOutline draws the shared pointer shape: a pivot hole, rounded
// shoulders, and two pointed half-arms whose straight edge runs along the
// centreline so the edge itself is the fiducial.
func (c *Composer) armOutline(out *[]Instruction) {
	g := c.geom
	length := g.rWork + armMargin
	w := armHalfWidth

	*out = append(*out,
		StrokeCircle{R: g.rHole, Width: 1, Paint: PaintLines},
		StrokeArc{R: w, From: -math.Pi / 2, To: 0, Width: 1, Paint: PaintLines},
		StrokeArc{R: w, From: math.Pi / 2, To: math.Pi, Width: 1, Paint: PaintLines},
		StrokePolyline{
			X: []float64{0, 0, w, w}, Y: []float64{w, length + w, length, 0},
			Width: 1, Paint: PaintLines,
		},
		StrokePolyline{
			X: []float64{0, 0, -w, -w}, Y: []float64{-w, -length - w, -length, 0},
			Width: 1, Paint: PaintLines,
		},
	)
}

// declinationScale marks the rule from -25 to +70 degrees of declination
// at the stereographic radius of each parallel. Southern instruments keep
// the same geometry and flip the engraved values.
func (c *Composer) declinationScale(out *[]Instruction) {
	for dec := -25; dec <= 70; dec += 5 {
		r := c.proj.EquatorRadius() * math.Tan((90-float64(dec))/2*projection.Deg)
		display := dec
		if c.proj.Southern() {
			display = -dec
		}

		if dec < 60 && dec%10 == 0 {
			*out = append(*out,
				StrokeLine{X1: 0, Y1: -r, X2: -majorTick, Y2: -r, Width: 1, Paint: PaintLines},
				Label{
					Text: fmt.Sprintf("%d°", display),
					X:    -majorTick, Y: -r, VAlign: 1,
					Rotation: math.Pi / 2, Size: 1.0, Paint: PaintText,
				},
				StrokeLine{X1: 0, Y1: r, X2: majorTick, Y2: r, Width: 1, Paint: PaintLines},
				Label{
					Text: fmt.Sprintf("%d°", display),
					X:    majorTick, Y: r, VAlign: 1,
					Rotation: -math.Pi / 2, Size: 1.0, Paint: PaintText,
				},
			)
			continue
		}
		*out = append(*out,
			StrokeLine{X1: 0, Y1: -r, X2: -minorTick, Y2: -r, Width: 1, Paint: PaintLines},
			StrokeLine{X1: 0, Y1: r, X2: minorTick, Y2: r, Width: 1, Paint: PaintLines},
		)
	}
}

// altitudeScale marks the alidade at r = rShadow * sin(alt), which is
// where the shadow square reading for a given solar altitude lands.
func (c *Composer) altitudeScale(out *[]Instruction) {
	for alt := 20; alt <= 90; alt += 5 {
		r := c.geom.rShadow * math.Sin(float64(alt)*projection.Deg)
		*out = append(*out,
			StrokeLine{X1: 0, Y1: -r, X2: -minorTick, Y2: -r, Width: 1, Paint: PaintLines},
			StrokeLine{X1: 0, Y1: r, X2: minorTick, Y2: r, Width: 1, Paint: PaintLines},
		)
	}

	for _, alt := range []int{20, 35, 50, 80} {
		r := c.geom.rShadow * math.Sin(float64(alt)*projection.Deg)
		*out = append(*out,
			StrokeLine{X1: 0, Y1: -r, X2: -majorTick, Y2: -r, Width: 1, Paint: PaintLines},
			Label{
				Text: fmt.Sprintf("%d°", alt),
				X:    -majorTick, Y: -r, VAlign: 1,
				Rotation: math.Pi / 2, Size: 1.0, Paint: PaintText,
			},
			StrokeLine{X1: 0, Y1: r, X2: majorTick, Y2: r, Width: 1, Paint: PaintLines},
			Label{
				Text: fmt.Sprintf("%d°", alt),
				X:    majorTick, Y: r, VAlign: 1,
				Rotation: -math.Pi / 2, Size: 1.0, Paint: PaintText,
			},
		)
	}
}
