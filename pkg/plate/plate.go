// Package plate composes the five printable parts of the astrolabe into
// renderer-independent drawing instructions.
//
// Each composer is a pure function of the observing latitude, the layout
// configuration and the star list: the same inputs always produce the same
// instruction sequence, which is what makes rendered artifacts
// byte-for-byte reproducible.
package plate

import (
	"math"

	"github.com/dcf21/astrolabe/pkg/catalog"
	"github.com/dcf21/astrolabe/pkg/config"
	"github.com/dcf21/astrolabe/pkg/errors"
	"github.com/dcf21/astrolabe/pkg/projection"
)

// Kind identifies one of the five parts of the astrolabe.
type Kind string

const (
	MotherBack  Kind = "mother_back"
	MotherFront Kind = "mother_front"
	Rete        Kind = "rete"
	Rule        Kind = "rule"
	Alidade     Kind = "alidade"
)

// Kinds returns all plate kinds in their canonical generation order.
func Kinds() []Kind {
	return []Kind{MotherBack, MotherFront, Rete, Rule, Alidade}
}

// Plate is one composed part: a flat instruction list plus the square
// bounding half-extent the sinks use to size their canvas.
type Plate struct {
	Kind         Kind
	Latitude     float64
	Extent       float64
	Instructions []Instruction
}

// Composer builds plates for one observing latitude.
type Composer struct {
	cfg   config.Config
	proj  *projection.Projector
	stars []catalog.Star
	geom  geometry
}

// NewComposer validates the latitude and prepares the shared projection
// and ring layout. stars may be nil for plates that do not plot the
// catalogue.
func NewComposer(latitude float64, cfg config.Config, stars []catalog.Star) (*Composer, error) {
	geom := newGeometry(cfg.Layout)
	proj, err := projection.New(latitude, geom.rWork, cfg.Layout.Obliquity)
	if err != nil {
		return nil, err
	}
	return &Composer{cfg: cfg, proj: proj, stars: stars, geom: geom}, nil
}

// Latitude returns the observing latitude the composer was built for.
func (c *Composer) Latitude() float64 { return c.proj.Latitude() }

// Compose builds the named plate.
func (c *Composer) Compose(kind Kind) (*Plate, error) {
	switch kind {
	case MotherBack:
		return c.motherBack()
	case MotherFront:
		return c.motherFront()
	case Rete:
		return c.rete()
	case Rule:
		return c.rule()
	case Alidade:
		return c.alidade()
	default:
		return nil, errors.New(errors.ErrCodeInternal, "unknown plate kind %q", kind)
	}
}

// ComposeAll builds all five plates in canonical order.
func (c *Composer) ComposeAll() ([]*Plate, error) {
	plates := make([]*Plate, 0, len(Kinds()))
	for _, kind := range Kinds() {
		p, err := c.Compose(kind)
		if err != nil {
			return nil, err
		}
		plates = append(plates, p)
	}
	return plates, nil
}

// geometry carries the concentric ring radii shared by the composers. All
// values are centimetres.
type geometry struct {
	r1      float64 // outer edge of the mother
	gap     float64 // spacing of the engraved rings
	rWork   float64 // outer radius of the projected area and of the rete
	rHole   float64 // central pivot hole
	rShadow float64 // outer edge of the shadow square
	rTab    float64 // tab that keys the rete against the mother
	handleR float64 // suspension handle radius
	tabRad  float64 // angular half-width of the tab, radians
}

func newGeometry(l config.Layout) geometry {
	gap := l.RingGap()
	return geometry{
		r1:      l.OuterRadius,
		gap:     gap,
		rWork:   l.OuterRadius - 3*gap - 0.1,
		rHole:   gap * l.CentreHoleScale,
		rShadow: l.OuterRadius - 10*gap,
		rTab:    l.OuterRadius - 2.5*gap - 0.1,
		handleR: 2.0,
		tabRad:  l.TabHalfWidth * projection.Deg,
	}
}

// extent is the half-size of the square canvas: the plate edge, a margin,
// and room for the suspension handle at the top.
func (g geometry) extent() float64 {
	return g.r1 + g.handleR + 0.5
}

// handle emits the suspension loop at the top edge of the mother.
func (g geometry) handle(out *[]Instruction) {
	ang := math.Pi - math.Acos(1.0/g.r1)
	*out = append(*out,
		StrokeArc{
			CX: 0, CY: -g.r1, R: g.handleR,
			From: -ang - math.Pi/2, To: ang - math.Pi/2,
			Width: 1, Paint: PaintLines,
		},
		StrokeLine{
			X1: 0, Y1: -g.r1 - g.handleR, X2: 0, Y2: -g.r1 + g.handleR,
			Width: 1, Paint: PaintLines,
		},
	)
}

// clipToPlate reduces a projected circle to its visible portion inside the
// plate edge. It reports whether anything is visible and whether the whole
// circle fits.
func clipToPlate(c projection.Circle, rPlate float64) (arc projection.Arc, full, visible bool) {
	d := math.Hypot(c.CX, c.CY)
	if d+c.R <= rPlate {
		return projection.Arc{Circle: c}, true, true
	}
	if c.R-d >= rPlate || d-c.R >= rPlate {
		return projection.Arc{}, false, false
	}
	// Law of cosines about the circle centre: the visible span straddles
	// the direction back toward the plate centre.
	alpha := math.Acos((d*d + c.R*c.R - rPlate*rPlate) / (2 * d * c.R))
	a0 := math.Atan2(-c.CY, -c.CX)
	return projection.Arc{Circle: c, From: a0 - alpha, To: a0 + alpha}, false, true
}
