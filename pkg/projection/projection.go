package projection

import (
	"math"

	"github.com/dcf21/astrolabe/pkg/errors"
)

// Deg converts degrees to radians.
const Deg = math.Pi / 180

// Equatorial is a position on the celestial sphere in the equatorial frame.
// Right ascension is treated modulo 360 degrees.
type Equatorial struct {
	RA  float64 // right ascension, degrees
	Dec float64 // declination, degrees, [-90, 90]
}

// Horizontal is a position in the observer's horizon frame.
// Azimuth is treated modulo 360 degrees.
type Horizontal struct {
	Altitude float64 // degrees above the horizon, [-90, 90]
	Azimuth  float64 // degrees clockwise from north
}

// Point is a projected position in plate space.
type Point struct {
	X float64
	Y float64
}

// Circle is an exact circle in plate space.
type Circle struct {
	CX float64
	CY float64
	R  float64
}

// Arc is the portion of a circle between two angles. Angles are in radians;
// a point on the arc is (CX + R*cos(a), CY + R*sin(a)).
type Arc struct {
	Circle
	From float64
	To   float64
}

// Projector computes stereographic projections for one observing latitude.
// It is immutable after construction and safe for concurrent use.
type Projector struct {
	latitude  float64 // signed latitude as requested, degrees
	absLat    float64 // |latitude|, the working latitude of the plate
	southern  bool
	obliquity float64 // inclination of the ecliptic, degrees
	rOuter    float64 // plate radius: the tropic opposite the visible pole
	rEq       float64 // radius of the projected equator
	rTropic   float64 // radius of the tropic nearest the visible pole
}

// New constructs a Projector for the given observing latitude.
//
// outerRadius is the plate radius in plate units; it is defined as the
// projected radius of the tropic opposite the visible celestial pole, which
// fixes the scale of every other circle. obliquity is the inclination of
// the ecliptic in degrees.
//
// Fails with LATITUDE_OUT_OF_RANGE when the latitude lies inside the
// forbidden equatorial band or outside [-90, 90].
func New(latitude, outerRadius, obliquity float64) (*Projector, error) {
	if err := errors.ValidateLatitude(latitude); err != nil {
		return nil, err
	}

	// The equator radius follows from requiring the opposite tropic to land
	// exactly on the plate edge: R(-obliquity) == outerRadius.
	half := (90 - obliquity) / 2 * Deg
	rEq := outerRadius * math.Tan(half)
	return &Projector{
		latitude:  latitude,
		absLat:    math.Abs(latitude),
		southern:  latitude < 0,
		obliquity: obliquity,
		rOuter:    outerRadius,
		rEq:       rEq,
		rTropic:   rEq * math.Tan(half),
	}, nil
}

// Latitude returns the signed observing latitude in degrees.
func (p *Projector) Latitude() float64 { return p.latitude }

// Southern reports whether the plate is mirrored for a southern observer.
func (p *Projector) Southern() bool { return p.southern }

// OuterRadius returns the plate radius in plate units.
func (p *Projector) OuterRadius() float64 { return p.rOuter }

// EquatorRadius returns the projected radius of the celestial equator.
func (p *Projector) EquatorRadius() float64 { return p.rEq }

// Radius returns the projected radius of the declination parallel dec.
//
// The radius decreases monotonically as dec approaches the visible pole,
// which projects to the origin. The opposite pole is the projection point
// itself and fails with DEGENERATE_PROJECTION.
func (p *Projector) Radius(dec float64) (float64, error) {
	if err := errors.ValidateDeclination(dec); err != nil {
		return 0, err
	}
	if p.southern {
		dec = -dec
	}
	if dec <= -90 {
		return 0, errors.New(errors.ErrCodeDegenerateProjection,
			"declination %.2f projects to infinity", dec)
	}
	return p.rEq * math.Tan((90-dec)/2*Deg), nil
}

// Project maps an equatorial position onto the plate.
//
// The mapping is pure: identical inputs always yield the identical point.
// Star positions on the rete use this directly and depend only on the
// hemisphere of the plate, never on the exact latitude.
func (p *Projector) Project(eq Equatorial) (Point, error) {
	r, err := p.Radius(eq.Dec)
	if err != nil {
		return Point{}, err
	}
	ra := eq.RA
	if p.southern {
		ra = -ra
	}
	a := normalizeDeg(ra) * Deg
	return Point{X: -r * math.Cos(a), Y: -r * math.Sin(a)}, nil
}

// DeclinationParallel returns the parallel of declination dec as an exact
// circle centred on the pivot.
func (p *Projector) DeclinationParallel(dec float64) (Circle, error) {
	r, err := p.Radius(dec)
	if err != nil {
		return Circle{}, err
	}
	return Circle{R: r}, nil
}

// Equator returns the projected celestial equator.
func (p *Projector) Equator() Circle {
	return Circle{R: p.rEq}
}

// Tropics returns the two tropic circles: the inner one surrounding the
// visible pole and the outer one coinciding with the plate edge.
func (p *Projector) Tropics() (inner, outer Circle) {
	return Circle{R: p.rTropic}, Circle{R: p.rOuter}
}

// OnPlate reports whether a circle lies entirely within the printable
// bound. Generated circles that fail this check are omitted or truncated
// by the composer rather than silently drawn off-page.
func (p *Projector) OnPlate(c Circle) bool {
	return math.Hypot(c.CX, c.CY)+c.R <= p.rOuter+1e-9
}

// normalizeDeg reduces an angle to [0, 360).
func normalizeDeg(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}
