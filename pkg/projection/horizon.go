package projection

import (
	"math"

	"github.com/dcf21/astrolabe/pkg/errors"
)

// Almucantar returns the circle of constant altitude alt (degrees) as seen
// from the observing latitude.
//
// The construction projects the two points where the almucantar crosses the
// meridian through the equator circle; under stereographic projection the
// whole almucantar is the exact circle spanning them. alt = 0 is the
// horizon, alt = 90 degenerates to the zenith point (radius zero).
func (p *Projector) Almucantar(alt float64) (Circle, error) {
	if err := errors.ValidateDeclination(alt); err != nil {
		return Circle{}, errors.New(errors.ErrCodeDegenerateProjection,
			"altitude %.2f outside [-90, 90]", alt)
	}

	theta1 := (-p.absLat - (90 - alt)) * Deg
	theta2 := (-p.absLat + (90 - alt)) * Deg

	yA, err := p.meridianProject(theta1)
	if err != nil {
		return Circle{}, err
	}
	yB, err := p.meridianProject(theta2)
	if err != nil {
		return Circle{}, err
	}

	return Circle{CX: 0, CY: -(yA + yB) / 2, R: (yB - yA) / 2}, nil
}

// Horizon returns the projected horizon circle. At the poles it coincides
// with the celestial equator.
func (p *Projector) Horizon() (Circle, error) {
	return p.Almucantar(0)
}

// Zenith returns the projected zenith point.
func (p *Projector) Zenith() (Point, error) {
	zY, err := p.meridianProject(-p.absLat * Deg)
	if err != nil {
		return Point{}, err
	}
	return Point{X: 0, Y: -zY}, nil
}

// PerpetualCircles returns the circles of perpetual visibility and
// invisibility: the declination parallels grazing the horizon at the
// meridian. The invisibility circle usually exceeds the plate radius at
// temperate latitudes; callers must check OnPlate before drawing.
func (p *Projector) PerpetualCircles() (visible, invisible Circle) {
	visible = Circle{R: p.rEq * math.Tan(p.absLat/2*Deg)}
	invisible = Circle{R: p.rEq * math.Tan((180-p.absLat)/2*Deg)}
	return visible, invisible
}

// AzimuthArc returns the circle of constant azimuth (degrees from the
// meridian, positive eastward) clipped between the horizon circle and the
// plate edge.
//
// Azimuth circles all pass through the zenith; the meridian itself
// (azimuth 0 mod 180 measured from east, i.e. +-90 here) projects to a
// straight line and fails with DEGENERATE_PROJECTION - the composer draws
// it as the vertical centreline instead.
func (p *Projector) AzimuthArc(azimuth float64) (Arc, error) {
	if math.Abs(math.Mod(math.Abs(azimuth), 180)-90) < 1e-9 {
		return Arc{}, errors.New(errors.ErrCodeDegenerateProjection,
			"azimuth %.2f is the meridian, which projects to a straight line", azimuth)
	}

	zY, err := p.meridianProject(-p.absLat * Deg)
	if err != nil {
		return Arc{}, err
	}
	horizon, err := p.Horizon()
	if err != nil {
		return Arc{}, err
	}
	// Work in y-up space like the rest of the construction.
	hCY := -horizon.CY
	hR := horizon.R

	tY := p.azimuthAxisY(zY)
	tX := (zY - tY) * math.Tan(azimuth*Deg)
	tR := math.Hypot(tX, tY-zY)

	// Intersection with the horizon bounds the visible part of the arc.
	tHC := math.Hypot(tX, tY-hCY)
	theta := math.Acos(clamp((tR*tR+tHC*tHC-hR*hR)/(2*tR*tHC), -1, 1))
	phi := math.Atan2(tX, hCY-tY)
	start := -phi - theta
	end := -phi + theta

	// Clip against the plate edge where the arc leaves the disc.
	start2, end2 := start, end
	tC := math.Hypot(tX, tY)
	if arg := (tR*tR + tC*tC - p.rOuter*p.rOuter) / (2 * tR * tC); arg > -1 && arg < 1 {
		theta = math.Acos(arg)
		phi = math.Atan2(tX, -tY)
		start2 = -phi - theta
		end2 = -phi + theta
	}

	return Arc{
		Circle: Circle{CX: tX, CY: -tY, R: tR},
		From:   math.Max(start, start2) - math.Pi/2,
		To:     math.Min(end, end2) - math.Pi/2,
	}, nil
}

// meridianProject maps a meridian point at angle theta (radians from the
// zenith direction, y-up) through the stereographic transform, returning
// the projected y coordinate in y-up space.
func (p *Projector) meridianProject(theta float64) (float64, error) {
	x := p.rEq * math.Sin(theta)
	y := p.rEq * math.Cos(theta)
	if math.Abs(p.rEq-x) < 1e-12*p.rEq {
		return 0, errors.New(errors.ErrCodeDegenerateProjection,
			"meridian point at %.4f rad coincides with the projection point", theta)
	}
	return y * p.rEq / (p.rEq - x), nil
}

// azimuthAxisY locates the horizontal axis carrying the centres of all
// azimuth circles: the perpendicular construction through the midpoint of
// the zenith and the west horizon point.
func (p *Projector) azimuthAxisY(zY float64) float64 {
	zhX := -p.rEq / 2
	zhY := zY / 2
	theta := math.Atan2(p.rEq, zY)
	return zhY + zhX*math.Tan(theta)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
