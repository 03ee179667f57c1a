package projection

import "math"

// EclipticPoint returns the equatorial position of the point of the
// ecliptic at longitude lambda (degrees along the ecliptic from the vernal
// equinox).
func (p *Projector) EclipticPoint(lambda float64) Equatorial {
	l := lambda * Deg
	eps := p.obliquity * Deg
	dec := math.Asin(math.Sin(eps)*math.Sin(l)) / Deg
	ra := math.Atan2(math.Cos(eps)*math.Sin(l), math.Cos(l)) / Deg
	return Equatorial{RA: normalizeDeg(ra), Dec: dec}
}

// Ecliptic samples the projected ecliptic every step degrees of ecliptic
// longitude and returns the points of one full closed circuit, first point
// not repeated.
//
// The ecliptic is the one plate curve not emitted in closed form: sampling
// it keeps the zodiac ribs exactly on the curve, and a step of at most two
// degrees bounds the visible faceting below print resolution.
func (p *Projector) Ecliptic(step float64) ([]Point, error) {
	if step <= 0 {
		step = 2
	}
	n := int(math.Ceil(360 / step))
	pts := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		lambda := float64(i) * 360 / float64(n)
		pt, err := p.Project(p.EclipticPoint(lambda))
		if err != nil {
			return nil, err
		}
		pts = append(pts, pt)
	}
	return pts, nil
}

// ZodiacRib returns the projected endpoints of the boundary between two
// zodiacal signs: the segment of the ecliptic meridian at longitude lambda
// between the ecliptic and the nearest exact sampling point. In practice
// the composer uses the returned on-curve point to anchor sign boundaries
// and tick marks, so ribs land exactly on the sampled curve.
func (p *Projector) ZodiacRib(lambda float64) (Point, error) {
	return p.Project(p.EclipticPoint(lambda))
}
