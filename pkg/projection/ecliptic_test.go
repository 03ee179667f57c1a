package projection

import (
	"math"
	"testing"
)

func TestEclipticPointSolstices(t *testing.T) {
	p := newTestProjector(t, 52)

	tests := []struct {
		name    string
		lambda  float64
		wantRA  float64
		wantDec float64
	}{
		{"vernal equinox", 0, 0, 0},
		{"summer solstice", 90, 90, testObliquity},
		{"autumnal equinox", 180, 180, 0},
		{"winter solstice", 270, 270, -testObliquity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eq := p.EclipticPoint(tt.lambda)
			if math.Abs(eq.RA-tt.wantRA) > tolerance {
				t.Errorf("RA = %v, want %v", eq.RA, tt.wantRA)
			}
			if math.Abs(eq.Dec-tt.wantDec) > tolerance {
				t.Errorf("Dec = %v, want %v", eq.Dec, tt.wantDec)
			}
		})
	}
}

func TestEclipticSampling(t *testing.T) {
	p := newTestProjector(t, 52)
	pts, err := p.Ecliptic(2)
	if err != nil {
		t.Fatalf("Ecliptic(2) error = %v", err)
	}
	if len(pts) != 180 {
		t.Fatalf("len = %d, want 180", len(pts))
	}

	// The ecliptic stays between the two tropic circles, touching both.
	inner, outer := p.Tropics()
	minR, maxR := math.Inf(1), 0.0
	for _, pt := range pts {
		r := math.Hypot(pt.X, pt.Y)
		minR = math.Min(minR, r)
		maxR = math.Max(maxR, r)
	}
	if minR < inner.R-tolerance {
		t.Errorf("ecliptic dips inside the inner tropic: %v < %v", minR, inner.R)
	}
	if maxR > outer.R+tolerance {
		t.Errorf("ecliptic escapes the outer tropic: %v > %v", maxR, outer.R)
	}
	if math.Abs(minR-inner.R) > 1e-3 || math.Abs(maxR-outer.R) > 1e-3 {
		t.Errorf("ecliptic should graze both tropics, got [%v, %v] vs [%v, %v]",
			minR, maxR, inner.R, outer.R)
	}
}

func TestEclipticDefaultStep(t *testing.T) {
	p := newTestProjector(t, 52)
	pts, err := p.Ecliptic(0)
	if err != nil {
		t.Fatalf("Ecliptic(0) error = %v", err)
	}
	if len(pts) != 180 {
		t.Errorf("len = %d, want default two degree sampling", len(pts))
	}
}

func TestZodiacRibsLieOnCurve(t *testing.T) {
	p := newTestProjector(t, 52)
	pts, err := p.Ecliptic(2)
	if err != nil {
		t.Fatalf("Ecliptic(2) error = %v", err)
	}

	// Sign boundaries fall every 30 degrees, which the two degree grid
	// samples exactly.
	for sign := 0; sign < 12; sign++ {
		rib, err := p.ZodiacRib(float64(sign) * 30)
		if err != nil {
			t.Fatalf("ZodiacRib(%d) error = %v", sign*30, err)
		}
		on := pts[sign*15]
		if math.Abs(rib.X-on.X) > tolerance || math.Abs(rib.Y-on.Y) > tolerance {
			t.Errorf("sign %d rib %+v not on sampled curve point %+v", sign, rib, on)
		}
	}
}
