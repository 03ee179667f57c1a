package projection

import (
	"math"
	"testing"

	"github.com/dcf21/astrolabe/pkg/errors"
)

func TestHorizonClosedForm(t *testing.T) {
	p := newTestProjector(t, 52)
	h, err := p.Horizon()
	if err != nil {
		t.Fatalf("Horizon() error = %v", err)
	}

	phi := 52 * Deg
	wantCY := -p.EquatorRadius() / math.Tan(phi)
	wantR := p.EquatorRadius() / math.Sin(phi)

	if math.Abs(h.CX) > tolerance {
		t.Errorf("horizon CX = %v, want 0", h.CX)
	}
	if math.Abs(h.CY-wantCY) > tolerance {
		t.Errorf("horizon CY = %v, want %v", h.CY, wantCY)
	}
	if math.Abs(h.R-wantR) > tolerance {
		t.Errorf("horizon R = %v, want %v", h.R, wantR)
	}
}

// The horizon always crosses the celestial equator at the east and west
// points, whatever the latitude.
func TestHorizonCrossesEquatorEastWest(t *testing.T) {
	for _, lat := range []float64{22, 52, 78, -37} {
		p := newTestProjector(t, lat)
		h, err := p.Horizon()
		if err != nil {
			t.Fatalf("Horizon() error = %v", err)
		}
		for _, x := range []float64{p.EquatorRadius(), -p.EquatorRadius()} {
			d := math.Hypot(x-h.CX, -h.CY)
			if math.Abs(d-h.R) > tolerance {
				t.Errorf("lat %v: east/west point (%v, 0) at distance %v from horizon, want %v",
					lat, x, d, h.R)
			}
		}
	}
}

// At the pole the horizon and the celestial equator are the same circle.
func TestPolarHorizonIsEquator(t *testing.T) {
	for _, lat := range []float64{90, -90} {
		p := newTestProjector(t, lat)
		h, err := p.Horizon()
		if err != nil {
			t.Fatalf("Horizon() error = %v", err)
		}
		eq := p.Equator()
		if math.Abs(h.CX-eq.CX) > tolerance ||
			math.Abs(h.CY-eq.CY) > tolerance ||
			math.Abs(h.R-eq.R) > tolerance {
			t.Errorf("lat %v: horizon %+v != equator %+v", lat, h, eq)
		}
	}
}

func TestAlmucantarsShrinkTowardZenith(t *testing.T) {
	p := newTestProjector(t, 52)
	prev := math.Inf(1)
	for alt := 0.0; alt <= 80; alt += 10 {
		c, err := p.Almucantar(alt)
		if err != nil {
			t.Fatalf("Almucantar(%v) error = %v", alt, err)
		}
		if c.R >= prev {
			t.Errorf("Almucantar(%v) R = %v, not shrinking (prev %v)", alt, c.R, prev)
		}
		prev = c.R
	}
}

func TestAlmucantarNinetyIsZenith(t *testing.T) {
	p := newTestProjector(t, 52)
	c, err := p.Almucantar(90)
	if err != nil {
		t.Fatalf("Almucantar(90) error = %v", err)
	}
	z, err := p.Zenith()
	if err != nil {
		t.Fatalf("Zenith() error = %v", err)
	}
	if c.R > tolerance {
		t.Errorf("Almucantar(90) R = %v, want 0", c.R)
	}
	if math.Abs(c.CY-z.Y) > tolerance || math.Abs(c.CX-z.X) > tolerance {
		t.Errorf("Almucantar(90) centre (%v, %v), want zenith %+v", c.CX, c.CY, z)
	}
}

// The circle of perpetual visibility grazes the horizon at the north
// point: internally tangent, never crossing.
func TestPerpetualVisibilityTangentToHorizon(t *testing.T) {
	p := newTestProjector(t, 52)
	visible, invisible := p.PerpetualCircles()
	h, err := p.Horizon()
	if err != nil {
		t.Fatalf("Horizon() error = %v", err)
	}

	gap := h.R - math.Hypot(h.CX, h.CY)
	if math.Abs(gap-visible.R) > tolerance {
		t.Errorf("visibility circle R = %v, want tangency gap %v", visible.R, gap)
	}
	if invisible.R <= p.EquatorRadius() {
		t.Errorf("invisibility circle R = %v, want beyond equator", invisible.R)
	}
	if p.OnPlate(invisible) {
		t.Error("invisibility circle should exceed the plate at latitude 52")
	}
}

func TestAzimuthArcPassesThroughZenith(t *testing.T) {
	p := newTestProjector(t, 52)
	z, err := p.Zenith()
	if err != nil {
		t.Fatalf("Zenith() error = %v", err)
	}

	for _, az := range []float64{-67.5, -22.5, 0, 33.75, 78.75} {
		arc, err := p.AzimuthArc(az)
		if err != nil {
			t.Fatalf("AzimuthArc(%v) error = %v", az, err)
		}
		d := math.Hypot(z.X-arc.CX, z.Y-arc.CY)
		if math.Abs(d-arc.R) > tolerance {
			t.Errorf("AzimuthArc(%v): zenith at distance %v from circle, want R %v", az, d, arc.R)
		}
		if arc.From >= arc.To {
			t.Errorf("AzimuthArc(%v): empty angular range [%v, %v]", az, arc.From, arc.To)
		}
	}
}

func TestAzimuthArcMeridianIsDegenerate(t *testing.T) {
	p := newTestProjector(t, 52)
	for _, az := range []float64{90, -90, 270} {
		_, err := p.AzimuthArc(az)
		if !errors.Is(err, errors.ErrCodeDegenerateProjection) {
			t.Errorf("AzimuthArc(%v) error = %v, want DEGENERATE_PROJECTION", az, err)
		}
	}
}

func TestAzimuthArcsMirrorAcrossMeridian(t *testing.T) {
	p := newTestProjector(t, 52)
	east, err := p.AzimuthArc(22.5)
	if err != nil {
		t.Fatalf("AzimuthArc(22.5) error = %v", err)
	}
	west, err := p.AzimuthArc(-22.5)
	if err != nil {
		t.Fatalf("AzimuthArc(-22.5) error = %v", err)
	}
	if math.Abs(east.CX+west.CX) > tolerance ||
		math.Abs(east.CY-west.CY) > tolerance ||
		math.Abs(east.R-west.R) > tolerance {
		t.Errorf("arcs not mirrored: east %+v, west %+v", east.Circle, west.Circle)
	}
}
