package render

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/dcf21/astrolabe/pkg/catalog"
	"github.com/dcf21/astrolabe/pkg/config"
	"github.com/dcf21/astrolabe/pkg/errors"
	"github.com/dcf21/astrolabe/pkg/plate"
)

func testPlate(t *testing.T, kind plate.Kind) *plate.Plate {
	t.Helper()
	c, err := plate.NewComposer(52, config.Default(), catalog.Embedded())
	if err != nil {
		t.Fatal(err)
	}
	p, err := c.Compose(kind)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRenderSVGIsDeterministic(t *testing.T) {
	p := testPlate(t, plate.MotherBack)
	a := RenderSVG(p)
	b := RenderSVG(p)
	if !bytes.Equal(a, b) {
		t.Error("repeated SVG renders differ")
	}
}

func TestRenderSVGStructure(t *testing.T) {
	p := testPlate(t, plate.Rete)
	out := string(RenderSVG(p))

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		"<circle", "<path", "<text", "</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output missing %q", want)
		}
	}
	if strings.Count(out, "<svg") != 1 {
		t.Error("SVG output has more than one root element")
	}
}

func TestRenderSVGAppliesTheme(t *testing.T) {
	p := testPlate(t, plate.MotherBack)
	theme := config.Theme{Lines: "#102030", Text: "#405060", Curves: "#708090", Faint: "#a0b0c0"}
	out := string(RenderSVG(p, WithTheme(theme)))

	for _, colour := range []string{"#102030", "#405060", "#708090"} {
		if !strings.Contains(out, colour) {
			t.Errorf("SVG output missing theme colour %q", colour)
		}
	}
}

func TestRenderJSONRoundTrip(t *testing.T) {
	for _, kind := range plate.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			p := testPlate(t, kind)
			data, err := RenderJSON(p)
			if err != nil {
				t.Fatalf("RenderJSON() error = %v", err)
			}
			back, err := DecodeJSON(data)
			if err != nil {
				t.Fatalf("DecodeJSON() error = %v", err)
			}
			if back.Kind != p.Kind || back.Latitude != p.Latitude {
				t.Errorf("metadata mismatch: %v/%v", back.Kind, back.Latitude)
			}
			if !reflect.DeepEqual(back.Instructions, p.Instructions) {
				t.Error("instructions do not survive the round trip")
			}
		})
	}
}

func TestRenderPNGProducesImage(t *testing.T) {
	p := testPlate(t, plate.Rule)
	data, err := RenderPNG(p, WithPNGScale(1))
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output does not start with a PNG signature")
	}
}

func TestRenderPNGMissingFont(t *testing.T) {
	p := testPlate(t, plate.Rule)
	_, err := RenderPNG(p, WithFontPath("/does/not/exist.ttf"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("RenderPNG() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestRenderDispatch(t *testing.T) {
	p := testPlate(t, plate.Alidade)

	if _, err := Render(p, "svg"); err != nil {
		t.Errorf("Render(svg) error = %v", err)
	}
	if _, err := Render(p, "json"); err != nil {
		t.Errorf("Render(json) error = %v", err)
	}
	if _, err := Render(p, "webp"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Render(webp) error = %v, want INVALID_FORMAT", err)
	}
}
