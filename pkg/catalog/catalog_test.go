package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dcf21/astrolabe/pkg/errors"
)

func TestEmbeddedParses(t *testing.T) {
	stars := Embedded()
	if len(stars) < 50 {
		t.Fatalf("embedded catalogue has %d stars, want at least 50", len(stars))
	}

	byName := make(map[string]Star, len(stars))
	for _, s := range stars {
		if s.RA < 0 || s.RA >= 360 {
			t.Errorf("%s: RA %v outside [0, 360)", s.Name, s.RA)
		}
		if s.Dec < -90 || s.Dec > 90 {
			t.Errorf("%s: Dec %v outside [-90, 90]", s.Name, s.Dec)
		}
		byName[s.Name] = s
	}

	sirius, ok := byName["Sirius"]
	if !ok {
		t.Fatal("Sirius missing from embedded catalogue")
	}
	if sirius.Mag > -1 {
		t.Errorf("Sirius magnitude = %v, want brighter than -1", sirius.Mag)
	}
	if _, ok := byName["Polaris"]; !ok {
		t.Error("Polaris missing from embedded catalogue")
	}
}

func TestEmbeddedIsStable(t *testing.T) {
	a := Embedded()
	b := Embedded()
	if len(a) != len(b) {
		t.Fatalf("repeated access returned different lengths: %d != %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("entry %d differs between accesses", i)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stars.dat")
	data := `# test catalogue
Sirius  101.287 -16.716 -1.46

Vega    279.234  38.784  0.03
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	stars, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(stars) != 2 {
		t.Fatalf("len = %d, want 2", len(stars))
	}
	if stars[0].Name != "Sirius" || stars[1].Name != "Vega" {
		t.Errorf("unexpected order: %v", stars)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		content  string
		wantCode errors.Code
	}{
		{"wrong columns", "Sirius 101.287 -16.716\n", errors.ErrCodeInvalidCatalog},
		{"bad magnitude", "Sirius 101.287 -16.716 bright\n", errors.ErrCodeInvalidCatalog},
		{"declination out of range", "Nowhere 10.0 95.0 1.0\n", errors.ErrCodeInvalidCatalog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "bad.dat")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Load() error = %v, want code %v", err, tt.wantCode)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "does-not-exist.dat"))
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			t.Errorf("Load() error = %v, want FILE_NOT_FOUND", err)
		}
	})
}

func TestBrighterThan(t *testing.T) {
	stars := []Star{
		{Name: "a", Mag: -1.4},
		{Name: "b", Mag: 2.0},
		{Name: "c", Mag: 4.0},
		{Name: "d", Mag: 4.01},
	}
	got := BrighterThan(stars, 4.0)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for _, s := range got {
		if s.Mag > 4.0 {
			t.Errorf("%s with magnitude %v passed the cut", s.Name, s.Mag)
		}
	}
}
