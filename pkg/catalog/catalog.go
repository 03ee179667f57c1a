// Package catalog loads the star positions plotted on the rete.
//
// A curated extract of the Yale Bright Star Catalogue is embedded directly
// into the binary using go:embed; Load reads the same whitespace format
// from disk for users who want to plot their own star list.
package catalog

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	_ "embed"

	"github.com/dcf21/astrolabe/pkg/errors"
)

// Star is one catalogue entry. RA and Dec are J2000 positions in degrees,
// Mag the visual magnitude (smaller is brighter).
type Star struct {
	Name string
	RA   float64
	Dec  float64
	Mag  float64
}

//go:embed bright_stars.dat
var brightStarsData []byte

var (
	embedded     []Star
	embeddedOnce sync.Once
)

// Embedded returns the built-in bright star list. The data is parsed once
// on first access; callers must not mutate the returned slice.
func Embedded() []Star {
	embeddedOnce.Do(func() {
		stars, err := parse(strings.NewReader(string(brightStarsData)))
		if err != nil {
			// The embedded file is validated by tests; a parse failure
			// here is a build defect.
			panic(err)
		}
		embedded = stars
	})
	return embedded
}

// Load reads a star list from path. Each non-comment line carries four
// whitespace-separated columns: name, RA degrees, Dec degrees, magnitude.
func Load(path string) ([]Star, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err,
				"star catalogue not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err,
			"failed to open star catalogue: %s", path)
	}
	defer f.Close()

	stars, err := parse(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err,
			"failed to parse star catalogue: %s", path)
	}
	return stars, nil
}

// BrighterThan filters stars to those at or above the given magnitude
// limit, preserving order.
func BrighterThan(stars []Star, limit float64) []Star {
	out := make([]Star, 0, len(stars))
	for _, s := range stars {
		if s.Mag <= limit {
			out = append(out, s)
		}
	}
	return out
}

func parse(r io.Reader) ([]Star, error) {
	var stars []Star
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, errors.New(errors.ErrCodeInvalidCatalog,
				"line %d: expected 4 columns, got %d", lineNum, len(fields))
		}

		star := Star{Name: fields[0]}
		var err error
		if star.RA, err = strconv.ParseFloat(fields[1], 64); err != nil {
			return nil, errors.New(errors.ErrCodeInvalidCatalog,
				"line %d: invalid right ascension %q", lineNum, fields[1])
		}
		if star.Dec, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return nil, errors.New(errors.ErrCodeInvalidCatalog,
				"line %d: invalid declination %q", lineNum, fields[2])
		}
		if star.Mag, err = strconv.ParseFloat(fields[3], 64); err != nil {
			return nil, errors.New(errors.ErrCodeInvalidCatalog,
				"line %d: invalid magnitude %q", lineNum, fields[3])
		}

		if err := errors.ValidateDeclination(star.Dec); err != nil {
			return nil, errors.New(errors.ErrCodeInvalidCatalog,
				"line %d: declination %.4f outside [-90, 90]", lineNum, star.Dec)
		}

		stars = append(stars, star)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return stars, nil
}
