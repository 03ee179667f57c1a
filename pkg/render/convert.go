package render

import (
	"bytes"
	"os/exec"

	"github.com/dcf21/astrolabe/pkg/errors"
	"github.com/dcf21/astrolabe/pkg/plate"
)

// RenderPDF renders the plate to SVG and converts it with rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin
// (Linux).
func RenderPDF(p *plate.Plate, opts ...Option) ([]byte, error) {
	return rsvgConvert(RenderSVG(p, opts...), "pdf")
}

// rsvgConvert shells out to rsvg-convert for format conversion.
func rsvgConvert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, errors.New(errors.ErrCodeRenderBackend,
			"%s export requires librsvg (brew install librsvg / apt install librsvg2-bin)", format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.Command("rsvg-convert", args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderBackend, err,
			"rsvg-convert failed: %s", errBuf.String())
	}
	return out.Bytes(), nil
}
