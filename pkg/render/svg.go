package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/dcf21/astrolabe/pkg/plate"
)

// RenderSVG renders a plate to SVG. The output is deterministic: the same
// plate always produces identical bytes.
func RenderSVG(p *plate.Plate, opts ...Option) []byte {
	r := newRenderer(opts...)
	size := 2 * p.Extent * unitsPerCM

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		size, size, size, size)
	fmt.Fprintf(&buf, `<rect width="%.1f" height="%.1f" fill="#ffffff"/>`+"\n", size, size)
	fmt.Fprintf(&buf, `<g transform="translate(%.1f %.1f)">`+"\n",
		p.Extent*unitsPerCM, p.Extent*unitsPerCM)

	for _, ins := range p.Instructions {
		r.svgInstruction(&buf, ins)
	}

	buf.WriteString("</g>\n</svg>\n")
	return buf.Bytes()
}

func (r *renderer) svgInstruction(buf *bytes.Buffer, ins plate.Instruction) {
	switch v := ins.(type) {
	case plate.StrokeCircle:
		fmt.Fprintf(buf, `<circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="%s"%s/>`+"\n",
			coord(v.CX), coord(v.CY), coord(v.R), r.paint(v.Paint), r.strokeWidth(v.Width), dash(v.Dotted))

	case plate.StrokeArc:
		fmt.Fprintf(buf, `<path d="%s" fill="none" stroke="%s" stroke-width="%s"%s/>`+"\n",
			arcPath(v.CX, v.CY, v.R, v.From, v.To), r.paint(v.Paint), r.strokeWidth(v.Width), dash(v.Dotted))

	case plate.StrokeLine:
		fmt.Fprintf(buf, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"%s/>`+"\n",
			coord(v.X1), coord(v.Y1), coord(v.X2), coord(v.Y2), r.paint(v.Paint), r.strokeWidth(v.Width), dash(v.Dotted))

	case plate.StrokePolyline:
		buf.WriteString(`<path d="`)
		for i := range v.X {
			if i == 0 {
				fmt.Fprintf(buf, "M %s %s", coord(v.X[i]), coord(v.Y[i]))
			} else {
				fmt.Fprintf(buf, " L %s %s", coord(v.X[i]), coord(v.Y[i]))
			}
		}
		if v.Closed {
			buf.WriteString(" Z")
		}
		fmt.Fprintf(buf, `" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
			r.paint(v.Paint), r.strokeWidth(v.Width))

	case plate.FillCircle:
		fmt.Fprintf(buf, `<circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
			coord(v.CX), coord(v.CY), coord(v.R), r.paint(v.Paint))

	case plate.Label:
		r.svgLabel(buf, v)
	}
}

func (r *renderer) svgLabel(buf *bytes.Buffer, v plate.Label) {
	anchor := "middle"
	switch v.HAlign {
	case -1:
		anchor = "start"
	case 1:
		anchor = "end"
	}
	baseline := "central"
	switch v.VAlign {
	case -1:
		baseline = "hanging"
	case 1:
		baseline = "text-after-edge"
	}
	weight := ""
	if v.Bold {
		weight = ` font-weight="bold"`
	}
	transform := ""
	if v.Rotation != 0 {
		transform = fmt.Sprintf(` transform="rotate(%.2f %s %s)"`,
			v.Rotation*180/math.Pi, coord(v.X), coord(v.Y))
	}
	fmt.Fprintf(buf, `<text x="%s" y="%s" font-size="%.2f" font-family="serif" fill="%s" text-anchor="%s" dominant-baseline="%s"%s%s>%s</text>`+"\n",
		coord(v.X), coord(v.Y), v.Size*r.fontSize*unitsPerCM, r.paint(v.Paint),
		anchor, baseline, weight, transform, escape(v.Text))
}

func (r *renderer) strokeWidth(w float64) string {
	if w <= 0 {
		w = 1
	}
	return fmt.Sprintf("%.2f", w*r.lineBase*unitsPerCM)
}

func dash(dotted bool) string {
	if !dotted {
		return ""
	}
	return ` stroke-dasharray="1 1"`
}

// coord formats a plate coordinate in user units with fixed precision so
// output stays deterministic across platforms.
func coord(cm float64) string {
	v := cm * unitsPerCM
	if math.Abs(v) < 5e-4 {
		v = 0
	}
	return fmt.Sprintf("%.3f", v)
}

// arcPath emits an SVG arc segment sweeping from angle From to angle To.
func arcPath(cx, cy, radius, from, to float64) string {
	x1 := cx + radius*math.Cos(from)
	y1 := cy + radius*math.Sin(from)
	x2 := cx + radius*math.Cos(to)
	y2 := cy + radius*math.Sin(to)
	large := 0
	if to-from > math.Pi {
		large = 1
	}
	return fmt.Sprintf("M %s %s A %s %s 0 %d 1 %s %s",
		coord(x1), coord(y1), coord(radius), coord(radius), large, coord(x2), coord(y2))
}

func escape(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
