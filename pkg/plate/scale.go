package plate

import (
	"math"
	"strconv"
)

// rimScale emits the graduated degree ring shared by both faces of the
// mother: a fine one degree ring between rFine1 and rFine2, five degree
// ticks down to rTick, and ten degree labels at rLabel counted 0..90 per
// quadrant.
func rimScale(out *[]Instruction, rFine1, rFine2, rTick, rLabel float64) {
	for d := 0; d < 360; d += 5 {
		theta := float64(d) * math.Pi / 180
		*out = append(*out, StrokeLine{
			X1: rFine1 * math.Cos(theta), Y1: -rFine1 * math.Sin(theta),
			X2: rTick * math.Cos(theta), Y2: -rTick * math.Sin(theta),
			Width: 1, Paint: PaintLines,
		})
	}
	for d := 0; d < 360; d++ {
		theta := float64(d) * math.Pi / 180
		*out = append(*out, StrokeLine{
			X1: rFine1 * math.Cos(theta), Y1: -rFine1 * math.Sin(theta),
			X2: rFine2 * math.Cos(theta), Y2: -rFine2 * math.Sin(theta),
			Width: 1, Paint: PaintLines,
		})
	}
	for d := -180; d < 180; d += 10 {
		theta := float64(d) * math.Pi / 180
		label := quadrantDegrees(d)
		text := "✠"
		if label >= 0 {
			text = strconv.Itoa(label)
		}
		*out = append(*out, Label{
			Text: text,
			X:    rLabel * math.Cos(theta), Y: -rLabel * math.Sin(theta),
			HAlign: 0, VAlign: 0,
			Rotation: -theta - math.Pi/2,
			Size:     1.2, Paint: PaintText,
		})
	}
}

// quadrantDegrees folds a bearing into the 0..90 scale engraved on each
// quadrant of the rim. The seam at -180 carries a cross instead of a
// number, signalled by -1.
func quadrantDegrees(d int) int {
	switch {
	case d <= -180:
		return -1
	case d < -90:
		return d + 180
	case d < 0:
		return -d
	case d < 90:
		return d
	default:
		return 180 - d
	}
}
