package plate

import "math"

// charSpacingRad is the per character angular advance of circular text,
// scaled by size and divided by radius. The value approximates the width
// of an average glyph at the base font size, in centimetres.
const charSpacingRad = 0.28

// circularText decomposes a string into one rotated Label per character,
// laid out along a circle of the given radius about (cx, cy). azimuth is
// the bearing of the middle of the text in degrees, measured
// counterclockwise from the bottom of the circle, matching the engraving
// convention of the caption rings. Sinks therefore never need text-on-path
// support.
func circularText(out *[]Instruction, text string, cx, cy, radius, azimuth, size float64) {
	runes := []rune(text)
	if len(runes) == 0 {
		return
	}
	step := charSpacingRad * size / radius
	// Centre the text on the azimuth, reading clockwise.
	start := (azimuth-90)*math.Pi/180 + step*float64(len(runes)-1)/2

	for i, r := range runes {
		theta := start - step*float64(i)
		*out = append(*out, Label{
			Text: string(r),
			X:    cx + radius*math.Cos(theta),
			Y:    cy - radius*math.Sin(theta),
			HAlign: 0, VAlign: 0,
			Rotation: -theta - math.Pi/2,
			Size:     size,
			Paint:    PaintText,
		})
	}
}
