package plate

// Plate space puts the origin at the pivot, x to the right and y down the
// page, in centimetres. Arc angles follow the drawing convention used by
// the sinks: a point on an arc at angle a is (CX + R*cos(a), CY + R*sin(a)),
// with To never less than From.

// Paint selects which theme colour a sink applies to an instruction.
type Paint string

const (
	PaintLines      Paint = "lines"
	PaintCurves     Paint = "curves"
	PaintText       Paint = "text"
	PaintFaint      Paint = "faint"
	PaintBackground Paint = "background"
)

// Instruction is one primitive drawing operation. The set of
// implementations is closed; sinks switch over the concrete types and
// treat an unknown instruction as a render error.
type Instruction interface {
	isInstruction()
}

// StrokeCircle draws the outline of a full circle.
type StrokeCircle struct {
	CX, CY, R float64
	Width     float64
	Dotted    bool
	Paint     Paint
}

// StrokeArc draws a circular arc from angle From to angle To.
type StrokeArc struct {
	CX, CY, R float64
	From, To  float64
	Width     float64
	Dotted    bool
	Paint     Paint
}

// StrokeLine draws a straight segment.
type StrokeLine struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Dotted         bool
	Paint          Paint
}

// StrokePolyline draws a connected series of segments, optionally closed.
type StrokePolyline struct {
	X, Y   []float64
	Closed bool
	Width  float64
	Paint  Paint
}

// FillCircle draws a filled disc. With PaintBackground it blanks out an
// area, which the composers use for the central holes.
type FillCircle struct {
	CX, CY, R float64
	Paint     Paint
}

// Label draws a text string anchored at (X, Y). HAlign and VAlign follow
// the convention -1 for start/top, 0 for centre, 1 for end/bottom.
// Rotation is in radians, clockwise on the page. Size multiplies the base
// font size.
type Label struct {
	Text     string
	X, Y     float64
	HAlign   int
	VAlign   int
	Rotation float64
	Size     float64
	Bold     bool
	Paint    Paint
}

func (StrokeCircle) isInstruction()   {}
func (StrokeArc) isInstruction()      {}
func (StrokeLine) isInstruction()     {}
func (StrokePolyline) isInstruction() {}
func (FillCircle) isInstruction()     {}
func (Label) isInstruction()          {}
