package pathdata

//go:generate stringer -type=ItemType -linecomment

// ItemType is a kind of path command.
type ItemType int

const (
	// M/m - move to (X, Y)
	ItemMove ItemType = iota // Move
	// L/l - line to (EndX, EndY)
	ItemLine // Line
	// H/h - horizontal line to EndX
	ItemHorizontalLine // Horizontal Line
	// V/v - vertical line to EndY
	ItemVerticalLine // Vertical Line
	// C/c - cubic bezier with two control points
	ItemCubicBezier // Cubic Bezier
	// Q/q - quadratic bezier with one control point
	ItemQuadraticBezier // Quadratic Bezier
	// S/s - cubic bezier, first control point reflected from the previous command
	ItemSmoothCubicBezier // Smooth Cubic Bezier
	// T/t - quadratic bezier, control point reflected from the previous command
	ItemSmoothQuadraticBezier // Smooth Quadratic Bezier
	// A/a - elliptical arc
	ItemEllipticalArc // Elliptical Arc
	// Z/z - close path
	ItemClose // Close
)

// ItemTypes lists every kind in table order.
var ItemTypes = []ItemType{
	ItemMove,
	ItemLine,
	ItemHorizontalLine,
	ItemVerticalLine,
	ItemCubicBezier,
	ItemQuadraticBezier,
	ItemSmoothCubicBezier,
	ItemSmoothQuadraticBezier,
	ItemEllipticalArc,
	ItemClose,
}

// ItemTypeEnum maps display names (see String) to kinds.
var ItemTypeEnum = func() map[string]ItemType {
	m := make(map[string]ItemType)
	for _, t := range ItemTypes {
		m[t.String()] = t
	}
	return m
}()

var letters = [...]rune{'M', 'L', 'H', 'V', 'C', 'Q', 'S', 'T', 'A', 'Z'}

// Valid reports whether t is one of the ten known kinds.
func (t ItemType) Valid() bool {
	return t >= ItemMove && t <= ItemClose
}

// Letter returns the upper-case designator of t.
func (t ItemType) Letter() rune {
	if !t.Valid() {
		return '?'
	}

	return letters[t]
}

// ItemTypeFor looks up the kind designated by r. Only ASCII letters designate
// a kind, in either case.
func ItemTypeFor(r rune) (ItemType, bool) {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}

	for i, l := range letters {
		if l == r {
			return ItemType(i), true
		}
	}

	return 0, false
}
