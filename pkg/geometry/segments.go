package geometry

import "github.com/gucio321/pathedit/pkg/pathdata"

// Point is an absolute position.
type Point struct {
	X, Y float64
}

// Segment is the control polygon of one command in absolute coordinates.
type Segment struct {
	Index int
	Kind  pathdata.ItemType
	From  Point
	To    Point
	// Controls are the explicit bezier control points, in order.
	Controls []Point
	// Pen is false for moves.
	Pen bool
}

// Segments resolves every command of path against its starting point, as
// given by pathdata.Path.StartingPosition. Close is drawn back to the start
// of the current subpath but leaves the current point where it was, so the
// command after it starts where the one before it ended.
func Segments(path pathdata.Path) []Segment {
	result := make([]Segment, 0, len(path))

	var cur, subpath Point
	for i, c := range path {
		s := Segment{
			Index: i,
			Kind:  c.Kind(),
			From:  cur,
			Pen:   true,
		}

		// control points of relative commands are offsets from the start
		var origin Point
		if !c.IsAbsolute() {
			origin = cur
		}

		rel := func(x, y float64) Point {
			return Point{origin.X + x, origin.Y + y}
		}

		switch v := c.(type) {
		case *pathdata.Move:
			s.Pen = false
		case *pathdata.CubicBezier:
			s.Controls = []Point{rel(v.Control1X, v.Control1Y), rel(v.Control2X, v.Control2Y)}
		case *pathdata.QuadraticBezier:
			s.Controls = []Point{rel(v.ControlX, v.ControlY)}
		case *pathdata.SmoothCubicBezier:
			s.Controls = []Point{rel(v.Control2X, v.Control2Y)}
		}

		x, y := pathdata.Advance(c, cur.X, cur.Y)
		s.To = Point{x, y}

		switch c.Kind() {
		case pathdata.ItemMove:
			subpath = s.To
		case pathdata.ItemClose:
			s.To = subpath
		}

		cur = Point{x, y}
		result = append(result, s)
	}

	return result
}
