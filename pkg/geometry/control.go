package geometry

import (
	"github.com/gucio321/pathedit/pkg/pathdata"
)

// ControlBounds bounds the control polygon of path data: every current point
// plus every bezier control point. Arcs contribute their end point and the
// extreme of their radii around it, so the result may be larger than the
// drawn curve but never misses a node.
type ControlBounds struct{}

func (ControlBounds) Bounds(data string) (Rect, error) {
	path, err := pathdata.ParseAll(data)
	if err != nil {
		return Empty, err
	}

	return PathBounds(path), nil
}

// PathBounds is ControlBounds for an already parsed path.
func PathBounds(path pathdata.Path) Rect {
	var b rectBuilder

	var x, y float64
	for _, c := range path {
		// control points are relative to the point before c
		ox, oy := 0.0, 0.0
		if !c.IsAbsolute() {
			ox, oy = x, y
		}

		switch v := c.(type) {
		case *pathdata.CubicBezier:
			b.add(ox+v.Control1X, oy+v.Control1Y)
			b.add(ox+v.Control2X, oy+v.Control2Y)
		case *pathdata.QuadraticBezier:
			b.add(ox+v.ControlX, oy+v.ControlY)
		case *pathdata.SmoothCubicBezier:
			b.add(ox+v.Control2X, oy+v.Control2Y)
		case *pathdata.EllipticalArc:
			b.add(x, y)
			ex, ey := pathdata.Advance(c, x, y)
			midX, midY := (x+ex)/2, (y+ey)/2
			b.add(midX-v.SizeX, midY-v.SizeY)
			b.add(midX+v.SizeX, midY+v.SizeY)
		case *pathdata.Close:
			continue
		}

		x, y = pathdata.Advance(c, x, y)
		b.add(x, y)
	}

	return b.rect()
}
