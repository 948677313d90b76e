package pathdata

// ScalePath multiplies every x field of c by sx and every y field by sy.
// Relative deltas scale like distances, so the mode is not consulted.
// An arc's RotationAngle is left alone: a non-uniform scale of a rotated
// ellipse is therefore not exact.
func ScalePath(c Command, sx, sy float64) {
	switch v := c.(type) {
	case *Move:
		v.X *= sx
		v.Y *= sy
	case *Line:
		v.EndX *= sx
		v.EndY *= sy
	case *HorizontalLine:
		v.EndX *= sx
	case *VerticalLine:
		v.EndY *= sy
	case *CubicBezier:
		v.Control1X *= sx
		v.Control1Y *= sy
		v.Control2X *= sx
		v.Control2Y *= sy
		v.EndX *= sx
		v.EndY *= sy
	case *QuadraticBezier:
		v.ControlX *= sx
		v.ControlY *= sy
		v.EndX *= sx
		v.EndY *= sy
	case *SmoothCubicBezier:
		v.Control2X *= sx
		v.Control2Y *= sy
		v.EndX *= sx
		v.EndY *= sy
	case *SmoothQuadraticBezier:
		v.EndX *= sx
		v.EndY *= sy
	case *EllipticalArc:
		v.SizeX *= sx
		v.SizeY *= sy
		v.EndX *= sx
		v.EndY *= sy
	case *Close:
	}
}

// MovePath adds dx to every x position of c and dy to every y position.
// NOTE: relative commands are shifted too, which bends a path that mixes
// absolute and relative commands instead of translating it.
// An arc keeps its size and rotation.
func MovePath(c Command, dx, dy float64) {
	switch v := c.(type) {
	case *Move:
		v.X += dx
		v.Y += dy
	case *Line:
		v.EndX += dx
		v.EndY += dy
	case *HorizontalLine:
		v.EndX += dx
	case *VerticalLine:
		v.EndY += dy
	case *CubicBezier:
		v.Control1X += dx
		v.Control1Y += dy
		v.Control2X += dx
		v.Control2Y += dy
		v.EndX += dx
		v.EndY += dy
	case *QuadraticBezier:
		v.ControlX += dx
		v.ControlY += dy
		v.EndX += dx
		v.EndY += dy
	case *SmoothCubicBezier:
		v.Control2X += dx
		v.Control2Y += dy
		v.EndX += dx
		v.EndY += dy
	case *SmoothQuadraticBezier:
		v.EndX += dx
		v.EndY += dy
	case *EllipticalArc:
		v.EndX += dx
		v.EndY += dy
	case *Close:
	}
}
