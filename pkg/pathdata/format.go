package pathdata

import (
	"strconv"
	"strings"
)

// Format writes c as path data: its designator followed by its arguments,
// comma separated, e.g. "A10,20,0,1,0,50,60".
func Format(c Command) string {
	switch v := c.(type) {
	case *Move:
		return join(c, num(v.X), num(v.Y))
	case *Line:
		return join(c, num(v.EndX), num(v.EndY))
	case *HorizontalLine:
		return join(c, num(v.EndX))
	case *VerticalLine:
		return join(c, num(v.EndY))
	case *CubicBezier:
		return join(c,
			num(v.Control1X), num(v.Control1Y),
			num(v.Control2X), num(v.Control2Y),
			num(v.EndX), num(v.EndY))
	case *QuadraticBezier:
		return join(c, num(v.ControlX), num(v.ControlY), num(v.EndX), num(v.EndY))
	case *SmoothCubicBezier:
		return join(c, num(v.Control2X), num(v.Control2Y), num(v.EndX), num(v.EndY))
	case *SmoothQuadraticBezier:
		return join(c, num(v.EndX), num(v.EndY))
	case *EllipticalArc:
		return join(c,
			num(v.SizeX), num(v.SizeY), num(v.RotationAngle),
			flag(v.IsLargeArc), flag(v.IsPositiveSweepDirection),
			num(v.EndX), num(v.EndY))
	case *Close:
		return Designator(c)
	}

	return ""
}

func join(c Command, args ...string) string {
	return Designator(c) + strings.Join(args, ",")
}

// num formats v with as few digits as round-trip requires, never in exponent form.
func num(v float64) string {
	if v == 0 {
		// drop the sign of -0
		v = 0
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

func flag(b bool) string {
	if b {
		return "1"
	}

	return "0"
}
