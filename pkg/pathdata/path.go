package pathdata

import "strings"

// Path is an ordered sequence of commands.
type Path []Command

// String joins the commands with single spaces.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = Format(c)
	}

	return strings.Join(parts, " ")
}

// Clone deep-copies p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}

	result := make(Path, len(p))
	for i, c := range p {
		result[i] = Clone(c)
	}

	return result
}

// ScalePath scales every command (see ScalePath).
func (p Path) ScalePath(sx, sy float64) {
	for _, c := range p {
		ScalePath(c, sx, sy)
	}
}

// MovePath moves every command (see MovePath).
func (p Path) MovePath(dx, dy float64) {
	for _, c := range p {
		MovePath(c, dx, dy)
	}
}

// Advance returns the current point after c is applied at (x, y).
// Close does not change the current point.
func Advance(c Command, x, y float64) (float64, float64) {
	var endX, endY float64
	hasX, hasY := true, true

	switch v := c.(type) {
	case *Move:
		endX, endY = v.X, v.Y
	case *Line:
		endX, endY = v.EndX, v.EndY
	case *HorizontalLine:
		endX, hasY = v.EndX, false
	case *VerticalLine:
		endY, hasX = v.EndY, false
	case *CubicBezier:
		endX, endY = v.EndX, v.EndY
	case *QuadraticBezier:
		endX, endY = v.EndX, v.EndY
	case *SmoothCubicBezier:
		endX, endY = v.EndX, v.EndY
	case *SmoothQuadraticBezier:
		endX, endY = v.EndX, v.EndY
	case *EllipticalArc:
		endX, endY = v.EndX, v.EndY
	default:
		return x, y
	}

	if hasX {
		if c.IsAbsolute() {
			x = endX
		} else {
			x += endX
		}
	}

	if hasY {
		if c.IsAbsolute() {
			y = endY
		} else {
			y += endY
		}
	}

	return x, y
}

// StartingPosition returns the current point before the command at index,
// starting from the origin. Close does not move the current point.
func (p Path) StartingPosition(index int) (x, y float64) {
	for i := 0; i < index && i < len(p); i++ {
		x, y = Advance(p[i], x, y)
	}

	return x, y
}
