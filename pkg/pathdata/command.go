// Package pathdata models path data: a sequence of single-letter commands
// followed by numeric arguments, in absolute (upper case) or relative (lower case) mode.
package pathdata

import "math"

// Command is one of the ten path commands: *Move, *Line, *HorizontalLine,
// *VerticalLine, *CubicBezier, *QuadraticBezier, *SmoothCubicBezier,
// *SmoothQuadraticBezier, *EllipticalArc or *Close.
// The set is closed; operations dispatch on it with type switches.
type Command interface {
	Kind() ItemType
	IsAbsolute() bool
	// SetAbsolute changes the mode (and so the designator) without touching any field.
	SetAbsolute(absolute bool)
	String() string

	command()
}

var (
	_ Command = &Move{}
	_ Command = &Line{}
	_ Command = &HorizontalLine{}
	_ Command = &VerticalLine{}
	_ Command = &CubicBezier{}
	_ Command = &QuadraticBezier{}
	_ Command = &SmoothCubicBezier{}
	_ Command = &SmoothQuadraticBezier{}
	_ Command = &EllipticalArc{}
	_ Command = &Close{}
)

// Mode holds the absolute/relative switch shared by all commands except Close.
type Mode struct {
	Absolute bool
}

// Abs and Rel are shorthands for composite literals, e.g. &Move{Mode: Abs, X: 1, Y: 2}.
var (
	Abs = Mode{Absolute: true}
	Rel = Mode{Absolute: false}
)

func (m *Mode) IsAbsolute() bool {
	return m.Absolute
}

func (m *Mode) SetAbsolute(absolute bool) {
	m.Absolute = absolute
}

func (*Mode) command() {}

type Move struct {
	Mode
	X, Y float64
}

type Line struct {
	Mode
	EndX, EndY float64
}

type HorizontalLine struct {
	Mode
	EndX float64
}

type VerticalLine struct {
	Mode
	EndY float64
}

type CubicBezier struct {
	Mode
	Control1X, Control1Y float64
	Control2X, Control2Y float64
	EndX, EndY           float64
}

type QuadraticBezier struct {
	Mode
	ControlX, ControlY float64
	EndX, EndY         float64
}

type SmoothCubicBezier struct {
	Mode
	Control2X, Control2Y float64
	EndX, EndY           float64
}

type SmoothQuadraticBezier struct {
	Mode
	EndX, EndY float64
}

// EllipticalArc draws an arc of an ellipse with radii SizeX/SizeY rotated by
// RotationAngle degrees.
type EllipticalArc struct {
	Mode
	SizeX, SizeY             float64
	RotationAngle            float64
	IsLargeArc               bool
	IsPositiveSweepDirection bool
	EndX, EndY               float64
}

// Close has no mode: it is always written as "z".
type Close struct{}

func (*Move) Kind() ItemType                  { return ItemMove }
func (*Line) Kind() ItemType                  { return ItemLine }
func (*HorizontalLine) Kind() ItemType        { return ItemHorizontalLine }
func (*VerticalLine) Kind() ItemType          { return ItemVerticalLine }
func (*CubicBezier) Kind() ItemType           { return ItemCubicBezier }
func (*QuadraticBezier) Kind() ItemType       { return ItemQuadraticBezier }
func (*SmoothCubicBezier) Kind() ItemType     { return ItemSmoothCubicBezier }
func (*SmoothQuadraticBezier) Kind() ItemType { return ItemSmoothQuadraticBezier }
func (*EllipticalArc) Kind() ItemType         { return ItemEllipticalArc }
func (*Close) Kind() ItemType                 { return ItemClose }

func (c *Move) String() string                  { return Format(c) }
func (c *Line) String() string                  { return Format(c) }
func (c *HorizontalLine) String() string        { return Format(c) }
func (c *VerticalLine) String() string          { return Format(c) }
func (c *CubicBezier) String() string           { return Format(c) }
func (c *QuadraticBezier) String() string       { return Format(c) }
func (c *SmoothCubicBezier) String() string     { return Format(c) }
func (c *SmoothQuadraticBezier) String() string { return Format(c) }
func (c *EllipticalArc) String() string         { return Format(c) }
func (c *Close) String() string                 { return Format(c) }

func (*Close) IsAbsolute() bool { return false }
func (*Close) SetAbsolute(bool) {}
func (*Close) command()         {}

// MinX, MinY, MaxX and MaxY bound the control points and the end point.
// The start point is not known to the command and is not included.

func (c *CubicBezier) MinX() float64 {
	return math.Min(c.Control1X, math.Min(c.Control2X, c.EndX))
}

func (c *CubicBezier) MinY() float64 {
	return math.Min(c.Control1Y, math.Min(c.Control2Y, c.EndY))
}

func (c *CubicBezier) MaxX() float64 {
	return math.Max(c.Control1X, math.Max(c.Control2X, c.EndX))
}

func (c *CubicBezier) MaxY() float64 {
	return math.Max(c.Control1Y, math.Max(c.Control2Y, c.EndY))
}

// Designator returns the command letter: upper case when absolute.
func Designator(c Command) string {
	letter := c.Kind().Letter()
	if c.Kind() == ItemClose || !c.IsAbsolute() {
		letter += 'a' - 'A'
	}

	return string(letter)
}

// Clone returns a copy of c that shares nothing with it.
func Clone(c Command) Command {
	switch v := c.(type) {
	case *Move:
		cp := *v
		return &cp
	case *Line:
		cp := *v
		return &cp
	case *HorizontalLine:
		cp := *v
		return &cp
	case *VerticalLine:
		cp := *v
		return &cp
	case *CubicBezier:
		cp := *v
		return &cp
	case *QuadraticBezier:
		cp := *v
		return &cp
	case *SmoothCubicBezier:
		cp := *v
		return &cp
	case *SmoothQuadraticBezier:
		cp := *v
		return &cp
	case *EllipticalArc:
		cp := *v
		return &cp
	case *Close:
		return &Close{}
	}

	return nil
}
