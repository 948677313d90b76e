// Package editor maps every path command kind onto one generic editing surface:
// six numeric value slots and three boolean flag slots.
package editor

import (
	"errors"
	"fmt"

	"github.com/gucio321/pathedit/pkg/pathdata"
)

const (
	// ValueSlots is the number of generic numeric slots (enough for a cubic bezier).
	ValueSlots = 6
	// FlagSlots is the number of generic flag slots (enough for an elliptical arc).
	FlagSlots = 3
)

type (
	// Values are the generic numeric slots.
	Values [ValueSlots]float64
	// Flags are the generic boolean slots.
	Flags [FlagSlots]bool
)

var ErrUnknownItemType = errors.New("unknown item type")

const (
	labelAbsolute = "Absolute Position"
	labelLargeArc = "Large Arc"
	labelSweep    = "Positive Sweep Direction"
)

// schema is one row of the registry. Slot order must match the order in which
// pathdata parses and formats the fields.
type schema struct {
	valueLabels []string
	flagLabels  []string
	build       func(Values, Flags) pathdata.Command
	decompose   func(pathdata.Command) (Values, Flags)
}

func mode(f Flags) pathdata.Mode {
	return pathdata.Mode{Absolute: f[0]}
}

var schemas = [...]schema{
	pathdata.ItemMove: {
		valueLabels: []string{"X", "Y"},
		flagLabels:  []string{labelAbsolute},
		build: func(v Values, f Flags) pathdata.Command {
			return &pathdata.Move{Mode: mode(f), X: v[0], Y: v[1]}
		},
		decompose: func(c pathdata.Command) (v Values, f Flags) {
			m := c.(*pathdata.Move)
			v[0], v[1] = m.X, m.Y
			f[0] = m.Absolute
			return v, f
		},
	},
	pathdata.ItemLine: {
		valueLabels: []string{"End X", "End Y"},
		flagLabels:  []string{labelAbsolute},
		build: func(v Values, f Flags) pathdata.Command {
			return &pathdata.Line{Mode: mode(f), EndX: v[0], EndY: v[1]}
		},
		decompose: func(c pathdata.Command) (v Values, f Flags) {
			l := c.(*pathdata.Line)
			v[0], v[1] = l.EndX, l.EndY
			f[0] = l.Absolute
			return v, f
		},
	},
	pathdata.ItemHorizontalLine: {
		valueLabels: []string{"End X"},
		flagLabels:  []string{labelAbsolute},
		build: func(v Values, f Flags) pathdata.Command {
			return &pathdata.HorizontalLine{Mode: mode(f), EndX: v[0]}
		},
		decompose: func(c pathdata.Command) (v Values, f Flags) {
			h := c.(*pathdata.HorizontalLine)
			v[0] = h.EndX
			f[0] = h.Absolute
			return v, f
		},
	},
	pathdata.ItemVerticalLine: {
		valueLabels: []string{"End Y"},
		flagLabels:  []string{labelAbsolute},
		build: func(v Values, f Flags) pathdata.Command {
			return &pathdata.VerticalLine{Mode: mode(f), EndY: v[0]}
		},
		decompose: func(c pathdata.Command) (v Values, f Flags) {
			l := c.(*pathdata.VerticalLine)
			v[0] = l.EndY
			f[0] = l.Absolute
			return v, f
		},
	},
	pathdata.ItemCubicBezier: {
		valueLabels: []string{"Control 1 X", "Control 1 Y", "Control 2 X", "Control 2 Y", "End X", "End Y"},
		flagLabels:  []string{labelAbsolute},
		build: func(v Values, f Flags) pathdata.Command {
			return &pathdata.CubicBezier{
				Mode:      mode(f),
				Control1X: v[0], Control1Y: v[1],
				Control2X: v[2], Control2Y: v[3],
				EndX: v[4], EndY: v[5],
			}
		},
		decompose: func(c pathdata.Command) (v Values, f Flags) {
			b := c.(*pathdata.CubicBezier)
			v = Values{b.Control1X, b.Control1Y, b.Control2X, b.Control2Y, b.EndX, b.EndY}
			f[0] = b.Absolute
			return v, f
		},
	},
	pathdata.ItemQuadraticBezier: {
		valueLabels: []string{"Control X", "Control Y", "End X", "End Y"},
		flagLabels:  []string{labelAbsolute},
		build: func(v Values, f Flags) pathdata.Command {
			return &pathdata.QuadraticBezier{Mode: mode(f), ControlX: v[0], ControlY: v[1], EndX: v[2], EndY: v[3]}
		},
		decompose: func(c pathdata.Command) (v Values, f Flags) {
			b := c.(*pathdata.QuadraticBezier)
			v[0], v[1], v[2], v[3] = b.ControlX, b.ControlY, b.EndX, b.EndY
			f[0] = b.Absolute
			return v, f
		},
	},
	pathdata.ItemSmoothCubicBezier: {
		valueLabels: []string{"Control 2 X", "Control 2 Y", "End X", "End Y"},
		flagLabels:  []string{labelAbsolute},
		build: func(v Values, f Flags) pathdata.Command {
			return &pathdata.SmoothCubicBezier{Mode: mode(f), Control2X: v[0], Control2Y: v[1], EndX: v[2], EndY: v[3]}
		},
		decompose: func(c pathdata.Command) (v Values, f Flags) {
			b := c.(*pathdata.SmoothCubicBezier)
			v[0], v[1], v[2], v[3] = b.Control2X, b.Control2Y, b.EndX, b.EndY
			f[0] = b.Absolute
			return v, f
		},
	},
	pathdata.ItemSmoothQuadraticBezier: {
		valueLabels: []string{"End X", "End Y"},
		flagLabels:  []string{labelAbsolute},
		build: func(v Values, f Flags) pathdata.Command {
			return &pathdata.SmoothQuadraticBezier{Mode: mode(f), EndX: v[0], EndY: v[1]}
		},
		decompose: func(c pathdata.Command) (v Values, f Flags) {
			b := c.(*pathdata.SmoothQuadraticBezier)
			v[0], v[1] = b.EndX, b.EndY
			f[0] = b.Absolute
			return v, f
		},
	},
	pathdata.ItemEllipticalArc: {
		valueLabels: []string{"Size X", "Size Y", "Rotation Angle", "End X", "End Y"},
		flagLabels:  []string{labelAbsolute, labelLargeArc, labelSweep},
		build: func(v Values, f Flags) pathdata.Command {
			return &pathdata.EllipticalArc{
				Mode:                     mode(f),
				SizeX:                    v[0],
				SizeY:                    v[1],
				RotationAngle:            v[2],
				EndX:                     v[3],
				EndY:                     v[4],
				IsLargeArc:               f[1],
				IsPositiveSweepDirection: f[2],
			}
		},
		decompose: func(c pathdata.Command) (v Values, f Flags) {
			a := c.(*pathdata.EllipticalArc)
			v[0], v[1], v[2], v[3], v[4] = a.SizeX, a.SizeY, a.RotationAngle, a.EndX, a.EndY
			f[0], f[1], f[2] = a.Absolute, a.IsLargeArc, a.IsPositiveSweepDirection
			return v, f
		},
	},
	pathdata.ItemClose: {
		build: func(Values, Flags) pathdata.Command {
			return &pathdata.Close{}
		},
		decompose: func(pathdata.Command) (v Values, f Flags) {
			return v, f
		},
	},
}

// Description tells a presentation layer which slots are live for a kind and
// how to label them. Labels of unused slots are empty.
type Description struct {
	Type        pathdata.ItemType
	ValueLabels [ValueSlots]string
	FlagLabels  [FlagSlots]string
	ValueCount  int
	FlagCount   int
}

// DescribeFor looks up the slot layout of t. An unknown t has no live slots.
func DescribeFor(t pathdata.ItemType) Description {
	result := Description{Type: t}
	if !t.Valid() {
		return result
	}

	s := schemas[t]
	result.ValueCount = copy(result.ValueLabels[:], s.valueLabels)
	result.FlagCount = copy(result.FlagLabels[:], s.flagLabels)

	return result
}

// BuildCommand constructs a command of kind t from the leading live slots.
// Data in the remaining slots is ignored.
func BuildCommand(t pathdata.ItemType, values Values, flags Flags) (pathdata.Command, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownItemType, t)
	}

	d := DescribeFor(t)
	var v Values
	var f Flags
	copy(v[:d.ValueCount], values[:d.ValueCount])
	copy(f[:d.FlagCount], flags[:d.FlagCount])

	return schemas[t].build(v, f), nil
}

// Decompose writes the fields of c into the leading slots; the rest stay zero.
func Decompose(c pathdata.Command) (pathdata.ItemType, Values, Flags) {
	t := c.Kind()
	v, f := schemas[t].decompose(c)

	return t, v, f
}
