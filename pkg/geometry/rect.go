// Package geometry computes path bounds.
package geometry

import "math"

// Rect is an axis-aligned rectangle; Y grows downwards.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Empty is the rectangle returned for paths without any point.
var Empty = Rect{}

func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// IsEmpty reports whether r has no area.
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 && r.Height() <= 0
}

// rectBuilder grows a rectangle point by point.
type rectBuilder struct {
	r   Rect
	any bool
}

func (b *rectBuilder) add(x, y float64) {
	if !b.any {
		b.r = Rect{MinX: x, MinY: y, MaxX: x, MaxY: y}
		b.any = true

		return
	}

	b.r.MinX = math.Min(b.r.MinX, x)
	b.r.MinY = math.Min(b.r.MinY, y)
	b.r.MaxX = math.Max(b.r.MaxX, x)
	b.r.MaxY = math.Max(b.r.MaxY, y)
}

func (b *rectBuilder) rect() Rect {
	if !b.any {
		return Empty
	}

	return b.r
}
