package editor

import "errors"

var ErrNotPositive = errors.New("width and height must be greater than zero")

const (
	DefaultWidth  = 100
	DefaultHeight = 100
)

// ScaleOrMove is the state of the scale/move form.
// In scale mode Width and Height are the requested path size; in move mode they
// are the X and Y offset.
type ScaleOrMove struct {
	width, height float64
	scaleMode     bool
	// AspectLocked keeps width:height constant while editing in scale mode.
	AspectLocked bool
}

// NewScaleOrMove creates the form. The aspect ratio starts locked.
func NewScaleOrMove(width, height float64, scaleMode bool) *ScaleOrMove {
	return &ScaleOrMove{
		width:        width,
		height:       height,
		scaleMode:    scaleMode,
		AspectLocked: true,
	}
}

// NewDefaultScaleOrMove creates a move form with the default size.
func NewDefaultScaleOrMove() *ScaleOrMove {
	return NewScaleOrMove(DefaultWidth, DefaultHeight, false)
}

func (s *ScaleOrMove) Width() float64 {
	return s.width
}

func (s *ScaleOrMove) Height() float64 {
	return s.height
}

func (s *ScaleOrMove) IsScaleMode() bool {
	return s.scaleMode
}

func (s *ScaleOrMove) locked() bool {
	return s.scaleMode && s.AspectLocked
}

// SetWidth sets the width; with a locked aspect the height follows.
func (s *ScaleOrMove) SetWidth(w float64) *ScaleOrMove {
	if w == s.width {
		return s
	}

	if s.locked() && s.width != 0 {
		s.height *= w / s.width
	}

	s.width = w

	return s
}

// SetHeight sets the height; with a locked aspect the width follows.
func (s *ScaleOrMove) SetHeight(h float64) *ScaleOrMove {
	if h == s.height {
		return s
	}

	if s.locked() && s.height != 0 {
		s.width *= h / s.height
	}

	s.height = h

	return s
}

// Labels returns captions for the two inputs.
func (s *ScaleOrMove) Labels() (width, height string) {
	if s.scaleMode {
		return "PathWidth", "PathHeight"
	}

	return "X", "Y"
}

// Validate reports whether the form may be committed.
// Move offsets are never validated.
func (s *ScaleOrMove) Validate() error {
	if s.scaleMode && (s.width <= 0 || s.height <= 0) {
		return ErrNotPositive
	}

	return nil
}

// ScaleFactors returns the factors that resize a pathWidth x pathHeight path
// to the requested size.
func (s *ScaleOrMove) ScaleFactors(pathWidth, pathHeight float64) (sx, sy float64) {
	sx, sy = 1, 1
	if pathWidth != 0 {
		sx = s.width / pathWidth
	}

	if pathHeight != 0 {
		sy = s.height / pathHeight
	}

	return sx, sy
}
