package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultScaleOrMove(t *testing.T) {
	s := NewDefaultScaleOrMove()

	assert.Equal(t, 100.0, s.Width())
	assert.Equal(t, 100.0, s.Height())
	assert.False(t, s.IsScaleMode())
	assert.True(t, s.AspectLocked)
}

func TestScaleOrMove_AspectRatio(t *testing.T) {
	tests := []struct {
		name          string
		scaleMode     bool
		locked        bool
		setWidth      float64
		setHeight     float64
		width, height float64
	}{
		{"locked width", true, true, 200, 0, 200, 100},
		{"locked height", true, true, 0, 100, 200, 100},
		{"unlocked width", true, false, 200, 0, 200, 50},
		{"unlocked height", true, false, 0, 100, 100, 100},
		{"move mode width", false, true, 200, 0, 200, 50},
		{"move mode height", false, true, 0, 100, 100, 100},
		{"same width", true, true, 100, 0, 100, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScaleOrMove(100, 50, tt.scaleMode)
			s.AspectLocked = tt.locked

			if tt.setWidth != 0 {
				s.SetWidth(tt.setWidth)
			}

			if tt.setHeight != 0 {
				s.SetHeight(tt.setHeight)
			}

			assert.Equal(t, tt.width, s.Width())
			assert.Equal(t, tt.height, s.Height())
		})
	}
}

func TestScaleOrMove_AspectPreservedAcrossChanges(t *testing.T) {
	s := NewScaleOrMove(100, 200, true)

	s.SetWidth(50)
	assert.Equal(t, 100.0, s.Height())

	s.SetHeight(200)
	assert.Equal(t, 100.0, s.Width())
}

func TestScaleOrMove_Labels(t *testing.T) {
	w, h := NewScaleOrMove(1, 1, true).Labels()
	assert.Equal(t, "PathWidth", w)
	assert.Equal(t, "PathHeight", h)

	w, h = NewScaleOrMove(1, 1, false).Labels()
	assert.Equal(t, "X", w)
	assert.Equal(t, "Y", h)
}

func TestScaleOrMove_Validate(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		scaleMode     bool
		wantErr       bool
	}{
		{"move any values", -10, -20, false, false},
		{"move zero", 0, 0, false, false},
		{"scale positive", 100, 100, true, false},
		{"scale zero width", 0, 100, true, true},
		{"scale zero height", 100, 0, true, true},
		{"scale negative width", -10, 100, true, true},
		{"scale negative height", 100, -10, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewScaleOrMove(tt.width, tt.height, tt.scaleMode).Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotPositive)
				assert.Contains(t, err.Error(), "greater than zero")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScaleOrMove_ScaleFactors(t *testing.T) {
	s := NewScaleOrMove(200, 50, true)

	sx, sy := s.ScaleFactors(100, 100)
	assert.Equal(t, 2.0, sx)
	assert.Equal(t, 0.5, sy)

	sx, sy = s.ScaleFactors(0, 0)
	assert.Equal(t, 1.0, sx)
	assert.Equal(t, 1.0, sy)
}
