package pathedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gucio321/pathedit/pkg/pathdata"
)

func TestParseSVG(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			"arc in root",
			`<svg xmlns="http://www.w3.org/2000/svg"><path d="M-50,90 A90,90 0 0 0 180,90"/></svg>`,
			"M-50,90 A90,90,0,0,0,180,90",
		},
		{
			"quadratic and smooth curves",
			`<svg><path d="M0,0 Q5,10 10,0 T20,0 S30,10 40,0"/></svg>`,
			"M0,0 Q5,10,10,0 T20,0 S30,10,40,0",
		},
		{
			"relative move in root",
			`<svg><path d="m10,10 l5,5 z"/></svg>`,
			"M10,10 l5,5 z",
		},
		{
			"relative moves of joined paths",
			`<svg><path d="m10,10 l5,5"/><path d="m1,2 h3"/></svg>`,
			"M10,10 l5,5 M1,2 h3",
		},
		{
			"nested groups",
			`<svg><g id="a"><path d="M1,1 L2,2"/><g><path d="M3,3 V9"/></g></g><g><path d="M4,4 H0"/></g></svg>`,
			"M1,1 L2,2 M3,3 V9 M4,4 H0",
		},
		{
			"root paths before groups",
			`<svg><g><path d="M1,1 L2,2"/></g><path d="M5,5 L6,6"/></svg>`,
			"M5,5 L6,6 M1,1 L2,2",
		},
		{
			"other shapes and empty paths ignored",
			`<svg><rect x="1" y="1" width="5" height="5"/><path d=""/><path d="M0,0 L1,1"/></svg>`,
			"M0,0 L1,1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseSVG([]byte(tt.svg))
			require.NoError(t, err)
			require.NotNil(t, d)

			assert.Equal(t, tt.want, d.Data())
			assert.NoError(t, d.Err())
		})
	}
}

func TestParseSVG_NoPaths(t *testing.T) {
	d, err := ParseSVG([]byte(`<svg><rect width="5" height="5"/></svg>`))

	assert.ErrorIs(t, err, ErrNoSVGPaths)
	require.NotNil(t, d)
	assert.Zero(t, d.Len())
}

func TestParseSVG_InvalidXML(t *testing.T) {
	d, err := ParseSVG([]byte(`<svg><path d="M0,0"`))

	assert.Nil(t, d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading svg")
}

func TestParseSVG_Partial(t *testing.T) {
	d, err := ParseSVG([]byte(`<svg><path d="M0,0 L1,1"/><path d="M2,2 L3"/><path d="M9,9"/></svg>`))

	require.ErrorIs(t, err, pathdata.ErrArgumentCount)
	assert.Contains(t, err.Error(), "svg path 2")
	require.NotNil(t, d)

	assert.Equal(t, 3, d.Len())
	assert.Equal(t, "M0,0 L1,1 M2,2", d.Data())
	assert.ErrorIs(t, d.Err(), pathdata.ErrArgumentCount)
}
