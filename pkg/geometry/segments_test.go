package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gucio321/pathedit/pkg/pathdata"
)

func TestSegments(t *testing.T) {
	path, err := pathdata.ParseAll("M10,10 l10,0 c0,10 10,10 10,0 V0 z")
	require.NoError(t, err)

	got := Segments(path)
	require.Len(t, got, 5)

	assert.Equal(t, Segment{Index: 0, Kind: pathdata.ItemMove, From: Point{0, 0}, To: Point{10, 10}}, got[0])
	assert.Equal(t, Segment{Index: 1, Kind: pathdata.ItemLine, From: Point{10, 10}, To: Point{20, 10}, Pen: true}, got[1])
	assert.Equal(t, []Point{{20, 20}, {30, 20}}, got[2].Controls)
	assert.Equal(t, Point{30, 10}, got[2].To)
	assert.Equal(t, Point{30, 0}, got[3].To)
	assert.Equal(t, Point{30, 0}, got[4].From)
	assert.Equal(t, Point{10, 10}, got[4].To)
}

func TestSegments_AfterClose(t *testing.T) {
	path, err := pathdata.ParseAll("M10,10 L30,10 L30,30 z l5,5 Z L0,0")
	require.NoError(t, err)

	got := Segments(path)
	require.Len(t, got, len(path))

	assert.Equal(t, Point{30, 30}, got[3].From)
	assert.Equal(t, Point{10, 10}, got[3].To)
	assert.Equal(t, Point{30, 30}, got[4].From)
	assert.Equal(t, Point{35, 35}, got[4].To)
	assert.Equal(t, Point{10, 10}, got[5].To)
	assert.Equal(t, Point{35, 35}, got[6].From)

	for i, s := range got {
		x, y := path.StartingPosition(i)
		assert.Equal(t, Point{x, y}, s.From, "segment %d", i)
	}
}

func TestSegments_Empty(t *testing.T) {
	assert.Empty(t, Segments(nil))
}
