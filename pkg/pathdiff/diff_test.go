package pathdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gucio321/pathedit/pkg/pathdata"
)

func mustParse(t *testing.T, data string) pathdata.Path {
	t.Helper()

	p, err := pathdata.ParseAll(data)
	require.NoError(t, err)

	return p
}

func TestRender_NoChanges(t *testing.T) {
	p := mustParse(t, "M0,0 L10,10")

	assert.Equal(t, NoChanges, Renderer{}.Render(p, p.Clone()))
}

func TestRender_SameLength(t *testing.T) {
	before := mustParse(t, "M0,0 L10,10")
	after := mustParse(t, "M0,0 L20,10")

	assert.Equal(t, "  M0,0\n- L[-1-]0,10\n+ L{+2+}0,10\n", Renderer{}.Render(before, after))
}

func TestRender_DifferentLength(t *testing.T) {
	before := mustParse(t, "M0,0")
	after := mustParse(t, "M0,0 z")

	assert.Equal(t, "- M0,0\n+ M0,0\n+ z\n", Renderer{}.Render(before, after))
}

func TestRender_Colored(t *testing.T) {
	before := mustParse(t, "M0,0 L10,10")
	after := mustParse(t, "M0,0 L20,10")

	out := Colored().Render(before, after)
	assert.Contains(t, out, "M0,0")
	assert.NotContains(t, out, "[-")
}
