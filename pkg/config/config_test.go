package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePreset(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestLoad_JSON(t *testing.T) {
	path := writePreset(t, "preset.json", `{
		"sample": "square",
		"scaleX": 2,
		"moveY": -10,
		"view": true
	}`)

	p, err := Load(path, Default())
	require.NoError(t, err)

	assert.Equal(t, "square", p.Sample)
	assert.Equal(t, 2.0, p.ScaleX)
	assert.Equal(t, 1.0, p.ScaleY)
	assert.Equal(t, -10.0, p.MoveY)
	assert.True(t, p.View)
	assert.True(t, p.ShowOrigin)
	assert.False(t, p.Simplify)
}

func TestLoad_YAML(t *testing.T) {
	path := writePreset(t, "preset.yaml", "data: M0,0 L10,10\nfitWidth: 100\nfitHeight: 50\nsimplify: true\n")

	p, err := Load(path, Default())
	require.NoError(t, err)

	assert.Equal(t, "M0,0 L10,10", p.Data)
	assert.Equal(t, 100.0, p.FitWidth)
	assert.Equal(t, 50.0, p.FitHeight)
	assert.True(t, p.Simplify)
}

func TestLoad_RoundTrip(t *testing.T) {
	want := Default()
	want.InputFilePath = "in.txt"
	want.Diff = true
	want.StrokeWidth = 5

	data, err := want.Marshal()
	require.NoError(t, err)

	got, err := Load(writePreset(t, "preset.json", string(data)), Default())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("/nonexistent/preset.json", Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading preset file")

	_, err = Load(writePreset(t, "preset.json", `{"strokeWidth": 0}`), Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stroke width must be positive")

	_, err = Load(writePreset(t, "preset.json", `{"fitWidth": -1, "fitHeight": 10}`), Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fit size must not be negative")
}
