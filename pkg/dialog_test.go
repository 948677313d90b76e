package pathedit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gucio321/pathedit/pkg/editor"
	"github.com/gucio321/pathedit/pkg/geometry"
	"github.com/gucio321/pathedit/pkg/pathdata"
)

type mockDialog struct {
	result    bool
	calls     int
	lastModel any
	lastTitle string
	fill      func(model any)
}

func (m *mockDialog) ShowModal(model any, title string) bool {
	m.calls++
	m.lastModel = model
	m.lastTitle = title

	if m.fill != nil {
		m.fill(model)
	}

	return m.result
}

type fakeBounds struct {
	r   geometry.Rect
	err error
}

func (f fakeBounds) Bounds(string) (geometry.Rect, error) {
	return f.r, f.err
}

func mustParse(t *testing.T, data string) *Document {
	t.Helper()

	d, err := Parse([]byte(data))
	require.NoError(t, err)

	return d
}

func TestDialogFlows_Cancel(t *testing.T) {
	tests := []struct {
		name  string
		run   func(*Document, Dialog)
		model any
		title string
	}{
		{"add", func(d *Document, dlg Dialog) { d.AddItem(dlg) }, &editor.Model{}, TitleAdd},
		{"insert", func(d *Document, dlg Dialog) { d.InsertItem(dlg) }, &editor.Model{}, TitleInsert},
		{"edit", func(d *Document, dlg Dialog) { d.EditSelected(dlg) }, &editor.Model{}, TitleEdit},
		{"scale", func(d *Document, dlg Dialog) { _, _ = d.ScaleDialog(dlg) }, &editor.ScaleOrMove{}, TitleScale},
		{"move", func(d *Document, dlg Dialog) { _, _ = d.MoveDialog(dlg) }, &editor.ScaleOrMove{}, TitleMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newSample(t)
			d.Select(0)
			dlg := &mockDialog{result: false}

			tt.run(d, dlg)

			assert.Equal(t, 1, dlg.calls)
			assert.IsType(t, tt.model, dlg.lastModel)
			assert.Equal(t, tt.title, dlg.lastTitle)
			assert.Equal(t, sampleData, d.Data())
		})
	}
}

func TestAddItem(t *testing.T) {
	d := mustParse(t, "M1,1")
	dlg := &mockDialog{result: true, fill: func(model any) {
		m := model.(*editor.Model)
		require.NoError(t, m.SetType(pathdata.ItemLine))
		m.SetValues(5, 6).SetFlags(true)
	}}

	require.True(t, d.AddItem(dlg))
	assert.Equal(t, "M1,1 L5,6", d.Data())
}

func TestInsertItem(t *testing.T) {
	d := mustParse(t, "M1,1 L3,3")
	dlg := &mockDialog{result: true, fill: func(model any) {
		model.(*editor.Model).SetValues(2, 2)
	}}

	assert.False(t, d.InsertItem(dlg))
	assert.Zero(t, dlg.calls)

	d.Select(1)
	require.True(t, d.InsertItem(dlg))
	assert.Equal(t, "M1,1 m2,2 L3,3", d.Data())
	assert.Equal(t, 1, d.Selected())
}

func TestEditSelected(t *testing.T) {
	d := mustParse(t, "M10,20 L30,40")
	dlg := &mockDialog{result: true, fill: func(model any) {
		m := model.(*editor.Model)
		assert.Equal(t, pathdata.ItemMove, m.Type())
		assert.Equal(t, editor.Values{10, 20}, m.Values)
		m.Values[0] = 99
	}}

	assert.False(t, d.EditSelected(dlg))
	assert.Zero(t, dlg.calls)

	d.Select(0)
	require.True(t, d.EditSelected(dlg))
	assert.Equal(t, "M99,20 L30,40", d.Data())
	assert.Equal(t, 0, d.Selected())
}

func TestScaleDialog(t *testing.T) {
	d := mustParse(t, "M0,0 L100,50")
	dlg := &mockDialog{result: true, fill: func(model any) {
		form := model.(*editor.ScaleOrMove)
		assert.True(t, form.IsScaleMode())
		assert.Equal(t, 100.0, form.Width())
		assert.Equal(t, 50.0, form.Height())
		form.SetWidth(200)
	}}

	ok, err := d.ScaleDialog(dlg)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "M0,0 L200,100", d.Data())
}

func TestScaleDialog_Invalid(t *testing.T) {
	d := mustParse(t, "M0,0 L100,50")
	dlg := &mockDialog{result: true, fill: func(model any) {
		form := model.(*editor.ScaleOrMove)
		form.AspectLocked = false
		form.SetWidth(0)
	}}

	ok, err := d.ScaleDialog(dlg)
	assert.ErrorIs(t, err, editor.ErrNotPositive)
	assert.False(t, ok)
	assert.Equal(t, "M0,0 L100,50", d.Data())
}

func TestScaleDialog_BoundsError(t *testing.T) {
	boundsErr := errors.New("boom")
	d := mustParse(t, "M0,0 L100,50").WithBounds(fakeBounds{err: boundsErr})
	dlg := &mockDialog{result: true}

	_, err := d.ScaleDialog(dlg)
	assert.ErrorIs(t, err, boundsErr)
	assert.Zero(t, dlg.calls)
}

func TestMoveDialog(t *testing.T) {
	d := mustParse(t, "M10,20 L30,40")
	dlg := &mockDialog{result: true, fill: func(model any) {
		form := model.(*editor.ScaleOrMove)
		assert.False(t, form.IsScaleMode())
		assert.Equal(t, -10.0, form.Width())
		assert.Equal(t, -20.0, form.Height())
	}}

	ok, err := d.MoveDialog(dlg)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "M0,0 L20,20", d.Data())
}

func TestMoveDialog_CustomBounds(t *testing.T) {
	d := mustParse(t, "M10,20").WithBounds(fakeBounds{r: geometry.Rect{MinX: 5, MinY: 5, MaxX: 10, MaxY: 10}})
	dlg := &mockDialog{result: true}

	_, err := d.MoveDialog(dlg)
	require.NoError(t, err)
	assert.Equal(t, "M5,15", d.Data())
}
