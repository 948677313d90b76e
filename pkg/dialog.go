package pathedit

import (
	"github.com/kpango/glg"

	"github.com/gucio321/pathedit/pkg/editor"
)

// Dialog shows a form model to the user and blocks until it is closed.
// model is an *editor.Model or an *editor.ScaleOrMove; the dialog edits it in
// place and returns true when the user confirms.
type Dialog interface {
	ShowModal(model any, title string) bool
}

const (
	TitleAdd    = "Add Path Command"
	TitleInsert = "Insert Path Command"
	TitleEdit   = "Edit Path Command"
	TitleScale  = "Scale Path"
	TitleMove   = "Move Path"
)

// AddItem asks for a new command and appends it.
func (d *Document) AddItem(dialog Dialog) bool {
	form := editor.New()
	if !dialog.ShowModal(form, TitleAdd) {
		return false
	}

	glg.Debugf("adding %s", form.Result())
	d.Add(form.Command())

	return true
}

// InsertItem asks for a new command and inserts it before the selected one.
// The selection index is kept, so it points at the inserted command.
func (d *Document) InsertItem(dialog Dialog) bool {
	at := d.Selected()
	if at == -1 {
		return false
	}

	form := editor.New()
	if !dialog.ShowModal(form, TitleInsert) {
		return false
	}

	glg.Debugf("inserting %s at %d", form.Result(), at)

	return d.Insert(at, form.Command()) == nil
}

// EditSelected opens the selected command in a form and replaces it on confirm.
func (d *Document) EditSelected(dialog Dialog) bool {
	at := d.Selected()
	c, ok := d.At(at)
	if !ok {
		return false
	}

	form := editor.NewFromCommand(c)
	if !dialog.ShowModal(form, TitleEdit) {
		return false
	}

	glg.Debugf("replacing %s with %s at %d", c, form.Result(), at)

	return d.Replace(at, form.Command()) == nil
}

// ScaleDialog asks for a new path size, prefilled with the current one.
// A confirmed form that fails validation is reported and nothing changes.
func (d *Document) ScaleDialog(dialog Dialog) (bool, error) {
	r, err := d.Bounds()
	if err != nil {
		return false, err
	}

	form := editor.NewScaleOrMove(r.Width(), r.Height(), true)
	if !dialog.ShowModal(form, TitleScale) {
		return false, nil
	}

	if err := form.Validate(); err != nil {
		return false, err
	}

	sx, sy := form.ScaleFactors(r.Width(), r.Height())
	glg.Debugf("scaling by %v x %v", sx, sy)
	d.ScalePath(sx, sy)

	return true, nil
}

// MoveDialog asks for an offset, prefilled with the one that moves the
// top-left corner of the bounds to the origin.
func (d *Document) MoveDialog(dialog Dialog) (bool, error) {
	r, err := d.Bounds()
	if err != nil {
		return false, err
	}

	form := editor.NewScaleOrMove(-r.MinX, -r.MinY, false)
	if !dialog.ShowModal(form, TitleMove) {
		return false, nil
	}

	glg.Debugf("moving by %v, %v", form.Width(), form.Height())
	d.MovePath(form.Width(), form.Height())

	return true, nil
}
