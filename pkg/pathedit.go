// Package pathedit holds an editable path: the command list, the selected
// command and the last parse error, plus the add/edit/scale/move flows that
// drive editor models through a Dialog.
package pathedit

import (
	"fmt"
	"strings"
	"sync"

	"github.com/kpango/glg"

	"github.com/gucio321/pathedit/pkg/editor"
	"github.com/gucio321/pathedit/pkg/geometry"
	"github.com/gucio321/pathedit/pkg/pathdata"
)

// BoundsProvider measures path data.
type BoundsProvider interface {
	Bounds(data string) (geometry.Rect, error)
}

var _ BoundsProvider = geometry.ControlBounds{}

// Document is safe for concurrent use; every method takes the same lock.
type Document struct {
	mu       sync.Mutex
	path     pathdata.Path
	data     string
	selected int
	err      error
	bounds   BoundsProvider
}

// NewDocument creates an empty document with nothing selected.
func NewDocument() *Document {
	return &Document{
		selected: -1,
		bounds:   geometry.ControlBounds{},
	}
}

// WithBounds replaces the provider used by Bounds, FitTo and the
// scale/move flows.
func (d *Document) WithBounds(b BoundsProvider) *Document {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.bounds = b

	return d
}

// SetData replaces the commands with the parsed data.
// On a parse error the commands before the malformed one are kept, the error
// is recorded (see Err) and returned. The selection survives if it still
// points at a command.
func (d *Document) SetData(data string) error {
	path, err := pathdata.ParseAll(data)

	return d.load(data, path, err)
}

// load replaces the commands with path, recording err as the parse error of data.
func (d *Document) load(data string, path pathdata.Path, err error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.data = data
	d.path, d.err = path, err
	if d.err != nil {
		glg.Warnf("path data parsed partially (%d commands kept): %v", len(d.path), d.err)
	}

	if d.selected >= len(d.path) {
		d.selected = -1
	}

	return d.err
}

// Err returns the error of the last SetData, or nil once the commands have
// been edited since.
func (d *Document) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.err
}

// Data returns the text last passed to SetData, or the serialized commands
// after any edit.
func (d *Document) Data() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.data
}

// changed regenerates data after an edit. Caller holds the lock.
func (d *Document) changed() {
	d.data = d.path.String()
	d.err = nil
}

// Commands returns a copy of the commands.
func (d *Document) Commands() pathdata.Path {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.path.Clone()
}

func (d *Document) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.path)
}

// At returns a copy of the command at i.
func (d *Document) At(i int) (pathdata.Command, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if i < 0 || i >= len(d.path) {
		return nil, false
	}

	return pathdata.Clone(d.path[i]), true
}

// Add appends a copy of c.
func (d *Document) Add(c pathdata.Command) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.path = append(d.path, pathdata.Clone(c))
	d.changed()
}

// Insert places a copy of c at index i, shifting the rest down. i may equal Len.
func (d *Document) Insert(i int, c pathdata.Command) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if i < 0 || i > len(d.path) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(d.path))
	}

	d.path = append(d.path, nil)
	copy(d.path[i+1:], d.path[i:])
	d.path[i] = pathdata.Clone(c)
	d.changed()

	return nil
}

// Replace swaps the command at i for a copy of c.
func (d *Document) Replace(i int, c pathdata.Command) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if i < 0 || i >= len(d.path) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(d.path))
	}

	d.path[i] = pathdata.Clone(c)
	d.changed()

	return nil
}

// Delete removes the selected command. The selection stays on the same index,
// or moves to the last command when the last one was removed.
func (d *Document) Delete() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.selected < 0 {
		return false
	}

	target := d.selected
	d.path = append(d.path[:target], d.path[target+1:]...)

	switch {
	case len(d.path) == 0:
		d.selected = -1
	case target >= len(d.path):
		d.selected = len(d.path) - 1
	}

	d.changed()

	return true
}

// Clear removes every command and the selection.
func (d *Document) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.path = nil
	d.selected = -1
	d.changed()
}

// MoveUp swaps the selected command with the one before it; the selection follows.
func (d *Document) MoveUp() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.canMoveUp() {
		return false
	}

	i := d.selected
	d.path[i-1], d.path[i] = d.path[i], d.path[i-1]
	d.selected = i - 1
	d.changed()

	return true
}

// MoveDown swaps the selected command with the one after it; the selection follows.
func (d *Document) MoveDown() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.canMoveDown() {
		return false
	}

	i := d.selected
	d.path[i+1], d.path[i] = d.path[i], d.path[i+1]
	d.selected = i + 1
	d.changed()

	return true
}

// Select selects the command at i. Anything out of range clears the selection.
func (d *Document) Select(i int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if i < 0 || i >= len(d.path) {
		i = -1
	}

	d.selected = i
}

// Selected returns the selected index or -1.
func (d *Document) Selected() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.selected
}

func (d *Document) canMoveUp() bool {
	return d.selected > 0
}

func (d *Document) canMoveDown() bool {
	return d.selected >= 0 && d.selected < len(d.path)-1
}

func (d *Document) CanMoveUp() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.canMoveUp()
}

func (d *Document) CanMoveDown() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.canMoveDown()
}

func (d *Document) SomethingSelected() bool {
	return d.Selected() != -1
}

func (d *Document) HasCommands() bool {
	return d.Len() > 0
}

// ScalePath scales every command.
func (d *Document) ScalePath(sx, sy float64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.path.ScalePath(sx, sy)
	d.changed()
}

// MovePath moves every command. Relative commands are shifted too.
func (d *Document) MovePath(dx, dy float64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.path.MovePath(dx, dy)
	d.changed()
}

// PathUpTo returns the data of the commands 0..i inclusive, or "" if i is out of range.
func (d *Document) PathUpTo(i int) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	if i < 0 || i >= len(d.path) {
		return ""
	}

	return d.path[:i+1].String()
}

// SegmentData returns standalone data drawing only command i: a move to the
// point where i starts followed by the command itself.
func (d *Document) SegmentData(i int) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.segmentData(i)
}

func (d *Document) segmentData(i int) string {
	if i < 0 || i >= len(d.path) {
		return ""
	}

	x, y := d.path.StartingPosition(i)
	start := &pathdata.Move{Mode: pathdata.Abs, X: x, Y: y}

	return strings.Join([]string{start.String(), d.path[i].String()}, " ")
}

// SelectedData is SegmentData of the selected command.
func (d *Document) SelectedData() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.segmentData(d.selected)
}

// Bounds measures the current commands.
func (d *Document) Bounds() (geometry.Rect, error) {
	d.mu.Lock()
	data, provider := d.path.String(), d.bounds
	d.mu.Unlock()

	r, err := provider.Bounds(data)
	if err != nil {
		return geometry.Empty, fmt.Errorf("measuring path: %w", err)
	}

	return r, nil
}

// FitTo scales the path so that its bounds measure width x height.
func (d *Document) FitTo(width, height float64) error {
	form := editor.NewScaleOrMove(width, height, true)
	if err := form.Validate(); err != nil {
		return err
	}

	r, err := d.Bounds()
	if err != nil {
		return err
	}

	if r.Width() == 0 && r.Height() == 0 {
		return ErrEmptyPath
	}

	d.ScalePath(form.ScaleFactors(r.Width(), r.Height()))

	return nil
}
