package editor

import (
	"fmt"

	"github.com/gucio321/pathedit/pkg/pathdata"
)

// Model is the state of an add/edit form: a chosen kind plus generic slots.
// Changing the kind never clears the slots; slots the new kind does not use
// are simply ignored until a kind that uses them is chosen again.
type Model struct {
	itemType pathdata.ItemType
	Values   Values
	Flags    Flags
}

// New creates a model for adding a command. It starts as a Move with zeroed slots.
func New() *Model {
	return &Model{
		itemType: pathdata.ItemMove,
	}
}

// NewFromCommand creates a model for editing c.
func NewFromCommand(c pathdata.Command) *Model {
	t, v, f := Decompose(c)
	return &Model{
		itemType: t,
		Values:   v,
		Flags:    f,
	}
}

// ItemTypes lists the kinds the model can be switched to.
func (m *Model) ItemTypes() []pathdata.ItemType {
	return pathdata.ItemTypes
}

func (m *Model) Type() pathdata.ItemType {
	return m.itemType
}

// SetType switches the kind, keeping slot data.
func (m *Model) SetType(t pathdata.ItemType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownItemType, t)
	}

	m.itemType = t

	return nil
}

// SetValues fills the leading value slots.
func (m *Model) SetValues(values ...float64) *Model {
	copy(m.Values[:], values)
	return m
}

// SetFlags fills the leading flag slots.
func (m *Model) SetFlags(flags ...bool) *Model {
	copy(m.Flags[:], flags)
	return m
}

func (m *Model) Description() Description {
	return DescribeFor(m.itemType)
}

func (m *Model) ValueLabels() [ValueSlots]string {
	return m.Description().ValueLabels
}

func (m *Model) FlagLabels() [FlagSlots]string {
	return m.Description().FlagLabels
}

// Command builds the command the form currently describes.
func (m *Model) Command() pathdata.Command {
	// itemType is always valid here (see SetType).
	c, _ := BuildCommand(m.itemType, m.Values, m.Flags)
	return c
}

// Result is the path data of Command.
func (m *Model) Result() string {
	return pathdata.Format(m.Command())
}
