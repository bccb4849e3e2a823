package button

import (
	"slices"
	"testing"

	"termui/ui"

	"github.com/stretchr/testify/assert"
)

// fakeMember is a group member that is not a ButtonBase.
type fakeMember struct {
	ui.Base
	group  int
	forced []bool
}

func newFakeMember(group int) *fakeMember {
	m := &fakeMember{group: group}
	m.Init(m, ui.KindRadio)
	return m
}

func (m *fakeMember) RadioGroup() (int, bool) { return m.group, true }

func (m *fakeMember) ForceSelected(selected bool) {
	m.forced = append(m.forced, selected)
	m.SetSelected(selected)
}

func TestDeselectGroupPeers(t *testing.T) {
	a := newFakeMember(1)
	b := newFakeMember(2)
	c := newFakeMember(1)
	c.SetSelected(true)
	b.SetSelected(true)
	radio := NewRadioButton("r", 1, Radio)
	ui.Row(a, ui.Column(b, c), radio)

	radio.SetSelected(true)
	assert.True(t, radio.IsSelected())
	assert.Equal(t, []bool{false}, a.forced)
	assert.Equal(t, []bool{false}, c.forced)
	assert.Nil(t, b.forced)
	assert.False(t, c.IsSelected())
	assert.True(t, b.IsSelected())
}

func TestDeselectGroupPeersAnyOrder(t *testing.T) {
	reversed := NewCoordinator(func(root ui.Widget) []ui.Widget {
		widgets := ui.BreadthFirst(root)
		slices.Reverse(widgets)
		return widgets
	})
	a := NewRadioButton("A", 1, Radio)
	b := NewRadioButton("B", 1, Radio)
	c := NewRadioButton("C", 1, Radio)
	for _, r := range []*RadioButton{a, b, c} {
		r.SetCoordinator(reversed)
	}
	ui.Row(a, b, c)

	a.SetSelected(true)
	b.SetSelected(true)

	assert.False(t, a.IsSelected())
	assert.True(t, b.IsSelected())
	assert.False(t, c.IsSelected())
}

func TestCoordinatorUsesWalker(t *testing.T) {
	var roots []ui.Widget
	walker := NewCoordinator(func(root ui.Widget) []ui.Widget {
		roots = append(roots, root)
		return ui.BreadthFirst(root)
	})
	radio := NewRadioButton("A", 1, Radio)
	radio.SetCoordinator(walker)
	row := ui.Row(radio)

	radio.SetSelected(true)
	assert.Equal(t, []ui.Widget{row}, roots)

	radio.SetSelected(false)
	assert.Len(t, roots, 1)
}

func TestDetachedRadioHasNoPeers(t *testing.T) {
	walks := 0
	counting := NewCoordinator(func(root ui.Widget) []ui.Widget {
		walks++
		return ui.BreadthFirst(root)
	})
	radio := NewRadioButton("A", 1, Radio)
	radio.SetCoordinator(counting)

	radio.SetSelected(true)
	assert.True(t, radio.IsSelected())
	assert.Zero(t, walks)
}

func TestNonRadiosAreNotPeers(t *testing.T) {
	check := NewCheckBox("Wrap", Check)
	toggle := NewCheckBox("Bold", Push)
	radio := NewRadioButton("A", 0, Radio)
	ui.Row(check, toggle, radio)
	check.SetSelected(true)
	toggle.SetSelected(true)

	radio.SetSelected(true)
	assert.True(t, check.IsSelected())
	assert.True(t, toggle.IsSelected())

	DefaultCoordinator.DeselectGroupPeers(check)
	assert.True(t, radio.IsSelected())
}

func TestSetRadioGroup(t *testing.T) {
	a := NewRadioButton("A", 1, Radio)
	b := NewRadioButton("B", 1, Radio)
	ui.Row(a, b)
	a.SetSelected(true)

	b.SetRadioGroup(2)
	b.SetSelected(true)
	assert.True(t, a.IsSelected())

	a.SetRadioGroup(2)
	assert.True(t, a.IsSelected())
	a.SetSelected(false)
	a.SetSelected(true)
	assert.False(t, b.IsSelected())
}

func TestForceSelectedSkipsCoordination(t *testing.T) {
	a := NewRadioButton("A", 1, Radio)
	b := NewRadioButton("B", 1, Radio)
	ui.Row(a, b)
	a.SetSelected(true)

	b.ForceSelected(true)
	assert.True(t, a.IsSelected())
	assert.True(t, b.IsSelected())
}
