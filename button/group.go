package button

import "termui/ui"

// GroupMember is a widget that may belong to a radio group.
type GroupMember interface {
	ui.Widget
	Root() ui.Widget
	// RadioGroup returns the group id; ok is false for widgets that do not
	// take part in radio exclusivity.
	RadioGroup() (group int, ok bool)
	// ForceSelected sets the selected flag without coordinating the group.
	ForceSelected(selected bool)
}

// Walker enumerates root and every widget below it, each exactly once.
type Walker func(root ui.Widget) []ui.Widget

// Coordinator keeps at most one member of each radio group selected.
type Coordinator struct {
	walk Walker
}

// DefaultCoordinator walks the widget tree breadth first.
var DefaultCoordinator = NewCoordinator(ui.BreadthFirst)

func NewCoordinator(walk Walker) *Coordinator {
	return &Coordinator{walk: walk}
}

// DeselectGroupPeers deselects every other member of the group of member
// found in its tree. A member that is not attached to a tree has no peers.
func (c *Coordinator) DeselectGroupPeers(member GroupMember) {
	group, ok := member.RadioGroup()
	if !ok {
		return
	}
	root := member.Root()
	if root == nil {
		return
	}
	for _, w := range c.walk(root) {
		if w == member {
			continue
		}
		peer, ok := w.(GroupMember)
		if !ok {
			continue
		}
		if peerGroup, ok := peer.RadioGroup(); ok && peerGroup == group {
			peer.ForceSelected(false)
		}
	}
}
