package ui

import (
	"termui/logging"

	"github.com/gdamore/tcell/v2"
)

// Manager owns a widget tree and routes input to it. It keeps track of
// the focused widget, the widget holding the mouse capture and the widget
// under the pointer. All methods must be called from the UI goroutine.
type Manager struct {
	root      Widget
	focus     Widget
	capture   Widget
	mouseOver Widget
	pointer   Point
	buttons   tcell.ButtonMask
	queue     []queued
}

type queued struct {
	target Widget
	msg    Message
}

const pointerButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) SetRoot(root Widget) {
	if m.root != nil {
		m.root.base().manager = nil
		m.forget(m.root)
	}
	m.root = root
	if root != nil {
		root.base().manager = m
	}
}

func (m *Manager) Root() Widget { return m.root }

// Resize gives the root widget the whole area and lays it out.
func (m *Manager) Resize(size Size) {
	if m.root == nil {
		return
	}
	SetBounds(m.root, Rect{Width: size.Width, Height: size.Height})
}

func (m *Manager) Focus() Widget { return m.focus }

// SetFocus moves the keyboard focus to w, or clears it for nil. The
// FocusLeave and FocusEnter messages are queued until DispatchMessages.
func (m *Manager) SetFocus(w Widget) {
	if w == m.focus {
		return
	}
	old := m.focus
	m.focus = w
	logging.Debugf("manager: focus %s -> %s", describe(old), describe(w))
	if old != nil {
		m.enqueue(old, Message{Kind: FocusLeave})
	}
	if w != nil {
		m.enqueue(w, Message{Kind: FocusEnter})
	}
}

// FocusNext moves the focus to the next (or previous) enabled focus stop in
// depth-first order, wrapping around. It reports whether the focus moved.
func (m *Manager) FocusNext(forward bool) bool {
	var stops []Widget
	current := -1
	for _, w := range DepthFirst(m.root) {
		b := w.base()
		if !b.focusStop || b.disabled {
			continue
		}
		if w == m.focus {
			current = len(stops)
		}
		stops = append(stops, w)
	}
	if len(stops) == 0 {
		return false
	}
	next := 0
	switch {
	case current < 0 && !forward:
		next = len(stops) - 1
	case current >= 0 && forward:
		next = (current + 1) % len(stops)
	case current >= 0:
		next = (current + len(stops) - 1) % len(stops)
	}
	if stops[next] == m.focus {
		return false
	}
	m.SetFocus(stops[next])
	m.DispatchMessages()
	return true
}

func (m *Manager) Capture() Widget { return m.capture }

// CaptureMouse routes all following mouse messages to w until it releases
// the capture. A previous owner loses the capture.
func (m *Manager) CaptureMouse(w Widget) {
	if m.capture != nil && m.capture != w {
		logging.Debugf("manager: capture taken from %s", describe(m.capture))
	}
	m.capture = w
	logging.Debugf("manager: capture %s", describe(w))
}

// ReleaseMouse releases the capture if w holds it.
func (m *Manager) ReleaseMouse(w Widget) {
	if m.capture != w {
		return
	}
	m.capture = nil
	logging.Debugf("manager: release %s", describe(w))
}

func (m *Manager) MouseOver() Widget { return m.mouseOver }

func (m *Manager) Pointer() Point { return m.pointer }

// Pick returns the deepest widget under p, or nil.
func (m *Manager) Pick(p Point) Widget {
	if m.root == nil || !m.root.base().bounds.Contains(p) {
		return nil
	}
	return pick(m.root, p)
}

func pick(w Widget, p Point) Widget {
	children := w.base().children
	for i := len(children) - 1; i >= 0; i-- {
		if children[i].base().bounds.Contains(p) {
			return pick(children[i], p)
		}
	}
	return w
}

// HandleMouse processes the pointer state reported by the input backend:
// the position and the buttons currently held.
func (m *Manager) HandleMouse(pos Point, buttons tcell.ButtonMask, mod tcell.ModMask) {
	m.pointer = pos
	m.updateMouseOver(mod)

	pressed := buttons&pointerButtons != 0
	wasPressed := m.buttons&pointerButtons != 0
	m.buttons = buttons

	msg := Message{Mod: mod, Pos: pos, Buttons: buttons}
	switch {
	case pressed && !wasPressed:
		msg.Kind = MouseDown
	case !pressed && wasPressed:
		msg.Kind = MouseUp
	default:
		msg.Kind = MouseMove
	}

	target := m.capture
	if target == nil {
		target = m.mouseOver
	}
	if target != nil {
		if msg.Kind == MouseDown {
			if b := target.base(); b.focusStop && !b.disabled {
				m.SetFocus(target)
				m.DispatchMessages()
			}
		}
		target.ProcessMessage(&msg)
	}
	m.DispatchMessages()
}

func (m *Manager) updateMouseOver(mod tcell.ModMask) {
	var over Widget
	if m.capture != nil {
		if m.capture.base().bounds.Contains(m.pointer) {
			over = m.capture
		}
	} else {
		over = m.Pick(m.pointer)
	}
	if over == m.mouseOver {
		return
	}
	old := m.mouseOver
	m.mouseOver = over
	if old != nil {
		old.ProcessMessage(&Message{Kind: MouseLeave, Mod: mod, Pos: m.pointer, Buttons: m.buttons})
	}
	if over != nil {
		over.ProcessMessage(&Message{Kind: MouseEnter, Mod: mod, Pos: m.pointer, Buttons: m.buttons})
	}
}

// HandleKeyDown offers a key press to the focused widget first and then to
// every other widget of the tree until one consumes it.
func (m *Manager) HandleKeyDown(key tcell.Key, ch rune, mod tcell.ModMask) bool {
	return m.sendKey(&Message{Kind: KeyDown, Key: key, Rune: ch, Mod: mod})
}

// HandleKeyUp is HandleKeyDown for key releases.
func (m *Manager) HandleKeyUp(key tcell.Key, ch rune, mod tcell.ModMask) bool {
	return m.sendKey(&Message{Kind: KeyUp, Key: key, Rune: ch, Mod: mod})
}

func (m *Manager) sendKey(msg *Message) bool {
	defer m.DispatchMessages()
	focus := m.focus
	if focus != nil && focus.ProcessMessage(msg) {
		return true
	}
	for _, w := range BreadthFirst(m.root) {
		if w == focus {
			continue
		}
		if w.ProcessMessage(msg) {
			return true
		}
	}
	return false
}

func (m *Manager) enqueue(w Widget, msg Message) {
	m.queue = append(m.queue, queued{target: w, msg: msg})
}

func (m *Manager) Pending() int { return len(m.queue) }

// DispatchMessages synchronously delivers every queued message, including
// the ones queued while dispatching.
func (m *Manager) DispatchMessages() {
	for len(m.queue) > 0 {
		next := m.queue[0]
		m.queue = m.queue[1:]
		next.target.ProcessMessage(&next.msg)
	}
}

// Paint paints every invalid widget, or all of them with force.
func (m *Manager) Paint(screen tcell.Screen, force bool) {
	for _, w := range BreadthFirst(m.root) {
		b := w.base()
		if !force && !b.dirty {
			continue
		}
		if painter, ok := w.(Painter); ok {
			painter.OnPaint(&PaintEvent{Event: Event{Source: w}, Screen: screen})
		}
		b.Validate()
	}
}

// forget drops every reference the manager holds into the subtree of w.
func (m *Manager) forget(w Widget) {
	if m.focus != nil && IsAncestor(w, m.focus) {
		m.focus = nil
	}
	if m.capture != nil && IsAncestor(w, m.capture) {
		m.capture = nil
	}
	if m.mouseOver != nil && IsAncestor(w, m.mouseOver) {
		m.mouseOver = nil
	}
	queue := m.queue[:0]
	for _, q := range m.queue {
		if !IsAncestor(w, q.target) {
			queue = append(queue, q)
		}
	}
	m.queue = queue
}

func describe(w Widget) string {
	if w == nil {
		return "<nil>"
	}
	b := w.base()
	if b.name != "" {
		return b.name
	}
	return b.kind.String() + "(" + b.text + ")"
}
