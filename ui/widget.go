package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Widget is a node of the widget tree. Concrete widgets embed Base, which
// provides the tree, focus, capture and selection state, and override
// ProcessMessage to react to input.
type Widget interface {
	base() *Base
	// ProcessMessage handles msg and reports whether it was consumed.
	ProcessMessage(msg *Message) bool
}

// SelectHook is implemented by widgets that react to changes of their
// selected flag. OnSelect runs after every change, in either direction.
type SelectHook interface {
	OnSelect()
}

type Painter interface {
	OnPaint(ev *PaintEvent)
}

type PreferredSizer interface {
	OnPreferredSize(ev *PreferredSizeEvent)
}

// Layouter is implemented by containers that place their children after
// their own bounds change.
type Layouter interface {
	Layout()
}

type Destroyer interface {
	OnDestroy()
}

// ChildRemover is notified after a child was detached from the widget.
type ChildRemover interface {
	OnRemoveChild(child Widget)
}

type Base struct {
	self        Widget
	kind        Kind
	name        string
	parent      Widget
	children    []Widget
	manager     *Manager
	bounds      Rect
	border      Insets
	text        string
	align       Align
	disabled    bool
	selected    bool
	focusStop   bool
	focusMagnet bool
	dirty       bool
}

// Init binds the base to the widget embedding it. It must be called by
// every widget constructor before the widget is used.
func (b *Base) Init(self Widget, kind Kind) {
	b.self = self
	b.kind = kind
	b.align = AlignCenter | AlignMiddle
	b.dirty = true
}

func (b *Base) base() *Base { return b }

// BaseOf returns the base state of w.
func BaseOf(w Widget) *Base { return w.base() }

func (b *Base) Self() Widget { return b.self }

// Kind returns the declared widget type.
func (b *Base) Kind() Kind { return b.kind }

// InitTheme primes the current theme for painting the widget as kind,
// which may differ from the declared kind.
func (b *Base) InitTheme(kind Kind) {
	if theme := CurrentTheme(); theme != nil {
		theme.InitWidget(b.self, kind)
	}
}

func (b *Base) Name() string { return b.name }

func (b *Base) SetName(name string) { b.name = name }

func (b *Base) Parent() Widget { return b.parent }

func (b *Base) Children() []Widget { return b.children }

func (b *Base) AddChild(child Widget) {
	cb := child.base()
	if cb.parent != nil {
		cb.parent.base().RemoveChild(child)
	}
	cb.parent = b.self
	b.children = append(b.children, child)
	b.Invalidate()
}

func (b *Base) RemoveChild(child Widget) {
	for i, c := range b.children {
		if c == child {
			if m := b.Manager(); m != nil {
				m.forget(child)
			}
			b.children = append(b.children[:i], b.children[i+1:]...)
			child.base().parent = nil
			if r, ok := b.self.(ChildRemover); ok {
				r.OnRemoveChild(child)
			}
			b.Invalidate()
			return
		}
	}
}

// Root returns the top of the tree the widget is attached to, or nil for
// a widget that has no parent and is not the root of a manager.
func (b *Base) Root() Widget {
	if b.parent == nil {
		if b.manager != nil {
			return b.self
		}
		return nil
	}
	top := b.parent
	for top.base().parent != nil {
		top = top.base().parent
	}
	return top
}

func (b *Base) Manager() *Manager {
	top := b
	for top.parent != nil {
		top = top.parent.base()
	}
	return top.manager
}

func (b *Base) Bounds() Rect { return b.bounds }

// SetBounds moves the widget without laying out its children; use the
// package function SetBounds for containers.
func (b *Base) SetBounds(bounds Rect) {
	b.bounds = bounds
	b.Invalidate()
}

// ClientBounds returns the bounds without the border.
func (b *Base) ClientBounds() Rect { return b.bounds.Shrink(b.border) }

func (b *Base) Border() Insets { return b.border }

func (b *Base) SetBorder(border Insets) { b.border = border }

func (b *Base) Text() string { return b.text }

func (b *Base) SetText(text string) {
	b.text = text
	b.Invalidate()
}

func (b *Base) Align() Align { return b.align }

func (b *Base) SetAlign(align Align) {
	b.align = align
	b.Invalidate()
}

func (b *Base) IsEnabled() bool { return !b.disabled }

func (b *Base) SetEnabled(enabled bool) {
	if b.disabled == !enabled {
		return
	}
	b.disabled = !enabled
	if !enabled && b.HasCapture() {
		b.ReleaseMouse()
	}
	b.Invalidate()
}

func (b *Base) IsSelected() bool { return b.selected }

// SetSelected changes the selected flag and runs the OnSelect hook of the
// widget. Nothing happens when the flag already has the requested value.
func (b *Base) SetSelected(selected bool) {
	if b.selected == selected {
		return
	}
	b.selected = selected
	b.Invalidate()
	if hook, ok := b.self.(SelectHook); ok {
		hook.OnSelect()
	}
}

func (b *Base) IsFocusStop() bool { return b.focusStop }

func (b *Base) SetFocusStop(stop bool) { b.focusStop = stop }

func (b *Base) IsFocusMagnet() bool { return b.focusMagnet }

func (b *Base) SetFocusMagnet(magnet bool) { b.focusMagnet = magnet }

func (b *Base) HasFocus() bool {
	m := b.Manager()
	return m != nil && m.focus == b.self
}

func (b *Base) HasCapture() bool {
	m := b.Manager()
	return m != nil && m.capture == b.self
}

func (b *Base) HasMouseOver() bool {
	m := b.Manager()
	return m != nil && m.mouseOver == b.self
}

func (b *Base) CaptureMouse() {
	if m := b.Manager(); m != nil {
		m.CaptureMouse(b.self)
	}
}

func (b *Base) ReleaseMouse() {
	if m := b.Manager(); m != nil {
		m.ReleaseMouse(b.self)
	}
}

// RequestFocus moves the keyboard focus to the widget. The focus messages
// are queued; see DispatchMessages.
func (b *Base) RequestFocus() {
	if m := b.Manager(); m != nil {
		m.SetFocus(b.self)
	}
}

// DispatchMessages delivers the queued messages of the widget's manager.
func (b *Base) DispatchMessages() {
	if m := b.Manager(); m != nil {
		m.DispatchMessages()
	}
}

func (b *Base) Invalidate() { b.dirty = true }

func (b *Base) IsInvalid() bool { return b.dirty }

func (b *Base) Validate() { b.dirty = false }

// IsScancodeMnemonic reports whether the key of msg is the underlined
// letter of the widget's text.
func (b *Base) IsScancodeMnemonic(msg *Message) bool {
	return MatchMnemonic(b.text, msg)
}

// ProcessMessage is the default handling: nothing is consumed.
func (b *Base) ProcessMessage(msg *Message) bool {
	return false
}

func (b *Base) defaultPreferredSize() Size {
	text, _ := StripMnemonic(b.text)
	size := Size{Width: b.border.Horizontal(), Height: b.border.Vertical()}
	if text != "" {
		size.Width += runewidth.StringWidth(text)
		size.Height++
	}
	return size
}

func (b *Base) String() string {
	buf := &strings.Builder{}
	b.ToString(buf, "")
	return buf.String()
}

func (b *Base) ToString(buf *strings.Builder, offset string) {
	label := b.name
	if label == "" {
		label = b.text
	}
	fmt.Fprintf(buf, offset+"%s(%q, %s, selected: %v, enabled: %v)\n", b.kind, label, b.bounds, b.selected, !b.disabled)
	for _, child := range b.children {
		child.base().ToString(buf, offset+"| ")
	}
}

// PreferredSize asks w for the size it would like to have.
func PreferredSize(w Widget) Size {
	ev := &PreferredSizeEvent{Event: Event{Source: w}}
	if sizer, ok := w.(PreferredSizer); ok {
		sizer.OnPreferredSize(ev)
	} else {
		ev.SetPreferredSize(w.base().defaultPreferredSize())
	}
	return ev.PreferredSize()
}

// SetBounds moves w and lets containers place their children.
func SetBounds(w Widget, bounds Rect) {
	w.base().SetBounds(bounds)
	if layouter, ok := w.(Layouter); ok {
		layouter.Layout()
	}
}

// Destroy detaches w from its parent and destroys its subtree, children
// first. Widgets implementing Destroyer release their resources there.
func Destroy(w Widget) {
	b := w.base()
	if m := b.Manager(); m != nil {
		m.forget(w)
	}
	if b.parent != nil {
		b.parent.base().RemoveChild(w)
	}
	if b.manager != nil {
		b.manager.root = nil
		b.manager = nil
	}
	destroy(w)
}

func destroy(w Widget) {
	b := w.base()
	for _, child := range b.children {
		destroy(child)
		child.base().parent = nil
	}
	b.children = nil
	if d, ok := w.(Destroyer); ok {
		d.OnDestroy()
	}
}
