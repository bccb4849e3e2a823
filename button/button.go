// Package button implements push buttons, check boxes and radio buttons on
// top of ui.Base.
//
// All three share one input state machine, ButtonBase. Its behavior
// variant decides how presses, releases and keys change the selected flag;
// its render variant only decides which theme routine paints it, so a
// check box can look like a push button (a toggle button).
//
// A gesture produces at most one Click: a push button fires on release
// (key or pointer), a check box toggles on press and fires on release
// inside, a radio button only ever becomes selected and fires on release
// inside. Dragging the pointer out of a control before releasing cancels
// the gesture for every variant.
package button

import (
	"termui/layout"
	"termui/ui"

	"github.com/gdamore/tcell/v2"
)

type ButtonBase struct {
	ui.Base

	// Click fires once per completed gesture, with the control as source.
	Click ui.Signal
	// Select fires after every change of the selected flag.
	Select ui.Signal

	behavior Variant
	render   Variant

	pressedStatus bool
	// keepGesture marks a press on an already selected radio button:
	// the gesture cannot change the state, only fire Click.
	keepGesture  bool
	handleSelect bool

	radioGroup  int
	coordinator *Coordinator
	icon        ui.IconAdapter
}

// NewButtonBase creates a control following the behavior rules and painted
// as render.
func NewButtonBase(text string, behavior, render Variant) *ButtonBase {
	b := &ButtonBase{}
	b.init(b, text, behavior, render)
	return b
}

func (b *ButtonBase) init(self ui.Widget, text string, behavior, render Variant) {
	b.Init(self, behavior.kind())
	b.behavior = behavior
	b.render = render
	b.handleSelect = true
	if behavior == Push {
		b.SetAlign(ui.AlignCenter | ui.AlignMiddle)
	} else {
		b.SetAlign(ui.AlignLeft | ui.AlignMiddle)
	}
	b.SetText(text)
	b.SetFocusStop(true)
	b.InitTheme(render.kind())
}

func (b *ButtonBase) BehaviorVariant() Variant { return b.behavior }

func (b *ButtonBase) RenderVariant() Variant { return b.render }

func (b *ButtonBase) IconAdapter() ui.IconAdapter { return b.icon }

// SetIconAdapter replaces the icon of the control. The previous adapter is
// released; icon may be nil.
func (b *ButtonBase) SetIconAdapter(icon ui.IconAdapter) {
	if b.icon != nil {
		b.icon.Release()
	}
	b.icon = icon
	b.Invalidate()
}

func (b *ButtonBase) OnDestroy() {
	if b.icon != nil {
		b.icon.Release()
		b.icon = nil
	}
}

// RadioGroup returns the group of the control; ok is false unless the
// control behaves as a radio button.
func (b *ButtonBase) RadioGroup() (group int, ok bool) {
	return b.radioGroup, b.behavior == Radio
}

// SetCoordinator replaces the coordinator enforcing radio exclusivity.
func (b *ButtonBase) SetCoordinator(c *Coordinator) {
	b.coordinator = c
}

// ForceSelected sets the selected flag without running group
// coordination.
func (b *ButtonBase) ForceSelected(selected bool) {
	defer b.suppressSelect()()
	b.SetSelected(selected)
}

// suppressSelect disables group coordination until the returned function
// is called. Calls nest.
func (b *ButtonBase) suppressSelect() func() {
	prev := b.handleSelect
	b.handleSelect = false
	return func() { b.handleSelect = prev }
}

// OnSelect runs after every change of the selected flag. A radio button
// that just became selected deselects the other members of its group.
func (b *ButtonBase) OnSelect() {
	b.Select.Emit(&ui.Event{Source: b.Self()})

	if !b.handleSelect || b.behavior != Radio || !b.IsSelected() {
		return
	}
	coordinator := b.coordinator
	if coordinator == nil {
		coordinator = DefaultCoordinator
	}
	coordinator.DeselectGroupPeers(b.Self().(GroupMember))
	b.ForceSelected(true)
}

// OnClick fires the Click signal.
func (b *ButtonBase) OnClick(ev *ui.Event) {
	b.Click.Emit(ev)
}

func (b *ButtonBase) ProcessMessage(msg *ui.Message) bool {
	switch msg.Kind {
	case ui.FocusEnter, ui.FocusLeave:
		if b.IsEnabled() {
			// The user may have pressed the key and moved the focus
			// before releasing it.
			if b.behavior == Push && b.IsSelected() {
				b.SetSelected(false)
			}
			b.Invalidate()
		}

	case ui.KeyDown:
		if b.IsEnabled() && b.keyDown(msg) {
			return true
		}

	case ui.KeyUp:
		if b.IsEnabled() && b.behavior == Push && b.IsSelected() &&
			(msg.IsEnter() || msg.IsSpace() || b.IsScancodeMnemonic(msg)) {
			b.generateButtonSelectSignal()
			return true
		}

	case ui.MouseDown:
		if b.IsEnabled() {
			b.mouseDown()
		}
		return true

	case ui.MouseUp:
		if b.HasCapture() {
			b.mouseUp()
			return true
		}

	case ui.MouseMove:
		if b.IsEnabled() && b.HasCapture() {
			b.trackPointer()
		}

	case ui.MouseEnter, ui.MouseLeave:
		if b.IsEnabled() {
			b.Invalidate()
		}
	}

	return b.Base.ProcessMessage(msg)
}

func (b *ButtonBase) keyDown(msg *ui.Message) bool {
	activate := b.HasFocus() && (msg.IsEnter() || msg.IsSpace())
	mnemonic := msg.Mod&tcell.ModAlt != 0 && b.IsScancodeMnemonic(msg)

	switch b.behavior {
	case Push:
		if activate || mnemonic {
			b.SetSelected(true)
			return true
		}
		// A focus magnet catches Enter even without the focus.
		if b.IsFocusMagnet() && msg.IsEnter() {
			b.RequestFocus()
			// The focus messages must be processed before selecting:
			// FocusEnter deselects a push button.
			b.DispatchMessages()
			b.SetSelected(true)
			return true
		}

	case Check:
		if activate || mnemonic {
			b.SetSelected(!b.IsSelected())
			b.Invalidate()
			return true
		}

	case Radio:
		if activate || mnemonic {
			if !b.IsSelected() {
				b.SetSelected(true)
			}
			return true
		}
	}
	return false
}

func (b *ButtonBase) mouseDown() {
	b.keepGesture = false
	switch b.behavior {
	case Push:
		b.SetSelected(true)
	case Check:
		b.SetSelected(!b.IsSelected())
	case Radio:
		if b.IsSelected() {
			b.keepGesture = true
			b.CaptureMouse()
			return
		}
		// The group is coordinated on release, once the gesture is
		// complete.
		b.ForceSelected(true)
	}
	b.pressedStatus = b.IsSelected()
	b.CaptureMouse()
}

// trackPointer restores the pressed state while the pointer is over the
// control and reverts it while the pointer is outside.
func (b *ButtonBase) trackPointer() {
	if b.keepGesture {
		return
	}
	defer b.suppressSelect()()

	over := b.HasMouseOver()
	if (over && b.IsSelected() != b.pressedStatus) ||
		(!over && b.IsSelected() == b.pressedStatus) {
		if over {
			b.SetSelected(b.pressedStatus)
		} else {
			b.SetSelected(!b.pressedStatus)
		}
	}
}

func (b *ButtonBase) mouseUp() {
	b.ReleaseMouse()
	keep := b.keepGesture
	b.keepGesture = false

	if !b.HasMouseOver() {
		return
	}
	switch b.behavior {
	case Push:
		b.generateButtonSelectSignal()

	case Check:
		b.OnClick(&ui.Event{Source: b.Self()})
		b.Invalidate()

	case Radio:
		// A peer may have taken the selection while the pointer was held.
		if !keep || !b.IsSelected() {
			// Cycle through false so OnSelect runs with group
			// coordination enabled.
			b.SetSelected(false)
			b.SetSelected(true)
		}
		b.OnClick(&ui.Event{Source: b.Self()})
	}
}

func (b *ButtonBase) generateButtonSelectSignal() {
	b.SetSelected(false)
	b.OnClick(&ui.Event{Source: b.Self()})
}

func (b *ButtonBase) OnPreferredSize(ev *ui.PreferredSizeEvent) {
	iconAlign, iconWidth, iconHeight := ui.Align(0), 0, 0
	if b.icon != nil {
		iconAlign, iconWidth, iconHeight = b.icon.IconAlign(), b.icon.Width(), b.icon.Height()
	}
	box, _, _ := layout.TextIconInfo(b.Bounds(), b.Border(), b.Align(), b.Text(), iconAlign, iconWidth, iconHeight)
	border := b.Border()
	ev.SetPreferredSize(ui.Size{
		Width:  border.Left + box.Width + border.Right,
		Height: border.Top + box.Height + border.Bottom,
	})
}

func (b *ButtonBase) OnPaint(ev *ui.PaintEvent) {
	theme := ui.CurrentTheme()
	if theme == nil {
		return
	}
	switch b.render {
	case Push:
		theme.PaintButton(ev)
	case Check:
		theme.PaintCheckBox(ev)
	case Radio:
		theme.PaintRadioButton(ev)
	}
}
