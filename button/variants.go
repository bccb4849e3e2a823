package button

import "termui/ui"

// Button is a push button: it fires Click when released over itself.
type Button struct {
	ButtonBase
}

func NewButton(text string) *Button {
	b := &Button{}
	b.init(b, text, Push, Push)
	b.SetAlign(ui.AlignCenter | ui.AlignMiddle)
	return b
}

// CheckBox toggles its selected flag on every press.
type CheckBox struct {
	ButtonBase
}

// NewCheckBox creates a check box painted as render; pass Push for a toggle
// button.
func NewCheckBox(text string, render Variant) *CheckBox {
	c := &CheckBox{}
	c.init(c, text, Check, render)
	c.SetAlign(ui.AlignLeft | ui.AlignMiddle)
	return c
}

// RadioButton is selected by the user and deselected only when another
// member of its group gets selected.
type RadioButton struct {
	ButtonBase
}

func NewRadioButton(text string, group int, render Variant) *RadioButton {
	r := &RadioButton{}
	r.init(r, text, Radio, render)
	r.SetAlign(ui.AlignLeft | ui.AlignMiddle)
	r.SetRadioGroup(group)
	return r
}

// SetRadioGroup moves the button to another group. The selection of the
// old and new groups is left as is.
func (r *RadioButton) SetRadioGroup(group int) {
	r.radioGroup = group
}
