package button

import "termui/ui"

// Variant selects either the interaction rules of a control (its behavior)
// or the routine that paints it (its render variant).
type Variant int

const (
	Push Variant = iota
	Check
	Radio
)

func (v Variant) String() string {
	switch v {
	case Push:
		return "Push"
	case Check:
		return "Check"
	case Radio:
		return "Radio"
	}
	return "UNKNOWN VARIANT"
}

func (v Variant) kind() ui.Kind {
	switch v {
	case Check:
		return ui.KindCheck
	case Radio:
		return ui.KindRadio
	}
	return ui.KindButton
}
