package ui

// Kind identifies a widget type to the theme.
type Kind int

const (
	KindBox Kind = iota
	KindButton
	KindCheck
	KindRadio
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "Box"
	case KindButton:
		return "Button"
	case KindCheck:
		return "Check"
	case KindRadio:
		return "Radio"
	}
	return "UNKNOWN KIND"
}

// Theme paints widgets and primes their metrics.
type Theme interface {
	// InitWidget prepares w to be painted as kind, e.g. by setting its
	// border insets.
	InitWidget(w Widget, kind Kind)
	PaintButton(ev *PaintEvent)
	PaintCheckBox(ev *PaintEvent)
	PaintRadioButton(ev *PaintEvent)
}

var currentTheme Theme

// SetTheme sets the theme used by widgets constructed afterwards.
func SetTheme(theme Theme) {
	currentTheme = theme
}

func CurrentTheme() Theme {
	return currentTheme
}

// IconAdapter describes an icon drawn next to a widget's text. The widget
// that holds an adapter owns it and calls Release when done with it.
type IconAdapter interface {
	IconAlign() Align
	Width() int
	Height() int
	Release()
}
