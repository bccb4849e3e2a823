package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

type MessageKind int

const (
	FocusEnter MessageKind = iota
	FocusLeave
	KeyDown
	KeyUp
	MouseDown
	MouseUp
	MouseMove
	MouseEnter
	MouseLeave
)

func (k MessageKind) String() string {
	switch k {
	case FocusEnter:
		return "FocusEnter"
	case FocusLeave:
		return "FocusLeave"
	case KeyDown:
		return "KeyDown"
	case KeyUp:
		return "KeyUp"
	case MouseDown:
		return "MouseDown"
	case MouseUp:
		return "MouseUp"
	case MouseMove:
		return "MouseMove"
	case MouseEnter:
		return "MouseEnter"
	case MouseLeave:
		return "MouseLeave"
	}
	return "UNKNOWN MESSAGE KIND"
}

// Message is one input notification delivered to a widget.
//
// Key and Rune together form the scancode of key messages: Key is
// tcell.KeyRune for printable characters, in which case Rune holds the
// character. Pos and Buttons are only set for mouse messages.
type Message struct {
	Kind    MessageKind
	Key     tcell.Key
	Rune    rune
	Mod     tcell.ModMask
	Pos     Point
	Buttons tcell.ButtonMask
}

func (m *Message) IsKey() bool {
	return m.Kind == KeyDown || m.Kind == KeyUp
}

func (m *Message) IsMouse() bool {
	return m.Kind >= MouseDown && m.Kind <= MouseLeave
}

// IsEnter reports whether the message carries the Enter key.
func (m *Message) IsEnter() bool {
	return m.IsKey() && m.Key == tcell.KeyEnter
}

// IsSpace reports whether the message carries the space bar.
func (m *Message) IsSpace() bool {
	return m.IsKey() && m.Key == tcell.KeyRune && m.Rune == ' '
}

func (m *Message) String() string {
	switch {
	case m.IsKey():
		return fmt.Sprintf("%s(key: %s, mod: %d)", m.Kind, tcell.NewEventKey(m.Key, m.Rune, m.Mod).Name(), m.Mod)
	case m.IsMouse():
		return fmt.Sprintf("%s(%s, buttons: %d)", m.Kind, m.Pos, m.Buttons)
	}
	return m.Kind.String()
}
