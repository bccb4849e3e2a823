package ui

import "github.com/gdamore/tcell/v2"

// Event is a notification emitted by a widget to its listeners.
type Event struct {
	Source Widget
}

type PaintEvent struct {
	Event
	Screen tcell.Screen
}

type PreferredSizeEvent struct {
	Event
	size Size
}

func (e *PreferredSizeEvent) SetPreferredSize(size Size) {
	e.size = size
}

func (e *PreferredSizeEvent) PreferredSize() Size {
	return e.size
}

// Signal is a list of listeners for one kind of event.
type Signal struct {
	nextId   int
	handlers []handler
}

type handler struct {
	id int
	fn func(*Event)
}

// Attach registers fn and returns an id usable with Detach.
func (s *Signal) Attach(fn func(*Event)) int {
	s.nextId++
	s.handlers = append(s.handlers, handler{id: s.nextId, fn: fn})
	return s.nextId
}

func (s *Signal) Detach(id int) {
	for i, h := range s.handlers {
		if h.id == id {
			s.handlers = append(s.handlers[:i], s.handlers[i+1:]...)
			return
		}
	}
}

func (s *Signal) Emit(ev *Event) {
	handlers := append([]handler(nil), s.handlers...)
	for _, h := range handlers {
		h.fn(ev)
	}
}

func (s *Signal) Len() int {
	return len(s.handlers)
}
