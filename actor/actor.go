// Package actor runs a handler on a goroutine of its own, one message at a
// time, in the order the messages were sent. The UI uses it as its single
// UI goroutine: every input event is handled there.
package actor

import (
	"sync"
)

// Handler processes one message and reports whether the actor keeps
// running.
type Handler[T any] func(T) bool

type Actor[T any] struct {
	handler Handler[T]
	pending []T
	stopped bool
	done    chan struct{}
	*sync.Cond
}

func NewActor[T any](handler Handler[T]) *Actor[T] {
	a := &Actor[T]{
		handler: handler,
		done:    make(chan struct{}),
		Cond:    sync.NewCond(&sync.Mutex{}),
	}
	go a.run()
	return a
}

// Send queues msg. It reports false once the actor has stopped; the
// message is dropped then.
func (a *Actor[T]) Send(msg T) bool {
	a.L.Lock()
	defer a.L.Unlock()
	if a.stopped {
		return false
	}
	a.pending = append(a.pending, msg)
	a.Signal()
	return true
}

// Stop makes the actor exit after the message being handled, if any.
// Pending messages are dropped.
func (a *Actor[T]) Stop() {
	a.L.Lock()
	a.stopped = true
	a.pending = nil
	a.Signal()
	a.L.Unlock()
}

// Done is closed when the actor goroutine has exited.
func (a *Actor[T]) Done() <-chan struct{} {
	return a.done
}

func (a *Actor[T]) run() {
	defer close(a.done)
	for {
		a.L.Lock()
		for len(a.pending) == 0 && !a.stopped {
			a.Wait()
		}
		if a.stopped {
			a.L.Unlock()
			return
		}
		msg := a.pending[0]
		a.pending = a.pending[1:]
		a.L.Unlock()

		if !a.handler(msg) {
			a.Stop()
		}
	}
}
