package lifecycle

import (
	"context"
	"sync"
)

// Lifecycle coordinates the goroutines of a running UI: they register
// with Started/Done, watch Stopping, and Stop cancels and waits for them.
type Lifecycle struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New() *Lifecycle {
	return WithContext(context.Background())
}

func WithContext(parent context.Context) *Lifecycle {
	ctx, cancel := context.WithCancel(parent)
	return &Lifecycle{ctx: ctx, cancel: cancel}
}

func (lc *Lifecycle) Started() {
	lc.wg.Add(1)
}

func (lc *Lifecycle) Done() {
	lc.wg.Done()
}

func (lc *Lifecycle) ShouldStop() bool {
	select {
	case <-lc.ctx.Done():
		return true
	default:
		return false
	}
}

// Stopping is closed once Cancel or Stop is called.
func (lc *Lifecycle) Stopping() <-chan struct{} {
	return lc.ctx.Done()
}

// Cancel requests a stop without waiting.
func (lc *Lifecycle) Cancel() {
	lc.cancel()
}

func (lc *Lifecycle) Stop() {
	lc.cancel()
	lc.wg.Wait()
}
