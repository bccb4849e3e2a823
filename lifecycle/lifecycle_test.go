package lifecycle

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStopWaitsForGoroutines(t *testing.T) {
	lc := New()
	var finished atomic.Int32

	for i := 0; i < 3; i++ {
		lc.Started()
		go func() {
			defer lc.Done()
			<-lc.Stopping()
			finished.Add(1)
		}()
	}
	assert.False(t, lc.ShouldStop())

	lc.Stop()
	assert.True(t, lc.ShouldStop())
	assert.Equal(t, int32(3), finished.Load())
}

func TestParentContextStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	lc := WithContext(ctx)

	cancel()
	<-lc.Stopping()
	assert.True(t, lc.ShouldStop())
}
