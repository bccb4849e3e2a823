package actor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wait(t *testing.T, done <-chan struct{}) {
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("actor did not stop")
	}
}

func TestMessagesAreHandledInOrder(t *testing.T) {
	var got []int
	a := NewActor(func(msg int) bool {
		got = append(got, msg)
		return msg != 0
	})

	for _, msg := range []int{3, 1, 2, 0} {
		require.True(t, a.Send(msg))
	}
	wait(t, a.Done())

	assert.Equal(t, []int{3, 1, 2, 0}, got)
	assert.False(t, a.Send(4))
}

func TestStop(t *testing.T) {
	handled := make(chan string, 1)
	a := NewActor(func(msg string) bool {
		handled <- msg
		return true
	})

	require.True(t, a.Send("first"))
	assert.Equal(t, "first", <-handled)

	a.Stop()
	wait(t, a.Done())
	assert.False(t, a.Send("second"))
}
