package streams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatestQueue_PublishReplacesWaitingMessage(t *testing.T) {
	t.Parallel()

	queue := NewLatestQueue[int]()

	assert.False(t, queue.Publish(1))
	assert.True(t, queue.Publish(2))
	assert.True(t, queue.Publish(3))

	assert.Equal(t, 3, <-queue.Messages())
	select {
	case msg := <-queue.Messages():
		t.Fatalf("expected empty queue, got %d", msg)
	default:
	}

	assert.False(t, queue.Publish(4))
	assert.Equal(t, 4, <-queue.Messages())
}
