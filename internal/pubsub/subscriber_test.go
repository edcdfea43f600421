package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriber_PayloadsInPublishOrder(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe(PostsChannel)
	defer sub.Cancel()

	for i := 1; i <= 3; i++ {
		h.Publish(PostsChannel, i)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	for i := 1; i <= 3; i++ {
		got, err := sub.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}
}

func TestSubscriber_NextBlocksUntilPublish(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe(PostsChannel)
	defer sub.Cancel()

	done := make(chan any, 1)
	go func() {
		v, err := sub.Next(context.Background())
		if err == nil {
			done <- v
		}
	}()

	// Give the goroutine time to block on the empty mailbox.
	time.Sleep(10 * time.Millisecond)
	h.Publish(PostsChannel, "wake")

	select {
	case v := <-done:
		assert.Equal(t, "wake", v)
	case <-time.After(time.Second):
		t.Fatal("Next did not wake after publish")
	}
}

func TestSubscriber_CancelStopsDelivery(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe(PostsChannel)

	sub.Cancel()
	h.Publish(PostsChannel, "late")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := sub.Next(ctx)
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestSubscriber_CancelDrainsBufferedPayloads(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe(PostsChannel)

	h.Publish(PostsChannel, "buffered")
	sub.Cancel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	got, err := sub.Next(ctx)
	require.NoError(t, err, "payloads accepted before Cancel are still drained")
	assert.Equal(t, "buffered", got)

	_, err = sub.Next(ctx)
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestSubscriber_CancelWakesBlockedNext(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe(PostsChannel)

	errCh := make(chan error, 1)
	go func() {
		_, err := sub.Next(context.Background())
		errCh <- err
	}()

	time.Sleep(10 * time.Millisecond)
	sub.Cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, ErrCancelled)
	case <-time.After(time.Second):
		t.Fatal("Next did not wake after Cancel")
	}
}

func TestSubscriber_CancelIsIdempotent(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe(PostsChannel)

	sub.Cancel()
	assert.NotPanics(t, func() { sub.Cancel() })
}

func TestSubscriber_ContextCancellation(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe(PostsChannel)
	defer sub.Cancel()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := sub.Next(ctx)
		errCh <- err
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Next did not honor context cancellation")
	}
}

func TestSubscriber_Channel(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe(CommentsChannel("p7"))
	defer sub.Cancel()

	assert.Equal(t, "comment p7", sub.Channel())
}
