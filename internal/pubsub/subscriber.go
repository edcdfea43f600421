package pubsub

import (
	"context"
	"errors"
	"sync"
)

// ErrCancelled is returned by Next after the subscriber has been cancelled
// and its mailbox drained.
var ErrCancelled = errors.New("pubsub: subscription cancelled")

// Subscriber is a registered consumer of one channel. It produces the lazy
// sequence of payloads published to that channel after the point of
// subscription.
//
// The mailbox is an unbounded FIFO guarded by a mutex, with a buffered
// signal channel (size 1) coalescing wake-ups. This keeps Publish
// non-blocking while letting Next wait without spinning and still honor
// context cancellation.
type Subscriber struct {
	hub     *Hub
	channel string

	mu      sync.Mutex
	pending []any
	closed  bool
	signal  chan struct{}
}

func newSubscriber(h *Hub, channel string) *Subscriber {
	return &Subscriber{
		hub:     h,
		channel: channel,
		signal:  make(chan struct{}, 1),
	}
}

// Channel returns the channel name this subscriber is registered on.
func (s *Subscriber) Channel() string {
	return s.channel
}

// Next blocks until a payload is available, the context is done, or the
// subscriber is cancelled. Payloads come out in publish order. After
// cancellation, buffered payloads are still drained before ErrCancelled
// is returned.
func (s *Subscriber) Next(ctx context.Context) (any, error) {
	for {
		if v, ok := s.take(); ok {
			return v, nil
		}

		s.mu.Lock()
		done := s.closed && len(s.pending) == 0
		s.mu.Unlock()
		if done {
			return nil, ErrCancelled
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-s.signal:
		}
	}
}

// Cancel unregisters the subscriber from its hub. No payload published
// after Cancel returns is delivered; any Next call blocked on an empty
// mailbox is woken.
func (s *Subscriber) Cancel() {
	s.hub.remove(s)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.signal)
}

// take removes and returns the front payload, if any.
func (s *Subscriber) take() (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		return nil, false
	}

	v := s.pending[0]
	// Nil out the slot so the backing array does not pin the payload.
	s.pending[0] = nil
	if len(s.pending) == 1 {
		s.pending = s.pending[:0]
	} else {
		s.pending = s.pending[1:]
	}
	return v, true
}

// deliver appends a payload to the mailbox. No-op after close.
func (s *Subscriber) deliver(payload any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.pending = append(s.pending, payload)

	// Coalescing non-blocking signal; safe because closed is checked under
	// the same mutex that guards close(s.signal).
	select {
	case s.signal <- struct{}{}:
	default:
	}
}
