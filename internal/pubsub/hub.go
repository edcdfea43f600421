// Package pubsub implements the named-channel subscription hub.
//
// Producers publish fire-and-forget: a payload goes to every subscriber
// registered on that exact channel name at publish time, and is dropped
// (not queued) when no subscriber is registered. Each subscriber owns an
// unbounded mailbox, so Publish never blocks on a slow consumer.
package pubsub

import (
	"fmt"
	"sync"
)

// PostsChannel is the single shared channel carrying every post
// publication event.
const PostsChannel = "post"

// CommentsChannel returns the per-post channel name carrying comment
// events for the given post. Publishers and subscribers agree on this
// format out-of-band.
func CommentsChannel(postID string) string {
	return fmt.Sprintf("comment %s", postID)
}

// Hub fans payloads out to channel subscribers.
//
// Thread-safety: all methods are safe for concurrent use. Delivery holds
// the hub's shared lock, so a subscriber cancelling concurrently either
// receives the payload or is already unregistered - never a send to a
// closed mailbox.
type Hub struct {
	mu       sync.RWMutex
	channels map[string]map[*Subscriber]struct{}
}

// NewHub creates a hub with no channels.
func NewHub() *Hub {
	return &Hub{channels: make(map[string]map[*Subscriber]struct{})}
}

// Subscribe registers a new subscriber on the named channel. The
// subscriber receives every payload published to that channel after this
// call; there is no replay of history. The caller must Cancel the
// subscriber when done with it.
func (h *Hub) Subscribe(channel string) *Subscriber {
	sub := newSubscriber(h, channel)

	h.mu.Lock()
	defer h.mu.Unlock()
	subs, ok := h.channels[channel]
	if !ok {
		subs = make(map[*Subscriber]struct{})
		h.channels[channel] = subs
	}
	subs[sub] = struct{}{}
	return sub
}

// Publish delivers payload to every current subscriber of the named
// channel and returns the number of subscribers reached. It never blocks
// on consumers; with no subscribers the payload is dropped.
func (h *Hub) Publish(channel string, payload any) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	subs := h.channels[channel]
	for sub := range subs {
		sub.deliver(payload)
	}
	return len(subs)
}

// Subscribers returns the number of subscribers currently registered on
// the named channel.
func (h *Hub) Subscribers(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.channels[channel])
}

// remove unregisters sub. Idempotent.
func (h *Hub) remove(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	subs, ok := h.channels[sub.channel]
	if !ok {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(h.channels, sub.channel)
	}
}
