package engine

import (
	"github.com/google/uuid"

	"github.com/SyzBeats/GraphQL-Blog/internal/pubsub"
	"github.com/SyzBeats/GraphQL-Blog/internal/store"
)

// IDGenerator mints fresh entity identifiers. IDs are opaque, unique and
// never reused. Implemented by UUIDGenerator (production) and the fixed
// generator in internal/testutil (tests).
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator mints random RFC 4122 UUIDs.
//
// Thread-safety: stateless, safe for concurrent use.
type UUIDGenerator struct{}

// NewID returns a new hyphenated UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Engine applies all mutations against a store and emits publication
// events through a hub.
//
// Each operation runs validation and mutation inside a single exclusive
// store transaction, so concurrent readers never observe a half-applied
// cascade and concurrent mutators are serialized. Hub notification happens
// after the transaction commits; publish is fire-and-forget, so a slow or
// absent subscriber never holds the store lock.
type Engine struct {
	store *store.Store
	hub   *pubsub.Hub
	ids   IDGenerator
}

// Option configures an Engine.
type Option func(*Engine)

// WithIDGenerator overrides the ID generator. Tests use this with a
// fixed-sequence generator for deterministic IDs.
func WithIDGenerator(g IDGenerator) Option {
	return func(e *Engine) {
		e.ids = g
	}
}

// New creates an engine over the given store and hub.
func New(st *store.Store, hub *pubsub.Hub, opts ...Option) *Engine {
	e := &Engine{
		store: st,
		hub:   hub,
		ids:   UUIDGenerator{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
