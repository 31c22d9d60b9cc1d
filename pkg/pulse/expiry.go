package pulse

import (
	"sync"
	"sync/atomic"
)

// ExpiryToken is a one-shot "this owner is gone" signal. Expire transitions
// the token from live to expired exactly once and fires its channel; further
// Expire calls are no-ops, so double-free-style bugs in teardown code cannot
// cause double notification.
//
// The firing is edge-triggered: a callback registered via ObserveExpiry
// after the token already expired is accepted but never invoked. Callers
// that may subscribe late must check IsExpired first.
type ExpiryToken struct {
	id      uint64
	expired atomic.Bool
	ch      Channel
}

// NewExpiryToken creates a live token. Tokens used with an Attacher must be
// created this way, since the attacher keys tracked objects by token ID.
func NewExpiryToken() *ExpiryToken {
	return &ExpiryToken{id: nextID()}
}

// ID returns the token's unique identity.
func (t *ExpiryToken) ID() uint64 {
	return t.id
}

// IsExpired reports whether Expire has been called.
func (t *ExpiryToken) IsExpired() bool {
	return t.expired.Load()
}

// Expire marks the token expired and fires its channel. Only the first call
// has any effect.
func (t *ExpiryToken) Expire() {
	if t.expired.Swap(true) {
		return
	}
	t.ch.Notify()
}

// ObserveExpiry registers fn for the token's one eventual firing. If the
// token has already expired the registration is inert.
func (t *ExpiryToken) ObserveExpiry(fn func()) *Subscription {
	return t.ch.Observe(fn)
}

// Expirable is the capability contract for objects whose lifetime other code
// may depend on: anything that can hand out its expiry token. Implementing
// it via an accessor method lets unrelated type hierarchies share the
// contract without a common base type.
type Expirable interface {
	// ExpiryToken returns the object's token. It must return the same token
	// for the object's whole lifetime.
	ExpiryToken() *ExpiryToken
}

// Expiring is a ready-made Expirable implementation for embedding. The zero
// value is usable; the token is created on first access.
//
//	type Session struct {
//	    pulse.Expiring
//	    // ...
//	}
//
//	s := &Session{}
//	defer s.Expire() // at the start of teardown
type Expiring struct {
	once  sync.Once
	token *ExpiryToken
}

// ExpiryToken returns the embedded token, creating it on first call.
func (e *Expiring) ExpiryToken() *ExpiryToken {
	e.once.Do(func() { e.token = NewExpiryToken() })
	return e.token
}

// Expire expires the embedded token.
func (e *Expiring) Expire() {
	e.ExpiryToken().Expire()
}
