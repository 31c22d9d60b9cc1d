package pulse

import "sync/atomic"

// Subscription identifies one registration on a channel.
// Disposing it removes the callback from future deliveries. Dispose is
// idempotent, and calling it on a nil or zero-valued Subscription is a no-op,
// so stale handles are always safe to dispose.
type Subscription struct {
	disposed atomic.Bool

	// detach removes the registration from its channel.
	// nil for inert handles.
	detach func()
}

// Dispose removes the subscription's callback from its channel.
// Calling Dispose more than once, or on a handle whose registration was
// already removed, is a no-op.
func (s *Subscription) Dispose() {
	if s == nil {
		return
	}
	if s.disposed.Swap(true) {
		return
	}
	if s.detach != nil {
		s.detach()
	}
}

// Disposed reports whether the subscription has been disposed.
// A nil handle counts as disposed.
func (s *Subscription) Disposed() bool {
	return s == nil || s.disposed.Load()
}

// ScopedSubscription holds at most one Subscription and disposes it when the
// holder is replaced or released. It gives subscription handles the
// scope-bound lifecycle that Binding and Attacher rely on: installing a new
// handle severs the previous registration first.
//
// The zero value is ready to use.
type ScopedSubscription struct {
	current *Subscription
}

// Set installs sub as the held subscription, disposing the previously held
// one first. Passing nil just releases the current handle.
func (s *ScopedSubscription) Set(sub *Subscription) {
	prev := s.current
	s.current = sub
	prev.Dispose()
}

// Dispose releases the held subscription, if any. Idempotent.
func (s *ScopedSubscription) Dispose() {
	s.Set(nil)
}

// Active reports whether a live subscription is currently held.
func (s *ScopedSubscription) Active() bool {
	return !s.current.Disposed()
}
