package pulse

// Binding couples an observer view to a callback and manages the
// subscription lifecycle: it holds at most one live registration at a time,
// reconnecting replaces the previous registration, and disconnecting is
// idempotent. Owners keep the Binding for as long as the callback should
// stay registered and call Disconnect during teardown.
type Binding[T any] struct {
	obs Observer[T]
	fn  func()
	sub ScopedSubscription
}

// NewBinding couples obs to fn and connects immediately.
func NewBinding[T any](obs Observer[T], fn func()) *Binding[T] {
	b := &Binding[T]{obs: obs, fn: fn}
	b.Connect()
	return b
}

// NewDeferredBinding couples obs to fn without connecting. Notifications
// fired before Connect are not delivered.
func NewDeferredBinding[T any](obs Observer[T], fn func()) *Binding[T] {
	return &Binding[T]{obs: obs, fn: fn}
}

// Connect installs the callback on the view's channel. Any registration this
// binding already holds is released first, so repeated Connect calls never
// accumulate registrations.
func (b *Binding[T]) Connect() {
	b.sub.Set(b.obs.Observe(b.fn))
}

// Disconnect releases the current registration. Idempotent.
func (b *Binding[T]) Disconnect() {
	b.sub.Dispose()
}

// Connected reports whether the binding currently holds a live registration.
func (b *Binding[T]) Connected() bool {
	return b.sub.Active()
}

// Get proxies to the view's Get.
func (b *Binding[T]) Get() T {
	return b.obs.Get()
}

// Invoke runs the bound callback directly, outside any delivery.
func (b *Binding[T]) Invoke() {
	if b.fn != nil {
		b.fn()
	}
}
