package pulse

// Observer is a non-owning, read-only view over an observable source: it can
// read the current value and subscribe to change notification, and nothing
// else. Views are produced by ReadOnlyProperty.Observer and Getter.Observer
// and are copyable by value, so they cross ownership boundaries cheaply.
//
// The view holds closures over the source's accessors rather than a pointer
// into it, but it still references the source: a view must not be used after
// the source is gone. The zero value is inert — Get returns the zero value
// and Observe returns a disposed handle.
type Observer[T any] struct {
	read    func() T
	connect func(func()) *Subscription
}

// NewObserver builds a view from a read accessor and a connector. Host code
// uses this to expose custom sources through the same observer surface that
// properties and getters use.
func NewObserver[T any](read func() T, connect func(func()) *Subscription) Observer[T] {
	return Observer[T]{read: read, connect: connect}
}

// Get returns the source's current value. A zero view returns the zero
// value of T.
func (o Observer[T]) Get() T {
	if o.read == nil {
		var zero T
		return zero
	}
	return o.read()
}

// Observe registers fn on the source's channel and returns the handle.
// A zero view returns an inert, already disposed handle.
func (o Observer[T]) Observe(fn func()) *Subscription {
	if o.connect == nil {
		sub := &Subscription{}
		sub.disposed.Store(true)
		return sub
	}
	return o.connect(fn)
}

// Valid reports whether the view is bound to a source.
func (o Observer[T]) Valid() bool {
	return o.read != nil
}
