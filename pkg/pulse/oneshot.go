package pulse

// OneShotProperty is a Property whose value can be assigned exactly once
// after construction. The first Set call, successful or deduplicated,
// latches the property; every later set through any path (Set, SetForce,
// SetSilent, the Setter capability) is a silent no-op. It models values that
// are legitimately assignable once, such as deferred initialization, while
// keeping the observable surface identical to Property.
type OneShotProperty[T any] struct {
	Property[T]
}

// NewOneShotProperty creates a one-shot property holding initial. The
// initial value does not latch; the first Set does.
func NewOneShotProperty[T any](initial T) *OneShotProperty[T] {
	p := &OneShotProperty[T]{}
	p.value = initial
	p.oneShot = true
	p.setter = Setter[T]{prop: &p.ReadOnlyProperty}
	return p
}

// Latched reports whether the one-time assignment has been used up.
func (p *OneShotProperty[T]) Latched() bool {
	return p.latched
}
