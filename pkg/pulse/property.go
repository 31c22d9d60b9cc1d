package pulse

// ReadOnlyProperty is the observable half of a property: it exposes the
// current value and change notification, but no mutation. Owners hand the
// read-only half out freely and keep the Setter capability to themselves,
// so the read/write split is enforced at the type level rather than by
// convention.
//
// Properties are single-threaded; see the package documentation.
type ReadOnlyProperty[T any] struct {
	value T
	ch    Channel

	// equal decides whether a Set actually changed the value.
	// nil means defaultEquals.
	equal func(T, T) bool

	// oneShot/latched implement the one-shot variant: once latched, every
	// further set is a silent no-op.
	oneShot bool
	latched bool
}

// Get returns the current value. It never mutates or notifies.
func (p *ReadOnlyProperty[T]) Get() T {
	return p.value
}

// Equal reports whether the current value equals v, using the property's
// equality function.
func (p *ReadOnlyProperty[T]) Equal(v T) bool {
	return p.equals(p.value, v)
}

// Notify fires the property's channel unconditionally, without touching the
// stored value. Owners use it to announce in-place mutation of the value.
func (p *ReadOnlyProperty[T]) Notify() {
	p.ch.Notify()
}

// Observe registers fn to run whenever the property notifies.
func (p *ReadOnlyProperty[T]) Observe(fn func()) *Subscription {
	return p.ch.Observe(fn)
}

// Observer returns a non-owning read-only view over this property. The view
// must not outlive the property.
func (p *ReadOnlyProperty[T]) Observer() Observer[T] {
	return Observer[T]{
		read:    p.Get,
		connect: p.Observe,
	}
}

// set is the single mutation path, reachable only through the Setter
// capability bound at construction.
func (p *ReadOnlyProperty[T]) set(v T, notify, force bool) {
	if p.oneShot {
		if p.latched {
			return
		}
		p.latched = true
	}
	if !force && p.equals(p.value, v) {
		return
	}
	p.value = v
	if notify {
		p.ch.Notify()
	}
}

func (p *ReadOnlyProperty[T]) equals(a, b T) bool {
	if p.equal != nil {
		return p.equal(a, b)
	}
	return defaultEquals(a, b)
}

// Setter is the mutator capability for one property. Exactly one is created,
// inside the read-write property's constructor; external code cannot
// fabricate a usable Setter, and the zero value is inert. Copies of a Setter
// all stand for the same capability.
type Setter[T any] struct {
	prop *ReadOnlyProperty[T]
}

// Set stores v and notifies observers, unless v equals the current value,
// in which case nothing happens.
func (s Setter[T]) Set(v T) {
	s.SetWith(v, true, false)
}

// SetSilent stores v without firing the channel. The dedup rule still
// applies: an equal value is not stored.
func (s Setter[T]) SetSilent(v T) {
	s.SetWith(v, false, false)
}

// SetForce stores v and notifies observers even when v equals the current
// value.
func (s Setter[T]) SetForce(v T) {
	s.SetWith(v, true, true)
}

// SetWith is the general form: notify controls whether the channel fires on
// change, force bypasses the equality check. A zero Setter is a no-op.
func (s Setter[T]) SetWith(v T, notify, force bool) {
	if s.prop == nil {
		return
	}
	s.prop.set(v, notify, force)
}

// Valid reports whether this Setter is bound to a property.
func (s Setter[T]) Valid() bool {
	return s.prop != nil
}

// Property is a read-write observable value: the ReadOnlyProperty surface
// plus the Setter capability bound to it at construction.
type Property[T any] struct {
	ReadOnlyProperty[T]
	setter Setter[T]
}

// NewProperty creates a property holding initial.
func NewProperty[T any](initial T) *Property[T] {
	p := &Property[T]{}
	p.value = initial
	p.setter = Setter[T]{prop: &p.ReadOnlyProperty}
	return p
}

// WithEquals configures a custom equality function for change detection and
// returns the property. Call it before sharing the property.
func (p *Property[T]) WithEquals(fn func(T, T) bool) *Property[T] {
	p.equal = fn
	return p
}

// Set stores v and notifies observers unless v equals the current value.
func (p *Property[T]) Set(v T) {
	p.setter.Set(v)
}

// SetSilent stores v without firing the channel.
func (p *Property[T]) SetSilent(v T) {
	p.setter.SetSilent(v)
}

// SetForce stores v and notifies observers even when v equals the current
// value.
func (p *Property[T]) SetForce(v T) {
	p.setter.SetForce(v)
}

// SetWith is the general form; see Setter.SetWith.
func (p *Property[T]) SetWith(v T, notify, force bool) {
	p.setter.SetWith(v, notify, force)
}

// Setter returns the mutator capability, letting an owner delegate mutation
// of just this property.
func (p *Property[T]) Setter() Setter[T] {
	return p.setter
}

// ReadOnly returns the read half of the property for handing to consumers.
func (p *Property[T]) ReadOnly() *ReadOnlyProperty[T] {
	return &p.ReadOnlyProperty
}
