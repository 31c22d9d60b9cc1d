package pulse

// Getter is a pull-based computed value: a zero-argument producer plus a
// manually fired invalidation channel. There is no cache — every Get invokes
// the producer — and no dependency tracking: the owner must call Notify
// whenever any input the producer reads has changed.
type Getter[T any] struct {
	fn func() T
	ch Channel
}

// NewGetter creates a computed value backed by fn.
func NewGetter[T any](fn func() T) *Getter[T] {
	return &Getter[T]{fn: fn}
}

// Get invokes the producer and returns its result. Panics if no producer is
// bound; use Valid to check.
func (g *Getter[T]) Get() T {
	return g.fn()
}

// Valid reports whether a producer is bound.
func (g *Getter[T]) Valid() bool {
	return g.fn != nil
}

// SetFunc rebinds the producer. Rebinding is silent by contract; call Notify
// afterwards if observers should recompute.
func (g *Getter[T]) SetFunc(fn func() T) {
	g.fn = fn
}

// Notify fires the invalidation channel. Observers typically respond by
// calling Get again.
func (g *Getter[T]) Notify() {
	g.ch.Notify()
}

// Observe registers fn to run whenever the getter is invalidated.
func (g *Getter[T]) Observe(fn func()) *Subscription {
	return g.ch.Observe(fn)
}

// Observer returns a non-owning read-only view over this getter. The view
// must not outlive the getter.
func (g *Getter[T]) Observer() Observer[T] {
	return Observer[T]{
		read:    g.Get,
		connect: g.Observe,
	}
}
