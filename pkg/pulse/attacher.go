package pulse

// Attacher lets one object hold transient, non-owning references to
// externally-owned Expirable objects without risking use after teardown.
// Attach runs the owner's domain attach action and watches the object's
// expiry; when the object expires, the domain detach action runs and the
// tracking entry disappears automatically. Explicit Detach does the same
// proactively, disposing the expiry subscription first so the attacher is
// not notified redundantly.
//
// Objects are keyed by their expiry token's ID, a stable identity that never
// collides between distinct objects, unlike a hash of their values.
type Attacher[T Expirable] struct {
	attach  func(T)
	detach  func(T)
	tracked map[uint64]*attachment[T]
}

// attachment is one tracked object and its expiry subscription.
type attachment[T Expirable] struct {
	obj T
	sub ScopedSubscription
}

// NewAttacher creates an attacher with the owner's domain actions. attach
// runs when an object is attached; detach runs when an object is detached,
// whether explicitly or because it expired. Either action may be nil.
func NewAttacher[T Expirable](attach, detach func(T)) *Attacher[T] {
	return &Attacher[T]{
		attach:  attach,
		detach:  detach,
		tracked: make(map[uint64]*attachment[T]),
	}
}

// Attach starts tracking obj: the domain attach action runs, and from then
// on obj's expiry triggers the domain detach action and removes the entry.
//
// Attaching an identity that is already tracked detaches the previous object
// first (expiry subscription disposed, domain detach action run), then
// attaches the new one. Attaching an already-expired object is a no-op.
func (a *Attacher[T]) Attach(obj T) {
	token := obj.ExpiryToken()
	if token.IsExpired() {
		return
	}
	key := token.ID()

	if prev, ok := a.tracked[key]; ok {
		prev.sub.Dispose()
		delete(a.tracked, key)
		if a.detach != nil {
			a.detach(prev.obj)
		}
	}

	if a.attach != nil {
		a.attach(obj)
	}

	att := &attachment[T]{obj: obj}
	att.sub.Set(token.ObserveExpiry(func() {
		delete(a.tracked, key)
		if a.detach != nil {
			a.detach(obj)
		}
	}))
	a.tracked[key] = att
}

// Detach stops tracking obj and runs the domain detach action. Detaching an
// untracked object is a no-op, so Detach after expiry never double-fires the
// domain action.
func (a *Attacher[T]) Detach(obj T) {
	key := obj.ExpiryToken().ID()
	att, ok := a.tracked[key]
	if !ok {
		return
	}
	att.sub.Dispose()
	delete(a.tracked, key)
	if a.detach != nil {
		a.detach(att.obj)
	}
}

// Attached reports whether obj is currently tracked.
func (a *Attacher[T]) Attached(obj T) bool {
	_, ok := a.tracked[obj.ExpiryToken().ID()]
	return ok
}

// Len returns the number of tracked objects.
func (a *Attacher[T]) Len() int {
	return len(a.tracked)
}

// DetachAll detaches every tracked object, in unspecified order. Owners call
// it during their own teardown.
func (a *Attacher[T]) DetachAll() {
	for key, att := range a.tracked {
		att.sub.Dispose()
		delete(a.tracked, key)
		if a.detach != nil {
			a.detach(att.obj)
		}
	}
}
