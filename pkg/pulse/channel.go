package pulse

import "sync"

// entry pairs one registered callback with its subscription handle.
type entry[T any] struct {
	sub *Subscription
	fn  func(T)
}

// ChannelOf is a multicast notification channel carrying a payload of type T.
// Callbacks are invoked in registration order, synchronously on the notifying
// goroutine. The zero value is a usable single-threaded channel; use
// NewSyncChannelOf when subscribers and notifiers live on different
// goroutines.
type ChannelOf[T any] struct {
	// mu guards the entries slice. nil for single-threaded channels.
	mu      *sync.Mutex
	entries []*entry[T]
}

// NewChannelOf returns a single-threaded channel.
func NewChannelOf[T any]() *ChannelOf[T] {
	return &ChannelOf[T]{}
}

// NewSyncChannelOf returns a channel whose subscriber list is protected by a
// mutex, making Observe, Dispose, and Notify safe to call from multiple
// goroutines. Delivery itself still runs synchronously on the notifying
// goroutine, outside the lock.
func NewSyncChannelOf[T any]() *ChannelOf[T] {
	return &ChannelOf[T]{mu: &sync.Mutex{}}
}

// Observe registers fn, appended after all existing registrations, and
// returns the handle that severs it. A nil fn yields an inert, already
// disposed handle.
func (c *ChannelOf[T]) Observe(fn func(T)) *Subscription {
	if fn == nil {
		sub := &Subscription{}
		sub.disposed.Store(true)
		return sub
	}

	if c.mu != nil {
		c.mu.Lock()
		defer c.mu.Unlock()
	}

	e := &entry[T]{fn: fn}
	e.sub = &Subscription{detach: func() { c.remove(e) }}
	c.entries = append(c.entries, e)
	return e.sub
}

// Notify invokes every currently registered callback exactly once, in
// registration order. Callbacks disposed during the delivery (including
// self-disposal) are skipped for the remainder of it; callbacks registered
// during the delivery are not invoked within it.
func (c *ChannelOf[T]) Notify(v T) {
	for _, e := range c.snapshot() {
		if e.sub.Disposed() {
			continue
		}
		e.fn(v)
	}
}

// Len returns the number of live registrations.
func (c *ChannelOf[T]) Len() int {
	if c.mu != nil {
		c.mu.Lock()
		defer c.mu.Unlock()
	}
	return len(c.entries)
}

// snapshot copies the subscriber list so delivery iterates over a stable
// view while callbacks mutate the channel.
func (c *ChannelOf[T]) snapshot() []*entry[T] {
	if c.mu != nil {
		c.mu.Lock()
		defer c.mu.Unlock()
	}
	if len(c.entries) == 0 {
		return nil
	}
	snap := make([]*entry[T], len(c.entries))
	copy(snap, c.entries)
	return snap
}

// remove deletes the entry, preserving registration order of the rest.
func (c *ChannelOf[T]) remove(target *entry[T]) {
	if c.mu != nil {
		c.mu.Lock()
		defer c.mu.Unlock()
	}
	for i, e := range c.entries {
		if e == target {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}

// Channel is a payload-free multicast notification channel: callbacks take
// no arguments and observers pull whatever state they need from the source
// that fired. It is the signaling primitive behind properties, getters, and
// expiry tokens. The zero value is a usable single-threaded channel.
type Channel struct {
	ch ChannelOf[struct{}]
}

// NewChannel returns a single-threaded channel.
func NewChannel() *Channel {
	return &Channel{}
}

// NewSyncChannel returns a channel safe for cross-goroutine use; see
// NewSyncChannelOf for the exact guarantees.
func NewSyncChannel() *Channel {
	return &Channel{ch: ChannelOf[struct{}]{mu: &sync.Mutex{}}}
}

// Observe registers fn, appended after all existing registrations.
func (c *Channel) Observe(fn func()) *Subscription {
	if fn == nil {
		return c.ch.Observe(nil)
	}
	return c.ch.Observe(func(struct{}) { fn() })
}

// Notify invokes every currently registered callback in registration order.
func (c *Channel) Notify() {
	c.ch.Notify(struct{}{})
}

// Len returns the number of live registrations.
func (c *Channel) Len() int {
	return c.ch.Len()
}
