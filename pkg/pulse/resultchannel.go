package pulse

import "sync"

// resultEntry pairs a result-producing callback with its handle.
type resultEntry[A, R any] struct {
	sub *Subscription
	fn  func(A) R
}

// ResultChannelOf is a multicast channel whose callbacks produce a result.
// Notify aggregates by keeping the last invoked callback's result, the same
// last-value policy signal libraries conventionally default to. The zero
// value is a usable single-threaded channel.
type ResultChannelOf[A, R any] struct {
	mu      *sync.Mutex
	entries []*resultEntry[A, R]
}

// NewResultChannelOf returns a single-threaded result channel.
func NewResultChannelOf[A, R any]() *ResultChannelOf[A, R] {
	return &ResultChannelOf[A, R]{}
}

// NewSyncResultChannelOf returns a result channel whose subscriber list is
// mutex-protected for cross-goroutine use.
func NewSyncResultChannelOf[A, R any]() *ResultChannelOf[A, R] {
	return &ResultChannelOf[A, R]{mu: &sync.Mutex{}}
}

// Observe registers fn, appended after all existing registrations.
func (c *ResultChannelOf[A, R]) Observe(fn func(A) R) *Subscription {
	if fn == nil {
		sub := &Subscription{}
		sub.disposed.Store(true)
		return sub
	}

	if c.mu != nil {
		c.mu.Lock()
		defer c.mu.Unlock()
	}

	e := &resultEntry[A, R]{fn: fn}
	e.sub = &Subscription{detach: func() { c.remove(e) }}
	c.entries = append(c.entries, e)
	return e.sub
}

// Notify invokes every currently registered callback in registration order
// and returns the last callback's result. ok is false when no callback ran,
// in which case the result is the zero value.
func (c *ResultChannelOf[A, R]) Notify(a A) (result R, ok bool) {
	for _, e := range c.snapshot() {
		if e.sub.Disposed() {
			continue
		}
		result = e.fn(a)
		ok = true
	}
	return result, ok
}

// Len returns the number of live registrations.
func (c *ResultChannelOf[A, R]) Len() int {
	if c.mu != nil {
		c.mu.Lock()
		defer c.mu.Unlock()
	}
	return len(c.entries)
}

func (c *ResultChannelOf[A, R]) snapshot() []*resultEntry[A, R] {
	if c.mu != nil {
		c.mu.Lock()
		defer c.mu.Unlock()
	}
	if len(c.entries) == 0 {
		return nil
	}
	snap := make([]*resultEntry[A, R], len(c.entries))
	copy(snap, c.entries)
	return snap
}

func (c *ResultChannelOf[A, R]) remove(target *resultEntry[A, R]) {
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
