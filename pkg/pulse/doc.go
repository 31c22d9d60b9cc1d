// Package pulse provides reactive primitives for single-process programs:
// multicast notification channels, observable properties with equality
// deduplication, pull-based computed values, non-owning observer views,
// bound subscriptions, and an expiry-token/attacher protocol for holding
// transient references across independent object lifetimes.
//
// # Core Types
//
// Channel is a multicast notification primitive with ordered delivery:
//
//	var ch pulse.Channel
//	sub := ch.Observe(func() { fmt.Println("ping") })
//	ch.Notify()   // invokes callbacks in registration order
//	sub.Dispose() // severs delivery; disposing twice is a no-op
//
// Property[T] stores a value and notifies observers when it changes:
//
//	count := pulse.NewProperty(0)
//	count.Observe(func() { fmt.Println("now", count.Get()) })
//	count.Set(5) // notifies
//	count.Set(5) // equal value, no notification
//
// The read half of a property can be handed out freely while the owner
// retains the only mutation capability:
//
//	view := count.ReadOnly() // Get/Observe/Observer, no Set
//	setter := count.Setter() // the sole mutator
//
// Getter[T] wraps a producer function; every Get recomputes, and the owner
// calls Notify whenever the producer's inputs change.
//
// Observer[T] is a copyable, non-owning read-only view over a property or
// getter; Binding[T] couples a view to a callback with connect/disconnect
// lifecycle management.
//
// ExpiryToken is a one-shot "owner is gone" signal, and Attacher tracks
// externally-owned Expirable objects, detaching them automatically when
// they expire.
//
// # Delivery Semantics
//
// Notify invokes every currently registered callback exactly once, in
// registration order, synchronously on the caller's goroutine. A callback
// may dispose its own or another subscription during delivery; a handle
// disposed mid-delivery is not invoked afterwards within that delivery.
// Callbacks registered during a delivery are not invoked within it.
//
// A panicking callback aborts the remainder of that delivery and the panic
// propagates to the caller of Notify, Set, or Expire.
//
// # Thread Safety
//
// By default channels and properties are single-threaded: all registration,
// notification, and mutation must happen on one goroutine. The NewSync*
// channel constructors add a mutex around the subscriber list only, making
// cross-goroutine Observe/Dispose/Notify safe; they give no atomicity
// guarantees for property values, which callers must synchronize themselves.
package pulse
