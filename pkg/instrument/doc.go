// Package instrument provides optional observability wrappers for the pulse
// primitives: Prometheus metrics for channel and property activity, and
// OpenTelemetry spans around notification deliveries.
//
// The wrappers are purely additive façades; the core primitives carry no
// instrumentation hooks of their own. Wrap the channels you care about and
// notify through the wrapper:
//
//	m := instrument.New(instrument.WithNamespace("myapp"))
//	ch := m.Channel("orders", pulse.NewChannel())
//	ch.Observe(func() { ... })
//	ch.Notify() // counted and timed
package instrument
