package instrument

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pulsekit/pulse/pkg/pulse"
)

// Config configures the metrics bundle.
type Config struct {
	// Namespace is the metrics namespace (default: "pulse").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for notify duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// Option configures the metrics bundle.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "pulse",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors for pulse activity.
//
// Metrics collected:
//   - pulse_notifications_total: counter of Notify calls by channel
//   - pulse_callbacks_invoked_total: counter of callbacks delivered by channel
//   - pulse_notify_duration_seconds: histogram of delivery duration by channel
//   - pulse_channel_subscriptions: gauge of live registrations per channel
//   - pulse_source_notifications_total: counter of property/getter changes by source
type Metrics struct {
	cfg     Config
	factory promauto.Factory

	notificationsTotal *prometheus.CounterVec
	callbacksTotal     *prometheus.CounterVec
	notifyDuration     *prometheus.HistogramVec
	sourceTotal        *prometheus.CounterVec
}

// New creates a metrics bundle and registers its collectors.
func New(opts ...Option) *Metrics {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(cfg.Registry)

	return &Metrics{
		cfg:     cfg,
		factory: factory,

		notificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "notifications_total",
			Help:        "Total number of Notify calls per channel",
			ConstLabels: cfg.ConstLabels,
		}, []string{"channel"}),

		callbacksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "callbacks_invoked_total",
			Help:        "Total number of callbacks delivered per channel",
			ConstLabels: cfg.ConstLabels,
		}, []string{"channel"}),

		notifyDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "notify_duration_seconds",
			Help:        "Delivery duration per Notify call in seconds",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}, []string{"channel"}),

		sourceTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "source_notifications_total",
			Help:        "Total number of change notifications per tracked source",
			ConstLabels: cfg.ConstLabels,
		}, []string{"source"}),
	}
}

// Channel wraps ch in a metered façade. A live-registration gauge for the
// channel is registered immediately; notifications through the returned
// wrapper are counted and timed. Each channel name must be unique per
// registry.
func (m *Metrics) Channel(name string, ch *pulse.Channel) *Channel {
	labels := prometheus.Labels{"channel": name}
	for k, v := range m.cfg.ConstLabels {
		labels[k] = v
	}

	m.factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace:   m.cfg.Namespace,
		Subsystem:   m.cfg.Subsystem,
		Name:        "channel_subscriptions",
		Help:        "Number of live registrations on the channel",
		ConstLabels: labels,
	}, func() float64 {
		return float64(ch.Len())
	})

	return &Channel{name: name, ch: ch, m: m}
}

// Channel is a metered façade over a pulse.Channel.
type Channel struct {
	name string
	ch   *pulse.Channel
	m    *Metrics
}

// Observe forwards to the wrapped channel.
func (c *Channel) Observe(fn func()) *pulse.Subscription {
	return c.ch.Observe(fn)
}

// Notify forwards to the wrapped channel, counting the call, the callbacks
// delivered, and the delivery duration. Duration is recorded even when a
// callback panics.
func (c *Channel) Notify() {
	c.m.notificationsTotal.WithLabelValues(c.name).Inc()
	c.m.callbacksTotal.WithLabelValues(c.name).Add(float64(c.ch.Len()))

	start := time.Now()
	defer func() {
		c.m.notifyDuration.WithLabelValues(c.name).Observe(time.Since(start).Seconds())
	}()

	c.ch.Notify()
}

// Len forwards to the wrapped channel.
func (c *Channel) Len() int {
	return c.ch.Len()
}

// Unwrap returns the underlying channel.
func (c *Channel) Unwrap() *pulse.Channel {
	return c.ch
}

// Track counts change notifications from an observable source — a property
// or getter view — under the given source name. The returned subscription
// stops the tracking when disposed.
func Track[T any](m *Metrics, name string, obs pulse.Observer[T]) *pulse.Subscription {
	counter := m.sourceTotal.WithLabelValues(name)
	return obs.Observe(func() {
		counter.Inc()
	})
}
