package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/pulsekit/pulse/pkg/instrument"
	"github.com/pulsekit/pulse/pkg/pulse"
)

type benchConfig struct {
	Subscribers  int
	Notifies     int
	PropertySets int
	Attachments  int
	MetricsAddr  string
	JSONOutput   bool
}

type benchResult struct {
	Name       string        `json:"name"`
	Operations int           `json:"operations"`
	Callbacks  uint64        `json:"callbacks"`
	Elapsed    time.Duration `json:"elapsed_ns"`
	PerOp      time.Duration `json:"per_op_ns"`
}

func runCmd() *cobra.Command {
	cfg := benchConfig{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark workloads",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cfg)
		},
	}

	cmd.Flags().IntVar(&cfg.Subscribers, "subscribers", 100, "Subscribers per channel")
	cmd.Flags().IntVar(&cfg.Notifies, "notifies", 10000, "Notify calls in the fan-out workload")
	cmd.Flags().IntVar(&cfg.PropertySets, "sets", 10000, "Set calls in the property workload")
	cmd.Flags().IntVar(&cfg.Attachments, "attachments", 1000, "Attach/expire cycles in the attacher workload")
	cmd.Flags().StringVar(&cfg.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address during the run")
	cmd.Flags().BoolVar(&cfg.JSONOutput, "json", false, "Emit results as JSON")

	return cmd
}

func runBench(cfg benchConfig) error {
	logger := slog.Default()

	var metrics *instrument.Metrics
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		metrics = instrument.New(
			instrument.WithRegistry(reg),
			instrument.WithNamespace("pulsebench"),
		)

		srv, err := startMetricsServer(cfg.MetricsAddr, reg, logger)
		if err != nil {
			return fmt.Errorf("starting metrics server: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("metrics server shutdown", "error", err)
			}
		}()
	}

	results := []benchResult{
		fanoutBench(cfg, metrics, logger),
		propertyBench(cfg, logger),
		attacherBench(cfg, logger),
	}

	if cfg.JSONOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	fmt.Printf("%-12s %12s %12s %12s %12s\n", "workload", "ops", "callbacks", "elapsed", "per op")
	for _, r := range results {
		fmt.Printf("%-12s %12d %12d %12s %12s\n",
			r.Name, r.Operations, r.Callbacks, r.Elapsed.Round(time.Microsecond), r.PerOp)
	}

	return nil
}

// startMetricsServer serves /metrics and /healthz until shut down.
func startMetricsServer(addr string, reg *prometheus.Registry, logger *slog.Logger) (*http.Server, error) {
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		logger.Info("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	return srv, nil
}

// fanoutBench measures delivery cost of one channel with many subscribers.
func fanoutBench(cfg benchConfig, metrics *instrument.Metrics, logger *slog.Logger) benchResult {
	logger.Debug("starting fan-out workload",
		"subscribers", cfg.Subscribers, "notifies", cfg.Notifies)

	ch := pulse.NewChannel()
	var delivered uint64
	for i := 0; i < cfg.Subscribers; i++ {
		ch.Observe(func() { delivered++ })
	}

	notify := ch.Notify
	if metrics != nil {
		metered := metrics.Channel("fanout", ch)
		notify = metered.Notify
	}

	start := time.Now()
	for i := 0; i < cfg.Notifies; i++ {
		notify()
	}
	elapsed := time.Since(start)

	return result("fanout", cfg.Notifies, delivered, elapsed)
}

// propertyBench measures Set cost with observers attached, half of the sets
// hitting the equality dedup path.
func propertyBench(cfg benchConfig, logger *slog.Logger) benchResult {
	logger.Debug("starting property workload",
		"subscribers", cfg.Subscribers, "sets", cfg.PropertySets)

	p := pulse.NewProperty(0)
	var delivered uint64
	for i := 0; i < cfg.Subscribers; i++ {
		pulse.NewBinding(p.Observer(), func() { delivered++ })
	}

	start := time.Now()
	for i := 0; i < cfg.PropertySets; i++ {
		p.Set(i / 2) // every other set is a dedup no-op
	}
	elapsed := time.Since(start)

	return result("property", cfg.PropertySets, delivered, elapsed)
}

// attacherBench measures attach/expire churn.
func attacherBench(cfg benchConfig, logger *slog.Logger) benchResult {
	logger.Debug("starting attacher workload", "attachments", cfg.Attachments)

	type node struct {
		pulse.Expiring
	}

	var detached uint64
	attacher := pulse.NewAttacher(
		func(*node) {},
		func(*node) { detached++ },
	)

	start := time.Now()
	for i := 0; i < cfg.Attachments; i++ {
		n := &node{}
		attacher.Attach(n)
		n.Expire()
	}
	elapsed := time.Since(start)

	return result("attacher", cfg.Attachments, detached, elapsed)
}

func result(name string, ops int, callbacks uint64, elapsed time.Duration) benchResult {
	perOp := time.Duration(0)
	if ops > 0 {
		perOp = elapsed / time.Duration(ops)
	}
	return benchResult{
		Name:       name,
		Operations: ops,
		Callbacks:  callbacks,
		Elapsed:    elapsed,
		PerOp:      perOp,
	}
}
