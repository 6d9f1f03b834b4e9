// Package metric exposes pipeline outcomes as Prometheus collectors and
// pushes them to a Pushgateway at the end of an invocation.
package metric

import (
	"context"

	"github.com/ashitosh07/lambda/internal/failure"
	"github.com/ashitosh07/lambda/internal/mapper"
	"github.com/ashitosh07/lambda/internal/pipeline"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "aml_stream"

// Observer implements pipeline.Observer on its own registry, so a short
// lived function pushes exactly what it counted.
type Observer struct {
	family   mapper.Family
	registry *prometheus.Registry

	recordsTotal    *prometheus.CounterVec // family, operation, state
	storeFailures   *prometheus.CounterVec // family
	publishFailures *prometheus.CounterVec // family, operation
	failuresByKind  *prometheus.CounterVec // family, kind
	duration        *prometheus.HistogramVec
}

func NewObserver(family mapper.Family) (*Observer, error) {
	o := &Observer{
		family:   family,
		registry: prometheus.NewRegistry(),

		recordsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "records_total",
			Help:      "Records processed, by final state",
		}, []string{"family", "operation", "state"}),

		storeFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "store_failures_total",
			Help:      "Audit writes that failed",
		}, []string{"family"}),

		publishFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "publish_failures_total",
			Help:      "Upstream create or replace calls that failed",
		}, []string{"family", "operation"}),

		failuresByKind: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "failures_total",
			Help:      "Failed records by error kind",
		}, []string{"family", "kind"}),

		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "record_duration_seconds",
			Help:      "Time spent on one record, sinks included",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"family"}),
	}

	for _, c := range []prometheus.Collector{o.recordsTotal, o.storeFailures, o.publishFailures, o.failuresByKind, o.duration} {
		if err := o.registry.Register(c); err != nil {
			return nil, err
		}
	}

	return o, nil
}

func (o *Observer) Registry() *prometheus.Registry {
	return o.registry
}

func (o *Observer) Observe(_ context.Context, out pipeline.Outcome) {
	family := string(o.family)
	operation := string(out.Operation)
	if operation == "" {
		operation = "unknown"
	}

	state := string(out.State)
	if out.Skipped {
		state = "skipped"
	}
	o.recordsTotal.WithLabelValues(family, operation, state).Inc()
	o.duration.WithLabelValues(family).Observe(out.Duration.Seconds())

	if out.StoreErr != nil {
		o.storeFailures.WithLabelValues(family).Inc()
	}
	if out.PublishErr != nil {
		o.publishFailures.WithLabelValues(family, operation).Inc()
	}
	if out.Failed() {
		o.failuresByKind.WithLabelValues(family, kindLabel(out)).Inc()
	}
}

func kindLabel(out pipeline.Outcome) string {
	if out.StoreErr != nil && out.PublishErr != nil {
		return "store_write_and_publish"
	}
	if kind, ok := failure.KindOf(out.Err); ok {
		return string(kind)
	}
	return "internal"
}

var _ pipeline.Observer = (*Observer)(nil)
