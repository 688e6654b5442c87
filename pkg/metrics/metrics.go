// Package metrics holds the OpenTelemetry instruments recorded by the
// resolution engine. The server exports them through Prometheus.
package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides histogram buckets in seconds sized for DNS round
// trips bounded by a roughly one second deadline.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5} //nolint: gochecknoglobals

// Resolution groups the instruments describing DNS lookups.
type Resolution struct {
	lookups  metric.Int64Counter
	duration metric.Float64Histogram
	inFlight metric.Int64UpDownCounter
}

// NewResolution creates the resolution instruments on the given meter.
func NewResolution(meter metric.Meter) (*Resolution, error) {
	lookups, err := meter.Int64Counter("lookalike_lookups_total",
		metric.WithDescription("DNS lookups by terminal outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create lookups counter: %w", err)
	}

	duration, err := meter.Float64Histogram("lookalike_lookup_duration_seconds",
		metric.WithDescription("DNS lookup latency"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create lookup duration histogram: %w", err)
	}

	inFlight, err := meter.Int64UpDownCounter("lookalike_lookups_in_flight",
		metric.WithDescription("DNS lookups currently waiting for an answer"))
	if err != nil {
		return nil, fmt.Errorf("could not create in-flight counter: %w", err)
	}

	return &Resolution{lookups: lookups, duration: duration, inFlight: inFlight}, nil
}

// Started marks one lookup as in flight.
func (r *Resolution) Started(ctx context.Context) {
	r.inFlight.Add(ctx, 1)
}

// Finished records the terminal outcome of one lookup. reason is empty for
// outcomes that carry none.
func (r *Resolution) Finished(ctx context.Context, outcome, reason string, took time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("outcome", outcome),
		attribute.String("reason", reason),
	)
	r.inFlight.Add(ctx, -1)
	r.lookups.Add(ctx, 1, attrs)
	r.duration.Record(ctx, took.Seconds(), metric.WithAttributes(attribute.String("outcome", outcome)))
}
