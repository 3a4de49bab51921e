package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Identifier operations finish in microseconds, so the latency buckets start well below
// the OpenTelemetry defaults.
var operationDurationBuckets = []float64{
	0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1,
}

var batchSizeBuckets = []float64{1, 5, 10, 50, 100, 500, 1000, 5000, 10000}

// BusinessMetrics records what the identifier engine does, independent of transport.
type BusinessMetrics interface {
	// RecordOperation counts one call of operation ("generate_batch", "encode", "decode",
	// "validate") in domain, labelled "success" or "error".
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration observes how long operation took.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)

	// RecordGenerated counts count identifiers produced for scheme and observes the batch size.
	RecordGenerated(ctx context.Context, scheme string, count int)
}

type businessMetrics struct {
	operations metric.Int64Counter
	durations  metric.Float64Histogram
	generated  metric.Int64Counter
	batchSizes metric.Int64Histogram
}

// NewBusinessMetrics creates the instruments on a meter named after namespace. Every
// instrument name is prefixed with namespace.
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)
	name := func(suffix string) string { return fmt.Sprintf("%s_%s", namespace, suffix) }

	operations, err := meter.Int64Counter(
		name("operations_total"),
		metric.WithDescription("Total number of identifier operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durations, err := meter.Float64Histogram(
		name("operation_duration_seconds"),
		metric.WithDescription("Duration of identifier operations in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(operationDurationBuckets...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	generated, err := meter.Int64Counter(
		name("identifiers_generated_total"),
		metric.WithDescription("Total number of generated identifiers"),
		metric.WithUnit("{identifier}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create generated counter: %w", err)
	}

	batchSizes, err := meter.Int64Histogram(
		name("batch_size"),
		metric.WithDescription("Number of identifiers per generated batch"),
		metric.WithUnit("{identifier}"),
		metric.WithExplicitBucketBoundaries(batchSizeBuckets...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create batch size histogram: %w", err)
	}

	return &businessMetrics{
		operations: operations,
		durations:  durations,
		generated:  generated,
		batchSizes: batchSizes,
	}, nil
}

func operationAttributes(domain, operation, status string) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
}

func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operations.Add(ctx, 1, operationAttributes(domain, operation, status))
}

func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.durations.Record(ctx, duration.Seconds(), operationAttributes(domain, operation, status))
}

// RecordGenerated ignores empty batches.
func (b *businessMetrics) RecordGenerated(ctx context.Context, scheme string, count int) {
	if count <= 0 {
		return
	}
	opt := metric.WithAttributes(attribute.String("scheme", scheme))
	b.generated.Add(ctx, int64(count), opt)
	b.batchSizes.Record(ctx, int64(count), opt)
}

// NoOpBusinessMetrics discards every measurement. It is used when metrics are disabled.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics returns a BusinessMetrics that records nothing.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return NoOpBusinessMetrics{}
}

func (NoOpBusinessMetrics) RecordOperation(context.Context, string, string, string) {}

func (NoOpBusinessMetrics) RecordDuration(context.Context, string, string, time.Duration, string) {}

func (NoOpBusinessMetrics) RecordGenerated(context.Context, string, int) {}
