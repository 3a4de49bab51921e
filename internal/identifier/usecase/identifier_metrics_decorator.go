package usecase

import (
	"context"
	"time"

	identifierDomain "github.com/allisson/idgen/internal/identifier/domain"
	"github.com/allisson/idgen/internal/metrics"
)

const metricsDomain = "identifier"

// identifierUseCaseWithMetrics decorates IdentifierUseCase with metrics instrumentation.
type identifierUseCaseWithMetrics struct {
	next    IdentifierUseCase
	metrics metrics.BusinessMetrics
}

// NewIdentifierUseCaseWithMetrics wraps an IdentifierUseCase with metrics recording.
func NewIdentifierUseCaseWithMetrics(
	useCase IdentifierUseCase,
	m metrics.BusinessMetrics,
) IdentifierUseCase {
	return &identifierUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Generate records metrics for single identifier generation.
func (i *identifierUseCaseWithMetrics) Generate(
	ctx context.Context,
	cfg identifierDomain.SchemeConfig,
) (*identifierDomain.Batch, error) {
	start := time.Now()
	batch, err := i.next.Generate(ctx, cfg)

	i.record(ctx, "generate", start, err)
	i.recordGenerated(ctx, batch)

	return batch, err
}

// GenerateBatch records metrics for batch generation.
func (i *identifierUseCaseWithMetrics) GenerateBatch(
	ctx context.Context,
	cfg identifierDomain.SchemeConfig,
	count int,
) (*identifierDomain.Batch, error) {
	start := time.Now()
	batch, err := i.next.GenerateBatch(ctx, cfg, count)

	i.record(ctx, "generate_batch", start, err)
	i.recordGenerated(ctx, batch)

	return batch, err
}

// Encode records metrics for reversible encodings.
func (i *identifierUseCaseWithMetrics) Encode(
	ctx context.Context,
	input *identifierDomain.EncodeInput,
) (*identifierDomain.Encoding, error) {
	start := time.Now()
	enc, err := i.next.Encode(ctx, input)

	i.record(ctx, "encode", start, err)

	return enc, err
}

// Decode records metrics for reversible decodings.
func (i *identifierUseCaseWithMetrics) Decode(
	ctx context.Context,
	input *identifierDomain.DecodeInput,
) (uint64, error) {
	start := time.Now()
	value, err := i.next.Decode(ctx, input)

	i.record(ctx, "decode", start, err)

	return value, err
}

// Validate records metrics for identifier validation.
func (i *identifierUseCaseWithMetrics) Validate(
	ctx context.Context,
	input *identifierDomain.ValidateInput,
) (*identifierDomain.ValidationResult, error) {
	start := time.Now()
	result, err := i.next.Validate(ctx, input)

	i.record(ctx, "validate", start, err)

	return result, err
}

func (i *identifierUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	i.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	i.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

func (i *identifierUseCaseWithMetrics) recordGenerated(ctx context.Context, batch *identifierDomain.Batch) {
	if batch == nil {
		return
	}
	i.metrics.RecordGenerated(ctx, batch.Scheme.String(), batch.Count())
}
