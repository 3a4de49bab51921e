package usecase

import (
	"context"
	"time"

	apperrors "github.com/allisson/idgen/internal/errors"
	identifierDomain "github.com/allisson/idgen/internal/identifier/domain"
)

// identifierUseCase implements IdentifierUseCase on top of an IdentifierGenerator.
type identifierUseCase struct {
	generator IdentifierGenerator
	now       func() time.Time
}

// Generate produces a batch holding a single identifier.
func (i *identifierUseCase) Generate(
	ctx context.Context,
	cfg identifierDomain.SchemeConfig,
) (*identifierDomain.Batch, error) {
	return i.GenerateBatch(ctx, cfg, 1)
}

// GenerateBatch produces count identifiers and stamps the batch with the generation time.
func (i *identifierUseCase) GenerateBatch(
	ctx context.Context,
	cfg identifierDomain.SchemeConfig,
	count int,
) (*identifierDomain.Batch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, identifierDomain.ErrInvalidScheme
	}

	ids, err := i.generator.GenerateBatch(cfg, count)
	if err != nil {
		return nil, err
	}

	return &identifierDomain.Batch{
		Scheme:      cfg.Scheme(),
		GeneratedAt: i.now().UTC(),
		IDs:         ids,
	}, nil
}

// Encode encodes a single number with the reversible scheme.
func (i *identifierUseCase) Encode(
	ctx context.Context,
	input *identifierDomain.EncodeInput,
) (*identifierDomain.Encoding, error) {
	if input == nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "encode input cannot be nil")
	}

	enc, err := i.generator.Encode(*input)
	if err != nil {
		return nil, err
	}
	return &enc, nil
}

// Decode recovers the number behind a reversible identifier.
func (i *identifierUseCase) Decode(ctx context.Context, input *identifierDomain.DecodeInput) (uint64, error) {
	if input == nil {
		return 0, apperrors.Wrap(apperrors.ErrInvalidInput, "decode input cannot be nil")
	}
	return i.generator.Decode(*input)
}

// Validate checks an identifier against its scheme contract.
func (i *identifierUseCase) Validate(
	ctx context.Context,
	input *identifierDomain.ValidateInput,
) (*identifierDomain.ValidationResult, error) {
	if input == nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "validate input cannot be nil")
	}

	result, err := i.generator.Validate(*input)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// NewIdentifierUseCase creates a new IdentifierUseCase with injected dependencies.
func NewIdentifierUseCase(generator IdentifierGenerator) IdentifierUseCase {
	return &identifierUseCase{
		generator: generator,
		now:       time.Now,
	}
}
