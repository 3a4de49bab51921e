// Package usecase defines interfaces and implementations for identifier use cases.
// Wraps the scheme generators with batch bookkeeping, decoding and validation.
package usecase

import (
	"context"

	identifierDomain "github.com/allisson/idgen/internal/identifier/domain"
)

// IdentifierGenerator defines the generation engine the use case delegates to.
type IdentifierGenerator interface {
	GenerateBatch(cfg identifierDomain.SchemeConfig, count int) ([]string, error)
	Encode(in identifierDomain.EncodeInput) (identifierDomain.Encoding, error)
	Decode(in identifierDomain.DecodeInput) (uint64, error)
	Validate(in identifierDomain.ValidateInput) (identifierDomain.ValidationResult, error)
}

// IdentifierUseCase defines the interface for identifier operations.
type IdentifierUseCase interface {
	// Generate produces a batch holding a single identifier.
	Generate(ctx context.Context, cfg identifierDomain.SchemeConfig) (*identifierDomain.Batch, error)

	// GenerateBatch produces count identifiers in generation order. The whole batch fails
	// on the first error.
	GenerateBatch(
		ctx context.Context,
		cfg identifierDomain.SchemeConfig,
		count int,
	) (*identifierDomain.Batch, error)

	// Encode encodes a single number with the reversible scheme and reports its payload length.
	Encode(ctx context.Context, input *identifierDomain.EncodeInput) (*identifierDomain.Encoding, error)

	// Decode recovers the number behind a reversible identifier.
	Decode(ctx context.Context, input *identifierDomain.DecodeInput) (uint64, error)

	// Validate checks an identifier against its scheme contract.
	Validate(
		ctx context.Context,
		input *identifierDomain.ValidateInput,
	) (*identifierDomain.ValidationResult, error)
}
