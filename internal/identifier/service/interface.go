// Package service provides identifier generation for the uuid, nanoid, hashids and slug schemes.
package service

import "github.com/allisson/idgen/internal/identifier/domain"

// RandomSource supplies uniform random integers. Implementations must be safe for
// concurrent use when shared between goroutines.
type RandomSource interface {
	// IntN returns a uniform integer in [0, n). n must be positive.
	IntN(n int) (int, error)
}

// SchemeGenerator produces and checks identifiers of a single scheme.
type SchemeGenerator interface {
	// Generate produces the identifier at position index of a batch.
	Generate(cfg domain.SchemeConfig, index int) (string, error)
	// Validate checks an identifier against the scheme contract.
	Validate(in domain.ValidateInput) error
}
