package service

import (
	"fmt"

	"github.com/allisson/idgen/internal/errors"
	"github.com/allisson/idgen/internal/identifier/domain"
)

type hashidGenerator struct {
	salt string
}

// NewHashIDGenerator creates a reversible encoding generator padding with salt.
func NewHashIDGenerator(salt string) SchemeGenerator {
	return &hashidGenerator{salt: salt}
}

// Generate encodes cfg.Start+index over the alphabet resolved with the narrow symbol set.
func (g *hashidGenerator) Generate(cfg domain.SchemeConfig, index int) (string, error) {
	c, ok := cfg.(domain.HashIDConfig)
	if !ok {
		return "", domain.ErrInvalidScheme
	}
	n, err := startIndex(c.Start, index)
	if err != nil {
		return "", err
	}
	enc, err := EncodeDetailed(n, ResolveAlphabet(c.Charset, domain.SymbolSetNarrow), c.MinLength, g.salt, c.AllowTruncation)
	if err != nil {
		return "", err
	}
	return enc.ID, nil
}

// Validate checks the alphabet membership and, when requested, the minimum length.
func (g *hashidGenerator) Validate(in domain.ValidateInput) error {
	if len(in.ID) == 0 {
		return errors.New("identifier cannot be empty")
	}
	if in.Length > 0 && len(in.ID) < in.Length {
		return fmt.Errorf("identifier must be at least %d characters long", in.Length)
	}
	if !ResolveAlphabet(in.Charset, domain.SymbolSetNarrow).Contains(in.ID) {
		return errors.New("identifier contains characters outside the alphabet")
	}
	return nil
}
