package service

import (
	"fmt"

	"github.com/allisson/idgen/internal/errors"
	"github.com/allisson/idgen/internal/identifier/domain"
)

type nanoidGenerator struct {
	source RandomSource
}

// NewNanoIDGenerator creates a random string generator. Characters are drawn
// uniformly from the alphabet resolved with the broad symbol set.
func NewNanoIDGenerator(source RandomSource) SchemeGenerator {
	return &nanoidGenerator{source: source}
}

// Generate creates a random string of exactly cfg.Length characters.
func (g *nanoidGenerator) Generate(cfg domain.SchemeConfig, index int) (string, error) {
	c, ok := cfg.(domain.NanoIDConfig)
	if !ok {
		return "", domain.ErrInvalidScheme
	}
	if c.Length < 1 {
		return "", domain.ErrInvalidLength
	}
	return randomString(g.source, ResolveAlphabet(c.Charset, domain.SymbolSetBroad), c.Length)
}

// Validate checks the alphabet membership and, when requested, the length.
func (g *nanoidGenerator) Validate(in domain.ValidateInput) error {
	if len(in.ID) == 0 {
		return errors.New("identifier cannot be empty")
	}
	if in.Length > 0 && len(in.ID) != in.Length {
		return fmt.Errorf("identifier must be %d characters long", in.Length)
	}
	if !ResolveAlphabet(in.Charset, domain.SymbolSetBroad).Contains(in.ID) {
		return errors.New("identifier contains characters outside the alphabet")
	}
	return nil
}
