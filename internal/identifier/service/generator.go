package service

import (
	"github.com/allisson/idgen/internal/errors"
	"github.com/allisson/idgen/internal/identifier/domain"
)

// Generator dispatches generation, validation and decoding to the scheme generators.
// It is safe for concurrent use when its RandomSource is.
type Generator struct {
	maxBatchSize int
	generators   map[domain.Scheme]SchemeGenerator
}

// Option configures a Generator.
type Option func(*Generator)

// WithMaxBatchSize overrides domain.MaxBatchSize. Values below 1 are ignored.
func WithMaxBatchSize(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxBatchSize = n
		}
	}
}

// NewGenerator creates a Generator drawing randomness from source. A nil source
// uses NewCryptoSource.
func NewGenerator(source RandomSource, opts ...Option) *Generator {
	if source == nil {
		source = NewCryptoSource()
	}
	g := &Generator{
		maxBatchSize: domain.MaxBatchSize,
		generators:   make(map[domain.Scheme]SchemeGenerator, 4),
	}
	for _, info := range domain.Schemes() {
		gen, _ := NewSchemeGenerator(info.Scheme, source)
		g.generators[info.Scheme] = gen
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// MaxBatchSize returns the largest count GenerateBatch accepts.
func (g *Generator) MaxBatchSize() int {
	return g.maxBatchSize
}

// Generate produces a single identifier.
func (g *Generator) Generate(cfg domain.SchemeConfig) (string, error) {
	ids, err := g.GenerateBatch(cfg, 1)
	if err != nil {
		return "", err
	}
	return ids[0], nil
}

// GenerateBatch produces count identifiers in generation order. The configuration
// is validated once before anything is produced, and the first failure aborts the batch.
func (g *Generator) GenerateBatch(cfg domain.SchemeConfig, count int) ([]string, error) {
	cfg, err := normalizeConfig(cfg)
	if err != nil {
		return nil, err
	}
	if count < 1 || count > g.maxBatchSize {
		return nil, errors.Wrapf(domain.ErrInvalidCount, "count must be between 1 and %d", g.maxBatchSize)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gen := g.generators[cfg.Scheme()]
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, err := gen.Generate(cfg, i)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Encode encodes a single number with the reversible scheme.
func (g *Generator) Encode(in domain.EncodeInput) (domain.Encoding, error) {
	if in.MinLength < 1 || in.MinLength > domain.MaxLength {
		return domain.Encoding{}, domain.ErrInvalidLength
	}
	return EncodeDetailed(
		in.Number,
		ResolveAlphabet(in.Charset, domain.SymbolSetNarrow),
		in.MinLength,
		domain.DefaultSalt,
		in.AllowTruncation,
	)
}

// Decode recovers the number behind a reversible identifier. With a payload length
// the salted padding is verified first, otherwise the whole identifier is decoded.
// Padding cannot be detected without the payload length: a padded identifier is also
// the unpadded encoding of a larger number.
func (g *Generator) Decode(in domain.DecodeInput) (uint64, error) {
	alphabet := ResolveAlphabet(in.Charset, domain.SymbolSetNarrow)
	if in.PayloadLength > 0 {
		return DecodePadded(in.ID, alphabet, domain.DefaultSalt, in.PayloadLength)
	}
	return Decode(in.ID, alphabet)
}

// Validate checks an identifier against its scheme contract.
func (g *Generator) Validate(in domain.ValidateInput) (domain.ValidationResult, error) {
	if err := in.Scheme.Validate(); err != nil {
		return domain.ValidationResult{}, err
	}
	if err := g.generators[in.Scheme].Validate(in); err != nil {
		return domain.ValidationResult{Valid: false, Reason: err.Error()}, nil
	}
	return domain.ValidationResult{Valid: true}, nil
}

// normalizeConfig dereferences pointer configurations and rejects nil or unknown ones.
func normalizeConfig(cfg domain.SchemeConfig) (domain.SchemeConfig, error) {
	switch c := cfg.(type) {
	case domain.UUIDConfig, domain.NanoIDConfig, domain.HashIDConfig, domain.SlugConfig:
		return c, nil
	case *domain.UUIDConfig:
		if c != nil {
			return *c, nil
		}
	case *domain.NanoIDConfig:
		if c != nil {
			return *c, nil
		}
	case *domain.HashIDConfig:
		if c != nil {
			return *c, nil
		}
	case *domain.SlugConfig:
		if c != nil {
			return *c, nil
		}
	}
	return nil, errors.Wrap(domain.ErrInvalidScheme, "unsupported scheme configuration")
}
