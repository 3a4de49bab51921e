package service

import (
	"github.com/allisson/idgen/internal/identifier/domain"
)

// NewSchemeGenerator creates the generator for scheme. Random schemes draw from
// source, the reversible scheme pads with domain.DefaultSalt.
func NewSchemeGenerator(scheme domain.Scheme, source RandomSource) (SchemeGenerator, error) {
	switch scheme {
	case domain.SchemeUUID:
		return NewUUIDGenerator(source), nil
	case domain.SchemeNanoID:
		return NewNanoIDGenerator(source), nil
	case domain.SchemeHashID:
		return NewHashIDGenerator(domain.DefaultSalt), nil
	case domain.SchemeSlug:
		return NewSlugGenerator(source), nil
	default:
		return nil, domain.ErrInvalidScheme
	}
}
