package service

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/allisson/idgen/internal/errors"
	"github.com/allisson/idgen/internal/identifier/domain"
)

const (
	uuidTemplate = "xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx"
	hexDigits    = "0123456789abcdef"
	uuidLength   = len(uuidTemplate)
)

var uuidV4Pattern = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// Case selects the letter case applied by FormatUUID.
type Case string

const (
	CaseLower Case = "lower"
	CaseUpper Case = "upper"
	// CaseMixed keeps the input as it is.
	CaseMixed Case = "mixed"
)

type uuidGenerator struct {
	source RandomSource
}

// NewUUIDGenerator creates a generator of version-4 shaped tokens drawn from source.
func NewUUIDGenerator(source RandomSource) SchemeGenerator {
	return &uuidGenerator{source: source}
}

// Generate fills the 8-4-4-4-12 template with random hex digits. The version
// digit is always '4' and the variant digit is one of 8, 9, a or b. Output is
// lowercase unless the config asks for uppercase.
func (g *uuidGenerator) Generate(cfg domain.SchemeConfig, index int) (string, error) {
	c, ok := cfg.(domain.UUIDConfig)
	if !ok {
		return "", domain.ErrInvalidScheme
	}

	buf := []byte(uuidTemplate)
	for i, c := range buf {
		if c != 'x' && c != 'y' {
			continue
		}
		r, err := g.source.IntN(16)
		if err != nil {
			return "", err
		}
		if c == 'y' {
			r = r&0x3 | 0x8
		}
		buf[i] = hexDigits[r]
	}
	if c.Uppercase {
		return FormatUUID(string(buf), CaseUpper), nil
	}
	return string(buf), nil
}

// Validate checks the canonical hyphenated form, version 4 and the RFC 4122 variant.
func (g *uuidGenerator) Validate(in domain.ValidateInput) error {
	if len(in.ID) != uuidLength {
		return errors.New("token must be 36 characters long")
	}
	parsed, err := uuid.Parse(in.ID)
	if err != nil {
		return errors.New("invalid UUID format")
	}
	if parsed.Version() != 4 {
		return errors.New("UUID version must be 4")
	}
	if parsed.Variant() != uuid.RFC4122 {
		return errors.New("UUID variant must be RFC 4122")
	}
	return nil
}

// IsValidUUID reports whether s is a hyphenated version-4 UUID in any letter case.
func IsValidUUID(s string) bool {
	return uuidV4Pattern.MatchString(s)
}

// FormatUUID rewrites the letter case of s. CaseMixed and unknown cases return s unchanged.
func FormatUUID(s string, c Case) string {
	switch c {
	case CaseUpper:
		return strings.ToUpper(s)
	case CaseLower:
		return strings.ToLower(s)
	default:
		return s
	}
}
