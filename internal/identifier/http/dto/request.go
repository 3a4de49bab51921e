// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"fmt"

	validation "github.com/jellydator/validation"

	identifierDomain "github.com/allisson/idgen/internal/identifier/domain"
	customValidation "github.com/allisson/idgen/internal/validation"
)

// Defaults holds the values applied when a request omits a length.
type Defaults struct {
	NanoIDLength    int
	HashIDMinLength int
	SlugLength      int
	MaxBatchSize    int
}

// DefaultDefaults returns the built-in defaults.
func DefaultDefaults() Defaults {
	return Defaults{
		NanoIDLength:    identifierDomain.DefaultNanoIDLength,
		HashIDMinLength: identifierDomain.DefaultHashIDMinLength,
		SlugLength:      identifierDomain.DefaultSlugLength,
		MaxBatchSize:    identifierDomain.MaxBatchSize,
	}
}

// CharsetRequest selects the character classes of an alphabet.
type CharsetRequest struct {
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Numbers   bool `json:"numbers"`
	Symbols   bool `json:"symbols"`
}

// ToDomain converts the request charset to a domain charset.
func (c CharsetRequest) ToDomain() identifierDomain.Charset {
	return identifierDomain.Charset{
		Uppercase: c.Uppercase,
		Lowercase: c.Lowercase,
		Digits:    c.Numbers,
		Symbols:   c.Symbols,
	}
}

const (
	uuidCaseLower = "lower"
	uuidCaseUpper = "upper"
)

// GenerateRequest contains the parameters for generating a batch of identifiers.
type GenerateRequest struct {
	Scheme  string         `json:"scheme"` // "uuid", "nanoid", "hashids", "slug"
	Count   int            `json:"count"`  // Defaults to 1
	Charset CharsetRequest `json:"charset"`
	// Length is the nanoid and slug length or the hashids minimum length.
	Length          *int     `json:"length,omitempty"`
	Start           *uint64  `json:"start,omitempty"` // First hashids number, defaults to 1
	AllowTruncation bool     `json:"allow_truncation"`
	Words           []string `json:"words,omitempty"`
	Separator       string   `json:"separator,omitempty"` // "-" or "_"
	// UUIDCase is "lower" (default) or "upper". The charset never affects uuid output.
	UUIDCase string `json:"uuid_case,omitempty"`
}

// Validate checks if the generate request is valid.
func (r *GenerateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Scheme,
			validation.Required,
			customValidation.NotBlank,
			validation.By(validateScheme),
		),
		validation.Field(&r.Count,
			validation.Min(0),
		),
		validation.Field(&r.Length,
			validation.By(validateOptionalLength),
		),
		validation.Field(&r.Words,
			customValidation.WordList,
		),
		validation.Field(&r.Separator,
			customValidation.Separator,
		),
		validation.Field(&r.UUIDCase,
			validation.In(uuidCaseLower, uuidCaseUpper),
		),
	)
}

// BatchCount returns the requested count, defaulting to 1.
func (r *GenerateRequest) BatchCount() int {
	if r.Count == 0 {
		return 1
	}
	return r.Count
}

// ToSchemeConfig maps the request to the typed configuration of its scheme.
func (r *GenerateRequest) ToSchemeConfig(defaults Defaults) (identifierDomain.SchemeConfig, error) {
	scheme, err := identifierDomain.ParseScheme(r.Scheme)
	if err != nil {
		return nil, err
	}

	charset := r.Charset.ToDomain()
	switch scheme {
	case identifierDomain.SchemeUUID:
		return identifierDomain.UUIDConfig{Uppercase: r.UUIDCase == uuidCaseUpper}, nil
	case identifierDomain.SchemeNanoID:
		return identifierDomain.NanoIDConfig{
			Charset: charset,
			Length:  lengthOrDefault(r.Length, defaults.NanoIDLength),
		}, nil
	case identifierDomain.SchemeHashID:
		start := uint64(identifierDomain.DefaultHashIDStart)
		if r.Start != nil {
			start = *r.Start
		}
		return identifierDomain.HashIDConfig{
			Charset:         charset,
			MinLength:       lengthOrDefault(r.Length, defaults.HashIDMinLength),
			Start:           start,
			AllowTruncation: r.AllowTruncation,
		}, nil
	default:
		var separator rune
		if r.Separator != "" {
			separator = rune(r.Separator[0])
		}
		return identifierDomain.SlugConfig{
			Charset:   charset,
			Length:    lengthOrDefault(r.Length, defaults.SlugLength),
			Words:     r.Words,
			Separator: separator,
		}, nil
	}
}

// EncodeRequest contains the parameters for encoding a single number.
type EncodeRequest struct {
	Number          *uint64        `json:"number"`
	Charset         CharsetRequest `json:"charset"`
	MinLength       *int           `json:"min_length,omitempty"`
	AllowTruncation bool           `json:"allow_truncation"`
}

// Validate checks if the encode request is valid.
func (r *EncodeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Number,
			validation.NotNil,
		),
		validation.Field(&r.MinLength,
			validation.By(validateOptionalLength),
		),
	)
}

// ToDomain converts the request to an encode input.
func (r *EncodeRequest) ToDomain(defaults Defaults) *identifierDomain.EncodeInput {
	var number uint64
	if r.Number != nil {
		number = *r.Number
	}
	return &identifierDomain.EncodeInput{
		Number:          number,
		Charset:         r.Charset.ToDomain(),
		MinLength:       lengthOrDefault(r.MinLength, defaults.HashIDMinLength),
		AllowTruncation: r.AllowTruncation,
	}
}

// DecodeRequest contains the parameters for decoding a reversible identifier.
type DecodeRequest struct {
	ID      string         `json:"id"`
	Charset CharsetRequest `json:"charset"`
	// PayloadLength is the payload_length returned by encode. When set the salted padding is
	// verified and only the payload is decoded. Without it the whole id is read positionally,
	// which gives a different value for any padded id.
	PayloadLength int `json:"payload_length,omitempty"`
}

// Validate checks if the decode request is valid.
func (r *DecodeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ID,
			validation.Required,
			customValidation.NotBlank,
			customValidation.NoWhitespace,
		),
		validation.Field(&r.PayloadLength,
			validation.Min(0),
		),
	)
}

// ToDomain converts the request to a decode input.
func (r *DecodeRequest) ToDomain() *identifierDomain.DecodeInput {
	return &identifierDomain.DecodeInput{
		ID:            r.ID,
		Charset:       r.Charset.ToDomain(),
		PayloadLength: r.PayloadLength,
	}
}

// ValidateRequest contains the parameters for checking an identifier.
type ValidateRequest struct {
	Scheme  string         `json:"scheme"`
	ID      string         `json:"id"`
	Charset CharsetRequest `json:"charset"`
	Length  int            `json:"length,omitempty"` // Zero skips the length check
}

// Validate checks if the validate request is valid.
func (r *ValidateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Scheme,
			validation.Required,
			customValidation.NotBlank,
			validation.By(validateScheme),
		),
		validation.Field(&r.ID,
			validation.Required,
		),
		validation.Field(&r.Length,
			validation.Min(0),
			validation.Max(identifierDomain.MaxLength),
		),
	)
}

// ToDomain converts the request to a validate input. Validate must have succeeded.
func (r *ValidateRequest) ToDomain() *identifierDomain.ValidateInput {
	scheme, _ := identifierDomain.ParseScheme(r.Scheme)
	return &identifierDomain.ValidateInput{
		Scheme:  scheme,
		ID:      r.ID,
		Charset: r.Charset.ToDomain(),
		Length:  r.Length,
	}
}

// validateScheme checks if the scheme name is supported.
func validateScheme(value interface{}) error {
	name, ok := value.(string)
	if !ok {
		return validation.NewError("validation_scheme", "must be a string")
	}
	if name == "" {
		return nil // Let Required handle empty strings
	}
	if _, err := identifierDomain.ParseScheme(name); err != nil {
		return validation.NewError("validation_scheme", "must be one of: uuid, nanoid, hashids, slug")
	}
	return nil
}

// validateOptionalLength checks that a provided length is within 1..MaxLength.
func validateOptionalLength(value interface{}) error {
	length, ok := value.(*int)
	if !ok || length == nil {
		return nil
	}
	if *length < 1 || *length > identifierDomain.MaxLength {
		return validation.NewError(
			"validation_length",
			fmt.Sprintf("must be between 1 and %d", identifierDomain.MaxLength),
		)
	}
	return nil
}

func lengthOrDefault(length *int, defaultValue int) int {
	if length == nil {
		return defaultValue
	}
	return *length
}
