// Package domain defines the identifier generation domain model: the closed set of
// schemes, character-class configuration, alphabets and per-scheme configuration values.
package domain

// Scheme identifies one of the identifier construction algorithms.
type Scheme string

const (
	SchemeUUID   Scheme = "uuid"
	SchemeNanoID Scheme = "nanoid"
	SchemeHashID Scheme = "hashids"
	SchemeSlug   Scheme = "slug"
)

// Character ranges used to build alphabets. Ranges are disjoint.
const (
	UppercaseLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseLetters = "abcdefghijklmnopqrstuvwxyz"
	Digits           = "0123456789"

	// BroadSymbols is the symbol range used by random string generation.
	BroadSymbols = "-_.~!*()[]{}|:;@#$%^&+=?"

	// NarrowSymbols is the URL-safe symbol range used by reversible encoding and slugs.
	NarrowSymbols = "-_"

	// DefaultAlphabet is substituted when no character class is enabled.
	DefaultAlphabet = LowercaseLetters + Digits
)

// Generation defaults and limits.
const (
	// DefaultSalt perturbs reversible-encoding padding. It is not a secret.
	DefaultSalt = "this is my salt"

	DefaultNanoIDLength    = 21
	DefaultHashIDMinLength = 8
	DefaultSlugLength      = 12
	DefaultHashIDStart     = 1

	// MaxBatchSize is the default upper bound for a single batch.
	MaxBatchSize = 10000

	// MaxLength bounds every length-like setting to keep a single request cheap.
	MaxLength = 4096
)

// DefaultWords is the built-in slug word list.
var DefaultWords = []string{
	"awesome", "brilliant", "creative", "dynamic", "elegant", "fantastic",
	"gorgeous", "incredible", "amazing", "beautiful", "wonderful", "perfect",
	"project", "article", "post", "content", "story", "guide", "tutorial",
	"example", "sample", "demo", "test", "new", "latest", "modern", "fresh",
}

// ParseScheme converts a wire name into a Scheme. The descriptive aliases
// "uuid-like", "random-string" and "reversible" are accepted as well.
func ParseScheme(name string) (Scheme, error) {
	switch name {
	case "uuid", "uuid-like":
		return SchemeUUID, nil
	case "nanoid", "random-string":
		return SchemeNanoID, nil
	case "hashids", "hashid", "reversible":
		return SchemeHashID, nil
	case "slug":
		return SchemeSlug, nil
	default:
		return "", ErrInvalidScheme
	}
}

// Validate checks if the scheme is one of the supported schemes.
func (s Scheme) Validate() error {
	switch s {
	case SchemeUUID, SchemeNanoID, SchemeHashID, SchemeSlug:
		return nil
	default:
		return ErrInvalidScheme
	}
}

// String returns the string representation of the scheme.
func (s Scheme) String() string {
	return string(s)
}

// DisplayName returns the human-readable scheme name used in exports.
func (s Scheme) DisplayName() string {
	switch s {
	case SchemeUUID:
		return "UUID"
	case SchemeNanoID:
		return "NanoID"
	case SchemeHashID:
		return "HashIDs"
	case SchemeSlug:
		return "Slug"
	default:
		return "ID"
	}
}

// SchemeInfo describes a scheme and the defaults a client should start from.
type SchemeInfo struct {
	Scheme        Scheme
	DisplayName   string
	DefaultLength int
	Reversible    bool
}

// Schemes returns the scheme catalog in stable order.
func Schemes() []SchemeInfo {
	return []SchemeInfo{
		{Scheme: SchemeUUID, DisplayName: SchemeUUID.DisplayName(), DefaultLength: 36},
		{Scheme: SchemeNanoID, DisplayName: SchemeNanoID.DisplayName(), DefaultLength: DefaultNanoIDLength},
		{
			Scheme:        SchemeHashID,
			DisplayName:   SchemeHashID.DisplayName(),
			DefaultLength: DefaultHashIDMinLength,
			Reversible:    true,
		},
		{Scheme: SchemeSlug, DisplayName: SchemeSlug.DisplayName(), DefaultLength: DefaultSlugLength},
	}
}
