package domain

// SchemeConfig is the typed configuration of exactly one scheme. The set of
// implementations is closed: UUIDConfig, NanoIDConfig, HashIDConfig and SlugConfig.
type SchemeConfig interface {
	// Scheme returns the scheme the configuration belongs to.
	Scheme() Scheme
	// Validate checks the configuration before any identifier is produced.
	Validate() error

	isSchemeConfig()
}

// UUIDConfig configures the random token scheme. Character classes and lengths do not
// apply to it.
type UUIDConfig struct {
	// Uppercase renders the hex digits a-f as A-F after generation.
	Uppercase bool
}

// Scheme returns SchemeUUID.
func (UUIDConfig) Scheme() Scheme { return SchemeUUID }

// Validate always succeeds.
func (UUIDConfig) Validate() error { return nil }

func (UUIDConfig) isSchemeConfig() {}

// NanoIDConfig configures the random string scheme.
type NanoIDConfig struct {
	Charset Charset
	// Length is the exact output length.
	Length int
}

// Scheme returns SchemeNanoID.
func (NanoIDConfig) Scheme() Scheme { return SchemeNanoID }

// Validate checks the output length.
func (c NanoIDConfig) Validate() error {
	return validateLength(c.Length)
}

func (NanoIDConfig) isSchemeConfig() {}

// HashIDConfig configures the reversible encoding scheme.
type HashIDConfig struct {
	Charset Charset
	// MinLength is the padded output length.
	MinLength int
	// Start is the number encoded by a single generation; a batch encodes Start+i.
	Start uint64
	// AllowTruncation keeps only the trailing MinLength characters when the natural
	// encoding is longer, which makes the result lossy. When false such numbers fail
	// with ErrEncodingOverflow.
	AllowTruncation bool
}

// Scheme returns SchemeHashID.
func (HashIDConfig) Scheme() Scheme { return SchemeHashID }

// Validate checks the minimum length.
func (c HashIDConfig) Validate() error {
	return validateLength(c.MinLength)
}

func (HashIDConfig) isSchemeConfig() {}

// SlugConfig configures the slug scheme.
type SlugConfig struct {
	Charset Charset
	// Length is the exact output length.
	Length int
	// Words overrides DefaultWords when non-empty.
	Words []string
	// Separator is '-' or '_'. Zero selects '_' when symbols are enabled, '-' otherwise.
	Separator rune
}

// Scheme returns SchemeSlug.
func (SlugConfig) Scheme() Scheme { return SchemeSlug }

// Validate checks the target length, the separator and the word list.
func (c SlugConfig) Validate() error {
	if err := validateLength(c.Length); err != nil {
		return err
	}
	switch c.Separator {
	case 0, '-', '_':
	default:
		return ErrInvalidSeparator
	}
	for _, w := range c.Words {
		if w == "" || !isASCII(w) {
			return ErrInvalidWordList
		}
	}
	return nil
}

// WordList returns the configured words or DefaultWords.
func (c SlugConfig) WordList() []string {
	if len(c.Words) > 0 {
		return c.Words
	}
	return DefaultWords
}

// EffectiveSeparator resolves the zero separator.
func (c SlugConfig) EffectiveSeparator() byte {
	if c.Separator != 0 {
		return byte(c.Separator)
	}
	if c.Charset.Symbols {
		return '_'
	}
	return '-'
}

func (SlugConfig) isSchemeConfig() {}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 128 {
			return false
		}
	}
	return true
}

func validateLength(length int) error {
	if length < 1 || length > MaxLength {
		return ErrInvalidLength
	}
	return nil
}
