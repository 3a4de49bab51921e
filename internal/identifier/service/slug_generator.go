package service

import (
	"fmt"
	"strings"

	"github.com/allisson/idgen/internal/errors"
	"github.com/allisson/idgen/internal/identifier/domain"
)

type slugGenerator struct {
	source RandomSource
}

// NewSlugGenerator creates a generator of word slugs with an exact length.
func NewSlugGenerator(source RandomSource) SchemeGenerator {
	return &slugGenerator{source: source}
}

// Generate starts with a random word and keeps appending a separator followed by
// either another word or padding characters until the target length is reached.
// A word is only attempted when at least two characters remain after the separator.
// The result is cut to the target length, so a long first word may be truncated.
func (g *slugGenerator) Generate(cfg domain.SchemeConfig, index int) (string, error) {
	c, ok := cfg.(domain.SlugConfig)
	if !ok {
		return "", domain.ErrInvalidScheme
	}
	if c.Length < 1 {
		return "", domain.ErrInvalidLength
	}
	words := c.WordList()
	if len(words) == 0 {
		return "", domain.ErrInvalidWordList
	}
	separator := c.EffectiveSeparator()
	if separator != '-' && separator != '_' {
		return "", domain.ErrInvalidSeparator
	}
	padding := resolveWithFallback(c.Charset, domain.SymbolSetNarrow, domain.LowercaseLetters)

	first, err := g.word(words, c.Charset)
	if err != nil {
		return "", err
	}
	buf := make([]byte, 0, c.Length+len(first))
	buf = append(buf, first...)

	for len(buf) < c.Length {
		remaining := c.Length - len(buf)
		if remaining == 1 {
			ch, err := g.pad(padding)
			if err != nil {
				return "", err
			}
			buf = append(buf, ch)
			break
		}

		buf = append(buf, separator)
		if remaining < 3 {
			ch, err := g.pad(padding)
			if err != nil {
				return "", err
			}
			buf = append(buf, ch)
			continue
		}

		w, err := g.word(words, c.Charset)
		if err != nil {
			return "", err
		}
		if len(buf)+len(w) <= c.Length {
			buf = append(buf, w...)
			continue
		}
		for len(buf) < c.Length {
			ch, err := g.pad(padding)
			if err != nil {
				return "", err
			}
			buf = append(buf, ch)
		}
	}

	if len(buf) > c.Length {
		buf = buf[:c.Length]
	}
	return string(buf), nil
}

// Validate checks the length and that only letters, digits, '-' and '_' appear.
func (g *slugGenerator) Validate(in domain.ValidateInput) error {
	if len(in.ID) == 0 {
		return errors.New("identifier cannot be empty")
	}
	if in.Length > 0 && len(in.ID) != in.Length {
		return fmt.Errorf("identifier must be %d characters long", in.Length)
	}
	for i := 0; i < len(in.ID); i++ {
		if !isSlugChar(in.ID[i]) {
			return fmt.Errorf("character %q is not allowed in a slug", in.ID[i])
		}
	}
	return nil
}

// word picks a random word. Uppercase wins when both cases are enabled.
func (g *slugGenerator) word(words []string, cs domain.Charset) (string, error) {
	idx, err := g.source.IntN(len(words))
	if err != nil {
		return "", err
	}
	w := words[idx]
	switch {
	case cs.Uppercase:
		return strings.ToUpper(w), nil
	case cs.Lowercase:
		return strings.ToLower(w), nil
	default:
		return w, nil
	}
}

func (g *slugGenerator) pad(alphabet domain.Alphabet) (byte, error) {
	idx, err := g.source.IntN(alphabet.Len())
	if err != nil {
		return 0, err
	}
	return alphabet[idx], nil
}

func isSlugChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' || c == '_'
}
