package service

import (
	"strings"

	"github.com/allisson/idgen/internal/identifier/domain"
)

// ResolveAlphabet builds the alphabet for the enabled character classes in the
// order uppercase, lowercase, digits, symbols. An empty charset falls back to
// domain.DefaultAlphabet.
func ResolveAlphabet(cs domain.Charset, set domain.SymbolSet) domain.Alphabet {
	return resolveWithFallback(cs, set, domain.DefaultAlphabet)
}

func resolveWithFallback(cs domain.Charset, set domain.SymbolSet, fallback string) domain.Alphabet {
	if cs.IsEmpty() {
		return domain.Alphabet(fallback)
	}

	var b strings.Builder
	if cs.Uppercase {
		b.WriteString(domain.UppercaseLetters)
	}
	if cs.Lowercase {
		b.WriteString(domain.LowercaseLetters)
	}
	if cs.Digits {
		b.WriteString(domain.Digits)
	}
	if cs.Symbols {
		b.WriteString(set.Characters())
	}
	return domain.Alphabet(b.String())
}
