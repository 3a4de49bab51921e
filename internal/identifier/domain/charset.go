package domain

import "strings"

// Charset selects which character classes contribute to an alphabet.
type Charset struct {
	Uppercase bool
	Lowercase bool
	Digits    bool
	Symbols   bool
}

// IsEmpty reports whether no character class is enabled.
func (c Charset) IsEmpty() bool {
	return !c.Uppercase && !c.Lowercase && !c.Digits && !c.Symbols
}

// SymbolSet chooses which symbol range the Symbols class expands to.
type SymbolSet int

const (
	// SymbolSetBroad expands to BroadSymbols.
	SymbolSetBroad SymbolSet = iota
	// SymbolSetNarrow expands to NarrowSymbols.
	SymbolSetNarrow
)

// Characters returns the symbol range of the set.
func (s SymbolSet) Characters() string {
	if s == SymbolSetNarrow {
		return NarrowSymbols
	}
	return BroadSymbols
}

// Alphabet is an ordered sequence of distinct single-byte characters.
type Alphabet string

// Len returns the number of characters in the alphabet.
func (a Alphabet) Len() int {
	return len(a)
}

// IndexOf returns the position of c in the alphabet or -1 if it is absent.
func (a Alphabet) IndexOf(c byte) int {
	return strings.IndexByte(string(a), c)
}

// Contains reports whether every character of s belongs to the alphabet.
func (a Alphabet) Contains(s string) bool {
	for i := 0; i < len(s); i++ {
		if a.IndexOf(s[i]) < 0 {
			return false
		}
	}
	return true
}

// String returns the alphabet characters.
func (a Alphabet) String() string {
	return string(a)
}

// Validate checks that the alphabet is non-empty, ASCII and free of duplicates.
func (a Alphabet) Validate() error {
	if len(a) == 0 {
		return ErrInvalidAlphabet
	}
	var seen [128]bool
	for i := 0; i < len(a); i++ {
		c := a[i]
		if c >= 128 || seen[c] {
			return ErrInvalidAlphabet
		}
		seen[c] = true
	}
	return nil
}
