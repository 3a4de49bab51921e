package domain

import "time"

// Batch is an ordered sequence of identifiers produced by one generation call.
// Order matches generation order and duplicates are allowed.
type Batch struct {
	Scheme      Scheme
	GeneratedAt time.Time
	IDs         []string
}

// Count returns the number of identifiers in the batch.
func (b *Batch) Count() int {
	return len(b.IDs)
}

// DecodeInput holds the parameters of a reversible-encoding decode.
type DecodeInput struct {
	ID      string
	Charset Charset
	// PayloadLength is the unpadded length reported at encoding time. Zero decodes
	// the whole identifier positionally, which is only correct when no padding was added.
	PayloadLength int
}

// EncodeInput holds the parameters of a single reversible encoding.
type EncodeInput struct {
	Number          uint64
	Charset         Charset
	MinLength       int
	AllowTruncation bool
}

// Encoding is a reversible encoding together with the length of its numeric payload.
// The leading ID[:len(ID)-PayloadLength] characters are salted padding.
type Encoding struct {
	ID            string
	PayloadLength int
	// Truncated reports that leading payload digits were dropped and the value is lost.
	Truncated bool
}

// ValidateInput holds the parameters of an identifier validation.
type ValidateInput struct {
	Scheme  Scheme
	ID      string
	Charset Charset
	// Length is the expected length; zero skips the length check.
	Length int
}

// ValidationResult reports whether an identifier matches its scheme contract.
type ValidationResult struct {
	Valid  bool
	Reason string
}
