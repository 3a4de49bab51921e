package domain

import (
	"github.com/allisson/idgen/internal/errors"
)

var (
	// ErrInvalidConfiguration indicates a generation request that cannot be satisfied as configured.
	ErrInvalidConfiguration = errors.Wrap(errors.ErrInvalidInput, "invalid configuration")

	// ErrInvalidScheme indicates an unknown scheme name or configuration type.
	ErrInvalidScheme = errors.Wrap(ErrInvalidConfiguration, "invalid scheme")

	// ErrInvalidLength indicates a length or minimum length below 1 or above MaxLength.
	ErrInvalidLength = errors.Wrap(ErrInvalidConfiguration, "invalid length")

	// ErrInvalidCount indicates a batch count outside the allowed bound.
	ErrInvalidCount = errors.Wrap(ErrInvalidConfiguration, "invalid count")

	// ErrInvalidAlphabet indicates an alphabet that is empty, too small or has duplicates.
	ErrInvalidAlphabet = errors.Wrap(ErrInvalidConfiguration, "invalid alphabet")

	// ErrInvalidSeparator indicates a slug separator other than '-' or '_'.
	ErrInvalidSeparator = errors.Wrap(ErrInvalidConfiguration, "invalid separator")

	// ErrInvalidWordList indicates an empty slug word list or an empty word.
	ErrInvalidWordList = errors.Wrap(ErrInvalidConfiguration, "invalid word list")

	// ErrEncodingOverflow indicates a number whose encoding is longer than the minimum length
	// while truncation is not allowed.
	ErrEncodingOverflow = errors.Wrap(ErrInvalidConfiguration, "encoded value exceeds minimum length")

	// ErrDecode indicates an encoded identifier that cannot be mapped back to a number.
	ErrDecode = errors.Wrap(errors.ErrInvalidInput, "decode error")
)
