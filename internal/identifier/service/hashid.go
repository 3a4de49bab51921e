package service

import (
	"math"
	"math/bits"

	"github.com/allisson/idgen/internal/errors"
	"github.com/allisson/idgen/internal/identifier/domain"
)

// Encode maps n to a string of at least minLength characters over alphabet.
// The payload is the positional base-len(alphabet) representation of n, most
// significant digit first, left padded with characters derived from salt.
// Numbers whose payload is longer than minLength fail with domain.ErrEncodingOverflow.
func Encode(n uint64, alphabet domain.Alphabet, minLength int, salt string) (string, error) {
	enc, err := EncodeDetailed(n, alphabet, minLength, salt, false)
	if err != nil {
		return "", err
	}
	return enc.ID, nil
}

// EncodeDetailed is Encode with the payload length reported. When allowTruncation
// is set and the payload is longer than minLength, only its trailing minLength
// characters are kept and the result is marked as truncated.
func EncodeDetailed(n uint64, alphabet domain.Alphabet, minLength int, salt string, allowTruncation bool) (domain.Encoding, error) {
	if err := validateEncoding(alphabet, salt); err != nil {
		return domain.Encoding{}, err
	}
	if minLength < 1 {
		return domain.Encoding{}, domain.ErrInvalidLength
	}

	payload := positional(n, alphabet)
	if len(payload) > minLength {
		if !allowTruncation {
			return domain.Encoding{}, errors.Wrapf(
				domain.ErrEncodingOverflow,
				"%d needs %d characters but minimum length is %d", n, len(payload), minLength,
			)
		}
		return domain.Encoding{
			ID:            string(payload[len(payload)-minLength:]),
			PayloadLength: minLength,
			Truncated:     true,
		}, nil
	}

	buf := make([]byte, minLength)
	copy(buf[minLength-len(payload):], payload)
	for length := len(payload); length < minLength; length++ {
		buf[minLength-1-length] = paddingChar(alphabet, salt, length)
	}

	return domain.Encoding{ID: string(buf), PayloadLength: len(payload)}, nil
}

// Decode interprets s as a positional base-len(alphabet) number. It is the exact
// inverse of an unpadded encoding.
func Decode(s string, alphabet domain.Alphabet) (uint64, error) {
	if err := alphabet.Validate(); err != nil {
		return 0, err
	}
	if alphabet.Len() < 2 {
		return 0, domain.ErrInvalidAlphabet
	}
	if s == "" {
		return 0, errors.Wrap(domain.ErrDecode, "empty identifier")
	}

	base := uint64(alphabet.Len())
	var n uint64
	for i := 0; i < len(s); i++ {
		d := alphabet.IndexOf(s[i])
		if d < 0 {
			return 0, errors.Wrapf(domain.ErrDecode, "character %q at position %d is not in the alphabet", s[i], i)
		}
		hi, lo := bits.Mul64(n, base)
		sum, carry := bits.Add64(lo, uint64(d), 0)
		if hi != 0 || carry != 0 {
			return 0, errors.Wrap(domain.ErrDecode, "value overflows uint64")
		}
		n = sum
	}
	return n, nil
}

// DecodePadded verifies that every character before the trailing payloadLength
// characters is the salted padding Encode would have written, then decodes the payload.
func DecodePadded(s string, alphabet domain.Alphabet, salt string, payloadLength int) (uint64, error) {
	if err := validateEncoding(alphabet, salt); err != nil {
		return 0, err
	}
	if payloadLength < 1 || payloadLength > len(s) {
		return 0, errors.Wrapf(domain.ErrDecode, "payload length %d out of range for %q", payloadLength, s)
	}

	for length := payloadLength; length < len(s); length++ {
		pos := len(s) - 1 - length
		if s[pos] != paddingChar(alphabet, salt, length) {
			return 0, errors.Wrapf(domain.ErrDecode, "character at position %d is not valid padding", pos)
		}
	}
	return Decode(s[len(s)-payloadLength:], alphabet)
}

// PayloadLength returns the number of characters needed to write n in base len(alphabet).
func PayloadLength(n uint64, alphabet domain.Alphabet) int {
	return len(positional(n, alphabet))
}

// positional writes n most significant digit first. Zero is the first alphabet character.
func positional(n uint64, alphabet domain.Alphabet) []byte {
	base := uint64(alphabet.Len())
	if n == 0 {
		return []byte{alphabet[0]}
	}

	var digits [64]byte
	i := len(digits)
	for n > 0 {
		i--
		digits[i] = alphabet[n%base]
		n /= base
	}
	return append([]byte(nil), digits[i:]...)
}

// paddingChar is the character prepended when the string currently has length characters.
func paddingChar(alphabet domain.Alphabet, salt string, length int) byte {
	return alphabet[(length+int(salt[length%len(salt)]))%alphabet.Len()]
}

func validateEncoding(alphabet domain.Alphabet, salt string) error {
	if err := alphabet.Validate(); err != nil {
		return err
	}
	if alphabet.Len() < 2 {
		return errors.Wrap(domain.ErrInvalidAlphabet, "alphabet needs at least 2 characters")
	}
	if salt == "" {
		return errors.Wrap(domain.ErrInvalidConfiguration, "salt cannot be empty")
	}
	return nil
}

// startIndex returns start+index or an overflow error.
func startIndex(start uint64, index int) (uint64, error) {
	if index < 0 || start > math.MaxUint64-uint64(index) {
		return 0, errors.Wrapf(domain.ErrEncodingOverflow, "start %d plus index %d overflows", start, index)
	}
	return start + uint64(index), nil
}
