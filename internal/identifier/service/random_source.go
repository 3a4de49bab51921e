package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mathrand "math/rand/v2"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/allisson/idgen/internal/errors"
	"github.com/allisson/idgen/internal/identifier/domain"
)

type cryptoSource struct{}

// NewCryptoSource creates a RandomSource backed by the operating system CSPRNG.
func NewCryptoSource() RandomSource {
	return &cryptoSource{}
}

// IntN returns a uniform integer in [0, n) read from crypto/rand.
func (s *cryptoSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("invalid upper bound %d", n)
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to read random value: %w: %w", errors.ErrUnavailable, err)
	}
	return int(v.Int64()), nil
}

// Sample draws length characters from alphabet using the nanoid masking algorithm.
func (s *cryptoSource) Sample(alphabet string, length int) (string, error) {
	id, err := gonanoid.Generate(alphabet, length)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errors.ErrUnavailable, err)
	}
	return id, nil
}

// seededSource is a deterministic source for tests and reproducible runs.
type seededSource struct {
	mu  sync.Mutex
	rng *mathrand.Rand
}

// NewSeededSource creates a deterministic RandomSource. Two sources created with
// the same seed return the same sequence.
func NewSeededSource(seed uint64) RandomSource {
	return &seededSource{rng: mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN returns the next integer in [0, n).
func (s *seededSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("invalid upper bound %d", n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n), nil
}

// sampler is implemented by sources that can draw a whole string at once.
type sampler interface {
	Sample(alphabet string, length int) (string, error)
}

// randomString draws length characters from alphabet.
func randomString(source RandomSource, alphabet domain.Alphabet, length int) (string, error) {
	if s, ok := source.(sampler); ok {
		id, err := s.Sample(alphabet.String(), length)
		if err != nil {
			return "", fmt.Errorf("failed to sample random string: %w", err)
		}
		return id, nil
	}

	buf := make([]byte, length)
	for i := range buf {
		idx, err := source.IntN(alphabet.Len())
		if err != nil {
			return "", err
		}
		buf[i] = alphabet[idx]
	}
	return string(buf), nil
}
