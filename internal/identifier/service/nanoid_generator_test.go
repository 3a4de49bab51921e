package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/idgen/internal/identifier/domain"
)

func TestNanoIDGenerator_Generate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         domain.SchemeConfig
		alphabet    domain.Alphabet
		expectedLen int
		expectedErr error
	}{
		{
			name:        "Success_Lowercase21",
			cfg:         domain.NanoIDConfig{Charset: domain.Charset{Lowercase: true}, Length: 21},
			alphabet:    domain.LowercaseLetters,
			expectedLen: 21,
		},
		{
			name:        "Success_DefaultAlphabet",
			cfg:         domain.NanoIDConfig{Length: 64},
			alphabet:    domain.DefaultAlphabet,
			expectedLen: 64,
		},
		{
			name:        "Success_BroadSymbols",
			cfg:         domain.NanoIDConfig{Charset: domain.Charset{Symbols: true}, Length: 10},
			alphabet:    domain.BroadSymbols,
			expectedLen: 10,
		},
		{
			name:        "Error_ZeroLength",
			cfg:         domain.NanoIDConfig{Length: 0},
			expectedErr: domain.ErrInvalidLength,
		},
		{
			name:        "Error_WrongConfig",
			cfg:         domain.UUIDConfig{},
			expectedErr: domain.ErrInvalidScheme,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, source := range []RandomSource{NewCryptoSource(), NewSeededSource(7)} {
				gen := NewNanoIDGenerator(source)

				id, err := gen.Generate(tt.cfg, 0)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
					continue
				}

				require.NoError(t, err)
				assert.Len(t, id, tt.expectedLen)
				assert.True(t, tt.alphabet.Contains(id), "unexpected character in %q", id)
			}
		})
	}
}

func TestNanoIDGenerator_Validate(t *testing.T) {
	gen := NewNanoIDGenerator(zeroSource{})
	lower := domain.Charset{Lowercase: true}

	assert.NoError(t, gen.Validate(domain.ValidateInput{ID: "abc", Charset: lower}))
	assert.NoError(t, gen.Validate(domain.ValidateInput{ID: "abc", Charset: lower, Length: 3}))
	assert.Error(t, gen.Validate(domain.ValidateInput{ID: "abc", Charset: lower, Length: 4}))
	assert.Error(t, gen.Validate(domain.ValidateInput{ID: "ab1", Charset: lower}))
	assert.Error(t, gen.Validate(domain.ValidateInput{ID: ""}))
}
