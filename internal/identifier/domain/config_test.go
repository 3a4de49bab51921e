package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemeConfig_Scheme(t *testing.T) {
	configs := map[Scheme]SchemeConfig{
		SchemeUUID:   UUIDConfig{},
		SchemeNanoID: NanoIDConfig{Length: 21},
		SchemeHashID: HashIDConfig{MinLength: 8},
		SchemeSlug:   SlugConfig{Length: 12},
	}

	for scheme, cfg := range configs {
		t.Run(scheme.String(), func(t *testing.T) {
			assert.Equal(t, scheme, cfg.Scheme())
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestSchemeConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         SchemeConfig
		expectedErr error
	}{
		{name: "NanoID_ZeroLength", cfg: NanoIDConfig{Length: 0}, expectedErr: ErrInvalidLength},
		{name: "NanoID_NegativeLength", cfg: NanoIDConfig{Length: -3}, expectedErr: ErrInvalidLength},
		{name: "NanoID_TooLong", cfg: NanoIDConfig{Length: MaxLength + 1}, expectedErr: ErrInvalidLength},
		{name: "HashID_ZeroMinLength", cfg: HashIDConfig{}, expectedErr: ErrInvalidLength},
		{name: "Slug_ZeroLength", cfg: SlugConfig{}, expectedErr: ErrInvalidLength},
		{name: "Slug_BadSeparator", cfg: SlugConfig{Length: 5, Separator: '.'}, expectedErr: ErrInvalidSeparator},
		{
			name:        "Slug_EmptyWord",
			cfg:         SlugConfig{Length: 5, Words: []string{"ok", ""}},
			expectedErr: ErrInvalidWordList,
		},
		{
			name:        "Slug_NonASCIIWord",
			cfg:         SlugConfig{Length: 5, Words: []string{"café"}},
			expectedErr: ErrInvalidWordList,
		},
		{name: "Slug_Underscore", cfg: SlugConfig{Length: 5, Separator: '_'}},
		{name: "NanoID_MaxLength", cfg: NanoIDConfig{Length: MaxLength}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSlugConfig_EffectiveSeparator(t *testing.T) {
	assert.Equal(t, byte('-'), SlugConfig{}.EffectiveSeparator())
	assert.Equal(t, byte('_'), SlugConfig{Charset: Charset{Symbols: true}}.EffectiveSeparator())
	assert.Equal(t, byte('-'), SlugConfig{Charset: Charset{Symbols: true}, Separator: '-'}.EffectiveSeparator())
	assert.Equal(t, byte('_'), SlugConfig{Separator: '_'}.EffectiveSeparator())
}

func TestSlugConfig_WordList(t *testing.T) {
	assert.Equal(t, DefaultWords, SlugConfig{}.WordList())
	assert.Equal(t, []string{"alpha"}, SlugConfig{Words: []string{"alpha"}}.WordList())
}

func TestAlphabet(t *testing.T) {
	a := Alphabet("abc")

	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 1, a.IndexOf('b'))
	assert.Equal(t, -1, a.IndexOf('z'))
	assert.True(t, a.Contains("cab"))
	assert.True(t, a.Contains(""))
	assert.False(t, a.Contains("abz"))

	assert.NoError(t, a.Validate())
	assert.ErrorIs(t, Alphabet("").Validate(), ErrInvalidAlphabet)
	assert.ErrorIs(t, Alphabet("aba").Validate(), ErrInvalidAlphabet)
	assert.ErrorIs(t, Alphabet("aé").Validate(), ErrInvalidAlphabet)
}

func TestCharset_IsEmpty(t *testing.T) {
	assert.True(t, Charset{}.IsEmpty())
	assert.False(t, Charset{Symbols: true}.IsEmpty())
	assert.Equal(t, NarrowSymbols, SymbolSetNarrow.Characters())
	assert.Equal(t, BroadSymbols, SymbolSetBroad.Characters())
}

func TestBatch_Count(t *testing.T) {
	b := &Batch{Scheme: SchemeUUID, IDs: []string{"a", "b"}}
	assert.Equal(t, 2, b.Count())
}
