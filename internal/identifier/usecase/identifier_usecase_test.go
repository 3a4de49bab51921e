package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/idgen/internal/errors"
	identifierDomain "github.com/allisson/idgen/internal/identifier/domain"
	identifierService "github.com/allisson/idgen/internal/identifier/service"
)

var fixedNow = time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("BRT", -3*60*60))

func newTestUseCase(generator IdentifierGenerator) *identifierUseCase {
	uc := NewIdentifierUseCase(generator).(*identifierUseCase)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

// failingGenerator returns err from every operation.
type failingGenerator struct {
	err error
}

func (f *failingGenerator) GenerateBatch(identifierDomain.SchemeConfig, int) ([]string, error) {
	return nil, f.err
}

func (f *failingGenerator) Encode(identifierDomain.EncodeInput) (identifierDomain.Encoding, error) {
	return identifierDomain.Encoding{}, f.err
}

func (f *failingGenerator) Decode(identifierDomain.DecodeInput) (uint64, error) {
	return 0, f.err
}

func (f *failingGenerator) Validate(identifierDomain.ValidateInput) (identifierDomain.ValidationResult, error) {
	return identifierDomain.ValidationResult{}, f.err
}

func TestIdentifierUseCase_GenerateBatch(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		cfg         identifierDomain.SchemeConfig
		count       int
		expectedErr error
		expectedIDs []string
	}{
		{
			name:        "Success_HashIDSequence",
			cfg:         identifierDomain.HashIDConfig{MinLength: 8, Start: 1},
			count:       3,
			expectedIDs: []string{"dncak97b", "dncak97c", "dncak97d"},
		},
		{
			name:  "Success_UUID",
			cfg:   identifierDomain.UUIDConfig{},
			count: 5,
		},
		{
			name:        "Error_NilConfig",
			cfg:         nil,
			count:       1,
			expectedErr: identifierDomain.ErrInvalidScheme,
		},
		{
			name:        "Error_InvalidCount",
			cfg:         identifierDomain.UUIDConfig{},
			count:       0,
			expectedErr: identifierDomain.ErrInvalidCount,
		},
		{
			name:        "Error_InvalidLength",
			cfg:         identifierDomain.NanoIDConfig{Length: 0},
			count:       1,
			expectedErr: identifierDomain.ErrInvalidLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(identifierService.NewGenerator(identifierService.NewSeededSource(1)))

			batch, err := uc.GenerateBatch(ctx, tt.cfg, tt.count)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
				assert.Nil(t, batch)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.cfg.Scheme(), batch.Scheme)
			assert.Equal(t, fixedNow.UTC(), batch.GeneratedAt)
			assert.Equal(t, time.UTC, batch.GeneratedAt.Location())
			assert.Equal(t, tt.count, batch.Count())
			if tt.expectedIDs != nil {
				assert.Equal(t, tt.expectedIDs, batch.IDs)
			}
		})
	}
}

func TestIdentifierUseCase_Generate(t *testing.T) {
	uc := newTestUseCase(identifierService.NewGenerator(nil))

	batch, err := uc.Generate(context.Background(), identifierDomain.NanoIDConfig{Length: 21})
	require.NoError(t, err)
	require.Equal(t, 1, batch.Count())
	assert.Len(t, batch.IDs[0], 21)
}

func TestIdentifierUseCase_GenerateBatch_CanceledContext(t *testing.T) {
	uc := newTestUseCase(identifierService.NewGenerator(nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batch, err := uc.GenerateBatch(ctx, identifierDomain.UUIDConfig{}, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, batch)
}

func TestIdentifierUseCase_EncodeDecode(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(identifierService.NewGenerator(nil))

	t.Run("Success_RoundTrip", func(t *testing.T) {
		enc, err := uc.Encode(ctx, &identifierDomain.EncodeInput{Number: 123, MinLength: 6})
		require.NoError(t, err)
		assert.Equal(t, "cak9dp", enc.ID)

		value, err := uc.Decode(ctx, &identifierDomain.DecodeInput{ID: enc.ID, PayloadLength: enc.PayloadLength})
		require.NoError(t, err)
		assert.Equal(t, uint64(123), value)
	})

	t.Run("Error_NilInputs", func(t *testing.T) {
		_, err := uc.Encode(ctx, nil)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

		_, err = uc.Decode(ctx, nil)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error_Decode", func(t *testing.T) {
		_, err := uc.Decode(ctx, &identifierDomain.DecodeInput{ID: "ab!"})
		assert.ErrorIs(t, err, identifierDomain.ErrDecode)
	})
}

func TestIdentifierUseCase_Validate(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(identifierService.NewGenerator(nil))

	result, err := uc.Validate(ctx, &identifierDomain.ValidateInput{
		Scheme: identifierDomain.SchemeUUID,
		ID:     "550e8400-e29b-41d4-a716-446655440000",
	})
	require.NoError(t, err)
	assert.True(t, result.Valid)

	result, err = uc.Validate(ctx, &identifierDomain.ValidateInput{Scheme: identifierDomain.SchemeSlug, ID: "a b"})
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Reason)

	_, err = uc.Validate(ctx, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestIdentifierUseCase_GeneratorErrors(t *testing.T) {
	ctx := context.Background()
	genErr := errors.New("generator failure")
	uc := newTestUseCase(&failingGenerator{err: genErr})

	_, err := uc.GenerateBatch(ctx, identifierDomain.UUIDConfig{}, 1)
	assert.ErrorIs(t, err, genErr)

	_, err = uc.Encode(ctx, &identifierDomain.EncodeInput{Number: 1, MinLength: 1})
	assert.ErrorIs(t, err, genErr)

	_, err = uc.Decode(ctx, &identifierDomain.DecodeInput{ID: "a"})
	assert.ErrorIs(t, err, genErr)

	_, err = uc.Validate(ctx, &identifierDomain.ValidateInput{Scheme: identifierDomain.SchemeUUID})
	assert.ErrorIs(t, err, genErr)
}
