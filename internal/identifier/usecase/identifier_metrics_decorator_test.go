package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	identifierDomain "github.com/allisson/idgen/internal/identifier/domain"
	identifierMocks "github.com/allisson/idgen/internal/identifier/usecase/mocks"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func (m *mockBusinessMetrics) RecordGenerated(ctx context.Context, scheme string, count int) {
	m.Called(ctx, scheme, count)
}

func expectOperation(ctx context.Context, m *mockBusinessMetrics, operation, status string) {
	m.On("RecordOperation", ctx, "identifier", operation, status).Return().Once()
	m.On("RecordDuration", ctx, "identifier", operation, mock.AnythingOfType("time.Duration"), status).
		Return().
		Once()
}

func TestNewIdentifierUseCaseWithMetrics(t *testing.T) {
	mockUseCase := identifierMocks.NewMockIdentifierUseCase(t)
	mockMetrics := &mockBusinessMetrics{}

	decorator := NewIdentifierUseCaseWithMetrics(mockUseCase, mockMetrics)

	assert.NotNil(t, decorator)
	assert.IsType(t, &identifierUseCaseWithMetrics{}, decorator)
}

func TestIdentifierUseCaseWithMetrics_GenerateBatch(t *testing.T) {
	ctx := context.Background()
	cfg := identifierDomain.UUIDConfig{}

	tests := []struct {
		name           string
		batch          *identifierDomain.Batch
		err            error
		expectedStatus string
	}{
		{
			name: "Success_RecordsSuccessMetrics",
			batch: &identifierDomain.Batch{
				Scheme: identifierDomain.SchemeUUID,
				IDs:    []string{"a", "b", "c"},
			},
			expectedStatus: "success",
		},
		{
			name:           "Error_RecordsErrorMetrics",
			err:            identifierDomain.ErrInvalidCount,
			expectedStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUseCase := identifierMocks.NewMockIdentifierUseCase(t)
			mockMetrics := &mockBusinessMetrics{}

			mockUseCase.On("GenerateBatch", ctx, cfg, 3).Return(tt.batch, tt.err).Once()
			expectOperation(ctx, mockMetrics, "generate_batch", tt.expectedStatus)
			if tt.batch != nil {
				mockMetrics.On("RecordGenerated", ctx, "uuid", 3).Return().Once()
			}

			decorator := NewIdentifierUseCaseWithMetrics(mockUseCase, mockMetrics)
			batch, err := decorator.GenerateBatch(ctx, cfg, 3)

			assert.Equal(t, tt.batch, batch)
			assert.Equal(t, tt.err, err)
			mockMetrics.AssertExpectations(t)
		})
	}
}

func TestIdentifierUseCaseWithMetrics_Generate(t *testing.T) {
	ctx := context.Background()
	cfg := identifierDomain.SlugConfig{Length: 12}
	batch := &identifierDomain.Batch{Scheme: identifierDomain.SchemeSlug, IDs: []string{"awesome-post"}}

	mockUseCase := identifierMocks.NewMockIdentifierUseCase(t)
	mockMetrics := &mockBusinessMetrics{}

	mockUseCase.On("Generate", ctx, cfg).Return(batch, nil).Once()
	expectOperation(ctx, mockMetrics, "generate", "success")
	mockMetrics.On("RecordGenerated", ctx, "slug", 1).Return().Once()

	result, err := NewIdentifierUseCaseWithMetrics(mockUseCase, mockMetrics).Generate(ctx, cfg)

	assert.NoError(t, err)
	assert.Equal(t, batch, result)
	mockMetrics.AssertExpectations(t)
}

func TestIdentifierUseCaseWithMetrics_Encode(t *testing.T) {
	ctx := context.Background()
	input := &identifierDomain.EncodeInput{Number: 123, MinLength: 6}
	enc := &identifierDomain.Encoding{ID: "cak9dp", PayloadLength: 2}

	mockUseCase := identifierMocks.NewMockIdentifierUseCase(t)
	mockMetrics := &mockBusinessMetrics{}

	mockUseCase.On("Encode", ctx, input).Return(enc, nil).Once()
	expectOperation(ctx, mockMetrics, "encode", "success")

	result, err := NewIdentifierUseCaseWithMetrics(mockUseCase, mockMetrics).Encode(ctx, input)

	assert.NoError(t, err)
	assert.Equal(t, enc, result)
	mockMetrics.AssertExpectations(t)
}

func TestIdentifierUseCaseWithMetrics_Decode(t *testing.T) {
	ctx := context.Background()
	input := &identifierDomain.DecodeInput{ID: "ab!"}

	mockUseCase := identifierMocks.NewMockIdentifierUseCase(t)
	mockMetrics := &mockBusinessMetrics{}

	decodeErr := errors.New("decode failure")
	mockUseCase.On("Decode", ctx, input).Return(uint64(0), decodeErr).Once()
	expectOperation(ctx, mockMetrics, "decode", "error")

	value, err := NewIdentifierUseCaseWithMetrics(mockUseCase, mockMetrics).Decode(ctx, input)

	assert.Equal(t, uint64(0), value)
	assert.Equal(t, decodeErr, err)
	mockMetrics.AssertExpectations(t)
}

func TestIdentifierUseCaseWithMetrics_Validate(t *testing.T) {
	ctx := context.Background()
	input := &identifierDomain.ValidateInput{Scheme: identifierDomain.SchemeUUID, ID: "x"}
	result := &identifierDomain.ValidationResult{Valid: false, Reason: "token must be 36 characters long"}

	mockUseCase := identifierMocks.NewMockIdentifierUseCase(t)
	mockMetrics := &mockBusinessMetrics{}

	mockUseCase.On("Validate", ctx, input).Return(result, nil).Once()
	expectOperation(ctx, mockMetrics, "validate", "success")

	got, err := NewIdentifierUseCaseWithMetrics(mockUseCase, mockMetrics).Validate(ctx, input)

	assert.NoError(t, err)
	assert.Equal(t, result, got)
	mockMetrics.AssertExpectations(t)
}
