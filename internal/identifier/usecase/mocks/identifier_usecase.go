// Package mocks provides mock implementations for testing identifier consumers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	identifierDomain "github.com/allisson/idgen/internal/identifier/domain"
)

// MockIdentifierUseCase is a mock implementation of IdentifierUseCase for testing.
type MockIdentifierUseCase struct {
	mock.Mock
}

// NewMockIdentifierUseCase creates a MockIdentifierUseCase whose expectations are
// asserted when the test finishes.
func NewMockIdentifierUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIdentifierUseCase {
	m := &MockIdentifierUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Generate mocks the Generate method of IdentifierUseCase.
func (m *MockIdentifierUseCase) Generate(
	ctx context.Context,
	cfg identifierDomain.SchemeConfig,
) (*identifierDomain.Batch, error) {
	args := m.Called(ctx, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identifierDomain.Batch), args.Error(1)
}

// GenerateBatch mocks the GenerateBatch method of IdentifierUseCase.
func (m *MockIdentifierUseCase) GenerateBatch(
	ctx context.Context,
	cfg identifierDomain.SchemeConfig,
	count int,
) (*identifierDomain.Batch, error) {
	args := m.Called(ctx, cfg, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identifierDomain.Batch), args.Error(1)
}

// Encode mocks the Encode method of IdentifierUseCase.
func (m *MockIdentifierUseCase) Encode(
	ctx context.Context,
	input *identifierDomain.EncodeInput,
) (*identifierDomain.Encoding, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identifierDomain.Encoding), args.Error(1)
}

// Decode mocks the Decode method of IdentifierUseCase.
func (m *MockIdentifierUseCase) Decode(ctx context.Context, input *identifierDomain.DecodeInput) (uint64, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(uint64), args.Error(1)
}

// Validate mocks the Validate method of IdentifierUseCase.
func (m *MockIdentifierUseCase) Validate(
	ctx context.Context,
	input *identifierDomain.ValidateInput,
) (*identifierDomain.ValidationResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identifierDomain.ValidationResult), args.Error(1)
}
