package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/allisson/idgen/internal/identifier/domain"
)

func TestNewSchemeGenerator(t *testing.T) {
	tests := []struct {
		name         string
		scheme       domain.Scheme
		expectedType any
		expectError  bool
	}{
		{name: "Success_UUID", scheme: domain.SchemeUUID, expectedType: &uuidGenerator{}},
		{name: "Success_NanoID", scheme: domain.SchemeNanoID, expectedType: &nanoidGenerator{}},
		{name: "Success_HashID", scheme: domain.SchemeHashID, expectedType: &hashidGenerator{}},
		{name: "Success_Slug", scheme: domain.SchemeSlug, expectedType: &slugGenerator{}},
		{name: "Error_Unknown", scheme: domain.Scheme("ulid"), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewSchemeGenerator(tt.scheme, zeroSource{})
			if tt.expectError {
				assert.ErrorIs(t, err, domain.ErrInvalidScheme)
				assert.Nil(t, gen)
				return
			}
			assert.NoError(t, err)
			assert.IsType(t, tt.expectedType, gen)
		})
	}
}
