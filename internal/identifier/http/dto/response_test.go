package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	identifierDomain "github.com/allisson/idgen/internal/identifier/domain"
)

func TestMapSchemesToListResponse(t *testing.T) {
	defaults := Defaults{NanoIDLength: 10, HashIDMinLength: 6, SlugLength: 30}

	response := MapSchemesToListResponse(identifierDomain.Schemes(), defaults)

	assert.Len(t, response.Data, 4)
	assert.Equal(t, SchemeResponse{Scheme: "uuid", DisplayName: "UUID", DefaultLength: 36}, response.Data[0])
	assert.Equal(t, 10, response.Data[1].DefaultLength)
	assert.Equal(t, 6, response.Data[2].DefaultLength)
	assert.True(t, response.Data[2].Reversible)
	assert.Equal(t, 30, response.Data[3].DefaultLength)
}

func TestMapBatchToGenerateResponse(t *testing.T) {
	now := time.Now().UTC()
	batch := &identifierDomain.Batch{
		Scheme:      identifierDomain.SchemeHashID,
		GeneratedAt: now,
		IDs:         []string{"dncak97b", "dncak97c"},
	}

	response := MapBatchToGenerateResponse(batch)

	assert.Equal(t, "hashids", response.Scheme)
	assert.Equal(t, now, response.GeneratedAt)
	assert.Equal(t, 2, response.Count)
	assert.Equal(t, batch.IDs, response.IDs)
}

func TestMapEncodingToResponse(t *testing.T) {
	response := MapEncodingToResponse(&identifierDomain.Encoding{ID: "cak9dp", PayloadLength: 2})

	assert.Equal(t, EncodeResponse{ID: "cak9dp", PayloadLength: 2}, response)
}

func TestMapValidationResultToResponse(t *testing.T) {
	response := MapValidationResultToResponse(&identifierDomain.ValidationResult{Reason: "bad"})

	assert.False(t, response.Valid)
	assert.Equal(t, "bad", response.Reason)
}
