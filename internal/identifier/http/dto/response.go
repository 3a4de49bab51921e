package dto

import (
	"time"

	identifierDomain "github.com/allisson/idgen/internal/identifier/domain"
)

// SchemeResponse describes a supported scheme.
type SchemeResponse struct {
	Scheme        string `json:"scheme"`
	DisplayName   string `json:"display_name"`
	DefaultLength int    `json:"default_length"`
	Reversible    bool   `json:"reversible"`
}

// ListSchemesResponse represents the scheme catalog.
type ListSchemesResponse struct {
	Data []SchemeResponse `json:"data"`
}

// MapSchemesToListResponse converts the catalog to an API response, applying
// the configured default lengths.
func MapSchemesToListResponse(schemes []identifierDomain.SchemeInfo, defaults Defaults) ListSchemesResponse {
	data := make([]SchemeResponse, 0, len(schemes))
	for _, s := range schemes {
		length := s.DefaultLength
		switch s.Scheme {
		case identifierDomain.SchemeNanoID:
			length = defaults.NanoIDLength
		case identifierDomain.SchemeHashID:
			length = defaults.HashIDMinLength
		case identifierDomain.SchemeSlug:
			length = defaults.SlugLength
		}
		data = append(data, SchemeResponse{
			Scheme:        s.Scheme.String(),
			DisplayName:   s.DisplayName,
			DefaultLength: length,
			Reversible:    s.Reversible,
		})
	}
	return ListSchemesResponse{Data: data}
}

// GenerateResponse represents a generated batch.
type GenerateResponse struct {
	Scheme      string    `json:"scheme"`
	GeneratedAt time.Time `json:"generated_at"`
	Count       int       `json:"count"`
	IDs         []string  `json:"ids"`
}

// MapBatchToGenerateResponse converts a domain batch to an API response.
func MapBatchToGenerateResponse(batch *identifierDomain.Batch) GenerateResponse {
	return GenerateResponse{
		Scheme:      batch.Scheme.String(),
		GeneratedAt: batch.GeneratedAt,
		Count:       batch.Count(),
		IDs:         batch.IDs,
	}
}

// EncodeResponse represents a reversible encoding.
type EncodeResponse struct {
	ID            string `json:"id"`
	PayloadLength int    `json:"payload_length"`
	Truncated     bool   `json:"truncated"`
}

// MapEncodingToResponse converts a domain encoding to an API response.
func MapEncodingToResponse(enc *identifierDomain.Encoding) EncodeResponse {
	return EncodeResponse{
		ID:            enc.ID,
		PayloadLength: enc.PayloadLength,
		Truncated:     enc.Truncated,
	}
}

// DecodeResponse represents a decoded number.
type DecodeResponse struct {
	Value uint64 `json:"value"`
}

// ValidateResponse represents the outcome of an identifier check.
type ValidateResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// MapValidationResultToResponse converts a domain validation result to an API response.
func MapValidationResultToResponse(result *identifierDomain.ValidationResult) ValidateResponse {
	return ValidateResponse{
		Valid:  result.Valid,
		Reason: result.Reason,
	}
}
