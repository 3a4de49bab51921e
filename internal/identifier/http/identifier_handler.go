// Package http provides HTTP handlers for identifier generation, export and decoding.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/idgen/internal/httputil"
	identifierDomain "github.com/allisson/idgen/internal/identifier/domain"
	"github.com/allisson/idgen/internal/identifier/export"
	"github.com/allisson/idgen/internal/identifier/http/dto"
	identifierUseCase "github.com/allisson/idgen/internal/identifier/usecase"
	customValidation "github.com/allisson/idgen/internal/validation"
)

// IdentifierHandler handles HTTP requests for identifier operations.
type IdentifierHandler struct {
	identifierUseCase identifierUseCase.IdentifierUseCase
	defaults          dto.Defaults
	logger            *slog.Logger
}

// NewIdentifierHandler creates a new identifier handler with required dependencies.
func NewIdentifierHandler(
	identifierUseCase identifierUseCase.IdentifierUseCase,
	defaults dto.Defaults,
	logger *slog.Logger,
) *IdentifierHandler {
	return &IdentifierHandler{
		identifierUseCase: identifierUseCase,
		defaults:          defaults,
		logger:            logger,
	}
}

// ListSchemesHandler returns the supported schemes.
// GET /v1/schemes - Returns 200 OK with the catalog.
func (h *IdentifierHandler) ListSchemesHandler(c *gin.Context) {
	response := dto.MapSchemesToListResponse(identifierDomain.Schemes(), h.defaults)
	c.JSON(http.StatusOK, response)
}

// GenerateHandler generates a batch of identifiers.
// POST /v1/identifiers - Returns 201 Created with the batch.
func (h *IdentifierHandler) GenerateHandler(c *gin.Context) {
	batch, ok := h.generateFromBody(c)
	if !ok {
		return
	}

	c.JSON(http.StatusCreated, dto.MapBatchToGenerateResponse(batch))
}

// QuickGenerateHandler generates identifiers with default settings.
// GET /v1/identifiers/:scheme?count=&length=&uppercase=&lowercase=&numbers=&symbols=
// Returns 200 OK with the batch.
func (h *IdentifierHandler) QuickGenerateHandler(c *gin.Context) {
	req, err := h.parseQuickRequest(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	batch, ok := h.generate(c, req)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.MapBatchToGenerateResponse(batch))
}

// ExportHandler generates a batch and returns it as a downloadable file.
// POST /v1/identifiers/export?format=txt|csv|json|yaml - Returns 200 OK with the file.
func (h *IdentifierHandler) ExportHandler(c *gin.Context) {
	format, err := export.ParseFormat(c.DefaultQuery("format", string(export.FormatTXT)))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	batch, ok := h.generateFromBody(c)
	if !ok {
		return
	}

	file, err := export.Export(batch, format)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

// EncodeHandler encodes a single number with the reversible scheme.
// POST /v1/identifiers/encode - Returns 200 OK with the identifier and its payload length.
func (h *IdentifierHandler) EncodeHandler(c *gin.Context) {
	var req dto.EncodeRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	enc, err := h.identifierUseCase.Encode(c.Request.Context(), req.ToDomain(h.defaults))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEncodingToResponse(enc))
}

// DecodeHandler recovers the number behind a reversible identifier.
// POST /v1/identifiers/decode - Returns 200 OK with the value.
func (h *IdentifierHandler) DecodeHandler(c *gin.Context) {
	var req dto.DecodeRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	value, err := h.identifierUseCase.Decode(c.Request.Context(), req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.DecodeResponse{Value: value})
}

// ValidateHandler checks an identifier against its scheme contract.
// POST /v1/identifiers/validate - Returns 200 OK with the outcome, invalid identifiers included.
func (h *IdentifierHandler) ValidateHandler(c *gin.Context) {
	var req dto.ValidateRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	result, err := h.identifierUseCase.Validate(c.Request.Context(), req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapValidationResultToResponse(result))
}

// generateFromBody binds, validates and runs a generate request. It writes the error
// response and returns false on failure.
func (h *IdentifierHandler) generateFromBody(c *gin.Context) (*identifierDomain.Batch, bool) {
	var req dto.GenerateRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return nil, false
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return nil, false
	}

	return h.generate(c, &req)
}

func (h *IdentifierHandler) generate(c *gin.Context, req *dto.GenerateRequest) (*identifierDomain.Batch, bool) {
	cfg, err := req.ToSchemeConfig(h.defaults)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return nil, false
	}

	batch, err := h.identifierUseCase.GenerateBatch(c.Request.Context(), cfg, req.BatchCount())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return nil, false
	}

	return batch, true
}

func (h *IdentifierHandler) parseQuickRequest(c *gin.Context) (*dto.GenerateRequest, error) {
	req := &dto.GenerateRequest{Scheme: c.Param("scheme")}

	count, err := httputil.ParseCount(c, h.defaults.MaxBatchSize)
	if err != nil {
		return nil, err
	}
	req.Count = count

	length, err := httputil.ParseOptionalInt(c, "length", 0)
	if err != nil {
		return nil, err
	}
	if length > 0 {
		req.Length = &length
	}

	flags := []struct {
		name   string
		target *bool
	}{
		{name: "uppercase", target: &req.Charset.Uppercase},
		{name: "lowercase", target: &req.Charset.Lowercase},
		{name: "numbers", target: &req.Charset.Numbers},
		{name: "symbols", target: &req.Charset.Symbols},
	}
	for _, flag := range flags {
		value, err := httputil.ParseBoolQuery(c, flag.name)
		if err != nil {
			return nil, err
		}
		*flag.target = value
	}

	return req, nil
}
