package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/idgen/internal/identifier/http/dto"
	identifierUseCase "github.com/allisson/idgen/internal/identifier/usecase"
	customValidation "github.com/allisson/idgen/internal/validation"
)

// RunEncode encodes a single number with the reversible scheme. The payload length is
// printed alongside the identifier because decode needs it to strip the padding.
func RunEncode(
	ctx context.Context,
	useCase identifierUseCase.IdentifierUseCase,
	logger *slog.Logger,
	writer io.Writer,
	defaults dto.Defaults,
	req dto.EncodeRequest,
	format string,
) error {
	if err := validateResultFormat(format); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid encode parameters: %w", customValidation.WrapValidationError(err))
	}

	enc, err := useCase.Encode(ctx, req.ToDomain(defaults))
	if err != nil {
		return fmt.Errorf("failed to encode number: %w", err)
	}

	if enc.Truncated {
		logger.Warn("encoding truncated, the number cannot be decoded",
			slog.Uint64("number", *req.Number),
			slog.String("id", enc.ID),
		)
	}

	if format == formatJSON {
		return writeJSON(writer, dto.MapEncodingToResponse(enc))
	}

	_, err = fmt.Fprintf(writer, "%s\npayload length: %d\n", enc.ID, enc.PayloadLength)
	return err
}
