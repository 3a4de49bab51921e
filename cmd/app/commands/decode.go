package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/allisson/idgen/internal/identifier/http/dto"
	identifierUseCase "github.com/allisson/idgen/internal/identifier/usecase"
	customValidation "github.com/allisson/idgen/internal/validation"
)

// RunDecode recovers the number behind a reversible identifier.
func RunDecode(
	ctx context.Context,
	useCase identifierUseCase.IdentifierUseCase,
	writer io.Writer,
	req dto.DecodeRequest,
	format string,
) error {
	if err := validateResultFormat(format); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid decode parameters: %w", customValidation.WrapValidationError(err))
	}

	value, err := useCase.Decode(ctx, req.ToDomain())
	if err != nil {
		return fmt.Errorf("failed to decode identifier: %w", err)
	}

	if format == formatJSON {
		return writeJSON(writer, dto.DecodeResponse{Value: value})
	}

	_, err = fmt.Fprintln(writer, value)
	return err
}
