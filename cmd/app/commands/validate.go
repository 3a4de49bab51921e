package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/allisson/idgen/internal/identifier/http/dto"
	identifierUseCase "github.com/allisson/idgen/internal/identifier/usecase"
	customValidation "github.com/allisson/idgen/internal/validation"
)

// RunValidate checks an identifier against its scheme contract. An invalid identifier
// is reported in the output, not as an error.
func RunValidate(
	ctx context.Context,
	useCase identifierUseCase.IdentifierUseCase,
	writer io.Writer,
	req dto.ValidateRequest,
	format string,
) error {
	if err := validateResultFormat(format); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid validate parameters: %w", customValidation.WrapValidationError(err))
	}

	result, err := useCase.Validate(ctx, req.ToDomain())
	if err != nil {
		return fmt.Errorf("failed to validate identifier: %w", err)
	}

	if format == formatJSON {
		return writeJSON(writer, dto.MapValidationResultToResponse(result))
	}

	if result.Valid {
		_, err = fmt.Fprintln(writer, "valid")
		return err
	}
	_, err = fmt.Fprintf(writer, "invalid: %s\n", result.Reason)
	return err
}
