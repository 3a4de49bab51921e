package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/allisson/idgen/internal/identifier/export"
	"github.com/allisson/idgen/internal/identifier/http/dto"
	identifierUseCase "github.com/allisson/idgen/internal/identifier/usecase"
	customValidation "github.com/allisson/idgen/internal/validation"
)

// GenerateOptions holds the parameters of the generate command.
type GenerateOptions struct {
	Request dto.GenerateRequest
	// Format is "text" or one of the export formats.
	Format string
	// Output is a file or an existing directory. Empty writes to the command writer.
	Output string
}

// RunGenerate generates a batch of identifiers and prints or saves it.
// The text format prints one identifier per line; csv, json and yaml match the API export.
func RunGenerate(
	ctx context.Context,
	useCase identifierUseCase.IdentifierUseCase,
	logger *slog.Logger,
	writer io.Writer,
	defaults dto.Defaults,
	opts GenerateOptions,
) error {
	format, err := parseGenerateFormat(opts.Format)
	if err != nil {
		return err
	}

	req := opts.Request
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid generate parameters: %w", customValidation.WrapValidationError(err))
	}

	cfg, err := req.ToSchemeConfig(defaults)
	if err != nil {
		return err
	}

	batch, err := useCase.GenerateBatch(ctx, cfg, req.BatchCount())
	if err != nil {
		return fmt.Errorf("failed to generate identifiers: %w", err)
	}

	file, err := export.Export(batch, format)
	if err != nil {
		return err
	}

	logger.Info("identifiers generated",
		slog.String("scheme", batch.Scheme.String()),
		slog.Int("count", batch.Count()),
	)

	if opts.Output == "" {
		_, err := fmt.Fprintln(writer, string(file.Content))
		return err
	}

	path := opts.Output
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, file.Name)
	}

	if err := os.WriteFile(path, file.Content, 0o600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, err = fmt.Fprintf(writer, "Wrote %d %s identifier(s) to %s\n", batch.Count(), batch.Scheme, path)
	return err
}

// parseGenerateFormat maps "text" to the txt export format.
func parseGenerateFormat(name string) (export.Format, error) {
	if name == "" || name == formatText {
		return export.FormatTXT, nil
	}
	format, err := export.ParseFormat(name)
	if err != nil {
		options := []string{formatText}
		for _, f := range export.Formats() {
			if f != export.FormatTXT {
				options = append(options, f.String())
			}
		}
		return "", fmt.Errorf("invalid format: %s (valid options: %s)", name, strings.Join(options, ", "))
	}
	return format, nil
}
