// Package export renders identifier batches as downloadable files.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/allisson/idgen/internal/errors"
	"github.com/allisson/idgen/internal/identifier/domain"
)

// Format is a supported export file format.
type Format string

const (
	FormatTXT  Format = "txt"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// TimestampLayout is the file name timestamp, second precision without colons.
const TimestampLayout = "2006-01-02T15-04-05"

// ErrInvalidExportFormat indicates an unknown export format.
var ErrInvalidExportFormat = errors.Wrap(errors.ErrInvalidInput, "invalid export format")

// Formats returns the supported formats in display order.
func Formats() []Format {
	return []Format{FormatTXT, FormatCSV, FormatJSON, FormatYAML}
}

// ParseFormat converts a format name, case-insensitively. "yml" is accepted for yaml.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatTXT, FormatCSV, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", errors.Wrapf(ErrInvalidExportFormat, "unknown format %q", name)
	}
}

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	default:
		return "text/plain"
	}
}

// File is a rendered export.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// document is the structured json and yaml representation of a batch.
type document struct {
	Type        string   `json:"type"         yaml:"type"`
	GeneratedAt string   `json:"generated_at" yaml:"generated_at"`
	Count       int      `json:"count"        yaml:"count"`
	IDs         []string `json:"ids"          yaml:"ids"`
}

// Export renders batch in format. The file is named after the scheme display name
// and the batch generation time in UTC.
func Export(batch *domain.Batch, format Format) (*File, error) {
	if batch == nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, "batch cannot be nil")
	}

	var (
		content []byte
		err     error
	)
	switch format {
	case FormatTXT:
		content = []byte(strings.Join(batch.IDs, "\n"))
	case FormatCSV:
		content, err = renderCSV(batch)
	case FormatJSON:
		content, err = json.MarshalIndent(newDocument(batch), "", "  ")
	case FormatYAML:
		content, err = yaml.Marshal(newDocument(batch))
	default:
		return nil, errors.Wrapf(ErrInvalidExportFormat, "unknown format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to render %s export: %w", format, err)
	}

	return &File{
		Name:        FileName(batch, format),
		ContentType: format.ContentType(),
		Content:     content,
	}, nil
}

// FileName returns "<name>s-<timestamp>.<ext>", for example "uuids-2024-01-02T03-04-05.txt".
func FileName(batch *domain.Batch, format Format) string {
	name := strings.ToLower(batch.Scheme.DisplayName())
	if !strings.HasSuffix(name, "s") {
		name += "s"
	}
	return fmt.Sprintf("%s-%s.%s", name, batch.GeneratedAt.UTC().Format(TimestampLayout), format)
}

func newDocument(batch *domain.Batch) document {
	ids := batch.IDs
	if ids == nil {
		ids = []string{}
	}
	return document{
		Type:        batch.Scheme.String(),
		GeneratedAt: batch.GeneratedAt.UTC().Format(time.RFC3339),
		Count:       batch.Count(),
		IDs:         ids,
	}
}

func renderCSV(batch *domain.Batch) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{strings.ToUpper(batch.Scheme.DisplayName())}); err != nil {
		return nil, err
	}
	for _, id := range batch.IDs {
		if err := w.Write([]string{id}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
