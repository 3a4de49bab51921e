package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	identifierDomain "github.com/allisson/idgen/internal/identifier/domain"
	"github.com/allisson/idgen/internal/identifier/http/dto"
)

// RunListSchemes prints the scheme catalog with the configured default lengths.
func RunListSchemes(writer io.Writer, defaults dto.Defaults, format string) error {
	if err := validateResultFormat(format); err != nil {
		return err
	}

	response := dto.MapSchemesToListResponse(identifierDomain.Schemes(), defaults)
	if format == formatJSON {
		return writeJSON(writer, response)
	}

	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "SCHEME\tNAME\tDEFAULT LENGTH\tREVERSIBLE")
	for _, s := range response.Data {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%t\n", s.Scheme, s.DisplayName, s.DefaultLength, s.Reversible)
	}
	return tw.Flush()
}
