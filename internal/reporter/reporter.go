package reporter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/linkmill/linkmill/internal/config"
	"github.com/linkmill/linkmill/internal/models"
)

// Reporter renders a run report to the console and optionally exports it
// to a file in the configured format.
type Reporter struct {
	config config.ReporterConfig
	logger zerolog.Logger
}

// New creates a reporter.
func New(cfg config.ReporterConfig, logger zerolog.Logger) *Reporter {
	return &Reporter{
		config: cfg,
		logger: logger.With().Str("component", "Reporter").Logger(),
	}
}

// WriteSummary renders the human-readable link and tool tables.
func (r *Reporter) WriteSummary(w io.Writer, report *models.RunReport) {
	writeLinkTable(w, report)
	fmt.Fprintln(w)
	writeToolTable(w, report)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Run %s: %d unique links, %d/%d attempts failed\n",
		report.RunID, len(report.Links), report.FailedAttempts(), report.TotalAttempts())
}

// Export writes the report to outputPath in the configured format. An
// empty outputPath picks a run-scoped file under the configured output
// directory. Returns the path written.
func (r *Reporter) Export(report *models.RunReport, outputPath string) (string, error) {
	format := r.config.Format
	if format == "" || format == "table" {
		format = "json"
	}

	if outputPath == "" {
		outputPath = filepath.Join(r.config.OutputDir, fmt.Sprintf("linkmill-%s.%s", report.RunID, format))
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	var err error
	switch format {
	case "csv":
		err = exportCSV(report, outputPath)
	default:
		err = exportJSON(report, outputPath)
	}
	if err != nil {
		return "", err
	}

	r.logger.Info().Str("path", outputPath).Str("format", format).Msg("Report exported")
	return outputPath, nil
}
