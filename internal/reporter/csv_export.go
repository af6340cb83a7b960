package reporter

import (
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/linkmill/linkmill/internal/models"
)

// LinkRow is the CSV shape of one discovered link.
type LinkRow struct {
	URL     string `csv:"URL"`
	Count   int    `csv:"Count"`
	Sources string `csv:"Sources"`
}

func exportCSV(report *models.RunReport, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV report: %w", err)
	}
	defer file.Close()

	rows := make([]LinkRow, 0, len(report.Links))
	for _, record := range report.Links {
		rows = append(rows, LinkRow{
			URL:     record.URL,
			Count:   record.SourceCount,
			Sources: formatSources(record.Sources),
		})
	}

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("failed to write CSV report: %w", err)
	}
	return nil
}

func formatSources(sources []models.LinkSource) string {
	parts := make([]string, 0, len(sources))
	for _, source := range sources {
		parts = append(parts, source.TargetURL+"|"+source.ToolID)
	}
	return strings.Join(parts, "; ")
}
