package reporter

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/linkmill/linkmill/internal/models"
)

func exportJSON(report *models.RunReport, path string) error {
	data, err := json.MarshalIndent(report, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	return nil
}
