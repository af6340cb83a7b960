package reporter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkmill/linkmill/internal/config"
	"github.com/linkmill/linkmill/internal/models"
)

func sampleReport() *models.RunReport {
	return &models.RunReport{
		RunID:      "test-run",
		StartedAt:  time.Now().Add(-time.Minute),
		FinishedAt: time.Now(),
		Links: []models.LinkRecord{
			{
				URL:         "https://found.example/abc",
				SourceCount: 2,
				Sources: []models.LinkSource{
					{TargetURL: "example.com", ToolID: "tool-a"},
					{TargetURL: "example.com", ToolID: "tool-b"},
				},
			},
		},
		ToolSummaries: []models.ToolSummary{
			{ToolID: "tool-a", Attempted: 1, Extracted: 1, LinksFound: 1},
			{
				ToolID: "tool-b", Attempted: 1, Failed: 1,
				Failures: map[models.FailureReason]int{models.FailureFieldsNotFound: 1},
			},
		},
	}
}

func TestWriteSummary(t *testing.T) {
	r := New(config.NewDefaultReporterConfig(), zerolog.Nop())

	var buf bytes.Buffer
	r.WriteSummary(&buf, sampleReport())
	out := buf.String()

	assert.Contains(t, out, "https://found.example/abc")
	assert.Contains(t, out, "tool-a")
	assert.Contains(t, out, "fields-not-found=1")
	assert.Contains(t, out, "Run test-run: 1 unique links")
}

func TestWriteSummary_EmptyReport(t *testing.T) {
	r := New(config.NewDefaultReporterConfig(), zerolog.Nop())

	var buf bytes.Buffer
	r.WriteSummary(&buf, &models.RunReport{RunID: "empty"})

	assert.Contains(t, buf.String(), "No links discovered.")
}

func TestExport_JSON(t *testing.T) {
	cfg := config.NewDefaultReporterConfig()
	cfg.Format = "json"
	cfg.OutputDir = t.TempDir()
	r := New(cfg, zerolog.Nop())

	path, err := r.Export(sampleReport(), "")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".json"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded models.RunReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "test-run", decoded.RunID)
	require.Len(t, decoded.Links, 1)
	assert.Equal(t, 2, decoded.Links[0].SourceCount)
}

func TestExport_CSV(t *testing.T) {
	cfg := config.NewDefaultReporterConfig()
	cfg.Format = "csv"
	r := New(cfg, zerolog.Nop())

	path := filepath.Join(t.TempDir(), "out.csv")
	written, err := r.Export(sampleReport(), path)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "URL,Count,Sources")
	assert.Contains(t, content, "https://found.example/abc,2")
	assert.Contains(t, content, "example.com|tool-a; example.com|tool-b")
}

func TestExport_TableFormatFallsBackToJSON(t *testing.T) {
	cfg := config.NewDefaultReporterConfig()
	cfg.OutputDir = t.TempDir()
	r := New(cfg, zerolog.Nop())

	path, err := r.Export(sampleReport(), "")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".json"))
}
