package reporter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rodaine/table"

	"github.com/linkmill/linkmill/internal/models"
)

func writeLinkTable(w io.Writer, report *models.RunReport) {
	if len(report.Links) == 0 {
		fmt.Fprintln(w, "No links discovered.")
		return
	}

	tbl := table.New("#", "Link", "Count", "Tools")
	tbl.WithWriter(w)
	for i, record := range report.Links {
		tbl.AddRow(i+1, record.URL, record.SourceCount, strings.Join(sourceToolIDs(record), ", "))
	}
	tbl.Print()
}

func writeToolTable(w io.Writer, report *models.RunReport) {
	tbl := table.New("Tool", "Attempted", "Extracted", "Failed", "Links", "Failure Reasons")
	tbl.WithWriter(w)
	for _, summary := range report.ToolSummaries {
		tbl.AddRow(
			summary.ToolID,
			summary.Attempted,
			summary.Extracted,
			summary.Failed,
			summary.LinksFound,
			formatFailures(summary.Failures),
		)
	}
	tbl.Print()
}

func sourceToolIDs(record models.LinkRecord) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, source := range record.Sources {
		if !seen[source.ToolID] {
			seen[source.ToolID] = true
			ids = append(ids, source.ToolID)
		}
	}
	return ids
}

func formatFailures(failures map[models.FailureReason]int) string {
	if len(failures) == 0 {
		return ""
	}
	parts := make([]string, 0, len(failures))
	for reason, count := range failures {
		parts = append(parts, fmt.Sprintf("%s=%d", reason, count))
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
