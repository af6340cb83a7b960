package models

import "time"

// ToolSummary aggregates attempt outcomes for one tool across all targets.
type ToolSummary struct {
	ToolID    string                `json:"tool_id"`
	Attempted int                   `json:"attempted"`
	Extracted int                   `json:"extracted"`
	Failed    int                   `json:"failed"`
	Failures  map[FailureReason]int `json:"failures,omitempty"`
	// LinksFound counts raw links contributed by this tool before
	// cross-tool deduplication.
	LinksFound int `json:"links_found"`
}

// RunReport is the final product of one run: the deduplicated link records
// in first-seen order plus per-tool attempt summaries. It is immutable once
// the orchestrator completes.
type RunReport struct {
	RunID         string        `json:"run_id"`
	StartedAt     time.Time     `json:"started_at"`
	FinishedAt    time.Time     `json:"finished_at"`
	Links         []LinkRecord  `json:"links"`
	ToolSummaries []ToolSummary `json:"tool_summaries"`
	Attempts      []Attempt     `json:"attempts,omitempty"`
}

// TotalAttempts returns the number of (target, tool) pairs in the run.
func (r *RunReport) TotalAttempts() int {
	return len(r.Attempts)
}

// FailedAttempts returns how many attempts ended in a failed state.
func (r *RunReport) FailedAttempts() int {
	count := 0
	for _, attempt := range r.Attempts {
		if attempt.Status == AttemptFailed {
			count++
		}
	}
	return count
}
