package models

// LinkSource identifies the (target, tool) attempt that yielded a link.
type LinkSource struct {
	TargetURL string `json:"target_url"`
	ToolID    string `json:"tool_id"`
}

// LinkRecord is one discovered URL in the final report. Identity is the
// normalized URL string; a given normalized URL appears at most once per
// report and its source count equals the number of attempts that yielded it.
type LinkRecord struct {
	URL         string       `json:"url"`
	SourceCount int          `json:"source_count"`
	Sources     []LinkSource `json:"sources"`
}
