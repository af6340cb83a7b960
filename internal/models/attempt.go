package models

import "time"

// AttemptStatus tracks the lifecycle of one (target, tool) submission.
type AttemptStatus string

const (
	AttemptPending   AttemptStatus = "pending"
	AttemptSubmitted AttemptStatus = "submitted"
	AttemptExtracted AttemptStatus = "extracted"
	AttemptFailed    AttemptStatus = "failed"
)

// FailureReason classifies why an attempt failed. Reasons are recorded in
// the run report so operators can tell a tool that could not be driven
// apart from a tool that genuinely returned nothing.
type FailureReason string

const (
	FailureNavigation     FailureReason = "navigation"
	FailureFieldsNotFound FailureReason = "fields-not-found"
	FailureInteraction    FailureReason = "interaction"
	FailureTimeout        FailureReason = "timeout"
)

// Attempt is the transient record of one (target, tool) pairing. It is
// owned exclusively by the adapter invocation that created it and is
// folded into the run report once the pair completes.
type Attempt struct {
	Target    Target        `json:"target"`
	Tool      Tool          `json:"tool"`
	Status    AttemptStatus `json:"status"`
	Reason    FailureReason `json:"reason,omitempty"`
	Error     string        `json:"error,omitempty"`
	Links     []string      `json:"links,omitempty"`
	StartedAt time.Time     `json:"started_at"`
	Elapsed   time.Duration `json:"elapsed"`
}

// NewAttempt creates a pending attempt for a (target, tool) pair.
func NewAttempt(target Target, tool Tool) Attempt {
	return Attempt{
		Target:    target,
		Tool:      tool,
		Status:    AttemptPending,
		StartedAt: time.Now(),
	}
}

// Fail transitions the attempt to failed with a reason and optional
// underlying error detail. It can be applied from any state.
func (a *Attempt) Fail(reason FailureReason, err error) {
	a.Status = AttemptFailed
	a.Reason = reason
	if err != nil {
		a.Error = err.Error()
	}
	a.Elapsed = time.Since(a.StartedAt)
}

// Complete transitions the attempt to extracted with the discovered links.
// A zero-length link set is a valid empty-result outcome, not a failure.
func (a *Attempt) Complete(links []string) {
	a.Status = AttemptExtracted
	a.Links = links
	a.Elapsed = time.Since(a.StartedAt)
}
