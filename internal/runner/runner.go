package runner

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/linkmill/linkmill/internal/config"
	"github.com/linkmill/linkmill/internal/models"
)

// Submitter drives one (target, tool) attempt end-to-end. The browser
// adapter is the production implementation; tests substitute their own.
type Submitter interface {
	Submit(ctx context.Context, target models.Target, tool models.Tool) models.Attempt
}

// Runner iterates the cross-product of targets and enabled tools,
// dispatches attempts with bounded parallelism, and folds the outcomes
// into a single deduplicated, counted report. One tool's repeated failure
// never prevents other tools or targets from being attempted.
type Runner struct {
	config    config.RunnerConfig
	submitter Submitter
	logger    zerolog.Logger
}

type pair struct {
	target models.Target
	tool   models.Tool
}

// New creates a run orchestrator.
func New(cfg config.RunnerConfig, submitter Submitter, logger zerolog.Logger) *Runner {
	return &Runner{
		config:    cfg,
		submitter: submitter,
		logger:    logger.With().Str("component", "RunOrchestrator").Logger(),
	}
}

// Run attempts every target against every tool and returns the final
// report. Attempts execute concurrently up to the configured limit, each
// isolated in its own browser context; results are folded single-threaded
// in pair iteration order, so link discovery order is deterministic for a
// fixed target and tool list.
func (r *Runner) Run(ctx context.Context, targets []models.Target, tools []models.Tool) *models.RunReport {
	report := &models.RunReport{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}

	pairs := crossProduct(targets, tools)
	r.logger.Info().
		Str("run_id", report.RunID).
		Int("targets", len(targets)).
		Int("tools", len(tools)).
		Int("pairs", len(pairs)).
		Msg("Run started")

	attempts := make([]models.Attempt, len(pairs))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(r.concurrency())
	for i, p := range pairs {
		i, p := i, p
		group.Go(func() error {
			attempts[i] = r.submitter.Submit(groupCtx, p.target, p.tool)
			return nil
		})
	}
	// Workers never return errors; failures live inside their attempts.
	_ = group.Wait()

	aggregate := newAggregator()
	for _, attempt := range attempts {
		aggregate.fold(attempt)
	}

	report.Links = aggregate.records()
	report.ToolSummaries = summarize(attempts, tools)
	if r.config.IncludeAttemptsInReport {
		report.Attempts = attempts
	}
	report.FinishedAt = time.Now()

	r.logger.Info().
		Str("run_id", report.RunID).
		Int("links", len(report.Links)).
		Int("failed_attempts", countFailed(attempts)).
		Dur("elapsed", report.FinishedAt.Sub(report.StartedAt)).
		Msg("Run finished")
	return report
}

func (r *Runner) concurrency() int {
	if r.config.Concurrency > 0 {
		return r.config.Concurrency
	}
	return 1
}

// crossProduct enumerates pairs target-major, which fixes both the attempt
// order in the report and the fold order of discovered links.
func crossProduct(targets []models.Target, tools []models.Tool) []pair {
	pairs := make([]pair, 0, len(targets)*len(tools))
	for _, target := range targets {
		for _, tool := range tools {
			pairs = append(pairs, pair{target: target, tool: tool})
		}
	}
	return pairs
}

func summarize(attempts []models.Attempt, tools []models.Tool) []models.ToolSummary {
	byID := make(map[string]*models.ToolSummary, len(tools))
	summaries := make([]models.ToolSummary, len(tools))
	for i, tool := range tools {
		summaries[i] = models.ToolSummary{ToolID: tool.ID}
		byID[tool.ID] = &summaries[i]
	}

	for _, attempt := range attempts {
		summary, ok := byID[attempt.Tool.ID]
		if !ok {
			continue
		}
		summary.Attempted++
		switch attempt.Status {
		case models.AttemptExtracted:
			summary.Extracted++
			summary.LinksFound += len(attempt.Links)
		case models.AttemptFailed:
			summary.Failed++
			if summary.Failures == nil {
				summary.Failures = make(map[models.FailureReason]int)
			}
			summary.Failures[attempt.Reason]++
		}
	}
	return summaries
}

func countFailed(attempts []models.Attempt) int {
	count := 0
	for _, attempt := range attempts {
		if attempt.Status == models.AttemptFailed {
			count++
		}
	}
	return count
}
