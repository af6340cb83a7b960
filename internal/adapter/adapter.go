package adapter

import (
	"context"
	"errors"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog"

	"github.com/linkmill/linkmill/internal/browser"
	"github.com/linkmill/linkmill/internal/config"
	"github.com/linkmill/linkmill/internal/extractor"
	"github.com/linkmill/linkmill/internal/locator"
	"github.com/linkmill/linkmill/internal/models"
	"github.com/linkmill/linkmill/internal/urlhandler"
)

// Adapter drives one (target, tool) submission end-to-end: navigate the
// tool page, locate its fields, submit the target, wait for results and
// extract candidate links. Every failure is folded into the returned
// attempt; nothing here aborts the wider run.
type Adapter struct {
	config    config.RunnerConfig
	manager   *browser.Manager
	locator   *locator.Locator
	extractor *extractor.Extractor
	logger    zerolog.Logger
}

// New creates a tool adapter.
func New(
	cfg config.RunnerConfig,
	manager *browser.Manager,
	fieldLocator *locator.Locator,
	resultExtractor *extractor.Extractor,
	logger zerolog.Logger,
) *Adapter {
	return &Adapter{
		config:    cfg,
		manager:   manager,
		locator:   fieldLocator,
		extractor: resultExtractor,
		logger:    logger.With().Str("component", "ToolAdapter").Logger(),
	}
}

// Submit runs one attempt. The whole state machine is bounded by the
// configured attempt timeout; on timeout the attempt fails with reason
// "timeout" regardless of how far it got, and the hung browser session is
// abandoned instead of being returned to the pool.
func (a *Adapter) Submit(ctx context.Context, target models.Target, tool models.Tool) models.Attempt {
	attempt := models.NewAttempt(target, tool)
	logger := a.logger.With().Str("tool", tool.ID).Str("target", target.URL).Logger()

	ctx, cancel := context.WithTimeout(ctx, a.config.AttemptTimeout())
	defer cancel()

	session, err := a.manager.NewSession(ctx)
	if err != nil {
		attempt.Fail(a.classify(ctx, models.FailureNavigation), err)
		logger.Warn().Err(err).Msg("Could not open browser session")
		return attempt
	}

	healthy := true
	defer func() {
		if healthy {
			session.Close()
		} else {
			session.Abandon()
		}
	}()

	// Init -> Navigated
	page, err := session.Open(ctx, tool.URL, a.config.NavigationTimeout())
	if err != nil {
		healthy = ctx.Err() == nil
		attempt.Fail(a.classify(ctx, models.FailureNavigation), err)
		logger.Warn().Err(err).Msg("Navigation failed")
		return attempt
	}

	// Navigated -> FieldsLocated
	candidates, err := session.CollectControls(page)
	if err != nil {
		healthy = ctx.Err() == nil
		attempt.Fail(a.classify(ctx, models.FailureFieldsNotFound), err)
		logger.Warn().Err(err).Msg("Could not enumerate page controls")
		return attempt
	}

	urlInput, ok := a.locator.Locate(candidates, locator.RoleURLInput, tool.URLInputHints)
	if !ok {
		attempt.Fail(models.FailureFieldsNotFound, errors.New("no url-input candidate matched"))
		logger.Info().Msg("URL input not found")
		return attempt
	}

	submitControl, ok := a.locator.Locate(candidates, locator.RoleSubmitControl, tool.SubmitHints)
	if !ok {
		attempt.Fail(models.FailureFieldsNotFound, errors.New("no submit-control candidate matched"))
		logger.Info().Msg("Submit control not found")
		return attempt
	}

	// Keyword input is optional even for keyword-accepting tools.
	var keywordInput *locator.Candidate
	if tool.AcceptsKeywords && len(target.Keywords) > 0 {
		if found, ok := a.locator.Locate(candidates, locator.RoleKeywordInput, tool.KeywordInputHints); ok {
			keywordInput = found
		} else {
			logger.Debug().Msg("Keyword input not found, submitting without keywords")
		}
	}

	// FieldsLocated -> Submitted
	if err := session.Type(urlInput.Handle, target.URL); err != nil {
		healthy = ctx.Err() == nil
		attempt.Fail(a.classify(ctx, models.FailureInteraction), err)
		logger.Warn().Err(err).Msg("Typing target URL failed")
		return attempt
	}
	if keywordInput != nil {
		if err := session.Type(keywordInput.Handle, target.JoinedKeywords()); err != nil {
			healthy = ctx.Err() == nil
			attempt.Fail(a.classify(ctx, models.FailureInteraction), err)
			logger.Warn().Err(err).Msg("Typing keywords failed")
			return attempt
		}
	}
	if err := session.Click(submitControl.Handle); err != nil {
		healthy = ctx.Err() == nil
		attempt.Fail(a.classify(ctx, models.FailureInteraction), err)
		logger.Warn().Err(err).Msg("Clicking submit control failed")
		return attempt
	}
	attempt.Status = models.AttemptSubmitted

	// Submitted -> Extracted. An idle timeout is not a failure: extraction
	// runs against whatever content is present, since some tools render
	// results without a clear idle signal.
	session.WaitForIdle(ctx, page, a.config.IdleTimeout())

	if ctx.Err() != nil {
		healthy = false
		attempt.Fail(models.FailureTimeout, ctx.Err())
		logger.Warn().Msg("Attempt timed out before extraction")
		return attempt
	}

	links := a.extractAll(session, target)
	attempt.Complete(links)
	logger.Info().Int("links", len(links)).Msg("Attempt extracted")
	return attempt
}

// extractAll scrapes every page open in the session, covering tools that
// put results in a new tab, and merges the links in page order.
func (a *Adapter) extractAll(session *browser.Session, target models.Target) []string {
	seen := mapset.NewThreadUnsafeSet[string]()
	var links []string

	for _, page := range session.CurrentPages() {
		html, err := session.HTML(page)
		if err != nil {
			continue
		}
		pageURL := session.PageURL(page)
		for _, link := range a.extractor.ExtractLinks(html, pageURL, target.URL) {
			key, err := urlhandler.CanonicalKey(link)
			if err != nil || !seen.Add(key) {
				continue
			}
			links = append(links, link)
		}
	}
	return links
}

// classify promotes any failure to a timeout when the attempt deadline is
// the underlying cause.
func (a *Adapter) classify(ctx context.Context, reason models.FailureReason) models.FailureReason {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return models.FailureTimeout
	}
	return reason
}
