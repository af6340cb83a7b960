package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rs/zerolog"

	"github.com/linkmill/linkmill/internal/config"
	"github.com/linkmill/linkmill/internal/locator"
)

// Session is one isolated incognito context on a pooled browser. All pages
// a submission opens, including new tabs spawned by the tool, live inside
// this context and die with it.
type Session struct {
	manager   *Manager
	browser   *rod.Browser
	incognito *rod.Browser
	pages     []*rod.Page
	config    config.BrowserConfig
	logger    zerolog.Logger
}

// Open navigates a fresh page to the URL and waits for the load event,
// both bounded by the timeout. Navigation failures are returned, never
// panicked, so a dead tool site costs only its own attempt.
func (s *Session) Open(ctx context.Context, url string, timeout time.Duration) (*rod.Page, error) {
	page, err := s.incognito.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	page = page.Context(ctx)
	s.pages = append(s.pages, page)

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:  s.config.WindowWidth,
		Height: s.config.WindowHeight,
	}); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to set viewport")
	}

	if s.config.UserAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
			UserAgent: s.config.UserAgent,
		}); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to set user agent")
		}
	}

	if err := page.Timeout(timeout).Navigate(url); err != nil {
		return nil, fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("page load timeout for %s: %w", url, err)
	}

	return page, nil
}

// WaitForIdle waits up to the timeout for network and script activity to
// settle, then applies the configured grace period. A timeout here is not
// an error: some tools render results without a clear idle signal, so the
// caller extracts from whatever content is present.
func (s *Session) WaitForIdle(ctx context.Context, page *rod.Page, timeout time.Duration) {
	if err := page.WaitIdle(timeout); err != nil {
		s.logger.Debug().Err(err).Msg("Page did not reach idle before timeout")
	}
	if s.config.WaitAfterLoadMs > 0 {
		waitGrace(ctx, time.Duration(s.config.WaitAfterLoadMs)*time.Millisecond)
	}
}

// waitGrace sleeps for d but returns early once the attempt context is
// done, so an already timed-out attempt does not keep burning wall clock.
func waitGrace(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// CollectControls snapshots every interactive control on the page in
// document order, for the field locator to match against.
func (s *Session) CollectControls(page *rod.Page) ([]locator.Candidate, error) {
	elements, err := page.Elements("input, textarea, button, a")
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate controls: %w", err)
	}

	labels := s.collectLabels(page)

	candidates := make([]locator.Candidate, 0, len(elements))
	for i, el := range elements {
		candidate := locator.Candidate{
			Index:       i,
			Tag:         elementTag(el),
			InputType:   attrValue(el, "type"),
			Name:        attrValue(el, "name"),
			ID:          attrValue(el, "id"),
			Placeholder: attrValue(el, "placeholder"),
			AriaLabel:   attrValue(el, "aria-label"),
			Title:       attrValue(el, "title"),
			Handle:      el,
		}

		if candidate.ID != "" {
			candidate.Label = labels[candidate.ID]
		}

		if text, err := el.Text(); err == nil {
			candidate.Text = strings.TrimSpace(text)
		}
		if candidate.Text == "" {
			candidate.Text = attrValue(el, "value")
		}

		if visible, err := el.Visible(); err == nil {
			candidate.Visible = visible
		}
		candidate.Enabled = !hasAttr(el, "disabled")

		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

// Type clears the element and types the text into it.
func (s *Session) Type(el *rod.Element, text string) error {
	if err := el.SelectAllText(); err == nil {
		_ = el.Input("")
	}
	if err := el.Input(text); err != nil {
		return fmt.Errorf("input failed: %w", err)
	}
	return nil
}

// Click performs a left click on the element.
func (s *Session) Click(el *rod.Element) error {
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click failed: %w", err)
	}
	return nil
}

// CurrentPages returns every page open in this session's context,
// covering tools that open their results in a new tab after submit. The
// target list spans the whole Chrome instance and pooled browsers share
// one instance, so targets are filtered down to this session's context;
// anything else belongs to a concurrent attempt.
func (s *Session) CurrentPages() []*rod.Page {
	result, err := proto.TargetGetTargets{}.Call(s.incognito)
	if err != nil {
		s.logger.Debug().Err(err).Msg("Failed to list targets, using tracked pages")
		return s.pages
	}

	ids := contextPageTargets(result.TargetInfos, s.incognito.BrowserContextID)
	pages := make([]*rod.Page, 0, len(ids))
	for _, id := range ids {
		page, err := s.incognito.PageFromTarget(id)
		if err != nil {
			continue
		}
		pages = append(pages, page)
	}
	if len(pages) == 0 {
		return s.pages
	}
	return pages
}

// contextPageTargets keeps only the page targets that belong to the given
// browsing context, in listing order.
func contextPageTargets(infos []*proto.TargetTargetInfo, contextID proto.BrowserBrowserContextID) []proto.TargetTargetID {
	var ids []proto.TargetTargetID
	for _, info := range infos {
		if info.Type != "page" {
			continue
		}
		if contextID == "" || info.BrowserContextID != contextID {
			continue
		}
		ids = append(ids, info.TargetID)
	}
	return ids
}

// HTML returns the serialized DOM of a page.
func (s *Session) HTML(page *rod.Page) (string, error) {
	return page.HTML()
}

// PageURL returns the page's current URL after any redirects.
func (s *Session) PageURL(page *rod.Page) string {
	info, err := page.Info()
	if err != nil {
		return ""
	}
	return info.URL
}

// Close disposes the incognito context and returns the browser to the
// pool for reuse by later attempts.
func (s *Session) Close() {
	for _, page := range s.CurrentPages() {
		_ = page.Close()
	}
	if s.incognito != nil && s.incognito.BrowserContextID != "" {
		err := proto.TargetDisposeBrowserContext{
			BrowserContextID: s.incognito.BrowserContextID,
		}.Call(s.incognito)
		if err != nil {
			s.logger.Debug().Err(err).Msg("Failed to dispose browser context")
		}
	}
	s.manager.release(s.browser)
}

// Abandon gives up on a hung session: the whole browser instance is
// dropped and replaced rather than returned to the pool.
func (s *Session) Abandon() {
	s.logger.Warn().Msg("Abandoning unresponsive browser session")
	s.manager.discard(s.browser)
}

func (s *Session) collectLabels(page *rod.Page) map[string]string {
	labels := make(map[string]string)
	elements, err := page.Elements("label[for]")
	if err != nil {
		return labels
	}
	for _, el := range elements {
		forID := attrValue(el, "for")
		if forID == "" {
			continue
		}
		if text, err := el.Text(); err == nil {
			labels[forID] = strings.TrimSpace(text)
		}
	}
	return labels
}

func elementTag(el *rod.Element) string {
	desc, err := el.Describe(0, false)
	if err != nil {
		return ""
	}
	return strings.ToLower(desc.NodeName)
}

func attrValue(el *rod.Element, name string) string {
	value, err := el.Attribute(name)
	if err != nil || value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}

func hasAttr(el *rod.Element, name string) bool {
	value, err := el.Attribute(name)
	return err == nil && value != nil
}
