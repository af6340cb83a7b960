package browser

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/rs/zerolog"

	"github.com/linkmill/linkmill/internal/config"
)

// Manager owns the launcher and a pool of browser instances. Each run
// attempt borrows a browser, drives it inside an isolated incognito
// context, and either returns it or abandons it when the session hangs.
type Manager struct {
	config     config.BrowserConfig
	logger     zerolog.Logger
	pool       chan *rod.Browser
	launcher   *launcher.Launcher
	controlURL string
	mutex      sync.Mutex
	isRunning  bool
}

// NewManager creates a browser manager from configuration.
func NewManager(cfg config.BrowserConfig, logger zerolog.Logger) *Manager {
	return &Manager{
		config: cfg,
		logger: logger.With().Str("component", "BrowserManager").Logger(),
		pool:   make(chan *rod.Browser, cfg.PoolSize),
	}
}

// Start launches Chrome and fills the browser pool.
func (m *Manager) Start() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.isRunning {
		return nil
	}

	l := launcher.New()

	if m.config.ChromePath != "" {
		l = l.Bin(m.config.ChromePath)
	}
	if m.config.UserDataDir != "" {
		l = l.UserDataDir(m.config.UserDataDir)
	}

	l = l.
		Set("no-sandbox").
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		Set("no-first-run").
		Set("disable-default-apps").
		Set("disable-sync")

	if m.config.DisableImages {
		l = l.Set("blink-settings", "imagesEnabled=false")
	}
	if m.config.IgnoreHTTPSErrors {
		l = l.Set("ignore-certificate-errors")
	}

	controlURL, err := l.Launch()
	if err != nil {
		return fmt.Errorf("failed to launch browser: %w", err)
	}

	m.launcher = l
	m.controlURL = controlURL

	for i := 0; i < m.config.PoolSize; i++ {
		browser, err := m.connect()
		if err != nil {
			m.logger.Error().Err(err).Int("browser_index", i).Msg("Failed to connect browser")
			continue
		}
		m.pool <- browser
		m.logger.Debug().Int("browser_index", i).Msg("Browser instance added to pool")
	}

	if len(m.pool) == 0 {
		l.Cleanup()
		return fmt.Errorf("no browser instance could be connected")
	}

	m.isRunning = true
	m.logger.Info().Int("pool_size", len(m.pool)).Msg("Browser manager started")
	return nil
}

// Stop closes all pooled browsers and cleans up the launcher.
func (m *Manager) Stop() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if !m.isRunning {
		return
	}
	m.isRunning = false

	close(m.pool)
	for browser := range m.pool {
		if browser != nil {
			_ = browser.Close()
		}
	}

	if m.launcher != nil {
		m.launcher.Cleanup()
	}

	m.logger.Info().Msg("Browser manager stopped")
}

// NewSession borrows a browser from the pool and opens an isolated
// incognito context on it. The caller must call Close or Abandon.
func (m *Manager) NewSession(ctx context.Context) (*Session, error) {
	browser, err := m.acquire(ctx)
	if err != nil {
		return nil, err
	}

	incognito, err := browser.Incognito()
	if err != nil {
		m.release(browser)
		return nil, fmt.Errorf("failed to create incognito context: %w", err)
	}

	return &Session{
		manager:   m,
		browser:   browser,
		incognito: incognito,
		config:    m.config,
		logger:    m.logger.With().Str("component", "BrowserSession").Logger(),
	}, nil
}

func (m *Manager) connect() (*rod.Browser, error) {
	browser := rod.New().ControlURL(m.controlURL)
	if err := browser.Connect(); err != nil {
		return nil, err
	}
	return browser, nil
}

func (m *Manager) acquire(ctx context.Context) (*rod.Browser, error) {
	select {
	case browser, ok := <-m.pool:
		if !ok || browser == nil {
			return nil, fmt.Errorf("browser manager is stopped")
		}
		return browser, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for pooled browser: %w", ctx.Err())
	case <-time.After(30 * time.Second):
		return nil, fmt.Errorf("timeout waiting for browser from pool")
	}
}

func (m *Manager) release(browser *rod.Browser) {
	if browser == nil {
		return
	}
	select {
	case m.pool <- browser:
	default:
		_ = browser.Close()
	}
}

// discard drops a misbehaving browser and replaces it with a fresh
// instance so later attempts are not starved.
func (m *Manager) discard(browser *rod.Browser) {
	if browser != nil {
		_ = browser.Close()
	}

	replacement, err := m.connect()
	if err != nil {
		m.logger.Warn().Err(err).Msg("Failed to replace discarded browser")
		return
	}
	select {
	case m.pool <- replacement:
		m.logger.Debug().Msg("Discarded browser replaced in pool")
	default:
		_ = replacement.Close()
	}
}
