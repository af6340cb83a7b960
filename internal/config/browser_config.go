package config

// BrowserConfig defines configuration for the headless browser pool.
type BrowserConfig struct {
	ChromePath        string `json:"chrome_path,omitempty" yaml:"chrome_path,omitempty"`
	UserDataDir       string `json:"user_data_dir,omitempty" yaml:"user_data_dir,omitempty"`
	UserAgent         string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	WindowWidth       int    `json:"window_width,omitempty" yaml:"window_width,omitempty" validate:"omitempty,min=100"`
	WindowHeight      int    `json:"window_height,omitempty" yaml:"window_height,omitempty" validate:"omitempty,min=100"`
	WaitAfterLoadMs   int    `json:"wait_after_load_ms,omitempty" yaml:"wait_after_load_ms,omitempty" validate:"omitempty,min=0"`
	DisableImages     bool   `json:"disable_images" yaml:"disable_images"`
	IgnoreHTTPSErrors bool   `json:"ignore_https_errors" yaml:"ignore_https_errors"`
	PoolSize          int    `json:"pool_size,omitempty" yaml:"pool_size,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultBrowserConfig creates default browser configuration.
func NewDefaultBrowserConfig() BrowserConfig {
	return BrowserConfig{
		UserAgent:         DefaultBrowserUserAgent,
		WindowWidth:       DefaultBrowserWindowWidth,
		WindowHeight:      DefaultBrowserWindowHeight,
		WaitAfterLoadMs:   DefaultBrowserWaitAfterLoad,
		DisableImages:     true,
		IgnoreHTTPSErrors: true,
		PoolSize:          DefaultBrowserPoolSize,
	}
}
