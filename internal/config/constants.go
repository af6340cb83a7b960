package config

const (
	// Browser defaults
	DefaultBrowserPoolSize      = 3
	DefaultBrowserWindowWidth   = 1920
	DefaultBrowserWindowHeight  = 1080
	DefaultBrowserWaitAfterLoad = 1000
	DefaultBrowserUserAgent     = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// Runner defaults
	DefaultRunnerConcurrency        = 3
	DefaultRunnerAttemptTimeoutSecs = 45
	DefaultRunnerNavTimeoutSecs     = 30
	DefaultRunnerIdleTimeoutSecs    = 10

	// Extractor defaults
	DefaultExtractorMaxLinksPerPage = 200

	// Reporter defaults
	DefaultReporterOutputDir = "reports"
	DefaultReporterFormat    = "table"

	// Log defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3
)
