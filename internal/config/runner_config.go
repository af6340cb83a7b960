package config

import "time"

// RunnerConfig defines configuration for the run orchestrator: how many
// (target, tool) pairs run in parallel and the timeouts bounding each
// attempt's navigation, idle wait and total wall clock.
type RunnerConfig struct {
	Concurrency             int  `json:"concurrency,omitempty" yaml:"concurrency,omitempty" validate:"omitempty,min=1"`
	AttemptTimeoutSecs      int  `json:"attempt_timeout_secs,omitempty" yaml:"attempt_timeout_secs,omitempty" validate:"omitempty,min=1"`
	NavigationTimeoutSecs   int  `json:"navigation_timeout_secs,omitempty" yaml:"navigation_timeout_secs,omitempty" validate:"omitempty,min=1"`
	IdleTimeoutSecs         int  `json:"idle_timeout_secs,omitempty" yaml:"idle_timeout_secs,omitempty" validate:"omitempty,min=1"`
	IncludeAttemptsInReport bool `json:"include_attempts_in_report" yaml:"include_attempts_in_report"`
}

// NewDefaultRunnerConfig creates default runner configuration.
func NewDefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Concurrency:             DefaultRunnerConcurrency,
		AttemptTimeoutSecs:      DefaultRunnerAttemptTimeoutSecs,
		NavigationTimeoutSecs:   DefaultRunnerNavTimeoutSecs,
		IdleTimeoutSecs:         DefaultRunnerIdleTimeoutSecs,
		IncludeAttemptsInReport: true,
	}
}

// AttemptTimeout returns the per-attempt wall-clock bound.
func (rc RunnerConfig) AttemptTimeout() time.Duration {
	return time.Duration(rc.AttemptTimeoutSecs) * time.Second
}

// NavigationTimeout returns the per-navigation bound.
func (rc RunnerConfig) NavigationTimeout() time.Duration {
	return time.Duration(rc.NavigationTimeoutSecs) * time.Second
}

// IdleTimeout returns the post-submit idle-wait bound.
func (rc RunnerConfig) IdleTimeout() time.Duration {
	return time.Duration(rc.IdleTimeoutSecs) * time.Second
}
