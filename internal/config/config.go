package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig contains all configuration sections for the application.
type GlobalConfig struct {
	BrowserConfig   BrowserConfig   `json:"browser_config,omitempty" yaml:"browser_config,omitempty"`
	RunnerConfig    RunnerConfig    `json:"runner_config,omitempty" yaml:"runner_config,omitempty"`
	ExtractorConfig ExtractorConfig `json:"extractor_config,omitempty" yaml:"extractor_config,omitempty"`
	ReporterConfig  ReporterConfig  `json:"reporter_config,omitempty" yaml:"reporter_config,omitempty"`
	LogConfig       LogConfig       `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	ToolsConfig     ToolsConfig     `json:"tools_config,omitempty" yaml:"tools_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values.
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		BrowserConfig:   NewDefaultBrowserConfig(),
		RunnerConfig:    NewDefaultRunnerConfig(),
		ExtractorConfig: NewDefaultExtractorConfig(),
		ReporterConfig:  NewDefaultReporterConfig(),
		LogConfig:       NewDefaultLogConfig(),
		ToolsConfig:     NewDefaultToolsConfig(),
	}
}

// LoadGlobalConfig loads configuration from a file or default locations.
// Defaults apply for everything a file does not set; no file at all is
// valid and yields pure defaults. YAML or JSON is chosen by extension.
func LoadGlobalConfig(providedPath string) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		if providedPath != "" {
			return nil, fmt.Errorf("config file does not exist: %s", providedPath)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", filePath, err)
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	ext := filepath.Ext(filePath)
	if ext == ".yaml" || ext == ".yml" {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to unmarshal YAML from '%s': %w", filePath, err)
		}
		return nil
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}
