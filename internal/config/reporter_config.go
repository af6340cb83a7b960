package config

// ReporterConfig defines configuration for report output.
type ReporterConfig struct {
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
	// Format selects the export format: table, json or csv.
	Format string `json:"format,omitempty" yaml:"format,omitempty" validate:"omitempty,oneof=table json csv"`
}

// NewDefaultReporterConfig creates default reporter configuration.
func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		OutputDir: DefaultReporterOutputDir,
		Format:    DefaultReporterFormat,
	}
}
