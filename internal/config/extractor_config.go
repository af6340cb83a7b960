package config

// ExtractorConfig defines configuration for result extraction.
type ExtractorConfig struct {
	// ScanTextContent also scans page text for bare URL tokens in
	// addition to anchor hrefs.
	ScanTextContent bool `json:"scan_text_content" yaml:"scan_text_content"`
	// MaxLinksPerPage caps how many candidate links one page contributes.
	MaxLinksPerPage int `json:"max_links_per_page,omitempty" yaml:"max_links_per_page,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultExtractorConfig creates default extractor configuration.
func NewDefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		ScanTextContent: true,
		MaxLinksPerPage: DefaultExtractorMaxLinksPerPage,
	}
}
