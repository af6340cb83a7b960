package config

import (
	"strings"

	"github.com/linkmill/linkmill/internal/models"
)

// ToolDefinition is the configuration form of one backlink tool entry.
type ToolDefinition struct {
	ID              string   `json:"id,omitempty" yaml:"id,omitempty"`
	URL             string   `json:"url" yaml:"url" validate:"required"`
	AcceptsKeywords *bool    `json:"accepts_keywords,omitempty" yaml:"accepts_keywords,omitempty"`
	URLInputHints   []string `json:"url_input_hints,omitempty" yaml:"url_input_hints,omitempty"`
	KeywordHints    []string `json:"keyword_input_hints,omitempty" yaml:"keyword_input_hints,omitempty"`
	SubmitHints     []string `json:"submit_hints,omitempty" yaml:"submit_hints,omitempty"`
}

// ToolsConfig defines which tools a run drives. The built-in catalog is
// used unless disabled; extra definitions are appended after it. Enabled
// narrows the run to a subset of tool IDs when non-empty.
type ToolsConfig struct {
	UseBuiltin  bool             `json:"use_builtin" yaml:"use_builtin"`
	Definitions []ToolDefinition `json:"definitions,omitempty" yaml:"definitions,omitempty" validate:"dive"`
	Enabled     []string         `json:"enabled,omitempty" yaml:"enabled,omitempty"`
}

// NewDefaultToolsConfig creates default tools configuration.
func NewDefaultToolsConfig() ToolsConfig {
	return ToolsConfig{
		UseBuiltin: true,
	}
}

// ResolveTools materializes the enabled tool descriptors in catalog order,
// deduplicated by URL with insertion order preserved.
func (tc ToolsConfig) ResolveTools() []models.Tool {
	var definitions []ToolDefinition
	if tc.UseBuiltin {
		definitions = append(definitions, builtinToolCatalog...)
	}
	definitions = append(definitions, tc.Definitions...)

	enabled := make(map[string]bool, len(tc.Enabled))
	for _, id := range tc.Enabled {
		enabled[strings.ToLower(strings.TrimSpace(id))] = true
	}

	seenURLs := make(map[string]bool, len(definitions))
	tools := make([]models.Tool, 0, len(definitions))
	for _, def := range definitions {
		url := strings.TrimSpace(def.URL)
		if url == "" || seenURLs[url] {
			continue
		}
		seenURLs[url] = true

		tool := def.toTool()
		if len(enabled) > 0 && !enabled[strings.ToLower(tool.ID)] {
			continue
		}
		tools = append(tools, tool)
	}
	return tools
}

func (td ToolDefinition) toTool() models.Tool {
	id := strings.TrimSpace(td.ID)
	if id == "" {
		id = models.DeriveToolID(td.URL)
	}

	acceptsKeywords := true
	if td.AcceptsKeywords != nil {
		acceptsKeywords = *td.AcceptsKeywords
	}

	return models.Tool{
		ID:                id,
		URL:               strings.TrimSpace(td.URL),
		AcceptsKeywords:   acceptsKeywords,
		URLInputHints:     td.URLInputHints,
		KeywordInputHints: td.KeywordHints,
		SubmitHints:       td.SubmitHints,
	}
}

// builtinToolCatalog is the stock set of public backlink tools. Entries
// whose markup is known get explicit locator hints; the rest rely on the
// generic vocabulary tiers.
var builtinToolCatalog = []ToolDefinition{
	{URL: "https://searchenginereports.net/backlink-maker"},
	{URL: "http://www.indexkings.com/"},
	{URL: "https://www.backlinkr.net/"},
	{URL: "http://www.imtalk.org/cmps_index.php?pageid=IMT-Website-Submitter"},
	{URL: "http://sitowebinfo.com/back/"},
	{URL: "https://useme.org/"},
	{URL: "http://247backlinks.info/"},
	{URL: "http://real-backlinks.com/en"},
	{URL: "http://www.freebacklinkbuilder.net/"},
	{
		URL:           "https://smallseotools.com/backlink-maker/",
		URLInputHints: []string{"website"},
		SubmitHints:   []string{"check backlinks"},
	},
	{URL: "https://w3seo.info/backlink-maker"},
	{URL: "https://sitechecker.pro/backlinks-generator/"},
	{URL: "https://seo1seotools.com/"},
	{URL: "https://free-backlinks.org/"},
	{URL: "http://ping-my-url.net/"},
	{URL: "https://freebacklinks.info/"},
	{URL: "http://ping-my-url.com/beta.html"},
	{URL: "http://free-backlinks.info/"},
	{URL: "https://free-backlinks.net/free-backlink-generator.html"},
	{URL: "http://buy-backlinks.info/free-backlinks/"},
	{URL: "https://seo1seotools.com/free-backlink-generator.html", ID: "seo1seotools.com-generator"},
	{URL: "http://freebacklinkgenerator.net/free-backlink-generator.html"},
	{URL: "https://buy-backlinks.net/free-backlink-generator.html"},
	{URL: "https://addurl.official.my/"},
	{URL: "http://100downloads.xyz/edugov/"},
	{URL: "https://smartseotools.org/backlink-maker"},
	{URL: "http://connectionbuilder.co.uk/"},
	{
		URL:           "https://www.duplichecker.com/backlink-maker.php",
		URLInputHints: []string{"domain"},
	},
	{URL: "https://seowagon.com/backlink-maker"},
	{URL: "http://bulklink.org/"},
	{URL: "https://www.coderduck.com/backlink-maker"},
	{URL: "https://www.xwebtools.com/backlink-generator/"},
	{URL: "https://www.w3era.com/tool/backlink-maker/"},
}
