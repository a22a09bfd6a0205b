// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// OutputFormat selects a generated documentation artifact.
type OutputFormat string

const (
	FormatMarkdown OutputFormat = "markdown"
	FormatHTML     OutputFormat = "html"
	FormatPDF      OutputFormat = "pdf"
	FormatAll      OutputFormat = "all"
)

// Valid reports whether f is a recognized output format.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatMarkdown, FormatHTML, FormatPDF, FormatAll:
		return true
	}
	return false
}

// ExpandFormats resolves a requested format list into the concrete set of
// artifacts to produce. "all" expands to markdown, html, and pdf; duplicates
// are removed while preserving first-seen order.
func ExpandFormats(requested []OutputFormat) []OutputFormat {
	seen := make(map[OutputFormat]bool)
	var out []OutputFormat
	add := func(f OutputFormat) {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	for _, f := range requested {
		if f == FormatAll {
			add(FormatMarkdown)
			add(FormatHTML)
			add(FormatPDF)
			continue
		}
		add(f)
	}
	return out
}

// ValidationPolicy controls how structural violations affect generation.
type ValidationPolicy string

const (
	// PolicyStrict skips all generation when the template has violations.
	PolicyStrict ValidationPolicy = "strict"

	// PolicyAdvisory records violations in the report but generates anyway.
	PolicyAdvisory ValidationPolicy = "advisory"
)

// ConvertBackend identifies the Markdown conversion tool.
type ConvertBackend string

const (
	BackendPandoc ConvertBackend = "pandoc"
	BackendChrome ConvertBackend = "chrome"
)

// TemplateConfig holds settings for template loading.
type TemplateConfig struct {
	// Path is the Markdown template file to load.
	Path string `json:"path" yaml:"path"`
}

// ConvertConfig holds settings for the HTML/PDF conversion stage.
type ConvertConfig struct {
	// Backend selects the conversion tool: pandoc or chrome.
	Backend ConvertBackend `json:"backend" yaml:"backend"`

	// Timeout bounds a single external conversion (default 60s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// ReportConfig holds settings for run reports.
type ReportConfig struct {
	// Dir is the directory for generation reports (default "docs/reports").
	Dir string `json:"dir" yaml:"dir"`

	// HistoryEnabled controls whether runs are recorded in the SQLite
	// history database under Dir.
	HistoryEnabled bool `json:"history_enabled" yaml:"history_enabled"`
}

// GeneratorConfig groups all settings for one documentation run.
type GeneratorConfig struct {
	Template TemplateConfig `json:"template" yaml:"template"`

	// OutputDir is the directory for generated artifacts (default "docs/api").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Formats lists the requested output formats.
	Formats []OutputFormat `json:"formats" yaml:"formats"`

	// Policy controls whether violations gate generation (default strict).
	Policy ValidationPolicy `json:"policy" yaml:"policy"`

	Convert ConvertConfig `json:"convert" yaml:"convert"`
	Report  ReportConfig  `json:"report" yaml:"report"`
}

// Default paths mirror the repository layout created by `mage init`.
const (
	DefaultTemplatePath = "docs/api-templates/agriculture-api-template.md"
	DefaultOutputDir    = "docs/api"
	DefaultReportsDir   = "docs/reports"
)

// DefaultConfig returns a GeneratorConfig with the standard defaults applied.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Template:  TemplateConfig{Path: DefaultTemplatePath},
		OutputDir: DefaultOutputDir,
		Formats:   []OutputFormat{FormatAll},
		Policy:    PolicyStrict,
		Convert: ConvertConfig{
			Backend: BackendPandoc,
			Timeout: 60 * time.Second,
		},
		Report: ReportConfig{
			Dir:            DefaultReportsDir,
			HistoryEnabled: true,
		},
	}
}
