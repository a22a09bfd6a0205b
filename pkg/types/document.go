// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Document holds a loaded Markdown template. The content is treated as an
// opaque string; no structural parse is performed on load.
type Document struct {
	// Path is the filesystem path the template was read from.
	Path string `json:"path" yaml:"path"`

	// Content is the raw template text.
	Content string `json:"-" yaml:"-"`
}

// Metadata holds counts and titles scanned out of a template. It is derived
// purely from the document text and recomputed on every run.
type Metadata struct {
	// Sections lists every second-level heading title in document order,
	// duplicates preserved.
	Sections []string `json:"sections" yaml:"sections"`

	// Endpoints counts fenced http code blocks that declare an HTTP method.
	// Occurrences are counted, not unique paths.
	Endpoints int `json:"endpoints_count" yaml:"endpoints_count"`

	// DataModels counts third-level headings whose title ends with "Model".
	DataModels int `json:"data_models_count" yaml:"data_models_count"`

	// ErrorCodes counts error-table rows (numeric code cell followed by an
	// UPPER_SNAKE token cell).
	ErrorCodes int `json:"error_codes_count" yaml:"error_codes_count"`
}
