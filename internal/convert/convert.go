// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert renders the assembled Markdown into HTML and PDF
// artifacts with pluggable backends. Conversion failures are reported to
// the caller, which downgrades them to warnings; a failed conversion never
// aborts a documentation run.
package convert

import (
	"fmt"

	"github.com/MeIver/agriculture-monitoring-system/pkg/types"
)

// Converter renders Markdown text into the artifact at outPath. Backends
// (pandoc, headless Chrome) implement this interface; tests substitute
// fakes.
type Converter interface {
	Convert(markdown, outPath string) error
}

// NewConverter returns the converter used for the given artifact format.
// HTML always goes through pandoc. PDF goes through pandoc unless the
// chrome backend is configured. Construction fails when the backend's tool
// is unavailable.
func NewConverter(cfg types.ConvertConfig, format types.OutputFormat) (Converter, error) {
	switch format {
	case types.FormatHTML:
		return NewPandocConverter(formatHTML5, cfg.Timeout)
	case types.FormatPDF:
		if cfg.Backend == types.BackendChrome {
			return NewChromeConverter(cfg.Timeout), nil
		}
		return NewPandocConverter(formatPDF, cfg.Timeout)
	}
	return nil, fmt.Errorf("no converter for format %q", format)
}
