// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metadata scans template text for section titles, endpoint
// declarations, data-model headings, and error-code table rows. Each count
// comes from an independent regex pass; there is no Markdown parse tree.
package metadata

import (
	"regexp"

	"github.com/MeIver/agriculture-monitoring-system/pkg/types"
)

var (
	// sectionRe matches second-level headings and captures the title.
	sectionRe = regexp.MustCompile(`(?m)^##[ \t]+(.+?)[ \t]*$`)

	// endpointRe matches fenced http blocks whose first line declares a
	// recognized HTTP method.
	endpointRe = regexp.MustCompile("(?m)^```http[ \t]*\r?\n(?:GET|POST|PUT|PATCH|DELETE)\\b")

	// modelRe matches third-level headings whose title ends with "Model".
	modelRe = regexp.MustCompile(`(?m)^###[ \t]+.*\bModel[ \t]*$`)

	// errorRowRe matches table rows with a numeric code cell followed by an
	// uppercase-with-underscores token cell. Extra spaces are tolerated;
	// missing pipe delimiters are not.
	errorRowRe = regexp.MustCompile(`(?m)^\|[ \t]*\d+[ \t]*\|[ \t]*[A-Z][A-Z0-9_]*[ \t]*\|`)
)

// Extract returns the metadata record for text. It is a pure function:
// repeated calls on the same text yield identical records.
func Extract(text string) types.Metadata {
	var sections []string
	for _, m := range sectionRe.FindAllStringSubmatch(text, -1) {
		sections = append(sections, m[1])
	}

	return types.Metadata{
		Sections:   sections,
		Endpoints:  len(endpointRe.FindAllString(text, -1)),
		DataModels: len(modelRe.FindAllString(text, -1)),
		ErrorCodes: len(errorRowRe.FindAllString(text, -1)),
	}
}
