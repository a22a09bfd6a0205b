// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assemble produces the Markdown artifact: a generation header,
// the validated template text, and an OpenAPI appendix.
package assemble

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/MeIver/agriculture-monitoring-system/internal/openapi"
)

// GeneratorVersion is the fixed version string stamped into the header.
const GeneratorVersion = "1.0.0"

// markdownArtifact is the Markdown output filename.
const markdownArtifact = "agriculture-api.md"

const timestampLayout = "2006-01-02 15:04:05 MST"

// WithHeader prepends the generation comment block to text. The remainder
// of text is returned unmodified.
func WithHeader(text, sourcePath string, now time.Time) string {
	var b strings.Builder
	b.WriteString("<!--\n")
	fmt.Fprintf(&b, "  Generated by agridocs v%s\n", GeneratorVersion)
	fmt.Fprintf(&b, "  Source: %s\n", sourcePath)
	fmt.Fprintf(&b, "  Generated at: %s\n", now.UTC().Format(timestampLayout))
	b.WriteString("-->\n\n")
	b.WriteString(text)
	return b.String()
}

// WithSpecAppendix appends an "OpenAPI Specification" section containing the
// description as a fenced YAML block.
func WithSpecAppendix(text string, spec *openapi3.T) (string, error) {
	data, err := openapi.MarshalYAML(spec)
	if err != nil {
		return "", fmt.Errorf("rendering spec appendix: %w", err)
	}
	var b strings.Builder
	b.WriteString(text)
	b.WriteString("\n\n## OpenAPI Specification\n\n")
	b.WriteString("The full OpenAPI 3.0 specification is available below:\n\n")
	b.WriteString("```yaml\n")
	b.Write(data)
	b.WriteString("```\n")
	return b.String(), nil
}

// WriteMarkdown writes the assembled text into dir and returns the artifact
// path.
func WriteMarkdown(dir, text string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(dir, markdownArtifact)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("writing markdown artifact: %w", err)
	}
	return path, nil
}
