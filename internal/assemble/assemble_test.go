// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assemble

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/MeIver/agriculture-monitoring-system/internal/openapi"
)

func TestWithHeader(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	body := "# Agriculture API\n\n## Overview\n"

	got := WithHeader(body, "docs/api-templates/agriculture-api-template.md", now)

	want := "<!--\n" +
		"  Generated by agridocs v1.0.0\n" +
		"  Source: docs/api-templates/agriculture-api-template.md\n" +
		"  Generated at: 2026-03-14 09:26:53 UTC\n" +
		"-->\n\n" + body
	if got != want {
		t.Errorf("WithHeader() =\n%s\nwant:\n%s", got, want)
	}
	if !strings.HasSuffix(got, body) {
		t.Error("body was modified by header prepend")
	}
}

func TestWithSpecAppendix(t *testing.T) {
	spec := openapi.Build()

	got, err := WithSpecAppendix("## Overview\n", spec)
	if err != nil {
		t.Fatalf("WithSpecAppendix: %v", err)
	}

	if !strings.HasPrefix(got, "## Overview\n") {
		t.Error("original text not preserved at start")
	}
	if !strings.Contains(got, "## OpenAPI Specification") {
		t.Error("appendix heading missing")
	}
	if !strings.Contains(got, "```yaml\n") {
		t.Error("appendix YAML fence missing")
	}
	if !strings.Contains(got, "Agriculture Monitoring System API") {
		t.Error("appendix missing spec content")
	}
}

func TestWriteMarkdown(t *testing.T) {
	dir := t.TempDir() + "/docs/api" // exercise directory creation

	path, err := WriteMarkdown(dir, "# Docs\n")
	if err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	if !strings.HasSuffix(path, "agriculture-api.md") {
		t.Errorf("artifact path = %q, want agriculture-api.md", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "# Docs\n" {
		t.Errorf("artifact content = %q", data)
	}
}
