// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MeIver/agriculture-monitoring-system/internal/convert"
	"github.com/MeIver/agriculture-monitoring-system/internal/template"
	"github.com/MeIver/agriculture-monitoring-system/pkg/types"
)

const compliantTemplate = `# Agriculture Monitoring System API

## Overview

Monitoring endpoints for field sensors.

## Authentication

All requests carry an X-API-Key header.

## Endpoints

### Get Sensors

` + "```http\nGET /v1/sensors\n```" + `

## Data Models

### Sensor Model

` + "```json\n{\"id\": \"soil-7\"}\n```" + `

## Error Codes

| Code | Error        | Description |
|------|--------------|-------------|
| 401  | UNAUTHORIZED | Missing key |

## Rate Limiting

100 requests per minute.
`

// fakeConverter implements convert.Converter for testing. It writes a
// canned artifact or fails.
type fakeConverter struct {
	err error
}

func (f *fakeConverter) Convert(markdown, outPath string) error {
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(outPath, []byte("converted: "+markdown[:20]), 0o644)
}

func testConfig(t *testing.T, content string) types.GeneratorConfig {
	t.Helper()
	dir := t.TempDir()
	tmplPath := filepath.Join(dir, "agriculture-api-template.md")
	if err := os.WriteFile(tmplPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := types.DefaultConfig()
	cfg.Template.Path = tmplPath
	cfg.OutputDir = filepath.Join(dir, "api")
	cfg.Report.Dir = filepath.Join(dir, "reports")
	return cfg
}

func testDeps(conv convert.Converter) Deps {
	return Deps{
		NewConverter: func(types.ConvertConfig, types.OutputFormat) (convert.Converter, error) {
			return conv, nil
		},
		Now: time.Now,
	}
}

func TestRunAllFormats(t *testing.T) {
	cfg := testConfig(t, compliantTemplate)
	var out bytes.Buffer

	rep, err := Run(cfg, testDeps(&fakeConverter{}), &out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, name := range []string{
		"agriculture-api.md",
		"agriculture-api.html",
		"agriculture-api.pdf",
		"openapi-spec.json",
		"openapi-spec.yaml",
	} {
		if _, err := os.Stat(filepath.Join(cfg.OutputDir, name)); err != nil {
			t.Errorf("artifact %s missing: %v", name, err)
		}
	}
	if len(rep.GeneratedFiles) != 5 {
		t.Errorf("GeneratedFiles = %d entries, want 5: %v", len(rep.GeneratedFiles), rep.GeneratedFiles)
	}
	if len(rep.ValidationErrors) != 0 {
		t.Errorf("ValidationErrors = %v, want none", rep.ValidationErrors)
	}
	if !rep.Succeeded() {
		t.Error("Succeeded() = false, want true")
	}

	// Markdown artifact carries the generation header and the appendix.
	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "agriculture-api.md"))
	if err != nil {
		t.Fatal(err)
	}
	md := string(data)
	if !strings.HasPrefix(md, "<!--\n  Generated by agridocs") {
		t.Error("markdown artifact missing generation header")
	}
	if !strings.Contains(md, "## OpenAPI Specification") {
		t.Error("markdown artifact missing spec appendix")
	}

	// Report written and history recorded.
	entries, err := os.ReadDir(cfg.Report.Dir)
	if err != nil {
		t.Fatal(err)
	}
	var sawReport, sawHistory bool
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "generation-report-") {
			sawReport = true
		}
		if e.Name() == "history.db" {
			sawHistory = true
		}
	}
	if !sawReport {
		t.Error("no generation report in reports dir")
	}
	if !sawHistory {
		t.Error("no history database in reports dir")
	}
}

func TestRunStrictPolicySkipsGeneration(t *testing.T) {
	broken := strings.Replace(compliantTemplate, "## Authentication", "## Auth", 1)
	cfg := testConfig(t, broken)
	var out bytes.Buffer

	rep, err := Run(cfg, testDeps(&fakeConverter{}), &out)
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("Run() error = %v, want ErrValidationFailed", err)
	}
	if rep == nil {
		t.Fatal("Run() report = nil, want report with violations")
	}
	if len(rep.ValidationErrors) != 1 {
		t.Errorf("ValidationErrors = %v, want one", rep.ValidationErrors)
	}
	if len(rep.GeneratedFiles) != 0 {
		t.Errorf("GeneratedFiles = %v, want none", rep.GeneratedFiles)
	}
	if _, err := os.Stat(cfg.OutputDir); !os.IsNotExist(err) {
		t.Error("output dir created despite skipped generation")
	}
	if !strings.Contains(out.String(), "skipped: generation") {
		t.Errorf("output missing skip notice: %s", out.String())
	}
}

func TestRunAdvisoryPolicyGenerates(t *testing.T) {
	broken := strings.Replace(compliantTemplate, "## Authentication", "## Auth", 1)
	cfg := testConfig(t, broken)
	cfg.Policy = types.PolicyAdvisory
	var out bytes.Buffer

	rep, err := Run(cfg, testDeps(&fakeConverter{}), &out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rep.ValidationErrors) != 1 {
		t.Errorf("ValidationErrors = %v, want one recorded", rep.ValidationErrors)
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "agriculture-api.md")); err != nil {
		t.Errorf("markdown artifact missing under advisory policy: %v", err)
	}
}

func TestRunConverterFailureIsWarning(t *testing.T) {
	cfg := testConfig(t, compliantTemplate)
	var out bytes.Buffer

	rep, err := Run(cfg, testDeps(&fakeConverter{err: errors.New("pandoc exploded")}), &out)
	if err != nil {
		t.Fatalf("Run() error = %v, converter failures must not abort", err)
	}

	if len(rep.Warnings) != 2 { // html and pdf
		t.Errorf("Warnings = %v, want two", rep.Warnings)
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "agriculture-api.html")); !os.IsNotExist(err) {
		t.Error("html artifact present despite converter failure")
	}
	// Markdown and the spec files are unaffected.
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "agriculture-api.md")); err != nil {
		t.Errorf("markdown artifact missing: %v", err)
	}
	for _, f := range rep.GeneratedFiles {
		if strings.Contains(f, ".html") || strings.Contains(f, ".pdf") {
			t.Errorf("failed artifact %s listed as generated", f)
		}
	}
}

func TestRunMarkdownOnly(t *testing.T) {
	cfg := testConfig(t, compliantTemplate)
	cfg.Formats = []types.OutputFormat{types.FormatMarkdown}
	var out bytes.Buffer

	deps := Deps{
		NewConverter: func(types.ConvertConfig, types.OutputFormat) (convert.Converter, error) {
			t.Error("converter constructed for markdown-only run")
			return nil, errors.New("unexpected")
		},
		Now: time.Now,
	}

	if _, err := Run(cfg, deps, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "agriculture-api.html")); !os.IsNotExist(err) {
		t.Error("html artifact written for markdown-only run")
	}
}

func TestRunTemplateNotFound(t *testing.T) {
	cfg := testConfig(t, compliantTemplate)
	cfg.Template.Path = filepath.Join(t.TempDir(), "missing.md")
	var out bytes.Buffer

	rep, err := Run(cfg, testDeps(&fakeConverter{}), &out)
	if rep != nil {
		t.Errorf("Run() report = %+v, want nil", rep)
	}
	if !template.IsNotFound(err) {
		t.Fatalf("Run() error = %v, want template not-found", err)
	}
	if _, err := os.Stat(cfg.OutputDir); !os.IsNotExist(err) {
		t.Error("output files created despite missing template")
	}
	if _, err := os.Stat(cfg.Report.Dir); !os.IsNotExist(err) {
		t.Error("report written despite missing template")
	}
}

func TestValidateOnlyWritesNothing(t *testing.T) {
	cfg := testConfig(t, compliantTemplate)
	var out bytes.Buffer

	violations, err := ValidateOnly(cfg.Template.Path, &out)
	if err != nil {
		t.Fatalf("ValidateOnly: %v", err)
	}
	if len(violations) != 0 {
		t.Errorf("violations = %v, want none", violations)
	}
	if !strings.Contains(out.String(), "compliant:") {
		t.Errorf("output = %q, want compliance line", out.String())
	}
	if _, err := os.Stat(cfg.OutputDir); !os.IsNotExist(err) {
		t.Error("validate-only run created the output dir")
	}
	if _, err := os.Stat(cfg.Report.Dir); !os.IsNotExist(err) {
		t.Error("validate-only run created the reports dir")
	}
}

func TestValidateOnlyViolations(t *testing.T) {
	broken := strings.Replace(compliantTemplate, "```json", "```yaml", 1)
	cfg := testConfig(t, broken)
	var out bytes.Buffer

	violations, err := ValidateOnly(cfg.Template.Path, &out)
	if err != nil {
		t.Fatalf("ValidateOnly: %v", err)
	}
	if len(violations) != 1 {
		t.Fatalf("violations = %v, want one", violations)
	}
	if !strings.Contains(out.String(), "violation: no json example code block") {
		t.Errorf("output = %q, want violation line", out.String())
	}
}
