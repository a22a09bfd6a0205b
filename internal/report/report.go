// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report aggregates per-step outcomes of a documentation run and
// serializes them for post-hoc inspection.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/MeIver/agriculture-monitoring-system/pkg/types"
)

// Operation records the outcome of one pipeline step.
type Operation struct {
	Name    string `json:"operation" yaml:"operation"`
	Success bool   `json:"success" yaml:"success"`
	Message string `json:"message" yaml:"message"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
}

// Metrics holds the extracted template metadata plus the run duration.
type Metrics struct {
	types.Metadata `yaml:",inline"`

	// DurationMS is the wall-clock duration of the run in milliseconds.
	DurationMS int64 `json:"duration_ms" yaml:"duration_ms"`
}

// Summary counts operation outcomes for the run.
type Summary struct {
	Total      int `json:"total_operations" yaml:"total_operations"`
	Successful int `json:"successful" yaml:"successful"`
	Failed     int `json:"failed" yaml:"failed"`
}

// Report is the write-once record of a single run. Steps append to it as
// they complete; it is serialized once at the end.
type Report struct {
	RunID            string               `json:"run_id" yaml:"run_id"`
	Timestamp        time.Time            `json:"timestamp" yaml:"timestamp"`
	Template         string               `json:"template" yaml:"template"`
	Formats          []types.OutputFormat `json:"formats" yaml:"formats"`
	Operations       []Operation          `json:"results" yaml:"results"`
	GeneratedFiles   []string             `json:"generated_files" yaml:"generated_files"`
	ValidationErrors []string             `json:"validation_errors,omitempty" yaml:"validation_errors,omitempty"`
	Warnings         []string             `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Metrics          Metrics              `json:"metrics" yaml:"metrics"`
	Summary          Summary              `json:"summary" yaml:"summary"`
}

// New starts a report for one run.
func New(templatePath string, formats []types.OutputFormat) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Template:  templatePath,
		Formats:   formats,
	}
}

// AddOperation appends a step outcome. Path may be empty for steps that
// produce no artifact.
func (r *Report) AddOperation(name string, success bool, message, path string) {
	r.Operations = append(r.Operations, Operation{
		Name:    name,
		Success: success,
		Message: message,
		Path:    path,
	})
	if path != "" && success {
		r.GeneratedFiles = append(r.GeneratedFiles, path)
	}
}

// AddWarning records a non-fatal problem (e.g. a converter failure).
func (r *Report) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// Succeeded reports whether the run had no failed operations and no
// validation errors.
func (r *Report) Succeeded() bool {
	return r.Summary.Failed == 0 && len(r.ValidationErrors) == 0
}

// Finish stamps the run duration and computes the summary block.
func (r *Report) Finish(started time.Time) {
	r.Metrics.DurationMS = time.Since(started).Milliseconds()
	r.Summary = Summary{Total: len(r.Operations)}
	for _, op := range r.Operations {
		if op.Success {
			r.Summary.Successful++
		} else {
			r.Summary.Failed++
		}
	}
}

// Write serializes the report as indented JSON into dir, using a
// timestamped filename, and returns the report path.
func (r *Report) Write(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating reports directory: %w", err)
	}

	name := fmt.Sprintf("generation-report-%s.json", r.Timestamp.Format("20060102-150405"))
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}
