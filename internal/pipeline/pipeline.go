// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline orchestrates one documentation run: load, structural
// checks, metadata extraction, artifact generation, and the run report.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/MeIver/agriculture-monitoring-system/internal/assemble"
	"github.com/MeIver/agriculture-monitoring-system/internal/check"
	"github.com/MeIver/agriculture-monitoring-system/internal/convert"
	"github.com/MeIver/agriculture-monitoring-system/internal/metadata"
	"github.com/MeIver/agriculture-monitoring-system/internal/openapi"
	"github.com/MeIver/agriculture-monitoring-system/internal/report"
	"github.com/MeIver/agriculture-monitoring-system/internal/template"
	"github.com/MeIver/agriculture-monitoring-system/pkg/types"
)

// Artifact filenames written into the output directory.
const (
	htmlArtifact     = "agriculture-api.html"
	pdfArtifact      = "agriculture-api.pdf"
	specJSONArtifact = "openapi-spec.json"
	specYAMLArtifact = "openapi-spec.yaml"
)

// ErrValidationFailed is returned when strict policy stops generation.
var ErrValidationFailed = errors.New("template validation failed")

// Deps holds the injectable collaborators of a run. External conversion is
// injected so tests can substitute a stub for pandoc/Chrome.
type Deps struct {
	NewConverter func(types.ConvertConfig, types.OutputFormat) (convert.Converter, error)
	Now          func() time.Time
}

// DefaultDeps returns the production collaborators.
func DefaultDeps() Deps {
	return Deps{
		NewConverter: convert.NewConverter,
		Now:          time.Now,
	}
}

// Run executes a full documentation run, printing per-step status to w.
// The returned report is non-nil whenever the template could be loaded,
// including strict-policy validation failures (the report is still written
// so the violations are inspectable).
func Run(cfg types.GeneratorConfig, deps Deps, w io.Writer) (*report.Report, error) {
	started := deps.Now()
	rep := report.New(cfg.Template.Path, cfg.Formats)
	rep.Timestamp = started.UTC()

	doc, err := template.Load(cfg.Template.Path)
	if err != nil {
		fmt.Fprintf(w, "failed:  load template (%v)\n", err)
		return nil, err
	}
	rep.AddOperation("load_template", true, fmt.Sprintf("template loaded from %s", doc.Path), "")
	fmt.Fprintf(w, "loaded:  %s\n", doc.Path)

	violations := check.Check(doc.Content)
	rep.ValidationErrors = violations
	if len(violations) == 0 {
		rep.AddOperation("validate_template", true, "template is compliant", "")
		fmt.Fprintln(w, "checked: template is compliant")
	} else {
		rep.AddOperation("validate_template", false,
			fmt.Sprintf("%d structural violations", len(violations)), "")
		for _, v := range violations {
			fmt.Fprintf(w, "violation: %s\n", v)
		}
	}

	rep.Metrics.Metadata = metadata.Extract(doc.Content)
	rep.AddOperation("extract_metadata", true, fmt.Sprintf(
		"%d sections, %d endpoints, %d data models, %d error codes",
		len(rep.Metrics.Sections), rep.Metrics.Endpoints,
		rep.Metrics.DataModels, rep.Metrics.ErrorCodes), "")

	// Strict unless advisory was asked for explicitly.
	if len(violations) > 0 && cfg.Policy != types.PolicyAdvisory {
		fmt.Fprintln(w, "skipped: generation (strict policy, template has violations)")
		finish(cfg, deps, rep, started, w)
		return rep, ErrValidationFailed
	}

	generate(cfg, deps, rep, doc, w)
	finish(cfg, deps, rep, started, w)
	return rep, nil
}

// generate produces every requested artifact plus the OpenAPI description
// files. Converter failures become warnings; the run continues.
func generate(cfg types.GeneratorConfig, deps Deps, rep *report.Report, doc *types.Document, w io.Writer) {
	spec := openapi.Build()
	rep.AddOperation("generate_openapi_spec", true, "OpenAPI specification generated", "")
	if err := openapi.Validate(spec); err != nil {
		rep.AddOperation("validate_openapi_spec", false, err.Error(), "")
	} else {
		rep.AddOperation("validate_openapi_spec", true, "OpenAPI specification is valid", "")
	}

	content := assemble.WithHeader(doc.Content, doc.Path, deps.Now())
	content, err := assemble.WithSpecAppendix(content, spec)
	if err != nil {
		// Keep the header-only text; the YAML appendix is additive.
		rep.AddWarning(fmt.Sprintf("spec appendix skipped: %v", err))
		content = assemble.WithHeader(doc.Content, doc.Path, deps.Now())
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		rep.AddOperation("create_output_dir", false, err.Error(), "")
		fmt.Fprintf(w, "failed:  create output dir (%v)\n", err)
		return
	}

	formats := types.ExpandFormats(cfg.Formats)
	for _, format := range formats {
		switch format {
		case types.FormatMarkdown:
			path, err := assemble.WriteMarkdown(cfg.OutputDir, content)
			if err != nil {
				rep.AddOperation("generate_markdown", false, err.Error(), "")
				fmt.Fprintf(w, "failed:  markdown (%v)\n", err)
				continue
			}
			rep.AddOperation("generate_markdown", true,
				fmt.Sprintf("Markdown documentation generated at %s", path), path)
			fmt.Fprintf(w, "written: %s\n", path)

		case types.FormatHTML:
			convertArtifact(cfg, deps, rep, "generate_html", content,
				filepath.Join(cfg.OutputDir, htmlArtifact), types.FormatHTML, w)

		case types.FormatPDF:
			convertArtifact(cfg, deps, rep, "generate_pdf", content,
				filepath.Join(cfg.OutputDir, pdfArtifact), types.FormatPDF, w)
		}
	}

	jsonPath := filepath.Join(cfg.OutputDir, specJSONArtifact)
	if err := openapi.WriteJSON(spec, jsonPath); err != nil {
		rep.AddOperation("save_openapi_json", false, err.Error(), "")
	} else {
		rep.AddOperation("save_openapi_json", true,
			fmt.Sprintf("OpenAPI JSON spec saved to %s", jsonPath), jsonPath)
		fmt.Fprintf(w, "written: %s\n", jsonPath)
	}

	yamlPath := filepath.Join(cfg.OutputDir, specYAMLArtifact)
	if err := openapi.WriteYAML(spec, yamlPath); err != nil {
		rep.AddOperation("save_openapi_yaml", false, err.Error(), "")
	} else {
		rep.AddOperation("save_openapi_yaml", true,
			fmt.Sprintf("OpenAPI YAML spec saved to %s", yamlPath), yamlPath)
		fmt.Fprintf(w, "written: %s\n", yamlPath)
	}
}

// convertArtifact runs one external conversion, downgrading any failure to
// a warning so the run continues with the artifact absent.
func convertArtifact(cfg types.GeneratorConfig, deps Deps, rep *report.Report, opName, content, outPath string, format types.OutputFormat, w io.Writer) {
	conv, err := deps.NewConverter(cfg.Convert, format)
	if err == nil {
		err = conv.Convert(content, outPath)
	}
	if err != nil {
		msg := fmt.Sprintf("%s conversion failed: %v", format, err)
		rep.AddOperation(opName, false, msg, "")
		rep.AddWarning(msg)
		fmt.Fprintf(w, "warning: %s\n", msg)
		return
	}
	rep.AddOperation(opName, true, fmt.Sprintf("%s documentation generated at %s", format, outPath), outPath)
	fmt.Fprintf(w, "written: %s\n", outPath)
}

// finish stamps the summary, writes the JSON report, records history, and
// prints the closing summary line.
func finish(cfg types.GeneratorConfig, deps Deps, rep *report.Report, started time.Time, w io.Writer) {
	rep.Finish(started)

	path, err := rep.Write(cfg.Report.Dir)
	if err != nil {
		rep.AddWarning(fmt.Sprintf("report not written: %v", err))
		fmt.Fprintf(w, "warning: report not written (%v)\n", err)
	} else {
		fmt.Fprintf(w, "report:  %s\n", path)
	}

	if cfg.Report.HistoryEnabled {
		if err := recordHistory(cfg.Report.Dir, rep); err != nil {
			rep.AddWarning(fmt.Sprintf("history not recorded: %v", err))
			fmt.Fprintf(w, "warning: history not recorded (%v)\n", err)
		}
	}

	fmt.Fprintf(w, "\nRun summary: %d/%d operations succeeded, %d warnings\n",
		rep.Summary.Successful, rep.Summary.Total, len(rep.Warnings))
}

func recordHistory(dir string, rep *report.Report) error {
	h, err := report.OpenHistory(dir)
	if err != nil {
		return err
	}
	defer h.Close()
	return h.Record(rep)
}

// ValidateOnly loads and checks the template without generating anything.
// It returns the violation list; a load failure is returned as an error.
func ValidateOnly(templatePath string, w io.Writer) ([]string, error) {
	doc, err := template.Load(templatePath)
	if err != nil {
		return nil, err
	}

	violations := check.Check(doc.Content)
	if len(violations) == 0 {
		meta := metadata.Extract(doc.Content)
		fmt.Fprintf(w, "compliant: %s (%d sections, %d endpoints, %d data models, %d error codes)\n",
			doc.Path, len(meta.Sections), meta.Endpoints, meta.DataModels, meta.ErrorCodes)
		return nil, nil
	}
	for _, v := range violations {
		fmt.Fprintf(w, "violation: %s\n", v)
	}
	return violations, nil
}
