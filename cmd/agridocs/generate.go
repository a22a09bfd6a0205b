// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MeIver/agriculture-monitoring-system/internal/pipeline"
	"github.com/MeIver/agriculture-monitoring-system/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate API documentation from the template",
	Long: `Generate runs the full documentation pipeline: the template is loaded,
checked against the structural checklist, and emitted in the requested
formats alongside the OpenAPI description files. A JSON generation report
is written to the reports directory.

HTML and PDF go through an external converter (pandoc, or headless Chrome
for PDF when configured); a converter failure is a warning, not an abort.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := generatorConfig()

		if v, _ := cmd.Flags().GetString("template"); cmd.Flags().Changed("template") {
			cfg.Template.Path = v
		}
		if v, _ := cmd.Flags().GetString("output-dir"); cmd.Flags().Changed("output-dir") {
			cfg.OutputDir = v
		}
		if cmd.Flags().Changed("format") {
			raw, _ := cmd.Flags().GetStringSlice("format")
			cfg.Formats = nil
			for _, f := range raw {
				cfg.Formats = append(cfg.Formats, types.OutputFormat(f))
			}
		}
		if v, _ := cmd.Flags().GetString("policy"); cmd.Flags().Changed("policy") {
			cfg.Policy = types.ValidationPolicy(v)
		}

		for _, f := range cfg.Formats {
			if !f.Valid() {
				return fmt.Errorf("unknown format %q (expected markdown, html, pdf, or all)", f)
			}
		}
		switch cfg.Policy {
		case types.PolicyStrict, types.PolicyAdvisory:
		default:
			return fmt.Errorf("unknown policy %q (expected strict or advisory)", cfg.Policy)
		}

		_, err := pipeline.Run(cfg, pipeline.DefaultDeps(), os.Stdout)
		return err
	},
}

func init() {
	generateCmd.Flags().String("template", types.DefaultTemplatePath, "path to the Markdown template")
	generateCmd.Flags().String("output-dir", types.DefaultOutputDir, "directory for generated artifacts")
	generateCmd.Flags().StringSlice("format", []string{"all"}, "output formats: markdown, html, pdf, or all")
	generateCmd.Flags().String("policy", string(types.PolicyStrict), "validation policy: strict or advisory")

	rootCmd.AddCommand(generateCmd)
}
