// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MeIver/agriculture-monitoring-system/internal/pipeline"
	"github.com/MeIver/agriculture-monitoring-system/pkg/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the template without generating anything",
	Long: `Validate loads the template and runs the structural checklist. No
Markdown, HTML, PDF, or OpenAPI artifacts are written. The exit code is 0
when the template is compliant and 1 on any violation or load failure.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := generatorConfig()
		if v, _ := cmd.Flags().GetString("template"); cmd.Flags().Changed("template") {
			cfg.Template.Path = v
		}

		violations, err := pipeline.ValidateOnly(cfg.Template.Path, os.Stdout)
		if err != nil {
			return err
		}
		if len(violations) > 0 {
			return fmt.Errorf("%d structural violations", len(violations))
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().String("template", types.DefaultTemplatePath, "path to the Markdown template")

	rootCmd.AddCommand(validateCmd)
}
