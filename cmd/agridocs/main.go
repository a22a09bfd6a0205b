// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the agridocs CLI, the API
// documentation generator for the agriculture monitoring system.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeIver/agriculture-monitoring-system/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the agridocs CLI.
var rootCmd = &cobra.Command{
	Use:   "agridocs",
	Short: "Generate API documentation for the agriculture monitoring system",
	Long: `agridocs loads the Markdown API-documentation template, checks it against
the structural checklist, and emits the documentation as Markdown, HTML, and
PDF together with the OpenAPI 3.0 description and a JSON generation report.

Each operation is a subcommand: generate runs the full pipeline, validate
checks the template without writing anything, and history lists past runs.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./agridocs.yaml or ~/.config/agridocs/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("agridocs")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "agridocs"))
		}
	}

	viper.SetEnvPrefix("AGRIDOCS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// generatorConfig builds the run configuration: defaults first, then any
// values from the viper config file or environment.
func generatorConfig() types.GeneratorConfig {
	cfg := types.DefaultConfig()

	if v := viper.GetString("template.path"); v != "" {
		cfg.Template.Path = v
	}
	if v := viper.GetString("output_dir"); v != "" {
		cfg.OutputDir = v
	}
	if v := viper.GetStringSlice("formats"); len(v) > 0 {
		cfg.Formats = nil
		for _, f := range v {
			cfg.Formats = append(cfg.Formats, types.OutputFormat(f))
		}
	}
	if v := viper.GetString("policy"); v != "" {
		cfg.Policy = types.ValidationPolicy(v)
	}
	if v := viper.GetString("convert.backend"); v != "" {
		cfg.Convert.Backend = types.ConvertBackend(v)
	}
	if viper.IsSet("convert.timeout") {
		cfg.Convert.Timeout = viper.GetDuration("convert.timeout")
	}
	if v := viper.GetString("report.dir"); v != "" {
		cfg.Report.Dir = v
	}
	if viper.IsSet("report.history_enabled") {
		cfg.Report.HistoryEnabled = viper.GetBool("report.history_enabled")
	}

	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
