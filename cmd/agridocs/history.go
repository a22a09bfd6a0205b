// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/MeIver/agriculture-monitoring-system/internal/report"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent documentation runs",
	Long: `History prints recent runs from the run-history database in the reports
directory, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := generatorConfig()
		limit, _ := cmd.Flags().GetInt("limit")

		h, err := report.OpenHistory(cfg.Report.Dir)
		if err != nil {
			return err
		}
		defer h.Close()

		runs, err := h.Recent(limit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No recorded runs.")
			return nil
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TIME\tTEMPLATE\tFORMATS\tARTIFACTS\tERRORS\tWARNINGS\tSTATUS")
		for _, r := range runs {
			status := "ok"
			if !r.Success {
				status = "failed"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
				r.Timestamp.Format(time.RFC3339), r.Template, r.Formats,
				r.Artifacts, r.Errors, r.Warnings, status)
		}
		return tw.Flush()
	},
}

func init() {
	historyCmd.Flags().Int("limit", 10, "maximum number of runs to list")

	rootCmd.AddCommand(historyCmd)
}
