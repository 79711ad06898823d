package commands

import (
	"fmt"
	"os"

	"oppstrength/internal/components/telemetry"
	"oppstrength/internal/pipeline"
	"oppstrength/internal/report"

	"github.com/spf13/cobra"
)

var rankMarkdown *bool

func init() {
	rankMarkdown = rankCmd.Flags().Bool("markdown", false, "Print the ranking as a markdown table.")
	rootCmd.AddCommand(rankCmd)
}

var rankCmd = &cobra.Command{
	Use:   "rank [--competition <n>] [--markdown]",
	Short: "Prints the ranking of a competition without writing a report.",
	RunE: func(cmd *cobra.Command, args []string) error {
		comp, err := resolveCompetition()
		if err != nil {
			return fmt.Errorf("select competition: %w", err)
		}

		tel := telemetry.SlogAPI{}
		src, err := newSource(tel)
		if err != nil {
			return fmt.Errorf("create source: %w", err)
		}

		result, err := pipeline.Run(cmd.Context(), src, comp, cfg.PipelineOptions(), tel, os.Stderr)
		if err != nil {
			return fmt.Errorf("rank %s: %w", comp.Name, err)
		}

		report.RenderTable(os.Stdout, result.Rows, *rankMarkdown)
		return nil
	},
}
