package commands

import (
	"fmt"
	"os"

	"oppstrength/internal/components/telemetry"
	"oppstrength/internal/pipeline"
	"oppstrength/internal/report"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report [--competition <n>] [--out <dir>]",
	Short: "Writes the ranking of a competition as an HTML report.",
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, _ []string) error {
	comp, err := resolveCompetition()
	if err != nil {
		return fmt.Errorf("select competition: %w", err)
	}

	tel := telemetry.SlogAPI{}
	src, err := newSource(tel)
	if err != nil {
		return fmt.Errorf("create source: %w", err)
	}

	opts := cfg.PipelineOptions()
	opts.Render = true
	result, err := pipeline.Run(cmd.Context(), src, comp, opts, tel, os.Stdout)
	if err != nil {
		return fmt.Errorf("rank %s: %w", comp.Name, err)
	}

	path, err := report.WriteFile(cfg.OutputDir, comp.Name, result.Document)
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Printf("\nHTML file created: %s\n", path)
	return nil
}
