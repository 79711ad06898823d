package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"oppstrength/internal/components/chrono"
	"oppstrength/internal/components/telemetry"
	"oppstrength/internal/pipeline"
	"oppstrength/internal/report"
	"oppstrength/internal/transfermarkt"

	"github.com/spf13/cobra"
)

var scheduleSpec *string

func init() {
	scheduleSpec = scheduleCmd.Flags().String("cron", "0 6 * * *", "Cron spec the reports are rewritten on.")
	rootCmd.AddCommand(scheduleCmd)
}

// rewriteReports writes a fresh report per competition, a failing competition
// doesn't stop the others.
func rewriteReports(ctx context.Context, src pipeline.Source, competitions []transfermarkt.Competition, tel telemetry.API) {
	opts := cfg.PipelineOptions()
	opts.Render = true
	for _, comp := range competitions {
		result, err := pipeline.Run(ctx, src, comp, opts, tel, io.Discard)
		if err != nil {
			// already reported by the pipeline
			continue
		}
		path, err := report.WriteFile(cfg.OutputDir, comp.Name, result.Document)
		if err != nil {
			tel.ReportBroken("schedule.write", err, comp.Name)
			continue
		}
		slog.Info("report written", "competition", comp.Name, "path", path)
	}
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule [--cron <spec>] [--competition <n>]",
	Short: "Keeps rewriting the reports on a schedule, every competition unless one is given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		competitions := transfermarkt.Competitions
		if *competition != "" {
			comp, err := resolveCompetition()
			if err != nil {
				return fmt.Errorf("select competition: %w", err)
			}
			competitions = []transfermarkt.Competition{comp}
		}

		tel := telemetry.SlogAPI{}
		src, err := newSource(tel)
		if err != nil {
			return fmt.Errorf("create source: %w", err)
		}

		ctx := cmd.Context()
		scheduler := chrono.NewStandardCron(ctx, nil, tel)
		err = scheduler.Cron(*scheduleSpec, func(ctx context.Context) {
			rewriteReports(ctx, src, competitions, tel)
		})
		if err != nil {
			return fmt.Errorf("schedule reports: %w", err)
		}

		scheduler.Start()
		slog.Info("reports scheduled", "cron", *scheduleSpec, "next", scheduler.Next())
		<-ctx.Done()
		scheduler.Stop()
		return nil
	},
}
