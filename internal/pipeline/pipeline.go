package pipeline

import (
	"context"
	"fmt"
	"io"

	"oppstrength/internal/components/telemetry"
	"oppstrength/internal/linker"
	"oppstrength/internal/report"
	"oppstrength/internal/strength"
	"oppstrength/internal/transfermarkt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	report_pipeline_run  = "pipeline.run"
	report_pipeline_link = "pipeline.link"
)

var tracer = telemetry.Tracer("oppstrength.pipeline")

// Source provides both inputs of a ranking, implemented by transfermarkt.Client
// and transfermarkt.FileSource.
type Source interface {
	Valuations(ctx context.Context, competition transfermarkt.Competition) (strength.TeamValuation, error)
	Fixtures(ctx context.Context, competition transfermarkt.Competition) (*strength.OpponentMap, error)
}

type Options struct {
	// LinkNames copies valuations onto fixture names that only approximately
	// match a listing name.
	LinkNames     bool
	LinkThreshold float64
	// Render produces the HTML document, otherwise Result.Document is nil.
	Render bool
	Report report.Options
}

const DefaultLinkThreshold = 0.9

type Result struct {
	Competition transfermarkt.Competition
	Rows        []strength.Row
	Links       []linker.Link
	Document    []byte
	// Filename the document should be written under.
	Filename string
}

func stage[T any](ctx context.Context, name string, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, span := tracer.Start(ctx, name)
	defer span.End()

	out, err := fn(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return out, err
}

// Run fetches both pages of a competition, ranks its teams and optionally renders
// the report. Progress lines are written to progress, a failure in any stage aborts
// the run without a result.
func Run(
	ctx context.Context,
	src Source,
	competition transfermarkt.Competition,
	opts Options,
	tel telemetry.API,
	progress io.Writer,
) (Result, error) {
	tel = telemetry.NewScopedAPI("pipeline", tel)

	ctx, span := tracer.Start(ctx, "pipeline.Run", trace.WithAttributes(
		attribute.String("competition.code", competition.Code),
		attribute.String("competition.name", competition.Name),
	))
	defer span.End()

	fmt.Fprintf(progress, "\nScraping %s team values...\n", competition.Name)
	values, err := stage(ctx, "valuations", func(ctx context.Context) (strength.TeamValuation, error) {
		return src.Valuations(ctx, competition)
	})
	if err != nil {
		tel.ReportBroken(report_pipeline_run, err, "valuations")
		return Result{}, err
	}

	fmt.Fprintf(progress, "Scraping %s fixtures...\n", competition.Name)
	opponents, err := stage(ctx, "fixtures", func(ctx context.Context) (*strength.OpponentMap, error) {
		return src.Fixtures(ctx, competition)
	})
	if err != nil {
		tel.ReportBroken(report_pipeline_run, err, "fixtures")
		return Result{}, err
	}

	result := Result{Competition: competition}

	if opts.LinkNames {
		threshold := opts.LinkThreshold
		if threshold <= 0 {
			threshold = DefaultLinkThreshold
		}
		values, result.Links = linker.Reconcile(opponents.Teams(), values, threshold)
		for _, link := range result.Links {
			tel.ReportDebug(report_pipeline_link, link.Left, link.Right, link.Correlation)
		}
	}

	fmt.Fprintln(progress, "Calculating average opponent values and sorting opponents...")
	_, calcSpan := tracer.Start(ctx, "calculate")
	result.Rows = strength.Calculate(opponents, values)
	calcSpan.SetAttributes(attribute.Int("rows", len(result.Rows)))
	calcSpan.End()

	if !opts.Render {
		return result, nil
	}

	result.Document, err = stage(ctx, "render", func(context.Context) ([]byte, error) {
		return report.Render(result.Rows, competition.Name, opts.Report)
	})
	if err != nil {
		tel.ReportBroken(report_pipeline_run, err, "render")
		return Result{}, err
	}
	result.Filename = report.Filename(competition.Name)

	return result, nil
}
