package chrono

import (
	"context"
	"fmt"
	"time"

	"oppstrength/internal/components/telemetry"

	"github.com/robfig/cron/v3"
)

// CronAPI is what anything that runs on a schedule should depend on.
type CronAPI interface {
	Cron(spec string, callback func(ctx context.Context)) error
}

// StandardCron implements CronAPI with `github.com/robfig/cron/v3`. A job that is
// still running when it is due again is skipped.
type StandardCron struct {
	cron *cron.Cron
	ctx  context.Context
}

// NewStandardCron creates a stopped scheduler, callbacks receive ctx.
func NewStandardCron(ctx context.Context, location *time.Location, tel telemetry.API) *StandardCron {
	if location == nil {
		location = time.Local
	}
	logger := cronLogger{tel: telemetry.NewScopedAPI("cron", tel)}
	return &StandardCron{
		cron: cron.New(
			cron.WithLogger(logger),
			cron.WithLocation(location),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		ctx: ctx,
	}
}

func (s *StandardCron) Cron(spec string, callback func(ctx context.Context)) error {
	_, err := s.cron.AddFunc(spec, func() {
		callback(s.ctx)
	})
	if err != nil {
		return fmt.Errorf("cron spec %q: %w", spec, err)
	}
	return nil
}

// Next is the next time any job is due, zero when nothing is scheduled or the
// scheduler isn't running.
func (s *StandardCron) Next() time.Time {
	var next time.Time
	for _, e := range s.cron.Entries() {
		if next.IsZero() || (!e.Next.IsZero() && e.Next.Before(next)) {
			next = e.Next
		}
	}
	return next
}

func (s *StandardCron) Start() {
	s.cron.Start()
}

// Stop stops scheduling and waits for running jobs to return.
func (s *StandardCron) Stop() {
	<-s.cron.Stop().Done()
}

type cronLogger struct {
	tel telemetry.API
}

func (l cronLogger) formatParams(keysAndValues []any) []any {
	params := []any{}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		params = append(params, fmt.Sprintf("%v: %v", keysAndValues[i], keysAndValues[i+1]))
	}
	return params
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.tel.ReportDebug(msg, l.formatParams(keysAndValues)...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.tel.ReportBroken(
		"cron",
		fmt.Errorf("%s: %w", msg, err),
		l.formatParams(keysAndValues),
	)
}
