package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// periodic runs one cycle function on a fixed interval. A cycle that overruns the
// interval makes the next tick be skipped rather than run concurrently.
type periodic struct {
	name     string
	interval time.Duration
	cycle    func(ctx context.Context)
	cron     *cron.Cron
	logger   *slog.Logger
}

func newPeriodic(name string, interval time.Duration, cycle func(ctx context.Context), logger *slog.Logger) (*periodic, error) {
	if interval < time.Second {
		return nil, errs.NewValueIsOutOfRangeErrorWithCause(name+" interval", interval, time.Second, "none",
			errors.New("cron schedules have one-second resolution"))
	}
	if interval%time.Second != 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(name+" interval is invalid",
			fmt.Errorf("%s is not a whole number of seconds", interval))
	}

	cl := cronLogger{logger: logger}
	return &periodic{
		name:     name,
		interval: interval,
		cycle:    cycle,
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger: logger,
	}, nil
}

func (p *periodic) start() {
	p.cron.Schedule(cron.Every(p.interval), cron.FuncJob(func() {
		p.cycle(context.Background())
	}))
	p.cron.Start()
	p.logger.Info(p.name+" started", "interval", p.interval)
}

// stop halts the schedule and waits for a running cycle to return.
func (p *periodic) stop() {
	<-p.cron.Stop().Done()
	p.logger.Info(p.name + " stopped")
}
