package pipelines

import (
	"context"
	"errors"
	"sync"
	"time"

	"weblog-analytics/internal/models"
	"weblog-analytics/internal/shared/loggers"
)

// Refresher re-runs the dashboard pipeline on a fixed period. The first pass starts right away.
// A tick that finds a pass still running is skipped.
type Refresher interface {
	Start(ctx context.Context)
	// Stop ends the loop and waits for it. A pass that is running finishes first.
	Stop()
}

type refresher struct {
	pipeline DashboardPipeline
	interval time.Duration

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewRefresher(pipeline DashboardPipeline, interval time.Duration, logger loggers.Logger) Refresher {
	return &refresher{
		pipeline: pipeline,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

func (r *refresher) Start(ctx context.Context) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		r.run(ctx)
	}()
}

func (r *refresher) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}

func (r *refresher) run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stopCh:
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *refresher) tick(ctx context.Context) {
	ctx = r.logger.WithContext(ctx)
	_, err := r.pipeline.Run(ctx, models.Day{}, "")
	switch {
	case err == nil:
	case errors.Is(err, ErrPassInProgress):
		metricTicksSkippedTotal.WithLabelValues().Inc()
		r.logger.Debug().Msg("skipped refresh tick, pass in progress")
	default:
		r.logger.Warn().Err(err).Msg("refresh pass failed")
	}
}
