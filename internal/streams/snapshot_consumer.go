package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"weblog-analytics/internal/models"
	"weblog-analytics/internal/shared/loggers"
	"weblog-analytics/internal/shared/metrics"
	"weblog-analytics/internal/shared/svcerrors"
	"weblog-analytics/internal/stores"
)

// SnapshotConsumer is the single reader of the snapshot queue. It publishes each snapshot to
// readers with one atomic pointer swap, then persists its summary.
//
//go:generate mockgen -source=snapshot_consumer.go -destination=./mocks/snapshot_consumer_mock.go -package=mocks
type SnapshotConsumer interface {
	Start(ctx context.Context)
	Stop()
	// Latest returns the newest consumed snapshot, or nil before the first one.
	Latest() *models.DashboardSnapshot
}

type snapshotConsumer struct {
	queue         *LatestQueue[*models.DashboardSnapshot]
	snapshotStore stores.SnapshotStore
	latest        atomic.Pointer[models.DashboardSnapshot]

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewSnapshotConsumer(queue *LatestQueue[*models.DashboardSnapshot], snapshotStore stores.SnapshotStore, logger loggers.Logger) SnapshotConsumer {
	return &snapshotConsumer{
		queue:         queue,
		snapshotStore: snapshotStore,
		stopCh:        make(chan struct{}),
		logger:        logger,
	}
}

// Start spawns the worker goroutine.
func (consumer *snapshotConsumer) Start(ctx context.Context) {
	consumer.wg.Add(1)
	go func() {
		defer consumer.wg.Done()

		consumer.run(ctx)
	}()
}

// Stop waits for the worker to stop (best called during app shutdown).
func (consumer *snapshotConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *snapshotConsumer) Latest() *models.DashboardSnapshot {
	return consumer.latest.Load()
}

func (consumer *snapshotConsumer) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case snapshot := <-consumer.queue.Messages():
			consumer.consume(ctx, snapshot)
		}
	}
}

func (consumer *snapshotConsumer) consume(ctx context.Context, snapshot *models.DashboardSnapshot) {
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricSnapshotConsumedTotal.WithLabelValues(streamSnapshot, svcErr.Code).Inc()
		}
	}()

	ctx = consumer.logger.With().
		Str(loggers.FieldSnapshotID, snapshot.ID).
		Logger().WithContext(ctx)
	logger := loggers.Ctx(ctx)

	previous := consumer.latest.Swap(snapshot)
	metricLatestSnapshotGeneratedAt.Set(float64(snapshot.GeneratedAt.Unix()))
	if previous != nil {
		logger.Debug().Str("previous_snapshot_id", previous.ID).Msg("replaced snapshot")
	}

	if err := consumer.snapshotStore.Put(ctx, snapshot); err != nil {
		svcErr := errInternalSnapshotStoreFailed(err)
		logger.Error().Err(err).Str(loggers.FieldErrorCode, svcErr.Code).Msg("failed to persist snapshot")
		metricSnapshotConsumedTotal.WithLabelValues(streamSnapshot, svcErr.Code).Inc()
		return
	}

	logger.Info().Msg("published snapshot")
	metricSnapshotConsumedTotal.WithLabelValues(streamSnapshot, metrics.ValueNoError).Inc()
}
