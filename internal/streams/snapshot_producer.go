package streams

import (
	"context"

	"weblog-analytics/internal/models"
)

// SnapshotProducer hands completed dashboard snapshots to the snapshot consumer. Snapshots are
// never queued up: if the consumer has not taken the previous one yet, it is replaced.
//
//go:generate mockgen -source=snapshot_producer.go -destination=./mocks/snapshot_producer_mock.go -package=mocks
type SnapshotProducer interface {
	Produce(ctx context.Context, snapshot *models.DashboardSnapshot) error
}

type snapshotProducer struct {
	queue *LatestQueue[*models.DashboardSnapshot]
}

func NewSnapshotProducer(queue *LatestQueue[*models.DashboardSnapshot]) SnapshotProducer {
	return &snapshotProducer{queue: queue}
}

func (producer *snapshotProducer) Produce(ctx context.Context, snapshot *models.DashboardSnapshot) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if producer.queue.Publish(snapshot) {
		metricSnapshotReplacedTotal.WithLabelValues(streamSnapshot).Inc()
	}
	metricSnapshotProducedTotal.WithLabelValues(streamSnapshot).Inc()
	return nil
}
