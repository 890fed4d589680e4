package aggregators

import (
	"fmt"
	"sort"
	"time"

	"weblog-analytics/internal/models"
)

// TimeBucketAggregator groups the records of one day into fixed-width buckets and counts
// requests per status class in each bucket.
type TimeBucketAggregator interface {
	// Aggregate keeps the records whose local date in loc equals day, floors each timestamp to
	// granularity and tallies (bucket, status class) pairs. dropped is carried into the series
	// untouched. The series is never capped.
	Aggregate(records []*models.LogRecord, dropped int64, day models.Day, granularity models.Granularity, loc *time.Location) (*models.BucketSeries, error)
}

type timeBucketAggregator struct{}

func NewTimeBucketAggregator() TimeBucketAggregator {
	return &timeBucketAggregator{}
}

func (a *timeBucketAggregator) Aggregate(records []*models.LogRecord, dropped int64, day models.Day, granularity models.Granularity, loc *time.Location) (*models.BucketSeries, error) {
	if !granularity.IsValid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidGranularity, granularity)
	}
	if loc == nil {
		return nil, fmt.Errorf("aggregate: nil location")
	}

	byLabel := make(map[string]map[models.StatusClass]int64)
	var outOfDay int
	for _, record := range records {
		if !day.Contains(record.Timestamp, loc) {
			outOfDay++
			continue
		}
		label := granularity.Label(record.Timestamp, loc)
		counts, ok := byLabel[label]
		if !ok {
			counts = make(map[models.StatusClass]int64)
			byLabel[label] = counts
		}
		counts[record.StatusClass()]++
	}
	metricRecordsAggregatedTotal.WithLabelValues(resultInDay).Add(float64(len(records) - outOfDay))
	metricRecordsAggregatedTotal.WithLabelValues(resultOutOfDay).Add(float64(outOfDay))

	buckets := make([]models.TimeBucket, 0, len(byLabel))
	for label, counts := range byLabel {
		buckets = append(buckets, models.TimeBucket{Label: label, Counts: counts})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Label < buckets[j].Label })

	return &models.BucketSeries{
		Day:         day,
		Granularity: granularity,
		Buckets:     buckets,
		Dropped:     dropped,
	}, nil
}
