package aggregators

import (
	"testing"
	"time"

	"weblog-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ict = time.FixedZone("ICT", 7*60*60)

var testDay = models.Day{Year: 2024, Month: time.October, Day: 10}

func record(address string, hour, minute, status int) *models.LogRecord {
	return &models.LogRecord{
		ClientAddress: address,
		Timestamp:     time.Date(2024, time.October, 10, hour, minute, 0, 0, ict),
		Method:        "GET",
		Path:          "/",
		StatusCode:    status,
	}
}

func TestTimeBucketAggregator_QuarterHourScenario(t *testing.T) {
	t.Parallel()

	records := []*models.LogRecord{
		record("10.0.0.1", 10, 3, 200),
		record("10.0.0.2", 10, 7, 404),
		record("10.0.0.1", 10, 20, 200),
		record("10.0.0.3", 11, 5, 500),
		{ClientAddress: "10.0.0.9", Timestamp: time.Date(2024, time.October, 11, 0, 5, 0, 0, ict), StatusCode: 200},
	}

	series, err := NewTimeBucketAggregator().Aggregate(records, 3, testDay, models.Granularity15Minutes, ict)
	require.NoError(t, err)

	assert.Equal(t, testDay, series.Day)
	assert.Equal(t, models.Granularity15Minutes, series.Granularity)
	assert.Equal(t, int64(3), series.Dropped)
	assert.Equal(t, []models.TimeBucket{
		{Label: "2024-10-10 10:00", Counts: map[models.StatusClass]int64{models.StatusClass2xx: 1, models.StatusClass4xx: 1}},
		{Label: "2024-10-10 10:15", Counts: map[models.StatusClass]int64{models.StatusClass2xx: 1}},
		{Label: "2024-10-10 11:00", Counts: map[models.StatusClass]int64{models.StatusClass5xx: 1}},
	}, series.Buckets)
}

func TestTimeBucketAggregator_Granularities(t *testing.T) {
	t.Parallel()

	records := []*models.LogRecord{
		record("a", 0, 0, 200),
		record("a", 1, 59, 301),
		record("a", 13, 30, 200),
		record("a", 23, 59, 502),
	}

	tests := []struct {
		granularity models.Granularity
		labels      []string
	}{
		{models.Granularity30Minutes, []string{"2024-10-10 00:00", "2024-10-10 01:30", "2024-10-10 13:30", "2024-10-10 23:30"}},
		{models.Granularity1Hour, []string{"2024-10-10 00:00", "2024-10-10 01:00", "2024-10-10 13:00", "2024-10-10 23:00"}},
		{models.Granularity2Hours, []string{"2024-10-10 00:00", "2024-10-10 12:00", "2024-10-10 22:00"}},
		{models.Granularity12Hours, []string{"2024-10-10 00:00", "2024-10-10 12:00"}},
		{models.Granularity1Day, []string{"2024-10-10"}},
	}

	aggregator := NewTimeBucketAggregator()
	for _, tt := range tests {
		t.Run(string(tt.granularity), func(t *testing.T) {
			t.Parallel()
			series, err := aggregator.Aggregate(records, 0, testDay, tt.granularity, ict)
			require.NoError(t, err)

			labels := make([]string, 0, len(series.Buckets))
			for _, bucket := range series.Buckets {
				labels = append(labels, bucket.Label)
			}
			assert.Equal(t, tt.labels, labels)
			assert.Equal(t, int64(len(records)), series.Total())
		})
	}
}

func TestTimeBucketAggregator_UsesGivenLocation(t *testing.T) {
	t.Parallel()

	// 2024-10-10 01:00 ICT is still 2024-10-09 in UTC
	records := []*models.LogRecord{record("a", 1, 0, 200)}
	aggregator := NewTimeBucketAggregator()

	series, err := aggregator.Aggregate(records, 0, testDay, models.Granularity1Hour, ict)
	require.NoError(t, err)
	assert.Len(t, series.Buckets, 1)

	series, err = aggregator.Aggregate(records, 0, testDay, models.Granularity1Hour, time.UTC)
	require.NoError(t, err)
	assert.Empty(t, series.Buckets)
}

func TestTimeBucketAggregator_Empty(t *testing.T) {
	t.Parallel()

	series, err := NewTimeBucketAggregator().Aggregate(nil, 2, testDay, models.Granularity15Minutes, ict)
	require.NoError(t, err)
	assert.NotNil(t, series.Buckets)
	assert.Empty(t, series.Buckets)
	assert.Equal(t, int64(2), series.Dropped)
	assert.Equal(t, int64(0), series.Total())
}

func TestTimeBucketAggregator_InvalidGranularity(t *testing.T) {
	t.Parallel()

	series, err := NewTimeBucketAggregator().Aggregate(nil, 0, testDay, models.Granularity("5m"), ict)
	assert.Nil(t, series)
	assert.ErrorIs(t, err, models.ErrInvalidGranularity)
}
