package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketSeries_LookupHeadAndTotals(t *testing.T) {
	t.Parallel()

	series := &BucketSeries{
		Granularity: Granularity15Minutes,
		Buckets: []TimeBucket{
			{Label: "2024-10-10 10:00", Counts: map[StatusClass]int64{StatusClass2xx: 2, StatusClass4xx: 1}},
			{Label: "2024-10-10 11:00", Counts: map[StatusClass]int64{StatusClass5xx: 1}},
			{Label: "2024-10-10 12:30", Counts: map[StatusClass]int64{StatusClass3xx: 4}},
		},
	}

	bucket, ok := series.Bucket("2024-10-10 10:00")
	assert.True(t, ok)
	assert.Equal(t, int64(3), bucket.Total())

	_, ok = series.Bucket("2024-10-10 10:15")
	assert.False(t, ok)

	assert.Len(t, series.Head(2), 2)
	assert.Equal(t, "2024-10-10 11:00", series.Head(2)[1].Label)
	assert.Len(t, series.Head(10), 3)
	assert.Equal(t, int64(8), series.Total())
}

func TestParseStats(t *testing.T) {
	t.Parallel()

	stats := NewParseStats()
	stats.RecordParsed()
	stats.RecordDrop("malformed_line")
	stats.RecordDrop("malformed_line")
	stats.RecordDrop("unparsable_timestamp")

	assert.Equal(t, int64(4), stats.Lines)
	assert.Equal(t, int64(1), stats.Parsed)
	assert.Equal(t, int64(3), stats.Dropped)
	assert.Equal(t, map[string]int64{"malformed_line": 2, "unparsable_timestamp": 1}, stats.DroppedByReason)
}
