package models

import "sort"

// TimeBucket holds the per-status-class request counts of one bucket.
type TimeBucket struct {
	Label  string                `json:"label"`
	Counts map[StatusClass]int64 `json:"counts"`
}

// Total sums the counts of every status class in the bucket.
func (b TimeBucket) Total() int64 {
	var total int64
	for _, count := range b.Counts {
		total += count
	}
	return total
}

// BucketSeries is the ordered bucket map produced by one aggregation pass.
// Buckets are sorted ascending by label, which is also chronological order.
type BucketSeries struct {
	Day         Day          `json:"day"`
	Granularity Granularity  `json:"granularity"`
	Buckets     []TimeBucket `json:"buckets"`
	// Dropped counts input lines that never became records.
	Dropped int64 `json:"dropped"`
}

// Bucket looks a bucket up by label.
func (s *BucketSeries) Bucket(label string) (TimeBucket, bool) {
	i := sort.Search(len(s.Buckets), func(i int) bool { return s.Buckets[i].Label >= label })
	if i < len(s.Buckets) && s.Buckets[i].Label == label {
		return s.Buckets[i], true
	}
	return TimeBucket{}, false
}

// Head returns the first n buckets chronologically. It is a display cap only.
func (s *BucketSeries) Head(n int) []TimeBucket {
	if n < 0 || n >= len(s.Buckets) {
		return s.Buckets
	}
	return s.Buckets[:n]
}

// Total sums every count in the series.
func (s *BucketSeries) Total() int64 {
	var total int64
	for _, bucket := range s.Buckets {
		total += bucket.Total()
	}
	return total
}
