package aggregators

import (
	"sort"
	"time"

	"weblog-analytics/internal/models"

	"github.com/mileusna/useragent"
)

const unknownLabel = "unknown"

// RankingEngine orders counts for display. Every ranking is sorted by count descending and,
// for equal counts, by label ascending. A limit <= 0 means no cap.
type RankingEngine interface {
	// RankStatusClasses sums each status class across all buckets. Classes never observed are
	// left out.
	RankStatusClasses(series *models.BucketSeries) []models.RankingEntry
	// RankTimeBuckets ranks buckets by their total request count.
	RankTimeBuckets(series *models.BucketSeries, limit int) []models.RankingEntry
	// RankClientAddresses counts the requests of each client address on day.
	RankClientAddresses(records []*models.LogRecord, day models.Day, loc *time.Location, limit int) []models.RankingEntry
	// RankUserAgents counts the requests of each browser family on day.
	RankUserAgents(records []*models.LogRecord, day models.Day, loc *time.Location, limit int) []models.RankingEntry
	// RankAttacks counts audit records per attack name. Records without one count as "unknown".
	RankAttacks(records []*models.AuditRecord, limit int) []models.RankingEntry
	// RankSeverities counts audit records per severity. Records without one count as "unknown".
	RankSeverities(records []*models.AuditRecord, limit int) []models.RankingEntry
}

type rankingEngine struct{}

func NewRankingEngine() RankingEngine {
	return &rankingEngine{}
}

func (e *rankingEngine) RankStatusClasses(series *models.BucketSeries) []models.RankingEntry {
	counts := make(map[string]int64)
	for _, bucket := range series.Buckets {
		for class, count := range bucket.Counts {
			if count > 0 {
				counts[string(class)] += count
			}
		}
	}
	return rank(counts, 0)
}

func (e *rankingEngine) RankTimeBuckets(series *models.BucketSeries, limit int) []models.RankingEntry {
	counts := make(map[string]int64, len(series.Buckets))
	for _, bucket := range series.Buckets {
		counts[bucket.Label] = bucket.Total()
	}
	return rank(counts, limit)
}

func (e *rankingEngine) RankClientAddresses(records []*models.LogRecord, day models.Day, loc *time.Location, limit int) []models.RankingEntry {
	counts := make(map[string]int64)
	for _, record := range records {
		if day.Contains(record.Timestamp, loc) {
			counts[record.ClientAddress]++
		}
	}
	return rank(counts, limit)
}

func (e *rankingEngine) RankUserAgents(records []*models.LogRecord, day models.Day, loc *time.Location, limit int) []models.RankingEntry {
	families := make(map[string]string)
	counts := make(map[string]int64)
	for _, record := range records {
		if !day.Contains(record.Timestamp, loc) {
			continue
		}
		family, ok := families[record.UserAgent]
		if !ok {
			family = userAgentFamily(record.UserAgent)
			families[record.UserAgent] = family
		}
		counts[family]++
	}
	return rank(counts, limit)
}

func (e *rankingEngine) RankAttacks(records []*models.AuditRecord, limit int) []models.RankingEntry {
	counts := make(map[string]int64)
	for _, record := range records {
		counts[orUnknown(record.AttackName)]++
	}
	return rank(counts, limit)
}

func (e *rankingEngine) RankSeverities(records []*models.AuditRecord, limit int) []models.RankingEntry {
	counts := make(map[string]int64)
	for _, record := range records {
		counts[orUnknown(record.Severity)]++
	}
	return rank(counts, limit)
}

// userAgentFamily parses the browser family, or returns the raw string if parsing finds none.
func userAgentFamily(ua string) string {
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}
	return orUnknown(ua)
}

func orUnknown(label string) string {
	if label == "" {
		return unknownLabel
	}
	return label
}

func rank(counts map[string]int64, limit int) []models.RankingEntry {
	entries := make([]models.RankingEntry, 0, len(counts))
	for label, count := range counts {
		entries = append(entries, models.RankingEntry{Label: label, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Label < entries[j].Label
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
