package models

// RankingEntry is one row of a ranking table.
type RankingEntry struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// DashboardView is everything the access log dashboard shows for one day and granularity.
type DashboardView struct {
	Series               *BucketSeries  `json:"series"`
	StatusClassRanking   []RankingEntry `json:"statusClassRanking"`
	TimeBucketRanking    []RankingEntry `json:"timeBucketRanking"`
	ClientAddressRanking []RankingEntry `json:"clientAddressRanking"`
	UserAgentRanking     []RankingEntry `json:"userAgentRanking"`
}

// AuditView summarizes the firewall audit records of one pass.
type AuditView struct {
	Records         []*AuditRecord `json:"records"`
	AttackRanking   []RankingEntry `json:"attackRanking"`
	SeverityRanking []RankingEntry `json:"severityRanking"`
}
