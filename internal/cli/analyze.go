package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"weblog-analytics/internal/aggregators"
	"weblog-analytics/internal/ingestors"
	"weblog-analytics/internal/models"
	"weblog-analytics/internal/pipelines"
	"weblog-analytics/internal/shared/filestorages"
	"weblog-analytics/internal/shared/loggers"
	"weblog-analytics/internal/shared/validators"
	"weblog-analytics/internal/stores"
	"weblog-analytics/internal/streams"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

type analyzeOptions struct {
	AccessLog   string `validate:"required_without=AuditLog"`
	AuditLog    string `validate:"required_without=AccessLog"`
	Date        string `validate:"omitempty,datetime=2006-01-02"`
	Granularity string
	TimeZone    string `validate:"required,timezone"`
	Output      string `validate:"oneof=table json"`
	MaxBuckets  int    `validate:"min=1"`
	LogLevel    string `validate:"required"`
}

func newAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}
	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze access and audit logs for one day",
		Long:  `Run one pass over local log files and print time buckets and rankings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := analyzeCmd.Flags()
	flags.StringVar(&opts.AccessLog, "access-log", "", "Path of the Apache/Nginx combined access log")
	flags.StringVar(&opts.AuditLog, "audit-log", "", "Path of the ModSecurity JSON audit log")
	flags.StringVar(&opts.Date, "date", "", "Target day (format: 2006-01-02, default: today in --time-zone)")
	flags.StringVar(&opts.Granularity, "granularity", string(models.Granularity15Minutes), "Bucket width: 15m, 30m, 1h, 2h, 12h or 1d")
	flags.StringVar(&opts.TimeZone, "time-zone", "UTC", "IANA time zone that defines the day and bucket boundaries")
	flags.StringVar(&opts.Output, "output", outputTable, "Output format: table or json")
	flags.IntVar(&opts.MaxBuckets, "max-buckets", 10, "Number of time buckets printed")
	flags.StringVar(&opts.LogLevel, "log-level", "warn", "Log level written to stderr")

	return analyzeCmd
}

func runAnalyze(ctx context.Context, opts *analyzeOptions, stdout, stderr io.Writer) error {
	granularity, err := models.ParseGranularity(opts.Granularity)
	if err != nil {
		return err
	}
	if err := validators.New().Struct(opts); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger, err := loggers.NewWithWriter(opts.LogLevel, stderr)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	ctx = logger.WithContext(ctx)

	location, err := time.LoadLocation(opts.TimeZone)
	if err != nil {
		return fmt.Errorf("failed to load time zone %q: %w", opts.TimeZone, err)
	}
	var day models.Day
	if opts.Date != "" {
		if day, err = models.ParseDay(opts.Date); err != nil {
			return err
		}
	}

	rootDir, keys, err := storageLayout(opts.AccessLog, opts.AuditLog)
	if err != nil {
		return err
	}
	fileStorage, err := filestorages.NewFileStorage(rootDir)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	aggregationService := aggregators.NewAggregationService(aggregators.NewTimeBucketAggregator(), aggregators.NewRankingEngine(), aggregators.RankingLimits{})
	ingestionService := ingestors.NewIngestionService(stores.NewLogSourceStore(fileStorage), ingestors.NewAccessLogParser(), ingestors.NewAuditLogParser())
	pipeline := pipelines.NewDashboardPipeline(pipelines.PipelineConfig{
		AccessLogKey:       keys[0],
		AuditLogKey:        keys[1],
		DefaultGranularity: granularity,
		TimeZone:           opts.TimeZone,
		Location:           location,
	}, ingestionService, aggregationService, streams.NewSnapshotProducer(streams.NewLatestQueue[*models.DashboardSnapshot]()))

	snapshot, err := pipeline.Run(ctx, day, granularity)
	if err != nil {
		return err
	}
	for _, source := range snapshot.Sources {
		if source.Failed() {
			logger.Warn().
				Str(loggers.FieldSource, string(source.Kind)).
				Str(loggers.FieldErrorCode, source.ErrorCode).
				Msg(source.Error)
		}
	}

	if opts.Output == outputJSON {
		return writeReportJSON(stdout, snapshot, opts.MaxBuckets)
	}
	return writeReportTable(stdout, snapshot, opts.MaxBuckets)
}

// storageLayout roots file storage at the deepest directory holding every given path and
// returns the keys of the access and audit logs under it. Empty paths stay empty keys.
func storageLayout(paths ...string) (string, []string, error) {
	var rootDir string
	absPaths := make([]string, len(paths))
	for i, path := range paths {
		if path == "" {
			continue
		}
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", nil, fmt.Errorf("failed to resolve %q: %w", path, err)
		}
		absPaths[i] = absPath
		rootDir = commonDir(rootDir, filepath.Dir(absPath))
	}
	if rootDir == "" {
		return "", nil, errors.New("at least one of --access-log and --audit-log is required")
	}

	keys := make([]string, len(paths))
	for i, absPath := range absPaths {
		if absPath == "" {
			continue
		}
		key, err := filepath.Rel(rootDir, absPath)
		if err != nil {
			return "", nil, fmt.Errorf("failed to resolve %q: %w", absPath, err)
		}
		keys[i] = key
	}
	return rootDir, keys, nil
}

func commonDir(a, b string) string {
	if a == "" {
		return b
	}
	for !isWithin(a, b) {
		parent := filepath.Dir(a)
		if parent == a {
			return a
		}
		a = parent
	}
	return a
}

func isWithin(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

type report struct {
	SnapshotID           string                `json:"snapshotId"`
	Day                  models.Day            `json:"day"`
	Granularity          models.Granularity    `json:"granularity"`
	TimeZone             string                `json:"timeZone"`
	Buckets              []models.TimeBucket   `json:"buckets"`
	TotalBuckets         int                   `json:"totalBuckets"`
	Dropped              int64                 `json:"dropped"`
	StatusClassRanking   []models.RankingEntry `json:"statusClassRanking"`
	TimeBucketRanking    []models.RankingEntry `json:"timeBucketRanking"`
	ClientAddressRanking []models.RankingEntry `json:"clientAddressRanking"`
	UserAgentRanking     []models.RankingEntry `json:"userAgentRanking"`
	AttackRanking        []models.RankingEntry `json:"attackRanking"`
	SeverityRanking      []models.RankingEntry `json:"severityRanking"`
	Sources              []models.SourceStatus `json:"sources"`
}

func writeReportJSON(w io.Writer, snapshot *models.DashboardSnapshot, maxBuckets int) error {
	dashboard := snapshot.Dashboard
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report{
		SnapshotID:           snapshot.ID,
		Day:                  snapshot.Day,
		Granularity:          snapshot.Granularity,
		TimeZone:             snapshot.TimeZone,
		Buckets:              dashboard.Series.Head(maxBuckets),
		TotalBuckets:         len(dashboard.Series.Buckets),
		Dropped:              dashboard.Series.Dropped,
		StatusClassRanking:   dashboard.StatusClassRanking,
		TimeBucketRanking:    dashboard.TimeBucketRanking,
		ClientAddressRanking: dashboard.ClientAddressRanking,
		UserAgentRanking:     dashboard.UserAgentRanking,
		AttackRanking:        snapshot.Audit.AttackRanking,
		SeverityRanking:      snapshot.Audit.SeverityRanking,
		Sources:              snapshot.Sources,
	})
}

var titleStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)

func writeReportTable(w io.Writer, snapshot *models.DashboardSnapshot, maxBuckets int) error {
	dashboard := snapshot.Dashboard
	var sb strings.Builder

	fmt.Fprintf(&sb, "Day %s, granularity %s, time zone %s, dropped lines %d\n",
		snapshot.Day, snapshot.Granularity, snapshot.TimeZone, dashboard.Series.Dropped)

	buckets := table.New().Border(lipgloss.NormalBorder()).Headers(bucketHeaders()...)
	for _, bucket := range dashboard.Series.Head(maxBuckets) {
		buckets.Row(bucketRow(bucket)...)
	}
	writeSection(&sb, fmt.Sprintf("Time buckets (%d of %d)", min(maxBuckets, len(dashboard.Series.Buckets)), len(dashboard.Series.Buckets)), buckets)

	writeSection(&sb, "Status classes", rankingTable("Status class", dashboard.StatusClassRanking))
	writeSection(&sb, "Busiest time buckets", rankingTable("Bucket", dashboard.TimeBucketRanking))
	writeSection(&sb, "Client addresses", rankingTable("Address", dashboard.ClientAddressRanking))
	writeSection(&sb, "User agents", rankingTable("User agent", dashboard.UserAgentRanking))
	writeSection(&sb, "Attacks", rankingTable("Attack", snapshot.Audit.AttackRanking))
	writeSection(&sb, "Severities", rankingTable("Severity", snapshot.Audit.SeverityRanking))

	sources := table.New().Border(lipgloss.NormalBorder()).Headers("Source", "Key", "Lines", "Parsed", "Dropped", "Error")
	for _, source := range snapshot.Sources {
		sources.Row(string(source.Kind), source.Key,
			strconv.FormatInt(source.Stats.Lines, 10),
			strconv.FormatInt(source.Stats.Parsed, 10),
			strconv.FormatInt(source.Stats.Dropped, 10),
			source.ErrorCode)
	}
	writeSection(&sb, "Sources", sources)

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeSection(sb *strings.Builder, title string, t *table.Table) {
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n")
	sb.WriteString(t.Render())
	sb.WriteString("\n")
}

func bucketHeaders() []string {
	headers := []string{"Bucket"}
	for _, class := range models.StatusClasses {
		headers = append(headers, string(class))
	}
	return append(headers, "Total")
}

func bucketRow(bucket models.TimeBucket) []string {
	row := []string{bucket.Label}
	for _, class := range models.StatusClasses {
		row = append(row, strconv.FormatInt(bucket.Counts[class], 10))
	}
	return append(row, strconv.FormatInt(bucket.Total(), 10))
}

func rankingTable(header string, entries []models.RankingEntry) *table.Table {
	t := table.New().Border(lipgloss.NormalBorder()).Headers(header, "Count")
	for _, entry := range entries {
		t.Row(entry.Label, strconv.FormatInt(entry.Count, 10))
	}
	return t
}
