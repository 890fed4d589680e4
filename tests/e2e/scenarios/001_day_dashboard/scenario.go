package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalEntries   = 6400 // Total number of valid access log lines to generate
	malformedEvery = 100  // One malformed line is appended after every 100 valid lines
	auditEntries   = 40
)

var (
	quarters    = []string{"10:03", "10:17", "10:31", "11:46"}
	statusCodes = []int{200, 301, 404, 503}
	addresses   = []string{"10.0.0.1", "10.0.0.2", "2001:db8:0:0:0:0:0:1", "192.168.1.20"}
	userAgents  = []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
		"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
		"curl/7.88.1",
	}
	attackFiles = []string{
		"/etc/crs/rules/REQUEST-930-APPLICATION-ATTACK-LFI.conf",
		"/etc/crs/rules/REQUEST-942-APPLICATION-ATTACK-SQLI.conf",
	}
)

// ### End - fixed configs

type bucket struct {
	Label  string           `json:"label"`
	Counts map[string]int64 `json:"counts"`
}

type rankingEntry struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type dashboardResponse struct {
	SnapshotID           string         `json:"snapshotId"`
	Buckets              []bucket       `json:"buckets"`
	TotalBuckets         int            `json:"totalBuckets"`
	Dropped              int64          `json:"dropped"`
	StatusClassRanking   []rankingEntry `json:"statusClassRanking"`
	ClientAddressRanking []rankingEntry `json:"clientAddressRanking"`
}

// main runs the e2e scenario: 001_day_dashboard
//
// It writes a deterministic access log and audit log into the service's file storage, races
// several POST /refresh requests against each other and then checks GET /dashboard.
//
// What it tests:
//   - Combined log parsing, including IPv6 client addresses and malformed lines
//   - 15m and 1h bucketing of one day in the configured time zone
//   - Status class and client address rankings
//   - Overlapping passes are rejected with 409 while one pass is running
//   - Unknown granularity is rejected with 400
//
// Expected results (with aggregation.time_zone Asia/Ho_Chi_Minh):
//   - 4 buckets at 15m: 10:00, 10:15, 10:30, 11:45; 1600 requests each
//   - 2 buckets at 1h: 10:00 (4800) and 11:00 (1600)
//   - Every status class and every client address counts 1600
//   - 64 dropped lines
func main() {
	// these configs can be changed to run the scenario
	baseURL := getEnv("BASE_URL", "http://localhost:8080") // Base URL of the weblog analytics API server
	date := getEnv("DATE", "2024-10-10")                   // Day used for generating log timestamps
	zoneOffset := getEnv("ZONE_OFFSET", "+0700")           // Offset written into each access log timestamp
	parallel := getEnvInt("PARALLEL", 4)                   // Number of concurrent refresh requests
	fileStorageDir := getEnv("FILE_STORAGE_DIR", "data")   // File storage root relative to project root
	accessLogKey := "logs/apache_nginx/access.log"
	auditLogKey := "logs/modsecurity/modsec_audit.json"

	projectRoot, err := findProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	storagePath := filepath.Join(projectRoot, fileStorageDir)

	fmt.Println("Starting e2e scenario: 001_day_dashboard")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("DATE: %s\n", date)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("FILE_STORAGE_PATH: %s\n", storagePath)
	fmt.Println()

	if err := writeFile(filepath.Join(storagePath, accessLogKey), generateAccessLog(date, zoneOffset)); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to write access log: %v\n", err)
		os.Exit(1)
	}
	if err := writeFile(filepath.Join(storagePath, auditLogKey), generateAuditLog()); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to write audit log: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d access log lines and %d audit log lines\n", totalEntries+totalEntries/malformedEvery, auditEntries)
	fmt.Println()

	// Race refreshes
	var wg sync.WaitGroup
	var okRequest int64       // 200 status code
	var conflictRequest int64 // 409 status code
	var otherRequest int64
	for i := 0; i < parallel; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			statusCode, _, err := do(http.MethodPost, baseURL+"/refresh?date="+date)
			if err != nil {
				fmt.Fprintf(os.Stderr, "ERROR: refresh failed: %v\n", err)
				atomic.AddInt64(&otherRequest, 1)
				return
			}
			switch statusCode {
			case http.StatusOK:
				atomic.AddInt64(&okRequest, 1)
			case http.StatusConflict:
				atomic.AddInt64(&conflictRequest, 1)
			default:
				atomic.AddInt64(&otherRequest, 1)
			}
		}()
	}
	wg.Wait()

	fmt.Println("=== Refresh statistics ===")
	fmt.Printf("OK request: %d\n", okRequest)
	fmt.Printf("Conflicted request: %d\n", conflictRequest)
	fmt.Printf("Other request: %d\n", otherRequest)
	fmt.Println()
	if okRequest == 0 || otherRequest > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: expected at least one successful refresh and no failures\n")
		os.Exit(1)
	}

	var failures []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			failures = append(failures, fmt.Sprintf(format, args...))
		}
	}

	quarterHour, err := getDashboard(baseURL + "/dashboard?date=" + date + "&granularity=15m")
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	check(quarterHour.TotalBuckets == len(quarters), "15m total buckets = %d, want %d", quarterHour.TotalBuckets, len(quarters))
	check(quarterHour.Dropped == totalEntries/malformedEvery, "dropped = %d, want %d", quarterHour.Dropped, totalEntries/malformedEvery)
	for _, b := range quarterHour.Buckets {
		check(sum(b.Counts) == totalEntries/int64(len(quarters)), "bucket %s = %d, want %d", b.Label, sum(b.Counts), totalEntries/len(quarters))
	}
	for _, entry := range quarterHour.StatusClassRanking {
		check(entry.Count == totalEntries/int64(len(statusCodes)), "status class %s = %d", entry.Label, entry.Count)
	}
	for _, entry := range quarterHour.ClientAddressRanking {
		check(entry.Count == totalEntries/int64(len(addresses)), "address %s = %d", entry.Label, entry.Count)
	}

	hourly, err := getDashboard(baseURL + "/dashboard?date=" + date + "&granularity=1h")
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	check(hourly.TotalBuckets == 2, "1h total buckets = %d, want 2", hourly.TotalBuckets)
	if len(hourly.Buckets) == 2 {
		check(sum(hourly.Buckets[0].Counts) == 3*totalEntries/4, "1h first bucket = %d", sum(hourly.Buckets[0].Counts))
		check(sum(hourly.Buckets[1].Counts) == totalEntries/4, "1h second bucket = %d", sum(hourly.Buckets[1].Counts))
	}

	statusCode, _, err := do(http.MethodGet, baseURL+"/dashboard?granularity=5m")
	check(err == nil && statusCode == http.StatusBadRequest, "unknown granularity status = %d, err = %v", statusCode, err)

	if len(failures) > 0 {
		for _, failure := range failures {
			fmt.Fprintf(os.Stderr, "FAIL: %s\n", failure)
		}
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	var value int
	if _, err := fmt.Sscanf(os.Getenv(key), "%d", &value); err == nil && value > 0 {
		return value
	}
	return defaultValue
}

// findProjectRoot walks up from the working directory until it finds go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod, run from the project root")
		}
		dir = parent
	}
}

// generateAccessLog spreads totalEntries lines evenly over every (quarter, status, address,
// user agent) combination.
func generateAccessLog(date, zoneOffset string) string {
	day := strings.Split(date, "-")
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	var month int
	fmt.Sscanf(day[1], "%d", &month)

	var sb strings.Builder
	for i := 0; i < totalEntries; i++ {
		combo := i % 64
		round := i / 64
		quarter := quarters[combo/16]
		timestamp := fmt.Sprintf("%s/%s/%s:%s:%02d %s", day[2], months[month-1], day[0], quarter, round%60, zoneOffset)
		fmt.Fprintf(&sb, "%s - - [%s] \"GET /items/%d HTTP/1.1\" %d %d \"-\" \"%s\"\n",
			addresses[(combo/4)%4], timestamp, round, statusCodes[combo%4], 100+round, userAgents[(combo/4+combo)%4])
		if (i+1)%malformedEvery == 0 {
			fmt.Fprintf(&sb, "%s - - [%s] \"GET /truncated\n", addresses[0], timestamp)
		}
	}
	return sb.String()
}

func generateAuditLog() string {
	var sb strings.Builder
	for i := 0; i < auditEntries; i++ {
		line, _ := json.Marshal(map[string]any{
			"transaction": map[string]any{
				"time":           "10/Oct/2024:10:03:12.000000 +0700",
				"transaction_id": fmt.Sprintf("tx-%04d", i),
				"remote_address": addresses[i%len(addresses)],
				"remote_port":    40000 + i,
			},
			"request": map[string]any{"request_line": "GET /?file=/etc/passwd HTTP/1.1"},
			"audit_data": map[string]any{
				"messages": []string{fmt.Sprintf(`[file "%s"] [msg "attack %d"] [severity "CRITICAL"]`, attackFiles[i%len(attackFiles)], i)},
				"producer": []string{"ModSecurity for Apache/2.9.3 (http://www.modsecurity.org/)"},
			},
		})
		sb.Write(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

func do(method, url string) (int, []byte, error) {
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp.StatusCode, body, nil
}

func getDashboard(url string) (*dashboardResponse, error) {
	statusCode, body, err := do(http.MethodGet, url)
	if err != nil {
		return nil, err
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: status %d: %s", url, statusCode, body)
	}
	var response dashboardResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	return &response, nil
}

func sum(counts map[string]int64) int64 {
	var total int64
	for _, count := range counts {
		total += count
	}
	return total
}
