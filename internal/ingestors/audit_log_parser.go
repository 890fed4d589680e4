package ingestors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"weblog-analytics/internal/models"
)

var (
	fileTagPattern     = regexp.MustCompile(`\[file\s+"([^"]*)"\]`)
	msgTagPattern      = regexp.MustCompile(`\[msg\s+"([^"]*)"\]`)
	dataTagPattern     = regexp.MustCompile(`\[data\s+"([^"]*)"\]`)
	severityTagPattern = regexp.MustCompile(`\[severity\s+"([^"]*)"\]`)
	versionPattern     = regexp.MustCompile(`/v?(\d+\.\d+\.\d+)`)
)

// AuditLogParser turns one line of a ModSecurity JSON audit log into an AuditRecord.
type AuditLogParser interface {
	Parse(line string) (*models.AuditRecord, error)
}

type auditLogParser struct{}

func NewAuditLogParser() AuditLogParser {
	return &auditLogParser{}
}

type auditLine struct {
	Transaction json.RawMessage `json:"transaction"`
	Request     json.RawMessage `json:"request"`
	AuditData   json.RawMessage `json:"audit_data"`
}

type auditTransaction struct {
	Time          json.RawMessage `json:"time"`
	TransactionID json.RawMessage `json:"transaction_id"`
	RemoteAddress json.RawMessage `json:"remote_address"`
	RemotePort    json.RawMessage `json:"remote_port"`
}

type auditRequest struct {
	RequestLine json.RawMessage `json:"request_line"`
}

type auditData struct {
	Messages json.RawMessage `json:"messages"`
	Producer json.RawMessage `json:"producer"`
}

func (p *auditLogParser) Parse(line string) (*models.AuditRecord, error) {
	var raw auditLine
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}
	if !isJSONObject(raw.Transaction) {
		return nil, fmt.Errorf("%w: missing transaction object", ErrMalformedJSON)
	}

	var transaction auditTransaction
	if err := json.Unmarshal(raw.Transaction, &transaction); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}

	// request and audit_data are optional; a wrongly shaped value reads as absent
	var request auditRequest
	if isJSONObject(raw.Request) {
		_ = json.Unmarshal(raw.Request, &request)
	}
	var data auditData
	if isJSONObject(raw.AuditData) {
		_ = json.Unmarshal(raw.AuditData, &data)
	}

	record := &models.AuditRecord{
		Timestamp:     jsonText(transaction.Time),
		TransactionID: jsonText(transaction.TransactionID),
		RemoteAddress: jsonText(transaction.RemoteAddress),
		RemotePort:    jsonText(transaction.RemotePort),
		Path:          jsonText(request.RequestLine),
		Version:       p.parseVersion(firstElementText(data.Producer)),
	}

	message := firstElementText(data.Messages)
	if file := findTag(fileTagPattern, message); file != "" {
		record.AttackName = attackName(file)
	}
	record.AttackMsg = findTag(msgTagPattern, message)
	record.AttackData = findTag(dataTagPattern, message)
	record.Severity = findTag(severityTagPattern, message)

	return record, nil
}

func (p *auditLogParser) parseVersion(producer string) string {
	match := versionPattern.FindStringSubmatch(producer)
	if match == nil {
		return ""
	}
	return match[1]
}

// attackName reduces a rule file path such as
// /etc/crs/rules/REQUEST-930-APPLICATION-ATTACK-LFI.conf to REQUEST-930-APPLICATION-ATTACK-LFI.
func attackName(file string) string {
	if i := strings.LastIndex(file, "/"); i >= 0 {
		file = file[i+1:]
	}
	return strings.TrimSuffix(file, ".conf")
}

func findTag(pattern *regexp.Regexp, message string) string {
	match := pattern.FindStringSubmatch(message)
	if match == nil {
		return ""
	}
	return match[1]
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// jsonText renders a scalar JSON value as text. Strings are unquoted, numbers keep their
// literal form, and null, objects, arrays or a missing value read as "".
func jsonText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var value any
	if err := decoder.Decode(&value); err != nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// firstElementText returns the text of element 0 when raw is an array, or raw itself when it
// is a plain scalar.
func firstElementText(raw json.RawMessage) string {
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return jsonText(raw)
	}
	if len(elements) == 0 {
		return ""
	}
	return jsonText(elements[0])
}
