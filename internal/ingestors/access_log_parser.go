package ingestors

import (
	"fmt"
	"net/netip"
	"regexp"
	"strconv"
	"strings"
	"time"

	"weblog-analytics/internal/models"
)

const (
	accessTimestampLayout = "02/Jan/2006:15:04:05 -0700"

	// whitespace token positions of a combined log line:
	// 0 addr, 1 ident, 2 user, 3 [time, 4 zone], 5 "method, 6 path, 7 protocol", 8 status, 9 bytes
	tokenMethod   = 5
	tokenPath     = 6
	tokenProtocol = 7
	tokenStatus   = 8
	tokenBytes    = 9
	minTokens     = 10
)

var (
	// IPv4, full IPv6, then IPv6 with a "::" run; candidates are confirmed with netip
	clientAddressPattern = regexp.MustCompile(`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}` +
		`|[0-9a-fA-F]{1,4}(?::[0-9a-fA-F]{1,4}){7}` +
		`|(?:[0-9a-fA-F]{1,4}:){1,7}:(?:[0-9a-fA-F]{1,4}(?::[0-9a-fA-F]{1,4}){0,6})?` +
		`|::[0-9a-fA-F]{1,4}(?::[0-9a-fA-F]{1,4}){0,6}`)
	timestampPattern = regexp.MustCompile(`\[(\d{2}/[A-Za-z]{3}/\d{4}:\d{2}:\d{2}:\d{2} [+\-]\d{4})\]`)
	bracketedPattern = regexp.MustCompile(`\[[^\]]*\]`)
	userAgentPattern = regexp.MustCompile(`"([^"]*)"[^"]*$`)
)

// AccessLogParser turns one Apache/Nginx combined log line into a LogRecord.
//
//	10.0.0.1 - - [10/Oct/2024:10:03:12 +0700] "GET /index.html HTTP/1.1" 200 1043 "-" "Mozilla/5.0 ..."
type AccessLogParser interface {
	Parse(line string) (*models.LogRecord, error)
}

type accessLogParser struct{}

func NewAccessLogParser() AccessLogParser {
	return &accessLogParser{}
}

func (p *accessLogParser) Parse(line string) (*models.LogRecord, error) {
	address, err := p.parseClientAddress(line)
	if err != nil {
		return nil, err
	}

	timestamp, err := p.parseTimestamp(line)
	if err != nil {
		return nil, err
	}

	tokens := strings.Fields(line)
	if len(tokens) < minTokens {
		return nil, fmt.Errorf("%w: expected at least %d fields, got %d", ErrMalformedLine, minTokens, len(tokens))
	}

	statusCode, err := strconv.Atoi(tokens[tokenStatus])
	if err != nil {
		return nil, fmt.Errorf("%w: status code %q is not a number", ErrMalformedLine, tokens[tokenStatus])
	}
	bytesSent, err := strconv.ParseInt(tokens[tokenBytes], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bytes sent %q is not a number", ErrMalformedLine, tokens[tokenBytes])
	}

	return &models.LogRecord{
		ClientAddress: address,
		Timestamp:     timestamp,
		Method:        strings.Trim(tokens[tokenMethod], `"`),
		Path:          strings.Trim(tokens[tokenPath], `"`),
		Protocol:      strings.Trim(tokens[tokenProtocol], `"`),
		StatusCode:    statusCode,
		BytesSent:     bytesSent,
		UserAgent:     p.parseUserAgent(line),
	}, nil
}

// parseClientAddress returns the first IP literal on the line that is also a valid address.
func (p *accessLogParser) parseClientAddress(line string) (string, error) {
	for _, candidate := range clientAddressPattern.FindAllString(line, -1) {
		if _, err := netip.ParseAddr(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: no client address", ErrMalformedLine)
}

func (p *accessLogParser) parseTimestamp(line string) (time.Time, error) {
	match := timestampPattern.FindStringSubmatch(line)
	if match == nil {
		if raw := bracketedPattern.FindString(line); raw != "" {
			return time.Time{}, fmt.Errorf("%w: %s", ErrUnparsableTimestamp, raw)
		}
		return time.Time{}, fmt.Errorf("%w: no timestamp", ErrMalformedLine)
	}

	timestamp, err := time.Parse(accessTimestampLayout, match[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrUnparsableTimestamp, err)
	}
	return timestamp, nil
}

func (p *accessLogParser) parseUserAgent(line string) string {
	match := userAgentPattern.FindStringSubmatch(line)
	if match == nil {
		return ""
	}
	return match[1]
}
