package models

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidGranularity = errors.New("invalid granularity")

// Granularity is the width of a time bucket.
type Granularity string

const (
	Granularity15Minutes Granularity = "15m"
	Granularity30Minutes Granularity = "30m"
	Granularity1Hour     Granularity = "1h"
	Granularity2Hours    Granularity = "2h"
	Granularity12Hours   Granularity = "12h"
	Granularity1Day      Granularity = "1d"
)

// Granularities lists every supported granularity, finest first.
var Granularities = []Granularity{
	Granularity15Minutes,
	Granularity30Minutes,
	Granularity1Hour,
	Granularity2Hours,
	Granularity12Hours,
	Granularity1Day,
}

const (
	labelLayoutDateTime = "%04d-%02d-%02d %02d:%02d"
	labelLayoutDate     = "%04d-%02d-%02d"
)

// ParseGranularity accepts exactly one of the supported tokens.
func ParseGranularity(s string) (Granularity, error) {
	g := Granularity(s)
	if !g.IsValid() {
		return "", fmt.Errorf("%w: %q (expected one of 15m, 30m, 1h, 2h, 12h, 1d)", ErrInvalidGranularity, s)
	}
	return g, nil
}

func (g Granularity) IsValid() bool {
	switch g {
	case Granularity15Minutes, Granularity30Minutes, Granularity1Hour,
		Granularity2Hours, Granularity12Hours, Granularity1Day:
		return true
	}
	return false
}

// Duration is the nominal bucket width. Days crossing a DST change are not 24h long;
// flooring never relies on this value.
func (g Granularity) Duration() time.Duration {
	switch g {
	case Granularity15Minutes:
		return 15 * time.Minute
	case Granularity30Minutes:
		return 30 * time.Minute
	case Granularity1Hour:
		return time.Hour
	case Granularity2Hours:
		return 2 * time.Hour
	case Granularity12Hours:
		return 12 * time.Hour
	case Granularity1Day:
		return 24 * time.Hour
	default:
		panic(fmt.Sprintf("invalid Granularity: %q", g))
	}
}

// Floor truncates t, observed in loc, down to the start of its bucket.
func (g Granularity) Floor(t time.Time, loc *time.Location) time.Time {
	year, month, day, hour, minute := g.floorWall(t, loc)
	return time.Date(year, month, day, hour, minute, 0, 0, loc)
}

// Label returns the canonical bucket label of t. Labels are zero padded so that
// lexicographic order equals chronological order.
func (g Granularity) Label(t time.Time, loc *time.Location) string {
	year, month, day, hour, minute := g.floorWall(t, loc)
	if g == Granularity1Day {
		return fmt.Sprintf(labelLayoutDate, year, int(month), day)
	}
	return fmt.Sprintf(labelLayoutDateTime, year, int(month), day, hour, minute)
}

// floorWall floors the wall clock fields directly so labels never depend on how
// time.Date normalizes wall times skipped by a DST transition.
func (g Granularity) floorWall(t time.Time, loc *time.Location) (int, time.Month, int, int, int) {
	local := t.In(loc)
	year, month, day := local.Date()
	hour, minute := local.Hour(), local.Minute()

	switch g {
	case Granularity15Minutes:
		return year, month, day, hour, minute / 15 * 15
	case Granularity30Minutes:
		return year, month, day, hour, minute / 30 * 30
	case Granularity1Hour:
		return year, month, day, hour, 0
	case Granularity2Hours:
		return year, month, day, hour / 2 * 2, 0
	case Granularity12Hours:
		return year, month, day, hour / 12 * 12, 0
	case Granularity1Day:
		return year, month, day, 0, 0
	default:
		panic(fmt.Sprintf("invalid Granularity: %q", g))
	}
}
