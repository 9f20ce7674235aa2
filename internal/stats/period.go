package stats

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidPeriod = errors.New("stats: invalid period")

// Period selects the bucketing granularity for historical aggregation.
type Period string

const (
	PeriodDays   Period = "days"
	PeriodWeeks  Period = "weeks"
	PeriodMonths Period = "months"
	PeriodYears  Period = "years"
)

func (p Period) IsValid() bool {
	switch p {
	case PeriodDays, PeriodWeeks, PeriodMonths, PeriodYears:
		return true
	default:
		return false
	}
}

// BucketCount is how many buckets each period renders: the current bucket
// plus its predecessors.
func (p Period) BucketCount() int {
	switch p {
	case PeriodDays:
		return 7
	case PeriodWeeks:
		return 4
	case PeriodMonths:
		return 6
	case PeriodYears:
		return 5
	default:
		return 0
	}
}

func ParsePeriod(input string) (Period, error) {
	p := Period(strings.TrimSpace(strings.ToLower(input)))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPeriod, input)
	}
	return p, nil
}

// startOfWeek returns the Monday on or before t.
func startOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// bucketBounds returns the inclusive day bounds of the bucket holding ref
// shifted back by index buckets (index 0 is the ref bucket).
func bucketBounds(p Period, ref time.Time, index int) (time.Time, time.Time) {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	switch p {
	case PeriodDays:
		d := day.AddDate(0, 0, -index)
		return d, d
	case PeriodWeeks:
		start := startOfWeek(day).AddDate(0, 0, -7*index)
		return start, start.AddDate(0, 0, 6)
	case PeriodMonths:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location()).AddDate(0, -index, 0)
		return start, start.AddDate(0, 1, -1)
	case PeriodYears:
		start := time.Date(day.Year()-index, time.January, 1, 0, 0, 0, 0, day.Location())
		return start, start.AddDate(1, 0, -1)
	default:
		return day, day
	}
}

// bucketLabel is the short display label for a bucket starting at start.
func bucketLabel(p Period, start time.Time) string {
	switch p {
	case PeriodDays:
		return start.Format("Mon")
	case PeriodWeeks:
		return start.Format("Jan 02")
	case PeriodMonths:
		return start.Format("Jan")
	case PeriodYears:
		return start.Format("2006")
	default:
		return start.Format("2006-01-02")
	}
}

// DateRange enumerates, oldest first, every calendar date key covered by the
// period selection anchored at ref. It is the single source of truth consumed
// by both MostMissed and TopByRate so their results stay period-consistent.
func DateRange(p Period, ref time.Time) []string {
	count := p.BucketCount()
	if count == 0 {
		return nil
	}
	first, _ := bucketBounds(p, ref, count-1)
	_, last := bucketBounds(p, ref, 0)

	out := make([]string, 0, int(last.Sub(first).Hours()/24)+1)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		out = append(out, d.Format("2006-01-02"))
	}
	return out
}
