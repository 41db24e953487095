// Package biztime holds the single clock and timestamp format used for
// stored and transported times. All times are UTC with second precision,
// rendered as ISO-8601 with a trailing Z.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// ISOLayout is the stored and transported timestamp layout.
const ISOLayout = "2006-01-02T15:04:05Z"

var (
	clockMu sync.RWMutex
	clock   = time.Now
)

// NowUTC returns current time in UTC truncated to the second.
func NowUTC() time.Time {
	clockMu.RLock()
	defer clockMu.RUnlock()
	return clock().UTC().Truncate(time.Second)
}

// SetClock replaces the clock and returns a function restoring the previous one.
func SetClock(fn func() time.Time) (restore func()) {
	clockMu.Lock()
	prev := clock
	clock = fn
	clockMu.Unlock()

	return func() {
		clockMu.Lock()
		clock = prev
		clockMu.Unlock()
	}
}

// FormatISO renders t in UTC using ISOLayout.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// FormatISOPtr is FormatISO for optional times.
func FormatISOPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatISO(*t)
	return &s
}

// ParseISO parses a stored timestamp. Values written by SQLite's datetime()
// ("2006-01-02 15:04:05") are accepted too.
func ParseISO(s string) (time.Time, error) {
	for _, layout := range []string{ISOLayout, time.DateTime, time.RFC3339} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// ParseISOPtr is ParseISO for nullable columns.
func ParseISOPtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := ParseISO(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
