package sanitize

import (
	"strconv"
	"strings"
	"time"
)

// ClampInt parses raw as an integer and forces it into [min, max].
// Non-numeric input yields def; callers that pass def=0 treat a zero
// result as "invalid" by explicit post-check.
func ClampInt(raw string, min, max, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return ClampIntValue(n, min, max)
}

// ClampIntValue forces an already-parsed integer into [min, max].
func ClampIntValue(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// ClipString truncates raw to maxLen runes and then trims surrounding
// whitespace. Truncation happens before trimming, matching the stored
// data format.
func ClipString(raw string, maxLen int) string {
	runes := []rune(raw)
	if len(runes) > maxLen {
		runes = runes[:maxLen]
	}
	return strings.TrimSpace(string(runes))
}

// timestampLayouts lists the accepted client formats. The first two are
// what browsers submit from datetime-local inputs; they carry no zone
// and are interpreted as server-local time.
var timestampLayouts = []struct {
	layout string
	local  bool
}{
	{time.RFC3339, false},
	{"2006-01-02T15:04:05", true},
	{"2006-01-02T15:04", true},
	{"2006-01-02 15:04:05", true},
	{"2006-01-02 15:04", true},
	{"2006-01-02", true},
}

// ParseTimestamp accepts a timestamp in any supported layout and reports
// whether it was valid.
func ParseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, candidate := range timestampLayouts {
		var (
			t   time.Time
			err error
		)
		if candidate.local {
			t, err = time.ParseInLocation(candidate.layout, raw, time.Local)
		} else {
			t, err = time.Parse(candidate.layout, raw)
		}
		if err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
