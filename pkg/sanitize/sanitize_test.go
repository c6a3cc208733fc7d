package sanitize

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampInt(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		min, max int
		def      int
		want     int
	}{
		{"in range", "1251", 1, 9999, 0, 1251},
		{"below min", "-5", 1, 9999, 0, 1},
		{"above max", "100000", 1, 9999, 0, 9999},
		{"non numeric", "abc", 1, 9999, 0, 0},
		{"empty", "", 1, 99, 1, 1},
		{"whitespace padded", " 42 ", 1, 99, 0, 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampInt(tt.raw, tt.min, tt.max, tt.def))
		})
	}
}

func TestClampIntValue(t *testing.T) {
	assert.Equal(t, 1, ClampIntValue(0, 1, 240))
	assert.Equal(t, 240, ClampIntValue(500, 1, 240))
	assert.Equal(t, 30, ClampIntValue(30, 1, 240))
}

func TestClipStringTruncatesBeforeTrimming(t *testing.T) {
	// The 8th character is a space, so an 8-char clip of a 9-char id
	// must shrink to 7 characters rather than pulling in the 9th.
	assert.Equal(t, "1234567", ClipString("1234567 9", 8))
	assert.Equal(t, "hello", ClipString("  hello  ", 20))
	assert.Equal(t, "", ClipString("   ", 10))
	assert.Equal(t, strings.Repeat("a", 10), ClipString(strings.Repeat("a", 50), 10))
}

func TestParseTimestamp(t *testing.T) {
	got, ok := ParseTimestamp("2026-03-01T10:30:00Z")
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC), got)

	_, ok = ParseTimestamp("2026-03-01T10:30")
	assert.True(t, ok)

	_, ok = ParseTimestamp("2026-03-01")
	assert.True(t, ok)

	_, ok = ParseTimestamp("not a date")
	assert.False(t, ok)

	_, ok = ParseTimestamp("")
	assert.False(t, ok)
}
