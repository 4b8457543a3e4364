package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func intPtr(v int64) *int64 { return &v }

func TestFormatCents(t *testing.T) {
	tests := []struct {
		name  string
		value *int64
		want  string
	}{
		{"nil is n/a", nil, "n/a"},
		{"zero", intPtr(0), "$0"},
		{"rounds down", intPtr(1234), "$12"},
		{"rounds up at half", intPtr(150), "$2"},
		{"sub-dollar", intPtr(49), "$0"},
		{"thousands separator", intPtr(123456789), "$1,234,568"},
		{"negative", intPtr(-1234), "-$12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCents(tt.value))
		})
	}
}

func TestHumanize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"listing_revision_approved", "Listing revision approved"},
		{"pending_review", "Pending review"},
		{"approved", "Approved"},
		{"", ""},
		{"  already spaced  ", "Already spaced"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Humanize(tt.in), "Humanize(%q)", tt.in)
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  string
	}{
		{"nil is Unknown", nil, "Unknown"},
		{"empty is Unknown", strPtr(""), "Unknown"},
		{"whitespace is Unknown", strPtr("   "), "Unknown"},
		{"RFC3339", strPtr("2024-03-05T14:30:00Z"), "Mar 05, 2024 14:30"},
		{"no timezone", strPtr("2024-03-05T14:30:00"), "Mar 05, 2024 14:30"},
		{"space separator", strPtr("2024-03-05 14:30:00"), "Mar 05, 2024 14:30"},
		{"date only", strPtr("2024-03-05"), "Mar 05, 2024"},
		{"unparseable falls back to raw", strPtr("next tuesday"), "next tuesday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.value))
		})
	}
}

func TestStringOr(t *testing.T) {
	assert.Equal(t, "fallback", StringOr(nil, "fallback"))
	assert.Equal(t, "fallback", StringOr(strPtr(""), "fallback"))
	assert.Equal(t, "value", StringOr(strPtr("value"), "fallback"))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "exactly-10", TruncateString("exactly-10", 10))
	assert.Equal(t, "longer-...", TruncateString("longer-string", 10))
	assert.Equal(t, "ab", TruncateString("abcdef", 2))
}
