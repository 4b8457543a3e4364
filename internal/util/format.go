package util

import (
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatDate formats an ISO timestamp for display. Nil or empty values
// render as "Unknown"; unparseable values fall back to the raw string.
func FormatDate(value *string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return "Unknown"
	}
	raw := strings.TrimSpace(*value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			if layout == "2006-01-02" {
				return t.Format("Jan 02, 2006")
			}
			return t.Format("Jan 02, 2006 15:04")
		}
	}
	return raw
}

// FormatCents formats integer cents as nearest-dollar USD: 1234 -> "$12".
// Nil renders as "n/a".
func FormatCents(value *int64) string {
	if value == nil {
		return "n/a"
	}
	dollars := int64(math.Round(float64(*value) / 100))
	if dollars < 0 {
		return "-$" + humanize.Comma(-dollars)
	}
	return "$" + humanize.Comma(dollars)
}

// Humanize turns a snake_case token into a sentence: "listing_revision_approved"
// -> "Listing revision approved". Used for both statuses and action names.
func Humanize(token string) string {
	s := strings.ReplaceAll(strings.TrimSpace(token), "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// StringOr returns the pointed-to string, or fallback when nil or empty.
func StringOr(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}

// TruncateString truncates a string to maxLen and adds "..." if needed.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
