package utils

import (
	"strings"
	"time"
)

const (
	layoutMonth    = "2006-01"
	layoutDateTime = "2006-01-02 15:04:05"
)

// ParseMonth parses YYYY-MM in local timezone.
func ParseMonth(s string) (time.Time, error) {
	return time.ParseInLocation(layoutMonth, strings.TrimSpace(s), time.Local)
}

// FormatMonth formats time to YYYY-MM.
func FormatMonth(t time.Time) string {
	return t.In(time.Local).Format(layoutMonth)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}
