package util

import (
	"strings"
	"time"
)

// Meeting date layouts seen across BOK postings and persisted artifacts.
var meetingLayouts = []string{
	"2006-01-02",
	"2006_01_02",
	"2006.01.02",
	"20060102",
	time.RFC3339,
}

// ParseMeetingDate parses a meeting document id into a calendar date.
// Returns (t, true) if any known layout worked.
func ParseMeetingDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range meetingLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseMeetingDateDefault parses a meeting date or returns def if empty/invalid.
func ParseMeetingDateDefault(s string, def time.Time) time.Time {
	if t, ok := ParseMeetingDate(s); ok {
		return t
	}
	return def
}

// FormatMeetingDate renders a date in the canonical document-id layout.
func FormatMeetingDate(t time.Time) string {
	return t.Format("2006-01-02")
}
