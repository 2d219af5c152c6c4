package util

import (
	"testing"
	"time"
)

func TestParseMeetingDateDashed(t *testing.T) {
	got, ok := ParseMeetingDate("2024-10-11")
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Year() != 2024 || got.Month() != time.October || got.Day() != 11 {
		t.Fatalf("unexpected date %v", got)
	}
}

func TestParseMeetingDateAlternateLayouts(t *testing.T) {
	for _, s := range []string{"2024_10_11", "2024.10.11", "20241011"} {
		got, ok := ParseMeetingDate(s)
		if !ok {
			t.Fatalf("expected ok for %q", s)
		}
		if got.Day() != 11 {
			t.Fatalf("unexpected day for %q: %v", s, got)
		}
	}
}

func TestParseMeetingDateInvalid(t *testing.T) {
	if _, ok := ParseMeetingDate("not-a-date"); ok {
		t.Fatalf("expected failure")
	}
	if _, ok := ParseMeetingDate(""); ok {
		t.Fatalf("expected failure for empty input")
	}
}

func TestParseMeetingDateDefault(t *testing.T) {
	def := time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC)
	got := ParseMeetingDateDefault("garbage", def)
	if !got.Equal(def) {
		t.Fatalf("expected default")
	}
}

func TestFormatMeetingDateRoundTrip(t *testing.T) {
	d, ok := ParseMeetingDate("2023-01-13")
	if !ok {
		t.Fatalf("expected ok")
	}
	if s := FormatMeetingDate(d); s != "2023-01-13" {
		t.Fatalf("unexpected format %q", s)
	}
}
