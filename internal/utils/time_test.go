package utils

import (
	"testing"
	"time"
)

func TestDayPrefix(t *testing.T) {
	got := DayPrefix(time.Date(2026, 1, 18, 10, 0, 0, 0, time.Local))
	if got != "260118" {
		t.Fatalf("DayPrefix = %q, want 260118", got)
	}
}

func TestInvoiceDateStamp(t *testing.T) {
	got := InvoiceDateStamp(time.Date(2026, 1, 18, 10, 0, 0, 0, time.Local))
	if got != "20260118" {
		t.Fatalf("InvoiceDateStamp = %q, want 20260118", got)
	}
}

func TestFormatTimeRange(t *testing.T) {
	cases := []struct {
		start, end, want string
	}{
		{"10:00", "12:00", "10:00 - 12:00"},
		{"10:00", "", "10:00"},
		{"", "12:00", "12:00"},
		{"", "", ""},
		{" 10:00 ", " 12:00 ", "10:00 - 12:00"},
	}
	for _, tc := range cases {
		if got := FormatTimeRange(tc.start, tc.end); got != tc.want {
			t.Fatalf("FormatTimeRange(%q, %q) = %q, want %q", tc.start, tc.end, got, tc.want)
		}
	}
}
