package utils

import "testing"

func TestFormatINRGrouping(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "Rs 0.00"},
		{123, "Rs 123.00"},
		{1180, "Rs 1,180.00"},
		{123456, "Rs 1,23,456.00"},
		{1234567.5, "Rs 12,34,567.50"},
		{123456789, "Rs 12,34,56,789.00"},
		{-1180, "-Rs 1,180.00"},
	}
	for _, tc := range cases {
		if got := FormatINR(tc.in); got != tc.want {
			t.Fatalf("FormatINR(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"2000", 2000},
		{" 2,000.50 ", 2000.50},
		{"Rs 1,180", 1180},
		{"", 0},
		{"n/a", 0},
	}
	for _, tc := range cases {
		if got := ParseAmount(tc.in); got != tc.want {
			t.Fatalf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(2); got != "2.00" {
		t.Fatalf("FormatMoney(2) = %q", got)
	}
	if got := FormatMoney(1180.5); got != "1180.50" {
		t.Fatalf("FormatMoney(1180.5) = %q", got)
	}
}
