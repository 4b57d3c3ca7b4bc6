package utils

import (
	"strings"
	"time"
)

const (
	layoutDate        = "2006-01-02"
	layoutDateTime    = "2006-01-02 15:04:05"
	layoutDayPrefix   = "060102"
	layoutInvoiceDate = "20060102"
)

// DayPrefix formats t as the 6-digit yyMMdd booking-number prefix.
func DayPrefix(t time.Time) string {
	return t.Format(layoutDayPrefix)
}

// InvoiceDateStamp formats t as the yyyyMMdd suffix of invoice numbers.
func InvoiceDateStamp(t time.Time) string {
	return t.Format(layoutInvoiceDate)
}

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}

// FormatTimeRange renders a human-readable slot, e.g. "10:00 - 12:00".
// Empty parts collapse so a missing slot yields "".
func FormatTimeRange(start, end string) string {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start
	case start == "":
		return end
	default:
		return start + " - " + end
	}
}
