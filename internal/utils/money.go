package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatINR renders an amount with Indian digit grouping, e.g. 1234567.5
// becomes "Rs 12,34,567.50". Uses "Rs" because the rupee sign is outside
// the PDF core font set.
func FormatINR(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := fmt.Sprintf("%.2f", amount)
	intPart := s[:len(s)-3]
	decPart := s[len(s)-2:]
	return fmt.Sprintf("%sRs %s.%s", sign, groupIndian(intPart), decPart)
}

// ParseAmount parses a decimal string into float64, tolerating currency
// prefixes and thousand separators. Returns 0 when unparseable.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "Rs")
	s = strings.TrimPrefix(s, "rs")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// groupIndian inserts commas in the Indian style: last three digits, then
// groups of two (12,34,56,789).
func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	head := digits[:n-3]
	tail := digits[n-3:]
	var out strings.Builder
	rem := len(head) % 2
	if rem == 1 {
		out.WriteByte(head[0])
		head = head[1:]
		if len(head) > 0 {
			out.WriteByte(',')
		}
	}
	for i := 0; i < len(head); i += 2 {
		out.WriteString(head[i : i+2])
		if i+2 < len(head) {
			out.WriteByte(',')
		}
	}
	if out.Len() > 0 {
		out.WriteByte(',')
	}
	out.WriteString(tail)
	return out.String()
}
