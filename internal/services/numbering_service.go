package services

import (
	"fmt"
	"strconv"
	"time"

	"voyago/internal/domain"
	"voyago/internal/utils"
)

// BookingNumberSource is the single store read the allocator needs.
type BookingNumberSource interface {
	LastBookingNumber(prefix string) (string, error)
}

// NumberingService hands out date-scoped sequential booking numbers:
// yyMMdd prefix plus a zero-padded 2-digit daily sequence.
//
// The read-then-increment is not atomic; uniqueness is backed by the
// UNIQUE key on bookings.booking_number plus the caller's retry loop
// (see BookingService.CreateBooking).
type NumberingService struct {
	Bookings  BookingNumberSource
	Now       func() time.Time
	RequestID string
}

// Allocation is the allocator result. Degraded marks the timestamp
// fallback form, which is date-prefixed but not sequential; callers can
// alert on it instead of digging through logs.
type Allocation struct {
	Number   string `json:"number"`
	Degraded bool   `json:"degraded"`
}

func (s NumberingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Allocate issues the next booking number for today. It never fails: a
// store error degrades to a millisecond-derived suffix so booking
// creation stays available.
func (s NumberingService) Allocate() Allocation {
	now := s.now()
	prefix := utils.DayPrefix(now)

	last, err := s.Bookings.LastBookingNumber(prefix)
	if err != nil {
		utils.LogEvent(s.RequestID, "numbering", "allocate_fallback", fmt.Sprintf("prefix=%s err=%v", prefix, err))
		return Allocation{Number: fallbackNumber(prefix, now), Degraded: true}
	}

	seq := 1
	if len(last) >= 2 {
		if prev, err := strconv.Atoi(last[len(last)-2:]); err == nil {
			seq = prev + 1
		}
	}
	if seq > domain.MaxDailySequence {
		// A 3-digit suffix would corrupt later suffix parsing, so past 99
		// bookings the day continues on the fallback form.
		utils.LogEvent(s.RequestID, "numbering", "allocate_overflow", fmt.Sprintf("prefix=%s last=%s", prefix, last))
		return Allocation{Number: fallbackNumber(prefix, now), Degraded: true}
	}

	return Allocation{Number: fmt.Sprintf("%s%02d", prefix, seq)}
}

func fallbackNumber(prefix string, now time.Time) string {
	return fmt.Sprintf("%s%02d", prefix, now.UnixMilli()%100)
}
