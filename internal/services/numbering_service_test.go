package services

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

type fakeNumberSource struct {
	number     string
	err        error
	lastPrefix string
}

func (f *fakeNumberSource) LastBookingNumber(prefix string) (string, error) {
	f.lastPrefix = prefix
	return f.number, f.err
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestAllocateFirstOfDay(t *testing.T) {
	src := &fakeNumberSource{}
	svc := NumberingService{
		Bookings: src,
		Now:      fixedClock(time.Date(2026, 1, 18, 10, 30, 0, 0, time.Local)),
	}

	got := svc.Allocate()
	if got.Number != "26011801" {
		t.Fatalf("expected 26011801, got %s", got.Number)
	}
	if got.Degraded {
		t.Fatalf("first allocation should not be degraded")
	}
	if src.lastPrefix != "260118" {
		t.Fatalf("queried wrong prefix %s", src.lastPrefix)
	}
}

func TestAllocateSequentialIncrement(t *testing.T) {
	src := &fakeNumberSource{}
	svc := NumberingService{
		Bookings: src,
		Now:      fixedClock(time.Date(2026, 1, 18, 10, 30, 0, 0, time.Local)),
	}

	first := svc.Allocate()
	src.number = first.Number
	second := svc.Allocate()

	if second.Number != "26011802" {
		t.Fatalf("expected second allocation 26011802, got %s", second.Number)
	}
}

func TestAllocateDayBoundaryResets(t *testing.T) {
	src := &fakeNumberSource{number: "26011807"}
	svc := NumberingService{
		Bookings: src,
		Now:      fixedClock(time.Date(2026, 1, 18, 23, 59, 0, 0, time.Local)),
	}

	if got := svc.Allocate(); got.Number != "26011808" {
		t.Fatalf("expected 26011808, got %s", got.Number)
	}

	// Next day: no bookings carry the new prefix yet.
	src.number = ""
	svc.Now = fixedClock(time.Date(2026, 1, 19, 0, 1, 0, 0, time.Local))

	got := svc.Allocate()
	if got.Number != "26011901" {
		t.Fatalf("expected sequence reset to 26011901, got %s", got.Number)
	}
}

func TestAllocateFallbackOnStoreError(t *testing.T) {
	now := time.Date(2026, 1, 18, 10, 30, 0, 123_000_000, time.Local)
	src := &fakeNumberSource{err: errors.New("store unreachable")}
	svc := NumberingService{Bookings: src, Now: fixedClock(now)}

	got := svc.Allocate()
	if !got.Degraded {
		t.Fatalf("store error should produce degraded allocation")
	}
	want := fmt.Sprintf("260118%02d", now.UnixMilli()%100)
	if got.Number != want {
		t.Fatalf("expected fallback %s, got %s", want, got.Number)
	}
	if len(got.Number) != 8 {
		t.Fatalf("fallback number should stay 8 chars, got %q", got.Number)
	}
}

func TestAllocateNonNumericSuffix(t *testing.T) {
	src := &fakeNumberSource{number: "260118XY"}
	svc := NumberingService{
		Bookings: src,
		Now:      fixedClock(time.Date(2026, 1, 18, 10, 30, 0, 0, time.Local)),
	}

	got := svc.Allocate()
	if got.Number != "26011801" {
		t.Fatalf("non-numeric suffix should restart at 01, got %s", got.Number)
	}
	if got.Degraded {
		t.Fatalf("suffix parse failure is a silent recovery, not degradation")
	}
}

func TestAllocateOverflowDegrades(t *testing.T) {
	now := time.Date(2026, 1, 18, 10, 30, 0, 456_000_000, time.Local)
	src := &fakeNumberSource{number: "26011899"}
	svc := NumberingService{Bookings: src, Now: fixedClock(now)}

	got := svc.Allocate()
	if !got.Degraded {
		t.Fatalf("sequence past 99 should degrade instead of widening the suffix")
	}
	if got.Number[:6] != "260118" {
		t.Fatalf("fallback must keep the date prefix, got %s", got.Number)
	}
}
