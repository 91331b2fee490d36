package scheduling

import (
	"context"
	"testing"

	"github.com/medibook/medibook/internal/domain/availability"
	"github.com/medibook/medibook/internal/platform/civil"
	"github.com/medibook/medibook/internal/platform/validation"
)

func rangesEqual(got []civil.TimeRange, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i].String() != want[i] {
			return false
		}
	}
	return true
}

func TestGenerateSlots_ThirtyMinuteGrid(t *testing.T) {
	f := newFixture(t)

	got, err := f.slots.GenerateSlots(context.Background(), 1, mustDate(t, monday), 30)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	want := []string{"09:00-09:30", "09:30-10:00", "10:00-10:30", "10:30-11:00", "11:00-11:30", "11:30-12:00"}
	if !rangesEqual(got, want) {
		t.Errorf("slots = %v, want %v", got, want)
	}
}

func TestGenerateSlots_TruncatesPartialSlot(t *testing.T) {
	f := newFixture(t)
	f.avail.windows[1] = []*availability.Window{
		{ID: 1, DoctorID: 1, DayOfWeek: 1, StartTime: mustTime(t, "09:00"), EndTime: mustTime(t, "10:45"), IsAvailable: true},
	}

	got, err := f.slots.GenerateSlots(context.Background(), 1, mustDate(t, monday), 30)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	// The 10:30 slot would run to 11:00, past the 10:45 close.
	want := []string{"09:00-09:30", "09:30-10:00", "10:00-10:30"}
	if !rangesEqual(got, want) {
		t.Errorf("slots = %v, want %v", got, want)
	}
}

func TestGenerateSlots_MultipleWindows(t *testing.T) {
	f := newFixture(t)
	f.avail.windows[1] = []*availability.Window{
		{ID: 1, DoctorID: 1, DayOfWeek: 1, StartTime: mustTime(t, "09:00"), EndTime: mustTime(t, "10:00"), IsAvailable: true},
		{ID: 2, DoctorID: 1, DayOfWeek: 1, StartTime: mustTime(t, "14:00"), EndTime: mustTime(t, "15:00"), IsAvailable: true},
	}

	got, err := f.slots.GenerateSlots(context.Background(), 1, mustDate(t, monday), 30)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	want := []string{"09:00-09:30", "09:30-10:00", "14:00-14:30", "14:30-15:00"}
	if !rangesEqual(got, want) {
		t.Errorf("slots = %v, want %v", got, want)
	}
}

func TestGenerateSlots_InvalidDuration(t *testing.T) {
	f := newFixture(t)

	for _, dur := range []int{0, -15} {
		if _, err := f.slots.GenerateSlots(context.Background(), 1, mustDate(t, monday), dur); !validation.IsError(err) {
			t.Errorf("duration %d: got %v, want validation error", dur, err)
		}
	}
}

func TestGenerateSlots_EmptyCases(t *testing.T) {
	f := newFixture(t)
	f.avail.absences = append(f.avail.absences, &availability.Absence{
		DoctorID: 1, StartDate: mustDate(t, monday), EndDate: mustDate(t, monday),
	})

	got, err := f.slots.GenerateSlots(context.Background(), 1, mustDate(t, monday), 30)
	if err != nil {
		t.Fatalf("GenerateSlots absent day: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("absent day: got %v, want empty non-nil slice", got)
	}

	// Tuesday has no windows at all.
	got, err = f.slots.GenerateSlots(context.Background(), 1, mustDate(t, "2099-01-06"), 30)
	if err != nil {
		t.Fatalf("GenerateSlots no windows: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("day without windows: got %v, want empty non-nil slice", got)
	}
}

func TestAvailableSlots_FiltersBooked(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	date := mustDate(t, monday)

	if _, err := f.svc.Book(ctx, patient1, BookingRequest{PatientID: 1, DoctorID: 1, Date: date, StartTime: mustTime(t, "10:00")}); err != nil {
		t.Fatalf("Book: %v", err)
	}

	got, err := f.slots.AvailableSlots(ctx, 1, date, 30)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	want := []string{"09:00-09:30", "09:30-10:00", "10:30-11:00", "11:00-11:30", "11:30-12:00"}
	if !rangesEqual(got, want) {
		t.Errorf("available = %v, want %v", got, want)
	}
}

func TestAvailableSlots_CancelledDoesNotBlock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	date := mustDate(t, monday)

	appt, err := f.svc.Book(ctx, patient1, BookingRequest{PatientID: 1, DoctorID: 1, Date: date, StartTime: mustTime(t, "10:00")})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if _, err := f.svc.Cancel(ctx, patient1, appt.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	got, err := f.slots.AvailableSlots(ctx, 1, date, 30)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	if len(got) != 6 {
		t.Errorf("expected all 6 slots open after cancellation, got %d", len(got))
	}
}

func TestAvailableSlots_CacheInvalidatedByBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	date := mustDate(t, monday)

	// Prime the cache with a fully open day.
	first, err := f.slots.AvailableSlots(ctx, 1, date, 30)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	if len(first) != 6 {
		t.Fatalf("expected 6 open slots, got %d", len(first))
	}

	if _, err := f.svc.Book(ctx, patient1, BookingRequest{PatientID: 1, DoctorID: 1, Date: date, StartTime: mustTime(t, "09:00")}); err != nil {
		t.Fatalf("Book: %v", err)
	}

	second, err := f.slots.AvailableSlots(ctx, 1, date, 30)
	if err != nil {
		t.Fatalf("AvailableSlots after booking: %v", err)
	}
	if len(second) != 5 {
		t.Errorf("expected booking to drop a slot via cache invalidation, got %d slots", len(second))
	}
}
