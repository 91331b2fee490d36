package scheduling

import (
	"context"

	"github.com/medibook/medibook/internal/domain/availability"
	"github.com/medibook/medibook/internal/platform/civil"
)

// BookingValidator decides whether a requested time range may be booked.
// Availability is checked first, then conflicts, so a request that is both
// outside working hours and colliding reports ErrOutOfAvailability.
type BookingValidator struct {
	availability AvailabilityReader
	appointments Repository
}

func NewBookingValidator(avail AvailabilityReader, appts Repository) *BookingValidator {
	return &BookingValidator{availability: avail, appointments: appts}
}

// Validate checks a booking for doctorID at [start, end) on date. excludeID
// skips one appointment in the conflict scan, used when rescheduling so the
// appointment does not collide with itself. Pass 0 for new bookings.
func (v *BookingValidator) Validate(ctx context.Context, doctorID int64, date civil.Date, start, end civil.TimeOfDay, excludeID int64) error {
	absent, err := v.availability.IsAbsent(ctx, doctorID, date)
	if err != nil {
		return err
	}
	if absent {
		return ErrOutOfAvailability
	}

	windows, err := v.availability.WindowsOn(ctx, doctorID, date)
	if err != nil {
		return err
	}
	if !fitsWindows(windows, start, end) {
		return ErrOutOfAvailability
	}

	existing, err := v.appointments.ActiveOnDate(ctx, doctorID, date)
	if err != nil {
		return err
	}
	for _, appt := range existing {
		if appt.ID == excludeID {
			continue
		}
		if appt.Overlaps(start, end) {
			return ErrConflict
		}
	}
	return nil
}

// fitsWindows reports whether [start, end) lies fully inside one window.
func fitsWindows(windows []*availability.Window, start, end civil.TimeOfDay) bool {
	if !start.Before(end) {
		return false
	}
	for _, w := range windows {
		if !start.Before(w.StartTime) && !w.EndTime.Before(end) {
			return true
		}
	}
	return false
}
