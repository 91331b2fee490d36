package scheduling

import (
	"context"

	"github.com/medibook/medibook/internal/domain/availability"
	"github.com/medibook/medibook/internal/platform/cache"
	"github.com/medibook/medibook/internal/platform/civil"
	"github.com/medibook/medibook/internal/platform/validation"
)

// AvailabilityReader is the slice of the availability service slot
// generation depends on.
type AvailabilityReader interface {
	WindowsOn(ctx context.Context, doctorID int64, date civil.Date) ([]*availability.Window, error)
	IsAbsent(ctx context.Context, doctorID int64, date civil.Date) (bool, error)
}

// SlotGenerator turns a doctor's weekly windows into bookable intervals for
// concrete dates.
type SlotGenerator struct {
	availability AvailabilityReader
	appointments Repository
	cache        *cache.SlotCache
}

// NewSlotGenerator builds a generator. cache may be nil, in which case every
// call recomputes.
func NewSlotGenerator(avail AvailabilityReader, appts Repository, c *cache.SlotCache) *SlotGenerator {
	return &SlotGenerator{availability: avail, appointments: appts, cache: c}
}

// GenerateSlots walks the doctor's windows for the weekday of date and
// returns every slot interval, booked or not, in ascending order. A slot is
// emitted only if the full duration fits inside its window, so a 30 minute
// grid over 09:00-12:00 yields six slots and a trailing partial gap yields
// none. Absent days and days without windows produce an empty slice.
func (g *SlotGenerator) GenerateSlots(ctx context.Context, doctorID int64, date civil.Date, durationMinutes int) ([]civil.TimeRange, error) {
	if durationMinutes <= 0 {
		return nil, validation.Errorf("duration", "must be positive, got %d minutes", durationMinutes)
	}

	absent, err := g.availability.IsAbsent(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}
	if absent {
		return []civil.TimeRange{}, nil
	}

	windows, err := g.availability.WindowsOn(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}

	slots := []civil.TimeRange{}
	for _, w := range windows {
		for t := w.StartTime; !w.EndTime.Before(t.AddMinutes(durationMinutes)); t = t.AddMinutes(durationMinutes) {
			slots = append(slots, civil.NewTimeRange(t, durationMinutes))
		}
	}
	return slots, nil
}

// AvailableSlots returns the slots still open for booking on date, filtering
// out every slot that overlaps a non-cancelled appointment. Results are
// cached per doctor, date and duration; appointment writes invalidate the
// day and schedule changes invalidate the doctor.
func (g *SlotGenerator) AvailableSlots(ctx context.Context, doctorID int64, date civil.Date, durationMinutes int) ([]civil.TimeRange, error) {
	if g.cache != nil {
		if cached, ok := g.cache.Get(doctorID, date, durationMinutes); ok {
			return cached, nil
		}
	}

	all, err := g.GenerateSlots(ctx, doctorID, date, durationMinutes)
	if err != nil {
		return nil, err
	}

	booked, err := g.appointments.ActiveOnDate(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}

	open := []civil.TimeRange{}
	for _, slot := range all {
		taken := false
		for _, appt := range booked {
			if appt.Overlaps(slot.Start, slot.End) {
				taken = true
				break
			}
		}
		if !taken {
			open = append(open, slot)
		}
	}

	if g.cache != nil {
		g.cache.Put(doctorID, date, durationMinutes, open)
	}
	return open, nil
}
