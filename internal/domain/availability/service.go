package availability

import (
	"context"

	"github.com/medibook/medibook/internal/platform/cache"
	"github.com/medibook/medibook/internal/platform/civil"
	"github.com/medibook/medibook/internal/platform/validation"
)

type Service struct {
	windows  WindowRepository
	absences AbsenceRepository
	cache    *cache.SlotCache
}

// NewService builds the availability service. c may be nil; when set, every
// schedule write drops the doctor's cached slot computations, since a window
// or absence change affects an unbounded set of dates.
func NewService(windows WindowRepository, absences AbsenceRepository, c *cache.SlotCache) *Service {
	return &Service{windows: windows, absences: absences, cache: c}
}

func (s *Service) invalidate(doctorID int64) {
	if s.cache != nil {
		s.cache.InvalidateDoctor(doctorID)
	}
}

func validateWindow(w *Window) error {
	if w.DoctorID == 0 {
		return validation.Errorf("doctor_id", "doctor is required")
	}
	if w.DayOfWeek < 1 || w.DayOfWeek > 7 {
		return validation.Errorf("day_of_week", "must be 1 (Monday) through 7 (Sunday), got %d", w.DayOfWeek)
	}
	if !w.StartTime.Before(w.EndTime) {
		return validation.Errorf("start_time", "start %s must be before end %s", w.StartTime, w.EndTime)
	}
	return nil
}

// overlaps reports whether two half-open time ranges intersect.
func overlaps(aStart, aEnd, bStart, bEnd civil.TimeOfDay) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// AddWindow creates a weekly window after checking it against the doctor's
// existing windows on the same weekday.
func (s *Service) AddWindow(ctx context.Context, w *Window) error {
	if err := validateWindow(w); err != nil {
		return err
	}
	existing, err := s.windows.ListForDay(ctx, w.DoctorID, w.DayOfWeek)
	if err != nil {
		return err
	}
	for _, e := range existing {
		if overlaps(w.StartTime, w.EndTime, e.StartTime, e.EndTime) {
			return validation.Errorf("start_time", "window %s-%s overlaps existing window %s-%s",
				w.StartTime, w.EndTime, e.StartTime, e.EndTime)
		}
	}
	if err := s.windows.Create(ctx, w); err != nil {
		return err
	}
	s.invalidate(w.DoctorID)
	return nil
}

// UpdateWindow rewrites a window, re-checking overlap against the other
// windows on its weekday.
func (s *Service) UpdateWindow(ctx context.Context, w *Window) error {
	if err := validateWindow(w); err != nil {
		return err
	}
	existing, err := s.windows.ListForDay(ctx, w.DoctorID, w.DayOfWeek)
	if err != nil {
		return err
	}
	for _, e := range existing {
		if e.ID == w.ID {
			continue
		}
		if overlaps(w.StartTime, w.EndTime, e.StartTime, e.EndTime) {
			return validation.Errorf("start_time", "window %s-%s overlaps existing window %s-%s",
				w.StartTime, w.EndTime, e.StartTime, e.EndTime)
		}
	}
	if err := s.windows.Update(ctx, w); err != nil {
		return err
	}
	s.invalidate(w.DoctorID)
	return nil
}

func (s *Service) RemoveWindow(ctx context.Context, id int64) error {
	w, err := s.windows.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.windows.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(w.DoctorID)
	return nil
}

// WeeklySchedule returns every window a doctor has, ordered by weekday then
// start time.
func (s *Service) WeeklySchedule(ctx context.Context, doctorID int64) ([]*Window, error) {
	return s.windows.ListForDoctor(ctx, doctorID)
}

// WindowsOn returns the doctor's open windows for the weekday of date,
// ordered by start time. An empty result means the doctor does not work that
// weekday; it does not consider absences.
func (s *Service) WindowsOn(ctx context.Context, doctorID int64, date civil.Date) ([]*Window, error) {
	return s.windows.ListForDay(ctx, doctorID, date.Weekday())
}

// IsAbsent reports whether the doctor has a recorded absence covering date.
func (s *Service) IsAbsent(ctx context.Context, doctorID int64, date civil.Date) (bool, error) {
	return s.absences.AnyCovering(ctx, doctorID, date)
}

// RecordAbsence registers a blocked date range for a doctor.
func (s *Service) RecordAbsence(ctx context.Context, a *Absence) error {
	if a.DoctorID == 0 {
		return validation.Errorf("doctor_id", "doctor is required")
	}
	if a.EndDate.Before(a.StartDate) {
		return validation.Errorf("end_date", "end %s precedes start %s", a.EndDate, a.StartDate)
	}
	if err := s.absences.Create(ctx, a); err != nil {
		return err
	}
	s.invalidate(a.DoctorID)
	return nil
}

func (s *Service) RemoveAbsence(ctx context.Context, id int64) error {
	a, err := s.absences.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.absences.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(a.DoctorID)
	return nil
}

func (s *Service) ListAbsences(ctx context.Context, doctorID int64) ([]*Absence, error) {
	return s.absences.ListForDoctor(ctx, doctorID)
}
