package scheduling

import (
	"context"

	"github.com/medibook/medibook/internal/platform/civil"
	"github.com/medibook/medibook/internal/platform/validation"
)

// QueryService serves read-only schedule views. Every list result is a
// concrete slice, empty rather than nil when nothing matches.
type QueryService struct {
	repo  Repository
	slots *SlotGenerator
	// now is swapped in tests to pin "today".
	now func() civil.Date
}

func NewQueryService(repo Repository, slots *SlotGenerator) *QueryService {
	return &QueryService{repo: repo, slots: slots, now: civil.Today}
}

// AppointmentsOnDate returns the doctor's full day sheet, cancelled rows
// included, ordered by start time.
func (q *QueryService) AppointmentsOnDate(ctx context.Context, doctorID int64, date civil.Date) ([]*Appointment, error) {
	return q.repo.ListOnDate(ctx, doctorID, date)
}

// AppointmentsInRange returns the doctor's appointments with
// from <= date < to.
func (q *QueryService) AppointmentsInRange(ctx context.Context, doctorID int64, from, to civil.Date) ([]*Appointment, error) {
	if to.Before(from) {
		return nil, validation.Errorf("to", "range end %s precedes start %s", to, from)
	}
	return q.repo.ListInRange(ctx, doctorID, from, to)
}

// AppointmentsForPatientOnDate returns the patient's appointments on a date,
// cancelled rows included, ordered by start time.
func (q *QueryService) AppointmentsForPatientOnDate(ctx context.Context, patientID int64, date civil.Date) ([]*Appointment, error) {
	return q.repo.ListForPatientOnDate(ctx, patientID, date)
}

// UpcomingForPatient returns the patient's pending and confirmed
// appointments from today onward, soonest first.
func (q *QueryService) UpcomingForPatient(ctx context.Context, patientID int64) ([]*Appointment, error) {
	return q.repo.UpcomingForPatient(ctx, patientID, q.now())
}

// HistoryForPatient returns the patient's full appointment history, newest
// first.
func (q *QueryService) HistoryForPatient(ctx context.Context, patientID int64) ([]*Appointment, error) {
	return q.repo.HistoryForPatient(ctx, patientID)
}

// AvailableSlots returns the open slot intervals for a doctor on a date,
// using the doctor's configured slot length.
func (q *QueryService) AvailableSlots(ctx context.Context, doctorID int64, date civil.Date, durationMinutes int) ([]civil.TimeRange, error) {
	return q.slots.AvailableSlots(ctx, doctorID, date, durationMinutes)
}

// StatsForDoctor summarizes the doctor's load. "This week" is the Monday
// through Sunday week containing today.
func (q *QueryService) StatsForDoctor(ctx context.Context, doctorID int64) (*DoctorStats, error) {
	today := q.now()
	weekStart := today.AddDays(1 - today.Weekday())
	weekEnd := weekStart.AddDays(7)
	return q.repo.StatsForDoctor(ctx, doctorID, today, weekStart, weekEnd)
}

// StatsForPatient summarizes the patient's appointment history.
func (q *QueryService) StatsForPatient(ctx context.Context, patientID int64) (*PatientStats, error) {
	return q.repo.StatsForPatient(ctx, patientID)
}
