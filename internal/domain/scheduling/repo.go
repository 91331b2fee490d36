package scheduling

import (
	"context"

	"github.com/medibook/medibook/internal/platform/civil"
)

// Repository persists appointments. The store refuses any write that would
// leave two overlapping non-cancelled appointments for one doctor, even when
// the start times differ; implementations map that violation to ErrConflict
// so racing bookings surface the same error as the pre-check.
type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id int64) (*Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
	// UpdateSlot moves an appointment to a new date and time range, setting
	// status in the same write.
	UpdateSlot(ctx context.Context, id int64, date civil.Date, start, end civil.TimeOfDay, status Status) error
	UpdateDetails(ctx context.Context, id int64, reason, notes string) error
	// Delete removes the row outright, as opposed to cancelling.
	Delete(ctx context.Context, id int64) error

	// ActiveOnDate returns the doctor's non-cancelled appointments on a date
	// ordered by start time. Used for conflict checks and slot filtering.
	ActiveOnDate(ctx context.Context, doctorID int64, date civil.Date) ([]*Appointment, error)
	// ListOnDate returns all of the doctor's appointments on a date with
	// display names joined, ordered by start time.
	ListOnDate(ctx context.Context, doctorID int64, date civil.Date) ([]*Appointment, error)
	// ListForPatientOnDate is the patient-side day view.
	ListForPatientOnDate(ctx context.Context, patientID int64, date civil.Date) ([]*Appointment, error)
	// ListInRange returns the doctor's appointments with from <= date < to,
	// ordered by date then start time.
	ListInRange(ctx context.Context, doctorID int64, from, to civil.Date) ([]*Appointment, error)
	// UpcomingForPatient returns the patient's pending and confirmed
	// appointments on or after from, soonest first.
	UpcomingForPatient(ctx context.Context, patientID int64, from civil.Date) ([]*Appointment, error)
	// HistoryForPatient returns all of the patient's appointments, newest
	// date first.
	HistoryForPatient(ctx context.Context, patientID int64) ([]*Appointment, error)

	CountActiveForDoctor(ctx context.Context, doctorID int64) (int, error)
	CountActiveForPatient(ctx context.Context, patientID int64) (int, error)
	StatsForDoctor(ctx context.Context, doctorID int64, today, weekStart, weekEnd civil.Date) (*DoctorStats, error)
	StatsForPatient(ctx context.Context, patientID int64) (*PatientStats, error)
}
