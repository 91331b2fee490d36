package scheduling

import (
	"time"

	"github.com/medibook/medibook/internal/platform/civil"
)

// Status is an appointment lifecycle state. Stored as one of the four
// lowercase literals; anything else is rejected before it reaches the
// database.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Active reports whether the appointment still occupies its slot. Cancelled
// appointments free the slot; completed ones are in the past and no longer
// block deletes.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Appointment maps to the appointments table. PatientName and DoctorName are
// joined display fields populated on reads, never written back.
type Appointment struct {
	ID        int64           `db:"id" json:"id"`
	PatientID int64           `db:"patient_id" json:"patient_id"`
	DoctorID  int64           `db:"doctor_id" json:"doctor_id"`
	Date      civil.Date      `db:"date" json:"date"`
	StartTime civil.TimeOfDay `db:"start_time" json:"start_time"`
	EndTime   civil.TimeOfDay `db:"end_time" json:"end_time"`
	Status    Status          `db:"status" json:"status"`
	Reason    string          `db:"reason" json:"reason,omitempty"`
	Notes     string          `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`

	PatientName string `db:"-" json:"patient_name,omitempty"`
	DoctorName  string `db:"-" json:"doctor_name,omitempty"`
}

// Overlaps reports whether another booking on the same doctor and date would
// collide with this one. Ranges are half-open, so back-to-back appointments
// do not overlap.
func (a *Appointment) Overlaps(start, end civil.TimeOfDay) bool {
	return a.StartTime.Before(end) && start.Before(a.EndTime)
}

// BookingRequest carries everything needed to create an appointment. The end
// time is derived from the doctor's slot length, not supplied by the caller.
type BookingRequest struct {
	PatientID int64
	DoctorID  int64
	Date      civil.Date
	StartTime civil.TimeOfDay
	Reason    string
	Notes     string
}

// DoctorStats summarizes a doctor's appointment load.
type DoctorStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Today     int `json:"today"`
	ThisWeek  int `json:"this_week"`
}

// PatientStats summarizes a patient's appointment history.
type PatientStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}
