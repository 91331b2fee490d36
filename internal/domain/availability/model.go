package availability

import (
	"github.com/medibook/medibook/internal/platform/civil"
)

// Window is one recurring weekly opening hour block for a doctor.
// DayOfWeek runs 1 (Monday) through 7 (Sunday). A doctor may hold several
// windows on the same weekday as long as they do not overlap.
type Window struct {
	ID          int64           `db:"id" json:"id"`
	DoctorID    int64           `db:"doctor_id" json:"doctor_id"`
	DayOfWeek   int             `db:"day_of_week" json:"day_of_week"`
	StartTime   civil.TimeOfDay `db:"start_time" json:"start_time"`
	EndTime     civil.TimeOfDay `db:"end_time" json:"end_time"`
	IsAvailable bool            `db:"is_available" json:"is_available"`
}

// Absence blocks a doctor for a date range, bounds inclusive.
type Absence struct {
	ID        int64      `db:"id" json:"id"`
	DoctorID  int64      `db:"doctor_id" json:"doctor_id"`
	StartDate civil.Date `db:"start_date" json:"start_date"`
	EndDate   civil.Date `db:"end_date" json:"end_date"`
	Reason    string     `db:"reason" json:"reason,omitempty"`
}

// Covers reports whether the absence includes d.
func (a *Absence) Covers(d civil.Date) bool {
	return !d.Before(a.StartDate) && !d.After(a.EndDate)
}
