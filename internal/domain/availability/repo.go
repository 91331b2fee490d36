package availability

import (
	"context"

	"github.com/medibook/medibook/internal/platform/civil"
)

type WindowRepository interface {
	Create(ctx context.Context, w *Window) error
	GetByID(ctx context.Context, id int64) (*Window, error)
	Update(ctx context.Context, w *Window) error
	Delete(ctx context.Context, id int64) error
	// ListForDoctor returns all windows for a doctor ordered by day of week
	// then start time.
	ListForDoctor(ctx context.Context, doctorID int64) ([]*Window, error)
	// ListForDay returns the doctor's windows on one weekday ordered by
	// start time, available ones only.
	ListForDay(ctx context.Context, doctorID int64, dayOfWeek int) ([]*Window, error)
}

type AbsenceRepository interface {
	Create(ctx context.Context, a *Absence) error
	GetByID(ctx context.Context, id int64) (*Absence, error)
	Delete(ctx context.Context, id int64) error
	ListForDoctor(ctx context.Context, doctorID int64) ([]*Absence, error)
	// AnyCovering reports whether the doctor has an absence spanning date.
	AnyCovering(ctx context.Context, doctorID int64, date civil.Date) (bool, error)
}
