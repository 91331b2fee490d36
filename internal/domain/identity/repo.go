package identity

import "context"

type DoctorRepository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id int64) (*Doctor, error)
	Update(ctx context.Context, d *Doctor) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*Doctor, int, error)
	SearchBySpecialization(ctx context.Context, specialization string, limit, offset int) ([]*Doctor, int, error)
}

type PatientRepository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id int64) (*Patient, error)
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*Patient, int, error)
}

// ActiveAppointmentCounter is the slice of the appointment store the delete
// policy needs: how many pending or confirmed appointments still reference an
// entity. Implemented by the scheduling repository.
type ActiveAppointmentCounter interface {
	CountActiveForDoctor(ctx context.Context, doctorID int64) (int, error)
	CountActiveForPatient(ctx context.Context, patientID int64) (int, error)
}
