package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/medibook/medibook/internal/platform/validation"
	"github.com/medibook/medibook/pkg/pagination"
)

// ErrHasActiveAppointments is returned when a hard delete would orphan
// pending or confirmed appointments. The caller must cancel or complete them
// first; deletion never cascades.
var ErrHasActiveAppointments = errors.New("entity has active appointments")

type Service struct {
	doctors  DoctorRepository
	patients PatientRepository
	active   ActiveAppointmentCounter
}

func NewService(doctors DoctorRepository, patients PatientRepository, active ActiveAppointmentCounter) *Service {
	return &Service{doctors: doctors, patients: patients, active: active}
}

// -- Doctor --

func validateDoctor(d *Doctor) error {
	if d.FirstName == "" || d.LastName == "" {
		return validation.Errorf("name", "first and last name are required")
	}
	if d.Specialization == "" {
		return validation.Errorf("specialization", "specialization is required")
	}
	if d.SlotMinutes == 0 {
		d.SlotMinutes = 30
	}
	switch d.SlotMinutes {
	case 15, 20, 30:
	default:
		return validation.Errorf("slot_minutes", "must be 15, 20 or 30, got %d", d.SlotMinutes)
	}
	return nil
}

func (s *Service) CreateDoctor(ctx context.Context, d *Doctor) error {
	if err := validateDoctor(d); err != nil {
		return err
	}
	return s.doctors.Create(ctx, d)
}

func (s *Service) GetDoctor(ctx context.Context, id int64) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) UpdateDoctor(ctx context.Context, d *Doctor) error {
	if err := validateDoctor(d); err != nil {
		return err
	}
	return s.doctors.Update(ctx, d)
}

// DeleteDoctor hard-deletes a doctor. Refused while any non-cancelled,
// non-completed appointment references the doctor.
func (s *Service) DeleteDoctor(ctx context.Context, id int64) error {
	n, err := s.active.CountActiveForDoctor(ctx, id)
	if err != nil {
		return fmt.Errorf("count active appointments: %w", err)
	}
	if n > 0 {
		return fmt.Errorf("doctor %d: %w", id, ErrHasActiveAppointments)
	}
	return s.doctors.Delete(ctx, id)
}

func (s *Service) ListDoctors(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	p := pagination.Normalize(limit, offset)
	return s.doctors.List(ctx, p.Limit, p.Offset)
}

func (s *Service) SearchDoctors(ctx context.Context, specialization string, limit, offset int) ([]*Doctor, int, error) {
	p := pagination.Normalize(limit, offset)
	return s.doctors.SearchBySpecialization(ctx, specialization, p.Limit, p.Offset)
}

// -- Patient --

func validatePatient(p *Patient) error {
	if p.FirstName == "" || p.LastName == "" {
		return validation.Errorf("name", "first and last name are required")
	}
	return nil
}

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if err := validatePatient(p); err != nil {
		return err
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id int64) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) UpdatePatient(ctx context.Context, p *Patient) error {
	if err := validatePatient(p); err != nil {
		return err
	}
	return s.patients.Update(ctx, p)
}

// DeletePatient hard-deletes a patient under the same policy as DeleteDoctor.
func (s *Service) DeletePatient(ctx context.Context, id int64) error {
	n, err := s.active.CountActiveForPatient(ctx, id)
	if err != nil {
		return fmt.Errorf("count active appointments: %w", err)
	}
	if n > 0 {
		return fmt.Errorf("patient %d: %w", id, ErrHasActiveAppointments)
	}
	return s.patients.Delete(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	p := pagination.Normalize(limit, offset)
	return s.patients.List(ctx, p.Limit, p.Offset)
}
