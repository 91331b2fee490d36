package scheduling

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/medibook/medibook/internal/domain/identity"
	"github.com/medibook/medibook/internal/platform/auth"
	"github.com/medibook/medibook/internal/platform/cache"
	"github.com/medibook/medibook/internal/platform/civil"
	"github.com/medibook/medibook/internal/platform/db"
	"github.com/medibook/medibook/internal/platform/validation"
)

// DirectoryReader resolves doctors and patients. Satisfied by the identity
// service.
type DirectoryReader interface {
	GetDoctor(ctx context.Context, id int64) (*identity.Doctor, error)
	GetPatient(ctx context.Context, id int64) (*identity.Patient, error)
}

// Service drives the appointment lifecycle. Booking re-validates inside a
// transaction, and the store's exclusion constraint over each doctor's
// non-cancelled time ranges backstops the check when two bookings race.
type Service struct {
	repo      Repository
	validator *BookingValidator
	directory DirectoryReader
	tx        db.TxRunner
	cache     *cache.SlotCache
	log       zerolog.Logger
}

func NewService(repo Repository, validator *BookingValidator, directory DirectoryReader, tx db.TxRunner, c *cache.SlotCache, log zerolog.Logger) *Service {
	return &Service{repo: repo, validator: validator, directory: directory, tx: tx, cache: c, log: log}
}

func (s *Service) invalidate(doctorID int64, date civil.Date) {
	if s.cache != nil {
		s.cache.Invalidate(doctorID, date)
	}
}

// Book creates a pending appointment for the request, deriving the end time
// from the doctor's slot length. Patients may only book for themselves.
func (s *Service) Book(ctx context.Context, actor auth.Actor, req BookingRequest) (*Appointment, error) {
	if actor.Role == auth.RolePatient && !actor.IsPatient(req.PatientID) {
		return nil, validation.Errorf("patient_id", "patients may only book for themselves")
	}
	if req.Date.Before(civil.Today()) {
		return nil, validation.Errorf("date", "cannot book a past date")
	}

	doctor, err := s.directory.GetDoctor(ctx, req.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("resolve doctor %d: %w", req.DoctorID, err)
	}
	if _, err := s.directory.GetPatient(ctx, req.PatientID); err != nil {
		return nil, fmt.Errorf("resolve patient %d: %w", req.PatientID, err)
	}

	appt := &Appointment{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.StartTime.AddMinutes(doctor.SlotMinutes),
		Status:    StatusPending,
		Reason:    req.Reason,
		Notes:     req.Notes,
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.validator.Validate(ctx, appt.DoctorID, appt.Date, appt.StartTime, appt.EndTime, 0); err != nil {
			return err
		}
		return s.repo.Create(ctx, appt)
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(appt.DoctorID, appt.Date)
	s.log.Info().
		Int64("appointment_id", appt.ID).
		Int64("doctor_id", appt.DoctorID).
		Int64("patient_id", appt.PatientID).
		Str("date", appt.Date.String()).
		Str("start", appt.StartTime.String()).
		Msg("appointment booked")
	return appt, nil
}

// Get loads an appointment. Patients see only their own.
func (s *Service) Get(ctx context.Context, actor auth.Actor, id int64) (*Appointment, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role == auth.RolePatient && !actor.IsPatient(appt.PatientID) {
		return nil, db.ErrNotFound
	}
	return appt, nil
}

func (s *Service) changeStatus(ctx context.Context, actor auth.Actor, id int64, to Status) (*Appointment, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := CheckTransition(appt, to, actor); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, to); err != nil {
		return nil, err
	}
	appt.Status = to

	s.invalidate(appt.DoctorID, appt.Date)
	s.log.Info().
		Int64("appointment_id", id).
		Str("status", string(to)).
		Msg("appointment status changed")
	return appt, nil
}

// Confirm moves a pending appointment to confirmed. Doctor or admin only.
func (s *Service) Confirm(ctx context.Context, actor auth.Actor, id int64) (*Appointment, error) {
	return s.changeStatus(ctx, actor, id, StatusConfirmed)
}

// Complete marks a confirmed appointment as done. Doctor or admin only.
func (s *Service) Complete(ctx context.Context, actor auth.Actor, id int64) (*Appointment, error) {
	return s.changeStatus(ctx, actor, id, StatusCompleted)
}

// Cancel releases an appointment's slot. Patients may cancel their own;
// doctors and admins may cancel any.
func (s *Service) Cancel(ctx context.Context, actor auth.Actor, id int64) (*Appointment, error) {
	return s.changeStatus(ctx, actor, id, StatusCancelled)
}

// UpdateDetails rewrites an appointment's reason and notes. Doctor or admin
// only; the slot and status are untouched.
func (s *Service) UpdateDetails(ctx context.Context, actor auth.Actor, id int64, reason, notes string) (*Appointment, error) {
	if actor.Role == auth.RolePatient {
		return nil, ErrPermissionDenied
	}
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateDetails(ctx, id, reason, notes); err != nil {
		return nil, err
	}
	appt.Reason = reason
	appt.Notes = notes
	return appt, nil
}

// Delete removes an appointment outright, freeing its slot without leaving a
// cancelled row behind. Admin only.
func (s *Service) Delete(ctx context.Context, actor auth.Actor, id int64) error {
	if actor.Role != auth.RoleAdmin {
		return ErrPermissionDenied
	}
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(appt.DoctorID, appt.Date)
	s.log.Info().
		Int64("appointment_id", id).
		Int64("doctor_id", appt.DoctorID).
		Msg("appointment deleted")
	return nil
}

// Reschedule moves an active appointment to a new date and start time. The
// new slot is validated like a fresh booking, minus the appointment itself,
// and the status resets to pending so the clinic re-confirms.
func (s *Service) Reschedule(ctx context.Context, actor auth.Actor, id int64, date civil.Date, start civil.TimeOfDay) (*Appointment, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := CanReschedule(appt, actor); err != nil {
		return nil, err
	}
	if date.Before(civil.Today()) {
		return nil, validation.Errorf("date", "cannot reschedule to a past date")
	}

	duration := appt.EndTime.Minutes() - appt.StartTime.Minutes()
	end := start.AddMinutes(duration)

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.validator.Validate(ctx, appt.DoctorID, date, start, end, appt.ID); err != nil {
			return err
		}
		return s.repo.UpdateSlot(ctx, appt.ID, date, start, end, StatusPending)
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(appt.DoctorID, appt.Date)
	s.invalidate(appt.DoctorID, date)
	s.log.Info().
		Int64("appointment_id", id).
		Str("date", date.String()).
		Str("start", start.String()).
		Msg("appointment rescheduled")

	appt.Date = date
	appt.StartTime = start
	appt.EndTime = end
	appt.Status = StatusPending
	return appt, nil
}
