// Package seed loads a small reproducible demo dataset: a handful of
// doctors with weekly hours, a few patients, and login material for each.
// Intended for developer databases and demos, never production.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/medibook/medibook/internal/domain/availability"
	"github.com/medibook/medibook/internal/domain/identity"
	"github.com/medibook/medibook/internal/platform/auth"
	"github.com/medibook/medibook/internal/platform/civil"
	"github.com/medibook/medibook/internal/platform/db"
)

// Seeder writes demo rows through the domain services so the data passes the
// same validation as real input.
type Seeder struct {
	identity     *identity.Service
	availability *availability.Service
	conn         db.Queryable
	log          zerolog.Logger
}

func New(identitySvc *identity.Service, availabilitySvc *availability.Service, conn db.Queryable, log zerolog.Logger) *Seeder {
	return &Seeder{identity: identitySvc, availability: availabilitySvc, conn: conn, log: log}
}

type demoDoctor struct {
	doctor   identity.Doctor
	username string
	// weekdays the doctor works, 09:00-12:00 and 14:00-17:00.
	days []int
}

var demoDoctors = []demoDoctor{
	{
		doctor:   identity.Doctor{FirstName: "Amina", LastName: "Benali", Specialization: "Cardiology", Location: "Building A", Rating: 4.8, ConsultationFee: 60, SlotMinutes: 30},
		username: "a.benali",
		days:     []int{1, 2, 3, 4, 5},
	},
	{
		doctor:   identity.Doctor{FirstName: "Karim", LastName: "Haddad", Specialization: "Dermatology", Location: "Building B", Rating: 4.5, ConsultationFee: 45, SlotMinutes: 20},
		username: "k.haddad",
		days:     []int{1, 3, 5},
	},
	{
		doctor:   identity.Doctor{FirstName: "Lina", LastName: "Mansour", Specialization: "Pediatrics", Location: "Building A", Rating: 4.9, ConsultationFee: 50, SlotMinutes: 15},
		username: "l.mansour",
		days:     []int{2, 4},
	},
}

var demoPatients = []struct {
	patient  identity.Patient
	username string
	birth    string
}{
	{identity.Patient{FirstName: "Yacine", LastName: "Cherif", Email: "yacine@example.com", Phone: "0550000001"}, "y.cherif", "1990-04-12"},
	{identity.Patient{FirstName: "Sara", LastName: "Toumi", Email: "sara@example.com", Phone: "0550000002"}, "s.toumi", "1985-11-03"},
	{identity.Patient{FirstName: "Omar", LastName: "Ziani", Email: "omar@example.com", Phone: "0550000003"}, "o.ziani", "2001-07-25"},
}

const demoPassword = "changeme"

// Run inserts the demo dataset. It is not idempotent; run it against an
// empty database.
func (s *Seeder) Run(ctx context.Context) error {
	for _, dd := range demoDoctors {
		d := dd.doctor
		if err := s.identity.CreateDoctor(ctx, &d); err != nil {
			return fmt.Errorf("seed doctor %s: %w", dd.username, err)
		}
		if err := s.storeCredential(ctx, "doctor", d.ID, dd.username); err != nil {
			return err
		}
		for _, day := range dd.days {
			morning := &availability.Window{DoctorID: d.ID, DayOfWeek: day, StartTime: civil.NewTimeOfDay(9, 0), EndTime: civil.NewTimeOfDay(12, 0), IsAvailable: true}
			afternoon := &availability.Window{DoctorID: d.ID, DayOfWeek: day, StartTime: civil.NewTimeOfDay(14, 0), EndTime: civil.NewTimeOfDay(17, 0), IsAvailable: true}
			if err := s.availability.AddWindow(ctx, morning); err != nil {
				return fmt.Errorf("seed windows for %s: %w", dd.username, err)
			}
			if err := s.availability.AddWindow(ctx, afternoon); err != nil {
				return fmt.Errorf("seed windows for %s: %w", dd.username, err)
			}
		}
		s.log.Info().Int64("doctor_id", d.ID).Str("username", dd.username).Msg("seeded doctor")
	}

	for _, dp := range demoPatients {
		p := dp.patient
		birth, err := civil.ParseDate(dp.birth)
		if err != nil {
			return fmt.Errorf("seed patient %s: %w", dp.username, err)
		}
		p.DateOfBirth = &birth
		if err := s.identity.CreatePatient(ctx, &p); err != nil {
			return fmt.Errorf("seed patient %s: %w", dp.username, err)
		}
		if err := s.storeCredential(ctx, "patient", p.ID, dp.username); err != nil {
			return err
		}
		s.log.Info().Int64("patient_id", p.ID).Str("username", dp.username).Msg("seeded patient")
	}

	// The admin login has no doctor or patient row behind it, so entity_id 0.
	if err := s.storeCredential(ctx, "admin", 0, "admin"); err != nil {
		return err
	}
	s.log.Info().Str("username", "admin").Msg("seeded admin")
	return nil
}

func (s *Seeder) storeCredential(ctx context.Context, entityType string, entityID int64, username string) error {
	hash, err := auth.HashPassword(demoPassword)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}
	_, err = s.conn.Exec(ctx, `
		INSERT INTO credentials (entity_type, entity_id, username, password_hash)
		VALUES ($1,$2,$3,$4)`,
		entityType, entityID, username, hash)
	if err != nil {
		return fmt.Errorf("store credential %s: %w", username, err)
	}
	return nil
}
