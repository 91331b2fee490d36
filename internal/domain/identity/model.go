package identity

import (
	"time"

	"github.com/medibook/medibook/internal/platform/civil"
)

// Doctor maps to the doctors table.
type Doctor struct {
	ID              int64     `db:"id" json:"id"`
	FirstName       string    `db:"first_name" json:"first_name"`
	LastName        string    `db:"last_name" json:"last_name"`
	Specialization  string    `db:"specialization" json:"specialization"`
	Location        string    `db:"location" json:"location,omitempty"`
	Rating          float64   `db:"rating" json:"rating,omitempty"`
	ConsultationFee float64   `db:"consultation_fee" json:"consultation_fee,omitempty"`
	SlotMinutes     int       `db:"slot_minutes" json:"slot_minutes"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// FullName returns "First Last" for display rows.
func (d *Doctor) FullName() string { return d.FirstName + " " + d.LastName }

// Patient maps to the patients table.
type Patient struct {
	ID          int64       `db:"id" json:"id"`
	FirstName   string      `db:"first_name" json:"first_name"`
	LastName    string      `db:"last_name" json:"last_name"`
	Email       string      `db:"email" json:"email,omitempty"`
	Phone       string      `db:"phone" json:"phone,omitempty"`
	DateOfBirth *civil.Date `db:"date_of_birth" json:"date_of_birth,omitempty"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
}

// FullName returns "First Last" for display rows.
func (p *Patient) FullName() string { return p.FirstName + " " + p.LastName }
