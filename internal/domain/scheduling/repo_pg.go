package scheduling

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medibook/medibook/internal/platform/civil"
	"github.com/medibook/medibook/internal/platform/db"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) db.Queryable { return db.Conn(ctx, r.pool) }

const apptCols = `a.id, a.patient_id, a.doctor_id, a.date, a.start_time, a.end_time,
	a.status, a.reason, a.notes, a.created_at, a.updated_at`

// apptJoin pulls the display names alongside the row. Every read goes
// through it so callers never see an appointment without names.
const apptJoin = `
	SELECT ` + apptCols + `,
		p.first_name || ' ' || p.last_name AS patient_name,
		d.first_name || ' ' || d.last_name AS doctor_name
	FROM appointments a
	JOIN patients p ON p.id = a.patient_id
	JOIN doctors d ON d.id = a.doctor_id`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.Date, &a.StartTime, &a.EndTime,
		&a.Status, &a.Reason, &a.Notes, &a.CreatedAt, &a.UpdatedAt, &a.PatientName, &a.DoctorName)
	if err != nil {
		return nil, db.NotFoundOr(err)
	}
	return &a, nil
}

func (r *repoPG) collect(rows pgx.Rows) ([]*Appointment, error) {
	defer rows.Close()
	items := []*Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO appointments (patient_id, doctor_id, date, start_time, end_time, status, reason, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id, created_at, updated_at`,
		a.PatientID, a.DoctorID, a.Date, a.StartTime, a.EndTime, a.Status, a.Reason, a.Notes).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if db.IsUniqueViolation(err) {
		return ErrConflict
	}
	return db.WrapStorage(err)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Appointment, error) {
	return scanAppointment(r.conn(ctx).QueryRow(ctx, apptJoin+` WHERE a.id = $1`, id))
}

func (r *repoPG) UpdateStatus(ctx context.Context, id int64, status Status) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE appointments SET status = $2, updated_at = now() WHERE id = $1`,
		id, status)
	if err != nil {
		return db.WrapStorage(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) UpdateSlot(ctx context.Context, id int64, date civil.Date, start, end civil.TimeOfDay, status Status) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE appointments
		SET date = $2, start_time = $3, end_time = $4, status = $5, updated_at = now()
		WHERE id = $1`,
		id, date, start, end, status)
	if db.IsUniqueViolation(err) {
		return ErrConflict
	}
	if err != nil {
		return db.WrapStorage(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) UpdateDetails(ctx context.Context, id int64, reason, notes string) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE appointments SET reason = $2, notes = $3, updated_at = now() WHERE id = $1`,
		id, reason, notes)
	if err != nil {
		return db.WrapStorage(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return db.WrapStorage(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *repoPG) ActiveOnDate(ctx context.Context, doctorID int64, date civil.Date) ([]*Appointment, error) {
	rows, err := r.conn(ctx).Query(ctx, apptJoin+`
		WHERE a.doctor_id = $1 AND a.date = $2 AND a.status <> 'cancelled'
		ORDER BY a.start_time ASC`, doctorID, date)
	if err != nil {
		return nil, db.WrapStorage(err)
	}
	return r.collect(rows)
}

func (r *repoPG) ListOnDate(ctx context.Context, doctorID int64, date civil.Date) ([]*Appointment, error) {
	rows, err := r.conn(ctx).Query(ctx, apptJoin+`
		WHERE a.doctor_id = $1 AND a.date = $2
		ORDER BY a.start_time ASC`, doctorID, date)
	if err != nil {
		return nil, db.WrapStorage(err)
	}
	return r.collect(rows)
}

func (r *repoPG) ListForPatientOnDate(ctx context.Context, patientID int64, date civil.Date) ([]*Appointment, error) {
	rows, err := r.conn(ctx).Query(ctx, apptJoin+`
		WHERE a.patient_id = $1 AND a.date = $2
		ORDER BY a.start_time ASC`, patientID, date)
	if err != nil {
		return nil, db.WrapStorage(err)
	}
	return r.collect(rows)
}

func (r *repoPG) ListInRange(ctx context.Context, doctorID int64, from, to civil.Date) ([]*Appointment, error) {
	rows, err := r.conn(ctx).Query(ctx, apptJoin+`
		WHERE a.doctor_id = $1 AND a.date >= $2 AND a.date < $3
		ORDER BY a.date ASC, a.start_time ASC`, doctorID, from, to)
	if err != nil {
		return nil, db.WrapStorage(err)
	}
	return r.collect(rows)
}

func (r *repoPG) UpcomingForPatient(ctx context.Context, patientID int64, from civil.Date) ([]*Appointment, error) {
	rows, err := r.conn(ctx).Query(ctx, apptJoin+`
		WHERE a.patient_id = $1 AND a.date >= $2 AND a.status IN ('pending','confirmed')
		ORDER BY a.date ASC, a.start_time ASC`, patientID, from)
	if err != nil {
		return nil, db.WrapStorage(err)
	}
	return r.collect(rows)
}

func (r *repoPG) HistoryForPatient(ctx context.Context, patientID int64) ([]*Appointment, error) {
	rows, err := r.conn(ctx).Query(ctx, apptJoin+`
		WHERE a.patient_id = $1
		ORDER BY a.date DESC, a.start_time DESC`, patientID)
	if err != nil {
		return nil, db.WrapStorage(err)
	}
	return r.collect(rows)
}

func (r *repoPG) CountActiveForDoctor(ctx context.Context, doctorID int64) (int, error) {
	var n int
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT COUNT(*) FROM appointments
		WHERE doctor_id = $1 AND status IN ('pending','confirmed')`, doctorID).Scan(&n)
	return n, db.WrapStorage(err)
}

func (r *repoPG) CountActiveForPatient(ctx context.Context, patientID int64) (int, error) {
	var n int
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT COUNT(*) FROM appointments
		WHERE patient_id = $1 AND status IN ('pending','confirmed')`, patientID).Scan(&n)
	return n, db.WrapStorage(err)
}

func (r *repoPG) StatsForDoctor(ctx context.Context, doctorID int64, today, weekStart, weekEnd civil.Date) (*DoctorStats, error) {
	var s DoctorStats
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE date = $2),
			COUNT(*) FILTER (WHERE date >= $3 AND date < $4)
		FROM appointments WHERE doctor_id = $1`,
		doctorID, today, weekStart, weekEnd).
		Scan(&s.Total, &s.Completed, &s.Pending, &s.Today, &s.ThisWeek)
	if err != nil {
		return nil, db.WrapStorage(err)
	}
	return &s, nil
}

func (r *repoPG) StatsForPatient(ctx context.Context, patientID int64) (*PatientStats, error) {
	var s PatientStats
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COUNT(*) FILTER (WHERE status = 'cancelled')
		FROM appointments WHERE patient_id = $1`, patientID).
		Scan(&s.Total, &s.Completed, &s.Cancelled)
	if err != nil {
		return nil, db.WrapStorage(err)
	}
	return &s, nil
}
