package availability

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medibook/medibook/internal/platform/civil"
	"github.com/medibook/medibook/internal/platform/db"
)

// =========== Window Repository ===========

type windowRepoPG struct{ pool *pgxpool.Pool }

func NewWindowRepoPG(pool *pgxpool.Pool) WindowRepository { return &windowRepoPG{pool: pool} }

func (r *windowRepoPG) conn(ctx context.Context) db.Queryable { return db.Conn(ctx, r.pool) }

const windowCols = `id, doctor_id, day_of_week, start_time, end_time, is_available`

func scanWindow(row pgx.Row) (*Window, error) {
	var w Window
	err := row.Scan(&w.ID, &w.DoctorID, &w.DayOfWeek, &w.StartTime, &w.EndTime, &w.IsAvailable)
	if err != nil {
		return nil, db.NotFoundOr(err)
	}
	return &w, nil
}

func (r *windowRepoPG) Create(ctx context.Context, w *Window) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO availability_windows (doctor_id, day_of_week, start_time, end_time, is_available)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id`,
		w.DoctorID, w.DayOfWeek, w.StartTime, w.EndTime, w.IsAvailable).Scan(&w.ID)
	return db.WrapStorage(err)
}

func (r *windowRepoPG) GetByID(ctx context.Context, id int64) (*Window, error) {
	return scanWindow(r.conn(ctx).QueryRow(ctx,
		`SELECT `+windowCols+` FROM availability_windows WHERE id = $1`, id))
}

func (r *windowRepoPG) Update(ctx context.Context, w *Window) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE availability_windows
		SET day_of_week=$2, start_time=$3, end_time=$4, is_available=$5
		WHERE id = $1`,
		w.ID, w.DayOfWeek, w.StartTime, w.EndTime, w.IsAvailable)
	if err != nil {
		return db.WrapStorage(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *windowRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM availability_windows WHERE id = $1`, id)
	if err != nil {
		return db.WrapStorage(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *windowRepoPG) ListForDoctor(ctx context.Context, doctorID int64) ([]*Window, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+windowCols+` FROM availability_windows
		WHERE doctor_id = $1
		ORDER BY day_of_week ASC, start_time ASC`, doctorID)
	if err != nil {
		return nil, db.WrapStorage(err)
	}
	defer rows.Close()
	items := []*Window{}
	for rows.Next() {
		w, err := scanWindow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	return items, rows.Err()
}

func (r *windowRepoPG) ListForDay(ctx context.Context, doctorID int64, dayOfWeek int) ([]*Window, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+windowCols+` FROM availability_windows
		WHERE doctor_id = $1 AND day_of_week = $2 AND is_available
		ORDER BY start_time ASC`, doctorID, dayOfWeek)
	if err != nil {
		return nil, db.WrapStorage(err)
	}
	defer rows.Close()
	items := []*Window{}
	for rows.Next() {
		w, err := scanWindow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	return items, rows.Err()
}

// =========== Absence Repository ===========

type absenceRepoPG struct{ pool *pgxpool.Pool }

func NewAbsenceRepoPG(pool *pgxpool.Pool) AbsenceRepository { return &absenceRepoPG{pool: pool} }

func (r *absenceRepoPG) conn(ctx context.Context) db.Queryable { return db.Conn(ctx, r.pool) }

const absenceCols = `id, doctor_id, start_date, end_date, reason`

func scanAbsence(row pgx.Row) (*Absence, error) {
	var a Absence
	err := row.Scan(&a.ID, &a.DoctorID, &a.StartDate, &a.EndDate, &a.Reason)
	if err != nil {
		return nil, db.NotFoundOr(err)
	}
	return &a, nil
}

func (r *absenceRepoPG) Create(ctx context.Context, a *Absence) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO absences (doctor_id, start_date, end_date, reason)
		VALUES ($1,$2,$3,$4)
		RETURNING id`,
		a.DoctorID, a.StartDate, a.EndDate, a.Reason).Scan(&a.ID)
	return db.WrapStorage(err)
}

func (r *absenceRepoPG) GetByID(ctx context.Context, id int64) (*Absence, error) {
	return scanAbsence(r.conn(ctx).QueryRow(ctx,
		`SELECT `+absenceCols+` FROM absences WHERE id = $1`, id))
}

func (r *absenceRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM absences WHERE id = $1`, id)
	if err != nil {
		return db.WrapStorage(err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (r *absenceRepoPG) ListForDoctor(ctx context.Context, doctorID int64) ([]*Absence, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+absenceCols+` FROM absences
		WHERE doctor_id = $1
		ORDER BY start_date ASC`, doctorID)
	if err != nil {
		return nil, db.WrapStorage(err)
	}
	defer rows.Close()
	items := []*Absence{}
	for rows.Next() {
		a, err := scanAbsence(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *absenceRepoPG) AnyCovering(ctx context.Context, doctorID int64, date civil.Date) (bool, error) {
	var n int
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT COUNT(*) FROM absences
		WHERE doctor_id = $1 AND start_date <= $2 AND end_date >= $2`,
		doctorID, date).Scan(&n)
	if err != nil {
		return false, db.WrapStorage(err)
	}
	return n > 0, nil
}
