package training

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

const programColumns = `id, title, description, trainer, start_date::text, end_date::text,
    location, max_participants, cost_per_participant::text, status, created_at`

func scanProgramRow(row pgx.Row) (programRow, error) {
	var r programRow
	err := row.Scan(&r.id, &r.title, &r.description, &r.trainer, &r.startDate, &r.endDate,
		&r.location, &r.maxParticipants, &r.costPerParticipant, &r.status, &r.createdAt)
	return r, err
}

func (s *Store) InsertProgram(ctx context.Context, row programRow) (programRow, error) {
	return scanProgramRow(s.DB.QueryRow(ctx, `
    INSERT INTO training_programs (title, description, trainer, start_date, end_date,
      location, max_participants, cost_per_participant, status)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    RETURNING `+programColumns,
		row.title, row.description, row.trainer, row.startDate, row.endDate,
		row.location, row.maxParticipants, row.costPerParticipant, row.status))
}

func (s *Store) ListPrograms(ctx context.Context) ([]programRow, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+programColumns+` FROM training_programs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []programRow
	for rows.Next() {
		r, err := scanProgramRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

const enrollmentColumns = `id, training_id, employee_id, enrollment_date, attendance_status,
    completion_score::text, feedback, created_at`

func scanEnrollmentRow(row pgx.Row) (enrollmentRow, error) {
	var r enrollmentRow
	err := row.Scan(&r.id, &r.trainingID, &r.employeeID, &r.enrollmentDate, &r.attendanceStatus,
		&r.completionScore, &r.feedback, &r.createdAt)
	return r, err
}

func (s *Store) InsertEnrollment(ctx context.Context, row enrollmentRow) (enrollmentRow, error) {
	return scanEnrollmentRow(s.DB.QueryRow(ctx, `
    INSERT INTO training_enrollments (training_id, employee_id, attendance_status,
      completion_score, feedback)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING `+enrollmentColumns,
		row.trainingID, row.employeeID, row.attendanceStatus,
		row.completionScore, row.feedback))
}

func (s *Store) ListEnrollments(ctx context.Context) ([]enrollmentRow, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+enrollmentColumns+` FROM training_enrollments ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []enrollmentRow
	for rows.Next() {
		r, err := scanEnrollmentRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
