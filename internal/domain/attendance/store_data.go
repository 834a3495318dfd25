package attendance

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

const attendanceColumns = `id, employee_id, date::text, check_in, check_out, break_start,
    break_end, total_hours::text, status, notes, created_at`

func scanAttendanceRow(row pgx.Row) (attendanceRow, error) {
	var r attendanceRow
	err := row.Scan(&r.id, &r.employeeID, &r.date, &r.checkIn, &r.checkOut,
		&r.breakStart, &r.breakEnd, &r.totalHours, &r.status, &r.notes, &r.createdAt)
	return r, err
}

func (s *Store) InsertAttendance(ctx context.Context, row attendanceRow) (attendanceRow, error) {
	return scanAttendanceRow(s.DB.QueryRow(ctx, `
    INSERT INTO attendance (employee_id, date, check_in, check_out, break_start, break_end,
      total_hours, status, notes)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    RETURNING `+attendanceColumns,
		row.employeeID, row.date, row.checkIn, row.checkOut, row.breakStart,
		row.breakEnd, row.totalHours, row.status, row.notes))
}

func (s *Store) ListAttendance(ctx context.Context) ([]attendanceRow, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+attendanceColumns+` FROM attendance ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []attendanceRow
	for rows.Next() {
		r, err := scanAttendanceRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

const overtimeColumns = `id, employee_id, date::text, start_time, end_time, total_hours::text,
    reason, approved_by, approved_at, status, notes, created_at`

func scanOvertimeRow(row pgx.Row) (overtimeRow, error) {
	var r overtimeRow
	err := row.Scan(&r.id, &r.employeeID, &r.date, &r.startTime, &r.endTime,
		&r.totalHours, &r.reason, &r.approvedBy, &r.approvedAt, &r.status, &r.notes, &r.createdAt)
	return r, err
}

func (s *Store) InsertOvertimeRequest(ctx context.Context, row overtimeRow) (overtimeRow, error) {
	return scanOvertimeRow(s.DB.QueryRow(ctx, `
    INSERT INTO overtime_requests (employee_id, date, start_time, end_time, total_hours,
      reason, status, notes)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING `+overtimeColumns,
		row.employeeID, row.date, row.startTime, row.endTime, row.totalHours,
		row.reason, row.status, row.notes))
}

func (s *Store) ListOvertimeRequests(ctx context.Context) ([]overtimeRow, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+overtimeColumns+` FROM overtime_requests ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []overtimeRow
	for rows.Next() {
		r, err := scanOvertimeRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) UpdateOvertimeRequest(ctx context.Context, id int64, set map[string]any) (overtimeRow, error) {
	if len(set) == 0 {
		return scanOvertimeRow(s.DB.QueryRow(ctx,
			`SELECT `+overtimeColumns+` FROM overtime_requests WHERE id = $1`, id))
	}
	// Column names come from the fixed changes() mapping, never from
	// request input.
	assignments := make([]string, 0, len(set))
	args := make([]any, 0, len(set)+1)
	position := 1
	for column, value := range set {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, position))
		args = append(args, value)
		position++
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE overtime_requests SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(assignments, ", "), position, overtimeColumns)
	return scanOvertimeRow(s.DB.QueryRow(ctx, query, args...))
}
