package leave

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

const leaveColumns = `id, employee_id, leave_type, start_date::text, end_date::text,
    total_days, reason, approved_by, approved_at, status, notes, created_at`

func scanLeaveRow(row pgx.Row) (leaveRow, error) {
	var r leaveRow
	err := row.Scan(&r.id, &r.employeeID, &r.leaveType, &r.startDate, &r.endDate,
		&r.totalDays, &r.reason, &r.approvedBy, &r.approvedAt, &r.status, &r.notes, &r.createdAt)
	return r, err
}

func (s *Store) InsertLeaveRequest(ctx context.Context, row leaveRow) (leaveRow, error) {
	return scanLeaveRow(s.DB.QueryRow(ctx, `
    INSERT INTO leave_requests (employee_id, leave_type, start_date, end_date, total_days,
      reason, status, notes)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING `+leaveColumns,
		row.employeeID, row.leaveType, row.startDate, row.endDate, row.totalDays,
		row.reason, row.status, row.notes))
}

func (s *Store) ListLeaveRequests(ctx context.Context) ([]leaveRow, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+leaveColumns+` FROM leave_requests ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []leaveRow
	for rows.Next() {
		r, err := scanLeaveRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) UpdateLeaveRequest(ctx context.Context, id int64, set map[string]any) (leaveRow, error) {
	if len(set) == 0 {
		return scanLeaveRow(s.DB.QueryRow(ctx,
			`SELECT `+leaveColumns+` FROM leave_requests WHERE id = $1`, id))
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

	query := fmt.Sprintf(`UPDATE leave_requests SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(assignments, ", "), position, leaveColumns)
	return scanLeaveRow(s.DB.QueryRow(ctx, query, args...))
}
