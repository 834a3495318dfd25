package employee

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

const employeeColumns = `id, employee_id, full_name, email, phone, address,
    birth_date::text, hire_date::text, position, department, salary::text,
    status, contract_type, manager_id, created_at, updated_at`

func scanEmployeeRow(row pgx.Row) (employeeRow, error) {
	var r employeeRow
	err := row.Scan(&r.id, &r.employeeID, &r.fullName, &r.email, &r.phone, &r.address,
		&r.birthDate, &r.hireDate, &r.position, &r.department, &r.salary,
		&r.status, &r.contractType, &r.managerID, &r.createdAt, &r.updatedAt)
	return r, err
}

func (s *Store) InsertEmployee(ctx context.Context, row employeeRow) (employeeRow, error) {
	return scanEmployeeRow(s.DB.QueryRow(ctx, `
    INSERT INTO employees (employee_id, full_name, email, phone, address, birth_date,
      hire_date, position, department, salary, status, contract_type, manager_id)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
    RETURNING `+employeeColumns,
		row.employeeID, row.fullName, row.email, row.phone, row.address, row.birthDate,
		row.hireDate, row.position, row.department, row.salary, row.status,
		row.contractType, row.managerID))
}

func (s *Store) ListEmployees(ctx context.Context) ([]employeeRow, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []employeeRow
	for rows.Next() {
		r, err := scanEmployeeRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) UpdateEmployee(ctx context.Context, id int64, set map[string]any) (employeeRow, error) {
	// Column names come from the fixed changes() mapping, never from
	// request input. updated_at refreshes on every update, so the SET
	// clause is never empty.
	assignments := make([]string, 0, len(set)+1)
	args := make([]any, 0, len(set)+1)
	position := 1
	for column, value := range set {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, position))
		args = append(args, value)
		position++
	}
	assignments = append(assignments, "updated_at = now()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE employees SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(assignments, ", "), position, employeeColumns)
	return scanEmployeeRow(s.DB.QueryRow(ctx, query, args...))
}

const contractColumns = `id, employee_id, contract_type, start_date::text, end_date::text,
    salary::text, terms_and_conditions, is_active, created_at`

func scanContractRow(row pgx.Row) (contractRow, error) {
	var r contractRow
	err := row.Scan(&r.id, &r.employeeID, &r.contractType, &r.startDate, &r.endDate,
		&r.salary, &r.termsAndConditions, &r.isActive, &r.createdAt)
	return r, err
}

func (s *Store) InsertContract(ctx context.Context, row contractRow) (contractRow, error) {
	return scanContractRow(s.DB.QueryRow(ctx, `
    INSERT INTO contracts (employee_id, contract_type, start_date, end_date, salary,
      terms_and_conditions, is_active)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING `+contractColumns,
		row.employeeID, row.contractType, row.startDate, row.endDate, row.salary,
		row.termsAndConditions, row.isActive))
}

func (s *Store) ListContracts(ctx context.Context) ([]contractRow, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+contractColumns+` FROM contracts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []contractRow
	for rows.Next() {
		r, err := scanContractRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) ContractWithEmployee(ctx context.Context, id int64) (contractRow, string, error) {
	var r contractRow
	var fullName string
	err := s.DB.QueryRow(ctx, `
    SELECT c.id, c.employee_id, c.contract_type, c.start_date::text, c.end_date::text,
           c.salary::text, c.terms_and_conditions, c.is_active, c.created_at, e.full_name
    FROM contracts c
    JOIN employees e ON c.employee_id = e.id
    WHERE c.id = $1
  `, id).Scan(&r.id, &r.employeeID, &r.contractType, &r.startDate, &r.endDate,
		&r.salary, &r.termsAndConditions, &r.isActive, &r.createdAt, &fullName)
	return r, fullName, err
}
