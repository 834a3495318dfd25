// Package guard performs the pre-write existence checks every child
// entity runs against its referenced rows. Checks happen in the
// application layer before any mutation; the first failing reference
// aborts the operation with a NotFoundError.
package guard

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Ref identifies a referencable table together with the entity name
// used in caller-facing messages. The set is closed: table names only
// ever come from these descriptors, never from request input.
type Ref struct {
	Table  string
	Entity string
}

var (
	Employees        = Ref{Table: "employees", Entity: "Employee"}
	JobRequests      = Ref{Table: "job_requests", Entity: "Job request"}
	JobApplications  = Ref{Table: "job_applications", Entity: "Job application"}
	Interviews       = Ref{Table: "interviews", Entity: "Interview"}
	Contracts        = Ref{Table: "contracts", Entity: "Contract"}
	TrainingPrograms = Ref{Table: "training_programs", Entity: "Training program"}
	LeaveRequests    = Ref{Table: "leave_requests", Entity: "Leave request"}
	OvertimeRequests = Ref{Table: "overtime_requests", Entity: "Overtime request"}
)

type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

// RefChecker is what services depend on; Guard is the pgx-backed
// implementation and tests substitute fakes.
type RefChecker interface {
	Exists(ctx context.Context, ref Ref, id int64) error
}

type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Guard struct {
	DB Querier
}

func New(db Querier) *Guard {
	return &Guard{DB: db}
}

func (g *Guard) Exists(ctx context.Context, ref Ref, id int64) error {
	var count int
	query := fmt.Sprintf("SELECT COUNT(1) FROM %s WHERE id = $1", ref.Table)
	if err := g.DB.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return &NotFoundError{Entity: ref.Entity, ID: id}
	}
	return nil
}
