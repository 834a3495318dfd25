package training

import "context"

type StoreAPI interface {
	InsertProgram(ctx context.Context, row programRow) (programRow, error)
	ListPrograms(ctx context.Context) ([]programRow, error)
	InsertEnrollment(ctx context.Context, row enrollmentRow) (enrollmentRow, error)
	ListEnrollments(ctx context.Context) ([]enrollmentRow, error)
}
