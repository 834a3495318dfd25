package employee

import "context"

type StoreAPI interface {
	InsertEmployee(ctx context.Context, row employeeRow) (employeeRow, error)
	ListEmployees(ctx context.Context) ([]employeeRow, error)
	UpdateEmployee(ctx context.Context, id int64, set map[string]any) (employeeRow, error)
	InsertContract(ctx context.Context, row contractRow) (contractRow, error)
	ListContracts(ctx context.Context) ([]contractRow, error)
	ContractWithEmployee(ctx context.Context, id int64) (contractRow, string, error)
}
