package employee

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"hrms/internal/domain/guard"
)

type Service struct {
	store       StoreAPI
	refs        guard.RefChecker
	documentDir string
}

func NewService(store StoreAPI, refs guard.RefChecker, documentDir string) *Service {
	return &Service{store: store, refs: refs, documentDir: documentDir}
}

func (s *Service) CreateEmployee(ctx context.Context, in CreateEmployeeInput) (Employee, error) {
	if err := in.Validate(); err != nil {
		return Employee{}, err
	}
	if in.ManagerID != nil {
		if err := s.refs.Exists(ctx, guard.Employees, *in.ManagerID); err != nil {
			return Employee{}, err
		}
	}
	row, err := s.store.InsertEmployee(ctx, newEmployeeRow(in))
	if err != nil {
		return Employee{}, err
	}
	return row.employee()
}

func (s *Service) ListEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := s.store.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	employees := make([]Employee, 0, len(rows))
	for _, row := range rows {
		emp, err := row.employee()
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, nil
}

func (s *Service) UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (Employee, error) {
	if err := in.Validate(); err != nil {
		return Employee{}, err
	}
	if managerID := in.ManagerID.Ptr(); managerID != nil {
		if err := s.refs.Exists(ctx, guard.Employees, *managerID); err != nil {
			return Employee{}, err
		}
	}
	row, err := s.store.UpdateEmployee(ctx, in.ID, in.changes())
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, &guard.NotFoundError{Entity: "Employee", ID: in.ID}
	}
	if err != nil {
		return Employee{}, err
	}
	return row.employee()
}

func (s *Service) CreateContract(ctx context.Context, in CreateContractInput) (Contract, error) {
	if err := in.Validate(); err != nil {
		return Contract{}, err
	}
	if err := s.refs.Exists(ctx, guard.Employees, in.EmployeeID); err != nil {
		return Contract{}, err
	}
	row, err := s.store.InsertContract(ctx, newContractRow(in))
	if err != nil {
		return Contract{}, err
	}
	return row.contract()
}

func (s *Service) ListContracts(ctx context.Context) ([]Contract, error) {
	rows, err := s.store.ListContracts(ctx)
	if err != nil {
		return nil, err
	}
	contracts := make([]Contract, 0, len(rows))
	for _, row := range rows {
		contract, err := row.contract()
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, contract)
	}
	return contracts, nil
}
