package training

import (
	"context"

	"hrms/internal/domain/guard"
)

type Service struct {
	store StoreAPI
	refs  guard.RefChecker
}

func NewService(store StoreAPI, refs guard.RefChecker) *Service {
	return &Service{store: store, refs: refs}
}

func (s *Service) CreateProgram(ctx context.Context, in CreateProgramInput) (Program, error) {
	if err := in.Validate(); err != nil {
		return Program{}, err
	}
	row, err := s.store.InsertProgram(ctx, newProgramRow(in))
	if err != nil {
		return Program{}, err
	}
	return row.program()
}

func (s *Service) ListPrograms(ctx context.Context) ([]Program, error) {
	rows, err := s.store.ListPrograms(ctx)
	if err != nil {
		return nil, err
	}
	programs := make([]Program, 0, len(rows))
	for _, row := range rows {
		program, err := row.program()
		if err != nil {
			return nil, err
		}
		programs = append(programs, program)
	}
	return programs, nil
}

func (s *Service) CreateEnrollment(ctx context.Context, in CreateEnrollmentInput) (Enrollment, error) {
	if err := in.Validate(); err != nil {
		return Enrollment{}, err
	}
	if err := s.refs.Exists(ctx, guard.TrainingPrograms, in.TrainingID); err != nil {
		return Enrollment{}, err
	}
	if err := s.refs.Exists(ctx, guard.Employees, in.EmployeeID); err != nil {
		return Enrollment{}, err
	}
	row, err := s.store.InsertEnrollment(ctx, newEnrollmentRow(in))
	if err != nil {
		return Enrollment{}, err
	}
	return row.enrollment()
}

func (s *Service) ListEnrollments(ctx context.Context) ([]Enrollment, error) {
	rows, err := s.store.ListEnrollments(ctx)
	if err != nil {
		return nil, err
	}
	enrollments := make([]Enrollment, 0, len(rows))
	for _, row := range rows {
		enrollment, err := row.enrollment()
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, enrollment)
	}
	return enrollments, nil
}
