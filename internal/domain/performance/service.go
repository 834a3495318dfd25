package performance

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

func (s *Service) CreateEvaluation(ctx context.Context, in CreateEvaluationInput) (Evaluation, error) {
	if err := in.Validate(); err != nil {
		return Evaluation{}, err
	}
	if err := s.refs.Exists(ctx, guard.Employees, in.EmployeeID); err != nil {
		return Evaluation{}, err
	}
	if err := s.refs.Exists(ctx, guard.Employees, in.EvaluatorID); err != nil {
		return Evaluation{}, err
	}
	row, err := s.store.InsertEvaluation(ctx, newEvaluationRow(in))
	if err != nil {
		return Evaluation{}, err
	}
	return row.evaluation()
}

func (s *Service) ListEvaluations(ctx context.Context) ([]Evaluation, error) {
	rows, err := s.store.ListEvaluations(ctx)
	if err != nil {
		return nil, err
	}
	evaluations := make([]Evaluation, 0, len(rows))
	for _, row := range rows {
		evaluation, err := row.evaluation()
		if err != nil {
			return nil, err
		}
		evaluations = append(evaluations, evaluation)
	}
	return evaluations, nil
}
