package performance

import "context"

type StoreAPI interface {
	InsertEvaluation(ctx context.Context, row evaluationRow) (evaluationRow, error)
	ListEvaluations(ctx context.Context) ([]evaluationRow, error)
}
