package performance

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"hrms/internal/domain/guard"
	"hrms/internal/validate"
)

type fakeRefs struct {
	existing map[string]bool
}

func refKey(ref guard.Ref, id int64) string {
	return fmt.Sprintf("%s/%d", ref.Table, id)
}

func (f *fakeRefs) Exists(_ context.Context, ref guard.Ref, id int64) error {
	if f.existing[refKey(ref, id)] {
		return nil
	}
	return &guard.NotFoundError{Entity: ref.Entity, ID: id}
}

type fakeStore struct {
	evaluations []evaluationRow
	now         time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{now: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (f *fakeStore) InsertEvaluation(_ context.Context, row evaluationRow) (evaluationRow, error) {
	row.id = int64(len(f.evaluations) + 1)
	row.createdAt = f.now
	f.evaluations = append(f.evaluations, row)
	return row, nil
}

func (f *fakeStore) ListEvaluations(_ context.Context) ([]evaluationRow, error) {
	return f.evaluations, nil
}

func validInput() CreateEvaluationInput {
	return CreateEvaluationInput{
		EmployeeID:       1,
		EvaluatorID:      2,
		PeriodStart:      "2024-01-01",
		PeriodEnd:        "2024-06-30",
		OverallRating:    "good",
		GoalsAchievement: 87.5,
		CompetencyScore:  91.25,
	}
}

func TestCreateEvaluationRoundTrip(t *testing.T) {
	refs := &fakeRefs{existing: map[string]bool{
		refKey(guard.Employees, 1): true,
		refKey(guard.Employees, 2): true,
	}}
	svc := NewService(newFakeStore(), refs)

	evaluation, err := svc.CreateEvaluation(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if evaluation.GoalsAchievement != 87.5 || evaluation.CompetencyScore != 91.25 {
		t.Fatalf("scores must survive the round trip, got %v and %v",
			evaluation.GoalsAchievement, evaluation.CompetencyScore)
	}
	if !evaluation.PeriodStart.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected period start %v", evaluation.PeriodStart)
	}
}

func TestCreateEvaluationRejectsScoreOutOfRange(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeRefs{})

	in := validInput()
	in.CompetencyScore = 100.5
	_, err := svc.CreateEvaluation(context.Background(), in)
	var verr *validate.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateEvaluationRejectsInvertedPeriod(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeRefs{})

	in := validInput()
	in.PeriodStart = "2024-07-01"
	_, err := svc.CreateEvaluation(context.Background(), in)
	var verr *validate.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateEvaluationGuardsEmployeeBeforeEvaluator(t *testing.T) {
	// Only the evaluator exists, so the employee check must fail first.
	refs := &fakeRefs{existing: map[string]bool{refKey(guard.Employees, 2): true}}
	store := newFakeStore()
	svc := NewService(store, refs)

	_, err := svc.CreateEvaluation(context.Background(), validInput())
	var nf *guard.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if nf.Error() != "Employee with id 1 not found" {
		t.Fatalf("unexpected message: %s", nf.Error())
	}
	if len(store.evaluations) != 0 {
		t.Fatal("failed guard must not write a row")
	}
}

func TestCreateEvaluationMissingEvaluator(t *testing.T) {
	refs := &fakeRefs{existing: map[string]bool{refKey(guard.Employees, 1): true}}
	svc := NewService(newFakeStore(), refs)

	_, err := svc.CreateEvaluation(context.Background(), validInput())
	var nf *guard.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if nf.Error() != "Employee with id 2 not found" {
		t.Fatalf("unexpected message: %s", nf.Error())
	}
}

func TestListEvaluationsEmpty(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeRefs{})

	evaluations, err := svc.ListEvaluations(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(evaluations) != 0 {
		t.Fatalf("expected empty list, got %d", len(evaluations))
	}
}
