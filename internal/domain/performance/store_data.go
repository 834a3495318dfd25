package performance

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

const evaluationColumns = `id, employee_id, evaluator_id, evaluation_period_start::text,
    evaluation_period_end::text, overall_rating, goals_achievement::text, competency_score::text,
    strengths, areas_for_improvement, development_plan, comments, created_at`

func scanEvaluationRow(row pgx.Row) (evaluationRow, error) {
	var r evaluationRow
	err := row.Scan(&r.id, &r.employeeID, &r.evaluatorID, &r.periodStart,
		&r.periodEnd, &r.overallRating, &r.goalsAchievement, &r.competencyScore,
		&r.strengths, &r.areasForImprovement, &r.developmentPlan, &r.comments, &r.createdAt)
	return r, err
}

func (s *Store) InsertEvaluation(ctx context.Context, row evaluationRow) (evaluationRow, error) {
	return scanEvaluationRow(s.DB.QueryRow(ctx, `
    INSERT INTO performance_evaluations (employee_id, evaluator_id, evaluation_period_start,
      evaluation_period_end, overall_rating, goals_achievement, competency_score, strengths,
      areas_for_improvement, development_plan, comments)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
    RETURNING `+evaluationColumns,
		row.employeeID, row.evaluatorID, row.periodStart, row.periodEnd, row.overallRating,
		row.goalsAchievement, row.competencyScore, row.strengths, row.areasForImprovement,
		row.developmentPlan, row.comments))
}

func (s *Store) ListEvaluations(ctx context.Context) ([]evaluationRow, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+evaluationColumns+` FROM performance_evaluations ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []evaluationRow
	for rows.Next() {
		r, err := scanEvaluationRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
