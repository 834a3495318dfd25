package performance

import (
	"fmt"
	"time"

	"hrms/internal/domain/codec"
	"hrms/internal/validate"
)

var Ratings = []string{"excellent", "good", "satisfactory", "needs_improvement", "unsatisfactory"}

type Evaluation struct {
	ID                   int64     `json:"id"`
	EmployeeID           int64     `json:"employeeId"`
	EvaluatorID          int64     `json:"evaluatorId"`
	PeriodStart          time.Time `json:"evaluationPeriodStart"`
	PeriodEnd            time.Time `json:"evaluationPeriodEnd"`
	OverallRating        string    `json:"overallRating"`
	GoalsAchievement     float64   `json:"goalsAchievement"`
	CompetencyScore      float64   `json:"competencyScore"`
	Strengths            *string   `json:"strengths"`
	AreasForImprovement  *string   `json:"areasForImprovement"`
	DevelopmentPlan      *string   `json:"developmentPlan"`
	Comments             *string   `json:"comments"`
	CreatedAt            time.Time `json:"createdAt"`
}

type CreateEvaluationInput struct {
	EmployeeID          int64    `json:"employeeId"`
	EvaluatorID         int64    `json:"evaluatorId"`
	PeriodStart         string   `json:"evaluationPeriodStart"`
	PeriodEnd           string   `json:"evaluationPeriodEnd"`
	OverallRating       string   `json:"overallRating"`
	GoalsAchievement    float64  `json:"goalsAchievement"`
	CompetencyScore     float64  `json:"competencyScore"`
	Strengths           *string  `json:"strengths"`
	AreasForImprovement *string  `json:"areasForImprovement"`
	DevelopmentPlan     *string  `json:"developmentPlan"`
	Comments            *string  `json:"comments"`
}

func (in *CreateEvaluationInput) Validate() error {
	v := validate.New()
	v.Required("evaluationPeriodStart", in.PeriodStart)
	in.PeriodStart = v.Date("evaluationPeriodStart", in.PeriodStart)
	v.Required("evaluationPeriodEnd", in.PeriodEnd)
	in.PeriodEnd = v.Date("evaluationPeriodEnd", in.PeriodEnd)
	v.DateOrder("evaluationPeriodStart", in.PeriodStart, "evaluationPeriodEnd", in.PeriodEnd)
	v.Required("overallRating", in.OverallRating)
	v.Enum("overallRating", in.OverallRating, Ratings)
	v.Range("goalsAchievement", in.GoalsAchievement, 0, 100)
	v.Range("competencyScore", in.CompetencyScore, 0, 100)
	return v.Err()
}

type evaluationRow struct {
	id                  int64
	employeeID          int64
	evaluatorID         int64
	periodStart         string
	periodEnd           string
	overallRating       string
	goalsAchievement    string
	competencyScore     string
	strengths           *string
	areasForImprovement *string
	developmentPlan     *string
	comments            *string
	createdAt           time.Time
}

func newEvaluationRow(in CreateEvaluationInput) evaluationRow {
	return evaluationRow{
		employeeID:          in.EmployeeID,
		evaluatorID:         in.EvaluatorID,
		periodStart:         in.PeriodStart,
		periodEnd:           in.PeriodEnd,
		overallRating:       in.OverallRating,
		goalsAchievement:    codec.DecimalToStorage(in.GoalsAchievement),
		competencyScore:     codec.DecimalToStorage(in.CompetencyScore),
		strengths:           in.Strengths,
		areasForImprovement: in.AreasForImprovement,
		developmentPlan:     in.DevelopmentPlan,
		comments:            in.Comments,
	}
}

func (r evaluationRow) evaluation() (Evaluation, error) {
	periodStart, err := codec.DateFromStorage(r.periodStart)
	if err != nil {
		return Evaluation{}, fmt.Errorf("decode evaluation_period_start: %w", err)
	}
	periodEnd, err := codec.DateFromStorage(r.periodEnd)
	if err != nil {
		return Evaluation{}, fmt.Errorf("decode evaluation_period_end: %w", err)
	}
	goalsAchievement, err := codec.DecimalFromStorage(r.goalsAchievement)
	if err != nil {
		return Evaluation{}, fmt.Errorf("decode goals_achievement: %w", err)
	}
	competencyScore, err := codec.DecimalFromStorage(r.competencyScore)
	if err != nil {
		return Evaluation{}, fmt.Errorf("decode competency_score: %w", err)
	}
	return Evaluation{
		ID:                  r.id,
		EmployeeID:          r.employeeID,
		EvaluatorID:         r.evaluatorID,
		PeriodStart:         periodStart,
		PeriodEnd:           periodEnd,
		OverallRating:       r.overallRating,
		GoalsAchievement:    goalsAchievement,
		CompetencyScore:     competencyScore,
		Strengths:           r.strengths,
		AreasForImprovement: r.areasForImprovement,
		DevelopmentPlan:     r.developmentPlan,
		Comments:            r.comments,
		CreatedAt:           r.createdAt,
	}, nil
}
