package training

import (
	"fmt"
	"time"

	"hrms/internal/domain/codec"
	"hrms/internal/validate"
)

var (
	ProgramStatuses    = []string{"proposed", "approved", "scheduled", "ongoing", "completed", "cancelled"}
	AttendanceStatuses = []string{"registered", "attended", "absent", "completed"}
)

type Program struct {
	ID                 int64     `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Trainer            string    `json:"trainer"`
	StartDate          time.Time `json:"startDate"`
	EndDate            time.Time `json:"endDate"`
	Location           *string   `json:"location"`
	MaxParticipants    int       `json:"maxParticipants"`
	CostPerParticipant *float64  `json:"costPerParticipant"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
}

type Enrollment struct {
	ID               int64     `json:"id"`
	TrainingID       int64     `json:"trainingId"`
	EmployeeID       int64     `json:"employeeId"`
	EnrollmentDate   time.Time `json:"enrollmentDate"`
	AttendanceStatus string    `json:"attendanceStatus"`
	CompletionScore  *float64  `json:"completionScore"`
	Feedback         *string   `json:"feedback"`
	CreatedAt        time.Time `json:"createdAt"`
}

type CreateProgramInput struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Trainer            string   `json:"trainer"`
	StartDate          string   `json:"startDate"`
	EndDate            string   `json:"endDate"`
	Location           *string  `json:"location"`
	MaxParticipants    int      `json:"maxParticipants"`
	CostPerParticipant *float64 `json:"costPerParticipant"`
	Status             string   `json:"status"`
}

func (in *CreateProgramInput) Validate() error {
	v := validate.New()
	v.Required("title", in.Title)
	v.Required("description", in.Description)
	v.Required("trainer", in.Trainer)
	v.Required("startDate", in.StartDate)
	in.StartDate = v.Date("startDate", in.StartDate)
	v.Required("endDate", in.EndDate)
	in.EndDate = v.Date("endDate", in.EndDate)
	v.DateOrder("startDate", in.StartDate, "endDate", in.EndDate)
	v.PositiveInt("maxParticipants", in.MaxParticipants)
	if in.CostPerParticipant != nil {
		v.Positive("costPerParticipant", *in.CostPerParticipant)
	}
	if in.Status == "" {
		in.Status = "proposed"
	}
	v.Enum("status", in.Status, ProgramStatuses)
	return v.Err()
}

type CreateEnrollmentInput struct {
	TrainingID       int64    `json:"trainingId"`
	EmployeeID       int64    `json:"employeeId"`
	AttendanceStatus string   `json:"attendanceStatus"`
	CompletionScore  *float64 `json:"completionScore"`
	Feedback         *string  `json:"feedback"`
}

func (in *CreateEnrollmentInput) Validate() error {
	v := validate.New()
	if in.AttendanceStatus == "" {
		in.AttendanceStatus = "registered"
	}
	v.Enum("attendanceStatus", in.AttendanceStatus, AttendanceStatuses)
	if in.CompletionScore != nil {
		v.Range("completionScore", *in.CompletionScore, 0, 100)
	}
	return v.Err()
}

type programRow struct {
	id                 int64
	title              string
	description        string
	trainer            string
	startDate          string
	endDate            string
	location           *string
	maxParticipants    int
	costPerParticipant *string
	status             string
	createdAt          time.Time
}

func newProgramRow(in CreateProgramInput) programRow {
	return programRow{
		title:              in.Title,
		description:        in.Description,
		trainer:            in.Trainer,
		startDate:          in.StartDate,
		endDate:            in.EndDate,
		location:           in.Location,
		maxParticipants:    in.MaxParticipants,
		costPerParticipant: codec.NullDecimalToStorage(in.CostPerParticipant),
		status:             in.Status,
	}
}

func (r programRow) program() (Program, error) {
	startDate, err := codec.DateFromStorage(r.startDate)
	if err != nil {
		return Program{}, fmt.Errorf("decode start_date: %w", err)
	}
	endDate, err := codec.DateFromStorage(r.endDate)
	if err != nil {
		return Program{}, fmt.Errorf("decode end_date: %w", err)
	}
	cost, err := codec.NullDecimalFromStorage(r.costPerParticipant)
	if err != nil {
		return Program{}, fmt.Errorf("decode cost_per_participant: %w", err)
	}
	return Program{
		ID:                 r.id,
		Title:              r.title,
		Description:        r.description,
		Trainer:            r.trainer,
		StartDate:          startDate,
		EndDate:            endDate,
		Location:           r.location,
		MaxParticipants:    r.maxParticipants,
		CostPerParticipant: cost,
		Status:             r.status,
		CreatedAt:          r.createdAt,
	}, nil
}

type enrollmentRow struct {
	id               int64
	trainingID       int64
	employeeID       int64
	enrollmentDate   time.Time
	attendanceStatus string
	completionScore  *string
	feedback         *string
	createdAt        time.Time
}

func newEnrollmentRow(in CreateEnrollmentInput) enrollmentRow {
	return enrollmentRow{
		trainingID:       in.TrainingID,
		employeeID:       in.EmployeeID,
		attendanceStatus: in.AttendanceStatus,
		completionScore:  codec.NullDecimalToStorage(in.CompletionScore),
		feedback:         in.Feedback,
	}
}

func (r enrollmentRow) enrollment() (Enrollment, error) {
	score, err := codec.NullDecimalFromStorage(r.completionScore)
	if err != nil {
		return Enrollment{}, fmt.Errorf("decode completion_score: %w", err)
	}
	return Enrollment{
		ID:               r.id,
		TrainingID:       r.trainingID,
		EmployeeID:       r.employeeID,
		EnrollmentDate:   r.enrollmentDate,
		AttendanceStatus: r.attendanceStatus,
		CompletionScore:  score,
		Feedback:         r.feedback,
		CreatedAt:        r.createdAt,
	}, nil
}
