package recruitment

import (
	"fmt"
	"time"

	"hrms/internal/domain/codec"
	"hrms/internal/domain/patch"
	"hrms/internal/validate"
)

var (
	JobRequestStatuses  = []string{"open", "closed", "cancelled"}
	ApplicationStatuses = []string{"applied", "screening", "interview", "selected", "rejected", "hired"}
	InterviewStatuses   = []string{"scheduled", "completed", "cancelled"}
)

type JobRequest struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Department     string     `json:"department"`
	Position       string     `json:"position"`
	RequiredCount  int        `json:"requiredCount"`
	JobDescription string     `json:"jobDescription"`
	Requirements   string     `json:"requirements"`
	RequestedBy    int64      `json:"requestedBy"`
	RequestedDate  time.Time  `json:"requestedDate"`
	Deadline       *time.Time `json:"deadline"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
}

type JobApplication struct {
	ID              int64     `json:"id"`
	JobRequestID    int64     `json:"jobRequestId"`
	ApplicantName   string    `json:"applicantName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	ResumeURL       *string   `json:"resumeUrl"`
	CoverLetter     *string   `json:"coverLetter"`
	ApplicationDate time.Time `json:"applicationDate"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"createdAt"`
}

type Interview struct {
	ID            int64     `json:"id"`
	ApplicationID int64     `json:"applicationId"`
	InterviewDate time.Time `json:"interviewDate"`
	InterviewerID int64     `json:"interviewerId"`
	InterviewType string    `json:"interviewType"`
	Location      *string   `json:"location"`
	Notes         *string   `json:"notes"`
	Result        *string   `json:"result"`
	Score         *float64  `json:"score"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type CreateJobRequestInput struct {
	Title          string  `json:"title"`
	Department     string  `json:"department"`
	Position       string  `json:"position"`
	RequiredCount  int     `json:"requiredCount"`
	JobDescription string  `json:"jobDescription"`
	Requirements   string  `json:"requirements"`
	RequestedBy    int64   `json:"requestedBy"`
	Deadline       *string `json:"deadline"`
	Status         string  `json:"status"`
}

func (in *CreateJobRequestInput) Validate() error {
	v := validate.New()
	v.Required("title", in.Title)
	v.Required("department", in.Department)
	v.Required("position", in.Position)
	v.PositiveInt("requiredCount", in.RequiredCount)
	v.Required("jobDescription", in.JobDescription)
	v.Required("requirements", in.Requirements)
	if in.Deadline != nil {
		canonical := v.Date("deadline", *in.Deadline)
		in.Deadline = &canonical
	}
	if in.Status == "" {
		in.Status = "open"
	}
	v.Enum("status", in.Status, JobRequestStatuses)
	return v.Err()
}

type CreateJobApplicationInput struct {
	JobRequestID  int64   `json:"jobRequestId"`
	ApplicantName string  `json:"applicantName"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	ResumeURL     *string `json:"resumeUrl"`
	CoverLetter   *string `json:"coverLetter"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes"`
}

func (in *CreateJobApplicationInput) Validate() error {
	v := validate.New()
	v.Required("applicantName", in.ApplicantName)
	v.Required("email", in.Email)
	v.Email("email", in.Email)
	v.Required("phone", in.Phone)
	if in.Status == "" {
		in.Status = "applied"
	}
	v.Enum("status", in.Status, ApplicationStatuses)
	return v.Err()
}

type UpdateJobApplicationInput struct {
	ID     int64               `json:"id"`
	Status *string             `json:"status"`
	Notes  patch.Field[string] `json:"notes"`
}

func (in *UpdateJobApplicationInput) Validate() error {
	v := validate.New()
	if in.Status != nil {
		v.Required("status", *in.Status)
		v.Enum("status", *in.Status, ApplicationStatuses)
	}
	return v.Err()
}

func (in UpdateJobApplicationInput) changes() map[string]any {
	set := map[string]any{}
	if in.Status != nil {
		set["status"] = *in.Status
	}
	if in.Notes.Set {
		set["notes"] = in.Notes.Ptr()
	}
	return set
}

type CreateInterviewInput struct {
	ApplicationID int64    `json:"applicationId"`
	InterviewDate string   `json:"interviewDate"`
	InterviewerID int64    `json:"interviewerId"`
	InterviewType string   `json:"interviewType"`
	Location      *string  `json:"location"`
	Notes         *string  `json:"notes"`
	Result        *string  `json:"result"`
	Score         *float64 `json:"score"`
	Status        string   `json:"status"`

	interviewDate time.Time
}

func (in *CreateInterviewInput) Validate() error {
	v := validate.New()
	v.Required("interviewDate", in.InterviewDate)
	in.interviewDate = v.DateTime("interviewDate", in.InterviewDate)
	v.Required("interviewType", in.InterviewType)
	if in.Score != nil {
		v.Range("score", *in.Score, 0, 100)
	}
	if in.Status == "" {
		in.Status = "scheduled"
	}
	v.Enum("status", in.Status, InterviewStatuses)
	return v.Err()
}

type jobRequestRow struct {
	id             int64
	title          string
	department     string
	position       string
	requiredCount  int
	jobDescription string
	requirements   string
	requestedBy    int64
	requestedDate  time.Time
	deadline       *string
	status         string
	createdAt      time.Time
}

func newJobRequestRow(in CreateJobRequestInput) jobRequestRow {
	return jobRequestRow{
		title:          in.Title,
		department:     in.Department,
		position:       in.Position,
		requiredCount:  in.RequiredCount,
		jobDescription: in.JobDescription,
		requirements:   in.Requirements,
		requestedBy:    in.RequestedBy,
		deadline:       in.Deadline,
		status:         in.Status,
	}
}

func (r jobRequestRow) jobRequest() (JobRequest, error) {
	deadline, err := codec.NullDateFromStorage(r.deadline)
	if err != nil {
		return JobRequest{}, fmt.Errorf("decode deadline: %w", err)
	}
	return JobRequest{
		ID:             r.id,
		Title:          r.title,
		Department:     r.department,
		Position:       r.position,
		RequiredCount:  r.requiredCount,
		JobDescription: r.jobDescription,
		Requirements:   r.requirements,
		RequestedBy:    r.requestedBy,
		RequestedDate:  r.requestedDate,
		Deadline:       deadline,
		Status:         r.status,
		CreatedAt:      r.createdAt,
	}, nil
}

type jobApplicationRow struct {
	id              int64
	jobRequestID    int64
	applicantName   string
	email           string
	phone           string
	resumeURL       *string
	coverLetter     *string
	applicationDate time.Time
	status          string
	notes           *string
	createdAt       time.Time
}

func newJobApplicationRow(in CreateJobApplicationInput) jobApplicationRow {
	return jobApplicationRow{
		jobRequestID:  in.JobRequestID,
		applicantName: in.ApplicantName,
		email:         in.Email,
		phone:         in.Phone,
		resumeURL:     in.ResumeURL,
		coverLetter:   in.CoverLetter,
		status:        in.Status,
		notes:         in.Notes,
	}
}

func (r jobApplicationRow) jobApplication() JobApplication {
	return JobApplication{
		ID:              r.id,
		JobRequestID:    r.jobRequestID,
		ApplicantName:   r.applicantName,
		Email:           r.email,
		Phone:           r.phone,
		ResumeURL:       r.resumeURL,
		CoverLetter:     r.coverLetter,
		ApplicationDate: r.applicationDate,
		Status:          r.status,
		Notes:           r.notes,
		CreatedAt:       r.createdAt,
	}
}

type interviewRow struct {
	id            int64
	applicationID int64
	interviewDate time.Time
	interviewerID int64
	interviewType string
	location      *string
	notes         *string
	result        *string
	score         *string
	status        string
	createdAt     time.Time
}

func newInterviewRow(in CreateInterviewInput) interviewRow {
	return interviewRow{
		applicationID: in.ApplicationID,
		interviewDate: in.interviewDate,
		interviewerID: in.InterviewerID,
		interviewType: in.InterviewType,
		location:      in.Location,
		notes:         in.Notes,
		result:        in.Result,
		score:         codec.NullDecimalToStorage(in.Score),
		status:        in.Status,
	}
}

func (r interviewRow) interview() (Interview, error) {
	score, err := codec.NullDecimalFromStorage(r.score)
	if err != nil {
		return Interview{}, fmt.Errorf("decode score: %w", err)
	}
	return Interview{
		ID:            r.id,
		ApplicationID: r.applicationID,
		InterviewDate: r.interviewDate,
		InterviewerID: r.interviewerID,
		InterviewType: r.interviewType,
		Location:      r.location,
		Notes:         r.notes,
		Result:        r.result,
		Score:         score,
		Status:        r.status,
		CreatedAt:     r.createdAt,
	}, nil
}
