package recruitment

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"hrms/internal/domain/guard"
)

type Service struct {
	store StoreAPI
	refs  guard.RefChecker
}

func NewService(store StoreAPI, refs guard.RefChecker) *Service {
	return &Service{store: store, refs: refs}
}

func (s *Service) CreateJobRequest(ctx context.Context, in CreateJobRequestInput) (JobRequest, error) {
	if err := in.Validate(); err != nil {
		return JobRequest{}, err
	}
	if err := s.refs.Exists(ctx, guard.Employees, in.RequestedBy); err != nil {
		return JobRequest{}, err
	}
	row, err := s.store.InsertJobRequest(ctx, newJobRequestRow(in))
	if err != nil {
		return JobRequest{}, err
	}
	return row.jobRequest()
}

func (s *Service) ListJobRequests(ctx context.Context) ([]JobRequest, error) {
	rows, err := s.store.ListJobRequests(ctx)
	if err != nil {
		return nil, err
	}
	requests := make([]JobRequest, 0, len(rows))
	for _, row := range rows {
		request, err := row.jobRequest()
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, nil
}

func (s *Service) CreateJobApplication(ctx context.Context, in CreateJobApplicationInput) (JobApplication, error) {
	if err := in.Validate(); err != nil {
		return JobApplication{}, err
	}
	if err := s.refs.Exists(ctx, guard.JobRequests, in.JobRequestID); err != nil {
		return JobApplication{}, err
	}
	row, err := s.store.InsertJobApplication(ctx, newJobApplicationRow(in))
	if err != nil {
		return JobApplication{}, err
	}
	return row.jobApplication(), nil
}

func (s *Service) ListJobApplications(ctx context.Context) ([]JobApplication, error) {
	rows, err := s.store.ListJobApplications(ctx)
	if err != nil {
		return nil, err
	}
	applications := make([]JobApplication, 0, len(rows))
	for _, row := range rows {
		applications = append(applications, row.jobApplication())
	}
	return applications, nil
}

func (s *Service) UpdateJobApplication(ctx context.Context, in UpdateJobApplicationInput) (JobApplication, error) {
	if err := in.Validate(); err != nil {
		return JobApplication{}, err
	}
	row, err := s.store.UpdateJobApplication(ctx, in.ID, in.changes())
	if errors.Is(err, pgx.ErrNoRows) {
		return JobApplication{}, &guard.NotFoundError{Entity: "Job application", ID: in.ID}
	}
	if err != nil {
		return JobApplication{}, err
	}
	return row.jobApplication(), nil
}

// CreateInterview checks the referenced application before the
// interviewer; the first missing reference aborts the create.
func (s *Service) CreateInterview(ctx context.Context, in CreateInterviewInput) (Interview, error) {
	if err := in.Validate(); err != nil {
		return Interview{}, err
	}
	if err := s.refs.Exists(ctx, guard.JobApplications, in.ApplicationID); err != nil {
		return Interview{}, err
	}
	if err := s.refs.Exists(ctx, guard.Employees, in.InterviewerID); err != nil {
		return Interview{}, err
	}
	row, err := s.store.InsertInterview(ctx, newInterviewRow(in))
	if err != nil {
		return Interview{}, err
	}
	return row.interview()
}

func (s *Service) ListInterviews(ctx context.Context) ([]Interview, error) {
	rows, err := s.store.ListInterviews(ctx)
	if err != nil {
		return nil, err
	}
	interviews := make([]Interview, 0, len(rows))
	for _, row := range rows {
		interview, err := row.interview()
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, interview)
	}
	return interviews, nil
}
