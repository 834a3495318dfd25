package recruitment

import "context"

type StoreAPI interface {
	InsertJobRequest(ctx context.Context, row jobRequestRow) (jobRequestRow, error)
	ListJobRequests(ctx context.Context) ([]jobRequestRow, error)
	InsertJobApplication(ctx context.Context, row jobApplicationRow) (jobApplicationRow, error)
	ListJobApplications(ctx context.Context) ([]jobApplicationRow, error)
	UpdateJobApplication(ctx context.Context, id int64, set map[string]any) (jobApplicationRow, error)
	InsertInterview(ctx context.Context, row interviewRow) (interviewRow, error)
	ListInterviews(ctx context.Context) ([]interviewRow, error)
}
