package leave

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"hrms/internal/domain/guard"
)

type Service struct {
	store StoreAPI
	refs  guard.RefChecker
	now   func() time.Time
}

func NewService(store StoreAPI, refs guard.RefChecker) *Service {
	return &Service{store: store, refs: refs, now: time.Now}
}

func (s *Service) CreateLeaveRequest(ctx context.Context, in CreateLeaveRequestInput) (LeaveRequest, error) {
	if err := in.Validate(); err != nil {
		return LeaveRequest{}, err
	}
	if err := s.refs.Exists(ctx, guard.Employees, in.EmployeeID); err != nil {
		return LeaveRequest{}, err
	}
	row, err := s.store.InsertLeaveRequest(ctx, newLeaveRow(in))
	if err != nil {
		return LeaveRequest{}, err
	}
	return row.leaveRequest()
}

func (s *Service) ListLeaveRequests(ctx context.Context) ([]LeaveRequest, error) {
	rows, err := s.store.ListLeaveRequests(ctx)
	if err != nil {
		return nil, err
	}
	requests := make([]LeaveRequest, 0, len(rows))
	for _, row := range rows {
		request, err := row.leaveRequest()
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, nil
}

func (s *Service) UpdateLeaveRequest(ctx context.Context, in UpdateLeaveRequestInput) (LeaveRequest, error) {
	if err := in.Validate(); err != nil {
		return LeaveRequest{}, err
	}
	if in.ApprovedBy != nil {
		if err := s.refs.Exists(ctx, guard.Employees, *in.ApprovedBy); err != nil {
			return LeaveRequest{}, err
		}
	}
	row, err := s.store.UpdateLeaveRequest(ctx, in.ID, in.changes(s.now()))
	if errors.Is(err, pgx.ErrNoRows) {
		return LeaveRequest{}, &guard.NotFoundError{Entity: "Leave request", ID: in.ID}
	}
	if err != nil {
		return LeaveRequest{}, err
	}
	return row.leaveRequest()
}
