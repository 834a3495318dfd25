package attendance

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

func (s *Service) CreateAttendance(ctx context.Context, in CreateAttendanceInput) (Attendance, error) {
	if err := in.Validate(); err != nil {
		return Attendance{}, err
	}
	if err := s.refs.Exists(ctx, guard.Employees, in.EmployeeID); err != nil {
		return Attendance{}, err
	}
	row, err := s.store.InsertAttendance(ctx, newAttendanceRow(in))
	if err != nil {
		return Attendance{}, err
	}
	return row.attendance()
}

func (s *Service) ListAttendance(ctx context.Context) ([]Attendance, error) {
	rows, err := s.store.ListAttendance(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]Attendance, 0, len(rows))
	for _, row := range rows {
		record, err := row.attendance()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (s *Service) CreateOvertimeRequest(ctx context.Context, in CreateOvertimeRequestInput) (OvertimeRequest, error) {
	if err := in.Validate(); err != nil {
		return OvertimeRequest{}, err
	}
	if err := s.refs.Exists(ctx, guard.Employees, in.EmployeeID); err != nil {
		return OvertimeRequest{}, err
	}
	row, err := s.store.InsertOvertimeRequest(ctx, newOvertimeRow(in))
	if err != nil {
		return OvertimeRequest{}, err
	}
	return row.overtimeRequest()
}

func (s *Service) ListOvertimeRequests(ctx context.Context) ([]OvertimeRequest, error) {
	rows, err := s.store.ListOvertimeRequests(ctx)
	if err != nil {
		return nil, err
	}
	requests := make([]OvertimeRequest, 0, len(rows))
	for _, row := range rows {
		request, err := row.overtimeRequest()
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, nil
}

func (s *Service) UpdateOvertimeRequest(ctx context.Context, in UpdateOvertimeRequestInput) (OvertimeRequest, error) {
	if err := in.Validate(); err != nil {
		return OvertimeRequest{}, err
	}
	if in.ApprovedBy != nil {
		if err := s.refs.Exists(ctx, guard.Employees, *in.ApprovedBy); err != nil {
			return OvertimeRequest{}, err
		}
	}
	row, err := s.store.UpdateOvertimeRequest(ctx, in.ID, in.changes(s.now()))
	if errors.Is(err, pgx.ErrNoRows) {
		return OvertimeRequest{}, &guard.NotFoundError{Entity: "Overtime request", ID: in.ID}
	}
	if err != nil {
		return OvertimeRequest{}, err
	}
	return row.overtimeRequest()
}
