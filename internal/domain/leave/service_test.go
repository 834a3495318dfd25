package leave

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

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
	requests map[int64]leaveRow
	nextID   int64
	now      time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		requests: map[int64]leaveRow{},
		now:      time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (f *fakeStore) InsertLeaveRequest(_ context.Context, row leaveRow) (leaveRow, error) {
	f.nextID++
	row.id = f.nextID
	row.createdAt = f.now
	f.requests[row.id] = row
	return row, nil
}

func (f *fakeStore) ListLeaveRequests(_ context.Context) ([]leaveRow, error) {
	var out []leaveRow
	for id := int64(1); id <= f.nextID; id++ {
		if row, ok := f.requests[id]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateLeaveRequest(_ context.Context, id int64, set map[string]any) (leaveRow, error) {
	row, ok := f.requests[id]
	if !ok {
		return leaveRow{}, pgx.ErrNoRows
	}
	for column, value := range set {
		switch column {
		case "approved_by":
			approver := value.(int64)
			row.approvedBy = &approver
		case "approved_at":
			at := value.(time.Time)
			row.approvedAt = &at
		case "status":
			row.status = value.(string)
		case "notes":
			row.notes = value.(*string)
		}
	}
	f.requests[id] = row
	return row, nil
}

func createRequest(t *testing.T, svc *Service, notes string) LeaveRequest {
	t.Helper()
	in := CreateLeaveRequestInput{
		EmployeeID: 1,
		LeaveType:  "annual",
		StartDate:  "2024-04-01",
		EndDate:    "2024-04-05",
		TotalDays:  5,
		Reason:     "family trip",
	}
	if notes != "" {
		in.Notes = &notes
	}
	request, err := svc.CreateLeaveRequest(context.Background(), in)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	return request
}

func TestCreateLeaveRequestDefaultsPending(t *testing.T) {
	refs := &fakeRefs{existing: map[string]bool{refKey(guard.Employees, 1): true}}
	svc := NewService(newFakeStore(), refs)

	request := createRequest(t, svc, "")
	if request.Status != "pending" {
		t.Fatalf("expected default status pending, got %s", request.Status)
	}
	if !request.StartDate.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start date %v", request.StartDate)
	}
}

func TestCreateLeaveRequestMissingEmployee(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &fakeRefs{})

	_, err := svc.CreateLeaveRequest(context.Background(), CreateLeaveRequestInput{
		EmployeeID: 42,
		LeaveType:  "sick",
		StartDate:  "2024-04-01",
		EndDate:    "2024-04-02",
		TotalDays:  2,
		Reason:     "flu",
	})
	var nf *guard.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if len(store.requests) != 0 {
		t.Fatal("failed guard must not write a row")
	}
}

func TestCreateLeaveRequestRejectsBadType(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeRefs{})

	_, err := svc.CreateLeaveRequest(context.Background(), CreateLeaveRequestInput{
		EmployeeID: 1,
		LeaveType:  "sabbatical",
		StartDate:  "2024-04-01",
		EndDate:    "2024-04-02",
		TotalDays:  2,
		Reason:     "time off",
	})
	var verr *validate.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateLeaveRequestApprovalSideEffect(t *testing.T) {
	refs := &fakeRefs{existing: map[string]bool{
		refKey(guard.Employees, 1): true,
		refKey(guard.Employees, 9): true,
	}}
	svc := NewService(newFakeStore(), refs)
	approvedAt := time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return approvedAt }

	created := createRequest(t, svc, "original")

	approver := int64(9)
	status := "approved"
	updated, err := svc.UpdateLeaveRequest(context.Background(), UpdateLeaveRequestInput{
		ID:         created.ID,
		ApprovedBy: &approver,
		Status:     &status,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ApprovedAt == nil || !updated.ApprovedAt.Equal(approvedAt) {
		t.Fatalf("expected approved_at stamped %v, got %v", approvedAt, updated.ApprovedAt)
	}
	if updated.Status != "approved" {
		t.Fatalf("expected status approved, got %s", updated.Status)
	}
	if updated.Notes == nil || *updated.Notes != "original" {
		t.Fatalf("omitted notes must retain prior value, got %v", updated.Notes)
	}

	// Omitting approved_by later must not clear approval state.
	rejected := "rejected"
	final, err := svc.UpdateLeaveRequest(context.Background(), UpdateLeaveRequestInput{ID: created.ID, Status: &rejected})
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}
	if final.ApprovedAt == nil || !final.ApprovedAt.Equal(approvedAt) {
		t.Fatalf("approval state must be untouched, got %v", final.ApprovedAt)
	}
	if final.ApprovedBy == nil || *final.ApprovedBy != 9 {
		t.Fatalf("approver must be untouched, got %v", final.ApprovedBy)
	}
}

func TestUpdateLeaveRequestNotFound(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeRefs{})

	_, err := svc.UpdateLeaveRequest(context.Background(), UpdateLeaveRequestInput{ID: 7})
	var nf *guard.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if nf.Error() != "Leave request with id 7 not found" {
		t.Fatalf("unexpected message: %s", nf.Error())
	}
}

func TestListLeaveRequestsIdempotent(t *testing.T) {
	refs := &fakeRefs{existing: map[string]bool{refKey(guard.Employees, 1): true}}
	svc := NewService(newFakeStore(), refs)
	createRequest(t, svc, "")

	first, err := svc.ListLeaveRequests(context.Background())
	if err != nil {
		t.Fatalf("first list failed: %v", err)
	}
	second, err := svc.ListLeaveRequests(context.Background())
	if err != nil {
		t.Fatalf("second list failed: %v", err)
	}
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected one request in both lists, got %d and %d", len(first), len(second))
	}
	if first[0] != second[0] {
		t.Fatal("lists with no intervening writes must be equal")
	}
}
