package attendance

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
	attendance map[int64]attendanceRow
	overtime   map[int64]overtimeRow
	nextID     int64
	now        time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		attendance: map[int64]attendanceRow{},
		overtime:   map[int64]overtimeRow{},
		now:        time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (f *fakeStore) InsertAttendance(_ context.Context, row attendanceRow) (attendanceRow, error) {
	f.nextID++
	row.id = f.nextID
	row.createdAt = f.now
	f.attendance[row.id] = row
	return row, nil
}

func (f *fakeStore) ListAttendance(_ context.Context) ([]attendanceRow, error) {
	var out []attendanceRow
	for id := int64(1); id <= f.nextID; id++ {
		if row, ok := f.attendance[id]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeStore) InsertOvertimeRequest(_ context.Context, row overtimeRow) (overtimeRow, error) {
	f.nextID++
	row.id = f.nextID
	row.createdAt = f.now
	f.overtime[row.id] = row
	return row, nil
}

func (f *fakeStore) ListOvertimeRequests(_ context.Context) ([]overtimeRow, error) {
	var out []overtimeRow
	for id := int64(1); id <= f.nextID; id++ {
		if row, ok := f.overtime[id]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateOvertimeRequest(_ context.Context, id int64, set map[string]any) (overtimeRow, error) {
	row, ok := f.overtime[id]
	if !ok {
		return overtimeRow{}, pgx.ErrNoRows
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
	f.overtime[id] = row
	return row, nil
}

func TestCreateAttendanceMissingEmployee(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &fakeRefs{})

	_, err := svc.CreateAttendance(context.Background(), CreateAttendanceInput{
		EmployeeID: 999,
		Date:       "2024-03-01",
		Status:     "present",
	})
	var nf *guard.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if nf.Error() != "Employee with id 999 not found" {
		t.Fatalf("unexpected message: %s", nf.Error())
	}
	if len(store.attendance) != 0 {
		t.Fatal("failed guard must not write a row")
	}
}

func TestCreateAttendanceRejectsNegativeHours(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeRefs{})
	hours := -1.0

	_, err := svc.CreateAttendance(context.Background(), CreateAttendanceInput{
		EmployeeID: 1,
		Date:       "2024-03-01",
		TotalHours: &hours,
		Status:     "present",
	})
	var verr *validate.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateOvertimeHoursRoundTrip(t *testing.T) {
	refs := &fakeRefs{existing: map[string]bool{refKey(guard.Employees, 1): true}}
	svc := NewService(newFakeStore(), refs)

	request, err := svc.CreateOvertimeRequest(context.Background(), CreateOvertimeRequestInput{
		EmployeeID: 1,
		Date:       "2024-03-01",
		StartTime:  "18:00",
		EndTime:    "20:30",
		TotalHours: 2.5,
		Reason:     "release support",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if request.TotalHours != 2.5 {
		t.Fatalf("expected total hours 2.5, got %v", request.TotalHours)
	}
	if request.Status != "pending" {
		t.Fatalf("expected default status pending, got %s", request.Status)
	}
}

func TestUpdateOvertimeApprovalStampsTimestamp(t *testing.T) {
	refs := &fakeRefs{existing: map[string]bool{
		refKey(guard.Employees, 1): true,
		refKey(guard.Employees, 2): true,
	}}
	store := newFakeStore()
	svc := NewService(store, refs)
	approvedAt := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return approvedAt }

	created, err := svc.CreateOvertimeRequest(context.Background(), CreateOvertimeRequestInput{
		EmployeeID: 1,
		Date:       "2024-03-01",
		StartTime:  "18:00",
		EndTime:    "20:30",
		TotalHours: 2.5,
		Reason:     "release support",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	approver := int64(2)
	updated, err := svc.UpdateOvertimeRequest(context.Background(), UpdateOvertimeRequestInput{ID: created.ID, ApprovedBy: &approver})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ApprovedBy == nil || *updated.ApprovedBy != 2 {
		t.Fatalf("expected approver 2, got %v", updated.ApprovedBy)
	}
	if updated.ApprovedAt == nil || !updated.ApprovedAt.Equal(approvedAt) {
		t.Fatalf("expected approved_at %v, got %v", approvedAt, updated.ApprovedAt)
	}

	// A later update without approved_by must not clear approval state.
	status := "completed"
	final, err := svc.UpdateOvertimeRequest(context.Background(), UpdateOvertimeRequestInput{ID: created.ID, Status: &status})
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}
	if final.ApprovedAt == nil || !final.ApprovedAt.Equal(approvedAt) {
		t.Fatalf("approval state must be untouched, got %v", final.ApprovedAt)
	}
}

func TestUpdateOvertimeMissingApprover(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeRefs{})
	approver := int64(77)

	_, err := svc.UpdateOvertimeRequest(context.Background(), UpdateOvertimeRequestInput{ID: 1, ApprovedBy: &approver})
	var nf *guard.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if nf.Entity != "Employee" || nf.ID != 77 {
		t.Fatalf("unexpected target: %+v", nf)
	}
}

func TestUpdateOvertimeNotFound(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeRefs{})

	_, err := svc.UpdateOvertimeRequest(context.Background(), UpdateOvertimeRequestInput{ID: 5})
	var nf *guard.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if nf.Error() != "Overtime request with id 5 not found" {
		t.Fatalf("unexpected message: %s", nf.Error())
	}
}
