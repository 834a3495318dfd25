package attendance

import "context"

type StoreAPI interface {
	InsertAttendance(ctx context.Context, row attendanceRow) (attendanceRow, error)
	ListAttendance(ctx context.Context) ([]attendanceRow, error)
	InsertOvertimeRequest(ctx context.Context, row overtimeRow) (overtimeRow, error)
	ListOvertimeRequests(ctx context.Context) ([]overtimeRow, error)
	UpdateOvertimeRequest(ctx context.Context, id int64, set map[string]any) (overtimeRow, error)
}
