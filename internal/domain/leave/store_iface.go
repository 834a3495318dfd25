package leave

import "context"

type StoreAPI interface {
	InsertLeaveRequest(ctx context.Context, row leaveRow) (leaveRow, error)
	ListLeaveRequests(ctx context.Context) ([]leaveRow, error)
	UpdateLeaveRequest(ctx context.Context, id int64, set map[string]any) (leaveRow, error)
}
