package leave

import (
	"fmt"
	"time"

	"hrms/internal/domain/codec"
	"hrms/internal/domain/patch"
	"hrms/internal/validate"
)

var (
	Types    = []string{"annual", "sick", "maternity", "emergency", "unpaid"}
	Statuses = []string{"pending", "approved", "rejected"}
)

type LeaveRequest struct {
	ID         int64      `json:"id"`
	EmployeeID int64      `json:"employeeId"`
	LeaveType  string     `json:"leaveType"`
	StartDate  time.Time  `json:"startDate"`
	EndDate    time.Time  `json:"endDate"`
	TotalDays  int        `json:"totalDays"`
	Reason     string     `json:"reason"`
	ApprovedBy *int64     `json:"approvedBy"`
	ApprovedAt *time.Time `json:"approvedAt"`
	Status     string     `json:"status"`
	Notes      *string    `json:"notes"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type CreateLeaveRequestInput struct {
	EmployeeID int64   `json:"employeeId"`
	LeaveType  string  `json:"leaveType"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	TotalDays  int     `json:"totalDays"`
	Reason     string  `json:"reason"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes"`
}

func (in *CreateLeaveRequestInput) Validate() error {
	v := validate.New()
	v.Required("leaveType", in.LeaveType)
	v.Enum("leaveType", in.LeaveType, Types)
	v.Required("startDate", in.StartDate)
	in.StartDate = v.Date("startDate", in.StartDate)
	v.Required("endDate", in.EndDate)
	in.EndDate = v.Date("endDate", in.EndDate)
	v.DateOrder("startDate", in.StartDate, "endDate", in.EndDate)
	v.PositiveInt("totalDays", in.TotalDays)
	v.Required("reason", in.Reason)
	if in.Status == "" {
		in.Status = "pending"
	}
	v.Enum("status", in.Status, Statuses)
	return v.Err()
}

type UpdateLeaveRequestInput struct {
	ID         int64               `json:"id"`
	ApprovedBy *int64              `json:"approvedBy"`
	Status     *string             `json:"status"`
	Notes      patch.Field[string] `json:"notes"`
}

func (in *UpdateLeaveRequestInput) Validate() error {
	v := validate.New()
	if in.Status != nil {
		v.Required("status", *in.Status)
		v.Enum("status", *in.Status, Statuses)
	}
	return v.Err()
}

// changes stamps approved_at whenever an approver is supplied; omitting
// approved_by leaves existing approval state untouched.
func (in UpdateLeaveRequestInput) changes(now time.Time) map[string]any {
	set := map[string]any{}
	if in.ApprovedBy != nil {
		set["approved_by"] = *in.ApprovedBy
		set["approved_at"] = now
	}
	if in.Status != nil {
		set["status"] = *in.Status
	}
	if in.Notes.Set {
		set["notes"] = in.Notes.Ptr()
	}
	return set
}

type leaveRow struct {
	id         int64
	employeeID int64
	leaveType  string
	startDate  string
	endDate    string
	totalDays  int
	reason     string
	approvedBy *int64
	approvedAt *time.Time
	status     string
	notes      *string
	createdAt  time.Time
}

func newLeaveRow(in CreateLeaveRequestInput) leaveRow {
	return leaveRow{
		employeeID: in.EmployeeID,
		leaveType:  in.LeaveType,
		startDate:  in.StartDate,
		endDate:    in.EndDate,
		totalDays:  in.TotalDays,
		reason:     in.Reason,
		status:     in.Status,
		notes:      in.Notes,
	}
}

func (r leaveRow) leaveRequest() (LeaveRequest, error) {
	startDate, err := codec.DateFromStorage(r.startDate)
	if err != nil {
		return LeaveRequest{}, fmt.Errorf("decode start_date: %w", err)
	}
	endDate, err := codec.DateFromStorage(r.endDate)
	if err != nil {
		return LeaveRequest{}, fmt.Errorf("decode end_date: %w", err)
	}
	return LeaveRequest{
		ID:         r.id,
		EmployeeID: r.employeeID,
		LeaveType:  r.leaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		TotalDays:  r.totalDays,
		Reason:     r.reason,
		ApprovedBy: r.approvedBy,
		ApprovedAt: r.approvedAt,
		Status:     r.status,
		Notes:      r.notes,
		CreatedAt:  r.createdAt,
	}, nil
}
