package attendance

import (
	"fmt"
	"time"

	"hrms/internal/domain/codec"
	"hrms/internal/domain/patch"
	"hrms/internal/validate"
)

var (
	Statuses         = []string{"present", "absent", "late", "half_day", "sick_leave", "annual_leave"}
	OvertimeStatuses = []string{"pending", "approved", "rejected", "completed"}
)

type Attendance struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employeeId"`
	Date       time.Time `json:"date"`
	CheckIn    *string   `json:"checkIn"`
	CheckOut   *string   `json:"checkOut"`
	BreakStart *string   `json:"breakStart"`
	BreakEnd   *string   `json:"breakEnd"`
	TotalHours *float64  `json:"totalHours"`
	Status     string    `json:"status"`
	Notes      *string   `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
}

type OvertimeRequest struct {
	ID         int64      `json:"id"`
	EmployeeID int64      `json:"employeeId"`
	Date       time.Time  `json:"date"`
	StartTime  string     `json:"startTime"`
	EndTime    string     `json:"endTime"`
	TotalHours float64    `json:"totalHours"`
	Reason     string     `json:"reason"`
	ApprovedBy *int64     `json:"approvedBy"`
	ApprovedAt *time.Time `json:"approvedAt"`
	Status     string     `json:"status"`
	Notes      *string    `json:"notes"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type CreateAttendanceInput struct {
	EmployeeID int64    `json:"employeeId"`
	Date       string   `json:"date"`
	CheckIn    *string  `json:"checkIn"`
	CheckOut   *string  `json:"checkOut"`
	BreakStart *string  `json:"breakStart"`
	BreakEnd   *string  `json:"breakEnd"`
	TotalHours *float64 `json:"totalHours"`
	Status     string   `json:"status"`
	Notes      *string  `json:"notes"`
}

func (in *CreateAttendanceInput) Validate() error {
	v := validate.New()
	v.Required("date", in.Date)
	in.Date = v.Date("date", in.Date)
	if in.TotalHours != nil {
		v.NonNegative("totalHours", *in.TotalHours)
	}
	v.Required("status", in.Status)
	v.Enum("status", in.Status, Statuses)
	return v.Err()
}

type CreateOvertimeRequestInput struct {
	EmployeeID int64   `json:"employeeId"`
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	TotalHours float64 `json:"totalHours"`
	Reason     string  `json:"reason"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes"`
}

func (in *CreateOvertimeRequestInput) Validate() error {
	v := validate.New()
	v.Required("date", in.Date)
	in.Date = v.Date("date", in.Date)
	v.Required("startTime", in.StartTime)
	v.Required("endTime", in.EndTime)
	v.Positive("totalHours", in.TotalHours)
	v.Required("reason", in.Reason)
	if in.Status == "" {
		in.Status = "pending"
	}
	v.Enum("status", in.Status, OvertimeStatuses)
	return v.Err()
}

type UpdateOvertimeRequestInput struct {
	ID         int64               `json:"id"`
	ApprovedBy *int64              `json:"approvedBy"`
	Status     *string             `json:"status"`
	Notes      patch.Field[string] `json:"notes"`
}

func (in *UpdateOvertimeRequestInput) Validate() error {
	v := validate.New()
	if in.Status != nil {
		v.Required("status", *in.Status)
		v.Enum("status", *in.Status, OvertimeStatuses)
	}
	return v.Err()
}

// changes stamps approved_at whenever an approver is supplied; omitting
// approved_by leaves existing approval state untouched.
func (in UpdateOvertimeRequestInput) changes(now time.Time) map[string]any {
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

type attendanceRow struct {
	id         int64
	employeeID int64
	date       string
	checkIn    *string
	checkOut   *string
	breakStart *string
	breakEnd   *string
	totalHours *string
	status     string
	notes      *string
	createdAt  time.Time
}

func newAttendanceRow(in CreateAttendanceInput) attendanceRow {
	return attendanceRow{
		employeeID: in.EmployeeID,
		date:       in.Date,
		checkIn:    in.CheckIn,
		checkOut:   in.CheckOut,
		breakStart: in.BreakStart,
		breakEnd:   in.BreakEnd,
		totalHours: codec.NullDecimalToStorage(in.TotalHours),
		status:     in.Status,
		notes:      in.Notes,
	}
}

func (r attendanceRow) attendance() (Attendance, error) {
	date, err := codec.DateFromStorage(r.date)
	if err != nil {
		return Attendance{}, fmt.Errorf("decode date: %w", err)
	}
	totalHours, err := codec.NullDecimalFromStorage(r.totalHours)
	if err != nil {
		return Attendance{}, fmt.Errorf("decode total_hours: %w", err)
	}
	return Attendance{
		ID:         r.id,
		EmployeeID: r.employeeID,
		Date:       date,
		CheckIn:    r.checkIn,
		CheckOut:   r.checkOut,
		BreakStart: r.breakStart,
		BreakEnd:   r.breakEnd,
		TotalHours: totalHours,
		Status:     r.status,
		Notes:      r.notes,
		CreatedAt:  r.createdAt,
	}, nil
}

type overtimeRow struct {
	id         int64
	employeeID int64
	date       string
	startTime  string
	endTime    string
	totalHours string
	reason     string
	approvedBy *int64
	approvedAt *time.Time
	status     string
	notes      *string
	createdAt  time.Time
}

func newOvertimeRow(in CreateOvertimeRequestInput) overtimeRow {
	return overtimeRow{
		employeeID: in.EmployeeID,
		date:       in.Date,
		startTime:  in.StartTime,
		endTime:    in.EndTime,
		totalHours: codec.DecimalToStorage(in.TotalHours),
		reason:     in.Reason,
		status:     in.Status,
		notes:      in.Notes,
	}
}

func (r overtimeRow) overtimeRequest() (OvertimeRequest, error) {
	date, err := codec.DateFromStorage(r.date)
	if err != nil {
		return OvertimeRequest{}, fmt.Errorf("decode date: %w", err)
	}
	totalHours, err := codec.DecimalFromStorage(r.totalHours)
	if err != nil {
		return OvertimeRequest{}, fmt.Errorf("decode total_hours: %w", err)
	}
	return OvertimeRequest{
		ID:         r.id,
		EmployeeID: r.employeeID,
		Date:       date,
		StartTime:  r.startTime,
		EndTime:    r.endTime,
		TotalHours: totalHours,
		Reason:     r.reason,
		ApprovedBy: r.approvedBy,
		ApprovedAt: r.approvedAt,
		Status:     r.status,
		Notes:      r.notes,
		CreatedAt:  r.createdAt,
	}, nil
}
