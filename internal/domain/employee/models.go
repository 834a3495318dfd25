package employee

import (
	"fmt"
	"time"

	"hrms/internal/domain/codec"
	"hrms/internal/domain/patch"
	"hrms/internal/validate"
)

var (
	Statuses      = []string{"active", "inactive", "terminated", "resigned"}
	ContractTypes = []string{"permanent", "contract", "daily_freelance"}
)

type Employee struct {
	ID           int64      `json:"id"`
	EmployeeID   string     `json:"employeeId"`
	FullName     string     `json:"fullName"`
	Email        string     `json:"email"`
	Phone        *string    `json:"phone"`
	Address      *string    `json:"address"`
	BirthDate    *time.Time `json:"birthDate"`
	HireDate     time.Time  `json:"hireDate"`
	Position     string     `json:"position"`
	Department   string     `json:"department"`
	Salary       *float64   `json:"salary"`
	Status       string     `json:"status"`
	ContractType string     `json:"contractType"`
	ManagerID    *int64     `json:"managerId"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type Contract struct {
	ID                 int64      `json:"id"`
	EmployeeID         int64      `json:"employeeId"`
	ContractType       string     `json:"contractType"`
	StartDate          time.Time  `json:"startDate"`
	EndDate            *time.Time `json:"endDate"`
	Salary             float64    `json:"salary"`
	TermsAndConditions string     `json:"termsAndConditions"`
	IsActive           bool       `json:"isActive"`
	CreatedAt          time.Time  `json:"createdAt"`
}

type CreateEmployeeInput struct {
	EmployeeID   string   `json:"employeeId"`
	FullName     string   `json:"fullName"`
	Email        string   `json:"email"`
	Phone        *string  `json:"phone"`
	Address      *string  `json:"address"`
	BirthDate    *string  `json:"birthDate"`
	HireDate     string   `json:"hireDate"`
	Position     string   `json:"position"`
	Department   string   `json:"department"`
	Salary       *float64 `json:"salary"`
	Status       string   `json:"status"`
	ContractType string   `json:"contractType"`
	ManagerID    *int64   `json:"managerId"`
}

// Validate checks constraints and canonicalizes date fields in place.
func (in *CreateEmployeeInput) Validate() error {
	v := validate.New()
	v.Required("employeeId", in.EmployeeID)
	v.Required("fullName", in.FullName)
	v.Required("email", in.Email)
	v.Email("email", in.Email)
	v.Required("hireDate", in.HireDate)
	in.HireDate = v.Date("hireDate", in.HireDate)
	if in.BirthDate != nil {
		canonical := v.Date("birthDate", *in.BirthDate)
		in.BirthDate = &canonical
	}
	v.Required("position", in.Position)
	v.Required("department", in.Department)
	if in.Salary != nil {
		v.Positive("salary", *in.Salary)
	}
	v.Required("status", in.Status)
	v.Enum("status", in.Status, Statuses)
	v.Required("contractType", in.ContractType)
	v.Enum("contractType", in.ContractType, ContractTypes)
	return v.Err()
}

type UpdateEmployeeInput struct {
	ID           int64                `json:"id"`
	EmployeeID   *string              `json:"employeeId"`
	FullName     *string              `json:"fullName"`
	Email        *string              `json:"email"`
	Phone        patch.Field[string]  `json:"phone"`
	Address      patch.Field[string]  `json:"address"`
	BirthDate    patch.Field[string]  `json:"birthDate"`
	Position     *string              `json:"position"`
	Department   *string              `json:"department"`
	Salary       patch.Field[float64] `json:"salary"`
	Status       *string              `json:"status"`
	ContractType *string              `json:"contractType"`
	ManagerID    patch.Field[int64]   `json:"managerId"`
}

func (in *UpdateEmployeeInput) Validate() error {
	v := validate.New()
	if in.EmployeeID != nil {
		v.Required("employeeId", *in.EmployeeID)
	}
	if in.FullName != nil {
		v.Required("fullName", *in.FullName)
	}
	if in.Email != nil {
		v.Required("email", *in.Email)
		v.Email("email", *in.Email)
	}
	if in.BirthDate.Set && in.BirthDate.Valid {
		in.BirthDate.Value = v.Date("birthDate", in.BirthDate.Value)
	}
	if in.Position != nil {
		v.Required("position", *in.Position)
	}
	if in.Department != nil {
		v.Required("department", *in.Department)
	}
	if in.Salary.Set && in.Salary.Valid {
		v.Positive("salary", in.Salary.Value)
	}
	if in.Status != nil {
		v.Enum("status", *in.Status, Statuses)
	}
	if in.ContractType != nil {
		v.Enum("contractType", *in.ContractType, ContractTypes)
	}
	return v.Err()
}

// changes maps only the supplied fields to their storage columns;
// omitted fields never appear, so prior values are retained.
func (in UpdateEmployeeInput) changes() map[string]any {
	set := map[string]any{}
	if in.EmployeeID != nil {
		set["employee_id"] = *in.EmployeeID
	}
	if in.FullName != nil {
		set["full_name"] = *in.FullName
	}
	if in.Email != nil {
		set["email"] = *in.Email
	}
	if in.Phone.Set {
		set["phone"] = in.Phone.Ptr()
	}
	if in.Address.Set {
		set["address"] = in.Address.Ptr()
	}
	if in.BirthDate.Set {
		set["birth_date"] = in.BirthDate.Ptr()
	}
	if in.Position != nil {
		set["position"] = *in.Position
	}
	if in.Department != nil {
		set["department"] = *in.Department
	}
	if in.Salary.Set {
		set["salary"] = codec.NullDecimalToStorage(in.Salary.Ptr())
	}
	if in.Status != nil {
		set["status"] = *in.Status
	}
	if in.ContractType != nil {
		set["contract_type"] = *in.ContractType
	}
	if in.ManagerID.Set {
		set["manager_id"] = in.ManagerID.Ptr()
	}
	return set
}

type CreateContractInput struct {
	EmployeeID         int64   `json:"employeeId"`
	ContractType       string  `json:"contractType"`
	StartDate          string  `json:"startDate"`
	EndDate            *string `json:"endDate"`
	Salary             float64 `json:"salary"`
	TermsAndConditions string  `json:"termsAndConditions"`
	IsActive           *bool   `json:"isActive"`
}

func (in *CreateContractInput) Validate() error {
	v := validate.New()
	v.Required("contractType", in.ContractType)
	v.Enum("contractType", in.ContractType, ContractTypes)
	v.Required("startDate", in.StartDate)
	in.StartDate = v.Date("startDate", in.StartDate)
	if in.EndDate != nil {
		canonical := v.Date("endDate", *in.EndDate)
		in.EndDate = &canonical
		v.DateOrder("startDate", in.StartDate, "endDate", canonical)
	}
	v.Positive("salary", in.Salary)
	v.Required("termsAndConditions", in.TermsAndConditions)
	if in.IsActive == nil {
		active := true
		in.IsActive = &active
	}
	return v.Err()
}

// Storage rows carry the persisted representation: dates as YYYY-MM-DD
// text, money as exact decimal text. The input→row mappings are pure.

type employeeRow struct {
	id           int64
	employeeID   string
	fullName     string
	email        string
	phone        *string
	address      *string
	birthDate    *string
	hireDate     string
	position     string
	department   string
	salary       *string
	status       string
	contractType string
	managerID    *int64
	createdAt    time.Time
	updatedAt    time.Time
}

func newEmployeeRow(in CreateEmployeeInput) employeeRow {
	return employeeRow{
		employeeID:   in.EmployeeID,
		fullName:     in.FullName,
		email:        in.Email,
		phone:        in.Phone,
		address:      in.Address,
		birthDate:    in.BirthDate,
		hireDate:     in.HireDate,
		position:     in.Position,
		department:   in.Department,
		salary:       codec.NullDecimalToStorage(in.Salary),
		status:       in.Status,
		contractType: in.ContractType,
		managerID:    in.ManagerID,
	}
}

func (r employeeRow) employee() (Employee, error) {
	hireDate, err := codec.DateFromStorage(r.hireDate)
	if err != nil {
		return Employee{}, fmt.Errorf("decode hire_date: %w", err)
	}
	birthDate, err := codec.NullDateFromStorage(r.birthDate)
	if err != nil {
		return Employee{}, fmt.Errorf("decode birth_date: %w", err)
	}
	salary, err := codec.NullDecimalFromStorage(r.salary)
	if err != nil {
		return Employee{}, fmt.Errorf("decode salary: %w", err)
	}
	return Employee{
		ID:           r.id,
		EmployeeID:   r.employeeID,
		FullName:     r.fullName,
		Email:        r.email,
		Phone:        r.phone,
		Address:      r.address,
		BirthDate:    birthDate,
		HireDate:     hireDate,
		Position:     r.position,
		Department:   r.department,
		Salary:       salary,
		Status:       r.status,
		ContractType: r.contractType,
		ManagerID:    r.managerID,
		CreatedAt:    r.createdAt,
		UpdatedAt:    r.updatedAt,
	}, nil
}

type contractRow struct {
	id                 int64
	employeeID         int64
	contractType       string
	startDate          string
	endDate            *string
	salary             string
	termsAndConditions string
	isActive           bool
	createdAt          time.Time
}

func newContractRow(in CreateContractInput) contractRow {
	return contractRow{
		employeeID:         in.EmployeeID,
		contractType:       in.ContractType,
		startDate:          in.StartDate,
		endDate:            in.EndDate,
		salary:             codec.DecimalToStorage(in.Salary),
		termsAndConditions: in.TermsAndConditions,
		isActive:           *in.IsActive,
	}
}

func (r contractRow) contract() (Contract, error) {
	startDate, err := codec.DateFromStorage(r.startDate)
	if err != nil {
		return Contract{}, fmt.Errorf("decode start_date: %w", err)
	}
	endDate, err := codec.NullDateFromStorage(r.endDate)
	if err != nil {
		return Contract{}, fmt.Errorf("decode end_date: %w", err)
	}
	salary, err := codec.DecimalFromStorage(r.salary)
	if err != nil {
		return Contract{}, fmt.Errorf("decode salary: %w", err)
	}
	return Contract{
		ID:                 r.id,
		EmployeeID:         r.employeeID,
		ContractType:       r.contractType,
		StartDate:          startDate,
		EndDate:            endDate,
		Salary:             salary,
		TermsAndConditions: r.termsAndConditions,
		IsActive:           r.isActive,
		CreatedAt:          r.createdAt,
	}, nil
}
