package dto

// CreateEmployeeRequest body para POST /api/employees.
type CreateEmployeeRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position,omitempty"`
	Email     string `json:"email,omitempty"`
	HireDate  string `json:"hire_date,omitempty"`
}

// EmployeeResponse empleado en respuestas.
type EmployeeResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Position  string `json:"position,omitempty"`
	Email     string `json:"email,omitempty"`
	HireDate  string `json:"hire_date,omitempty"`
	Status    string `json:"status"`
}

// CreateLeaveRequest body para POST /api/leaves.
type CreateLeaveRequest struct {
	EmployeeID       string `json:"employee_id"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	IncludeSaturdays bool   `json:"include_saturdays"`
	Type             string `json:"type"`
	Reason           string `json:"reason,omitempty"`
}

// UpdateLeaveRequest body para PUT /api/leaves/:id. Days no se recalcula.
type UpdateLeaveRequest struct {
	StartDate        string  `json:"start_date,omitempty"`
	EndDate          string  `json:"end_date,omitempty"`
	IncludeSaturdays *bool   `json:"include_saturdays,omitempty"`
	Type             string  `json:"type,omitempty"`
	Reason           *string `json:"reason,omitempty"`
}

// LeaveResponse solicitud de ausencia en respuestas.
type LeaveResponse struct {
	ID               string `json:"id"`
	EmployeeID       string `json:"employee_id"`
	EmployeeName     string `json:"employee_name,omitempty"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	IncludeSaturdays bool   `json:"include_saturdays"`
	Type             string `json:"type"`
	Status           string `json:"status"`
	Days             int    `json:"days"`
	Reason           string `json:"reason,omitempty"`
}

// LeavePreviewResponse conteos de días para mostrar antes de crear la solicitud.
type LeavePreviewResponse struct {
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	WorkingDays  int      `json:"working_days"`
	CalendarDays int      `json:"calendar_days"`
	Holidays     []string `json:"holidays"`
	Warning      string   `json:"warning,omitempty"`
}
