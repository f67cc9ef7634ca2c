package entity

import "time"

// Tipos de ausencia.
const (
	LeaveTypeAnnual    = "annual"
	LeaveTypeSick      = "sick"
	LeaveTypeMaternity = "maternity"
	LeaveTypeOther     = "other"
)

// Estados de una solicitud de ausencia.
const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

// LeaveRequest es una solicitud de ausencia.
// Days se calcula una sola vez al crearla y queda congelado aunque luego se editen las fechas.
type LeaveRequest struct {
	ID               string
	CompanyID        string
	EmployeeID       string
	StartDate        time.Time
	EndDate          time.Time
	IncludeSaturdays bool
	Type             string
	Status           string
	Days             int
	Reason           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsValidLeaveType indica si t es un tipo de ausencia conocido.
func IsValidLeaveType(t string) bool {
	switch t {
	case LeaveTypeAnnual, LeaveTypeSick, LeaveTypeMaternity, LeaveTypeOther:
		return true
	}
	return false
}
