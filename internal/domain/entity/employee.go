package entity

import "time"

// Estados de empleado.
const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"
)

// Employee representa un empleado de la empresa (módulo RH).
type Employee struct {
	ID        string
	CompanyID string
	FirstName string
	LastName  string
	Position  string
	Email     string
	HireDate  time.Time
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName devuelve "Nombre Apellido".
func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
