package dto

import (
	"time"

	"comercio/internal/domain/catalogs/employee"
)

// CreateEmployeeRequest represents a request to create an employee.
type CreateEmployeeRequest struct {
	Name          string    `json:"name" binding:"required"`
	Position      *string   `json:"position,omitempty"`
	AdmissionDate time.Time `json:"admissionDate" binding:"required"`
	UserID        *int      `json:"userId,omitempty"`
}

// ToEntity converts request to domain entity.
func (r *CreateEmployeeRequest) ToEntity() *employee.Employee {
	e := employee.NewEmployee(r.Name, r.AdmissionDate)
	e.Position = r.Position
	e.UserID = r.UserID
	return e
}

// UpdateEmployeeRequest represents a request to update an employee.
type UpdateEmployeeRequest struct {
	Name          *string    `json:"name,omitempty"`
	Position      *string    `json:"position,omitempty"`
	AdmissionDate *time.Time `json:"admissionDate,omitempty"`
	UserID        *int       `json:"userId,omitempty"`
}

// ApplyTo applies updates to an existing entity.
func (r *UpdateEmployeeRequest) ApplyTo(e *employee.Employee) {
	if r.Name != nil {
		e.Name = *r.Name
	}
	if r.Position != nil {
		e.Position = r.Position
	}
	if r.AdmissionDate != nil {
		e.AdmissionDate = *r.AdmissionDate
	}
	if r.UserID != nil {
		e.UserID = r.UserID
	}
}
