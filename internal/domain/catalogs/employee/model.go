// Package employee provides the Employee catalog.
// Employees are the sales people referenced by documents.
package employee

import (
	"context"
	"time"

	"comercio/internal/core/apperror"
)

// Employee represents a sales employee.
type Employee struct {
	// Code is the generated employee number
	Code int `db:"code" json:"code"`

	// Name is the full display name
	Name string `db:"name" json:"name"`

	// Position is the job title
	Position *string `db:"position" json:"position,omitempty"`

	// AdmissionDate is the hire date
	AdmissionDate time.Time `db:"admission_date" json:"admissionDate"`

	// UserID links the employee to a login account, nil when none
	UserID *int `db:"user_id" json:"userId,omitempty"`
}

// NewEmployee creates a new Employee with required fields.
func NewEmployee(name string, admissionDate time.Time) *Employee {
	return &Employee{
		Name:          name,
		AdmissionDate: admissionDate,
	}
}

// Validate implements entity.Validatable interface.
func (e *Employee) Validate(ctx context.Context) error {
	if e.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if e.AdmissionDate.IsZero() {
		return apperror.NewValidation("admission date is required").
			WithDetail("field", "admissionDate")
	}
	return nil
}
