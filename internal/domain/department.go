package domain

import "strings"

// Department is an organizational unit as exchanged with the upstream API.
// The Employees list mirrors what the editor last attached; the authoritative
// linkage is the Department foreign key on each employee (see enrich).
type Department struct {
	ID         ID         `json:"id"`
	Name       string     `json:"name"`
	Status     string     `json:"status,omitempty"`
	Email      string     `json:"email,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Street     string     `json:"street,omitempty"`
	Room       string     `json:"room,omitempty"`
	PostalCode string     `json:"postalCode,omitempty"`
	City       string     `json:"city,omitempty"`
	Employees  []Employee `json:"employees,omitempty"`
	Services   []Service  `json:"services,omitempty"`
}

// DepartmentForm carries the editable fields of a department draft.
type DepartmentForm struct {
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Street     string     `json:"street"`
	Room       string     `json:"room"`
	PostalCode string     `json:"postalCode"`
	City       string     `json:"city"`
	Hide       bool       `json:"hide"`
	Employees  []Employee `json:"employees"`
	Services   []Service  `json:"services"`
}

// RequiredFilled reports whether all required fields are non-empty.
func (f DepartmentForm) RequiredFilled() bool {
	return strings.TrimSpace(f.Name) != "" &&
		strings.TrimSpace(f.Email) != "" &&
		strings.TrimSpace(f.Phone) != ""
}

// Build finalizes the draft into a Department, deriving status and assigning
// a temporary id when none exists yet.
func (f DepartmentForm) Build(id ID) Department {
	if id.IsZero() {
		id = NewDraftID(KindDepartment)
	}
	return Department{
		ID:         id,
		Name:       strings.TrimSpace(f.Name),
		Status:     string(DeriveStatus(f.Hide, f.RequiredFilled())),
		Email:      f.Email,
		Phone:      f.Phone,
		Street:     f.Street,
		Room:       f.Room,
		PostalCode: f.PostalCode,
		City:       f.City,
		Employees:  f.Employees,
		Services:   f.Services,
	}
}

// FormFromDepartment seeds an editable form from an existing record.
func FormFromDepartment(d Department) DepartmentForm {
	return DepartmentForm{
		Name:       d.Name,
		Email:      d.Email,
		Phone:      d.Phone,
		Street:     d.Street,
		Room:       d.Room,
		PostalCode: d.PostalCode,
		City:       d.City,
		Hide:       NormalizeStatus(d.Status) == StatusDisabled,
		Employees:  d.Employees,
		Services:   d.Services,
	}
}
