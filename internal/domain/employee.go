package domain

import "strings"

// Vacation is a single absence range, ISO date strings on the wire.
type Vacation struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Employee models a sachbearbeiter (case worker).
type Employee struct {
	ID             ID         `json:"id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Name           string     `json:"name,omitempty"`
	Email          string     `json:"email,omitempty"`
	Telephone      string     `json:"telephone,omitempty"`
	DateOfBirth    string     `json:"date_of_birth,omitempty"`
	Position       string     `json:"position,omitempty"`
	Group          string     `json:"group,omitempty"`
	Permissions    string     `json:"permissions,omitempty"`
	Department     ID         `json:"department"`
	Days           []string   `json:"days,omitempty"`
	ShiftStart     string     `json:"shift_start,omitempty"`
	ShiftEnd       string     `json:"shift_end,omitempty"`
	BreakStart     string     `json:"break_start,omitempty"`
	BreakEnd       string     `json:"break_end,omitempty"`
	Vacations      []Vacation `json:"vacations,omitempty"`
	Qualifications string     `json:"qualifications,omitempty"`
	Status         string     `json:"status,omitempty"`
}

// FullName joins first and last name with a single space, trimmed.
func (e Employee) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(e.FirstName) + " " + strings.TrimSpace(e.LastName))
}

// EmployeeForm carries the editable fields of a staff draft.
type EmployeeForm struct {
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Email          string     `json:"email"`
	Telephone      string     `json:"telephone"`
	DateOfBirth    string     `json:"date_of_birth"`
	Position       string     `json:"position"`
	Group          string     `json:"group"`
	Permissions    string     `json:"permissions"`
	Department     ID         `json:"department"`
	Days           []string   `json:"days"`
	ShiftStart     string     `json:"shift_start"`
	ShiftEnd       string     `json:"shift_end"`
	BreakStart     string     `json:"break_start"`
	BreakEnd       string     `json:"break_end"`
	Vacations      []Vacation `json:"vacations"`
	Qualifications string     `json:"qualifications"`
	Hide           bool       `json:"hide"`
}

// RequiredFilled reports whether a name part and a contact channel exist.
func (f EmployeeForm) RequiredFilled() bool {
	hasName := strings.TrimSpace(f.FirstName) != "" || strings.TrimSpace(f.LastName) != ""
	hasContact := strings.TrimSpace(f.Email) != "" || strings.TrimSpace(f.Telephone) != ""
	return hasName && hasContact
}

// Build finalizes the draft into an Employee.
func (f EmployeeForm) Build(id ID) Employee {
	if id.IsZero() {
		id = NewDraftID(KindEmployee)
	}
	e := Employee{
		ID:             id,
		FirstName:      f.FirstName,
		LastName:       f.LastName,
		Email:          f.Email,
		Telephone:      f.Telephone,
		DateOfBirth:    f.DateOfBirth,
		Position:       f.Position,
		Group:          f.Group,
		Permissions:    f.Permissions,
		Department:     f.Department,
		Days:           f.Days,
		ShiftStart:     f.ShiftStart,
		ShiftEnd:       f.ShiftEnd,
		BreakStart:     f.BreakStart,
		BreakEnd:       f.BreakEnd,
		Vacations:      f.Vacations,
		Qualifications: f.Qualifications,
		Status:         string(DeriveStatus(f.Hide, f.RequiredFilled())),
	}
	e.Name = e.FullName()
	return e
}

// FormFromEmployee seeds an editable form from an existing record.
func FormFromEmployee(e Employee) EmployeeForm {
	return EmployeeForm{
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		Telephone:      e.Telephone,
		DateOfBirth:    e.DateOfBirth,
		Position:       e.Position,
		Group:          e.Group,
		Permissions:    e.Permissions,
		Department:     e.Department,
		Days:           e.Days,
		ShiftStart:     e.ShiftStart,
		ShiftEnd:       e.ShiftEnd,
		BreakStart:     e.BreakStart,
		BreakEnd:       e.BreakEnd,
		Vacations:      e.Vacations,
		Qualifications: e.Qualifications,
		Hide:           NormalizeStatus(e.Status) == StatusDisabled,
	}
}
