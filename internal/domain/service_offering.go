package domain

import "strings"

// Requirement configures how a booking form field is treated.
type Requirement string

const (
	RequirementDisabled Requirement = "disabled"
	RequirementOptional Requirement = "optional"
	RequirementRequired Requirement = "required"
)

// FieldSettings maps the fixed set of booking fields to requirements.
type FieldSettings struct {
	Address    Requirement `json:"address"`
	AltAddress Requirement `json:"altAddress"`
	Email      Requirement `json:"email"`
	AltEmail   Requirement `json:"altEmail"`
	Phone      Requirement `json:"phone"`
	AltPhone   Requirement `json:"altPhone"`
}

// DefaultFieldSettings marks every field optional.
func DefaultFieldSettings() FieldSettings {
	return FieldSettings{
		Address:    RequirementOptional,
		AltAddress: RequirementOptional,
		Email:      RequirementOptional,
		AltEmail:   RequirementOptional,
		Phone:      RequirementOptional,
		AltPhone:   RequirementOptional,
	}
}

// NamedItem is a small id/name pair used for notifications, qualifications
// and document metadata attached to a service.
type NamedItem struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// Service is a bookable service offered by a department.
type Service struct {
	ID               ID            `json:"id"`
	Title            string        `json:"title,omitempty"`
	Name             string        `json:"name"`
	Type             string        `json:"type,omitempty"`
	Duration         int           `json:"duration,omitempty"`
	Buffer           int           `json:"buffer,omitempty"`
	Fee              string        `json:"fee,omitempty"`
	Price            string        `json:"price,omitempty"`
	MaxPersons       int           `json:"maxPersons,omitempty"`
	ParallelBookings int           `json:"parallelBookings,omitempty"`
	Note             string        `json:"note,omitempty"`
	Description      string        `json:"description,omitempty"`
	IsActive         bool          `json:"is_active"`
	Status           string        `json:"status,omitempty"`
	Department       DepartmentRef `json:"department"`
	Notifications    []NamedItem   `json:"notifications,omitempty"`
	Qualifications   []NamedItem   `json:"qualifications,omitempty"`
	Documents        []NamedItem   `json:"documents,omitempty"`
	Fields           FieldSettings `json:"fields"`
}

// ServiceForm carries the editable fields of a service draft.
type ServiceForm struct {
	Title            string        `json:"title"`
	Type             string        `json:"type"`
	Duration         int           `json:"duration"`
	Buffer           int           `json:"buffer"`
	Fee              string        `json:"fee"`
	MaxPersons       int           `json:"maxPersons"`
	ParallelBookings int           `json:"parallelBookings"`
	Note             string        `json:"note"`
	Hide             bool          `json:"hide"`
	Department       DepartmentRef `json:"department"`
	Notifications    []NamedItem   `json:"notifications"`
	Qualifications   []NamedItem   `json:"qualifications"`
	Documents        []NamedItem   `json:"documents"`
	Fields           FieldSettings `json:"fields"`
}

// RequiredFilled reports whether title and duration are set.
func (f ServiceForm) RequiredFilled() bool {
	return strings.TrimSpace(f.Title) != "" && f.Duration > 0
}

// Build finalizes the draft into a Service. Title doubles as name and note
// as description for compatibility with both upstream conventions.
func (f ServiceForm) Build(id ID) Service {
	if id.IsZero() {
		id = NewDraftID(KindService)
	}
	fee := f.Fee
	if fee == "" {
		fee = "0.00"
	}
	fields := f.Fields
	if fields == (FieldSettings{}) {
		fields = DefaultFieldSettings()
	}
	return Service{
		ID:               id,
		Title:            strings.TrimSpace(f.Title),
		Name:             strings.TrimSpace(f.Title),
		Type:             f.Type,
		Duration:         f.Duration,
		Buffer:           f.Buffer,
		Fee:              fee,
		Price:            f.Fee,
		MaxPersons:       f.MaxPersons,
		ParallelBookings: f.ParallelBookings,
		Note:             f.Note,
		Description:      f.Note,
		IsActive:         !f.Hide,
		Status:           string(DeriveStatus(f.Hide, f.RequiredFilled())),
		Department:       f.Department,
		Notifications:    f.Notifications,
		Qualifications:   f.Qualifications,
		Documents:        f.Documents,
		Fields:           fields,
	}
}

// FormFromService seeds an editable form from an existing record.
func FormFromService(s Service) ServiceForm {
	title := s.Title
	if title == "" {
		title = s.Name
	}
	note := s.Note
	if note == "" {
		note = s.Description
	}
	fee := s.Fee
	if fee == "" {
		fee = s.Price
	}
	fields := s.Fields
	if fields == (FieldSettings{}) {
		fields = DefaultFieldSettings()
	}
	return ServiceForm{
		Title:            title,
		Type:             s.Type,
		Duration:         s.Duration,
		Buffer:           s.Buffer,
		Fee:              fee,
		MaxPersons:       s.MaxPersons,
		ParallelBookings: s.ParallelBookings,
		Note:             note,
		Hide:             NormalizeStatus(s.Status) == StatusDisabled,
		Department:       s.Department,
		Notifications:    s.Notifications,
		Qualifications:   s.Qualifications,
		Documents:        s.Documents,
		Fields:           fields,
	}
}
