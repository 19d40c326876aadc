package reconcile

import "github.com/spec-kit/office-admin-service/internal/domain"

// Departments is the identity configuration for the department collection.
func Departments() Identity[domain.Department] {
	return Identity[domain.Department]{
		ID:         func(d domain.Department) domain.ID { return d.ID },
		NaturalKey: func(d domain.Department) string { return d.Name },
	}
}

// Services is the identity configuration for the service collection.
// The natural key falls back from name to title since upstream responses
// use either.
func Services() Identity[domain.Service] {
	return Identity[domain.Service]{
		ID: func(s domain.Service) domain.ID { return s.ID },
		NaturalKey: func(s domain.Service) string {
			if s.Name != "" {
				return s.Name
			}
			return s.Title
		},
	}
}

// Employees is the identity configuration for the staff collection, keyed
// by the composed full name when no id is available.
func Employees() Identity[domain.Employee] {
	return Identity[domain.Employee]{
		ID:         func(e domain.Employee) domain.ID { return e.ID },
		NaturalKey: func(e domain.Employee) string { return e.FullName() },
	}
}

// EmployeeDedupeKey is used when merging a department's embedded employee
// list with the global roster: id when present, else the full name.
func EmployeeDedupeKey(e domain.Employee) string {
	if key := e.ID.Key(); key != "" {
		return key
	}
	return e.FullName()
}
