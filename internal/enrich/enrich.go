// Package enrich derives read-only composite views by joining the base
// collections on foreign keys. Views are recomputed on every read and are
// never written back to a base collection.
package enrich

import (
	"fmt"

	"github.com/spec-kit/office-admin-service/internal/domain"
)

// DepartmentView is a department with its linked staff attached plus the
// full roster for the editor's person picker.
type DepartmentView struct {
	domain.Department
	AllEmployees []domain.Employee `json:"allEmployees"`
}

// Departments attaches to every department the employees whose foreign key
// points at it, and the complete roster.
func Departments(departments []domain.Department, employees []domain.Employee) []DepartmentView {
	views := make([]DepartmentView, 0, len(departments))
	for _, dept := range departments {
		var linked []domain.Employee
		for _, emp := range employees {
			if emp.Department.Equal(dept.ID) {
				linked = append(linked, emp)
			}
		}
		view := DepartmentView{Department: dept, AllEmployees: employees}
		view.Employees = linked
		views = append(views, view)
	}
	return views
}

// DepartmentName resolves a foreign-key reference to a display name: the
// embedded name when present, else a lookup in the department collection,
// else a placeholder carrying the raw id.
func DepartmentName(ref domain.DepartmentRef, departments []domain.Department) string {
	if ref.IsZero() {
		return "-"
	}
	if ref.Embedded() && ref.Name != "" {
		return ref.Name
	}
	return DepartmentNameByID(ref.ID, departments)
}

// DepartmentNameByID looks a department up by id, falling back to a
// placeholder with the raw id when the department is unknown.
func DepartmentNameByID(id domain.ID, departments []domain.Department) string {
	if id.IsZero() {
		return "-"
	}
	for _, dept := range departments {
		if dept.ID.Equal(id) {
			return dept.Name
		}
	}
	return fmt.Sprintf("Abteilung %s", id)
}

// ServiceRow is an overview row for a service.
type ServiceRow struct {
	domain.Service
	DepartmentName string               `json:"department_name"`
	StatusDisplay  domain.StatusDisplay `json:"status_display"`
}

// ServiceRows builds overview rows with resolved department names and
// normalized status displays.
func ServiceRows(services []domain.Service, departments []domain.Department) []ServiceRow {
	rows := make([]ServiceRow, 0, len(services))
	for _, svc := range services {
		rows = append(rows, ServiceRow{
			Service:        svc,
			DepartmentName: DepartmentName(svc.Department, departments),
			StatusDisplay:  domain.DisplayStatus(svc.Status),
		})
	}
	return rows
}

// EmployeeRow is an overview row for a staff member.
type EmployeeRow struct {
	domain.Employee
	DepartmentName string               `json:"department_name"`
	StatusDisplay  domain.StatusDisplay `json:"status_display"`
}

// EmployeeRows builds overview rows for the staff collection.
func EmployeeRows(employees []domain.Employee, departments []domain.Department) []EmployeeRow {
	rows := make([]EmployeeRow, 0, len(employees))
	for _, emp := range employees {
		rows = append(rows, EmployeeRow{
			Employee:       emp,
			DepartmentName: DepartmentNameByID(emp.Department, departments),
			StatusDisplay:  domain.DisplayStatus(emp.Status),
		})
	}
	return rows
}
