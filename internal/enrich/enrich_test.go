package enrich

import (
	"testing"

	"github.com/spec-kit/office-admin-service/internal/domain"
)

func TestDepartmentsAttachLinkedEmployees(t *testing.T) {
	departments := []domain.Department{
		{ID: domain.PersistedID(1), Name: "Bürgeramt"},
		{ID: domain.PersistedID(2), Name: "Standesamt"},
	}
	employees := []domain.Employee{
		{ID: domain.PersistedID(10), FirstName: "Anna", LastName: "Schmidt", Department: domain.PersistedID(1)},
		{ID: domain.PersistedID(11), FirstName: "Jonas", LastName: "Weber", Department: domain.PersistedID(2)},
		{ID: domain.PersistedID(12), FirstName: "Mia", LastName: "Fischer"},
	}

	views := Departments(departments, employees)
	if len(views) != 2 {
		t.Fatalf("views = %d, want 2", len(views))
	}

	first := views[0]
	if len(first.Employees) != 1 || first.Employees[0].FullName() != "Anna Schmidt" {
		t.Fatalf("linked employees wrong: %+v", first.Employees)
	}
	if len(first.AllEmployees) != 3 {
		t.Fatalf("roster size = %d, want 3", len(first.AllEmployees))
	}
}

func TestEnrichmentNeverMutatesBaseCollections(t *testing.T) {
	departments := []domain.Department{{ID: domain.PersistedID(1), Name: "Bürgeramt"}}
	employees := []domain.Employee{
		{ID: domain.PersistedID(10), FirstName: "Anna", Department: domain.PersistedID(1)},
	}

	_ = Departments(departments, employees)

	if departments[0].Employees != nil {
		t.Fatal("enrichment leaked into the base department collection")
	}
}

func TestDepartmentNameResolution(t *testing.T) {
	departments := []domain.Department{{ID: domain.PersistedID(1), Name: "Bürgeramt"}}

	tests := []struct {
		name string
		ref  domain.DepartmentRef
		want string
	}{
		{name: "embedded name wins", ref: domain.RefEmbedded(domain.PersistedID(1), "Altname"), want: "Altname"},
		{name: "bare id resolves via collection", ref: domain.RefByID(domain.PersistedID(1)), want: "Bürgeramt"},
		{name: "unknown id falls back to placeholder", ref: domain.RefByID(domain.PersistedID(9)), want: "Abteilung 9"},
		{name: "missing reference", ref: domain.DepartmentRef{}, want: "-"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DepartmentName(tc.ref, departments); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestServiceRows(t *testing.T) {
	departments := []domain.Department{{ID: domain.PersistedID(1), Name: "Bürgeramt"}}
	services := []domain.Service{
		{ID: domain.PersistedID(20), Name: "Ummeldung", Status: "aktiv", Department: domain.RefByID(domain.PersistedID(1))},
		{ID: domain.PersistedID(21), Name: "Anmeldung", Status: "entwurf"},
	}

	rows := ServiceRows(services, departments)
	if rows[0].DepartmentName != "Bürgeramt" {
		t.Fatalf("department name = %q", rows[0].DepartmentName)
	}
	if rows[0].StatusDisplay.Label != "Aktiv" {
		t.Fatalf("label = %q", rows[0].StatusDisplay.Label)
	}
	if rows[1].DepartmentName != "-" {
		t.Fatalf("unlinked service department = %q, want -", rows[1].DepartmentName)
	}
	if rows[1].StatusDisplay.Type != domain.StatusDraft {
		t.Fatalf("status type = %v, want draft", rows[1].StatusDisplay.Type)
	}
}

func TestEmployeeRows(t *testing.T) {
	departments := []domain.Department{{ID: domain.PersistedID(1), Name: "Bürgeramt"}}
	employees := []domain.Employee{
		{ID: domain.PersistedID(10), FirstName: "Anna", LastName: "Schmidt", Department: domain.PersistedID(1), Status: "inaktiv"},
	}

	rows := EmployeeRows(employees, departments)
	if rows[0].DepartmentName != "Bürgeramt" {
		t.Fatalf("department name = %q", rows[0].DepartmentName)
	}
	if rows[0].StatusDisplay.Label != "Inaktiv" {
		t.Fatalf("label = %q", rows[0].StatusDisplay.Label)
	}
}
