package reconcile

import (
	"testing"

	"github.com/spec-kit/office-admin-service/internal/domain"
)

func dept(id int64, name string) domain.Department {
	return domain.Department{ID: domain.PersistedID(id), Name: name}
}

func draftDept(id, name string) domain.Department {
	return domain.Department{ID: domain.DraftID(id), Name: name}
}

func names(list []domain.Department) []string {
	out := make([]string, len(list))
	for i, d := range list {
		out[i] = d.Name
	}
	return out
}

func TestResolvePrecedence(t *testing.T) {
	list := []domain.Department{dept(1, "Alpha"), dept(5, "Beta")}
	ident := Departments()

	tests := []struct {
		name      string
		candidate domain.Department
		index     *int
		wantKind  MatchKind
		wantIndex int
	}{
		{
			name:      "index wins over id and name",
			candidate: dept(1, "Alpha"),
			index:     intPtr(1),
			wantKind:  ByIndex,
			wantIndex: 1,
		},
		{
			name:      "id wins over conflicting name",
			candidate: dept(5, "Alpha"),
			wantKind:  ByID,
			wantIndex: 1,
		},
		{
			name:      "natural key as fallback",
			candidate: domain.Department{Name: "beta"},
			wantKind:  ByNaturalKey,
			wantIndex: 1,
		},
		{
			name:      "natural key trims and ignores case",
			candidate: domain.Department{Name: "  ALPHA "},
			wantKind:  ByNaturalKey,
			wantIndex: 0,
		},
		{
			name:      "no match",
			candidate: dept(9, "Gamma"),
			wantKind:  NoMatch,
		},
		{
			name:      "out of range index falls through to id",
			candidate: dept(5, "Beta"),
			index:     intPtr(7),
			wantKind:  ByID,
			wantIndex: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ident.Resolve(list, tc.candidate, tc.index)
			if got.Kind != tc.wantKind {
				t.Fatalf("kind = %v, want %v", got.Kind, tc.wantKind)
			}
			if got.Kind != NoMatch && got.Index != tc.wantIndex {
				t.Fatalf("index = %d, want %d", got.Index, tc.wantIndex)
			}
		})
	}
}

func TestUpsertReplacesInPlace(t *testing.T) {
	list := []domain.Department{dept(1, "Alpha"), dept(2, "Beta"), dept(3, "Gamma")}
	ident := Departments()

	updated := dept(2, "Beta Renamed")
	out := ident.Upsert(list, &updated, nil)

	if len(out) != len(list) {
		t.Fatalf("length changed: got %d, want %d", len(out), len(list))
	}
	if out[1].Name != "Beta Renamed" {
		t.Fatalf("row 1 = %q, want %q", out[1].Name, "Beta Renamed")
	}
	if list[1].Name != "Beta" {
		t.Fatalf("input slice mutated: %q", list[1].Name)
	}
}

func TestUpsertAppendsOnNoMatch(t *testing.T) {
	list := []domain.Department{dept(1, "Alpha")}
	ident := Departments()

	fresh := draftDept("local-dept-1700000000001", "Neu")
	out := ident.Upsert(list, &fresh, nil)

	if len(out) != 2 {
		t.Fatalf("length = %d, want 2", len(out))
	}
	if out[1].Name != "Neu" {
		t.Fatalf("appended row = %q, want %q", out[1].Name, "Neu")
	}
}

func TestUpsertIsIdempotent(t *testing.T) {
	list := []domain.Department{dept(1, "Alpha"), dept(2, "Beta")}
	ident := Departments()

	candidate := dept(2, "Beta Renamed")
	once := ident.Upsert(list, &candidate, nil)
	twice := ident.Upsert(once, &candidate, nil)

	if len(once) != len(twice) {
		t.Fatalf("second upsert changed length: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].Name != twice[i].Name {
			t.Fatalf("row %d diverged: %q vs %q", i, once[i].Name, twice[i].Name)
		}
	}
}

func TestUpsertNilCandidateRemovesByIndex(t *testing.T) {
	list := []domain.Department{dept(1, "Alpha"), dept(2, "Beta"), dept(3, "Gamma")}
	ident := Departments()

	out := ident.Upsert(list, nil, intPtr(1))
	want := []string{"Alpha", "Gamma"}
	got := names(out)
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("names = %v, want %v", got, want)
	}

	same := ident.Upsert(list, nil, nil)
	if len(same) != len(list) {
		t.Fatalf("nil index should be a no-op copy, got %d rows", len(same))
	}
}

func TestRemoveByIDs(t *testing.T) {
	list := []domain.Department{
		dept(1, "Alpha"),
		dept(2, "Beta"),
		draftDept("local-dept-1700000000002", "Entwurf"),
	}
	ident := Departments()

	out := ident.RemoveByIDs(list, []domain.ID{
		domain.PersistedID(2),
		domain.DraftID("local-dept-1700000000002"),
	})
	if len(out) != 1 || out[0].Name != "Alpha" {
		t.Fatalf("names = %v, want [Alpha]", names(out))
	}

	unchanged := ident.RemoveByIDs(list, nil)
	if len(unchanged) != len(list) {
		t.Fatalf("empty id list should be a no-op copy, got %d rows", len(unchanged))
	}
	unchanged[0].Name = "mutated"
	if list[0].Name != "Alpha" {
		t.Fatal("no-op copy aliases the input slice")
	}
}

func TestDedupeByKey(t *testing.T) {
	employees := []domain.Employee{
		{ID: domain.PersistedID(10), FirstName: "Anna", LastName: "Schmidt"},
		{ID: domain.PersistedID(10), FirstName: "Anna", LastName: "Schmidt"},
		{FirstName: "Jonas", LastName: "Weber"},
		{FirstName: "Jonas", LastName: "Weber"},
		{},
	}

	out := DedupeByKey(employees, EmployeeDedupeKey)
	if len(out) != 2 {
		t.Fatalf("length = %d, want 2", len(out))
	}
	if out[0].FullName() != "Anna Schmidt" || out[1].FullName() != "Jonas Weber" {
		t.Fatalf("unexpected survivors: %q, %q", out[0].FullName(), out[1].FullName())
	}
}

func TestServiceNaturalKeyFallsBackToTitle(t *testing.T) {
	ident := Services()
	list := []domain.Service{{Title: "Ummeldung"}}

	match := ident.Resolve(list, domain.Service{Title: "ummeldung"}, nil)
	if match.Kind != ByNaturalKey || match.Index != 0 {
		t.Fatalf("match = %+v, want natural key at 0", match)
	}
}

func intPtr(n int) *int { return &n }
