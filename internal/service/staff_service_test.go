package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/office-admin-service/internal/domain"
	"github.com/spec-kit/office-admin-service/internal/events"
	"github.com/spec-kit/office-admin-service/internal/session"
)

type fakeEmployeeAPI struct {
	createResp *domain.Employee
}

func (f *fakeEmployeeAPI) CreateEmployee(_ context.Context, _ string, emp domain.Employee) (*domain.Employee, error) {
	return f.createResp, nil
}

func (f *fakeEmployeeAPI) UpdateEmployee(_ context.Context, _ string, _ int64, emp domain.Employee) (*domain.Employee, error) {
	return &emp, nil
}

func (f *fakeEmployeeAPI) DeleteEmployee(_ context.Context, _ string, _ int64) error {
	return nil
}

func newStaffFixture(t *testing.T, api EmployeeAPI, seed []domain.Employee) (*StaffService, *session.Session) {
	t.Helper()
	svc := NewStaffService(api, events.NewInMemoryDispatcher(), zap.NewNop())
	sess := session.New("sachbearbeiter", "token")
	sess.SeedCollections(nil, seed, nil)
	return svc, sess
}

func TestStaffSaveMergesByFullName(t *testing.T) {
	// the collection already holds an id-less record with the same name, as
	// happens when the upstream confirms creates with empty bodies
	seed := []domain.Employee{
		{FirstName: "Anna", LastName: "Schmidt", Status: "draft"},
		{ID: domain.PersistedID(11), FirstName: "Jonas", LastName: "Weber"},
	}
	svc, sess := newStaffFixture(t, &fakeEmployeeAPI{}, seed)

	view, _ := svc.OpenEditor(sess, nil)
	_, _ = svc.UpdateDraft(sess, view.EditorID, domain.EmployeeForm{
		FirstName: "Anna", LastName: "Schmidt", Email: "anna@stadt.de",
	})

	_, list, err := svc.Save(context.Background(), sess, view.EditorID)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("name collision must replace, not append: %d rows", len(list))
	}
	if list[0].Email != "anna@stadt.de" {
		t.Fatalf("row not replaced: %+v", list[0])
	}
	if list[0].Status != string(domain.StatusActive) {
		t.Fatalf("status = %q, want active once contact data exists", list[0].Status)
	}
}

func TestStaffValidationNeedsAName(t *testing.T) {
	svc, sess := newStaffFixture(t, &fakeEmployeeAPI{}, nil)

	view, _ := svc.OpenEditor(sess, nil)
	_, _ = svc.UpdateDraft(sess, view.EditorID, domain.EmployeeForm{Email: "anon@stadt.de"})

	if _, _, err := svc.Save(context.Background(), sess, view.EditorID); err == nil {
		t.Fatal("save without any name part must fail")
	}
}

func TestStaffSaveAssignsLocalStaffID(t *testing.T) {
	svc, sess := newStaffFixture(t, &fakeEmployeeAPI{}, nil)

	view, _ := svc.OpenEditor(sess, nil)
	_, _ = svc.UpdateDraft(sess, view.EditorID, domain.EmployeeForm{FirstName: "Mia", LastName: "Fischer"})

	_, list, err := svc.Save(context.Background(), sess, view.EditorID)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !list[0].ID.IsDraft() {
		t.Fatalf("id = %v, want draft", list[0].ID)
	}
	if key := list[0].ID.Key(); len(key) < 12 || key[:12] != "local-staff-" {
		t.Fatalf("temp id = %q", key)
	}
}

func TestStaffOverviewDepartmentFilter(t *testing.T) {
	seed := []domain.Employee{
		{ID: domain.PersistedID(10), FirstName: "Anna", LastName: "Schmidt", Department: domain.PersistedID(1)},
		{ID: domain.PersistedID(11), FirstName: "Jonas", LastName: "Weber", Department: domain.PersistedID(2)},
	}
	svc, sess := newStaffFixture(t, &fakeEmployeeAPI{}, seed)

	rows := svc.Overview(sess, OverviewFilter{Department: "2"})
	if len(rows) != 1 || rows[0].FullName() != "Jonas Weber" {
		t.Fatalf("rows = %+v", rows)
	}

	byName := svc.Overview(sess, OverviewFilter{Search: "schmidt"})
	if len(byName) != 1 || byName[0].FullName() != "Anna Schmidt" {
		t.Fatalf("search rows = %+v", byName)
	}
}
