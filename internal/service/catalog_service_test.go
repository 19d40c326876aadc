package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/office-admin-service/internal/domain"
	"github.com/spec-kit/office-admin-service/internal/events"
	"github.com/spec-kit/office-admin-service/internal/session"
)

type fakeServiceAPI struct {
	createResp *domain.Service
	deleted    []int64
}

func (f *fakeServiceAPI) CreateService(_ context.Context, _ string, svc domain.Service) (*domain.Service, error) {
	return f.createResp, nil
}

func (f *fakeServiceAPI) UpdateService(_ context.Context, _ string, _ int64, svc domain.Service) (*domain.Service, error) {
	return &svc, nil
}

func (f *fakeServiceAPI) DeleteService(_ context.Context, _ string, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func newCatalogFixture(t *testing.T, api ServiceAPI, seed []domain.Service, depts []domain.Department) (*CatalogService, *session.Session) {
	t.Helper()
	svc := NewCatalogService(api, events.NewInMemoryDispatcher(), zap.NewNop())
	sess := session.New("sachbearbeiter", "token")
	sess.SeedCollections(depts, nil, seed)
	return svc, sess
}

func TestCatalogOverviewFiltersByDepartment(t *testing.T) {
	depts := []domain.Department{
		{ID: domain.PersistedID(1), Name: "Bürgeramt"},
		{ID: domain.PersistedID(2), Name: "Standesamt"},
	}
	services := []domain.Service{
		{ID: domain.PersistedID(20), Name: "Ummeldung", Status: "aktiv", Department: domain.RefByID(domain.PersistedID(1))},
		{ID: domain.PersistedID(21), Name: "Eheschließung", Status: "aktiv", Department: domain.RefByID(domain.PersistedID(2))},
	}
	svc, sess := newCatalogFixture(t, &fakeServiceAPI{}, services, depts)

	rows := svc.Overview(sess, OverviewFilter{Department: "1"})
	if len(rows) != 1 || rows[0].Name != "Ummeldung" {
		t.Fatalf("rows = %+v", rows)
	}
	if rows[0].DepartmentName != "Bürgeramt" {
		t.Fatalf("department name = %q", rows[0].DepartmentName)
	}

	all := svc.Overview(sess, OverviewFilter{Department: "all"})
	if len(all) != 2 {
		t.Fatalf("all filter = %d rows", len(all))
	}
}

func TestCatalogSaveRequiresTitle(t *testing.T) {
	svc, sess := newCatalogFixture(t, &fakeServiceAPI{}, nil, nil)

	view, _ := svc.OpenEditor(sess, nil)
	if _, _, err := svc.Save(context.Background(), sess, view.EditorID); err == nil {
		t.Fatal("save without a title must fail validation")
	}
}

func TestCatalogBlankEditorDefaultsFieldSettings(t *testing.T) {
	svc, sess := newCatalogFixture(t, &fakeServiceAPI{}, nil, nil)

	view, err := svc.OpenEditor(sess, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if view.Value.Fields != domain.DefaultFieldSettings() {
		t.Fatalf("fields = %+v, want optional defaults", view.Value.Fields)
	}
	if !view.Value.IsActive {
		t.Fatal("blank service should start active")
	}
}

func TestServerConfirmationReplacesLocalDraftRow(t *testing.T) {
	api := &fakeServiceAPI{} // first confirm comes back with an empty body
	svc, sess := newCatalogFixture(t, api, nil, nil)

	view, _ := svc.OpenEditor(sess, nil)
	_, _ = svc.UpdateDraft(sess, view.EditorID, domain.ServiceForm{Title: "Ummeldung", Duration: 30})

	_, list, err := svc.Save(context.Background(), sess, view.EditorID)
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	if len(list) != 1 || !list[0].ID.IsDraft() {
		t.Fatalf("local row not kept: %+v", list)
	}

	// a later save gets a real server identity; the temp-id row must be
	// replaced in place, never duplicated
	api.createResp = &domain.Service{ID: domain.PersistedID(99), Name: "Ummeldung", Status: "active"}
	_, list, err = svc.Save(context.Background(), sess, view.EditorID)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("server confirmation appended a duplicate: %d rows", len(list))
	}
	if id, ok := list[0].ID.Persisted(); !ok || id != 99 {
		t.Fatalf("row identity = %v, want 99", list[0].ID)
	}
}

func TestCatalogSaveMirrorsTitleAndDefaults(t *testing.T) {
	api := &fakeServiceAPI{}
	svc, sess := newCatalogFixture(t, api, nil, nil)

	view, _ := svc.OpenEditor(sess, nil)
	_, _ = svc.UpdateDraft(sess, view.EditorID, domain.ServiceForm{Title: "Ummeldung", Duration: 30})

	_, list, err := svc.Save(context.Background(), sess, view.EditorID)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	saved := list[0]
	if saved.Name != "Ummeldung" || saved.Title != "Ummeldung" {
		t.Fatalf("title mirror broken: name=%q title=%q", saved.Name, saved.Title)
	}
	if saved.Fee != "0.00" {
		t.Fatalf("fee default = %q", saved.Fee)
	}
	if saved.Status != string(domain.StatusActive) {
		t.Fatalf("status = %q", saved.Status)
	}
}
