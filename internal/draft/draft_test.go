package draft

import (
	"testing"

	"github.com/spec-kit/office-admin-service/internal/domain"
)

func TestBlankEditorLifecycle(t *testing.T) {
	ed := NewBlank(domain.KindDepartment, domain.Department{Name: "Neu"})

	if !ed.IsNew() {
		t.Fatal("blank editor must report new")
	}
	if ed.State() != StateEditing {
		t.Fatalf("state = %v, want editing", ed.State())
	}

	if err := ed.Apply(func(d *domain.Department) { d.Name = "Bürgeramt" }); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if ed.Value().Name != "Bürgeramt" {
		t.Fatalf("value = %q", ed.Value().Name)
	}
}

func TestSaveTransitions(t *testing.T) {
	ed := NewBlank(domain.KindDepartment, domain.Department{})
	final := domain.Department{Name: "Bürgeramt"}

	if err := ed.BeginSave(final); err != nil {
		t.Fatalf("begin save: %v", err)
	}
	if ed.State() != StateSaving {
		t.Fatalf("state = %v, want saving", ed.State())
	}

	if err := ed.BeginSave(final); err == nil {
		t.Fatal("second save while pending must be rejected")
	}
	if err := ed.Apply(func(*domain.Department) {}); err == nil {
		t.Fatal("edits while saving must be rejected")
	}

	ed.CompleteSave(domain.Department{ID: domain.PersistedID(7), Name: "Bürgeramt"}, 3)
	if ed.State() != StateSaved {
		t.Fatalf("state = %v, want saved", ed.State())
	}
	if idx := ed.Index(); idx == nil || *idx != 3 {
		t.Fatalf("settled index = %v, want 3", idx)
	}
	if ed.IsNew() {
		t.Fatal("editor with settled index must not report new")
	}
}

func TestFailedSaveKeepsData(t *testing.T) {
	ed := NewBlank(domain.KindService, domain.Service{})
	final := domain.Service{Title: "Ummeldung"}

	if err := ed.BeginSave(final); err != nil {
		t.Fatalf("begin save: %v", err)
	}
	ed.FailSave("server rejected the request")

	if ed.State() != StateSaveFailed {
		t.Fatalf("state = %v, want save_failed", ed.State())
	}
	if ed.Err() == "" {
		t.Fatal("error message lost")
	}
	if ed.Value().Title != "Ummeldung" {
		t.Fatal("entered data lost after failed save")
	}

	// the user can correct and resubmit
	if err := ed.Apply(func(s *domain.Service) { s.Title = "Anmeldung" }); err != nil {
		t.Fatalf("apply after failure: %v", err)
	}
	if ed.State() != StateEditing {
		t.Fatalf("state = %v, want editing", ed.State())
	}
	if ed.Err() != "" {
		t.Fatal("stale error survived a new edit")
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	ed := NewForExisting(domain.KindEmployee, domain.Employee{FirstName: "Anna"}, 0)

	if err := ed.BeginDelete(); err == nil {
		t.Fatal("delete without confirmation must be rejected")
	}
	if err := ed.RequestDelete(); err != nil {
		t.Fatalf("request delete: %v", err)
	}
	if !ed.DeleteRequested() {
		t.Fatal("confirmation not armed")
	}
	if err := ed.BeginDelete(); err != nil {
		t.Fatalf("begin delete: %v", err)
	}
	if ed.State() != StateDeleting {
		t.Fatalf("state = %v, want deleting", ed.State())
	}

	ed.CompleteDelete()
	if ed.State() != StateDeleted {
		t.Fatalf("state = %v, want deleted", ed.State())
	}
	if ed.DeleteRequested() {
		t.Fatal("confirmation must disarm after completion")
	}
}

func TestFailedDeleteDisarms(t *testing.T) {
	ed := NewForExisting(domain.KindEmployee, domain.Employee{FirstName: "Anna"}, 0)

	if err := ed.RequestDelete(); err != nil {
		t.Fatalf("request delete: %v", err)
	}
	if err := ed.BeginDelete(); err != nil {
		t.Fatalf("begin delete: %v", err)
	}
	ed.FailDelete("upstream said no")

	if ed.State() != StateDeleteFailed {
		t.Fatalf("state = %v, want delete_failed", ed.State())
	}
	// a retry needs a fresh confirmation
	if err := ed.BeginDelete(); err == nil {
		t.Fatal("retry without re-confirmation must be rejected")
	}
}
