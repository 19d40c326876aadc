package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/office-admin-service/internal/domain"
	"github.com/spec-kit/office-admin-service/internal/enrich"
	"github.com/spec-kit/office-admin-service/internal/events"
	"github.com/spec-kit/office-admin-service/internal/reconcile"
	"github.com/spec-kit/office-admin-service/internal/session"
	apperrors "github.com/spec-kit/office-admin-service/pkg/util/errorutil"
)

// EmployeeAPI is the slice of the upstream client the staff directory needs.
type EmployeeAPI interface {
	CreateEmployee(ctx context.Context, token string, emp domain.Employee) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, token string, id int64, emp domain.Employee) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, token string, id int64) error
}

// StaffService manages the sachbearbeiter collection and its drafts.
type StaffService struct {
	dir directory[domain.Employee]
}

// NewStaffService builds the service.
func NewStaffService(api EmployeeAPI, dispatcher events.Dispatcher, logger *zap.Logger) *StaffService {
	return &StaffService{dir: directory[domain.Employee]{
		kind:     domain.KindEmployee,
		identity: reconcile.Employees(),
		idOf:     func(e domain.Employee) domain.ID { return e.ID },
		nameOf:   domain.Employee.FullName,
		statusOf: func(e domain.Employee) string { return e.Status },
		rebuild: func(e domain.Employee) domain.Employee {
			return domain.FormFromEmployee(e).Build(e.ID)
		},
		create:     api.CreateEmployee,
		update:     api.UpdateEmployee,
		remove:     api.DeleteEmployee,
		snapshot:   (*session.Session).Employees,
		apply:      (*session.Session).ApplyEmployees,
		putEditor:  (*session.Session).PutStaffEditor,
		getEditor:  (*session.Session).StaffEditor,
		dropEditor: (*session.Session).DropStaffEditor,
		dispatcher: dispatcher,
		logger:     logger.With(zap.String("component", "staff_service")),
	}}
}

// Overview returns staff rows with resolved department names, filtered by
// search term, status and department.
func (s *StaffService) Overview(sess *session.Session, filter OverviewFilter) []enrich.EmployeeRow {
	rows := enrich.EmployeeRows(sess.Employees(), sess.Departments())
	if filter.Search == "" && filter.Status == "" && filter.Department == "" {
		return rows
	}
	out := make([]enrich.EmployeeRow, 0, len(rows))
	for _, row := range rows {
		if !matchesSearch(filter.Search, row.FullName()) {
			continue
		}
		if !matchesStatus(filter.Status, row.Status) {
			continue
		}
		if !matchesDepartmentID(filter.Department, row.Department) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// OpenEditor spawns a draft.
func (s *StaffService) OpenEditor(sess *session.Session, index *int) (DraftView[domain.Employee], error) {
	blank := domain.Employee{Status: string(domain.StatusActive)}
	return s.dir.openEditor(sess, index, blank)
}

// UpdateDraft applies form edits to an open draft.
func (s *StaffService) UpdateDraft(sess *session.Session, editorID string, form domain.EmployeeForm) (DraftView[domain.Employee], error) {
	ed, err := s.dir.editor(sess, editorID)
	if err != nil {
		return DraftView[domain.Employee]{}, err
	}
	if err := ed.Apply(func(emp *domain.Employee) {
		id := emp.ID
		*emp = form.Build(id)
		emp.ID = id
	}); err != nil {
		return view(editorID, ed), err
	}
	return view(editorID, ed), nil
}

// Save persists the draft and reconciles, keeping the editor open.
func (s *StaffService) Save(ctx context.Context, sess *session.Session, editorID string) (DraftView[domain.Employee], []domain.Employee, error) {
	if err := s.validate(sess, editorID); err != nil {
		return DraftView[domain.Employee]{}, nil, err
	}
	return s.dir.save(ctx, sess, editorID)
}

// SaveAndClose persists the draft, reconciles and discards the editor.
func (s *StaffService) SaveAndClose(ctx context.Context, sess *session.Session, editorID string) ([]domain.Employee, error) {
	_, list, err := s.Save(ctx, sess, editorID)
	if err != nil {
		return nil, err
	}
	s.dir.dropEditor(sess, editorID)
	return list, nil
}

// RequestDelete arms the confirmation step.
func (s *StaffService) RequestDelete(sess *session.Session, editorID string) error {
	ed, err := s.dir.editor(sess, editorID)
	if err != nil {
		return err
	}
	return ed.RequestDelete()
}

// ConfirmDelete performs the armed delete.
func (s *StaffService) ConfirmDelete(ctx context.Context, sess *session.Session, editorID string) ([]domain.Employee, error) {
	return s.dir.confirmDelete(ctx, sess, editorID)
}

// Cancel discards the draft without side effects.
func (s *StaffService) Cancel(sess *session.Session, editorID string) {
	s.dir.dropEditor(sess, editorID)
}

// BulkDelete removes the selected staff members.
func (s *StaffService) BulkDelete(ctx context.Context, sess *session.Session, ids []domain.ID) ([]domain.Employee, error) {
	return s.dir.bulkDelete(ctx, sess, ids)
}

func (s *StaffService) validate(sess *session.Session, editorID string) error {
	ed, err := s.dir.editor(sess, editorID)
	if err != nil {
		return err
	}
	if ed.Value().FullName() == "" {
		return apperrors.NewValidationError("first or last name is required", nil)
	}
	return nil
}

func matchesDepartmentID(filter string, id domain.ID) bool {
	if filter == "" || filter == "all" {
		return true
	}
	return id.Key() == filter
}
