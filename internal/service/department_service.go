package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/office-admin-service/internal/domain"
	"github.com/spec-kit/office-admin-service/internal/enrich"
	"github.com/spec-kit/office-admin-service/internal/events"
	"github.com/spec-kit/office-admin-service/internal/reconcile"
	"github.com/spec-kit/office-admin-service/internal/session"
	apperrors "github.com/spec-kit/office-admin-service/pkg/util/errorutil"
)

// DepartmentAPI is the slice of the upstream client departments need.
type DepartmentAPI interface {
	CreateDepartment(ctx context.Context, token string, dept domain.Department) (*domain.Department, error)
	UpdateDepartment(ctx context.Context, token string, id int64, dept domain.Department) (*domain.Department, error)
	DeleteDepartment(ctx context.Context, token string, id int64) error
}

// DepartmentService manages the department collection and its drafts.
type DepartmentService struct {
	dir directory[domain.Department]
}

// NewDepartmentService builds the service.
func NewDepartmentService(api DepartmentAPI, dispatcher events.Dispatcher, logger *zap.Logger) *DepartmentService {
	return &DepartmentService{dir: directory[domain.Department]{
		kind:     domain.KindDepartment,
		identity: reconcile.Departments(),
		idOf:     func(d domain.Department) domain.ID { return d.ID },
		nameOf:   func(d domain.Department) string { return d.Name },
		statusOf: func(d domain.Department) string { return d.Status },
		rebuild: func(d domain.Department) domain.Department {
			return domain.FormFromDepartment(d).Build(d.ID)
		},
		create:     api.CreateDepartment,
		update:     api.UpdateDepartment,
		remove:     api.DeleteDepartment,
		snapshot:   (*session.Session).Departments,
		apply:      (*session.Session).ApplyDepartments,
		putEditor:  (*session.Session).PutDepartmentEditor,
		getEditor:  (*session.Session).DepartmentEditor,
		dropEditor: (*session.Session).DropDepartmentEditor,
		dispatcher: dispatcher,
		logger:     logger.With(zap.String("component", "department_service")),
	}}
}

// OverviewFilter narrows overview rows.
type OverviewFilter struct {
	Search     string
	Status     string
	Department string
}

// Overview returns the enriched department list, filtered. Enrichment is
// recomputed from the base collections on every call.
func (s *DepartmentService) Overview(sess *session.Session, filter OverviewFilter) []enrich.DepartmentView {
	views := enrich.Departments(sess.Departments(), sess.Employees())
	if filter.Search == "" && filter.Status == "" {
		return views
	}
	out := make([]enrich.DepartmentView, 0, len(views))
	for _, v := range views {
		if !matchesSearch(filter.Search, v.Name) {
			continue
		}
		if !matchesStatus(filter.Status, v.Status) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// OpenEditor spawns a draft. A nil index starts a blank department; the
// blank template carries the full roster for the person picker via the
// overview payload, never via the persisted object.
func (s *DepartmentService) OpenEditor(sess *session.Session, index *int) (DraftView[domain.Department], error) {
	blank := domain.Department{Status: string(domain.StatusActive)}
	return s.dir.openEditor(sess, index, blank)
}

// UpdateDraft applies form edits to an open draft. The employee list is
// deduped against itself so a merged picker selection cannot introduce
// duplicates.
func (s *DepartmentService) UpdateDraft(sess *session.Session, editorID string, form domain.DepartmentForm) (DraftView[domain.Department], error) {
	ed, err := s.dir.editor(sess, editorID)
	if err != nil {
		return DraftView[domain.Department]{}, err
	}
	form.Employees = reconcile.DedupeByKey(form.Employees, reconcile.EmployeeDedupeKey)
	if err := ed.Apply(func(d *domain.Department) {
		id := d.ID
		*d = form.Build(id)
		d.ID = id
	}); err != nil {
		return view(editorID, ed), err
	}
	return view(editorID, ed), nil
}

// Save persists the draft and reconciles, keeping the editor open.
func (s *DepartmentService) Save(ctx context.Context, sess *session.Session, editorID string) (DraftView[domain.Department], []domain.Department, error) {
	if err := s.validate(sess, editorID); err != nil {
		return DraftView[domain.Department]{}, nil, err
	}
	return s.dir.save(ctx, sess, editorID)
}

// SaveAndClose persists the draft, reconciles and discards the editor.
func (s *DepartmentService) SaveAndClose(ctx context.Context, sess *session.Session, editorID string) ([]domain.Department, error) {
	_, list, err := s.Save(ctx, sess, editorID)
	if err != nil {
		return nil, err
	}
	s.dir.dropEditor(sess, editorID)
	return list, nil
}

// RequestDelete arms the confirmation step.
func (s *DepartmentService) RequestDelete(sess *session.Session, editorID string) error {
	ed, err := s.dir.editor(sess, editorID)
	if err != nil {
		return err
	}
	return ed.RequestDelete()
}

// ConfirmDelete performs the armed delete.
func (s *DepartmentService) ConfirmDelete(ctx context.Context, sess *session.Session, editorID string) ([]domain.Department, error) {
	return s.dir.confirmDelete(ctx, sess, editorID)
}

// Cancel discards the draft without side effects.
func (s *DepartmentService) Cancel(sess *session.Session, editorID string) {
	s.dir.dropEditor(sess, editorID)
}

// BulkDelete removes the selected departments.
func (s *DepartmentService) BulkDelete(ctx context.Context, sess *session.Session, ids []domain.ID) ([]domain.Department, error) {
	return s.dir.bulkDelete(ctx, sess, ids)
}

func (s *DepartmentService) validate(sess *session.Session, editorID string) error {
	ed, err := s.dir.editor(sess, editorID)
	if err != nil {
		return err
	}
	if strings.TrimSpace(ed.Value().Name) == "" {
		return apperrors.NewValidationError("name is required", nil)
	}
	return nil
}

func matchesSearch(term, text string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(term))
}

func matchesStatus(filter, raw string) bool {
	if filter == "" || filter == "all" {
		return true
	}
	return domain.NormalizeStatus(raw) == domain.NormalizeStatus(filter)
}
