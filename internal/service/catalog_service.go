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

// ServiceAPI is the slice of the upstream client the service catalog needs.
type ServiceAPI interface {
	CreateService(ctx context.Context, token string, svc domain.Service) (*domain.Service, error)
	UpdateService(ctx context.Context, token string, id int64, svc domain.Service) (*domain.Service, error)
	DeleteService(ctx context.Context, token string, id int64) error
}

// CatalogService manages the bookable-service collection and its drafts.
type CatalogService struct {
	dir directory[domain.Service]
}

// NewCatalogService builds the service.
func NewCatalogService(api ServiceAPI, dispatcher events.Dispatcher, logger *zap.Logger) *CatalogService {
	return &CatalogService{dir: directory[domain.Service]{
		kind:     domain.KindService,
		identity: reconcile.Services(),
		idOf:     func(s domain.Service) domain.ID { return s.ID },
		nameOf: func(s domain.Service) string {
			if s.Name != "" {
				return s.Name
			}
			return s.Title
		},
		statusOf: func(s domain.Service) string { return s.Status },
		rebuild: func(s domain.Service) domain.Service {
			return domain.FormFromService(s).Build(s.ID)
		},
		create:     api.CreateService,
		update:     api.UpdateService,
		remove:     api.DeleteService,
		snapshot:   (*session.Session).Services,
		apply:      (*session.Session).ApplyServices,
		putEditor:  (*session.Session).PutServiceEditor,
		getEditor:  (*session.Session).ServiceEditor,
		dropEditor: (*session.Session).DropServiceEditor,
		dispatcher: dispatcher,
		logger:     logger.With(zap.String("component", "catalog_service")),
	}}
}

// Overview returns service rows with resolved department names, filtered by
// search term, status and department.
func (s *CatalogService) Overview(sess *session.Session, filter OverviewFilter) []enrich.ServiceRow {
	rows := enrich.ServiceRows(sess.Services(), sess.Departments())
	if filter.Search == "" && filter.Status == "" && filter.Department == "" {
		return rows
	}
	out := make([]enrich.ServiceRow, 0, len(rows))
	for _, row := range rows {
		name := row.Name
		if name == "" {
			name = row.Title
		}
		if !matchesSearch(filter.Search, name) {
			continue
		}
		if !matchesStatus(filter.Status, row.Status) {
			continue
		}
		if !matchesDepartment(filter.Department, row.Department) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// OpenEditor spawns a draft; the blank template defaults every booking
// field requirement to optional.
func (s *CatalogService) OpenEditor(sess *session.Session, index *int) (DraftView[domain.Service], error) {
	blank := domain.Service{
		Status:   string(domain.StatusActive),
		IsActive: true,
		Fields:   domain.DefaultFieldSettings(),
	}
	return s.dir.openEditor(sess, index, blank)
}

// UpdateDraft applies form edits to an open draft.
func (s *CatalogService) UpdateDraft(sess *session.Session, editorID string, form domain.ServiceForm) (DraftView[domain.Service], error) {
	ed, err := s.dir.editor(sess, editorID)
	if err != nil {
		return DraftView[domain.Service]{}, err
	}
	if err := ed.Apply(func(svc *domain.Service) {
		id := svc.ID
		*svc = form.Build(id)
		svc.ID = id
	}); err != nil {
		return view(editorID, ed), err
	}
	return view(editorID, ed), nil
}

// Save persists the draft and reconciles, keeping the editor open.
func (s *CatalogService) Save(ctx context.Context, sess *session.Session, editorID string) (DraftView[domain.Service], []domain.Service, error) {
	if err := s.validate(sess, editorID); err != nil {
		return DraftView[domain.Service]{}, nil, err
	}
	return s.dir.save(ctx, sess, editorID)
}

// SaveAndClose persists the draft, reconciles and discards the editor.
func (s *CatalogService) SaveAndClose(ctx context.Context, sess *session.Session, editorID string) ([]domain.Service, error) {
	_, list, err := s.Save(ctx, sess, editorID)
	if err != nil {
		return nil, err
	}
	s.dir.dropEditor(sess, editorID)
	return list, nil
}

// RequestDelete arms the confirmation step.
func (s *CatalogService) RequestDelete(sess *session.Session, editorID string) error {
	ed, err := s.dir.editor(sess, editorID)
	if err != nil {
		return err
	}
	return ed.RequestDelete()
}

// ConfirmDelete performs the armed delete.
func (s *CatalogService) ConfirmDelete(ctx context.Context, sess *session.Session, editorID string) ([]domain.Service, error) {
	return s.dir.confirmDelete(ctx, sess, editorID)
}

// Cancel discards the draft without side effects.
func (s *CatalogService) Cancel(sess *session.Session, editorID string) {
	s.dir.dropEditor(sess, editorID)
}

// BulkDelete removes the selected services.
func (s *CatalogService) BulkDelete(ctx context.Context, sess *session.Session, ids []domain.ID) ([]domain.Service, error) {
	return s.dir.bulkDelete(ctx, sess, ids)
}

func (s *CatalogService) validate(sess *session.Session, editorID string) error {
	ed, err := s.dir.editor(sess, editorID)
	if err != nil {
		return err
	}
	value := ed.Value()
	if strings.TrimSpace(value.Title) == "" && strings.TrimSpace(value.Name) == "" {
		return apperrors.NewValidationError("title is required", nil)
	}
	return nil
}

func matchesDepartment(filter string, ref domain.DepartmentRef) bool {
	if filter == "" || filter == "all" {
		return true
	}
	return ref.ID.Key() == filter
}
