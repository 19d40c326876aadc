// Package session owns the per-login state of the dashboard: the three base
// collections, the upstream session token, and the open draft editors.
// Collections are populated by the login bulk fetches and cleared atomically
// on logout; all mutations run under the session lock in the order their
// triggering calls resolve.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/office-admin-service/internal/domain"
	"github.com/spec-kit/office-admin-service/internal/draft"
)

// Session is the explicit session context for one authenticated staff login.
type Session struct {
	ID        string
	Username  string
	CreatedAt time.Time

	mu          sync.RWMutex
	token       string
	departments []domain.Department
	employees   []domain.Employee
	services    []domain.Service

	deptEditors  map[string]*draft.Editor[domain.Department]
	svcEditors   map[string]*draft.Editor[domain.Service]
	staffEditors map[string]*draft.Editor[domain.Employee]
}

// New creates an empty session for the given user.
func New(username, upstreamToken string) *Session {
	return &Session{
		ID:           uuid.NewString(),
		Username:     username,
		CreatedAt:    time.Now(),
		token:        upstreamToken,
		deptEditors:  make(map[string]*draft.Editor[domain.Department]),
		svcEditors:   make(map[string]*draft.Editor[domain.Service]),
		staffEditors: make(map[string]*draft.Editor[domain.Employee]),
	}
}

// Token returns the upstream session token.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SeedCollections installs the login bulk-fetch results. Nil lists become
// empty collections.
func (s *Session) SeedCollections(departments []domain.Department, employees []domain.Employee, services []domain.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.departments = append([]domain.Department(nil), departments...)
	s.employees = append([]domain.Employee(nil), employees...)
	s.services = append([]domain.Service(nil), services...)
}

// Reset clears all collections and editors in one step, used on logout.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.departments = nil
	s.employees = nil
	s.services = nil
	s.deptEditors = make(map[string]*draft.Editor[domain.Department])
	s.svcEditors = make(map[string]*draft.Editor[domain.Service])
	s.staffEditors = make(map[string]*draft.Editor[domain.Employee])
}

// Departments returns a snapshot copy of the department collection.
func (s *Session) Departments() []domain.Department {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Department(nil), s.departments...)
}

// Employees returns a snapshot copy of the staff collection.
func (s *Session) Employees() []domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Employee(nil), s.employees...)
}

// Services returns a snapshot copy of the service collection.
func (s *Session) Services() []domain.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Service(nil), s.services...)
}

// ApplyDepartments replaces the department collection with the result of
// the reconciliation function, run under the session lock.
func (s *Session) ApplyDepartments(apply func([]domain.Department) []domain.Department) []domain.Department {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.departments = apply(s.departments)
	return append([]domain.Department(nil), s.departments...)
}

// ApplyEmployees replaces the staff collection via the reconciliation function.
func (s *Session) ApplyEmployees(apply func([]domain.Employee) []domain.Employee) []domain.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees = apply(s.employees)
	return append([]domain.Employee(nil), s.employees...)
}

// ApplyServices replaces the service collection via the reconciliation function.
func (s *Session) ApplyServices(apply func([]domain.Service) []domain.Service) []domain.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services = apply(s.services)
	return append([]domain.Service(nil), s.services...)
}

// PutDepartmentEditor registers an open department editor and returns its handle.
func (s *Session) PutDepartmentEditor(ed *draft.Editor[domain.Department]) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deptEditors[id] = ed
	return id
}

// DepartmentEditor looks up an open department editor.
func (s *Session) DepartmentEditor(id string) (*draft.Editor[domain.Department], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ed, ok := s.deptEditors[id]
	return ed, ok
}

// DropDepartmentEditor discards an editor; cancel has no side effects.
func (s *Session) DropDepartmentEditor(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.deptEditors, id)
}

// PutServiceEditor registers an open service editor.
func (s *Session) PutServiceEditor(ed *draft.Editor[domain.Service]) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.svcEditors[id] = ed
	return id
}

// ServiceEditor looks up an open service editor.
func (s *Session) ServiceEditor(id string) (*draft.Editor[domain.Service], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ed, ok := s.svcEditors[id]
	return ed, ok
}

// DropServiceEditor discards an editor.
func (s *Session) DropServiceEditor(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.svcEditors, id)
}

// PutStaffEditor registers an open staff editor.
func (s *Session) PutStaffEditor(ed *draft.Editor[domain.Employee]) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staffEditors[id] = ed
	return id
}

// StaffEditor looks up an open staff editor.
func (s *Session) StaffEditor(id string) (*draft.Editor[domain.Employee], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ed, ok := s.staffEditors[id]
	return ed, ok
}

// DropStaffEditor discards an editor.
func (s *Session) DropStaffEditor(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.staffEditors, id)
}
