package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/office-admin-service/internal/auth"
	"github.com/spec-kit/office-admin-service/internal/domain"
	"github.com/spec-kit/office-admin-service/internal/session"
)

type fakeAuthAPI struct {
	token        string
	loginErr     error
	departments  []domain.Department
	employees    []domain.Employee
	services     []domain.Service
	employeesErr error
}

func (f *fakeAuthAPI) Login(_ context.Context, _, _ string) (string, error) {
	return f.token, f.loginErr
}

func (f *fakeAuthAPI) ListDepartments(_ context.Context, _ string) ([]domain.Department, error) {
	return f.departments, nil
}

func (f *fakeAuthAPI) ListEmployees(_ context.Context, _ string) ([]domain.Employee, error) {
	return f.employees, f.employeesErr
}

func (f *fakeAuthAPI) ListServices(_ context.Context, _ string) ([]domain.Service, error) {
	return f.services, nil
}

func newAuthFixture(api AuthAPI) (*AuthService, *session.Manager) {
	logger := zap.NewNop()
	sessions := session.NewManager(nil, 0, logger)
	tokens := auth.NewTokenManager("test-secret", 0)
	return NewAuthService(api, sessions, tokens, logger), sessions
}

func TestLoginSeedsSessionAndIssuesToken(t *testing.T) {
	api := &fakeAuthAPI{
		token:       "upstream-token",
		departments: []domain.Department{{ID: domain.PersistedID(1), Name: "Bürgeramt"}},
		employees:   []domain.Employee{{ID: domain.PersistedID(10), FirstName: "Anna"}},
		services:    []domain.Service{{ID: domain.PersistedID(20), Name: "Ummeldung"}},
	}
	svc, sessions := newAuthFixture(api)

	result, err := svc.Login(context.Background(), "admin", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" {
		t.Fatal("no dashboard token issued")
	}

	sess, ok := sessions.Get(result.Session.ID)
	if !ok {
		t.Fatal("session not registered")
	}
	if sess.Token() != "upstream-token" {
		t.Fatalf("upstream token = %q", sess.Token())
	}
	if len(sess.Departments()) != 1 || len(sess.Employees()) != 1 || len(sess.Services()) != 1 {
		t.Fatal("collections not seeded")
	}
}

func TestLoginToleratesPartialFetchFailure(t *testing.T) {
	api := &fakeAuthAPI{
		token:        "upstream-token",
		departments:  []domain.Department{{ID: domain.PersistedID(1), Name: "Bürgeramt"}},
		employeesErr: errBoom{},
	}
	svc, _ := newAuthFixture(api)

	result, err := svc.Login(context.Background(), "admin", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if len(result.Session.Departments()) != 1 {
		t.Fatal("department seed lost")
	}
	if len(result.Session.Employees()) != 0 {
		t.Fatal("failed fetch should leave the collection empty")
	}
}

func TestLoginValidatesCredentialsPresence(t *testing.T) {
	svc, _ := newAuthFixture(&fakeAuthAPI{})

	if _, err := svc.Login(context.Background(), "", "secret"); err == nil {
		t.Fatal("empty username must fail")
	}
	if _, err := svc.Login(context.Background(), "admin", ""); err == nil {
		t.Fatal("empty password must fail")
	}
}

func TestLoginPropagatesUpstreamRejection(t *testing.T) {
	svc, _ := newAuthFixture(&fakeAuthAPI{loginErr: errBoom{}})

	if _, err := svc.Login(context.Background(), "admin", "wrong"); err == nil {
		t.Fatal("upstream rejection must surface")
	}
}

func TestLogoutResetsSession(t *testing.T) {
	api := &fakeAuthAPI{
		token:       "upstream-token",
		departments: []domain.Department{{ID: domain.PersistedID(1), Name: "Bürgeramt"}},
	}
	svc, sessions := newAuthFixture(api)

	result, err := svc.Login(context.Background(), "admin", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	svc.Logout(context.Background(), result.Session)

	if _, ok := sessions.Get(result.Session.ID); ok {
		t.Fatal("session survived logout")
	}
	if len(result.Session.Departments()) != 0 {
		t.Fatal("collections survived logout")
	}
	if result.Session.Token() != "" {
		t.Fatal("upstream token survived logout")
	}
}
