package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/office-admin-service/internal/auth"
	"github.com/spec-kit/office-admin-service/internal/domain"
	"github.com/spec-kit/office-admin-service/internal/session"
	apperrors "github.com/spec-kit/office-admin-service/pkg/util/errorutil"
)

// AuthAPI is the slice of the upstream client the login flow needs.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (string, error)
	ListDepartments(ctx context.Context, token string) ([]domain.Department, error)
	ListEmployees(ctx context.Context, token string) ([]domain.Employee, error)
	ListServices(ctx context.Context, token string) ([]domain.Service, error)
}

// AuthService runs the login and logout flows: authenticate upstream, bulk
// fetch the three base collections, seed the session and issue a dashboard JWT.
type AuthService struct {
	api      AuthAPI
	sessions *session.Manager
	tokens   *auth.TokenManager
	logger   *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(api AuthAPI, sessions *session.Manager, tokens *auth.TokenManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		api:      api,
		sessions: sessions,
		tokens:   tokens,
		logger:   logger.With(zap.String("component", "auth_service")),
	}
}

// LoginResult is what a successful login hands back to the handler.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Session   *session.Session
}

// Login authenticates and builds the session. A failed bulk fetch for one
// collection does not abort the login; that collection starts empty.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperrors.NewValidationError("username and password are required", nil)
	}

	upstreamToken, err := s.api.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	departments, err := s.api.ListDepartments(ctx, upstreamToken)
	if err != nil {
		s.logger.Warn("department fetch failed on login", zap.Error(err))
	}
	employees, err := s.api.ListEmployees(ctx, upstreamToken)
	if err != nil {
		s.logger.Warn("employee fetch failed on login", zap.Error(err))
	}
	services, err := s.api.ListServices(ctx, upstreamToken)
	if err != nil {
		s.logger.Warn("service fetch failed on login", zap.Error(err))
	}

	sess := s.sessions.Create(ctx, username, upstreamToken)
	sess.SeedCollections(departments, employees, services)

	token, expiresAt, err := s.tokens.GenerateToken(sess.ID, username)
	if err != nil {
		s.sessions.Remove(ctx, sess.ID)
		return nil, apperrors.NewInternalError(err)
	}

	s.logger.Info("login",
		zap.String("username", username),
		zap.Int("departments", len(departments)),
		zap.Int("employees", len(employees)),
		zap.Int("services", len(services)))
	return &LoginResult{Token: token, ExpiresAt: expiresAt, Session: sess}, nil
}

// Refresh re-runs the bulk fetches and replaces the session collections.
func (s *AuthService) Refresh(ctx context.Context, sess *session.Session) error {
	token := sess.Token()
	departments, err := s.api.ListDepartments(ctx, token)
	if err != nil {
		return err
	}
	employees, err := s.api.ListEmployees(ctx, token)
	if err != nil {
		return err
	}
	services, err := s.api.ListServices(ctx, token)
	if err != nil {
		return err
	}
	sess.SeedCollections(departments, employees, services)
	return nil
}

// Logout tears the session down: collections and drafts are cleared
// atomically and the cached upstream token is dropped.
func (s *AuthService) Logout(ctx context.Context, sess *session.Session) {
	s.logger.Info("logout", zap.String("username", sess.Username))
	s.sessions.Remove(ctx, sess.ID)
}
