package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/office-admin-service/internal/session"
	apperrors "github.com/spec-kit/office-admin-service/pkg/util/errorutil"
)

const sessionKey = "auth_session"

// AuthMiddleware validates bearer tokens and resolves the live session.
type AuthMiddleware struct {
	tokens   *TokenManager
	sessions *session.Manager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, sessions *session.Manager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, sessions: sessions}
}

// Handle enforces authentication for protected routes. A session missing
// from memory is revived from the cached upstream token when possible; its
// collections then require a fresh bulk load.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	sess, ok := m.sessions.Get(claims.SessionID)
	if !ok {
		token := m.sessions.CachedToken(c.Context(), claims.SessionID)
		if token == "" {
			return apperrors.NewUnauthorized("session expired")
		}
		sess = m.sessions.Revive(claims.SessionID, claims.Username, token)
	}

	c.Locals(sessionKey, sess)
	return c.Next()
}

// SessionFromCtx extracts the session stored by the middleware.
func SessionFromCtx(c *fiber.Ctx) (*session.Session, error) {
	sess, ok := c.Locals(sessionKey).(*session.Session)
	if !ok || sess == nil {
		return nil, apperrors.NewUnauthorized("no active session")
	}
	return sess, nil
}
