package session

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/office-admin-service/internal/persistence"
)

const tokenKeyPrefix = "office-admin:session-token:"

// Manager tracks live sessions and caches their upstream tokens in Redis so
// a restarted instance can revive a session from its dashboard JWT.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	redis    *persistence.Redis
	tokenTTL time.Duration
	logger   *zap.Logger
}

// NewManager builds the manager.
func NewManager(r *persistence.Redis, tokenTTL time.Duration, logger *zap.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		redis:    r,
		tokenTTL: tokenTTL,
		logger:   logger.With(zap.String("component", "session_manager")),
	}
}

// Create opens a new session and caches its upstream token.
func (m *Manager) Create(ctx context.Context, username, upstreamToken string) *Session {
	sess := New(username, upstreamToken)
	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	if m.redis != nil && upstreamToken != "" {
		if err := m.redis.Client.Set(ctx, tokenKeyPrefix+sess.ID, upstreamToken, m.tokenTTL).Err(); err != nil {
			m.logger.Warn("could not cache upstream token", zap.Error(err))
		}
	}
	return sess
}

// Get returns the live session for an id.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	return sess, ok
}

// CachedToken fetches a previously cached upstream token, used to revive a
// session after a restart. Returns "" when nothing is cached.
func (m *Manager) CachedToken(ctx context.Context, sessionID string) string {
	if m.redis == nil {
		return ""
	}
	token, err := m.redis.Client.Get(ctx, tokenKeyPrefix+sessionID).Result()
	if err != nil {
		if err != redis.Nil {
			m.logger.Warn("token cache lookup failed", zap.Error(err))
		}
		return ""
	}
	return token
}

// Revive re-registers a session restored from a cached token.
func (m *Manager) Revive(id, username, upstreamToken string) *Session {
	sess := New(username, upstreamToken)
	sess.ID = id
	m.mu.Lock()
	m.sessions[id] = sess
	m.mu.Unlock()
	return sess
}

// Remove ends a session: collections are reset atomically and the cached
// token is dropped.
func (m *Manager) Remove(ctx context.Context, id string) {
	m.mu.Lock()
	sess, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		sess.Reset()
	}
	if m.redis != nil {
		if err := m.redis.Client.Del(ctx, tokenKeyPrefix+id).Err(); err != nil {
			m.logger.Warn("could not drop cached token", zap.Error(err))
		}
	}
}
