package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"fundaevento/plataforma/internal/constants"
)

// ErrSessionNotFound is returned for unknown or expired session ids.
var ErrSessionNotFound = errors.New("session not found")

// SessionData is a user's platform session. It is created exactly once at
// sign-in, replaced on auth state changes, and deleted on sign-out.
type SessionData struct {
	SessionID string         `json:"session_id"`
	UserID    string         `json:"user_id"`
	AuthID    string         `json:"auth_id"`
	Nombre    string         `json:"nombre"`
	Rol       constants.Role `json:"rol"`
	CreatedAt time.Time      `json:"created_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// SessionService manages user sessions in Redis.
type SessionService struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewSessionService(redis *redis.Client, ttl time.Duration) *SessionService {
	return &SessionService{redis: redis, ttl: ttl}
}

func sessionKey(id string) string { return "sesion:" + id }

// CreateSession stores a new session and returns it.
func (s *SessionService) CreateSession(ctx context.Context, userID, authID, nombre string, rol constants.Role) (*SessionData, error) {
	now := time.Now()
	session := &SessionData{
		SessionID: uuid.New().String(),
		UserID:    userID,
		AuthID:    authID,
		Nombre:    nombre,
		Rol:       rol,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.redis.Set(ctx, sessionKey(session.SessionID), data, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return session, nil
}

// GetSession retrieves a session by id.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*SessionData, error) {
	val, err := s.redis.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session SessionData
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// DeleteSession removes a session (sign-out). Deleting a session that is
// already gone is not an error.
func (s *SessionService) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.redis.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
