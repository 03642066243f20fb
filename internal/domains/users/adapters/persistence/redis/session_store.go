package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	userports "github.com/Mitesh0126/nursery-haven/internal/domains/users/ports"
)

// SessionStore keeps session tokens in Redis with a server-side TTL, so
// expiry needs no purger process.
type SessionStore struct {
	client   *redis.Client
	sessionT time.Duration
}

const keyPrefix = "session:"

// DefaultSessionTTL provides the fallback TTL when none is configured.
const DefaultSessionTTL = 24 * time.Hour

// NewSessionStore wires a Redis-backed session store. Caller owns client lifecycle.
func NewSessionStore(client *redis.Client, sessionTTL time.Duration) *SessionStore {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &SessionStore{client: client, sessionT: sessionTTL}
}

// Save stores the token under the account key, replacing any prior session.
func (s *SessionStore) Save(ctx context.Context, email, token string) error {
	if err := s.ensureClient(); err != nil {
		return err
	}
	email = strings.TrimSpace(email)
	token = strings.TrimSpace(token)
	if email == "" || token == "" {
		return errors.New("email and token are required")
	}
	return s.client.Set(ctx, sessionKey(email), token, s.sessionT).Err()
}

// Delete removes the session for an account.
func (s *SessionStore) Delete(ctx context.Context, email string) error {
	if err := s.ensureClient(); err != nil {
		return err
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}
	return s.client.Del(ctx, sessionKey(email)).Err()
}

func (s *SessionStore) ensureClient() error {
	if s == nil || s.client == nil {
		return errors.New("redis session store not configured")
	}
	return nil
}

func sessionKey(email string) string {
	return fmt.Sprintf("%s%s", keyPrefix, email)
}

var _ userports.SessionStore = (*SessionStore)(nil)
