package redis

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/vmihailenco/msgpack/v5"

	"padelbot/domain/auth"
)

// SessionRepository persists auth sessions in Redis, one hash per chat.
// Key format: session:{chatID}, fields: token plus the serialized profile.
// This is the only durable client-side state: entities are never cached.
type SessionRepository struct {
	client *Client
}

// NewSessionRepository creates the Redis-backed session store.
func NewSessionRepository(client *Client) auth.SessionStore {
	return &SessionRepository{client: client}
}

func sessionKey(chatID int64) string {
	return fmt.Sprintf("session:%d", chatID)
}

// Save stores the session, replacing any previous one for the chat.
func (r *SessionRepository) Save(ctx context.Context, chatID int64, s *auth.Session) error {
	profile, err := msgpack.Marshal(s.User)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	fields := map[string]interface{}{
		"token":   s.Token,
		"profile": profile,
	}
	return r.client.HSet(ctx, sessionKey(chatID), fields).Err()
}

// Get returns the stored session, or nil when the chat has none.
func (r *SessionRepository) Get(ctx context.Context, chatID int64) (*auth.Session, error) {
	result, err := r.client.HGetAll(ctx, sessionKey(chatID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	if len(result) == 0 {
		return nil, nil
	}

	s := &auth.Session{Token: result["token"]}
	if raw, ok := result["profile"]; ok && raw != "" {
		if err := msgpack.Unmarshal([]byte(raw), &s.User); err != nil {
			return nil, fmt.Errorf("decode profile: %w", err)
		}
	}
	return s, nil
}

// Delete removes the stored session. Deleting a missing session is not an
// error.
func (r *SessionRepository) Delete(ctx context.Context, chatID int64) error {
	return r.client.Del(ctx, sessionKey(chatID)).Err()
}
