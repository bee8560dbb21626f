package booking

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// sessionKeyPrefix is the versioned key namespace for persisted wizard
// sessions. Bumping the version abandons old sessions; there is no migration.
const sessionKeyPrefix = "booking:session:v5:"

// ErrSessionNotFound is returned when no persisted state exists for a session.
var ErrSessionNotFound = errors.New("booking session not found")

// SessionRepository is the durability port for the booking store. Each
// session owns exactly one slot holding the full JSON-serialized record.
type SessionRepository interface {
	Load(ctx context.Context, sessionID string) ([]byte, error)
	Save(ctx context.Context, sessionID string, data []byte) error
	Delete(ctx context.Context, sessionID string) error
}

type redisSessionRepo struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionRepository returns a SessionRepository backed by Redis.
// Every save refreshes the TTL, so a session stays alive while the user is
// working through the wizard.
func NewRedisSessionRepository(client *redis.Client, ttl time.Duration) SessionRepository {
	return &redisSessionRepo{client: client, ttl: ttl}
}

func (r *redisSessionRepo) Load(ctx context.Context, sessionID string) ([]byte, error) {
	data, err := r.client.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *redisSessionRepo) Save(ctx context.Context, sessionID string, data []byte) error {
	return r.client.Set(ctx, sessionKeyPrefix+sessionID, data, r.ttl).Err()
}

func (r *redisSessionRepo) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}
