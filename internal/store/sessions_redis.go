package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/thereayou/spyfall-lite/internal/models"
)

// SessionTTL is a sliding expiry: every resolved request pushes it forward,
// so only genuinely idle sessions fall out of the store.
const SessionTTL = 24 * time.Hour

const sessionKeyPrefix = "session:"

// RedisSessionStore keeps sessions in Redis so multiple server processes
// can share the registry and idle sessions expire on their own.
type RedisSessionStore struct {
	rdb *redis.Client
}

func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb}
}

func (s *RedisSessionStore) Put(ctx context.Context, session *models.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKeyPrefix+session.ID, payload, SessionTTL).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*models.Session, error) {
	payload, err := s.rdb.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var session models.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, err
	}
	session.LastSeen = time.Now().UnixMilli()
	if err := s.Put(ctx, &session); err != nil {
		return nil, err
	}
	return &session, nil
}
