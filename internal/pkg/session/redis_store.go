// internal/pkg/session/redis_store.go
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each session's token and identity as two fields of one
// Redis hash, so both share a key and a TTL and disappear together.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) key(sid string) string {
	return "session:" + sid
}

func (s *RedisStore) Set(ctx context.Context, sid, token string, identity *CachedIdentity) error {
	var user string
	if identity != nil {
		data, err := json.Marshal(identity)
		if err != nil {
			return fmt.Errorf("failed to marshal identity: %w", err)
		}
		user = string(data)
	}

	key := s.key(sid)
	if err := s.client.HSet(ctx, key, "token", token, "user", user).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	if s.ttl > 0 {
		if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
			return fmt.Errorf("failed to set session TTL: %w", err)
		}
	}
	return nil
}

func (s *RedisStore) Token(ctx context.Context, sid string) (string, error) {
	token, err := s.client.HGet(ctx, s.key(sid), "token").Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session token: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Identity(ctx context.Context, sid string) (*CachedIdentity, error) {
	data, err := s.client.HGet(ctx, s.key(sid), "user").Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session identity: %w", err)
	}
	if data == "" {
		return nil, nil
	}

	var identity CachedIdentity
	if err := json.Unmarshal([]byte(data), &identity); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session identity: %w", err)
	}
	return &identity, nil
}

func (s *RedisStore) Clear(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, s.key(sid)).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
