package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	PreferenceKeyPrefix = "catalog:prefs:"
	PreferenceTTL       = 30 * 24 * time.Hour
)

// PreferenceClient is the slice of the redis client the store needs.
// *redis.Client satisfies it.
type PreferenceClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisPreferenceStore keeps each visitor's catalog filter/sort choice.
type RedisPreferenceStore struct {
	client PreferenceClient
	ttl    time.Duration
}

func NewRedisPreferenceStore(client PreferenceClient) *RedisPreferenceStore {
	return &RedisPreferenceStore{client: client, ttl: PreferenceTTL}
}

// Load returns nil, nil when nothing has been saved for key.
func (s *RedisPreferenceStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, PreferenceKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return data, err
}

func (s *RedisPreferenceStore) Save(ctx context.Context, key string, data []byte) error {
	return s.client.Set(ctx, PreferenceKeyPrefix+key, data, s.ttl).Err()
}
