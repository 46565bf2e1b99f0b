package chat

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore shares transcripts across instances through Redis. Keys never
// expire, matching the original's persistent local storage.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Load(ctx context.Context, key string) ([]Message, bool, error) {
	data, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var messages []Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, false, err
	}
	return messages, true, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, messages []Message) error {
	data, err := json.Marshal(messages)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, data, 0).Err()
}
