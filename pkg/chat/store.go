package chat

import (
	"context"
	"encoding/json"

	gocache "github.com/patrickmn/go-cache"
)

// TranscriptStore is the durable home of a transcript, keyed per user.
// Implementations must tolerate concurrent access from multiple managers,
// though two managers on the same key will overwrite each other.
type TranscriptStore interface {
	Load(ctx context.Context, key string) ([]Message, bool, error)
	Save(ctx context.Context, key string, messages []Message) error
}

// CacheStore keeps transcripts in process memory. It is the default
// backend and the closest analog of the browser's local storage.
type CacheStore struct {
	c *gocache.Cache
}

func NewCacheStore() *CacheStore {
	return &CacheStore{
		c: gocache.New(gocache.NoExpiration, gocache.NoExpiration),
	}
}

func (s *CacheStore) Load(_ context.Context, key string) ([]Message, bool, error) {
	raw, found := s.c.Get(key)
	if !found {
		return nil, false, nil
	}
	data, ok := raw.([]byte)
	if !ok {
		return nil, false, nil
	}
	var messages []Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, false, err
	}
	return messages, true, nil
}

func (s *CacheStore) Save(_ context.Context, key string, messages []Message) error {
	data, err := json.Marshal(messages)
	if err != nil {
		return err
	}
	s.c.Set(key, data, gocache.NoExpiration)
	return nil
}
