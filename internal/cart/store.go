// internal/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Store persists the serialized line-item collection under one key per cart
// session. Load must fail open: absent or malformed data hydrates as an
// empty cart rather than surfacing a parse error to the caller.
type Store interface {
	Load(ctx context.Context, sessionID string) ([]LineItem, error)
	Save(ctx context.Context, sessionID string, items []LineItem) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisStore keeps each cart as a JSON blob under prefix+sessionID.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) ([]LineItem, error) {
	data, err := s.client.Get(ctx, s.prefix+sessionID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("cart load error: %w", err)
	}

	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		// Malformed payloads are treated as an empty cart.
		logrus.WithError(err).WithField("session_id", sessionID).Warn("Discarding malformed cart payload")
		return nil, nil
	}

	return items, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, items []LineItem) error {
	if items == nil {
		items = []LineItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("cart marshal error: %w", err)
	}

	if err := s.client.Set(ctx, s.prefix+sessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("cart save error: %w", err)
	}

	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.prefix+sessionID).Err(); err != nil {
		return fmt.Errorf("cart delete error: %w", err)
	}
	return nil
}

// MemoryStore is the local-development and test fallback. It serializes
// through JSON like the redis store so both paths exercise the same wire
// format.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]byte)}
}

func (s *MemoryStore) Load(ctx context.Context, sessionID string) ([]LineItem, error) {
	s.mu.RLock()
	data, ok := s.carts[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}

	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, nil
	}
	return items, nil
}

func (s *MemoryStore) Save(ctx context.Context, sessionID string, items []LineItem) error {
	if items == nil {
		items = []LineItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("cart marshal error: %w", err)
	}

	s.mu.Lock()
	s.carts[sessionID] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.carts, sessionID)
	s.mu.Unlock()
	return nil
}
