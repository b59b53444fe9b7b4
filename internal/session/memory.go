package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/medhq/hms-api/internal/model"
)

// MemoryStore keeps serialized session records in an in-process TTL cache.
// Records are stored as JSON bytes, matching what the redis store holds, so
// the corrupt-record path behaves identically in both backends.
type MemoryStore struct {
	cache *cache.Cache
}

func NewMemoryStore(defaultTTL, cleanupInterval time.Duration) *MemoryStore {
	return &MemoryStore{cache: cache.New(defaultTTL, cleanupInterval)}
}

func (s *MemoryStore) Save(ctx context.Context, id string, sess *model.Session, ttl time.Duration) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	s.cache.Set(slotPrefix+id, payload, ttl)
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*model.Session, error) {
	raw, ok := s.cache.Get(slotPrefix + id)
	if !ok {
		return nil, ErrNotFound
	}

	payload, ok := raw.([]byte)
	if !ok {
		s.cache.Delete(slotPrefix + id)
		return nil, ErrNotFound
	}

	var sess model.Session
	if err := json.Unmarshal(payload, &sess); err != nil || !sess.Valid() {
		// Fail open to anonymous: discard the corrupt record.
		s.cache.Delete(slotPrefix + id)
		return nil, ErrNotFound
	}
	return &sess, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.cache.Delete(slotPrefix + id)
	return nil
}

// put is a test hook that writes a raw payload into the slot.
func (s *MemoryStore) put(id string, payload []byte, ttl time.Duration) {
	s.cache.Set(slotPrefix+id, payload, ttl)
}

// has is a test hook reporting whether the slot is occupied.
func (s *MemoryStore) has(id string) bool {
	_, ok := s.cache.Get(slotPrefix + id)
	return ok
}
