package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/logging"
)

// MemoryKeyValueStorage keeps slots in process memory. A positive QuotaBytes caps
// the summed size of keys and values, the way a browser caps local storage.
type MemoryKeyValueStorage struct {
	QuotaBytes int

	mu    sync.RWMutex
	items map[string][]byte
	used  int
}

func NewMemoryKeyValueStorage(quotaBytes int) *MemoryKeyValueStorage {
	return &MemoryKeyValueStorage{
		QuotaBytes: quotaBytes,
		items:      make(map[string][]byte),
	}
}

func (s *MemoryKeyValueStorage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *MemoryKeyValueStorage) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.items == nil {
		s.items = make(map[string][]byte)
	}

	used := s.used
	if old, ok := s.items[key]; ok {
		used -= len(key) + len(old)
	}
	used += len(key) + len(value)
	if s.QuotaBytes > 0 && used > s.QuotaBytes {
		logging.Log.Warnf("KV: refusing to write %q, %d bytes over quota of %d", key, used-s.QuotaBytes, s.QuotaBytes)
		return fmt.Errorf("write %q: %w", key, ErrQuotaExceeded)
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	s.items[key] = stored
	s.used = used
	return nil
}

func (s *MemoryKeyValueStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.items[key]; ok {
		s.used -= len(key) + len(old)
		delete(s.items, key)
	}
	return nil
}

// Keys lists the stored keys in no particular order.
func (s *MemoryKeyValueStorage) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.items))
	for k := range s.items {
		keys = append(keys, k)
	}
	return keys
}
