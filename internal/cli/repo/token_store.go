package repo

import (
	"sync"
	"time"
)

// TokenStore описывает абстракцию хранилища именованных токенов на клиенте.
// Get возвращает ok=false, если токен отсутствует или его срок истёк
// (пассивная проверка: просроченные записи не удаляются, а просто не видны).
type TokenStore interface {
	Get(key string) (string, bool)
	Set(key, value string, ttl time.Duration) error
	Clear(key string) error
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryTokenStore — потокобезопасная in-memory реализация, используется в тестах.
type MemoryTokenStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryTokenStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok || !time.Now().Before(e.expiresAt) {
		return "", false
	}
	return e.value, true
}

func (s *MemoryTokenStore) Set(key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{value: value, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryTokenStore) Clear(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

var _ TokenStore = (*MemoryTokenStore)(nil)
