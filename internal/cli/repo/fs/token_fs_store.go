package fs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"StoreFront/internal/cli/repo"
)

// TokenFSStore — файловое хранилище токенов CLI. Каждый именованный токен
// лежит в отдельном json-файле вместе с абсолютным временем истечения.
// Просроченный файл не удаляется: Get просто сообщает, что токена нет.
type TokenFSStore struct {
	// Dir переопределяет каталог хранения (используется в тестах).
	// Пустое значение — каталог конфигурации пользователя.
	Dir string

	mu sync.Mutex
}

type tokenFile struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

var keyRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

var _ repo.TokenStore = (*TokenFSStore)(nil)

func (s *TokenFSStore) dir() (string, error) {
	if s.Dir != "" {
		if err := os.MkdirAll(s.Dir, 0o700); err != nil {
			return "", err
		}
		return s.Dir, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "StoreFront")
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func (s *TokenFSStore) path(key string) (string, error) {
	if !keyRe.MatchString(key) {
		return "", fmt.Errorf("invalid token key: %q", key)
	}
	dir, err := s.dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, key+".json"), nil
}

// Get читает токен из файла и проверяет срок действия.
func (s *TokenFSStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.path(key)
	if err != nil {
		return "", false
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", false
	}
	var tf tokenFile
	if err := json.Unmarshal(b, &tf); err != nil || tf.Token == "" {
		return "", false
	}
	if !time.Now().Before(tf.ExpiresAt) {
		return "", false
	}
	return tf.Token, true
}

// Set сохраняет токен с вычисленным временем истечения (now + ttl).
func (s *TokenFSStore) Set(key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if value == "" {
		return errors.New("empty token value")
	}
	p, err := s.path(key)
	if err != nil {
		return err
	}
	b, err := json.Marshal(tokenFile{Token: value, ExpiresAt: time.Now().Add(ttl)})
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// Clear удаляет файл токена. Отсутствие файла ошибкой не считается.
func (s *TokenFSStore) Clear(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
