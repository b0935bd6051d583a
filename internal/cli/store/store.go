package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"StoreFront/internal/model"
)

// Store — локальный SQLite-кэш просмотренных товаров. Позволяет CLI
// показывать последнюю известную карточку товара, когда API недоступен.
type Store struct {
	db *sql.DB
}

// Open открывает (и при необходимости создаёт) файл кэша по указанному пути.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("empty cache path")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close закрывает подключение к БД.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) migrate() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  key TEXT,
  name TEXT NOT NULL,
  payload TEXT NOT NULL,
  fetched_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_products_key ON products(key);
CREATE INDEX IF NOT EXISTS idx_products_fetched_at ON products(fetched_at);
`
	_, err := s.db.Exec(ddl)
	return err
}

// SaveProduct кладёт товар в кэш (upsert по id).
func (s *Store) SaveProduct(p *model.Product) error {
	if p == nil || p.ID == "" {
		return errors.New("product without id")
	}
	payload, err := json.Marshal(p)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
INSERT INTO products(id, key, name, payload, fetched_at) VALUES(?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET key=excluded.key, name=excluded.name,
  payload=excluded.payload, fetched_at=excluded.fetched_at`,
		p.ID, p.Key, p.Name, string(payload), time.Now().Unix(),
	)
	return err
}

// GetProduct ищет товар в кэше по id либо по ключу.
// Возвращает товар и момент, когда он был закэширован.
func (s *Store) GetProduct(idOrKey string) (*model.Product, time.Time, error) {
	var payload string
	var fetchedAt int64
	err := s.db.QueryRow(
		`SELECT payload, fetched_at FROM products WHERE id = ? OR key = ?`,
		idOrKey, idOrKey,
	).Scan(&payload, &fetchedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, time.Time{}, fmt.Errorf("product %q not cached", idOrKey)
		}
		return nil, time.Time{}, err
	}
	var p model.Product
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, time.Time{}, err
	}
	return &p, time.Unix(fetchedAt, 0), nil
}

// ListRecent возвращает до n последних закэшированных товаров.
func (s *Store) ListRecent(n int) ([]model.Product, error) {
	if n <= 0 {
		n = 10
	}
	rows, err := s.db.Query(
		`SELECT payload FROM products ORDER BY fetched_at DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []model.Product
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var p model.Product
		if err := json.Unmarshal([]byte(payload), &p); err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, rows.Err()
}
