package repo

import (
	"strings"

	gormpostgres "gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"StoreFront/internal/model"
)

// InitDB открывает подключение к БД и накатывает миграции.
// Драйвер выбирается по DSN: postgres:// — Postgres, иначе SQLite
// (cgo-free драйвер modernc). Пустой DSN — in-memory SQLite для dev-режима.
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch {
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://"):
		dial = gormpostgres.Open(dsn)
	case dsn == "":
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: "file::memory:?cache=shared"}
	default:
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.DiscountCode{},
		&model.Customer{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
