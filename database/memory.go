package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenMemory returns a migrated in-memory SQLite database private to name.
// Used by tests and local tooling that should not touch a real server.
func OpenMemory(name string) (*gorm.DB, error) {
	name = strings.NewReplacer("/", "_", " ", "_").Replace(name)
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := Open("sqlite", dsn, logger.Silent)
	if err != nil {
		return nil, err
	}

	// one connection keeps the memory database alive and avoids table locks
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}
