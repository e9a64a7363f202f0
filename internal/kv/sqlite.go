package kv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Record is a single key-value row.
type Record struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"not null;column:value"`
}

// TableName overrides gorm's pluralized default.
func (Record) TableName() string { return "records" }

// SQLite is the durable Store implementation backed by a single-table
// SQLite database.
type SQLite struct {
	db *gorm.DB
}

// Open connects to (creating if necessary) the SQLite database at path and
// runs migrations.
func Open(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Get reads the value stored under key. A missing key is not an error.
func (s *SQLite) Get(key string) (string, bool, error) {
	var rec Record
	err := s.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return rec.Value, true, nil
}

// Set writes value under key, replacing any existing value.
func (s *SQLite) Set(key, value string) error {
	return s.upsert(s.db, key, value)
}

// MultiSet writes all pairs inside a single transaction.
func (s *SQLite) MultiSet(pairs map[string]string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range pairs {
			if err := s.upsert(tx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

// MultiRemove deletes all given keys inside a single transaction. Missing
// keys are ignored.
func (s *SQLite) MultiRemove(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.db.Delete(&Record{}, "key IN ?", keys).Error; err != nil {
		return fmt.Errorf("failed to remove keys: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *SQLite) upsert(tx *gorm.DB, key, value string) error {
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Record{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}
