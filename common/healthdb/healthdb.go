// Package healthdb keeps the most recent hostcheck results in a small SQLite file.
package healthdb

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	defaultOnce  sync.Once
	defaultStore *Store
	defaultErr   error
)

// KVEntry is a key/value row scoped by module. V holds JSON.
type KVEntry struct {
	ID        uint      `gorm:"primaryKey"`
	Module    string    `gorm:"index:idx_module_key,unique"`
	K         string    `gorm:"index:idx_module_key,unique"`
	V         string    `gorm:"type:text"`
	CachedAt  time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store wraps the gorm handle.
type Store struct {
	db   *gorm.DB
	path string
}

// DefaultPath chooses a persistent location when possible, otherwise falls back to tmp.
func DefaultPath() string {
	if os.Geteuid() != 0 {
		xdgState := os.Getenv("XDG_STATE_HOME")
		if xdgState == "" {
			if home := os.Getenv("HOME"); home != "" {
				xdgState = filepath.Join(home, ".local", "state")
			}
		}
		if xdgState != "" {
			if err := os.MkdirAll(filepath.Join(xdgState, "hostcheck"), 0o755); err == nil {
				return filepath.Join(xdgState, "hostcheck", "health.db")
			}
		}
	} else if err := os.MkdirAll("/var/lib/mono", 0o755); err == nil {
		return "/var/lib/mono/hostcheck.db"
	}

	tmp := filepath.Join(os.TempDir(), "hostcheck")
	_ = os.MkdirAll(tmp, 0o755)
	return filepath.Join(tmp, "health.db")
}

// Open opens (creating if needed) the database at path and migrates the schema.
func Open(path string) (*Store, error) {
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("healthdb: open %s: %w", path, err)
	}
	if err := gdb.AutoMigrate(&KVEntry{}); err != nil {
		return nil, fmt.Errorf("healthdb: migrate: %w", err)
	}
	log.Debug().Str("path", path).Msg("healthdb: initialized SQLite database")
	return &Store{db: gdb, path: path}, nil
}

// Default returns the shared store at DefaultPath, opening it on first use.
func Default() (*Store, error) {
	defaultOnce.Do(func() {
		defaultStore, defaultErr = Open(DefaultPath())
	})
	return defaultStore, defaultErr
}

// Path is the database file the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// PutJSON stores a JSON string under (module, key). cachedAt defaults to now.
func (s *Store) PutJSON(module, key, json string, cachedAt time.Time) error {
	if cachedAt.IsZero() {
		cachedAt = time.Now()
	}

	var existing KVEntry
	res := s.db.Where("module = ? AND k = ?", module, key).Limit(1).Find(&existing)
	if res.Error != nil {
		return fmt.Errorf("healthdb: fetch failed: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		existing.V = json
		existing.CachedAt = cachedAt
		return s.db.Save(&existing).Error
	}

	entry := KVEntry{Module: module, K: key, V: json, CachedAt: cachedAt}
	return s.db.Create(&entry).Error
}

// GetJSON retrieves the JSON value stored under (module, key).
func (s *Store) GetJSON(module, key string) (json string, cachedAt time.Time, found bool, err error) {
	var entry KVEntry
	res := s.db.Where("module = ? AND k = ?", module, key).Limit(1).Find(&entry)
	if res.Error != nil {
		return "", time.Time{}, false, res.Error
	}
	if res.RowsAffected == 0 {
		return "", time.Time{}, false, nil
	}
	return entry.V, entry.CachedAt, true, nil
}

// Keys lists (module, key) pairs, optionally scoped by module.
func (s *Store) Keys(module string) ([]KVEntry, error) {
	var rows []KVEntry
	q := s.db.Model(&KVEntry{}).Select("module, k, cached_at").Order("module, k")
	if module != "" {
		q = q.Where("module = ?", module)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Delete removes a key for a given module.
func (s *Store) Delete(module, key string) error {
	return s.db.Where("module = ? AND k = ?", module, key).Delete(&KVEntry{}).Error
}
