// Package store implements the persistent key-value slot store backing all
// application state. Each logical key holds a single JSON document, read
// and written whole, with an in-memory copy kept synchronized with every
// write so derived views always see the latest value.
package store

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"financafacil/internal/logger"
)

// Slot is the persisted form of one logical key: a single JSON value.
type Slot struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the table name in line with the migrations.
func (Slot) TableName() string { return "slots" }

// Store reads and writes JSON slots through a GORM-managed database while
// serving reads from an in-memory copy. Storage failures never propagate
// to callers: reads fall back to the caller's default and writes keep the
// in-memory state consistent even when persistence fails.
type Store struct {
	db *gorm.DB

	mu    sync.RWMutex
	cache map[string]json.RawMessage
	subs  map[string][]func()
}

// New creates a Store over the given database handle.
func New(db *gorm.DB) *Store {
	return &Store{
		db:    db,
		cache: make(map[string]json.RawMessage),
		subs:  make(map[string][]func()),
	}
}

// Subscribe registers fn to run after every successful Set or Delete of
// key. Callbacks run synchronously on the writing goroutine, after the
// store state is updated.
func (s *Store) Subscribe(key string, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[key] = append(s.subs[key], fn)
}

// Get unmarshals the value stored under key into out. When the key has
// never been written, defaultJSON is persisted and returned instead
// (default-seeding). Malformed stored JSON and database errors both fall
// back to defaultJSON without surfacing an error.
func Get[T any](s *Store, key string, defaultValue T) T {
	s.mu.RLock()
	raw, ok := s.cache[key]
	s.mu.RUnlock()

	if !ok {
		var slot Slot
		err := s.db.First(&slot, "key = ?", key).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			Set(s, key, defaultValue)
			return defaultValue
		case err != nil:
			logger.Get().Warnw("slot read failed, using default", "key", key, "error", err)
			return defaultValue
		}
		raw = json.RawMessage(slot.Value)
		s.mu.Lock()
		s.cache[key] = raw
		s.mu.Unlock()
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		logger.Get().Warnw("malformed slot value, using default", "key", key, "error", err)
		return defaultValue
	}
	return value
}

// Set marshals value and synchronously persists it under key, updating the
// in-memory copy and notifying subscribers. Persistence errors are logged
// and swallowed; the in-memory copy is updated regardless so the running
// process stays coherent.
func Set[T any](s *Store, key string, value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		logger.Get().Warnw("slot value not serializable, skipping write", "key", key, "error", err)
		return
	}

	slot := Slot{Key: key, Value: string(raw), UpdatedAt: time.Now()}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&slot).Error; err != nil {
		logger.Get().Warnw("slot write failed, keeping in-memory copy only", "key", key, "error", err)
	}

	s.mu.Lock()
	s.cache[key] = raw
	fns := append([]func(){}, s.subs[key]...)
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Delete removes the slot for key. The next Get reseeds the caller's
// default. Subscribers of the key are notified.
func (s *Store) Delete(key string) {
	if err := s.db.Delete(&Slot{}, "key = ?", key).Error; err != nil {
		logger.Get().Warnw("slot delete failed", "key", key, "error", err)
	}

	s.mu.Lock()
	delete(s.cache, key)
	fns := append([]func(){}, s.subs[key]...)
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Has reports whether key currently holds a stored value.
func (s *Store) Has(key string) bool {
	s.mu.RLock()
	_, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return true
	}

	var count int64
	if err := s.db.Model(&Slot{}).Where("key = ?", key).Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}
