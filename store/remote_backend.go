package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/uthybuilds/Homespired-sub000/config"
)

// EntityRecord is one persisted entity document in the sync database.
type EntityRecord struct {
	Key       string         `gorm:"primaryKey"`
	Data      datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (EntityRecord) TableName() string {
	return "entity_records"
}

// entitySource abstracts the entity_records rows behind the mirror, so the
// hydration, scoping and refresh semantics can be exercised without a live
// Postgres.
type entitySource interface {
	FetchAll(ctx context.Context) (map[EntityKey]json.RawMessage, error)
	Fetch(ctx context.Context, key EntityKey) (json.RawMessage, bool, error)
	Upsert(ctx context.Context, key EntityKey, data json.RawMessage) error
}

type gormEntitySource struct {
	db *gorm.DB
}

func (s gormEntitySource) FetchAll(ctx context.Context) (map[EntityKey]json.RawMessage, error) {
	var records []EntityRecord
	if err := s.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	out := make(map[EntityKey]json.RawMessage, len(records))
	for _, rec := range records {
		out[EntityKey(rec.Key)] = json.RawMessage(rec.Data)
	}
	return out, nil
}

func (s gormEntitySource) Fetch(ctx context.Context, key EntityKey) (json.RawMessage, bool, error) {
	var rec EntityRecord
	err := s.db.WithContext(ctx).First(&rec, "key = ?", string(key)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return json.RawMessage(rec.Data), true, nil
}

func (s gormEntitySource) Upsert(ctx context.Context, key EntityKey, data json.RawMessage) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&EntityRecord{Key: string(key), Data: datatypes.JSON(data)}).Error
}

// RemoteBackend serves reads from an in-memory mirror hydrated once from
// Postgres and replicates every save back asynchronously. Concurrent writers
// on other devices are last-write-wins at whole-entity granularity; their
// changes reach this process through Refresh, driven by the cross-process
// change events.
type RemoteBackend struct {
	source entitySource

	mu       sync.RWMutex
	mirror   map[EntityKey]json.RawMessage
	identity string

	hydrateOnce sync.Once
}

func NewRemoteBackend(db *gorm.DB) *RemoteBackend {
	if err := db.AutoMigrate(&EntityRecord{}); err != nil {
		log.Printf("[store.remote] migrate failed: %v", err)
	}
	return newRemoteBackend(gormEntitySource{db: db})
}

func newRemoteBackend(source entitySource) *RemoteBackend {
	return &RemoteBackend{
		source: source,
		mirror: make(map[EntityKey]json.RawMessage),
	}
}

// scoped maps the cart keys to the bound identity so an authenticated
// customer sees the same cart on every device. Everything else is shared.
// Callers must hold b.mu.
func (b *RemoteBackend) scoped(key EntityKey) EntityKey {
	if key != KeyCart && key != KeyCartMeta {
		return key
	}
	if b.identity == "" {
		return key
	}
	return key + ":" + EntityKey(b.identity)
}

// hydrate performs the one remote read of the process lifetime. Failure is
// swallowed: the mirror stays empty and every Load falls through to defaults,
// same as a fresh device.
func (b *RemoteBackend) hydrate() {
	b.hydrateOnce.Do(func() {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		records, err := b.source.FetchAll(ctx)
		if err != nil {
			log.Printf("[store.remote] hydration failed, continuing with defaults: %v", err)
			return
		}

		b.mu.Lock()
		defer b.mu.Unlock()
		for key, data := range records {
			b.mirror[key] = data
		}
		log.Printf("[store.remote] hydrated %d entities", len(records))
	})
}

func (b *RemoteBackend) Load(key EntityKey, out any) (bool, error) {
	b.hydrate()

	b.mu.RLock()
	raw, ok := b.mirror[b.scoped(key)]
	b.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// Save updates the mirror synchronously and replicates to Postgres in the
// background. The returned handle resolves when the remote write finishes;
// storefront callers discard it, admin edit flows wait on it.
func (b *RemoteBackend) Save(key EntityKey, value any) <-chan error {
	data, err := json.Marshal(value)
	if err != nil {
		return resolved(fmt.Errorf("failed to encode %s: %w", key, err))
	}

	b.mu.Lock()
	scoped := b.scoped(key)
	b.mirror[scoped] = json.RawMessage(data)
	b.mu.Unlock()

	done := make(chan error, 1)
	go func() {
		defer close(done)
		ctx, cancel := config.WithTimeout()
		defer cancel()

		err := b.source.Upsert(ctx, scoped, data)
		if err != nil {
			// Not retried here; the next save of this entity is the retry.
			log.Printf("[store.remote] replication failed for %s: %v", scoped, err)
		}
		done <- err
	}()
	return done
}

// Refresh re-reads the given entities from the sync database into the
// mirror. Wired to the cross-process change events, so a save announced by
// another device replaces this process's snapshot instead of leaving it
// stale. A failed re-read keeps the current snapshot; the next change event
// is the retry.
func (b *RemoteBackend) Refresh(keys ...EntityKey) {
	b.hydrate()

	ctx, cancel := config.WithTimeout()
	defer cancel()

	for _, key := range keys {
		b.mu.RLock()
		scoped := b.scoped(key)
		b.mu.RUnlock()

		data, found, err := b.source.Fetch(ctx, scoped)
		if err != nil {
			log.Printf("[store.remote] refresh failed for %s: %v", scoped, err)
			continue
		}

		b.mu.Lock()
		if found {
			b.mirror[scoped] = data
		} else {
			delete(b.mirror, scoped)
		}
		b.mu.Unlock()
	}
}

func (b *RemoteBackend) SetIdentity(identity string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.identity = identity
}
