package services

import (
	"context"
	"log"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/uthybuilds/Homespired-sub000/store"
)

// Sequence keys for human-facing numbers. Orders and requests count in
// separate spaces.
const (
	SeqOrders   = "orders"
	SeqRequests = "requests"
)

// CounterService produces monotonically increasing human-facing numbers.
// When the sync database is up *and* the caller is the administrator it uses
// a coordinated increment serialized server-side; every other path (no
// configuration, customer checkout, remote failure) falls back to a
// per-device sequence persisted through the backend. Customer checkouts on
// different devices can therefore mint duplicate numbers; requiring every
// customer to authenticate just for a receipt number is the worse trade.
type CounterService struct {
	mu      sync.Mutex
	pool    *pgxpool.Pool
	backend store.Backend
	// floor is the highest number handed out per sequence by this process.
	// A failed backend read must never restart a sequence at 1; the floor
	// keeps the local numbers increasing through transient read errors.
	floor map[string]int64
}

func NewCounterService(pool *pgxpool.Pool, backend store.Backend) *CounterService {
	if pool != nil {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if _, err := pool.Exec(ctx,
			`CREATE TABLE IF NOT EXISTS counters (key TEXT PRIMARY KEY, value BIGINT NOT NULL)`); err != nil {
			log.Printf("[counter] counters table setup failed: %v", err)
		}
	}
	return &CounterService{pool: pool, backend: backend, floor: make(map[string]int64)}
}

// Next returns the next number in the sequence. It never fails: any remote
// problem drops silently to the local sequence.
func (s *CounterService) Next(ctx context.Context, seq string, isAdmin bool) int64 {
	if s.pool != nil && isAdmin {
		if n, err := s.nextCoordinated(ctx, seq); err == nil {
			return n
		} else {
			log.Printf("[counter] coordinated increment failed for %s, using local sequence: %v", seq, err)
		}
	}
	return s.nextLocal(seq)
}

// nextCoordinated is a single-statement upsert so concurrent administrator
// actions are serialized by Postgres, not by us.
func (s *CounterService) nextCoordinated(ctx context.Context, seq string) (int64, error) {
	var value int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO counters (key, value) VALUES ($1, 1)
		 ON CONFLICT (key) DO UPDATE SET value = counters.value + 1
		 RETURNING value`, seq).Scan(&value)
	return value, err
}

func (s *CounterService) nextLocal(seq string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	counters := map[string]int64{}
	if _, err := s.backend.Load(store.KeyCounters, &counters); err != nil {
		// Minting from the in-process floor without persisting: writing the
		// partial map back would clobber the other sequences.
		log.Printf("[counter] local sequence read failed for %s, continuing from process floor: %v", seq, err)
		s.floor[seq]++
		return s.floor[seq]
	}
	if counters[seq] < s.floor[seq] {
		counters[seq] = s.floor[seq]
	}
	counters[seq]++
	s.floor[seq] = counters[seq]
	s.backend.Save(store.KeyCounters, counters)
	return counters[seq]
}
