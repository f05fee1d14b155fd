package idempotency

import (
	"context"
	"sync"
	"time"

	"band-booking/internal/pkg/clock"
	"band-booking/internal/usecase/commands"
)

// LocalStore keeps idempotency records in process memory. It is used when
// Redis is not available and only deduplicates retries hitting the same
// instance.
type LocalStore struct {
	mu      sync.Mutex
	records map[string]localEntry
	ttl     time.Duration
	clock   clock.Clock
}

type localEntry struct {
	record    commands.IdempotencyRecord
	expiresAt time.Time
}

func NewLocalStore(ttl time.Duration, clock clock.Clock) *LocalStore {
	return &LocalStore{records: make(map[string]localEntry), ttl: ttl, clock: clock}
}

func (s *LocalStore) TryReserve(_ context.Context, key, requestHash string) (*commands.IdempotencyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	for k, e := range s.records {
		if !now.Before(e.expiresAt) {
			delete(s.records, k)
		}
	}
	if e, ok := s.records[key]; ok {
		rec := e.record
		return &rec, nil
	}
	s.records[key] = localEntry{
		record:    commands.IdempotencyRecord{Status: commands.IdempotencyStatusProcessing, RequestHash: requestHash},
		expiresAt: now.Add(processingTTL),
	}
	return nil, nil
}

func (s *LocalStore) Complete(_ context.Context, key, requestHash string, confirmation *commands.BookingConfirmation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[key] = localEntry{
		record: commands.IdempotencyRecord{
			Status:       commands.IdempotencyStatusCompleted,
			RequestHash:  requestHash,
			Confirmation: confirmation,
		},
		expiresAt: s.clock.Now().Add(s.ttl),
	}
	return nil
}

func (s *LocalStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
	return nil
}
