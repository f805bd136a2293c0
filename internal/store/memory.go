package store

import (
	"context"
	"sync"

	"github.com/glintler/auth-gateway/internal/domain"
)

// MemoryStore keeps OTP records in a process-local map. Nothing survives a
// restart; that matches the ephemeral semantics of the OTP flow. Expired
// records are not reaped eagerly — the verifier reports them as expired until
// a new issuance overwrites them.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]domain.OtpRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]domain.OtpRecord)}
}

func (s *MemoryStore) Put(_ context.Context, identity string, rec domain.OtpRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[identity] = rec
	return nil
}

func (s *MemoryStore) Get(_ context.Context, identity string) (*domain.OtpRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[identity]
	if !ok {
		return nil, domain.ErrOTPNotFound
	}
	return &rec, nil
}

func (s *MemoryStore) Delete(_ context.Context, identity string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[identity]; !ok {
		return false, nil
	}
	delete(s.records, identity)
	return true, nil
}
