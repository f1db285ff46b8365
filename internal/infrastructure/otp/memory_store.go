package otp

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/printhub-api/internal/application/auth"
	"github.com/jhoicas/printhub-api/internal/domain"
)

var _ auth.OTPStore = (*MemoryStore)(nil)

type memoryEntry struct {
	code      string
	expiresAt time.Time
}

// MemoryStore almacén de OTPs en memoria para desarrollo: se pierde al
// reiniciar y no sirve con más de una réplica. En producción va Redis.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

// NewMemoryStore construye el almacén en memoria.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

// Set guarda el código con su vencimiento.
func (s *MemoryStore) Set(_ context.Context, phone, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[phone] = memoryEntry{code: code, expiresAt: time.Now().Add(ttl)}
	return nil
}

// Get devuelve el código vigente; uno vencido se elimina y reporta ErrOTPExpired.
func (s *MemoryStore) Get(_ context.Context, phone string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[phone]
	if !ok {
		return "", domain.ErrOTPNotFound
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, phone)
		return "", domain.ErrOTPExpired
	}
	return entry.code, nil
}

// Delete consume el código.
func (s *MemoryStore) Delete(_ context.Context, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, phone)
	return nil
}
