package session

import (
	"context"
	"errors"
	"sync"
)

// ErrStoreUnavailable is an exported constant or variable used by the session layer.
var ErrStoreUnavailable = errors.New("session store unavailable")

// Store persists the single session record. An absent record is not an
// error: Load returns the zero [Session] when nothing is stored.
type Store interface {
	Load(ctx context.Context) (Session, error)
	Save(ctx context.Context, sess Session) error
	Clear(ctx context.Context) error
}

// MemoryStore is an in-process [Store]. It is the default for tests and for
// hosts that do not need the session to survive a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	current Session
	present bool
}

// NewMemoryStore creates an empty [MemoryStore].
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load describes the load operation and its observable behavior.
//
// Load may return an error when input validation, dependency calls, or security checks fail.
// Load does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *MemoryStore) Load(_ context.Context) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.present {
		return Session{}, nil
	}
	return m.current, nil
}

// Save describes the save operation and its observable behavior.
//
// Save may return an error when input validation, dependency calls, or security checks fail.
// Save does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *MemoryStore) Save(_ context.Context, sess Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = sess
	m.present = true
	return nil
}

// Clear describes the clear operation and its observable behavior.
//
// Clear may return an error when input validation, dependency calls, or security checks fail.
// Clear does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = Session{}
	m.present = false
	return nil
}
