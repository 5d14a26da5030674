// Package store keeps the last order snapshot of every session.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"dira-storefront/models"
)

var (
	// ErrNoSnapshot is returned when a session has not placed an order yet
	ErrNoSnapshot = errors.New("no order snapshot")
	// ErrCorruptSnapshot is returned when a stored record can not be decoded
	ErrCorruptSnapshot = errors.New("corrupt order snapshot")
)

// SnapshotStore holds one "last order" record per session. Save overwrites.
type SnapshotStore interface {
	Save(ctx context.Context, sessionID string, snapshot *models.OrderSnapshot) error
	Load(ctx context.Context, sessionID string) (*models.OrderSnapshot, error)
}

// snapshotKey names the record of a session
func snapshotKey(sessionID string) string {
	return fmt.Sprintf("lastOrder:%s", sessionID)
}

// MemoryStore is a process-local SnapshotStore
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[string][]byte)}
}

// Save stores the JSON form so that loads never alias the caller's value
func (m *MemoryStore) Save(_ context.Context, sessionID string, snapshot *models.OrderSnapshot) error {
	data, err := encode(snapshot)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.snapshots[snapshotKey(sessionID)] = data
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Load(_ context.Context, sessionID string) (*models.OrderSnapshot, error) {
	m.mu.RLock()
	data, ok := m.snapshots[snapshotKey(sessionID)]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNoSnapshot
	}
	return decode(data)
}
