// Package session tracks which tenant the operator is currently working in.
// The store is injected into the API client as its TenantSource instead of
// being read from ambient global state.
package session

import "sync"

// TenantStore holds the currently selected tenant. Safe for concurrent use.
type TenantStore struct {
	mu sync.RWMutex
	id string
}

// NewTenantStore returns a store preselected to id; pass an empty string for
// no selection.
func NewTenantStore(id string) *TenantStore {
	return &TenantStore{id: id}
}

// Select switches the current tenant.
func (s *TenantStore) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = id
}

// Clear drops the current selection.
func (s *TenantStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = ""
}

// TenantID returns the selected tenant, or false when none is selected.
func (s *TenantStore) TenantID() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.id == "" {
		return "", false
	}
	return s.id, true
}
