// Package memstore is an in-memory store.Store implementation for tests.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/brandlens/dna/pkg/dna/internalerr"
	"github.com/brandlens/dna/pkg/dna/store"
)

// Store keeps profiles in maps guarded by a RWMutex.
type Store struct {
	mu          sync.RWMutex
	profiles    map[string]store.Profile
	sourceIndex map[string]string
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		profiles:    make(map[string]store.Profile),
		sourceIndex: make(map[string]string),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveProfile inserts or replaces a profile, keyed by source.
func (s *Store) SaveProfile(ctx context.Context, p store.Profile) error {
	if p.ID == "" {
		return fmt.Errorf("save profile: empty id: %w", internalerr.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if oldID, ok := s.sourceIndex[p.Source]; ok && oldID != p.ID {
		delete(s.profiles, oldID)
	}
	s.profiles[p.ID] = p
	s.sourceIndex[p.Source] = p.ID
	return nil
}

// GetProfile returns a profile by ID.
func (s *Store) GetProfile(ctx context.Context, id string) (store.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.profiles[id]; ok {
		return p, nil
	}
	return store.Profile{}, fmt.Errorf("profile %s: %w", id, internalerr.ErrNotFound)
}

// GetProfileBySource returns the profile stored for a source.
func (s *Store) GetProfileBySource(ctx context.Context, source string) (store.Profile, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id, ok := s.sourceIndex[source]; ok {
		return s.profiles[id], true, nil
	}
	return store.Profile{}, false, nil
}

// ListProfiles returns up to limit profiles, newest first.
func (s *Store) ListProfiles(ctx context.Context, limit int) ([]store.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
