// Package registry holds the in-memory activity store and its seed catalog.
package registry

import (
	"context"
	"sync"

	"github.com/mergington/activities/internal/domain"
)

// MemoryStore is the process-lifetime activity registry. A single RWMutex
// guards the map so every membership check and write forms one atomic
// read-modify-write, which is what keeps duplicate-signup detection correct
// under concurrent requests.
type MemoryStore struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewMemoryStore creates a store initialized with a deep copy of seed, so the
// caller's map can be reused or mutated freely afterwards.
func NewMemoryStore(seed map[string]domain.Activity) *MemoryStore {
	return &MemoryStore{activities: cloneRegistry(seed)}
}

// List returns a snapshot of the full registry.
func (s *MemoryStore) List(_ context.Context) (map[string]domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRegistry(s.activities), nil
}

// AddParticipant appends email to the named activity.
func (s *MemoryStore) AddParticipant(_ context.Context, activity, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[activity]
	if !ok {
		return domain.ErrActivityNotFound
	}
	if a.HasParticipant(email) {
		return domain.ErrAlreadySignedUp
	}

	a.Participants = append(a.Participants, email)
	s.activities[activity] = a
	return nil
}

// RemoveParticipant removes email from the named activity.
func (s *MemoryStore) RemoveParticipant(_ context.Context, activity, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[activity]
	if !ok {
		return domain.ErrActivityNotFound
	}

	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i:i], a.Participants[i+1:]...)
			s.activities[activity] = a
			return nil
		}
	}
	return domain.ErrNotRegistered
}

// Len returns the number of activities in the registry.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.activities)
}

func cloneRegistry(in map[string]domain.Activity) map[string]domain.Activity {
	out := make(map[string]domain.Activity, len(in))
	for name, a := range in {
		participants := make([]string, len(a.Participants))
		copy(participants, a.Participants)
		a.Participants = participants
		out[name] = a
	}
	return out
}
