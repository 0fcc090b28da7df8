package services

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Transition is one successfully applied auction transition, recorded for
// audit. The protocol core does not depend on this history; it exists so
// operators can reconstruct how an auction reached its current state.
type Transition struct {
	ID         uuid.UUID `json:"id"`
	Record     string    `json:"record"`
	Kind       string    `json:"kind"`
	Actor      string    `json:"actor"`
	Price      uint64    `json:"price"`
	OccurredAt time.Time `json:"occurred_at"`
}

// TransitionStore persists the transition audit trail.
type TransitionStore interface {
	// SaveTransition appends one applied transition.
	SaveTransition(t *Transition) error

	// ListTransitions returns a record's transitions in order of occurrence.
	ListTransitions(record string) ([]*Transition, error)

	// Close releases the store's resources.
	Close() error
}

// MemoryStore implements TransitionStore for testing without a database.
type MemoryStore struct {
	mu          sync.Mutex
	transitions []*Transition
}

// NewMemoryStore creates an in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SaveTransition appends a transition in memory.
func (s *MemoryStore) SaveTransition(t *Transition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *t
	s.transitions = append(s.transitions, &copied)
	return nil
}

// ListTransitions returns a record's transitions in order of occurrence.
func (s *MemoryStore) ListTransitions(record string) ([]*Transition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*Transition
	for _, t := range s.transitions {
		if t.Record == record {
			copied := *t
			result = append(result, &copied)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].OccurredAt.Before(result[j].OccurredAt)
	})
	return result, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
