// Package scenario holds the active operating scenario, the single source
// of truth for all derived dashboard state.
package scenario

import (
	"log"
	"sync"

	"github.com/mfreeman451/wardwatch/pkg/models"
)

// Listener is notified after the active scenario changes.
type Listener func(models.Scenario)

type registration struct {
	id       int
	listener Listener
}

// Store is a fully connected state machine over the four scenarios: any
// scenario may follow any other, driven only by explicit selection.
type Store struct {
	mu     sync.RWMutex
	active models.Scenario
	regs   []registration
	nextID int
}

// NewStore creates a store starting in the normal scenario.
func NewStore() *Store {
	return &Store{active: models.ScenarioNormal}
}

// Get returns the active scenario.
func (s *Store) Get() models.Scenario {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.active
}

// Stats returns the capacity snapshot for the active scenario.
func (s *Store) Stats() models.StatsSnapshot {
	return StatsFor(s.Get())
}

// Select makes next the active scenario and notifies listeners. Selecting
// the already-active scenario is a no-op. Invalid scenarios are ignored.
func (s *Store) Select(next models.Scenario) {
	if !next.Valid() {
		log.Printf("Ignoring selection of unknown scenario %q", next)
		return
	}

	s.mu.Lock()

	if s.active == next {
		s.mu.Unlock()
		return
	}

	s.active = next
	regs := make([]registration, len(s.regs))
	copy(regs, s.regs)
	s.mu.Unlock()

	// Listeners run outside the lock so they may read the store.
	for _, r := range regs {
		r.listener(next)
	}
}

// Subscribe registers a listener for scenario changes and returns its
// unsubscribe function.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.regs = append(s.regs, registration{id: id, listener: l})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		for i, r := range s.regs {
			if r.id == id {
				s.regs = append(s.regs[:i], s.regs[i+1:]...)
				break
			}
		}
	}
}
