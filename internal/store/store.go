package store

import (
	"sync"

	"campusconnect_backend/internal/models"
)

// Event describes a committed store mutation. Subscribers (the websocket
// manager) use it to tell presentation layers to refresh.
type Event struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	ID     string `json:"id"`
}

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Listener receives store events. It must not block: events are delivered
// synchronously after the mutation commits.
type Listener func(Event)

// Store owns every entity collection for the lifetime of the process.
// There is no persistence. All mutations go through Update, which is the
// single mutual-exclusion boundary: one mutation at a time, fully visible.
type Store struct {
	mu sync.RWMutex

	Students     *Collection[*models.Student]
	Companies    *Collection[*models.Company]
	Posts        *Collection[*models.Post]
	Jobs         *Collection[*models.Job]
	Applications *Collection[*models.Application]

	lmu       sync.Mutex
	listeners []Listener
}

func New() *Store {
	return &Store{
		Students:     NewCollection[*models.Student](),
		Companies:    NewCollection[*models.Company](),
		Posts:        NewCollection[*models.Post](),
		Jobs:         NewCollection[*models.Job](),
		Applications: NewCollection[*models.Application](),
	}
}

// Update runs fn under the write lock. fn either completes its mutation or
// returns an error having changed nothing; handlers are written so that no
// partial state can leak.
func (s *Store) Update(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// View runs fn under the read lock. Projections use it to take a consistent
// snapshot without blocking each other.
func (s *Store) View(fn func()) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn()
}

// Subscribe registers a listener for committed mutations.
func (s *Store) Subscribe(l Listener) {
	s.lmu.Lock()
	defer s.lmu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Publish notifies listeners of a committed mutation. Callers invoke it
// after Update returns successfully, outside the write lock, so delivery
// order between two concurrent commits is unspecified. Events carry no
// entity state, only a refresh hint; consumers that need current data
// re-read through View.
func (s *Store) Publish(e Event) {
	s.lmu.Lock()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.lmu.Unlock()

	for _, l := range listeners {
		l(e)
	}
}
