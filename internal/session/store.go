package session

import (
	"context"
	"sync"
	"time"

	"highwaybus/internal/services"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type entry struct {
	sess     *services.SearchSession
	lastSeen time.Time
}

// Store keeps live search sessions in process. Sessions idle longer than ttl are swept.
type Store struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]*entry
	now   func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:   ttl,
		items: map[string]*entry{},
		now:   time.Now,
	}
}

// NewID returns a fresh random session id.
func NewID() string {
	return uuid.NewString()
}

// Create registers a new empty session under a random id.
func (s *Store) Create() *services.SearchSession {
	return s.Add(NewID())
}

// Add registers a new empty session under id, replacing any session already stored there.
func (s *Store) Add(id string) *services.SearchSession {
	sess := services.NewSearchSession(id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[sess.ID] = &entry{sess: sess, lastSeen: s.now()}
	return sess
}

// Get returns a live session and refreshes its idle timer.
func (s *Store) Get(id string) (*services.SearchSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if s.ttl > 0 && now.Sub(e.lastSeen) > s.ttl {
		delete(s.items, id)
		return nil, false
	}
	e.lastSeen = now
	return e.sess, true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Sweep drops idle sessions and reports how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ttl <= 0 {
		return 0
	}
	now := s.now()
	removed := 0
	for id, e := range s.items {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.items, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				log.Debug().Int("removed", n).Int("live", s.Len()).Msg("Swept idle sessions")
			}
		}
	}
}
