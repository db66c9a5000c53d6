package services

import (
	"slices"
	"sync"

	"highwaybus/internal/domain"
	"highwaybus/internal/domain/models"
)

// SearchSession is the state one user's search page owns: the location
// index, the current selection, the displayed results and the last messages.
// Services mutate it only through its methods, which hold mu.
type SearchSession struct {
	ID string

	mu sync.Mutex

	locations    LocationIndex
	locationsMsg string

	selection  domain.Selection
	results    []models.DisplayTrip
	searching  bool
	searched   bool
	generation uint64
	searchMsg  string
	voteMsg    string
}

// SessionSnapshot is a copy of the session state safe to serialize.
type SessionSnapshot struct {
	ID               string               `json:"id"`
	Selection        domain.Selection     `json:"selection"`
	Dropdowns        Dropdowns            `json:"dropdowns"`
	LocationsMessage string               `json:"locationsMessage,omitempty"`
	Results          []models.DisplayTrip `json:"results"`
	Searching        bool                 `json:"searching"`
	Searched         bool                 `json:"searched"`
	SearchMessage    string               `json:"searchMessage,omitempty"`
	VoteMessage      string               `json:"voteMessage,omitempty"`
}

func NewSearchSession(id string) *SearchSession {
	return &SearchSession{ID: id, results: []models.DisplayTrip{}}
}

// SetLocations installs a freshly loaded index. A load error leaves both
// dropdowns empty and records the user-facing message.
func (s *SearchSession) SetLocations(ix LocationIndex, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.locations = LocationIndex{}
		s.locationsMsg = domain.UserMessage(err, domain.MsgLocationsFailed)
		return
	}
	s.locations = ix
	s.locationsMsg = ""
}

// Dropdowns returns the cross-filtered options for sel.
func (s *SearchSession) Dropdowns(sel domain.Selection) (Dropdowns, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locations.Dropdowns(sel), s.locationsMsg
}

// Results returns a copy of the displayed list.
func (s *SearchSession) Results() []models.DisplayTrip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneResults(s.results)
}

func (s *SearchSession) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionSnapshot{
		ID:               s.ID,
		Selection:        s.selection,
		Dropdowns:        s.locations.Dropdowns(s.selection),
		LocationsMessage: s.locationsMsg,
		Results:          cloneResults(s.results),
		Searching:        s.searching,
		Searched:         s.searched,
		SearchMessage:    s.searchMsg,
		VoteMessage:      s.voteMsg,
	}
}

// beginSearch marks a search in flight and hands out its generation.
// A second search while one is running is refused.
func (s *SearchSession) beginSearch(sel domain.Selection) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.searching {
		return 0, domain.ConflictError{Msg: domain.MsgSearchInProgress}
	}
	s.generation++
	s.searching = true
	s.searched = true
	s.selection = sel
	s.searchMsg = ""
	return s.generation, nil
}

type searchOutcome struct {
	trips   []models.DisplayTrip
	message string
}

// finishSearch lands an outcome if gen is still the latest search and always
// clears the in-flight flag for it. It reports whether the outcome was applied.
func (s *SearchSession) finishSearch(gen uint64, out searchOutcome) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return false
	}
	s.searching = false
	s.results = cloneResults(out.trips)
	s.searchMsg = out.message
	return true
}

// adjustVote applies delta to the displayed count of tripID in place.
func (s *SearchSession) adjustVote(tripID int64, delta int) (models.DisplayTrip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.results {
		if s.results[i].ID == tripID {
			s.results[i].VoteCount += delta
			return s.results[i], nil
		}
	}
	return models.DisplayTrip{}, domain.NotFoundError{Resource: "displayed trip"}
}

func (s *SearchSession) setVoteMessage(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.voteMsg = msg
}

func cloneResults(in []models.DisplayTrip) []models.DisplayTrip {
	if in == nil {
		return []models.DisplayTrip{}
	}
	return slices.Clone(in)
}
