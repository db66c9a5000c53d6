package services

import (
	"context"
	"sync"

	"highwaybus/internal/domain/models"
)

type fakeRoutes struct {
	pairs    []models.RoutePair
	pairsErr error

	routes  []models.Route
	findErr error
	calls   int
}

func (f *fakeRoutes) ListPairs(ctx context.Context) ([]models.RoutePair, error) {
	return f.pairs, f.pairsErr
}

func (f *fakeRoutes) FindByEndpoints(ctx context.Context, start, end string) ([]models.Route, error) {
	f.calls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := []models.Route{}
	for _, r := range f.routes {
		if r.StartLocation == start && r.EndLocation == end {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeTrips struct {
	records []models.TripRecord
	err     error
	gotIDs  []int64
	before  func()
}

func (f *fakeTrips) ListByRouteIDs(ctx context.Context, routeIDs []int64) ([]models.TripRecord, error) {
	f.gotIDs = routeIDs
	if f.before != nil {
		f.before()
	}
	if f.err != nil {
		return nil, f.err
	}
	want := map[int64]bool{}
	for _, id := range routeIDs {
		want[id] = true
	}
	out := []models.TripRecord{}
	for _, rec := range f.records {
		if want[rec.RouteID] {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeTrips) GetByID(ctx context.Context, id int64) (models.TripRecord, error) {
	if f.err != nil {
		return models.TripRecord{}, f.err
	}
	for _, rec := range f.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return models.TripRecord{}, errTripMissing
}

type fakeVotes struct {
	mu       sync.Mutex
	counts   map[int64]int
	countErr error
	upErr    error
	upserts  []models.Vote
	onUpsert func(tripID int64, count int)
}

func (f *fakeVotes) CountsByTripIDs(ctx context.Context, tripIDs []int64) (map[int64]int, error) {
	if f.countErr != nil {
		return nil, f.countErr
	}
	out := map[int64]int{}
	for _, id := range tripIDs {
		if c, ok := f.counts[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

func (f *fakeVotes) CountForTrip(ctx context.Context, tripID int64) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.counts[tripID], nil
}

func (f *fakeVotes) Upsert(ctx context.Context, tripID int64, count int) error {
	if f.onUpsert != nil {
		f.onUpsert(tripID, count)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts = append(f.upserts, models.Vote{ID: tripID, Count: count})
	return f.upErr
}

type fakeSuggestions struct {
	inserted []models.RouteSuggestion
	err      error
}

func (f *fakeSuggestions) Insert(ctx context.Context, s models.RouteSuggestion) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.inserted = append(f.inserted, s)
	return int64(len(f.inserted)), nil
}

type fakeFeedback struct {
	inserted []models.TripFeedback
	err      error
}

func (f *fakeFeedback) Insert(ctx context.Context, fb models.TripFeedback) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.inserted = append(f.inserted, fb)
	return int64(len(f.inserted)), nil
}
