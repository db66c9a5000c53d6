package services

import (
	"context"

	"highwaybus/internal/domain/models"
)

// Storage seams satisfied by the repositories package.

type RoutePairLister interface {
	ListPairs(ctx context.Context) ([]models.RoutePair, error)
}

type RouteFinder interface {
	FindByEndpoints(ctx context.Context, start, end string) ([]models.Route, error)
}

type TripLister interface {
	ListByRouteIDs(ctx context.Context, routeIDs []int64) ([]models.TripRecord, error)
}

type TripGetter interface {
	GetByID(ctx context.Context, id int64) (models.TripRecord, error)
}

type VoteCounter interface {
	CountsByTripIDs(ctx context.Context, tripIDs []int64) (map[int64]int, error)
}

type VoteReader interface {
	CountForTrip(ctx context.Context, tripID int64) (int, error)
}

type VoteWriter interface {
	Upsert(ctx context.Context, tripID int64, count int) error
}

type SuggestionInserter interface {
	Insert(ctx context.Context, s models.RouteSuggestion) (int64, error)
}

type FeedbackInserter interface {
	Insert(ctx context.Context, f models.TripFeedback) (int64, error)
}
