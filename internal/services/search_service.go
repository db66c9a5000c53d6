package services

import (
	"context"
	"fmt"
	"strings"

	"highwaybus/internal/domain"
	"highwaybus/internal/domain/models"
	"highwaybus/internal/utils"
)

// SearchService resolves origin/destination into displayable trips.
type SearchService struct {
	Routes    RouteFinder
	Trips     TripLister
	Votes     VoteCounter
	RequestID string
}

type SearchResult struct {
	Performed bool                 `json:"performed"`
	Trips     []models.DisplayTrip `json:"results"`
	Message   string               `json:"message,omitempty"`
}

// Search runs routes -> trips -> votes in order and stores the outcome in sess.
// It does nothing unless both ends are set. Any failed step clears the results.
func (s SearchService) Search(ctx context.Context, sess *SearchSession, sel domain.Selection) (SearchResult, error) {
	sel = domain.Selection{
		Origin:      strings.TrimSpace(sel.Origin),
		Destination: strings.TrimSpace(sel.Destination),
	}
	if !sel.Complete() {
		return SearchResult{Trips: sess.Results()}, nil
	}

	gen, err := sess.beginSearch(sel)
	if err != nil {
		return SearchResult{}, err
	}

	outcome := searchOutcome{message: domain.MsgSearchFailed}
	defer func() {
		if !sess.finishSearch(gen, outcome) {
			utils.LogEvent(s.RequestID, "search", "stale_result", fmt.Sprintf("generation=%d", gen))
		}
	}()

	utils.LogEvent(s.RequestID, "search", "start", fmt.Sprintf("origin=%s destination=%s", sel.Origin, sel.Destination))

	trips, err := s.resolve(ctx, sel)
	if err != nil {
		utils.LogError(s.RequestID, "search", "resolve", err)
		return SearchResult{Performed: true, Trips: []models.DisplayTrip{}, Message: domain.MsgSearchFailed}, err
	}

	outcome = searchOutcome{trips: trips}
	if len(trips) == 0 {
		outcome.message = domain.MsgNoTrips
	}

	utils.LogEvent(s.RequestID, "search", "done", fmt.Sprintf("trips=%d", len(trips)))
	return SearchResult{Performed: true, Trips: cloneResults(trips), Message: outcome.message}, nil
}

func (s SearchService) resolve(ctx context.Context, sel domain.Selection) ([]models.DisplayTrip, error) {
	routes, err := s.Routes.FindByEndpoints(ctx, sel.Origin, sel.Destination)
	if err != nil {
		return nil, fetchFailed("routes", err)
	}
	if len(routes) == 0 {
		return []models.DisplayTrip{}, nil
	}

	routeIDs := make([]int64, 0, len(routes))
	for _, r := range routes {
		routeIDs = append(routeIDs, r.ID)
	}

	records, err := s.Trips.ListByRouteIDs(ctx, routeIDs)
	if err != nil {
		return nil, fetchFailed("trips", err)
	}
	if len(records) == 0 {
		return []models.DisplayTrip{}, nil
	}

	tripIDs := make([]int64, 0, len(records))
	for _, rec := range records {
		tripIDs = append(tripIDs, rec.ID)
	}

	counts, err := s.Votes.CountsByTripIDs(ctx, tripIDs)
	if err != nil {
		return nil, fetchFailed("votes", err)
	}

	out := make([]models.DisplayTrip, 0, len(records))
	for _, rec := range records {
		out = append(out, FormatDisplayTrip(rec, counts[rec.ID]))
	}
	return out, nil
}

func fetchFailed(op string, err error) error {
	return domain.FetchError{Op: op, Msg: domain.MsgSearchFailed, Err: err}
}
