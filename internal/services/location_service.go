package services

import (
	"context"
	"encoding/json"
	"fmt"

	"highwaybus/internal/domain"
	"highwaybus/internal/domain/models"
	"highwaybus/internal/utils"

	"github.com/eko/gocache/lib/v4/cache"
)

const locationCacheKey = "highwaybus:locations:route-pairs"

// LocationService loads the route pairs behind the search dropdowns.
type LocationService struct {
	Repo      RoutePairLister
	Cache     cache.CacheInterface[string]
	RequestID string
}

// Load builds a LocationIndex. Cache misses and cache errors fall through to the
// database; a database failure is returned as a FetchError and is not retried.
func (s LocationService) Load(ctx context.Context) (LocationIndex, error) {
	if pairs, ok := s.fromCache(ctx); ok {
		utils.LogEvent(s.RequestID, "locations", "load", fmt.Sprintf("cache hit pairs=%d", len(pairs)))
		return NewLocationIndex(pairs), nil
	}

	pairs, err := s.Repo.ListPairs(ctx)
	if err != nil {
		utils.LogError(s.RequestID, "locations", "load", err)
		return LocationIndex{}, domain.FetchError{Op: "locations", Msg: domain.MsgLocationsFailed, Err: err}
	}

	s.toCache(ctx, pairs)
	utils.LogEvent(s.RequestID, "locations", "load", fmt.Sprintf("pairs=%d", len(pairs)))
	return NewLocationIndex(pairs), nil
}

func (s LocationService) fromCache(ctx context.Context) ([]models.RoutePair, bool) {
	if s.Cache == nil {
		return nil, false
	}
	raw, err := s.Cache.Get(ctx, locationCacheKey)
	if err != nil || raw == "" {
		return nil, false
	}
	var pairs []models.RoutePair
	if err := json.Unmarshal([]byte(raw), &pairs); err != nil {
		utils.LogError(s.RequestID, "locations", "cache_decode", err)
		return nil, false
	}
	return pairs, true
}

func (s LocationService) toCache(ctx context.Context, pairs []models.RoutePair) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(pairs)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, locationCacheKey, string(raw)); err != nil {
		utils.LogError(s.RequestID, "locations", "cache_set", err)
	}
}
