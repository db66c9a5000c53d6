package services

import (
	"context"
	"errors"
	"testing"

	"highwaybus/internal/domain"
	"highwaybus/internal/domain/models"

	"github.com/eko/gocache/lib/v4/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errCacheMiss = errors.New("cache miss")

type memCache struct {
	items  map[any]string
	getErr error
}

func newMemCache() *memCache { return &memCache{items: map[any]string{}} }

func (m *memCache) Get(ctx context.Context, key any) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	v, ok := m.items[key]
	if !ok {
		return "", errCacheMiss
	}
	return v, nil
}

func (m *memCache) Set(ctx context.Context, key any, object string, options ...store.Option) error {
	m.items[key] = object
	return nil
}

func (m *memCache) Delete(ctx context.Context, key any) error {
	delete(m.items, key)
	return nil
}

func (m *memCache) Invalidate(ctx context.Context, options ...store.InvalidateOption) error {
	return nil
}

func (m *memCache) Clear(ctx context.Context) error {
	m.items = map[any]string{}
	return nil
}

func (m *memCache) GetType() string { return "mem" }

func TestLocationService_LoadFromDatabase(t *testing.T) {
	repo := &fakeRoutes{pairs: samplePairs()}

	ix, err := LocationService{Repo: repo}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Colombo", "Kandy", "Matara"}, ix.AllOrigins())
}

func TestLocationService_CachesPairs(t *testing.T) {
	repo := &fakeRoutes{pairs: samplePairs()}
	c := newMemCache()
	svc := LocationService{Repo: repo, Cache: c}

	_, err := svc.Load(context.Background())
	require.NoError(t, err)
	require.Contains(t, c.items, locationCacheKey)

	repo.pairsErr = errBackend
	ix, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(samplePairs()), ix.Len())
}

func TestLocationService_CacheErrorFallsThrough(t *testing.T) {
	repo := &fakeRoutes{pairs: []models.RoutePair{{StartLocation: "Colombo", EndLocation: "Kandy"}}}
	c := newMemCache()
	c.getErr = errors.New("redis down")
	c.items[locationCacheKey] = "not json"

	ix, err := LocationService{Repo: repo, Cache: c}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Kandy"}, ix.AllDestinations())
}

func TestLocationService_FailureLeavesDropdownsEmpty(t *testing.T) {
	repo := &fakeRoutes{pairsErr: errBackend}
	sess := NewSearchSession("s1")

	ix, err := LocationService{Repo: repo}.Load(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsFetch(err))
	sess.SetLocations(ix, err)

	dd, msg := sess.Dropdowns(domain.Selection{})
	assert.Empty(t, dd.Origins)
	assert.Empty(t, dd.Destinations)
	assert.Equal(t, domain.MsgLocationsFailed, msg)

	repo.pairsErr = nil
	repo.pairs = samplePairs()
	ix, err = LocationService{Repo: repo}.Load(context.Background())
	sess.SetLocations(ix, err)
	dd, msg = sess.Dropdowns(domain.Selection{Destination: "Galle"})
	assert.Empty(t, msg)
	assert.Equal(t, []string{"Colombo", "Matara"}, dd.Origins)
}
