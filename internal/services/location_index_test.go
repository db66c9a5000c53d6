package services

import (
	"testing"

	"highwaybus/internal/domain"
	"highwaybus/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePairs() []models.RoutePair {
	return []models.RoutePair{
		{StartLocation: "Colombo", EndLocation: "Kandy"},
		{StartLocation: "Colombo", EndLocation: "Galle"},
		{StartLocation: "Kandy", EndLocation: "Colombo"},
		{StartLocation: "Colombo", EndLocation: "Kandy"},
		{StartLocation: "Matara", EndLocation: "Galle"},
		{StartLocation: "", EndLocation: "Jaffna"},
	}
}

func TestLocationIndex_AllOriginsAndDestinations(t *testing.T) {
	ix := NewLocationIndex(samplePairs())

	assert.Equal(t, []string{"Colombo", "Kandy", "Matara"}, ix.AllOrigins())
	assert.Equal(t, []string{"Colombo", "Galle", "Jaffna", "Kandy"}, ix.AllDestinations())
	assert.Equal(t, 6, ix.Len())
}

func TestLocationIndex_CrossFilter(t *testing.T) {
	ix := NewLocationIndex(samplePairs())

	assert.Equal(t, []string{"Galle", "Kandy"}, ix.Destinations("Colombo"))
	assert.Equal(t, []string{"Colombo", "Matara"}, ix.Origins("Galle"))
	assert.Empty(t, ix.Destinations("Nowhere"))

	dd := ix.Dropdowns(domain.Selection{Origin: "Kandy"})
	assert.Equal(t, []string{"Colombo"}, dd.Destinations)
	assert.Equal(t, []string{"Colombo", "Kandy", "Matara"}, dd.Origins)
}

func TestLocationIndex_EveryOfferedPairExists(t *testing.T) {
	pairs := samplePairs()
	ix := NewLocationIndex(pairs)

	exists := func(start, end string) bool {
		for _, p := range pairs {
			if p.StartLocation == start && p.EndLocation == end {
				return true
			}
		}
		return false
	}

	for _, origin := range ix.AllOrigins() {
		for _, dest := range ix.Destinations(origin) {
			assert.Truef(t, exists(origin, dest), "offered %s -> %s without a route", origin, dest)
		}
	}
	for _, dest := range ix.AllDestinations() {
		for _, origin := range ix.Origins(dest) {
			assert.Truef(t, exists(origin, dest), "offered %s -> %s without a route", origin, dest)
		}
	}
}

func TestLocationIndex_CaseSensitive(t *testing.T) {
	ix := NewLocationIndex([]models.RoutePair{
		{StartLocation: "colombo", EndLocation: "Kandy"},
		{StartLocation: "Colombo", EndLocation: "Kandy"},
	})

	assert.Equal(t, []string{"Colombo", "colombo"}, ix.AllOrigins())
	assert.Equal(t, []string{"Kandy"}, ix.AllDestinations())
}

func TestLocationIndex_EmptyAndIsolated(t *testing.T) {
	var ix LocationIndex
	dd := ix.Dropdowns(domain.Selection{})
	require.NotNil(t, dd.Origins)
	require.NotNil(t, dd.Destinations)
	assert.Empty(t, dd.Origins)
	assert.Empty(t, dd.Destinations)

	pairs := samplePairs()
	ix = NewLocationIndex(pairs)
	pairs[0].StartLocation = "Mutated"
	assert.NotContains(t, ix.AllOrigins(), "Mutated")
}
