package services

import (
	"encoding/json"
	"testing"

	"highwaybus/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDisplayTrip_Full(t *testing.T) {
	_, trips := colomboKandy()
	rec := trips.records[1]

	got := FormatDisplayTrip(rec, 3)

	assert.Equal(t, int64(10), got.ID)
	assert.Equal(t, "09:30", got.DepartureTime)
	assert.Equal(t, "12:00", got.ArrivalTime)
	require.NotNil(t, got.StartLocation)
	assert.Equal(t, "Colombo", *got.StartLocation)
	assert.Equal(t, "Kandy", *got.EndLocation)
	assert.True(t, *got.Highway)
	assert.Equal(t, "1", *got.RouteNumber)
	assert.Equal(t, 850.0, *got.Price)
	assert.Equal(t, "Hill Line", *got.BusName)
	assert.Equal(t, []string{"Kadawatha", "Kegalle"}, got.Stops)
	assert.Equal(t, 3, got.VoteCount)

	got.Stops[0] = "changed"
	assert.Equal(t, "Kadawatha", rec.Route.Stops[0])
}

func TestFormatDisplayTrip_MissingJoins(t *testing.T) {
	rec := models.TripRecord{Trip: models.Trip{ID: 5, DepartureTime: "05:45"}}

	got := FormatDisplayTrip(rec, 0)

	assert.Nil(t, got.StartLocation)
	assert.Nil(t, got.BusNumber)
	assert.Nil(t, got.Price)
	assert.NotNil(t, got.Stops)
	assert.Empty(t, got.Stops)
	assert.Equal(t, 0, got.VoteCount)

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":5,"departureTime":"05:45","arrivalTime":"","stops":[],"voteCount":0}`, string(raw))
}

func TestFormatDisplayTrip_Deterministic(t *testing.T) {
	_, trips := colomboKandy()
	for _, rec := range trips.records {
		assert.Equal(t, FormatDisplayTrip(rec, 2), FormatDisplayTrip(rec, 2))
	}
}

func TestFormatDisplayTrip_StopsRoundTrip(t *testing.T) {
	stops := []string{"Kadawatha", "Nittambuwa", "Kegalle", "Mawanella"}
	rec := models.TripRecord{
		Trip:  models.Trip{ID: 1},
		Route: &models.Route{ID: 1, Stops: stops},
	}

	got := FormatDisplayTrip(rec, 0)

	assert.Equal(t, stops, got.Stops)
}
