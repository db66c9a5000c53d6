package services

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"highwaybus/internal/domain"
	"highwaybus/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocsService_Details(t *testing.T) {
	_, trips := colomboKandy()
	svc := DocsService{Trips: trips, Votes: &fakeVotes{counts: map[int64]int{20: 7}}}

	got, err := svc.Details(context.Background(), 20)
	require.NoError(t, err)
	assert.Equal(t, "NB-4521", *got.BusNumber)
	assert.Equal(t, 7, got.VoteCount)

	_, err = svc.Details(context.Background(), 404)
	assert.True(t, domain.IsNotFound(err))
}

func TestDocsService_GenerateTripSheet(t *testing.T) {
	_, trips := colomboKandy()
	svc := DocsService{Trips: trips, Votes: &fakeVotes{}}

	pdf, name, err := svc.GenerateTripSheet(context.Background(), 10)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	assert.Equal(t, "TRIP_10_Colombo_Kandy.pdf", name)
}

func TestDocsService_SheetWithoutJoins(t *testing.T) {
	trips := &fakeTrips{records: []models.TripRecord{{Trip: models.Trip{ID: 30, DepartureTime: "07:00:00"}}}}
	svc := DocsService{Trips: trips, Votes: &fakeVotes{}}

	pdf, name, err := svc.GenerateTripSheet(context.Background(), 30)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "TRIP_30_NA.pdf", name)
}

func TestServiceLabel(t *testing.T) {
	semi, empty, yes := "Semi Luxury", " ", true
	assert.Equal(t, "Semi Luxury", serviceLabel(models.DisplayTrip{ServiceType: &semi}))
	assert.Equal(t, "Highway", serviceLabel(models.DisplayTrip{ServiceType: &empty, Highway: &yes}))
	assert.Equal(t, "Normal", serviceLabel(models.DisplayTrip{}))
}

func TestSafeFilenamePart(t *testing.T) {
	assert.Equal(t, "NA", safeFilenamePart("_"))
	assert.Equal(t, "Nuwara_Eliya_Badulla", safeFilenamePart("Nuwara Eliya_Badulla"))
	assert.Len(t, safeFilenamePart("abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyz"), 40)
}

func TestSafeFilenamePart_KeepsRunesWhole(t *testing.T) {
	in := strings.Repeat("a", 39) + "කොළඹ_මහනුවර"

	got := safeFilenamePart(in)

	assert.True(t, utf8.ValidString(got), "truncated name must stay valid UTF-8: %q", got)
	assert.Equal(t, strings.Repeat("a", 39), got)

	tamil := safeFilenamePart("யாழ்ப்பாணம்_திருகோணமலை_மட்டக்களப்பு")
	assert.True(t, utf8.ValidString(tamil))
	assert.LessOrEqual(t, len(tamil), maxFilenamePart)
}
