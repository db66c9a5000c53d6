package services

import (
	"slices"

	"highwaybus/internal/domain/models"
)

// FormatDisplayTrip flattens a joined trip and its vote count into the display shape.
// A nil route or bus leaves the fields it would have supplied nil. Stops is never nil.
func FormatDisplayTrip(rec models.TripRecord, voteCount int) models.DisplayTrip {
	out := models.DisplayTrip{
		ID:            rec.ID,
		DepartureTime: rec.DepartureTime,
		ArrivalTime:   rec.ArrivalTime,
		Stops:         []string{},
		VoteCount:     voteCount,
	}

	if r := rec.Route; r != nil {
		out.StartLocation = ptr(r.StartLocation)
		out.EndLocation = ptr(r.EndLocation)
		out.Highway = ptr(r.Highway)
		out.RouteNumber = ptr(r.RouteNumber)
		out.Distance = ptr(r.Distance)
		out.ServiceType = ptr(r.ServiceType)
		out.Notes = ptr(r.Notes)
		if r.Price != nil {
			out.Price = ptr(*r.Price)
		}
		if len(r.Stops) > 0 {
			out.Stops = slices.Clone(r.Stops)
		}
	}

	if b := rec.Bus; b != nil {
		out.BusNumber = ptr(b.BusNumber)
		out.BusName = ptr(b.BusName)
		out.ContactNumber = ptr(b.ContactNumber)
	}

	return out
}

func ptr[T any](v T) *T {
	return &v
}
