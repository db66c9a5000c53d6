package services

import (
	"errors"

	"highwaybus/internal/domain"
	"highwaybus/internal/domain/models"
)

var (
	errBackend     = errors.New("backend unavailable")
	errTripMissing = domain.NotFoundError{Resource: "trip"}
)

func price(v float64) *float64 { return &v }

func colomboKandy() (*fakeRoutes, *fakeTrips) {
	routes := &fakeRoutes{routes: []models.Route{
		{ID: 1, StartLocation: "Colombo", EndLocation: "Kandy", RouteNumber: "1", Highway: true, Price: price(850), Stops: []string{"Kadawatha", "Kegalle"}},
		{ID: 2, StartLocation: "Colombo", EndLocation: "Kandy", RouteNumber: "1/245", ServiceType: "Semi Luxury"},
		{ID: 3, StartLocation: "Colombo", EndLocation: "Galle", RouteNumber: "2"},
	}}
	trips := &fakeTrips{records: []models.TripRecord{
		// returned in departure order, as the repository query does
		{
			Trip:  models.Trip{ID: 20, RouteID: 2, BusID: 7, DepartureTime: "06:00", ArrivalTime: "09:15"},
			Route: &routes.routes[1],
			Bus:   &models.Bus{ID: 7, BusNumber: "NB-4521", BusName: "Rajarata Express", ContactNumber: "0771234567"},
		},
		{
			Trip:  models.Trip{ID: 10, RouteID: 1, BusID: 8, DepartureTime: "09:30", ArrivalTime: "12:00"},
			Route: &routes.routes[0],
			Bus:   &models.Bus{ID: 8, BusNumber: "NC-1100", BusName: "Hill Line"},
		},
		{
			Trip:  models.Trip{ID: 30, RouteID: 3, DepartureTime: "07:00"},
			Route: &routes.routes[2],
		},
	}}
	return routes, trips
}
