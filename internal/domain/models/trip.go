package models

// Trip is one scheduled run of a route by a bus.
type Trip struct {
	ID            int64  `json:"id"`
	RouteID       int64  `json:"route_id"`
	BusID         int64  `json:"bus_id"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
}

// TripRecord is a trip row with its joined route and bus.
// Route or Bus is nil when the join found nothing.
type TripRecord struct {
	Trip
	Route *Route `json:"route,omitempty"`
	Bus   *Bus   `json:"bus,omitempty"`
}

// Vote mirrors the votes table; ID is the trip id.
type Vote struct {
	ID    int64 `json:"id"`
	Count int   `json:"count"`
}
