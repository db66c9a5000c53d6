package models

// DisplayTrip is the flat, UI-facing projection of Trip + Route + Bus + Vote.
// Pointer fields come from the joined route or bus and stay nil when the join is absent.
type DisplayTrip struct {
	ID            int64    `json:"id"`
	StartLocation *string  `json:"startLocation,omitempty"`
	EndLocation   *string  `json:"endLocation,omitempty"`
	BusNumber     *string  `json:"busNumber,omitempty"`
	BusName       *string  `json:"busName,omitempty"`
	DepartureTime string   `json:"departureTime"`
	ArrivalTime   string   `json:"arrivalTime"`
	Highway       *bool    `json:"highway,omitempty"`
	RouteNumber   *string  `json:"routeNumber,omitempty"`
	Distance      *string  `json:"distance,omitempty"`
	ServiceType   *string  `json:"serviceType,omitempty"`
	ContactNumber *string  `json:"contactNumber,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	Stops         []string `json:"stops"`
	Notes         *string  `json:"notes,omitempty"`
	VoteCount     int      `json:"voteCount"`
}
