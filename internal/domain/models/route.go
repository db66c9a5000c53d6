package models

// Route is reference data: one origin/destination pair with its static attributes.
type Route struct {
	ID            int64    `json:"id"`
	StartLocation string   `json:"start_location"`
	EndLocation   string   `json:"end_location"`
	RouteNumber   string   `json:"route_number"`
	Distance      string   `json:"distance"`
	Price         *float64 `json:"price,omitempty"`
	ServiceType   string   `json:"service_type"`
	Highway       bool     `json:"highway"`
	Notes         string   `json:"notes"`
	Stops         []string `json:"stops"`
}

// RoutePair is the start/end projection used to build the location dropdowns.
type RoutePair struct {
	StartLocation string `json:"start_location"`
	EndLocation   string `json:"end_location"`
}
