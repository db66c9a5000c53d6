package models

// RouteSuggestion is a user-submitted candidate route. Write-only.
type RouteSuggestion struct {
	ID            int64  `json:"id,omitempty"`
	StartLocation string `json:"startLocation" validate:"required"`
	EndLocation   string `json:"endLocation" validate:"required"`
	PreferredTime string `json:"preferredTime"`
	Notes         string `json:"notes"`
	ContactEmail  string `json:"contactEmail"`
}

// TripFeedback is a usefulness rating for one trip. Write-only.
type TripFeedback struct {
	ID      int64  `json:"id,omitempty"`
	TripID  int64  `json:"tripId" validate:"gt=0"`
	Useful  *bool  `json:"useful" validate:"required"`
	Comment string `json:"comment"`
}
