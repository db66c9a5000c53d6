package domain

// Selection is the origin/destination pair chosen in the search form.
type Selection struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// Complete reports whether both ends are chosen.
func (s Selection) Complete() bool {
	return s.Origin != "" && s.Destination != ""
}

// Messages shown next to the control that triggered them.
const (
	MsgLocationsFailed    = "Could not load locations. Please check your connection."
	MsgSearchFailed       = "Failed to fetch trips. Please try again."
	MsgNoTrips            = "No trips found for this route."
	MsgVoteFailed         = "Could not save your vote. Please try again."
	MsgSuggestionSaved    = "Thank you! Your route suggestion has been recorded."
	MsgSuggestionFailed   = "Could not send suggestion. Please try again."
	MsgFeedbackSaved      = "Thanks for your feedback!"
	MsgFeedbackFailed     = "Could not send feedback. Please try again."
	MsgSearchInProgress   = "A search is already in progress."
	MsgSomethingWentWrong = "Something went wrong. Please try again."
)
