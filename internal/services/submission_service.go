package services

import (
	"context"
	"fmt"
	"strings"

	"highwaybus/internal/domain"
	"highwaybus/internal/domain/models"
	"highwaybus/internal/utils"
)

type SuggestionService struct {
	Repo      SuggestionInserter
	RequestID string
}

// SuggestionResult carries the form as it should look after submission.
type SuggestionResult struct {
	ID      int64                  `json:"id,omitempty"`
	Message string                 `json:"message,omitempty"`
	Form    models.RouteSuggestion `json:"form"`
}

// Submit validates start/end, then inserts once. On success only the
// origin and destination stay filled in.
func (s SuggestionService) Submit(ctx context.Context, form models.RouteSuggestion) (SuggestionResult, error) {
	form.StartLocation = strings.TrimSpace(form.StartLocation)
	form.EndLocation = strings.TrimSpace(form.EndLocation)
	form.PreferredTime = strings.TrimSpace(form.PreferredTime)
	form.Notes = strings.TrimSpace(form.Notes)
	form.ContactEmail = strings.TrimSpace(form.ContactEmail)
	form.ID = 0

	if err := validateForm(form); err != nil {
		return SuggestionResult{Form: form}, err
	}

	id, err := s.Repo.Insert(ctx, form)
	if err != nil {
		utils.LogError(s.RequestID, "suggestion", "insert", err)
		return SuggestionResult{Message: domain.MsgSuggestionFailed, Form: form},
			domain.PersistError{Op: "route_suggestion", Msg: domain.MsgSuggestionFailed, Err: err}
	}

	utils.LogEvent(s.RequestID, "suggestion", "insert", fmt.Sprintf("id=%d", id))
	return SuggestionResult{
		ID:      id,
		Message: domain.MsgSuggestionSaved,
		Form: models.RouteSuggestion{
			StartLocation: form.StartLocation,
			EndLocation:   form.EndLocation,
		},
	}, nil
}

type FeedbackService struct {
	Repo      FeedbackInserter
	RequestID string
}

type FeedbackResult struct {
	ID      int64               `json:"id,omitempty"`
	Message string              `json:"message,omitempty"`
	Form    models.TripFeedback `json:"form"`
}

// Submit requires the usefulness flag, then inserts once. On success the comment is cleared.
func (s FeedbackService) Submit(ctx context.Context, form models.TripFeedback) (FeedbackResult, error) {
	form.Comment = strings.TrimSpace(form.Comment)
	form.ID = 0

	if err := validateForm(form); err != nil {
		return FeedbackResult{Form: form}, err
	}

	id, err := s.Repo.Insert(ctx, form)
	if err != nil {
		utils.LogError(s.RequestID, "feedback", "insert", err)
		return FeedbackResult{Message: domain.MsgFeedbackFailed, Form: form},
			domain.PersistError{Op: "trip_feedback", Msg: domain.MsgFeedbackFailed, Err: err}
	}

	utils.LogEvent(s.RequestID, "feedback", "insert", fmt.Sprintf("id=%d trip_id=%d", id, form.TripID))
	cleared := form
	cleared.Comment = ""
	return FeedbackResult{ID: id, Message: domain.MsgFeedbackSaved, Form: cleared}, nil
}
