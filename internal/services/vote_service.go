package services

import (
	"context"
	"fmt"

	"highwaybus/internal/domain"
	"highwaybus/internal/domain/models"
	"highwaybus/internal/utils"
)

// VoteService applies optimistic vote changes to a session and persists them.
type VoteService struct {
	Votes     VoteWriter
	RequestID string
}

// Cast adds delta to the displayed count of tripID, updates the session at once,
// then upserts the new count. A failed upsert keeps the local value and
// returns a PersistError; callers see the divergence until the next search.
func (s VoteService) Cast(ctx context.Context, sess *SearchSession, tripID int64, delta int) (models.DisplayTrip, error) {
	updated, err := sess.adjustVote(tripID, delta)
	if err != nil {
		return updated, err
	}

	utils.LogEvent(s.RequestID, "vote", "cast", fmt.Sprintf("trip_id=%d delta=%d count=%d", tripID, delta, updated.VoteCount))

	if err := s.Votes.Upsert(ctx, tripID, updated.VoteCount); err != nil {
		utils.LogError(s.RequestID, "vote", "upsert", err)
		sess.setVoteMessage(domain.MsgVoteFailed)
		return updated, domain.PersistError{Op: "vote", Msg: domain.MsgVoteFailed, Err: err}
	}

	sess.setVoteMessage("")
	return updated, nil
}
