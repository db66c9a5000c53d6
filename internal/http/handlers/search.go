package handlers

import (
	"net/http"

	"highwaybus/internal/domain"
	"highwaybus/internal/http/middleware"
	"highwaybus/internal/repositories"
	"highwaybus/internal/services"

	"github.com/gin-gonic/gin"
)

type searchRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// POST /api/search
func Search(c *gin.Context) {
	var req searchRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	sess := middleware.GetSession(c)
	svc := services.SearchService{
		Routes:    repositories.RouteRepository{},
		Trips:     repositories.TripRepository{},
		Votes:     repositories.VoteRepository{},
		RequestID: middleware.GetRequestID(c),
	}

	res, err := svc.Search(c.Request.Context(), sess, domain.Selection{Origin: req.Origin, Destination: req.Destination})
	if err != nil {
		RespondDomainError(c, err, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

type voteRequest struct {
	Delta *int `json:"delta"`
}

// POST /api/trips/:id/vote
// The session's list is updated before the upsert runs and is not rolled back
// if it fails; the 502 body still carries the optimistic trip.
func Vote(c *gin.Context) {
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}
	var req voteRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Delta == nil {
		RespondDomainError(c, domain.ValidationError{Field: "delta", Msg: "is required"}, nil)
		return
	}

	sess := middleware.GetSession(c)
	svc := services.VoteService{
		Votes:     repositories.VoteRepository{},
		RequestID: middleware.GetRequestID(c),
	}

	trip, err := svc.Cast(c.Request.Context(), sess, tripID, *req.Delta)
	if err != nil {
		if domain.IsPersist(err) {
			RespondDomainError(c, err, gin.H{"trip": trip})
			return
		}
		RespondDomainError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": trip})
}
