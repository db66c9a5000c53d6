package handlers

import (
	"net/http"

	"highwaybus/internal/domain/models"
	"highwaybus/internal/http/middleware"
	"highwaybus/internal/repositories"
	"highwaybus/internal/services"

	"github.com/gin-gonic/gin"
)

func docsService(c *gin.Context) services.DocsService {
	return services.DocsService{
		Trips:     repositories.TripRepository{},
		Votes:     repositories.VoteRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/trips/:id
func GetTripDetails(c *gin.Context) {
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}
	trip, err := docsService(c).Details(c.Request.Context(), tripID)
	if err != nil {
		RespondDomainError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// GET /api/trips/:id/sheet (inline PDF)
func GetTripSheet(c *gin.Context) {
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}
	pdfBytes, filename, err := docsService(c).GenerateTripSheet(c.Request.Context(), tripID)
	if err != nil {
		RespondDomainError(c, err, nil)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

type feedbackRequest struct {
	Useful  *bool  `json:"useful"`
	Comment string `json:"comment"`
}

// POST /api/trips/:id/feedback
func SubmitFeedback(c *gin.Context) {
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}
	var req feedbackRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.FeedbackService{
		Repo:      repositories.FeedbackRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	res, err := svc.Submit(c.Request.Context(), models.TripFeedback{TripID: tripID, Useful: req.Useful, Comment: req.Comment})
	if err != nil {
		RespondDomainError(c, err, res)
		return
	}
	c.JSON(http.StatusCreated, res)
}
