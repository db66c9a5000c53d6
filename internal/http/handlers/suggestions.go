package handlers

import (
	"net/http"

	"highwaybus/internal/domain/models"
	"highwaybus/internal/http/middleware"
	"highwaybus/internal/repositories"
	"highwaybus/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/suggestions
func SubmitSuggestion(c *gin.Context) {
	var form models.RouteSuggestion
	if !BindJSONOrError(c, &form) {
		return
	}

	svc := services.SuggestionService{
		Repo:      repositories.SuggestionRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	res, err := svc.Submit(c.Request.Context(), form)
	if err != nil {
		RespondDomainError(c, err, res)
		return
	}
	c.JSON(http.StatusCreated, res)
}
