package api

import (
	stdhttp "net/http"

	intconfig "highwaybus/internal/config"
	h "highwaybus/internal/http/handlers"
	"highwaybus/internal/http/middleware"
	"highwaybus/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func NewRouter(env intconfig.Env, store *session.Store, issuer session.Issuer) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warn().Err(err).Msg("failed to set trusted proxies")
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	h.SetSessions(store, issuer)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Search session
		api.POST("/session", h.CreateSession)
		withSession := api.Group("", middleware.SessionRequired(store, issuer))
		withSession.GET("/session", h.GetSessionState)
		withSession.POST("/session/locations", h.ReloadLocations)
		withSession.GET("/locations", h.GetLocations)
		withSession.POST("/search", h.Search)
		withSession.POST("/trips/:id/vote", h.Vote)

		// Trip details & feedback
		trips := api.Group("/trips")
		trips.GET("/:id", h.GetTripDetails)
		trips.GET("/:id/sheet", h.GetTripSheet)
		trips.POST("/:id/feedback", h.SubmitFeedback)

		// Suggestions
		api.POST("/suggestions", h.SubmitSuggestion)
	}

	h.SetRouter(r)
	return r
}
