package handlers

import (
	"net/http"
	"strings"
	"sync"
	"time"

	intconfig "highwaybus/internal/config"
	"highwaybus/internal/domain"
	"highwaybus/internal/http/middleware"
	"highwaybus/internal/repositories"
	"highwaybus/internal/services"
	"highwaybus/internal/session"

	"github.com/gin-gonic/gin"
)

var (
	sessionsMu sync.RWMutex
	sessions   *session.Store
	issuer     session.Issuer
)

// SetSessions wires the session store and token issuer used by the session handlers.
func SetSessions(store *session.Store, iss session.Issuer) {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()
	sessions = store
	issuer = iss
}

func sessionDeps() (*session.Store, session.Issuer) {
	sessionsMu.RLock()
	defer sessionsMu.RUnlock()
	return sessions, issuer
}

func locationService(c *gin.Context) services.LocationService {
	return services.LocationService{
		Repo:      repositories.RouteRepository{},
		Cache:     intconfig.LocationCache(),
		RequestID: middleware.GetRequestID(c),
	}
}

type sessionResponse struct {
	Token     string                   `json:"token"`
	ExpiresAt time.Time                `json:"expiresAt"`
	Session   services.SessionSnapshot `json:"session"`
}

// POST /api/session
// Creates a search session and builds its location index. The token is issued
// before the session is stored, so a signing failure leaves nothing behind.
// A failed index load still yields a session; the snapshot carries the message
// and empty dropdowns.
func CreateSession(c *gin.Context) {
	store, iss := sessionDeps()
	if store == nil {
		respondError(c, http.StatusServiceUnavailable, "sessions_unavailable", "session store not ready", nil)
		return
	}

	id := session.NewID()
	token, exp, err := iss.Issue(id)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "could not issue session token", Err: err}, nil)
		return
	}

	sess := store.Add(id)
	ix, err := locationService(c).Load(c.Request.Context())
	sess.SetLocations(ix, err)

	c.JSON(http.StatusCreated, sessionResponse{Token: token, ExpiresAt: exp, Session: sess.Snapshot()})
}

// GET /api/session
func GetSessionState(c *gin.Context) {
	sess := middleware.GetSession(c)
	c.JSON(http.StatusOK, sess.Snapshot())
}

// POST /api/session/locations
// Explicit user-triggered reload of the location index.
func ReloadLocations(c *gin.Context) {
	sess := middleware.GetSession(c)
	ix, err := locationService(c).Load(c.Request.Context())
	sess.SetLocations(ix, err)
	if err != nil {
		RespondDomainError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, sess.Snapshot())
}

type locationsResponse struct {
	services.Dropdowns
	Message string `json:"message,omitempty"`
}

// GET /api/locations?origin=&destination=
func GetLocations(c *gin.Context) {
	sess := middleware.GetSession(c)
	sel := domain.Selection{
		Origin:      strings.TrimSpace(c.Query("origin")),
		Destination: strings.TrimSpace(c.Query("destination")),
	}
	dd, msg := sess.Dropdowns(sel)
	c.JSON(http.StatusOK, locationsResponse{Dropdowns: dd, Message: msg})
}
