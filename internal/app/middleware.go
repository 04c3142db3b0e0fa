package app

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/weekendguide/berlin/internal/config"
	"github.com/weekendguide/berlin/internal/rest"
	"github.com/weekendguide/berlin/internal/utils"
	"github.com/weekendguide/berlin/pkg/favorites"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies) {
	r.Use(requestLogger)

	// Attach the client's favorites storage for downstream services
	if deps.Storage != nil {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				storage, err := deps.Storage(w, req)
				if err != nil {
					log.Errorf("failed to open favorites storage: %v", err)
					rest.WriteError(w, http.StatusInternalServerError, "Storage unavailable", err.Error())
					return
				}
				next.ServeHTTP(w, req.WithContext(favorites.WithStorage(req.Context(), storage)))
			})
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   recorder.status,
			"duration": time.Since(start),
		}).Debug("request handled")
	})
}

// sessionStorage scopes a shared server-side storage to the session named by
// a cookie, issuing a new session id when the cookie is missing or malformed.
func sessionStorage(shared favorites.Storage, cfg config.Favorites, clock utils.Clock) StorageProvider {
	return func(w http.ResponseWriter, r *http.Request) (favorites.Storage, error) {
		sessionID := ""
		if cookie, err := r.Cookie(cfg.SessionCookie); err == nil {
			if id, err := uuid.Parse(cookie.Value); err == nil {
				sessionID = id.String()
			}
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
			log.Debugf("starting favorites session %s", sessionID)
		}

		// refreshed on every request so the session lives as long as its data
		http.SetCookie(w, &http.Cookie{
			Name:     cfg.SessionCookie,
			Value:    sessionID,
			Path:     cfg.Path,
			Expires:  clock.Now().Add(cfg.Retention).UTC(),
			MaxAge:   int(cfg.Retention.Seconds()),
			Secure:   cfg.Secure,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return favorites.Scope(shared, sessionID), nil
	}
}
