package middleware

import (
	"net/http"
	"time"

	"github.com/2beens/gyminsights/internal/auth"

	log "github.com/sirupsen/logrus"
)

// LogRequest logs every served request at debug level.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			begin := time.Now()
			resp := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(resp, r)

			log.WithFields(log.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   resp.statusCode,
				"duration": time.Since(begin).String(),
				"ua":       r.Header.Get("User-Agent"),
			}).Debug("request served")
		})
	}
}

// userLogFields is for handlers logging on behalf of the acting user.
func userLogFields(r *http.Request) log.Fields {
	return log.Fields{
		"path":    r.URL.Path,
		"user_id": auth.UserIDFromContext(r.Context()),
	}
}
