package middleware

import (
	"io"
	"net/http"
)

// unread request bodies above this are not drained, the connection is dropped instead
const maxDrainBytes = 256 << 10

// DrainAndCloseRequest drains what is left of the request body, so the
// connection can be reused, and closes it.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body != nil {
				_, _ = io.Copy(io.Discard, io.LimitReader(r.Body, maxDrainBytes))
				_ = r.Body.Close()
			}
		})
	}
}
