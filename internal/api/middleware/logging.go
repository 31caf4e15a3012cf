package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Logging пишет строку лога на каждый запрос
func Logging(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			logger.Info("%s %s - %d (%s)", r.Method, r.URL.Path, rec.status, time.Since(start))
		})
	}
}
