package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CruiseBookingService/internal/api/handlers"
)

// Recover превращает панику обработчика в ответ 500
func Recover(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rv := recover(); rv != nil {
					if rv == http.ErrAbortHandler {
						panic(rv)
					}
					logger.Error("%s %s - panic: %v\n%s", r.Method, r.URL.Path, rv, debug.Stack())
					handlers.RespondInternalErrorWithDetails(w, fmt.Errorf("panic: %v", rv))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
