package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/clients-api/internal/api/shared"
	"github.com/phrazzld/clients-api/internal/platform/logger"
)

// Recover turns a handler panic into a 500 error envelope so that a single
// bad request never takes the process down. http.ErrAbortHandler is re-raised
// as net/http expects.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			logger.FromContext(r.Context()).Error("panic recovered",
				"panic", fmt.Sprint(rvr),
				"stack", string(debug.Stack()))

			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				"Internal server error", fmt.Errorf("panic: %v", rvr))
		}()

		next.ServeHTTP(w, r)
	})
}
