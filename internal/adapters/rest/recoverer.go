package rest

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"househunt-service/internal/contextkeys"
	"househunt-service/internal/core/port"
)

// Recoverer перехватывает панику в хендлере и отвечает 500 в общем JSON-конверте
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			logger := contextkeys.LoggerFromContext(r.Context())
			logger.Error("Handler panicked", fmt.Errorf("panic: %v", rvr), port.Fields{
				"stack": string(debug.Stack()),
			})

			// для websocket-апгрейда заголовки уже не наши
			if r.Header.Get("Connection") != "Upgrade" {
				WriteJSONError(w, http.StatusInternalServerError, "internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
