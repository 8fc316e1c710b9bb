package rest

import (
	"net/http"
	"time"

	"househunt-service/internal/constants"
	"househunt-service/internal/contextkeys"
	"househunt-service/internal/core/port"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// LoggerMiddleware кладет в контекст логгер с trace_id и пишет начало и конец запроса
func LoggerMiddleware(logger port.LoggerPort) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(constants.HeaderXTraceID)
			if _, err := uuid.Parse(traceID); err != nil {
				traceID = uuid.New().String()
			}

			// use case'ы и репозитории получают логгер только с trace_id
			coreLogger := logger.WithFields(port.Fields{"trace_id": traceID})
			httpLogger := coreLogger.WithFields(port.Fields{
				"http_method": r.Method,
				"http_path":   r.URL.Path,
				"remote_addr": r.RemoteAddr,
			})

			ctx := contextkeys.ContextWithLogger(r.Context(), coreLogger)
			ctx = contextkeys.ContextWithTraceID(ctx, traceID)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ww.Header().Set(constants.HeaderXTraceID, traceID)
			startTime := time.Now()

			httpLogger.Debug("Request started", nil)

			next.ServeHTTP(ww, r.WithContext(ctx))

			fields := port.Fields{
				"status_code":   ww.Status(),
				"bytes_written": ww.BytesWritten(),
				"duration_ms":   time.Since(startTime).Milliseconds(),
			}
			if ww.Status() >= http.StatusInternalServerError {
				httpLogger.Warn("Request finished", fields)
				return
			}
			httpLogger.Info("Request finished", fields)
		})
	}
}
