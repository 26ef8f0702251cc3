package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"qanda-service/internal/logging"
	"qanda-service/internal/server/auth"
	"qanda-service/internal/server/models"
)

type ctxKey int

const (
	sessionKey ctxKey = iota
	requestIDKey
)

// SessionFromContext returns the session injected by the auth middleware.
func SessionFromContext(ctx context.Context) (*models.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*models.Session)
	return s, ok
}

// RequestIDFromContext returns the request id assigned by the logging
// middleware, or an empty string outside of a request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRequestLog tags every request with a uuid and logs method, path,
// status and duration once the handler returns.
func withRequestLog(logger logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		ctx := context.WithValue(r.Context(), requestIDKey, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r.WithContext(ctx))

		logger.Info(ctx, "request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// withSession authenticates the request through the guard and injects the
// resulting session. Requests without a valid token never reach the
// wrapped handler.
func withSession(guard *auth.Guard, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := guard.Authorize(r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), sessionKey, session)
		next(w, r.WithContext(ctx))
	}
}
