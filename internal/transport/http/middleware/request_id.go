package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"ponto/internal/platform/requestctx"
)

// maxRequestIDLen bounds caller-supplied ids so log lines stay parseable.
const maxRequestIDLen = 64

// RequestID honors a caller-supplied X-Request-ID when it is sane, minting a
// fresh uuid otherwise, and echoes the id on the response so a terminal can
// correlate a rejected punch with the server log.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" || len(reqID) > maxRequestIDLen {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r.WithContext(requestctx.WithRequestID(r.Context(), reqID)))
	})
}

func GetRequestID(ctx context.Context) string {
	return requestctx.GetRequestID(ctx)
}
