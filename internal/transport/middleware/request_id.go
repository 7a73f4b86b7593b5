package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/xnillio/lexigraph/pkg/ctxutil"
)

// RequestID tags every request with an X-Request-Id, honoring one supplied by
// the caller and generating a UUID otherwise. The id is echoed in the
// response header and stored in the context for the request logger.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}
