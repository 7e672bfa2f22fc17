package middleware

import (
	"net/http"

	apperrors "lumis/pkg/errors"
)

// MaxRequestSize caps request bodies at limit bytes. Handlers see an error
// from the body reader once the limit is crossed.
func MaxRequestSize(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				writeError(w, r, apperrors.New(apperrors.CodePayloadTooLarge, "Request body too large", http.StatusRequestEntityTooLarge))
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
