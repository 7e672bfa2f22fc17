package middleware

import (
	"net/http"

	apperrors "lumis/pkg/errors"
	httputil "lumis/pkg/http"
)

// writeError answers in JSON when the client asked for it and in plain text
// otherwise, so browsers posting the form get a readable page.
func writeError(w http.ResponseWriter, r *http.Request, appErr *apperrors.AppError) {
	if httputil.WantsJSON(r) {
		_ = httputil.WriteError(w, appErr)
		return
	}
	http.Error(w, appErr.Message, appErr.StatusCode())
}
