package handler

import (
	"net/http"

	"lumis/pkg/middleware"
)

func requestID(r *http.Request) string {
	return middleware.RequestID(r.Context())
}
