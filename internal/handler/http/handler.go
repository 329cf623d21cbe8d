// Package http implements the HTTP transport layer of the siteadmin
// service. It provides middleware, route handlers, and request/response
// utilities for the admin API. Authentication, tracing, and request logging
// are handled at this layer before requests reach the service layer.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/oakmount/siteadmin/internal/logger"
	"github.com/oakmount/siteadmin/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// writeJSON serializes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// headers are already sent; an encode failure here is unrecoverable
	_ = json.NewEncoder(w).Encode(v)
}
