package http

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/oakmount/siteadmin/internal/logger"
	"github.com/oakmount/siteadmin/models"
)

// basicAuth is an HTTP middleware that gates the admin routes behind HTTP
// Basic authentication.
//
// It extracts the "Authorization" header, decodes the Basic payload, and
// checks the pair against the credential mapping loaded at startup. The gate
// is stateless: no session or token is issued and every request is
// re-checked.
//
// Every rejection — missing header, wrong scheme, malformed base64, unknown
// user, wrong password — produces the identical 401 response, so the client
// learns nothing about which part failed. The specific cause is logged via
// the request-scoped logger.
func (h *Handler) basicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		username, password, err := parseBasicAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			writeUnauthorized(w)
			return
		}

		if !h.services.AuthService.Authenticate(username, password) {
			log.Warn().Str("username", username).Msg("admin credentials rejected")
			writeUnauthorized(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// parseBasicAuthHeader extracts the username and password from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Basic <base64 of user:pass>
//
// It returns the following sentinel errors:
//   - [ErrEmptyAuthorizationHeader] — the header is absent.
//   - [ErrNotBasicScheme] — the header uses a different scheme.
//   - [ErrMalformedBasicCredentials] — the payload is not base64 or does
//     not decode to a colon-separated pair.
func parseBasicAuthHeader(authHeader string) (string, string, error) {
	if authHeader == "" {
		return "", "", ErrEmptyAuthorizationHeader
	}

	scheme, payload, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Basic") {
		return "", "", ErrNotBasicScheme
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return "", "", ErrMalformedBasicCredentials
	}

	username, password, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", "", ErrMalformedBasicCredentials
	}

	return username, password, nil
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="siteadmin"`)
	writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
}
