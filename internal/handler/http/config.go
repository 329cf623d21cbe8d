package http

import (
	"encoding/json"
	"net/http"

	"github.com/oakmount/siteadmin/internal/logger"
	"github.com/oakmount/siteadmin/models"
)

// getConfig serves GET /admin/config?file=<pageKey>.
//
// The file query parameter defaults to "home" and must be one of the five
// managed page keys; anything else is rejected with 400 before storage is
// touched. Store failures surface as 500 with the underlying message — this
// is an internal admin tool and the operator wants the diagnostics.
func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	fileParam := r.URL.Query().Get("file")
	if fileParam == "" {
		fileParam = models.PageHome.String()
	}

	key, err := models.ParsePageKey(fileParam)
	if err != nil {
		log.Warn().Str("file", fileParam).Msg("request for unknown config key")
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid config key"})
		return
	}

	doc, err := h.services.ConfigService.Read(r.Context(), key)
	if err != nil {
		log.Err(err).Str("page", key.String()).Msg("error reading config")
		writeJSON(w, statusFromError(err), models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, models.ConfigResponse{Config: doc})
}

// updateConfig serves PUT /admin/config.
//
// The body must carry a content field (any JSON value); commit, commitMessage,
// and file are optional. Validation failures return 400 with field-level
// detail; a successful write reports whether a remote commit happened.
func (h *Handler) updateConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.UpdateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON in update config request")
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid JSON was passed"})
		return
	}

	key, details := req.Validate()
	if len(details) > 0 {
		log.Warn().Any("details", details).Msg("update config request failed validation")
		writeJSON(w, http.StatusBadRequest, models.ValidationError{
			Error:   "Validation failed",
			Details: details,
		})
		return
	}

	committed, err := h.services.ConfigService.Write(r.Context(), key, req.Content, req.Commit, req.CommitMessage)
	if err != nil {
		log.Err(err).Str("page", key.String()).Bool("commit", req.Commit).Msg("error writing config")
		writeJSON(w, statusFromError(err), models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, models.UpdateConfigResponse{OK: true, Committed: committed})
}
