package http

import (
	"errors"
	"net/http"

	"github.com/oakmount/siteadmin/internal/service"
	"github.com/oakmount/siteadmin/models"
)

// errorStatusMap translates service- and model-level sentinel errors into
// HTTP status codes. Store-level failures (local I/O, parse, remote read and
// write errors) deliberately stay off this map: they all map to 500 with the
// underlying message surfaced for diagnostics.
var errorStatusMap = map[error]int{
	service.ErrInvalidConfigKey: http.StatusBadRequest,
	service.ErrInvalidDocument:  http.StatusBadRequest,
	models.ErrUnknownPageKey:    http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
