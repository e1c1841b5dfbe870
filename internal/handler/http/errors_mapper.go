package http

import (
	"net/http"

	"github.com/MKhiriev/go-engineer-hub/internal/logger"
	"github.com/MKhiriev/go-engineer-hub/internal/service"
	"github.com/MKhiriev/go-engineer-hub/internal/store"
	"github.com/MKhiriev/go-engineer-hub/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrWrongOldPassword:    http.StatusBadRequest,
	service.ErrSelfFollow:          http.StatusBadRequest,
	service.ErrNothingToUpdate:     http.StatusBadRequest,
	ErrInvalidRequestBody:          http.StatusBadRequest,
	ErrUploadTooLarge:              http.StatusRequestEntityTooLarge,

	service.ErrWrongPassword: http.StatusUnauthorized,
	service.ErrInvalidToken:  http.StatusUnauthorized,

	service.ErrInvalidRefreshToken: http.StatusForbidden,

	store.ErrNoUserWasFound: http.StatusNotFound,
	store.ErrPostNotFound:   http.StatusNotFound,

	store.ErrUserAlreadyExists: http.StatusConflict,

	service.ErrMediaUploadFailed:   http.StatusInternalServerError,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrExecutingStatement:    http.StatusInternalServerError,
	store.ErrScanningRow:           http.StatusInternalServerError,
	store.ErrScanningRows:          http.StatusInternalServerError,
}

// statusFromError walks the error tree of err depth-first, outermost error
// first, and returns the status of the first sentinel listed in
// errorStatusMap together with that sentinel. Unknown errors map to 500 and
// a nil sentinel.
func statusFromError(err error) (int, error) {
	if err == nil {
		return http.StatusInternalServerError, nil
	}

	for target, status := range errorStatusMap {
		if err == target {
			return status, target
		}
	}

	switch e := err.(type) {
	case interface{ Unwrap() error }:
		return statusFromError(e.Unwrap())
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			if status, target := statusFromError(inner); target != nil {
				return status, target
			}
		}
	}

	return http.StatusInternalServerError, nil
}

// errorMessage is the client-facing text for err: the message of the matched
// sentinel for 4xx answers, the generic status text otherwise.
func errorMessage(status int, target error) string {
	if target == nil || status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return target.Error()
}

// writeError logs err with the request logger and answers with the status
// and message derived from it.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, target := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteMessage(w, errorMessage(status, target), status)
}
