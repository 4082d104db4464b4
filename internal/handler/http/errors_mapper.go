package http

import (
	"errors"
	"net/http"

	"github.com/nmaksimov/userdir/internal/service"
	"github.com/nmaksimov/userdir/internal/store"
	"github.com/nmaksimov/userdir/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidYears:            http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusBadRequest,
	service.ErrUnauthorized:            http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrForbidden:               http.StatusForbidden,

	validators.ErrInvalidLogin:    http.StatusBadRequest,
	validators.ErrInvalidPassword: http.StatusBadRequest,
	validators.ErrInvalidName:     http.StatusBadRequest,
	validators.ErrEmptyBatch:      http.StatusBadRequest,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
