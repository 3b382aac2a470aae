package http

import (
	"errors"
	"net/http"

	"github.com/avelichko/notekeeper/internal/service"
	"github.com/avelichko/notekeeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrUnauthorized:        http.StatusUnauthorized,
	service.ErrSessionInvalid:      http.StatusUnauthorized,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	store.ErrUserNotFound: http.StatusNotFound,
	store.ErrNoteNotFound: http.StatusNotFound,

	store.ErrUsernameExists: http.StatusConflict,
	store.ErrEmailExists:    http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
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
