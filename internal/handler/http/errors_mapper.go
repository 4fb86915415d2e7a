package http

import (
	"errors"
	"net/http"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/crypto"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/service"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrValidationInvalidParty: http.StatusBadRequest,
	service.ErrValidationNoContent:    http.StatusBadRequest,
	service.ErrValidationNoSummary:    http.StatusBadRequest,
	service.ErrValidationNoPayment:    http.StatusBadRequest,

	crypto.ErrMalformedEnvelope:    http.StatusBadRequest,
	crypto.ErrIntegrityFailure:     http.StatusUnprocessableEntity,
	crypto.ErrAuthenticationFailed: http.StatusUnprocessableEntity,
	crypto.ErrMissingMasterSecret:  http.StatusInternalServerError,

	store.ErrMessageNotFound:     http.StatusNotFound,
	store.ErrPostShareNotFound:   http.StatusNotFound,
	store.ErrTransactionNotFound: http.StatusNotFound,
	store.ErrMediaNotFound:       http.StatusNotFound,
	store.ErrDuplicateRecord:     http.StatusConflict,
	store.ErrMissingParent:       http.StatusUnprocessableEntity,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
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

// isDecryptError reports whether err is a broken-envelope failure, for which
// single-record reads still ship the placeholder view in the response body.
func isDecryptError(err error) bool {
	return errors.Is(err, crypto.ErrIntegrityFailure) ||
		errors.Is(err, crypto.ErrAuthenticationFailed) ||
		errors.Is(err, crypto.ErrMalformedEnvelope)
}
