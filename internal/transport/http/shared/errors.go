// Package shared maps service errors onto HTTP responses. Every
// handler funnels its failures through WriteError so the error
// taxonomy stays uniform across resources.
package shared

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"hrms/internal/domain/guard"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/validate"
)

const uniqueViolation = "23505"

func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())

	var verr *validate.Error
	if errors.As(err, &verr) {
		details := make(map[string]string, len(verr.Issues))
		for _, issue := range verr.Issues {
			details[issue.Field] = issue.Reason
		}
		api.FailWithDetails(w, http.StatusBadRequest, "validation_error", "validation failed", details, requestID)
		return
	}

	var nf *guard.NotFoundError
	if errors.As(err, &nf) {
		api.Fail(w, http.StatusNotFound, "not_found", nf.Error(), requestID)
		return
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		api.Fail(w, http.StatusConflict, "conflict", "a record with the same unique value already exists", requestID)
		return
	}

	slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "requestId", requestID, "err", err)
	api.Fail(w, http.StatusInternalServerError, "internal_error", "internal server error", requestID)
}

// WriteInvalidPayload is the response for request bodies that do not
// decode as JSON.
func WriteInvalidPayload(w http.ResponseWriter, r *http.Request) {
	api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
}
