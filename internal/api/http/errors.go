package http

import (
	"errors"
	"net/http"
	"time"

	"mountainride-backend/internal/domain"
	"mountainride-backend/internal/logger"
	"mountainride-backend/internal/security"
	"mountainride-backend/internal/service"
)

var (
	errUnauthenticated = errors.New("authorization token is not provided")
	errForbidden       = errors.New("admin role required")
)

// errorResponse is the body of every non-2xx response
type errorResponse struct {
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
	Status    int    `json:"status"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrSearchEmpty):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, errUnauthenticated),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken):
		return http.StatusUnauthorized
	case errors.Is(err, errForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		message = "internal server error"
	}

	writeJSON(w, status, errorResponse{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Message:   message,
		Status:    status,
	})
}
