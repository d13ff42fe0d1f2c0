package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/teresa-solution/rental-management-service/internal/service"
	"github.com/teresa-solution/rental-management-service/internal/validate"
)

// Response is the standard envelope for error cases. Success responses
// return the projected entity (or a list) directly.
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON writes a JSON-encoded response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any error into the standard envelope.
func GeneralError(err error) Response {
	return Response{Status: StatusError, Error: err.Error()}
}

// PayloadError converts validator field errors on a request payload into
// a single readable envelope.
func PayloadError(errs validator.ValidationErrors) Response {
	var msgs []string
	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", e.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}
	return Response{Status: StatusError, Error: strings.Join(msgs, ", ")}
}

// WriteError maps core and service errors to HTTP status codes:
// ValidationError -> 400, not found -> 404, bad credentials -> 401,
// anything else -> 500 without leaking internals.
func WriteError(w http.ResponseWriter, err error) {
	var verr *validate.ValidationError
	switch {
	case errors.As(err, &verr):
		WriteJSON(w, http.StatusBadRequest, GeneralError(verr))
	case errors.Is(err, service.ErrNotFound):
		WriteJSON(w, http.StatusNotFound, GeneralError(err))
	case errors.Is(err, service.ErrInvalidCredentials):
		WriteJSON(w, http.StatusUnauthorized, GeneralError(err))
	default:
		WriteJSON(w, http.StatusInternalServerError,
			GeneralError(errors.New("internal server error")))
	}
}
