package http

import (
	"errors"
	"net/http"

	"logistics/internal/pkg/errs"
)

// ErrorResponse is the JSON body returned on request failure.
type ErrorResponse struct {
	Message string `json:"message"`
}

func errorBody(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}

// statusFor maps the core error taxonomy onto HTTP status codes. Tenant
// and security violations both surface as 403 so a cross-tenant probe
// cannot distinguish "wrong tenant" from "missing role".
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrAuthenticationMalformed):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrSecurityViolation), errors.Is(err, errs.ErrTenantViolation):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrBusinessRuleViolation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(err error) (int, ErrorResponse) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		// Internal detail stays in the logs.
		return status, errorBody("internal error")
	}
	return status, errorBody(err.Error())
}
