package server

import (
	"errors"
	"net/http"

	"github.com/rgarza/folio/internal/core"
)

// errorText returns the body the auth pages display for a domain error.
// Unexpected errors get a generic body so data-layer details never leak.
func errorText(err error) string {
	switch {
	case errors.Is(err, core.ErrUserNotFound):
		return "User not found. Please try again."
	case errors.Is(err, core.ErrInvalidCredentials):
		return "Invalid password. Please try again."
	case errors.Is(err, core.ErrUsernameTaken):
		return "Username already taken."
	case errors.Is(err, core.ErrEmailRegistered):
		return "Email already exists."
	case errors.Is(err, core.ErrPasswordMismatch):
		return "Passwords do not match. Please try again."
	case errors.Is(err, core.ErrUsernameRequired),
		errors.Is(err, core.ErrEmailRequired),
		errors.Is(err, core.ErrPasswordRequired),
		errors.Is(err, core.ErrPasswordTooShort),
		errors.Is(err, core.ErrInvalidEmail),
		errors.Is(err, core.ErrNameRequired),
		errors.Is(err, core.ErrChecklistInvalid),
		errors.Is(err, core.ErrPortfolioInvalid):
		return err.Error()
	case errors.Is(err, core.ErrPortfolioNotFound):
		return "Portfolio not found."
	default:
		return "Something went wrong. Please try again."
	}
}

// mapErrorToStatus maps domain error types to HTTP status codes
func mapErrorToStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrInvalidCredentials),
		errors.Is(err, core.ErrInvalidToken),
		errors.Is(err, core.ErrSessionNotFound),
		errors.Is(err, core.ErrSessionExpired):
		return http.StatusUnauthorized

	case errors.Is(err, core.ErrUsernameTaken),
		errors.Is(err, core.ErrEmailRegistered),
		errors.Is(err, core.ErrPasswordMismatch),
		errors.Is(err, core.ErrUsernameRequired),
		errors.Is(err, core.ErrEmailRequired),
		errors.Is(err, core.ErrPasswordRequired),
		errors.Is(err, core.ErrPasswordTooShort),
		errors.Is(err, core.ErrInvalidEmail),
		errors.Is(err, core.ErrNameRequired),
		errors.Is(err, core.ErrChecklistInvalid),
		errors.Is(err, core.ErrPortfolioInvalid):
		return http.StatusBadRequest

	case errors.Is(err, core.ErrPortfolioNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}
