package core

import "errors"

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")            // 401 on login, 404 elsewhere
	ErrUsernameTaken      = errors.New("username already taken")    // 400
	ErrEmailRegistered    = errors.New("email already registered")  // 400
	ErrInvalidCredentials = errors.New("invalid password")          // 401
	ErrPasswordMismatch   = errors.New("passwords do not match")    // 400
)

// Session errors
var (
	ErrInvalidToken    = errors.New("invalid session token") // 401
	ErrSessionNotFound = errors.New("session not found")     // 401
	ErrSessionExpired  = errors.New("session expired")       // 401
	ErrCacheNotFound   = errors.New("session not found in cache")
)

// Validation errors (client input)
var (
	ErrUsernameRequired = errors.New("username is required")  // 400
	ErrEmailRequired    = errors.New("email is required")     // 400
	ErrPasswordRequired = errors.New("password is required")  // 400
	ErrPasswordTooShort = errors.New("password is too short") // 400
	ErrInvalidEmail     = errors.New("invalid email format")  // 400
)

// Document errors
var (
	ErrPortfolioNotFound = errors.New("portfolio not found")        // 404
	ErrChecklistNotFound = errors.New("checklist not found")        // internal, callers fall back to defaults
	ErrChecklistInvalid  = errors.New("invalid checklist body")     // 400
	ErrPortfolioInvalid  = errors.New("invalid portfolio body")     // 400
	ErrNameRequired      = errors.New("portfolio name is required") // 400
)
