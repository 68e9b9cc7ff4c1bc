package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooLarge            = errors.New("file is too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("analysis backend failed")
)

// ErrNoSessionCookie is returned when a login response carries no session
// cookie.
var ErrNoSessionCookie = errors.New("server did not issue a session cookie")
