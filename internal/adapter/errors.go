package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrAccessDenied        = errors.New("access denied")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("config server internal error")
	ErrEmptyAddress        = errors.New("empty address")
)
