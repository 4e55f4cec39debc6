package utils

import "errors"

var (
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrBackendRejected    = errors.New("backend rejected request")
	ErrDecodeResponse     = errors.New("cannot decode backend response")
	ErrInvalidForm        = errors.New("invalid form")
	ErrPageNotFound       = errors.New("page not found")
)
