package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrNilQueryInput      = errors.New("query options is nil")
	ErrInvalidLogType     = errors.New("invalid audit log type")
	ErrInvalidLevel       = errors.New("invalid audit log level")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")
)
