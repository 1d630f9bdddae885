package domain

import "errors"

var (
	ErrInvalidSettings  = errors.New("invalid settings")
	ErrTabNotFound      = errors.New("tab not found")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrUnknownEvent     = errors.New("unknown event")
)
