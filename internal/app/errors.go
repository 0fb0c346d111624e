package app

import "errors"

// Sentinel kinds for controller errors.
var (
	ErrNotAuthorized = errors.New("role not authorized")
)
