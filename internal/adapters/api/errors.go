package api

import "errors"

// Sentinel kinds for API client errors.
var (
	ErrRequest  = errors.New("api request failed")
	ErrStatus   = errors.New("unexpected api status")
	ErrNotFound = errors.New("resource not found")
	ErrDecode   = errors.New("decode api response failed")
)
