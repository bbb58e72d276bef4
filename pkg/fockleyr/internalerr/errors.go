package internalerr

import "errors"

// Sentinel errors for common cases. The parsing core itself never raises;
// these belong to the store and config surfaces.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid configuration")
)
