// Package common defines sentinel errors shared by the client and server
// layers of farmsync. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Local store errors.
	ErrStorageUnavailable = errors.New("local storage unavailable")
	ErrNotFound           = errors.New("not found")

	// Remote sink errors.
	ErrRemoteWriteFailed = errors.New("remote write failed")
	ErrUnavailable       = errors.New("server unavailable")
	ErrOffline           = errors.New("offline")

	// Validation errors.
	ErrInvalidOperationType = errors.New("invalid operation type")
	ErrValidation           = errors.New("validation error")
)
