package profiles

import "errors"

var (
	// ErrNotFound indicates the profile does not exist for the client.
	ErrNotFound = errors.New("profile not found")
	// ErrInvalidInput indicates a malformed request.
	ErrInvalidInput = errors.New("invalid input")
)
