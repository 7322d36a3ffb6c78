package matches

import "errors"

var (
	// ErrNotFound indicates the match does not exist for the client.
	ErrNotFound = errors.New("match not found")
	// ErrInvalidInput indicates a malformed request.
	ErrInvalidInput = errors.New("invalid input")
)
