package profiles

import "context"

// defaultListLimit applies when a caller passes a non-positive limit, so
// every Repo implementation pages identically.
const defaultListLimit = 20

// Repo defines persistence operations for parsed profiles.
type Repo interface {
	Create(ctx context.Context, profile Profile) error
	GetByID(ctx context.Context, clientID, profileID string) (Profile, error)
	ListByClient(ctx context.Context, clientID string, limit, offset int) ([]Profile, error)
}
