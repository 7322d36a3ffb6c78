package matches

import "context"

// defaultListLimit applies when a caller passes a non-positive limit, so
// every Repo implementation pages identically.
const defaultListLimit = 20

// Repo defines persistence operations for match reports.
type Repo interface {
	Create(ctx context.Context, m Match) error
	GetByID(ctx context.Context, clientID, matchID string) (Match, error)
	ListByClient(ctx context.Context, clientID string, limit, offset int) ([]Match, error)
}
