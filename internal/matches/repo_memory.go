package matches

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Match // clientID -> matches
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Match),
	}
}

// Create stores a match for a client.
func (r *MemoryRepo) Create(ctx context.Context, m Match) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[m.ClientID] = append(r.data[m.ClientID], m)
	return nil
}

// GetByID returns a match by ID for a client.
func (r *MemoryRepo) GetByID(ctx context.Context, clientID, matchID string) (Match, error) {
	if err := ctx.Err(); err != nil {
		return Match{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.data[clientID] {
		if m.ID == matchID {
			return m, nil
		}
	}
	return Match{}, ErrNotFound
}

// ListByClient returns matches for a client, newest first.
func (r *MemoryRepo) ListByClient(ctx context.Context, clientID string, limit, offset int) ([]Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	r.mu.RLock()
	stored := r.data[clientID]
	r.mu.RUnlock()

	if len(stored) == 0 || offset >= len(stored) {
		return []Match{}, nil
	}

	out := make([]Match, len(stored))
	copy(out, stored)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	end := len(out)
	if offset+limit < end {
		end = offset + limit
	}
	return out[offset:end], nil
}
