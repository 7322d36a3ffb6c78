package profiles

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo, used when no database
// is configured.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Profile // clientID -> profiles
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Profile),
	}
}

// Create stores a profile for a client.
func (r *MemoryRepo) Create(ctx context.Context, profile Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[profile.ClientID] = append(r.data[profile.ClientID], profile)
	return nil
}

// GetByID returns a profile by ID for a client.
func (r *MemoryRepo) GetByID(ctx context.Context, clientID, profileID string) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.data[clientID] {
		if p.ID == profileID {
			return p, nil
		}
	}
	return Profile{}, ErrNotFound
}

// ListByClient returns profiles for a client, newest first, honoring
// limit/offset.
func (r *MemoryRepo) ListByClient(ctx context.Context, clientID string, limit, offset int) ([]Profile, error) {
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
		return []Profile{}, nil
	}

	out := make([]Profile, len(stored))
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
