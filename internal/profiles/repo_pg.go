package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"resume-matcher/internal/parse"
)

// PGRepo implements Repo using Postgres. The parsed record is stored as a
// JSONB payload; the heuristics evolve more often than the schema should.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new profile.
func (r *PGRepo) Create(ctx context.Context, profile Profile) error {
	const query = `
INSERT INTO profiles (id, client_id, file_name, profile, created_at)
VALUES ($1, $2, $3, $4, $5)`

	payload, err := json.Marshal(profile.Resume)
	if err != nil {
		return fmt.Errorf("marshal profile %s: %w", profile.ID, err)
	}
	_, err = r.DB.ExecContext(ctx, query,
		profile.ID,
		profile.ClientID,
		profile.FileName,
		payload,
		profile.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert profile %s: %w", profile.ID, err)
	}
	return nil
}

// GetByID returns a profile by ID for a client.
func (r *PGRepo) GetByID(ctx context.Context, clientID, profileID string) (Profile, error) {
	const query = `
SELECT id, client_id, file_name, profile, created_at
FROM profiles
WHERE client_id = $1 AND id = $2`

	row := r.DB.QueryRowContext(ctx, query, clientID, profileID)
	profile, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, ErrNotFound
	}
	return profile, err
}

// ListByClient returns profiles for a client, newest first.
func (r *PGRepo) ListByClient(ctx context.Context, clientID string, limit, offset int) ([]Profile, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	const query = `
SELECT id, client_id, file_name, profile, created_at
FROM profiles
WHERE client_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, clientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	out := []Profile{}
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, profile)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (Profile, error) {
	var profile Profile
	var payload []byte
	if err := row.Scan(&profile.ID, &profile.ClientID, &profile.FileName, &payload, &profile.CreatedAt); err != nil {
		return Profile{}, err
	}
	var resume parse.ResumeProfile
	if err := json.Unmarshal(payload, &resume); err != nil {
		return Profile{}, fmt.Errorf("unmarshal profile %s: %w", profile.ID, err)
	}
	profile.Resume = resume
	return profile, nil
}
