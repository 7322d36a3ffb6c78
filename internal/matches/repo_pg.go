package matches

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"resume-matcher/internal/match"
	"resume-matcher/internal/parse"
)

// PGRepo implements Repo using Postgres with JSONB payloads.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new match record.
func (r *PGRepo) Create(ctx context.Context, m Match) error {
	const query = `
INSERT INTO matches (id, client_id, profile_id, job, report, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	jobPayload, err := json.Marshal(m.Job)
	if err != nil {
		return fmt.Errorf("marshal job for match %s: %w", m.ID, err)
	}
	reportPayload, err := json.Marshal(m.Report)
	if err != nil {
		return fmt.Errorf("marshal report for match %s: %w", m.ID, err)
	}
	_, err = r.DB.ExecContext(ctx, query,
		m.ID,
		m.ClientID,
		m.ProfileID,
		jobPayload,
		reportPayload,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert match %s: %w", m.ID, err)
	}
	return nil
}

// GetByID returns a match by ID for a client.
func (r *PGRepo) GetByID(ctx context.Context, clientID, matchID string) (Match, error) {
	const query = `
SELECT id, client_id, profile_id, job, report, created_at
FROM matches
WHERE client_id = $1 AND id = $2`

	row := r.DB.QueryRowContext(ctx, query, clientID, matchID)
	m, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Match{}, ErrNotFound
	}
	return m, err
}

// ListByClient returns matches for a client, newest first.
func (r *PGRepo) ListByClient(ctx context.Context, clientID string, limit, offset int) ([]Match, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	const query = `
SELECT id, client_id, profile_id, job, report, created_at
FROM matches
WHERE client_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, clientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	out := []Match{}
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (Match, error) {
	var m Match
	var jobPayload, reportPayload []byte
	if err := row.Scan(&m.ID, &m.ClientID, &m.ProfileID, &jobPayload, &reportPayload, &m.CreatedAt); err != nil {
		return Match{}, err
	}
	var job parse.JobProfile
	if err := json.Unmarshal(jobPayload, &job); err != nil {
		return Match{}, fmt.Errorf("unmarshal job for match %s: %w", m.ID, err)
	}
	var report match.Report
	if err := json.Unmarshal(reportPayload, &report); err != nil {
		return Match{}, fmt.Errorf("unmarshal report for match %s: %w", m.ID, err)
	}
	m.Job = job
	m.Report = report
	return m, nil
}
