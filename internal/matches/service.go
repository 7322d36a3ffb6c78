package matches

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"resume-matcher/internal/match"
	"resume-matcher/internal/parse"
	"resume-matcher/internal/profiles"
)

// Service orchestrates a scoring run: resolve the candidate profile, parse
// the job description, score, persist.
type Service struct {
	Repo     Repo
	Profiles *profiles.Service
}

// Run scores a candidate against a job description. Exactly one of
// profileID and resume must be set; resume carries an inline candidate
// record when no stored profile is referenced.
func (s *Service) Run(ctx context.Context, clientID, profileID string, resume *parse.ResumeProfile, jobText string) (Match, error) {
	candidate, err := s.resolveCandidate(ctx, clientID, profileID, resume)
	if err != nil {
		return Match{}, err
	}

	job, err := parse.StructureJob(jobText)
	if err != nil {
		return Match{}, err
	}

	m := Match{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		ProfileID: profileID,
		Job:       job,
		Report:    match.Score(candidate, job),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, m); err != nil {
		return Match{}, fmt.Errorf("store match: %w", err)
	}
	return m, nil
}

func (s *Service) resolveCandidate(ctx context.Context, clientID, profileID string, resume *parse.ResumeProfile) (parse.ResumeProfile, error) {
	switch {
	case profileID != "" && resume != nil:
		return parse.ResumeProfile{}, fmt.Errorf("%w: profileId and resumeData are mutually exclusive", ErrInvalidInput)
	case profileID != "":
		stored, err := s.Profiles.Get(ctx, clientID, profileID)
		if err != nil {
			if errors.Is(err, profiles.ErrNotFound) {
				return parse.ResumeProfile{}, fmt.Errorf("%w: profile %s", ErrInvalidInput, profileID)
			}
			return parse.ResumeProfile{}, err
		}
		return stored.Resume, nil
	case resume != nil:
		return *resume, nil
	default:
		return parse.ResumeProfile{}, fmt.Errorf("%w: profileId or resumeData is required", ErrInvalidInput)
	}
}

// Get returns one stored match for a client.
func (s *Service) Get(ctx context.Context, clientID, matchID string) (Match, error) {
	if matchID == "" {
		return Match{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, clientID, matchID)
}

// List returns stored matches for a client, newest first.
func (s *Service) List(ctx context.Context, clientID string, limit, offset int) ([]Match, error) {
	return s.Repo.ListByClient(ctx, clientID, limit, offset)
}
