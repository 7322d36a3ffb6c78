package profiles

import (
	"context"
	"time"

	"github.com/google/uuid"

	"resume-matcher/internal/extract"
	"resume-matcher/internal/parse"
)

// Service contains business logic for parsed profiles.
type Service struct {
	Repo Repo
}

// ParseUpload decodes an uploaded resume file, parses it into a structured
// profile, and persists it for the client.
func (s *Service) ParseUpload(ctx context.Context, clientID, fileName, mimeType string, data []byte) (Profile, error) {
	if len(data) == 0 {
		return Profile{}, ErrInvalidInput
	}

	text, err := extract.TextFromBytes(ctx, data, mimeType, fileName)
	if err != nil {
		return Profile{}, err
	}

	return s.parseAndStore(ctx, clientID, fileName, text)
}

// ParseText parses already-decoded resume text and persists the profile.
func (s *Service) ParseText(ctx context.Context, clientID, text string) (Profile, error) {
	return s.parseAndStore(ctx, clientID, "", text)
}

func (s *Service) parseAndStore(ctx context.Context, clientID, fileName, text string) (Profile, error) {
	resume, err := parse.StructureResume(text)
	if err != nil {
		return Profile{}, err
	}

	profile := Profile{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		FileName:  fileName,
		Resume:    resume,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// Get returns one stored profile for a client.
func (s *Service) Get(ctx context.Context, clientID, profileID string) (Profile, error) {
	if profileID == "" {
		return Profile{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, clientID, profileID)
}

// List returns stored profiles for a client, newest first.
func (s *Service) List(ctx context.Context, clientID string, limit, offset int) ([]Profile, error) {
	return s.Repo.ListByClient(ctx, clientID, limit, offset)
}
