package matches

import (
	"context"
	"errors"
	"testing"
	"time"

	"resume-matcher/internal/parse"
	"resume-matcher/internal/profiles"
)

const jobText = `Senior Engineer
We need strong Python and Docker experience.
5+ years of experience required.
Bachelor degree in computer science.`

func newTestService(t *testing.T) (*Service, *profiles.Service) {
	t.Helper()
	profileSvc := &profiles.Service{Repo: profiles.NewMemoryRepo()}
	return &Service{Repo: NewMemoryRepo(), Profiles: profileSvc}, profileSvc
}

func sampleResume() *parse.ResumeProfile {
	return &parse.ResumeProfile{
		Name:   "Jane Doe",
		Skills: []string{"Python", "Kubernetes"},
		Experience: []parse.Experience{
			{Title: "Engineer at Acme"},
			{Title: "Developer at Initech"},
		},
		Education: []parse.Education{
			{Degree: "BS Computer Science"},
		},
	}
}

func TestRunWithInlineResume(t *testing.T) {
	svc, _ := newTestService(t)

	m, err := svc.Run(context.Background(), "client-1", "", sampleResume(), jobText)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if m.ID == "" {
		t.Error("expected a generated match ID")
	}
	if m.ProfileID != "" {
		t.Errorf("ProfileID = %q, want empty for inline resume", m.ProfileID)
	}
	if m.Report.OverallScore <= 0 {
		t.Errorf("OverallScore = %v, want > 0", m.Report.OverallScore)
	}
	if m.Job.Title == "" {
		t.Error("expected job title to be parsed from the description")
	}

	stored, err := svc.Get(context.Background(), "client-1", m.ID)
	if err != nil {
		t.Fatalf("Get after Run: %v", err)
	}
	if stored.Report.OverallScore != m.Report.OverallScore {
		t.Errorf("stored OverallScore = %v, want %v", stored.Report.OverallScore, m.Report.OverallScore)
	}
}

func TestRunWithStoredProfile(t *testing.T) {
	svc, profileSvc := newTestService(t)

	profile, err := profileSvc.ParseText(context.Background(), "client-1",
		"Jane Doe\njane@example.com\nSkills: Python, Docker\nExperience\nEngineer at Acme for three years")
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}

	m, err := svc.Run(context.Background(), "client-1", profile.ID, nil, jobText)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if m.ProfileID != profile.ID {
		t.Errorf("ProfileID = %q, want %q", m.ProfileID, profile.ID)
	}
	if len(m.Report.MatchedSkills) == 0 {
		t.Error("expected matched skills from the stored profile")
	}
}

func TestRunRejectsInvalidCandidateSource(t *testing.T) {
	svc, _ := newTestService(t)

	cases := []struct {
		name      string
		profileID string
		resume    *parse.ResumeProfile
	}{
		{name: "neither"},
		{name: "both", profileID: "some-id", resume: sampleResume()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Run(context.Background(), "client-1", tc.profileID, tc.resume, jobText)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Run error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestRunUnknownProfileIsInvalidInput(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Run(context.Background(), "client-1", "missing-id", nil, jobText)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Run error = %v, want ErrInvalidInput", err)
	}
}

func TestRunEmptyJobDescription(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Run(context.Background(), "client-1", "", sampleResume(), "   \n  ")
	if !errors.Is(err, parse.ErrEmptyInput) {
		t.Errorf("Run error = %v, want parse.ErrEmptyInput", err)
	}
}

func TestMatchesAreScopedToClient(t *testing.T) {
	svc, _ := newTestService(t)

	m, err := svc.Run(context.Background(), "client-1", "", sampleResume(), jobText)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if _, err := svc.Get(context.Background(), "client-2", m.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get for other client = %v, want ErrNotFound", err)
	}

	list, err := svc.List(context.Background(), "client-2", 20, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("List for other client returned %d matches, want 0", len(list))
	}
}

func TestListNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo}

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		err := repo.Create(context.Background(), Match{
			ID:        id,
			ClientID:  "client-1",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	list, err := svc.List(context.Background(), "client-1", 2, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("List returned %d matches, want 2", len(list))
	}
	if list[0].ID != "new" || list[1].ID != "mid" {
		t.Errorf("List order = [%s %s], want [new mid]", list[0].ID, list[1].ID)
	}
}
