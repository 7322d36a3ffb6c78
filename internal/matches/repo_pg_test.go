package matches

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"resume-matcher/internal/match"
	"resume-matcher/internal/parse"
)

func TestPGRepoCreateStoresJobAndReport(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	m := Match{
		ID:        "match-1",
		ClientID:  "client-1",
		ProfileID: "profile-1",
		Job:       parse.JobProfile{Title: "Senior Engineer"},
		Report:    match.Report{OverallScore: 69.4},
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO matches").
		WithArgs(
			m.ID,
			m.ClientID,
			m.ProfileID,
			sqlmock.AnyArg(), // job payload
			sqlmock.AnyArg(), // report payload
			m.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), m); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDRoundTripsPayloads(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	jobPayload, err := json.Marshal(parse.JobProfile{
		Title:          "Data Scientist",
		RequiredSkills: []string{"Python", "Sql"},
	})
	if err != nil {
		t.Fatalf("marshal job: %v", err)
	}
	reportPayload, err := json.Marshal(match.Report{
		OverallScore: 54.0,
		SkillScore:   70.0,
	})
	if err != nil {
		t.Fatalf("marshal report: %v", err)
	}
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "client_id", "profile_id", "job", "report", "created_at"}).
		AddRow("match-1", "client-1", "", jobPayload, reportPayload, created)
	mock.ExpectQuery("SELECT id, client_id, profile_id, job, report, created_at").
		WithArgs("client-1", "match-1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	got, err := repo.GetByID(context.Background(), "client-1", "match-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Job.Title != "Data Scientist" {
		t.Errorf("Job.Title = %q, want Data Scientist", got.Job.Title)
	}
	if got.Report.OverallScore != 54.0 {
		t.Errorf("OverallScore = %v, want 54.0", got.Report.OverallScore)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT id, client_id, profile_id, job, report, created_at").
		WithArgs("client-1", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_id", "profile_id", "job", "report", "created_at"}))

	repo := &PGRepo{DB: db}
	_, err = repo.GetByID(context.Background(), "client-1", "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID error = %v, want ErrNotFound", err)
	}
}

// A non-positive limit must page like the memory repo does, not turn into
// a literal LIMIT 0.
func TestPGRepoListZeroLimitUsesDefault(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	jobPayload, err := json.Marshal(parse.JobProfile{Title: "DevOps Engineer"})
	if err != nil {
		t.Fatalf("marshal job: %v", err)
	}
	reportPayload, err := json.Marshal(match.Report{OverallScore: 61.0})
	if err != nil {
		t.Fatalf("marshal report: %v", err)
	}
	rows := sqlmock.NewRows([]string{"id", "client_id", "profile_id", "job", "report", "created_at"}).
		AddRow("m1", "client-1", "p1", jobPayload, reportPayload, time.Now().UTC())
	mock.ExpectQuery("SELECT id, client_id, profile_id, job, report, created_at").
		WithArgs("client-1", defaultListLimit, 0).
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	got, err := repo.ListByClient(context.Background(), "client-1", 0, 0)
	if err != nil {
		t.Fatalf("ListByClient: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d matches, want 1", len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListByClient(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	jobPayload, err := json.Marshal(parse.JobProfile{Title: "DevOps Engineer"})
	if err != nil {
		t.Fatalf("marshal job: %v", err)
	}
	reportPayload, err := json.Marshal(match.Report{OverallScore: 61.0})
	if err != nil {
		t.Fatalf("marshal report: %v", err)
	}
	rows := sqlmock.NewRows([]string{"id", "client_id", "profile_id", "job", "report", "created_at"}).
		AddRow("m2", "client-1", "p1", jobPayload, reportPayload, time.Now().UTC()).
		AddRow("m1", "client-1", "p1", jobPayload, reportPayload, time.Now().UTC().Add(-time.Hour))
	mock.ExpectQuery("SELECT id, client_id, profile_id, job, report, created_at").
		WithArgs("client-1", 20, 0).
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	got, err := repo.ListByClient(context.Background(), "client-1", 20, 0)
	if err != nil {
		t.Fatalf("ListByClient: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2", len(got))
	}
	if got[0].ID != "m2" || got[1].ID != "m1" {
		t.Errorf("order = [%s %s], want [m2 m1]", got[0].ID, got[1].ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
