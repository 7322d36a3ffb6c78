package matches

import (
	"time"

	"resume-matcher/internal/match"
	"resume-matcher/internal/parse"
)

// CreateMatchRequest carries one candidate source and the job posting text.
type CreateMatchRequest struct {
	ProfileID      string               `json:"profileId"`
	ResumeData     *parse.ResumeProfile `json:"resumeData"`
	JobDescription string               `json:"jobDescription"`
}

// MatchResponse is the outward-facing representation of a stored match.
type MatchResponse struct {
	MatchID   string           `json:"matchId"`
	ProfileID string           `json:"profileId,omitempty"`
	Job       parse.JobProfile `json:"job"`
	Report    match.Report     `json:"report"`
	CreatedAt time.Time        `json:"createdAt"`
}

func toResponse(m Match) MatchResponse {
	return MatchResponse{
		MatchID:   m.ID,
		ProfileID: m.ProfileID,
		Job:       m.Job,
		Report:    m.Report,
		CreatedAt: m.CreatedAt,
	}
}
