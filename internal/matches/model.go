package matches

import (
	"time"

	"resume-matcher/internal/match"
	"resume-matcher/internal/parse"
)

// Match is one stored scoring run: the parsed job, the report, and the
// profile it scored (by reference when a stored profile was used).
type Match struct {
	ID        string
	ClientID  string
	ProfileID string
	Job       parse.JobProfile
	Report    match.Report
	CreatedAt time.Time
}
