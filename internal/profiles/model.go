package profiles

import (
	"time"

	"resume-matcher/internal/parse"
)

// Profile is a stored parsed resume owned by a client identity.
type Profile struct {
	ID        string
	ClientID  string
	FileName  string
	Resume    parse.ResumeProfile
	CreatedAt time.Time
}
