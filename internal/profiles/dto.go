package profiles

import (
	"time"

	"resume-matcher/internal/parse"
)

// ProfileResponse is the outward-facing representation of a stored profile.
type ProfileResponse struct {
	ProfileID string              `json:"profileId"`
	FileName  string              `json:"fileName,omitempty"`
	Data      parse.ResumeProfile `json:"data"`
	CreatedAt time.Time           `json:"createdAt"`
}

func toResponse(p Profile) ProfileResponse {
	return ProfileResponse{
		ProfileID: p.ID,
		FileName:  p.FileName,
		Data:      p.Resume,
		CreatedAt: p.CreatedAt,
	}
}
