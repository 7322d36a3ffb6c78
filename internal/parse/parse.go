// Package parse turns decoded plain text into structured candidate and job
// profiles using deterministic line-scanning heuristics. Every extractor is
// total: malformed input yields defaults, never errors. The only failure
// mode is structurally empty input.
package parse

import (
	"errors"
	"strings"

	"resume-matcher/internal/skills"
)

// ErrEmptyInput is returned when the trimmed input text has zero length.
var ErrEmptyInput = errors.New("input text is empty")

// rawTextLimit caps the raw_text echo stored on profiles.
const rawTextLimit = 1000

// StructureResume extracts a ResumeProfile from plain resume text. Field
// extractors run independently over the same blob; no extractor depends on
// another's output.
func StructureResume(text string) (ResumeProfile, error) {
	if strings.TrimSpace(text) == "" {
		return ResumeProfile{}, ErrEmptyInput
	}

	return ResumeProfile{
		Name:           extractName(text),
		Email:          extractEmail(text),
		Phone:          extractPhone(text),
		Skills:         extractSkills(text),
		Experience:     extractExperience(text),
		Education:      extractEducation(text),
		Achievements:   extractAchievements(text),
		Certifications: extractCertifications(text),
		RawText:        clipRawText(text),
	}, nil
}

// StructureJob extracts a JobProfile from plain job-description text.
// Required and preferred skills come from the same whole-text scan; the
// source format has no reliable section markers to split on.
func StructureJob(text string) (JobProfile, error) {
	if strings.TrimSpace(text) == "" {
		return JobProfile{}, ErrEmptyInput
	}

	found := skills.JobVocabulary.FoundIn(text)
	return JobProfile{
		Title:              extractJobTitle(text),
		Company:            extractCompany(text),
		RequiredSkills:     found,
		PreferredSkills:    found,
		ExperienceRequired: experienceRequirement(text),
		EducationRequired:  educationRequirement(text),
		Responsibilities:   []string{"responsibilities listed in description"},
		RawText:            clipRawText(text),
	}, nil
}

func experienceRequirement(text string) string {
	if strings.Contains(strings.ToLower(text), "year") {
		return "experience mentioned"
	}
	return ""
}

func educationRequirement(text string) string {
	if containsAny(strings.ToLower(text), []string{"degree", "bachelor", "master", "phd"}) {
		return "degree mentioned"
	}
	return ""
}

func clipRawText(text string) string {
	runes := []rune(text)
	if len(runes) <= rawTextLimit {
		return text
	}
	return string(runes[:rawTextLimit]) + "..."
}
