// Package match scores a candidate profile against a job profile. Scoring
// never fails: absent candidate fields degrade sub-scores through fixed
// default policies instead of erroring.
package match

import (
	"math"
	"strings"

	"resume-matcher/internal/parse"
	"resume-matcher/internal/skills"
)

// Component weights. Skills dominate, then experience, then education.
const (
	skillWeight      = 0.50
	experienceWeight = 0.30
	educationWeight  = 0.20
)

// Sub-score policies for absent signals.
const (
	skillScoreNoRequirements = 0.7 // nothing specified: assume partial fit
	educationScoreMissing    = 0.5
	educationScorePresent    = 0.8 // presence-only; degree levels are not compared
	experienceScoreMissing   = 0.3
	experienceFullEntries    = 3.0 // linear ramp: 3+ entries is a full score
)

// SkillMatch reports one exactly-matched skill. No partial or fuzzy match
// kinds exist in this design.
type SkillMatch struct {
	Skill      string  `json:"skill"`
	MatchType  string  `json:"match_type"`
	Confidence float64 `json:"confidence"`
}

// Report is the full scoring output for one candidate/job pair. All scores
// are percentages rounded to one decimal.
type Report struct {
	OverallScore    float64            `json:"overall_score"`
	SkillScore      float64            `json:"skill_score"`
	ExperienceScore float64            `json:"experience_score"`
	EducationScore  float64            `json:"education_score"`
	MatchedSkills   []SkillMatch       `json:"matched_skills"`
	MissingSkills   []string           `json:"missing_skills"`
	Breakdown       map[string]float64 `json:"breakdown"`
	Recommendations []string           `json:"recommendations"`
}

// Score compares a candidate profile with a job profile and produces a
// weighted report with explainable sub-scores.
func Score(candidate parse.ResumeProfile, job parse.JobProfile) Report {
	candidateSet := lowerSet(candidate.Skills)
	requiredSet := lowerSet(job.RequiredSkills)

	skillScore := percent(skillSubScore(candidateSet, requiredSet))
	educationScore := percent(educationSubScore(candidate.Education))
	experienceScore := percent(experienceSubScore(candidate.Experience))

	// The weighted total runs over the already-rounded percentages, so the
	// overall score is consistent with the sub-scores a caller sees.
	overall := round1(skillScore*skillWeight +
		experienceScore*experienceWeight +
		educationScore*educationWeight)

	report := Report{
		OverallScore:    overall,
		SkillScore:      skillScore,
		ExperienceScore: experienceScore,
		EducationScore:  educationScore,
		MatchedSkills:   matchedSkills(candidateSet, job.RequiredSkills),
		MissingSkills:   missingSkills(candidateSet, job.RequiredSkills),
		Breakdown: map[string]float64{
			"Technical Skills": skillScore,
			"Education":        educationScore,
			"Experience":       experienceScore,
		},
	}
	report.Recommendations = Recommendations(report.OverallScore)
	return report
}

func skillSubScore(candidate, required map[string]bool) float64 {
	if len(required) == 0 {
		return skillScoreNoRequirements
	}
	matches := 0
	for skill := range required {
		if candidate[skill] {
			matches++
		}
	}
	// The intersection is a subset of required, so the ratio cannot exceed
	// one; the cap stays as an explicit invariant guard.
	return math.Min(float64(matches)/float64(len(required)), 1.0)
}

func educationSubScore(education []parse.Education) float64 {
	if len(education) == 0 {
		return educationScoreMissing
	}
	return educationScorePresent
}

func experienceSubScore(experience []parse.Experience) float64 {
	if len(experience) == 0 {
		return experienceScoreMissing
	}
	return math.Min(float64(len(experience))/experienceFullEntries, 1.0)
}

// matchedSkills lists every required skill the candidate also has, in the
// job profile's declaration order.
func matchedSkills(candidate map[string]bool, required []string) []SkillMatch {
	matches := make([]SkillMatch, 0, len(required))
	seen := make(map[string]bool, len(required))
	for _, skill := range required {
		key := strings.ToLower(skill)
		if seen[key] || !candidate[key] {
			continue
		}
		seen[key] = true
		matches = append(matches, SkillMatch{
			Skill:      skills.Display(key),
			MatchType:  "exact",
			Confidence: 1.0,
		})
	}
	return matches
}

// missingSkills lists every required skill the candidate lacks.
func missingSkills(candidate map[string]bool, required []string) []string {
	missing := make([]string, 0, len(required))
	seen := make(map[string]bool, len(required))
	for _, skill := range required {
		key := strings.ToLower(skill)
		if seen[key] || candidate[key] {
			continue
		}
		seen[key] = true
		missing = append(missing, skills.Display(key))
	}
	return missing
}

func lowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}
	return set
}

// percent converts a [0,1] sub-score to a percentage rounded to one decimal.
func percent(score float64) float64 {
	return math.Round(score*1000) / 10
}

// round1 rounds a percentage to one decimal.
func round1(pct float64) float64 {
	return math.Round(pct*10) / 10
}
