package parse

import (
	"regexp"
	"strings"
	"unicode"

	"resume-matcher/internal/skills"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Tried in order; the first pattern that matches anywhere wins.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`),                 // 555-123-4567 / 555.123.4567 / 5551234567
		regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.]?\d{4}`),                   // (555) 123-4567
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`), // +1-555-123-4567
	}
)

// lineRule declares a line-scanning extractor: a line qualifies when its
// lower-cased text contains any keyword and its trimmed length exceeds
// minTrimmed. Scanning stops after cap qualifying lines.
type lineRule struct {
	keywords   []string
	minTrimmed int
	cap        int
}

var (
	experienceRule = lineRule{
		keywords:   []string{"engineer", "developer", "manager", "analyst", "specialist"},
		minTrimmed: 10,
		cap:        3,
	}
	educationRule = lineRule{
		keywords: []string{"bachelor", "master", "phd", "degree", "university", "college"},
		cap:      2,
	}
	achievementRule = lineRule{
		keywords:   []string{"award", "achievement", "accomplished", "led", "increased", "reduced"},
		minTrimmed: 20,
		cap:        3,
	}
	certificationRule = lineRule{
		keywords:   []string{"certified", "certification", "certificate"},
		minTrimmed: 5,
		cap:        3,
	}

	jobTitleKeywords = []string{"engineer", "developer", "manager", "analyst", "specialist", "coordinator"}
	companyKeywords  = []string{"company", "corp", "inc", "ltd", "llc"}
)

// collect returns up to rule.cap raw (untrimmed) qualifying lines.
func (r lineRule) collect(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if !containsAny(strings.ToLower(line), r.keywords) {
			continue
		}
		if len(strings.TrimSpace(line)) > r.minTrimmed {
			out = append(out, line)
		}
		if len(out) >= r.cap {
			break
		}
	}
	return out
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// headLines returns the first n trimmed-boundary lines of the text.
func headLines(text string, n int) []string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return lines
}

// truncate caps s at n characters (runes, not bytes).
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// extractName scans the first five lines for a plausible person name: a
// line of 3..49 characters whose 2-4 whitespace-split words are purely
// alphabetic.
func extractName(text string) string {
	for _, line := range headLines(text, 5) {
		line = strings.TrimSpace(line)
		if len(line) <= 2 || len(line) >= 50 {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if allAlphabetic(words) {
			return line
		}
	}
	return "Unknown"
}

func allAlphabetic(words []string) bool {
	for _, w := range words {
		for _, r := range w {
			if !unicode.IsLetter(r) {
				return false
			}
		}
	}
	return true
}

func extractEmail(text string) string {
	return emailPattern.FindString(text)
}

func extractPhone(text string) string {
	for _, pattern := range phonePatterns {
		if m := pattern.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

func extractSkills(text string) []string {
	return skills.ResumeVocabulary.FoundIn(text)
}

func extractExperience(text string) []Experience {
	entries := []Experience{}
	for _, line := range experienceRule.collect(text) {
		entries = append(entries, Experience{
			Title: truncate(strings.TrimSpace(line), 100),
			// Description keeps the raw line, leading whitespace included.
			Description: truncate(line, 200),
		})
	}
	return entries
}

func extractEducation(text string) []Education {
	entries := []Education{}
	for _, line := range educationRule.collect(text) {
		entries = append(entries, Education{
			Degree: truncate(strings.TrimSpace(line), 100),
		})
	}
	return entries
}

func extractAchievements(text string) []string {
	out := []string{}
	for _, line := range achievementRule.collect(text) {
		out = append(out, truncate(strings.TrimSpace(line), 200))
	}
	return out
}

func extractCertifications(text string) []string {
	out := []string{}
	for _, line := range certificationRule.collect(text) {
		out = append(out, truncate(strings.TrimSpace(line), 100))
	}
	return out
}

// extractJobTitle scans the first five lines for a role-keyword line of
// 6..99 characters.
func extractJobTitle(text string) string {
	for _, line := range headLines(text, 5) {
		line = strings.TrimSpace(line)
		if len(line) <= 5 || len(line) >= 100 {
			continue
		}
		if containsAny(strings.ToLower(line), jobTitleKeywords) {
			return line
		}
	}
	return "Unknown Position"
}

// extractCompany scans the first five lines for a company-suffix keyword.
func extractCompany(text string) string {
	for _, line := range headLines(text, 5) {
		if containsAny(strings.ToLower(line), companyKeywords) {
			return strings.TrimSpace(line)
		}
	}
	return ""
}
