// Package skills holds the static vocabularies used by the resume and job
// parsers. Matching is a case-insensitive substring scan with no word
// boundaries, so short tokens like "r" or "go" can match inside larger
// words. That imprecision is part of the observable contract and must not
// be tightened without changing every downstream score.
package skills

import "strings"

// Vocabulary is an ordered, immutable set of skill tokens. Tokens are
// compared lower-cased and rendered title-cased for display.
type Vocabulary []string

// ResumeVocabulary is the catalog scanned over resume text.
var ResumeVocabulary = Vocabulary{
	// Programming languages
	"python", "java", "javascript", "typescript", "c++", "c#", "go", "rust",
	"ruby", "php", "swift", "kotlin", "scala", "r", "matlab", "html", "css",

	// Frameworks and libraries
	"react", "angular", "vue", "nodejs", "express", "django", "flask", "fastapi",
	"spring", "laravel", "bootstrap", "tailwind",

	// Databases
	"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch", "sqlite",
	"oracle", "cassandra", "dynamodb",

	// Cloud and DevOps
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins",
	"git", "github", "gitlab", "ci/cd",

	// Data science and analytics
	"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "keras",
	"spark", "hadoop", "tableau", "powerbi", "excel",

	// Tools and systems
	"linux", "bash", "vim", "vscode", "intellij", "jira", "confluence",
	"slack", "postman", "figma", "photoshop",
}

// JobVocabulary is the catalog scanned over job descriptions. It overlaps
// the resume list but adds methodology and practice keywords; the two are
// kept distinct so extraction results stay stable per document kind.
var JobVocabulary = Vocabulary{
	"python", "java", "javascript", "typescript", "c++", "c#", "go", "rust",
	"ruby", "php", "swift", "kotlin", "scala", "r", "matlab", "html", "css",
	"react", "angular", "vue", "nodejs", "express", "django", "flask", "fastapi",
	"spring", "laravel", "bootstrap", "tailwind", "sql", "mysql", "postgresql",
	"mongodb", "redis", "elasticsearch", "sqlite", "oracle", "cassandra",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins",
	"git", "github", "gitlab", "pandas", "numpy", "scikit-learn", "tensorflow",
	"pytorch", "keras", "spark", "hadoop", "tableau", "powerbi", "excel",
	"linux", "bash", "agile", "scrum", "devops", "ci/cd", "restful", "api",
	"microservices", "machine learning", "data analysis", "data science",
}

// FoundIn scans text for vocabulary tokens and returns the display form of
// every token whose lower-cased form appears anywhere in the lower-cased
// text. Order follows vocabulary declaration order, deduplicated. The
// result is never nil; no hits yields an empty slice.
func (v Vocabulary) FoundIn(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]bool, len(v))
	found := []string{}
	for _, token := range v {
		if seen[token] {
			continue
		}
		if strings.Contains(lower, strings.ToLower(token)) {
			seen[token] = true
			found = append(found, Display(token))
		}
	}
	return found
}

// Contains reports whether token (in any casing) is a vocabulary entry.
func (v Vocabulary) Contains(token string) bool {
	needle := strings.ToLower(strings.TrimSpace(token))
	for _, t := range v {
		if t == needle {
			return true
		}
	}
	return false
}

// Display renders a token in title case. A letter is capitalized when it
// follows any non-letter, so "scikit-learn" becomes "Scikit-Learn" and
// "ci/cd" becomes "Ci/Cd".
func Display(token string) string {
	words := strings.Split(token, " ")
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

func titleWord(w string) string {
	out := []rune(w)
	upper := true
	for i, r := range out {
		if r >= 'a' && r <= 'z' && upper {
			out[i] = r - ('a' - 'A')
		}
		// Letters inside a word stay lower; any non-letter restarts a word.
		upper = !isASCIILetter(r)
	}
	return string(out)
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
