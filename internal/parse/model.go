package parse

// ResumeProfile is the structured record extracted from a resume. It is
// built once per document and never mutated afterwards.
type ResumeProfile struct {
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	Skills         []string     `json:"skills"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Achievements   []string     `json:"achievements"`
	Certifications []string     `json:"certifications"`
	RawText        string       `json:"raw_text"`
}

// Experience is a single extracted work-experience entry.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Education is a single extracted education entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// JobProfile is the structured record extracted from a job description.
//
// RequiredSkills and PreferredSkills are computed identically: both are the
// whole-text vocabulary scan, because no section-aware splitting is
// performed. Known limitation, preserved deliberately.
type JobProfile struct {
	Title              string   `json:"title"`
	Company            string   `json:"company"`
	RequiredSkills     []string `json:"required_skills"`
	PreferredSkills    []string `json:"preferred_skills"`
	ExperienceRequired string   `json:"experience_required"`
	EducationRequired  string   `json:"education_required"`
	Responsibilities   []string `json:"responsibilities"`
	RawText            string   `json:"raw_text"`
}
