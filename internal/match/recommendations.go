package match

// Tier boundaries on the overall percentage. Lower bound inclusive,
// upper bound exclusive.
const (
	moderateTierFloor = 50.0
	strongTierFloor   = 70.0
)

// The advisory texts are fixed constants surfaced verbatim in the UI;
// do not reword them.
var (
	improvementAdvice = []string{
		"Focus on developing the missing technical skills",
		"Consider relevant certifications or courses",
		"Highlight transferable skills from other experiences",
	}
	moderateAdvice = []string{
		"Strong candidate profile with room for improvement",
		"Emphasize relevant projects and achievements",
		"Tailor your resume to better match job requirements",
	}
	strongAdvice = []string{
		"Excellent match for this position!",
		"Apply with confidence",
		"Highlight your strongest matching skills in your application",
	}
)

// Recommendations returns the advisory set for an overall percentage score.
func Recommendations(overallScore float64) []string {
	switch {
	case overallScore < moderateTierFloor:
		return improvementAdvice
	case overallScore < strongTierFloor:
		return moderateAdvice
	default:
		return strongAdvice
	}
}
