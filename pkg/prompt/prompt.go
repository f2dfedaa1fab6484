package prompt

import (
	"fmt"
	"strings"
)

// Answers holds the four questionnaire fields. The caller validates that all
// of them are non-empty before rendering.
type Answers struct {
	YearsOfExperience string
	CurrentCTC        string
	TargetCompanies   []string
	TimeCommitment    string
}

// Build renders the instruction sent to the generative model. The per-question
// four-field template is load-bearing: the parser matches against exactly
// these markers.
func Build(a Answers) string {
	return fmt.Sprintf(`Create a comprehensive SQL interview preparation plan for a data engineering role with these specifications:
    - Experience Level: %s years
    - Current Compensation: %s
    - Target Companies: %s
    - Weekly Study Time: %s

    Generate exactly 25 SQL interview questions with this STRICT format for EACH question:
    Title: [Descriptive Title]
    Difficulty: [Easy/Medium/Hard]
    Concepts: [Comma-separated SQL concepts]
    Description: [Detailed problem description with context]`,
		a.YearsOfExperience,
		a.CurrentCTC,
		strings.Join(a.TargetCompanies, ", "),
		a.TimeCommitment,
	)
}
