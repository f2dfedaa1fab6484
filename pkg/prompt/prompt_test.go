package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildInterpolatesAnswers(t *testing.T) {
	got := Build(Answers{
		YearsOfExperience: "3",
		CurrentCTC:        "5-10L",
		TargetCompanies:   []string{"Google", "Amazon"},
		TimeCommitment:    "5-10 hours",
	})

	assert.Contains(t, got, "Experience Level: 3 years")
	assert.Contains(t, got, "Current Compensation: 5-10L")
	assert.Contains(t, got, "Target Companies: Google, Amazon")
	assert.Contains(t, got, "Weekly Study Time: 5-10 hours")
}

func TestBuildRequestsStrictTemplate(t *testing.T) {
	got := Build(Answers{YearsOfExperience: "1", CurrentCTC: "0-5L", TargetCompanies: []string{"X"}, TimeCommitment: "2 hours"})

	assert.Contains(t, got, "exactly 25 SQL interview questions")
	assert.Contains(t, got, "Title: [Descriptive Title]")
	assert.Contains(t, got, "Difficulty: [Easy/Medium/Hard]")
	assert.Contains(t, got, "Concepts: [Comma-separated SQL concepts]")
	assert.Contains(t, got, "Description: [Detailed problem description with context]")
}

func TestBuildIsDeterministic(t *testing.T) {
	a := Answers{YearsOfExperience: "5", CurrentCTC: "10-20L", TargetCompanies: []string{"Meta"}, TimeCommitment: "10 hours"}
	assert.Equal(t, Build(a), Build(a))
}
