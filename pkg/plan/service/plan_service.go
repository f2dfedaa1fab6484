package service

import (
	"context"
	"time"

	"sqlprep/entities"
)

type GenerateRequest struct {
	YearsOfExperience string   `json:"yearsOfExperience"`
	CurrentCTC        string   `json:"currentCTC"`
	TargetCompanies   []string `json:"targetCompanies"`
	TimeCommitment    string   `json:"timeCommitment"`
}

// Metadata echoes the questionnaire back alongside the generation timestamp.
type Metadata struct {
	YearsOfExperience string    `json:"yearsOfExperience"`
	CurrentCTC        string    `json:"currentCTC"`
	TargetCompanies   []string  `json:"targetCompanies"`
	TimeCommitment    string    `json:"timeCommitment"`
	GeneratedAt       time.Time `json:"generatedAt"`
}

type GenerateResult struct {
	Questions  []entities.Question `json:"questions"`
	Metadata   Metadata            `json:"metadata"`
	AIResponse string              `json:"aiResponse"`
}

type PlanService interface {
	Generate(ctx context.Context, userID string, req GenerateRequest) (*GenerateResult, error)
	GetSaved(ctx context.Context, userID string) (*entities.PrepPlan, error)
	UpdateProgress(ctx context.Context, userID, questionID string, completed bool) (*entities.PrepPlan, error)
}
