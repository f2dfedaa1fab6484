package entities

import "time"

type PrepPlan struct {
	PlanID            uint       `gorm:"primaryKey" json:"plan_id"`
	UserID            string     `json:"user_id" gorm:"index"`
	YearsOfExperience string     `json:"yearsOfExperience"`
	CurrentCTC        string     `json:"currentCTC"`
	TargetCompanies   []string   `gorm:"serializer:json" json:"targetCompanies"`
	TimeCommitment    string     `json:"timeCommitment"`
	Questions         []Question `gorm:"serializer:json" json:"questions"`
	GeneratedAt       time.Time  `json:"generatedAt"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Question struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Difficulty  string   `json:"difficulty"` // Easy|Medium|Hard (not enforced, see service)
	Concepts    []string `json:"concepts"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Completed   bool     `json:"completed"`
}
