package serviceImp

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"sqlprep/entities"
	"sqlprep/pkg/ai"
	"sqlprep/pkg/logger"
	"sqlprep/pkg/parser"
	planrepo "sqlprep/pkg/plan/repository"
	"sqlprep/pkg/plan/service"
	"sqlprep/pkg/prompt"
)

// Placeholder returned to the client when the model produced no usable text.
const noAIResponse = "No AI response available"

type PlanSvc struct {
	llm   ai.Client
	parse parser.Parser
	repo  planrepo.PlanRepository
	log   *logger.Logger
}

func NewPlanService(llm ai.Client, p parser.Parser, repo planrepo.PlanRepository, log *logger.Logger) *PlanSvc {
	return &PlanSvc{llm: llm, parse: p, repo: repo, log: log.With("service", "plan")}
}

func (s *PlanSvc) Generate(ctx context.Context, userID string, req service.GenerateRequest) (*service.GenerateResult, error) {
	if verr := validate(req); verr != nil {
		return nil, verr
	}

	promptText := prompt.Build(prompt.Answers{
		YearsOfExperience: req.YearsOfExperience,
		CurrentCTC:        req.CurrentCTC,
		TargetCompanies:   req.TargetCompanies,
		TimeCommitment:    req.TimeCommitment,
	})

	// Generation is resilient: any model failure or unparseable output falls
	// back to the default question list instead of failing the request.
	raw, err := s.llm.GenerateText(ctx, promptText)
	var questions []entities.Question
	if err != nil {
		s.log.Warn("model call failed, using default questions", "user_id", userID, "err", err)
		raw = noAIResponse
		questions = parser.Defaults()
	} else {
		questions = s.parse.Parse(raw)
		if len(questions) == 0 {
			s.log.Warn("no questions parsed from model response, using default questions", "user_id", userID)
			questions = parser.Defaults()
		}
	}

	questions = normalize(questions)
	if len(questions) == 0 {
		// Unreachable while Defaults() is non-empty, but the request must not
		// persist an empty plan.
		return nil, errors.New("no questions generated")
	}

	now := time.Now()
	plan := &entities.PrepPlan{
		UserID:            userID,
		YearsOfExperience: req.YearsOfExperience,
		CurrentCTC:        req.CurrentCTC,
		TargetCompanies:   req.TargetCompanies,
		TimeCommitment:    req.TimeCommitment,
		Questions:         questions,
		GeneratedAt:       now,
	}
	if err := s.repo.Upsert(plan); err != nil {
		return nil, err
	}
	s.log.Info("prep plan saved", "user_id", userID, "questions", len(plan.Questions))

	return &service.GenerateResult{
		Questions: plan.Questions,
		Metadata: service.Metadata{
			YearsOfExperience: req.YearsOfExperience,
			CurrentCTC:        req.CurrentCTC,
			TargetCompanies:   req.TargetCompanies,
			TimeCommitment:    req.TimeCommitment,
			GeneratedAt:       now,
		},
		AIResponse: raw,
	}, nil
}

func (s *PlanSvc) GetSaved(ctx context.Context, userID string) (*entities.PrepPlan, error) {
	p, err := s.repo.LatestByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PlanSvc) UpdateProgress(ctx context.Context, userID, questionID string, completed bool) (*entities.PrepPlan, error) {
	if questionID == "" {
		return nil, &service.ValidationError{Message: "Question ID is required"}
	}

	p, err := s.repo.LatestByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range p.Questions {
		if p.Questions[i].ID == questionID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, service.ErrQuestionNotFound
	}

	p.Questions[idx].Completed = completed
	if err := s.repo.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

func validate(req service.GenerateRequest) *service.ValidationError {
	details := map[string]bool{
		"yearsOfExperience": req.YearsOfExperience != "",
		"currentCTC":        req.CurrentCTC != "",
		"targetCompanies":   len(req.TargetCompanies) > 0,
		"timeCommitment":    req.TimeCommitment != "",
	}
	for _, ok := range details {
		if !ok {
			return &service.ValidationError{Message: "Missing required input parameters", Details: details}
		}
	}
	return nil
}

// normalize applies field defaults and forces completed=false on every
// generated question. Difficulty is deliberately not constrained to
// Easy/Medium/Hard: whatever string the model produced is stored as-is.
func normalize(qs []entities.Question) []entities.Question {
	out := make([]entities.Question, len(qs))
	for i, q := range qs {
		if q.Title == "" {
			q.Title = "Untitled Question"
		}
		if q.Difficulty == "" {
			q.Difficulty = "Medium"
		}
		if len(q.Concepts) == 0 {
			q.Concepts = []string{"SQL"}
		}
		if q.Description == "" {
			q.Description = "No description provided"
		}
		if q.Category == "" {
			q.Category = "Problem Solving"
		}
		q.Completed = false
		out[i] = q
	}
	return out
}
