package repositoryImp

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sqlprep/entities"
	"sqlprep/pkg/plan/repository"
)

type planRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlanRepository { return &planRepo{db} }

func (r *planRepo) Upsert(p *entities.PrepPlan) error {
	assignQuestionIDs(p.Questions)

	var existing entities.PrepPlan
	err := r.db.Where("user_id = ?", p.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(p).Error
	}
	if err != nil {
		return err
	}
	// Full replace: keep the row identity, overwrite everything else.
	p.PlanID = existing.PlanID
	p.CreatedAt = existing.CreatedAt
	return r.db.Save(p).Error
}

func (r *planRepo) LatestByUser(userID string) (*entities.PrepPlan, error) {
	var p entities.PrepPlan
	if err := r.db.Where("user_id = ?", userID).Order("generated_at DESC").First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *planRepo) Save(p *entities.PrepPlan) error { return r.db.Save(p).Error }

// assignQuestionIDs gives each new question a stable identifier, unique within
// the plan. Questions that already carry one keep it.
func assignQuestionIDs(qs []entities.Question) {
	for i := range qs {
		if qs[i].ID == "" {
			qs[i].ID = uuid.NewString()
		}
	}
}
