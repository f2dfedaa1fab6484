package repository

import "sqlprep/entities"

type PlanRepository interface {
	// Upsert writes the plan for its user, overwriting an existing row if one
	// is there. Questions without an identifier get one assigned.
	Upsert(p *entities.PrepPlan) error
	LatestByUser(userID string) (*entities.PrepPlan, error)
	Save(p *entities.PrepPlan) error
}
