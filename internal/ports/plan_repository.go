package ports

import (
	"context"

	"github.com/bnema/degreeplan-cli/internal/domain"
)

type PlanRepository interface {
	GetByID(ctx context.Context, id domain.PlanID) (domain.Plan, error)
	List(ctx context.Context) ([]domain.Plan, error)
	Save(ctx context.Context, plan domain.Plan) error
	Delete(ctx context.Context, id domain.PlanID) error
	GetActive(ctx context.Context) (domain.PlanID, error)
	SetActive(ctx context.Context, id domain.PlanID) error
}

type ProgramRepository interface {
	Get(ctx context.Context) (domain.Program, error)
	Save(ctx context.Context, program domain.Program) error
}
