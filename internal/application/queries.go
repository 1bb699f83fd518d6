package application

import (
	"time"

	"github.com/bnema/degreeplan-cli/internal/domain"
)

type CourseLine struct {
	Code          string
	Name          string
	Credits       int
	Prerequisites string
}

type SemesterStatus struct {
	Name    string
	Type    domain.SemesterType
	Cap     int
	Credits int
	Courses []CourseLine
}

type PlanStatus struct {
	Plan            domain.Plan
	Active          bool
	Semesters       []SemesterStatus
	TotalCredits    int
	RequiredCredits int
	Progress        []domain.AreaProgress
}

type PlanSummary struct {
	ID           domain.PlanID
	Name         string
	Origin       domain.PlanOrigin
	Range        string
	TotalCredits int
	Active       bool
	UpdatedAt    time.Time
}

type GeneratePlanResult struct {
	Plan  domain.Plan
	Unmet []domain.UnmetRequirement
}

type ImportPlanResult struct {
	Plan       domain.Plan
	Rejections []domain.ReplayRejection
	Trusted    bool
}

type ImportProgramResult struct {
	Name      string
	Courses   int
	Overrides int
	Areas     int
	Skipped   int
}
