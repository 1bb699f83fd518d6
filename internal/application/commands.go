package application

import (
	"github.com/bnema/degreeplan-cli/internal/domain"
)

type CreatePlanCommand struct {
	Name      string
	StartTerm domain.Term
	StartYear int
	EndTerm   domain.Term
	EndYear   int
}

type AddCourseCommand struct {
	PlanID   domain.PlanID
	Code     string
	Semester string
}

// RemoveCourseCommand removes Code from its semester. An empty Semester
// means wherever the course currently sits.
type RemoveCourseCommand struct {
	PlanID   domain.PlanID
	Code     string
	Semester string
}

type GeneratePlanCommand struct {
	Name    string
	Options domain.GenerateOptions
}

// ImportPlanCommand carries an externally supplied snapshot. Trust skips the
// placement rules and must be asked for explicitly.
type ImportPlanCommand struct {
	Name     string
	Snapshot domain.Snapshot
	Trust    bool
}

type ImportProgramCommand struct {
	Program domain.Program
	// Skipped counts malformed records dropped during ingestion.
	Skipped int
}
