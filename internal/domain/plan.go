package domain

import (
	"fmt"
	"strings"
	"time"
)

type PlanID string

type PlanOrigin string

const (
	PlanOriginManual    PlanOrigin = "manual"
	PlanOriginGenerated PlanOrigin = "generated"
	PlanOriginImported  PlanOrigin = "imported"
)

// Plan is a persisted degree plan: a term range plus the placements inside it.
type Plan struct {
	ID        PlanID
	Name      string
	Origin    PlanOrigin
	StartTerm Term
	StartYear int
	EndTerm   Term
	EndYear   int
	Snapshot  Snapshot
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Plan) Validate() error {
	if strings.TrimSpace(string(p.ID)) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if _, err := p.Slots(); err != nil {
		return err
	}
	return nil
}

func (p Plan) Slots() ([]SemesterSlot, error) {
	return Sequence(p.StartTerm, p.StartYear, p.EndTerm, p.EndYear)
}

// Program is the imported catalog together with its override table and
// degree requirements.
type Program struct {
	Name         string
	Courses      []Course
	Overrides    OverrideTable
	Requirements Requirements
	ImportedAt   time.Time
}

func (p Program) Catalog() (*Catalog, error) {
	return NewCatalog(p.Courses, p.Overrides)
}
