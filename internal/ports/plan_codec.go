package ports

import "github.com/bnema/degreeplan-cli/internal/domain"

// PlanCodec converts a plan's placements to and from the plain-text exchange format.
type PlanCodec interface {
	Format(plan domain.Plan, ledger *domain.Ledger) string
	Parse(text string) (domain.Snapshot, error)
}
