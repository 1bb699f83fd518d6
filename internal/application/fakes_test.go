package application

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/bnema/degreeplan-cli/internal/domain"
)

func mockAnyContext() interface{} {
	return mock.Anything
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type inMemoryPlanRepo struct {
	plans  map[domain.PlanID]domain.Plan
	active domain.PlanID
	saves  int
}

func newInMemoryPlanRepo(plans ...domain.Plan) *inMemoryPlanRepo {
	repo := &inMemoryPlanRepo{plans: map[domain.PlanID]domain.Plan{}}
	for _, plan := range plans {
		repo.plans[plan.ID] = plan
	}
	return repo
}

func (r *inMemoryPlanRepo) GetByID(_ context.Context, id domain.PlanID) (domain.Plan, error) {
	plan, ok := r.plans[id]
	if !ok {
		return domain.Plan{}, domain.ErrPlanNotFound
	}
	return plan, nil
}

func (r *inMemoryPlanRepo) List(_ context.Context) ([]domain.Plan, error) {
	out := make([]domain.Plan, 0, len(r.plans))
	for _, plan := range r.plans {
		out = append(out, plan)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *inMemoryPlanRepo) Save(_ context.Context, plan domain.Plan) error {
	r.plans[plan.ID] = plan
	r.saves++
	return nil
}

func (r *inMemoryPlanRepo) Delete(_ context.Context, id domain.PlanID) error {
	if _, ok := r.plans[id]; !ok {
		return domain.ErrPlanNotFound
	}
	delete(r.plans, id)
	return nil
}

func (r *inMemoryPlanRepo) GetActive(_ context.Context) (domain.PlanID, error) {
	return r.active, nil
}

func (r *inMemoryPlanRepo) SetActive(_ context.Context, id domain.PlanID) error {
	r.active = id
	return nil
}

type inMemoryProgramRepo struct {
	program *domain.Program
}

func (r *inMemoryProgramRepo) Get(_ context.Context) (domain.Program, error) {
	if r.program == nil {
		return domain.Program{}, domain.ErrProgramNotFound
	}
	return *r.program, nil
}

func (r *inMemoryProgramRepo) Save(_ context.Context, program domain.Program) error {
	r.program = &program
	return nil
}

// lineCodec writes one "semester: codes" line per non-empty semester.
type lineCodec struct{}

func (lineCodec) Format(_ domain.Plan, ledger *domain.Ledger) string {
	var b strings.Builder
	for _, slot := range ledger.Slots() {
		placement, _ := ledger.Placement(slot.Name)
		if len(placement.Courses) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", slot.Name, strings.Join(placement.Codes(), " "))
	}
	return b.String()
}

func (lineCodec) Parse(text string) (domain.Snapshot, error) {
	snapshot := domain.Snapshot{}
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		name, codes, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("malformed line %q", line)
		}
		snapshot[name] = domain.SnapshotSemester{Courses: strings.Fields(codes)}
	}
	return snapshot, nil
}

func testProgram() domain.Program {
	return domain.Program{
		Name: "BS Computer Science",
		Courses: []domain.Course{
			{Code: "MATH100", Name: "Precalculus", Credits: 3},
			{Code: "CS101", Name: "Intro to Programming", Credits: 3, Prerequisites: domain.Requires(domain.AnyOf("MATH100"))},
			{Code: "CS201", Name: "Data Structures", Credits: 4, Prerequisites: domain.Requires(domain.AnyOf("CS101"))},
			{Code: "ENG101", Name: "Composition", Credits: 3},
		},
		Requirements: domain.Requirements{
			Areas: []domain.DegreeArea{
				{Name: "Core", Kind: domain.AreaCore, MinCredits: 10, Courses: []string{"CS101", "CS201"}, Required: []string{"CS101"}},
				{Name: "Gen Ed", Kind: domain.AreaGeneral, MinCredits: 3, Courses: []string{"ENG101"}},
			},
			FirstSemester: []string{"MATH100"},
			TotalCredits:  13,
		},
	}
}

func emptyPlan(id domain.PlanID, name string) domain.Plan {
	return domain.Plan{
		ID:        id,
		Name:      name,
		Origin:    domain.PlanOriginManual,
		StartTerm: domain.TermFall,
		StartYear: 2024,
		EndTerm:   domain.TermSpring,
		EndYear:   2024,
		Snapshot: domain.Snapshot{
			"Fall 2024":   {Courses: []string{}},
			"Spring 2025": {Courses: []string{}},
		},
	}
}
