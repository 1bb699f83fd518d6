package toml

import (
	"context"
	"sort"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/degreeplan-cli/internal/domain"
	"github.com/bnema/degreeplan-cli/internal/ports"
)

type PlanRepository struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.PlanRepository = (*PlanRepository)(nil)

func NewPlanRepository(cfg *viper.Viper) (*PlanRepository, error) {
	path, err := resolvePath(cfg, plansPathKey, plansFile)
	if err != nil {
		return nil, err
	}

	return &PlanRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *PlanRepository) Path() string {
	return r.path
}

func (r *PlanRepository) Save(ctx context.Context, plan domain.Plan) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toPlanSchema(plan)
	updated := false
	for i := range file.Plans {
		if file.Plans[i].ID == encoded.ID {
			file.Plans[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Plans = append(file.Plans, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return writeTOMLFile(r.path, file)
}

func (r *PlanRepository) GetByID(ctx context.Context, id domain.PlanID) (domain.Plan, error) {
	if err := ctx.Err(); err != nil {
		return domain.Plan{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Plan{}, err
	}

	for _, entry := range file.Plans {
		if entry.ID == string(id) {
			return fromPlanSchema(entry), nil
		}
	}

	return domain.Plan{}, domain.ErrPlanNotFound
}

func (r *PlanRepository) List(ctx context.Context) ([]domain.Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	plans := make([]domain.Plan, 0, len(file.Plans))
	for _, entry := range file.Plans {
		plans = append(plans, fromPlanSchema(entry))
	}

	return plans, nil
}

func (r *PlanRepository) Delete(ctx context.Context, id domain.PlanID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	kept := file.Plans[:0]
	found := false
	for _, entry := range file.Plans {
		if entry.ID == string(id) {
			found = true
			continue
		}
		kept = append(kept, entry)
	}
	if !found {
		return domain.ErrPlanNotFound
	}
	file.Plans = kept

	return writeTOMLFile(r.path, file)
}

// GetActive returns the active plan id, or "" when none is set.
func (r *PlanRepository) GetActive(ctx context.Context) (domain.PlanID, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return "", err
	}

	return domain.PlanID(file.Active), nil
}

func (r *PlanRepository) SetActive(ctx context.Context, id domain.PlanID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	file.Active = string(id)

	return writeTOMLFile(r.path, file)
}

func (r *PlanRepository) readSchema() (plansFileSchema, error) {
	var file plansFileSchema
	if _, err := readTOMLFile(r.path, "plans", &file); err != nil {
		return plansFileSchema{}, err
	}
	if err := file.validateVersion(); err != nil {
		return plansFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

// toPlanSchema writes semesters in chronological order so the file reads
// like the plan itself.
func toPlanSchema(plan domain.Plan) planSchema {
	order := map[string]int{}
	if slots, err := plan.Slots(); err == nil {
		for _, slot := range slots {
			order[slot.Name] = slot.Index
		}
	}

	names := make([]string, 0, len(plan.Snapshot))
	for name := range plan.Snapshot {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		oi, iok := order[names[i]]
		oj, jok := order[names[j]]
		if iok != jok {
			return iok
		}
		if iok && oi != oj {
			return oi < oj
		}
		return names[i] < names[j]
	})

	semesters := make([]semesterSchema, 0, len(names))
	for _, name := range names {
		semester := plan.Snapshot[name]
		courses := semester.Courses
		if courses == nil {
			courses = []string{}
		}
		semesters = append(semesters, semesterSchema{Name: name, Courses: courses, Credits: semester.Credits})
	}

	return planSchema{
		ID:        string(plan.ID),
		Name:      plan.Name,
		Origin:    string(plan.Origin),
		StartTerm: string(plan.StartTerm),
		StartYear: plan.StartYear,
		EndTerm:   string(plan.EndTerm),
		EndYear:   plan.EndYear,
		CreatedAt: formatTime(plan.CreatedAt),
		UpdatedAt: formatTime(plan.UpdatedAt),
		Semesters: semesters,
	}
}

func fromPlanSchema(schema planSchema) domain.Plan {
	snapshot := make(domain.Snapshot, len(schema.Semesters))
	for _, semester := range schema.Semesters {
		courses := semester.Courses
		if courses == nil {
			courses = []string{}
		}
		snapshot[semester.Name] = domain.SnapshotSemester{Courses: courses, Credits: semester.Credits}
	}

	return domain.Plan{
		ID:        domain.PlanID(schema.ID),
		Name:      schema.Name,
		Origin:    domain.PlanOrigin(schema.Origin),
		StartTerm: domain.Term(schema.StartTerm),
		StartYear: schema.StartYear,
		EndTerm:   domain.Term(schema.EndTerm),
		EndYear:   schema.EndYear,
		CreatedAt: parseTime(schema.CreatedAt),
		UpdatedAt: parseTime(schema.UpdatedAt),
		Snapshot:  snapshot,
	}
}
