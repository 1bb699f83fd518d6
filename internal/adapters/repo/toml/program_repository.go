package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/spf13/viper"

	"github.com/bnema/degreeplan-cli/internal/domain"
	"github.com/bnema/degreeplan-cli/internal/ports"
)

const programCacheSize = 8

// ProgramRepository stores the imported catalog and requirements in a single
// TOML file. Decoded programs are cached by file identity, so repeated reads
// within one process skip decoding until the file changes.
type ProgramRepository struct {
	path  string
	mu    *sync.RWMutex
	cache *lru.Cache[string, domain.Program]
}

var _ ports.ProgramRepository = (*ProgramRepository)(nil)

func NewProgramRepository(cfg *viper.Viper) (*ProgramRepository, error) {
	path, err := resolvePath(cfg, programPathKey, programFile)
	if err != nil {
		return nil, err
	}

	cache, err := lru.New[string, domain.Program](programCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create program cache: %w", err)
	}

	return &ProgramRepository{path: path, mu: lockForPath(path), cache: cache}, nil
}

func (r *ProgramRepository) Path() string {
	return r.path
}

func (r *ProgramRepository) Get(ctx context.Context) (domain.Program, error) {
	if err := ctx.Err(); err != nil {
		return domain.Program{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	info, err := os.Stat(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Program{}, domain.ErrProgramNotFound
		}
		return domain.Program{}, fmt.Errorf("stat program file: %w", err)
	}

	key := fmt.Sprintf("%s|%d|%d", r.path, info.ModTime().UnixNano(), info.Size())
	if program, ok := r.cache.Get(key); ok {
		return cloneProgram(program), nil
	}

	var file programFileSchema
	found, err := readTOMLFile(r.path, "program", &file)
	if err != nil {
		return domain.Program{}, err
	}
	if !found {
		return domain.Program{}, domain.ErrProgramNotFound
	}
	if err := file.validateVersion(); err != nil {
		return domain.Program{}, err
	}

	program := fromProgramSchema(file)
	r.cache.Add(key, program)

	return cloneProgram(program), nil
}

func (r *ProgramRepository) Save(ctx context.Context, program domain.Program) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file := toProgramSchema(program)
	file.applyDefaults()

	if err := writeTOMLFile(r.path, file); err != nil {
		return err
	}
	r.cache.Purge()

	return nil
}

func toProgramSchema(program domain.Program) programFileSchema {
	courses := make([]courseSchema, 0, len(program.Courses))
	for _, course := range program.Courses {
		courses = append(courses, courseSchema{
			Code:          domain.NormalizeCode(course.Code),
			Name:          course.Name,
			Credits:       course.Credits,
			Prerequisites: toGroups(course.Prerequisites),
			Corequisites:  course.Corequisites,
		})
	}

	var overrides []overrideSchema
	for _, override := range sortedOverrides(program.Overrides) {
		overrides = append(overrides, overrideSchema{
			Code:          override.Code,
			Prerequisites: toGroups(override.Prerequisites),
		})
	}

	areas := make([]areaSchema, 0, len(program.Requirements.Areas))
	for _, area := range program.Requirements.Areas {
		areas = append(areas, areaSchema{
			Name:       area.Name,
			Kind:       string(area.Kind),
			MinCredits: area.MinCredits,
			Foundation: area.Foundation,
			Courses:    area.Courses,
			Required:   area.Required,
		})
	}

	return programFileSchema{
		Name:       program.Name,
		ImportedAt: formatTime(program.ImportedAt),
		Courses:    courses,
		Overrides:  overrides,
		Requirements: requirementsSchema{
			TotalCredits:  program.Requirements.TotalCredits,
			FirstSemester: program.Requirements.FirstSemester,
			Areas:         areas,
		},
	}
}

func fromProgramSchema(file programFileSchema) domain.Program {
	courses := make([]domain.Course, 0, len(file.Courses))
	for _, course := range file.Courses {
		courses = append(courses, domain.Course{
			Code:          course.Code,
			Name:          course.Name,
			Credits:       course.Credits,
			Prerequisites: fromGroups(course.Prerequisites),
			Corequisites:  course.Corequisites,
		})
	}

	var overrides domain.OverrideTable
	if len(file.Overrides) > 0 {
		overrides = make(domain.OverrideTable, len(file.Overrides))
		for _, override := range file.Overrides {
			overrides[domain.NormalizeCode(override.Code)] = fromGroups(override.Prerequisites)
		}
	}

	areas := make([]domain.DegreeArea, 0, len(file.Requirements.Areas))
	for _, area := range file.Requirements.Areas {
		areas = append(areas, domain.DegreeArea{
			Name:       area.Name,
			Kind:       domain.AreaKind(area.Kind),
			MinCredits: area.MinCredits,
			Foundation: area.Foundation,
			Courses:    area.Courses,
			Required:   area.Required,
		})
	}

	return domain.Program{
		Name:       file.Name,
		Courses:    courses,
		Overrides:  overrides,
		ImportedAt: parseTime(file.ImportedAt),
		Requirements: domain.Requirements{
			Areas:         areas,
			FirstSemester: file.Requirements.FirstSemester,
			TotalCredits:  file.Requirements.TotalCredits,
		},
	}
}

func toGroups(expr domain.Expression) [][]string {
	if expr.IsEmpty() {
		return nil
	}

	groups := make([][]string, 0, len(expr.Groups))
	for _, group := range expr.Groups {
		codes := make([]string, 0, len(group))
		for _, code := range group {
			codes = append(codes, domain.NormalizeCode(code))
		}
		groups = append(groups, codes)
	}
	return groups
}

func fromGroups(groups [][]string) domain.Expression {
	if len(groups) == 0 {
		return domain.Expression{}
	}

	out := make([]domain.OrGroup, 0, len(groups))
	for _, group := range groups {
		out = append(out, domain.AnyOf(group...))
	}
	return domain.Requires(out...)
}

func sortedOverrides(table domain.OverrideTable) []domain.Override {
	if len(table) == 0 {
		return nil
	}

	codes := make([]string, 0, len(table))
	for code := range table {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	out := make([]domain.Override, 0, len(codes))
	for _, code := range codes {
		out = append(out, domain.Override{Code: domain.NormalizeCode(code), Prerequisites: table[code]})
	}
	return out
}

// cloneProgram copies the slices callers are likely to modify so cached
// entries stay intact.
func cloneProgram(program domain.Program) domain.Program {
	program.Courses = append([]domain.Course(nil), program.Courses...)
	program.Requirements.Areas = append([]domain.DegreeArea(nil), program.Requirements.Areas...)
	program.Requirements.FirstSemester = append([]string(nil), program.Requirements.FirstSemester...)
	return program
}
