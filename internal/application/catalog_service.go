package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bnema/degreeplan-cli/internal/domain"
	"github.com/bnema/degreeplan-cli/internal/ports"
)

type CatalogService struct {
	programs ports.ProgramRepository
	clock    ports.Clock
	logger   zerolog.Logger
}

func NewCatalogService(programs ports.ProgramRepository, clock ports.Clock, logger zerolog.Logger) *CatalogService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &CatalogService{
		programs: programs,
		clock:    clock,
		logger:   logger.With().Str("component", "catalog_service").Logger(),
	}
}

// ImportProgram validates an ingested program and replaces the stored one.
// A program whose references or requirements do not resolve against its own
// catalog is rejected as a whole.
func (s *CatalogService) ImportProgram(ctx context.Context, cmd ImportProgramCommand) (ImportProgramResult, error) {
	program := cmd.Program
	program.Name = strings.TrimSpace(program.Name)

	catalog, err := program.Catalog()
	if err != nil {
		return ImportProgramResult{}, fmt.Errorf("build catalog: %w", err)
	}

	areas := make([]domain.DegreeArea, len(program.Requirements.Areas))
	for i, area := range program.Requirements.Areas {
		kind, err := domain.ParseAreaKind(string(area.Kind))
		if err != nil {
			return ImportProgramResult{}, fmt.Errorf("area %s: %w", area.Name, err)
		}
		area.Kind = kind
		area.NormalizeCourses()
		areas[i] = area
	}
	program.Requirements.Areas = areas
	program.Requirements.FirstSemester = normalizedCodes(program.Requirements.FirstSemester)

	if err := program.Requirements.Validate(catalog); err != nil {
		return ImportProgramResult{}, fmt.Errorf("validate requirements: %w", err)
	}

	program.Overrides = program.Overrides.Normalize()
	program.ImportedAt = s.clock.Now()
	if err := s.programs.Save(ctx, program); err != nil {
		return ImportProgramResult{}, fmt.Errorf("save program: %w", err)
	}

	if cmd.Skipped > 0 {
		s.logger.Warn().Int("skipped", cmd.Skipped).Msg("malformed course records skipped")
	}
	s.logger.Info().
		Str("program", program.Name).
		Int("courses", catalog.Len()).
		Int("areas", len(areas)).
		Msg("program imported")

	return ImportProgramResult{
		Name:      program.Name,
		Courses:   catalog.Len(),
		Overrides: len(catalog.Overrides()),
		Areas:     len(areas),
		Skipped:   cmd.Skipped,
	}, nil
}

func (s *CatalogService) GetProgram(ctx context.Context) (domain.Program, error) {
	program, err := s.programs.Get(ctx)
	if err != nil {
		return domain.Program{}, fmt.Errorf("get program: %w", err)
	}
	return program, nil
}

// ListCourses returns the catalog in source order with effective
// prerequisites, overrides applied.
func (s *CatalogService) ListCourses(ctx context.Context) ([]CourseLine, error) {
	catalog, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]CourseLine, 0, catalog.Len())
	for _, course := range catalog.Courses() {
		lines = append(lines, courseLine(catalog, course.Code))
	}
	return lines, nil
}

func (s *CatalogService) Overrides(ctx context.Context) ([]domain.Override, error) {
	catalog, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Overrides(), nil
}

func (s *CatalogService) catalog(ctx context.Context) (*domain.Catalog, error) {
	program, err := s.GetProgram(ctx)
	if err != nil {
		return nil, err
	}
	catalog, err := program.Catalog()
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return catalog, nil
}

func normalizedCodes(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		if normalized := domain.NormalizeCode(code); normalized != "" {
			out = append(out, normalized)
		}
	}
	return out
}
