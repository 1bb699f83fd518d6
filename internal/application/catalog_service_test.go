package application

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/degreeplan-cli/internal/domain"
	"github.com/bnema/degreeplan-cli/internal/ports/mocks"
)

func TestCatalogServiceImportProgramNormalizesAndSaves(t *testing.T) {
	programs := &inMemoryProgramRepo{}
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(testNow).Once()
	service := NewCatalogService(programs, clock, zerolog.Nop())

	program := testProgram()
	program.Name = "  BS Computer Science "
	program.Overrides = domain.OverrideTable{"cs-201": domain.Requires(domain.AnyOf("MATH100"))}
	program.Requirements.Areas[0].Kind = "technical"
	program.Requirements.Areas[1].Courses = []string{"eng 101", "ENG101"}
	program.Requirements.FirstSemester = []string{"math-100"}

	result, err := service.ImportProgram(context.Background(), ImportProgramCommand{Program: program, Skipped: 2})
	require.NoError(t, err)

	assert.Equal(t, ImportProgramResult{Name: "BS Computer Science", Courses: 4, Overrides: 1, Areas: 2, Skipped: 2}, result)

	stored := programs.program
	require.NotNil(t, stored)
	assert.Equal(t, testNow, stored.ImportedAt)
	assert.Equal(t, domain.AreaCore, stored.Requirements.Areas[0].Kind)
	assert.Equal(t, []string{"ENG101"}, stored.Requirements.Areas[1].Courses)
	assert.Equal(t, []string{"MATH100"}, stored.Requirements.FirstSemester)
	_, ok := stored.Overrides["CS201"]
	assert.True(t, ok)
}

func TestCatalogServiceImportProgramRejectsInconsistentPrograms(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Program)
		want   error
		text   string
	}{
		{
			name: "dangling prerequisite",
			mutate: func(p *domain.Program) {
				p.Courses[1].Prerequisites = domain.Requires(domain.AnyOf("PHYS100"))
			},
			want: domain.ErrDanglingReference,
		},
		{
			name: "area course outside catalog",
			mutate: func(p *domain.Program) {
				p.Requirements.Areas[0].Courses = append(p.Requirements.Areas[0].Courses, "CS999")
			},
			want: domain.ErrUnknownCourse,
		},
		{
			name: "first semester course outside catalog",
			mutate: func(p *domain.Program) {
				p.Requirements.FirstSemester = []string{"ART100"}
			},
			want: domain.ErrUnknownCourse,
		},
		{
			name: "unsupported area kind",
			mutate: func(p *domain.Program) {
				p.Requirements.Areas[1].Kind = "minor"
			},
			text: "unsupported area kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			programs := mocks.NewMockProgramRepository(t)
			service := NewCatalogService(programs, fixedClock{now: testNow}, zerolog.Nop())

			program := testProgram()
			tt.mutate(&program)

			_, err := service.ImportProgram(context.Background(), ImportProgramCommand{Program: program})
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
			if tt.text != "" {
				assert.ErrorContains(t, err, tt.text)
			}
		})
	}
}

func TestCatalogServiceImportProgramWrapsSaveError(t *testing.T) {
	programs := mocks.NewMockProgramRepository(t)
	service := NewCatalogService(programs, fixedClock{now: testNow}, zerolog.Nop())

	programs.EXPECT().Save(mockAnyContext(), mock.AnythingOfType("domain.Program")).Return(errors.New("read-only"))

	_, err := service.ImportProgram(context.Background(), ImportProgramCommand{Program: testProgram()})
	require.Error(t, err)
	assert.ErrorContains(t, err, "save program: read-only")
}

func TestCatalogServiceListCoursesAppliesOverrides(t *testing.T) {
	program := testProgram()
	program.Overrides = domain.OverrideTable{"CS201": domain.Requires(domain.AnyOf("CS101", "MATH100"))}
	service := NewCatalogService(programRepoWith(program), nil, zerolog.Nop())

	lines, err := service.ListCourses(context.Background())
	require.NoError(t, err)

	require.Len(t, lines, 4)
	assert.Equal(t, CourseLine{Code: "MATH100", Name: "Precalculus", Credits: 3, Prerequisites: "none"}, lines[0])
	assert.Equal(t, "CS101 or MATH100", lines[2].Prerequisites)

	overrides, err := service.Overrides(context.Background())
	require.NoError(t, err)
	require.Len(t, overrides, 1)
	assert.Equal(t, "CS201", overrides[0].Code)
}

func TestCatalogServiceWithoutProgram(t *testing.T) {
	programs := mocks.NewMockProgramRepository(t)
	service := NewCatalogService(programs, nil, zerolog.Nop())

	programs.EXPECT().Get(mockAnyContext()).Return(domain.Program{}, domain.ErrProgramNotFound)

	_, err := service.ListCourses(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProgramNotFound)
}
