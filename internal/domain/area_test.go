package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDegreeAreaValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		area    DegreeArea
		wantErr string
	}{
		{
			name: "valid",
			area: DegreeArea{Name: "Technical Core", Kind: AreaCore, MinCredits: 30},
		},
		{
			name:    "missing name",
			area:    DegreeArea{Kind: AreaCore},
			wantErr: "name is required",
		},
		{
			name:    "missing kind",
			area:    DegreeArea{Name: "Core"},
			wantErr: "kind is required",
		},
		{
			name:    "unsupported kind",
			area:    DegreeArea{Name: "Core", Kind: "foo"},
			wantErr: "unsupported area kind",
		},
		{
			name:    "negative minimum",
			area:    DegreeArea{Name: "Core", Kind: AreaGeneral, MinCredits: -1},
			wantErr: "must not be negative",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.area.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestDegreeAreaNormalizeCoursesDeduplicatesAndIncludesRequired(t *testing.T) {
	t.Parallel()

	area := DegreeArea{
		Courses:  []string{"cs-101", "", "CS 102", "CS101"},
		Required: []string{"math 100", "MATH-100"},
	}
	area.NormalizeCourses()

	assert.Equal(t, []string{"CS101", "CS102", "MATH100"}, area.Courses)
	assert.Equal(t, []string{"MATH100"}, area.Required)
	assert.True(t, area.Contains("math-100"))
	assert.True(t, area.IsRequired("MATH100"))
}

func TestParseAreaKindAliases(t *testing.T) {
	t.Parallel()

	kind, err := ParseAreaKind("Gen_Ed")
	require.NoError(t, err)
	assert.Equal(t, AreaGeneral, kind)
	assert.False(t, kind.Technical())

	kind, err = ParseAreaKind("track")
	require.NoError(t, err)
	assert.True(t, kind.Technical())
}

func TestRequirementsProgressCountsEveryListingArea(t *testing.T) {
	t.Parallel()

	catalog := mustCatalog(t,
		Course{Code: "A", Credits: 3},
		Course{Code: "B", Credits: 4},
	)
	slots := mustSequence(t, TermFall, 2024, TermSpring, 2024)
	ledger := NewLedger(slots)
	validator := NewValidator(catalog)
	_, err := validator.Place("A", "Fall 2024", ledger)
	require.NoError(t, err)
	_, err = validator.Place("B", "Spring 2025", ledger)
	require.NoError(t, err)

	reqs := Requirements{Areas: []DegreeArea{
		{Name: "Core", Kind: AreaCore, MinCredits: 6, Courses: []string{"A", "B"}},
		{Name: "Gen", Kind: AreaGeneral, MinCredits: 3, Courses: []string{"B"}},
	}}

	progress := reqs.Progress(ledger)
	require.Len(t, progress, 2)
	assert.Equal(t, 7, progress[0].Earned)
	assert.True(t, progress[0].Met())
	assert.Equal(t, 4, progress[1].Earned)
	assert.True(t, progress[1].Met())
}

func TestRequirementsValidateRejectsUnknownCourses(t *testing.T) {
	t.Parallel()

	catalog := mustCatalog(t, Course{Code: "A", Credits: 3})
	reqs := Requirements{
		Areas:         []DegreeArea{{Name: "Core", Kind: AreaCore, Courses: []string{"A", "Z"}}},
		FirstSemester: []string{"A"},
	}

	err := reqs.Validate(catalog)
	require.ErrorIs(t, err, ErrUnknownCourse)
}
