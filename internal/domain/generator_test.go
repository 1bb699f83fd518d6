package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorPlacesFirstSemesterThenFillsByRank(t *testing.T) {
	t.Parallel()

	catalog := mustCatalog(t,
		Course{Code: "C1", Credits: 3},
		Course{Code: "C2", Credits: 3, Prerequisites: Requires(AnyOf("C1"))},
		Course{Code: "G1", Credits: 3},
		Course{Code: "G2", Credits: 3},
	)
	reqs := Requirements{
		Areas: []DegreeArea{
			{Name: "Core", Kind: AreaCore, MinCredits: 6, Courses: []string{"C1", "C2"}, Required: []string{"C1"}},
			{Name: "Gen Ed", Kind: AreaGeneral, MinCredits: 6, Courses: []string{"G1", "G2"}},
		},
		FirstSemester: []string{"C1"},
		TotalCredits:  12,
	}
	opts := DefaultGenerateOptions(2024)
	opts.MaxSemesters = 3
	opts.CoursesPerRegularSemester = 1

	plan, err := NewGenerator(NewValidator(catalog)).Generate(reqs, opts)
	require.NoError(t, err)

	assert.Equal(t, Snapshot{
		"Fall 2024":   {Courses: []string{"C1", "G1"}, Credits: 6},
		"Spring 2025": {Courses: []string{"C2", "G2"}, Credits: 6},
		"Summer 2025": {Courses: []string{}, Credits: 0},
	}, plan.Ledger.Snapshot())
	assert.Equal(t, 12, plan.PlacedCredits)
	assert.Empty(t, plan.Unmet)
	assertLedgerInvariants(t, plan.Ledger)
}

func TestGeneratorSummerPrefersGeneralEducationAndExcludesHeavyTechnical(t *testing.T) {
	t.Parallel()

	catalog := mustCatalog(t,
		Course{Code: "T1", Credits: 3},
		Course{Code: "T2", Credits: 3},
		Course{Code: "T3", Credits: 4},
		Course{Code: "G1", Credits: 3},
		Course{Code: "G2", Credits: 3},
		Course{Code: "G3", Credits: 3},
	)
	reqs := Requirements{Areas: []DegreeArea{
		{Name: "Core", Kind: AreaCore, MinCredits: 20, Courses: []string{"T1", "T2", "T3"}},
		{Name: "Gen Ed", Kind: AreaGeneral, MinCredits: 9, Courses: []string{"G1", "G2", "G3"}},
	}}
	opts := GenerateOptions{
		StartYear:                 2024,
		IncludeSummer:             true,
		MaxSummerTerms:            1,
		MaxSemesters:              6,
		CoursesPerRegularSemester: 1,
		CoursesPerSummerSemester:  2,
		SummerTechCreditLimit:     3,
	}

	plan, err := NewGenerator(NewValidator(catalog)).Generate(reqs, opts)
	require.NoError(t, err)

	assert.Equal(t, Snapshot{
		"Fall 2024":   {Courses: []string{"T1", "G1"}, Credits: 6},
		"Spring 2025": {Courses: []string{"T2", "G2"}, Credits: 6},
		"Summer 2025": {Courses: []string{"G3"}, Credits: 3},
		"Fall 2025":   {Courses: []string{"T3"}, Credits: 4},
		"Spring 2026": {Courses: []string{}, Credits: 0},
		"Summer 2026": {Courses: []string{}, Credits: 0},
	}, plan.Ledger.Snapshot())

	require.Len(t, plan.Unmet, 1)
	assert.Equal(t, UnmetRequirement{Kind: UnmetAreaCredits, Area: "Core", Needed: 20, Earned: 10}, plan.Unmet[0])
	assert.Equal(t, "Core: 10 of 20 credits", plan.Unmet[0].String())
}

func TestGeneratorSkipsSummersWhenDisabled(t *testing.T) {
	t.Parallel()

	catalog := mustCatalog(t,
		Course{Code: "G1", Credits: 3},
		Course{Code: "G2", Credits: 3},
		Course{Code: "G3", Credits: 3},
	)
	reqs := Requirements{Areas: []DegreeArea{
		{Name: "Gen Ed", Kind: AreaGeneral, MinCredits: 9, Courses: []string{"G1", "G2", "G3"}},
	}}
	opts := DefaultGenerateOptions(2024)
	opts.MaxSemesters = 4
	opts.CoursesPerRegularSemester = 1

	plan, err := NewGenerator(NewValidator(catalog)).Generate(reqs, opts)
	require.NoError(t, err)

	snapshot := plan.Ledger.Snapshot()
	assert.Empty(t, snapshot["Summer 2025"].Courses)
	assert.Equal(t, []string{"G3"}, snapshot["Fall 2025"].Courses)
}

func TestGeneratorRanksRequiredBeforeFoundationBeforeElectives(t *testing.T) {
	t.Parallel()

	catalog := mustCatalog(t,
		Course{Code: "E1", Credits: 3},
		Course{Code: "F1", Credits: 3},
		Course{Code: "R1", Credits: 3},
	)
	reqs := Requirements{Areas: []DegreeArea{
		{Name: "Electives", Kind: AreaSpecialization, MinCredits: 3, Courses: []string{"E1"}},
		{Name: "Foundation", Kind: AreaCore, Foundation: true, Courses: []string{"F1"}},
		{Name: "Core", Kind: AreaCore, Required: []string{"R1"}},
	}}
	opts := DefaultGenerateOptions(2024)
	opts.MaxSemesters = 2
	opts.CoursesPerRegularSemester = 2

	plan, err := NewGenerator(NewValidator(catalog)).Generate(reqs, opts)
	require.NoError(t, err)

	snapshot := plan.Ledger.Snapshot()
	assert.Equal(t, []string{"R1", "F1"}, snapshot["Fall 2024"].Courses)
	assert.Equal(t, []string{"E1"}, snapshot["Spring 2025"].Courses)
}

func TestGeneratorStopsAddingElectivesOnceAreaMinimumIsMet(t *testing.T) {
	t.Parallel()

	catalog := mustCatalog(t,
		Course{Code: "E1", Credits: 3},
		Course{Code: "E2", Credits: 3},
		Course{Code: "E3", Credits: 3},
	)
	reqs := Requirements{Areas: []DegreeArea{
		{Name: "Electives", Kind: AreaSpecialization, MinCredits: 6, Courses: []string{"E1", "E2", "E3"}},
	}}
	opts := DefaultGenerateOptions(2024)
	opts.MaxSemesters = 2
	opts.CoursesPerRegularSemester = 3

	plan, err := NewGenerator(NewValidator(catalog)).Generate(reqs, opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"E1", "E2"}, plan.Ledger.Snapshot()["Fall 2024"].Courses)
	assert.False(t, plan.Ledger.Contains("E3"))
	assert.Empty(t, plan.Unmet)
}

func TestGeneratorReportsResidualRequirements(t *testing.T) {
	t.Parallel()

	catalog := mustCatalog(t,
		Course{Code: "P", Credits: 3, Prerequisites: Requires(AnyOf("Q"))},
		Course{Code: "Q", Credits: 3, Prerequisites: Requires(AnyOf("P"))},
		Course{Code: "L", Credits: 3, Prerequisites: Requires(AnyOf("P"))},
	)
	reqs := Requirements{
		Areas: []DegreeArea{
			{Name: "Core", Kind: AreaCore, MinCredits: 9, Required: []string{"P"}, Courses: []string{"Q"}},
		},
		FirstSemester: []string{"L"},
		TotalCredits:  30,
	}
	opts := DefaultGenerateOptions(2024)
	opts.MaxSemesters = 2

	plan, err := NewGenerator(NewValidator(catalog)).Generate(reqs, opts)
	require.NoError(t, err)

	assert.Equal(t, 0, plan.PlacedCredits)
	assert.Equal(t, []UnmetRequirement{
		{Kind: UnmetFirstSemester, Code: "L"},
		{Kind: UnmetRequired, Area: "Core", Code: "P"},
		{Kind: UnmetAreaCredits, Area: "Core", Needed: 9, Earned: 0},
		{Kind: UnmetTotalCredits, Needed: 30, Earned: 0},
	}, plan.Unmet)
}

func TestGeneratorRespectsPrerequisiteOrdering(t *testing.T) {
	t.Parallel()

	catalog := mustCatalog(t,
		Course{Code: "A1", Credits: 3},
		Course{Code: "A2", Credits: 3, Prerequisites: Requires(AnyOf("A1"))},
		Course{Code: "A3", Credits: 3, Prerequisites: Requires(AnyOf("A2"))},
		Course{Code: "A4", Credits: 3, Prerequisites: Requires(AnyOf("A1"), AnyOf("A3"))},
	)
	reqs := Requirements{Areas: []DegreeArea{
		{Name: "Core", Kind: AreaCore, Required: []string{"A4", "A3", "A2", "A1"}},
	}}
	opts := DefaultGenerateOptions(2024)
	opts.MaxSemesters = 8

	plan, err := NewGenerator(NewValidator(catalog)).Generate(reqs, opts)
	require.NoError(t, err)

	order := map[string]int{}
	for _, slot := range plan.Ledger.Slots() {
		placement, err := plan.Ledger.Placement(slot.Name)
		require.NoError(t, err)
		for _, code := range placement.Codes() {
			order[code] = slot.Index
		}
	}

	require.Len(t, order, 4)
	assert.Less(t, order["A1"], order["A2"])
	assert.Less(t, order["A2"], order["A3"])
	assert.Less(t, order["A3"], order["A4"])
	assertLedgerInvariants(t, plan.Ledger)
}

func TestGeneratorIsDeterministic(t *testing.T) {
	t.Parallel()

	courses := []Course{
		{Code: "CS101", Credits: 3},
		{Code: "CS102", Credits: 3, Prerequisites: Requires(AnyOf("CS101"))},
		{Code: "CS201", Credits: 4, Prerequisites: Requires(AnyOf("CS102"))},
		{Code: "CS202", Credits: 4, Prerequisites: Requires(AnyOf("CS102", "MATH101"))},
		{Code: "MATH101", Credits: 4},
		{Code: "MATH102", Credits: 4, Prerequisites: Requires(AnyOf("MATH101"))},
		{Code: "ENG101", Credits: 3},
		{Code: "HIST101", Credits: 3},
		{Code: "ART101", Credits: 2},
		{Code: "PHIL101", Credits: 3},
	}
	reqs := Requirements{
		Areas: []DegreeArea{
			{Name: "Core", Kind: AreaCore, MinCredits: 14, Foundation: true, Courses: []string{"CS101", "CS102", "MATH101", "MATH102"}},
			{Name: "Track", Kind: AreaSpecialization, MinCredits: 4, Courses: []string{"CS201", "CS202"}},
			{Name: "Humanities", Kind: AreaGeneral, MinCredits: 6, Courses: []string{"HIST101", "PHIL101", "ART101"}, Required: []string{"ENG101"}},
		},
		FirstSemester: []string{"CS101", "MATH101"},
		TotalCredits:  30,
	}
	opts := DefaultGenerateOptions(2024)
	opts.IncludeSummer = true

	run := func() GeneratedPlan {
		catalog, err := NewCatalog(courses, nil)
		require.NoError(t, err)
		plan, err := NewGenerator(NewValidator(catalog)).Generate(reqs, opts)
		require.NoError(t, err)
		return plan
	}

	first := run()
	for i := 0; i < 5; i++ {
		again := run()
		assert.Equal(t, first.Ledger.Snapshot(), again.Ledger.Snapshot())
		assert.Equal(t, first.Unmet, again.Unmet)
	}
	assertLedgerInvariants(t, first.Ledger)
}

func TestGenerateOptionsValidate(t *testing.T) {
	t.Parallel()

	opts := DefaultGenerateOptions(2024)
	require.NoError(t, opts.Validate())

	opts.MaxSemesters = 0
	assert.ErrorContains(t, opts.Validate(), "max semesters")

	opts = DefaultGenerateOptions(2024)
	opts.CoursesPerSummerSemester = -1
	assert.ErrorContains(t, opts.Validate(), "must not be negative")
}
