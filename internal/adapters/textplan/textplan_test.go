package textplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/degreeplan-cli/internal/domain"
)

func TestFormatThenParseKeepsPlacements(t *testing.T) {
	t.Parallel()

	catalog, err := domain.NewCatalog([]domain.Course{
		{Code: "MATH100", Credits: 3},
		{Code: "ENG101", Credits: 3},
		{Code: "CS101", Credits: 4, Prerequisites: domain.Requires(domain.AnyOf("MATH100"))},
	}, nil)
	require.NoError(t, err)
	slots, err := domain.Sequence(domain.TermFall, 2024, domain.TermSummer, 2024)
	require.NoError(t, err)

	snapshot := domain.Snapshot{
		"Fall 2024":   {Courses: []string{"MATH100", "ENG101"}},
		"Spring 2025": {Courses: []string{"CS101"}},
	}
	ledger, err := domain.RestoreLedger(catalog, slots, snapshot)
	require.NoError(t, err)

	text := Codec{}.Format(domain.Plan{Name: "Main"}, ledger)
	assert.Equal(t, "# Plan: Main\n"+
		"Fall 2024 (6 credits)\n"+
		"  MATH100\n"+
		"  ENG101\n"+
		"Spring 2025 (4 credits)\n"+
		"  CS101\n"+
		"Summer 2025 (0 credits)\n", text)

	parsed, err := Codec{}.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, ledger.Snapshot(), parsed)
}

func TestParseAcceptsLooseInput(t *testing.T) {
	t.Parallel()

	text := `
# advisor draft
fall 2024
	cs-101   Intro to Programming
  MATH-100

Spring 2025 (7 credits)
  # nothing decided yet
`

	snapshot, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, domain.Snapshot{
		"Fall 2024":   {Courses: []string{"CS101", "MATH100"}},
		"Spring 2025": {Courses: []string{}, Credits: 7},
	}, snapshot)
}

func TestParseMergesRepeatedHeaders(t *testing.T) {
	t.Parallel()

	snapshot, err := Parse("Fall 2024\n  A\nSpring 2025\n  B\nFall 2024\n  C\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, snapshot["Fall 2024"].Courses)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "course before header", text: "  CS101\n", want: "line 1: course \"CS101\" before any semester header"},
		{name: "unknown term", text: "# x\nWinter 2024\n", want: "line 2: unknown term"},
		{name: "missing year", text: "Fall\n", want: "line 1: unknown semester"},
		{name: "bad credits", text: "Fall 2024 (many credits)\n", want: "line 1: credit suffix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.want)

			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestParseUnknownTermUnwraps(t *testing.T) {
	t.Parallel()

	_, err := Parse("Winter 2024\n")
	require.ErrorIs(t, err, domain.ErrUnknownTerm)
}
