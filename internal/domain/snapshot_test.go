package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerSnapshotListsEverySemester(t *testing.T) {
	t.Parallel()

	catalog := chainCatalog(t)
	ledger := NewLedger(mustSequence(t, TermFall, 2024, TermSpring, 2024))
	validator := NewValidator(catalog)
	_, err := validator.Place("A", "Fall 2024", ledger)
	require.NoError(t, err)
	_, err = validator.Place("X", "Fall 2024", ledger)
	require.NoError(t, err)

	assert.Equal(t, Snapshot{
		"Fall 2024":   {Courses: []string{"A", "X"}, Credits: 6},
		"Spring 2025": {Courses: []string{}, Credits: 0},
	}, ledger.Snapshot())
}

func TestRestoreLedgerRecomputesCredits(t *testing.T) {
	t.Parallel()

	catalog := chainCatalog(t)
	slots := mustSequence(t, TermFall, 2024, TermSpring, 2024)

	ledger, err := RestoreLedger(catalog, slots, Snapshot{
		"fall 2024":   {Courses: []string{"a", "x"}, Credits: 99},
		"Spring 2025": {Courses: []string{"B"}},
	})
	require.NoError(t, err)

	placement, err := ledger.Placement("Fall 2024")
	require.NoError(t, err)
	assert.Equal(t, 6, placement.Credits)
	assert.Equal(t, []string{"A", "X"}, placement.Codes())
	assert.Equal(t, 9, ledger.TotalCredits())
	assertLedgerInvariants(t, ledger)
}

func TestRestoreLedgerRejectsStructuralDefects(t *testing.T) {
	t.Parallel()

	catalog := chainCatalog(t)
	slots := mustSequence(t, TermFall, 2024, TermSpring, 2024)

	_, err := RestoreLedger(catalog, slots, Snapshot{"Fall 2030": {Courses: []string{"A"}}})
	assert.ErrorIs(t, err, ErrUnknownSemester)

	_, err = RestoreLedger(catalog, slots, Snapshot{
		"Fall 2024":   {Courses: []string{"A"}},
		"Spring 2025": {Courses: []string{"A"}},
	})
	assert.ErrorIs(t, err, ErrDuplicateCourse)

	_, err = RestoreLedger(catalog, slots, Snapshot{"Fall 2024": {Courses: []string{"ZZZ"}}})
	assert.ErrorIs(t, err, ErrUnknownCourse)
}

func TestReplaySnapshotValidatesChronologically(t *testing.T) {
	t.Parallel()

	catalog := chainCatalog(t)
	slots := mustSequence(t, TermFall, 2024, TermSpring, 2024)

	ledger, rejections, err := ReplaySnapshot(NewValidator(catalog), slots, Snapshot{
		"Spring 2025": {Courses: []string{"B", "A", "NOPE"}},
		"Fall 2024":   {Courses: []string{"B", "X"}},
	})
	require.NoError(t, err)

	require.Len(t, rejections, 3)
	assert.Equal(t, "Fall 2024", rejections[0].Semester)
	assert.Equal(t, "B", rejections[0].Code)
	assert.ErrorIs(t, rejections[0].Err, ErrPrerequisitesUnmet)
	assert.Equal(t, "Spring 2025", rejections[1].Semester)
	assert.ErrorIs(t, rejections[1].Err, ErrPrerequisitesUnmet)
	assert.ErrorIs(t, rejections[2].Err, ErrUnknownCourse)

	assert.Equal(t, Snapshot{
		"Fall 2024":   {Courses: []string{"X"}, Credits: 3},
		"Spring 2025": {Courses: []string{"A"}, Credits: 3},
	}, ledger.Snapshot())
	assertLedgerInvariants(t, ledger)
}

func TestLedgerCloneIsIndependent(t *testing.T) {
	t.Parallel()

	catalog := chainCatalog(t)
	ledger := NewLedger(mustSequence(t, TermFall, 2024, TermFall, 2024))
	validator := NewValidator(catalog)
	_, err := validator.Place("A", "Fall 2024", ledger)
	require.NoError(t, err)

	clone := ledger.Clone()
	_, err = validator.Remove("A", "Fall 2024", clone)
	require.NoError(t, err)

	assert.True(t, ledger.Contains("A"))
	assert.False(t, clone.Contains("A"))
}
