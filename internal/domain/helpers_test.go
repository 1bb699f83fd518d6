package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustCatalog(t *testing.T, courses ...Course) *Catalog {
	t.Helper()

	catalog, err := NewCatalog(courses, nil)
	require.NoError(t, err)
	return catalog
}

func mustSequence(t *testing.T, startTerm Term, startYear int, endTerm Term, endYear int) []SemesterSlot {
	t.Helper()

	slots, err := Sequence(startTerm, startYear, endTerm, endYear)
	require.NoError(t, err)
	return slots
}

// assertLedgerInvariants checks uniqueness and the credit-sum invariant.
func assertLedgerInvariants(t *testing.T, ledger *Ledger) {
	t.Helper()

	seen := CodeSet{}
	for _, slot := range ledger.Slots() {
		placement, err := ledger.Placement(slot.Name)
		require.NoError(t, err)

		sum := 0
		for _, course := range placement.Courses {
			require.False(t, seen.Has(course.Code), "%s placed twice", course.Code)
			seen.Add(course.Code)
			sum += course.Credits
		}
		require.Equal(t, sum, placement.Credits, "credit total of %s", slot.Name)
	}
}
