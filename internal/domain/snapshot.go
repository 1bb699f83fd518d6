package domain

import (
	"fmt"
	"sort"
)

// Snapshot is the persisted and exchanged form of a ledger, keyed by semester name.
type Snapshot map[string]SnapshotSemester

type SnapshotSemester struct {
	Courses []string
	Credits int
}

type ReplayRejection struct {
	Semester string
	Code     string
	Err      error
}

func (s Snapshot) canonical(slots []SemesterSlot) (map[string]SnapshotSemester, error) {
	known := make(map[string]struct{}, len(slots))
	for _, slot := range slots {
		known[slot.Name] = struct{}{}
	}

	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]SnapshotSemester, len(s))
	for _, name := range names {
		canonical, err := CanonicalSemesterName(name)
		if err != nil {
			return nil, err
		}
		if _, ok := known[canonical]; !ok {
			return nil, fmt.Errorf("%w: %q is outside the plan range", ErrUnknownSemester, name)
		}
		entry := out[canonical]
		entry.Courses = append(entry.Courses, s[name].Courses...)
		out[canonical] = entry
	}
	return out, nil
}

// RestoreLedger rebuilds a ledger from a snapshot this tool persisted itself,
// without re-running placement rules. Uniqueness still holds and credit
// totals are recomputed from the catalog rather than trusted.
func RestoreLedger(catalog *Catalog, slots []SemesterSlot, snapshot Snapshot) (*Ledger, error) {
	ledger := NewLedger(slots)
	entries, err := snapshot.canonical(ledger.slots)
	if err != nil {
		return nil, err
	}

	for index, slot := range ledger.slots {
		for _, code := range entries[slot.Name].Courses {
			course, ok := catalog.Course(code)
			if !ok {
				return nil, fmt.Errorf("restore %s: %w: %s", slot.Name, ErrUnknownCourse, NormalizeCode(code))
			}
			if other, ok := ledger.Locate(course.Code); ok {
				return nil, fmt.Errorf("restore %s: %w: %s already in %s", slot.Name, ErrDuplicateCourse, course.Code, other.Name)
			}
			ledger.append(index, PlacedCourse{Code: course.Code, Credits: course.Credits})
		}
	}

	return ledger, nil
}

// ReplaySnapshot rebuilds a ledger by placing every snapshot entry through
// the validator in chronological order. Rejected entries are reported, the
// rest are kept.
func ReplaySnapshot(validator *Validator, slots []SemesterSlot, snapshot Snapshot) (*Ledger, []ReplayRejection, error) {
	ledger := NewLedger(slots)
	entries, err := snapshot.canonical(ledger.slots)
	if err != nil {
		return nil, nil, err
	}

	var rejections []ReplayRejection
	for _, slot := range ledger.slots {
		for _, code := range entries[slot.Name].Courses {
			if _, err := validator.Place(code, slot.Name, ledger); err != nil {
				rejections = append(rejections, ReplayRejection{Semester: slot.Name, Code: NormalizeCode(code), Err: err})
			}
		}
	}

	return ledger, rejections, nil
}
