package domain

import (
	"errors"
	"fmt"
)

type Reason string

const (
	ReasonDuplicateInSemester Reason = "duplicate-in-semester"
	ReasonDuplicateElsewhere  Reason = "duplicate-elsewhere"
	ReasonCreditLimitExceeded Reason = "credit-limit-exceeded"
	ReasonPrerequisitesUnmet  Reason = "prerequisites-unmet"
	ReasonRemovalBlocked      Reason = "removal-blocked"
	ReasonNotPlaced           Reason = "not-placed"
)

func (r Reason) sentinel() error {
	switch r {
	case ReasonDuplicateInSemester:
		return ErrDuplicateInSemester
	case ReasonDuplicateElsewhere:
		return ErrDuplicateElsewhere
	case ReasonCreditLimitExceeded:
		return ErrCreditLimitExceeded
	case ReasonPrerequisitesUnmet:
		return ErrPrerequisitesUnmet
	case ReasonRemovalBlocked:
		return ErrRemovalBlocked
	case ReasonNotPlaced:
		return ErrNotPlaced
	default:
		return nil
	}
}

// Violation is the expected, recoverable outcome of a rejected placement or removal.
type Violation struct {
	Reason   Reason
	Code     string
	Semester string
	// Dependent names the later course that blocks a removal.
	Dependent string
	// Other names the semester already holding a duplicate.
	Other string
}

func (v *Violation) Error() string {
	switch v.Reason {
	case ReasonRemovalBlocked:
		return fmt.Sprintf("cannot remove %s from %s: %s (required by %s)", v.Code, v.Semester, v.Reason, v.Dependent)
	case ReasonNotPlaced:
		return fmt.Sprintf("cannot remove %s from %s: %s", v.Code, v.Semester, v.Reason)
	case ReasonDuplicateElsewhere:
		return fmt.Sprintf("cannot place %s in %s: %s (already in %s)", v.Code, v.Semester, v.Reason, v.Other)
	default:
		return fmt.Sprintf("cannot place %s in %s: %s", v.Code, v.Semester, v.Reason)
	}
}

func (v *Violation) Is(target error) bool {
	sentinel := v.Reason.sentinel()
	return sentinel != nil && target == sentinel
}

func AsViolation(err error) (*Violation, bool) {
	var violation *Violation
	if errors.As(err, &violation) {
		return violation, true
	}
	return nil, false
}

type ChangeOp string

const (
	ChangeAdded   ChangeOp = "added"
	ChangeRemoved ChangeOp = "removed"
)

type Change struct {
	Op              ChangeOp
	Code            string
	Semester        string
	Credits         int
	SemesterCredits int
}

type Validator struct {
	catalog *Catalog
}

func NewValidator(catalog *Catalog) *Validator {
	if catalog == nil {
		catalog = &Catalog{index: map[string]int{}, overrides: OverrideTable{}}
	}
	return &Validator{catalog: catalog}
}

func (v *Validator) Catalog() *Catalog {
	return v.catalog
}

func (v *Validator) CheckPlace(code, semester string, ledger *Ledger) error {
	_, _, err := v.checkPlace(code, semester, ledger)
	return err
}

// Place checks, in order: duplicate in the semester, duplicate elsewhere,
// credit cap, then prerequisites against strictly earlier semesters.
func (v *Validator) Place(code, semester string, ledger *Ledger) (Change, error) {
	course, index, err := v.checkPlace(code, semester, ledger)
	if err != nil {
		return Change{}, err
	}

	placed := PlacedCourse{Code: NormalizeCode(course.Code), Credits: course.Credits}
	ledger.append(index, placed)

	return Change{
		Op:              ChangeAdded,
		Code:            placed.Code,
		Semester:        ledger.slots[index].Name,
		Credits:         placed.Credits,
		SemesterCredits: ledger.placements[index].Credits,
	}, nil
}

func (v *Validator) checkPlace(code, semester string, ledger *Ledger) (Course, int, error) {
	course, ok := v.catalog.Course(code)
	if !ok {
		return Course{}, -1, fmt.Errorf("%w: %s", ErrUnknownCourse, NormalizeCode(code))
	}
	code = course.Code

	index, err := ledger.indexOf(semester)
	if err != nil {
		return Course{}, -1, err
	}
	slot := ledger.slots[index]

	violation := func(reason Reason) *Violation {
		return &Violation{Reason: reason, Code: code, Semester: slot.Name}
	}

	if ledger.placements[index].indexOf(code) >= 0 {
		return Course{}, -1, violation(ReasonDuplicateInSemester)
	}

	if other, ok := ledger.Locate(code); ok {
		dup := violation(ReasonDuplicateElsewhere)
		dup.Other = other.Name
		return Course{}, -1, dup
	}

	if ledger.placements[index].Credits+course.Credits > slot.Cap {
		return Course{}, -1, violation(ReasonCreditLimitExceeded)
	}

	if !v.catalog.Prerequisites(code).Evaluate(ledger.PlacedBefore(index)) {
		return Course{}, -1, violation(ReasonPrerequisitesUnmet)
	}

	return course, index, nil
}

func (v *Validator) CheckRemove(code, semester string, ledger *Ledger) error {
	_, err := v.checkRemove(code, semester, ledger)
	return err
}

func (v *Validator) Remove(code, semester string, ledger *Ledger) (Change, error) {
	index, err := v.checkRemove(code, semester, ledger)
	if err != nil {
		return Change{}, err
	}

	removed, _ := ledger.remove(index, code)

	return Change{
		Op:              ChangeRemoved,
		Code:            removed.Code,
		Semester:        ledger.slots[index].Name,
		Credits:         removed.Credits,
		SemesterCredits: ledger.placements[index].Credits,
	}, nil
}

func (v *Validator) checkRemove(code, semester string, ledger *Ledger) (int, error) {
	index, err := ledger.indexOf(semester)
	if err != nil {
		return -1, err
	}
	slot := ledger.slots[index]
	normalized := NormalizeCode(code)

	if ledger.placements[index].indexOf(normalized) < 0 {
		return -1, &Violation{Reason: ReasonNotPlaced, Code: normalized, Semester: slot.Name}
	}

	for later := index + 1; later < len(ledger.slots); later++ {
		with := ledger.PlacedBefore(later)
		without := ledger.PlacedBefore(later)
		without.Remove(normalized)

		for _, dependent := range ledger.placements[later].Courses {
			expr := v.catalog.Prerequisites(dependent.Code)
			if expr.Evaluate(with) && !expr.Evaluate(without) {
				return -1, &Violation{
					Reason:    ReasonRemovalBlocked,
					Code:      normalized,
					Semester:  slot.Name,
					Dependent: dependent.Code,
				}
			}
		}
	}

	return index, nil
}
