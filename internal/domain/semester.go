package domain

import (
	"fmt"
	"strconv"
	"strings"
)

type Term string

const (
	TermFall   Term = "Fall"
	TermSpring Term = "Spring"
	TermSummer Term = "Summer"
)

var termCycle = [...]Term{TermFall, TermSpring, TermSummer}

func ParseTerm(raw string) (Term, error) {
	for _, term := range termCycle {
		if strings.EqualFold(strings.TrimSpace(raw), string(term)) {
			return term, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTerm, raw)
}

func (t Term) position() int {
	for i, term := range termCycle {
		if term == t {
			return i
		}
	}
	return -1
}

type SemesterType string

const (
	SemesterRegular SemesterType = "regular"
	SemesterSummer  SemesterType = "summer"
)

const (
	RegularCreditCap = 22
	SummerCreditCap  = 10
)

func CreditCap(t SemesterType) int {
	if t == SemesterSummer {
		return SummerCreditCap
	}
	return RegularCreditCap
}

func (t Term) SemesterType() SemesterType {
	if t == TermSummer {
		return SemesterSummer
	}
	return SemesterRegular
}

type SemesterSlot struct {
	Name  string
	Term  Term
	Year  int
	Type  SemesterType
	Index int
	Cap   int
}

func (s SemesterSlot) Before(other SemesterSlot) bool {
	return s.Index < other.Index
}

const (
	MinAcademicYear = 1
	MaxAcademicYear = 9998
	// MaxSequenceLength caps a plan at thirty academic years.
	MaxSequenceLength = 90
)

func checkAcademicYear(year int) error {
	if year < MinAcademicYear || year > MaxAcademicYear {
		return fmt.Errorf("%w: academic year %d outside %d..%d", ErrInvalidRange, year, MinAcademicYear, MaxAcademicYear)
	}
	return nil
}

// Sequence lists every semester from start to end inclusive. Years are
// academic years: the calendar year in which that academic year's Fall falls.
// Spring and Summer are displayed with the following calendar year.
func Sequence(startTerm Term, startYear int, endTerm Term, endYear int) ([]SemesterSlot, error) {
	startPos := startTerm.position()
	if startPos < 0 {
		return nil, fmt.Errorf("start: %w: %q", ErrUnknownTerm, startTerm)
	}
	endPos := endTerm.position()
	if endPos < 0 {
		return nil, fmt.Errorf("end: %w: %q", ErrUnknownTerm, endTerm)
	}

	if err := checkAcademicYear(startYear); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	if err := checkAcademicYear(endYear); err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}

	first := startYear*len(termCycle) + startPos
	last := endYear*len(termCycle) + endPos
	if last < first {
		return nil, fmt.Errorf("%w: %s %d is after %s %d", ErrInvalidRange, startTerm, startYear, endTerm, endYear)
	}
	if last-first+1 > MaxSequenceLength {
		return nil, fmt.Errorf("%w: %d semesters exceeds the limit of %d", ErrInvalidRange, last-first+1, MaxSequenceLength)
	}

	slots := make([]SemesterSlot, 0, last-first+1)
	for ordinal := first; ordinal <= last; ordinal++ {
		academicYear := ordinal / len(termCycle)
		term := termCycle[ordinal%len(termCycle)]
		slots = append(slots, newSlot(term, academicYear, len(slots)))
	}

	return slots, nil
}

func SequenceCount(startTerm Term, startYear int, n int) ([]SemesterSlot, error) {
	startPos := startTerm.position()
	if startPos < 0 {
		return nil, fmt.Errorf("start: %w: %q", ErrUnknownTerm, startTerm)
	}
	if n <= 0 {
		return []SemesterSlot{}, nil
	}
	if err := checkAcademicYear(startYear); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	if n > MaxSequenceLength {
		return nil, fmt.Errorf("%w: %d semesters exceeds the limit of %d", ErrInvalidRange, n, MaxSequenceLength)
	}

	last := startYear*len(termCycle) + startPos + n - 1
	return Sequence(startTerm, startYear, termCycle[last%len(termCycle)], last/len(termCycle))
}

func newSlot(term Term, academicYear, index int) SemesterSlot {
	year := academicYear
	if term != TermFall {
		year++
	}
	semesterType := term.SemesterType()
	return SemesterSlot{
		Name:  fmt.Sprintf("%s %d", term, year),
		Term:  term,
		Year:  year,
		Type:  semesterType,
		Index: index,
		Cap:   CreditCap(semesterType),
	}
}

// ParseSemesterName splits a display name such as "Spring 2025" into its term
// and academic year.
func ParseSemesterName(name string) (Term, int, error) {
	fields := strings.Fields(name)
	if len(fields) != 2 {
		return "", 0, fmt.Errorf("%w: %q", ErrUnknownSemester, name)
	}

	term, err := ParseTerm(fields[0])
	if err != nil {
		return "", 0, err
	}

	year, err := strconv.Atoi(fields[1])
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q", ErrUnknownSemester, name)
	}
	if term != TermFall {
		year--
	}

	return term, year, nil
}

func CanonicalSemesterName(name string) (string, error) {
	term, academicYear, err := ParseSemesterName(name)
	if err != nil {
		return "", err
	}
	return newSlot(term, academicYear, 0).Name, nil
}
