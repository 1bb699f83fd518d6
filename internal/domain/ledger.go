package domain

import "fmt"

type PlacedCourse struct {
	Code    string
	Credits int
}

type Placement struct {
	Courses []PlacedCourse
	Credits int
}

func (p Placement) Codes() []string {
	codes := make([]string, 0, len(p.Courses))
	for _, course := range p.Courses {
		codes = append(codes, course.Code)
	}
	return codes
}

func (p Placement) indexOf(code string) int {
	for i, course := range p.Courses {
		if SameCode(course.Code, code) {
			return i
		}
	}
	return -1
}

// Ledger records which courses sit in which semester of one plan. Only the
// Validator and the snapshot restore path mutate it, which keeps a code in at
// most one semester and each semester's credit total equal to the sum of its
// courses.
type Ledger struct {
	slots      []SemesterSlot
	byName     map[string]int
	placements []Placement
}

func NewLedger(slots []SemesterSlot) *Ledger {
	l := &Ledger{
		slots:      make([]SemesterSlot, len(slots)),
		byName:     make(map[string]int, len(slots)),
		placements: make([]Placement, len(slots)),
	}
	for i, slot := range slots {
		slot.Index = i
		l.slots[i] = slot
		l.byName[slot.Name] = i
	}
	return l
}

func (l *Ledger) Slots() []SemesterSlot {
	out := make([]SemesterSlot, len(l.slots))
	copy(out, l.slots)
	return out
}

func (l *Ledger) Slot(name string) (SemesterSlot, error) {
	i, err := l.indexOf(name)
	if err != nil {
		return SemesterSlot{}, err
	}
	return l.slots[i], nil
}

func (l *Ledger) Placement(name string) (Placement, error) {
	i, err := l.indexOf(name)
	if err != nil {
		return Placement{}, err
	}
	return copyPlacement(l.placements[i]), nil
}

func (l *Ledger) indexOf(name string) (int, error) {
	i, ok := l.byName[name]
	if !ok {
		canonical, err := CanonicalSemesterName(name)
		if err == nil {
			i, ok = l.byName[canonical]
		}
	}
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownSemester, name)
	}
	return i, nil
}

func (l *Ledger) Locate(code string) (SemesterSlot, bool) {
	for i, placement := range l.placements {
		if placement.indexOf(code) >= 0 {
			return l.slots[i], true
		}
	}
	return SemesterSlot{}, false
}

func (l *Ledger) Contains(code string) bool {
	_, ok := l.Locate(code)
	return ok
}

func (l *Ledger) TotalCredits() int {
	total := 0
	for _, placement := range l.placements {
		total += placement.Credits
	}
	return total
}

func (l *Ledger) CourseCount() int {
	n := 0
	for _, placement := range l.placements {
		n += len(placement.Courses)
	}
	return n
}

// PlacedBefore returns the codes placed in semesters strictly before index.
func (l *Ledger) PlacedBefore(index int) CodeSet {
	available := CodeSet{}
	for i := 0; i < index && i < len(l.placements); i++ {
		for _, course := range l.placements[i].Courses {
			available.Add(course.Code)
		}
	}
	return available
}

func (l *Ledger) PlacedCodes() CodeSet {
	return l.PlacedBefore(len(l.placements))
}

func (l *Ledger) Clone() *Ledger {
	clone := NewLedger(l.slots)
	for i, placement := range l.placements {
		clone.placements[i] = copyPlacement(placement)
	}
	return clone
}

func (l *Ledger) Snapshot() Snapshot {
	snapshot := make(Snapshot, len(l.slots))
	for i, slot := range l.slots {
		placement := l.placements[i]
		snapshot[slot.Name] = SnapshotSemester{
			Courses: placement.Codes(),
			Credits: placement.Credits,
		}
	}
	return snapshot
}

func (l *Ledger) append(index int, course PlacedCourse) {
	placement := &l.placements[index]
	placement.Courses = append(placement.Courses, course)
	placement.Credits += course.Credits
}

func (l *Ledger) remove(index int, code string) (PlacedCourse, bool) {
	placement := &l.placements[index]
	at := placement.indexOf(code)
	if at < 0 {
		return PlacedCourse{}, false
	}
	removed := placement.Courses[at]
	placement.Courses = append(placement.Courses[:at:at], placement.Courses[at+1:]...)
	placement.Credits -= removed.Credits
	return removed, true
}

func copyPlacement(p Placement) Placement {
	courses := make([]PlacedCourse, len(p.Courses))
	copy(courses, p.Courses)
	return Placement{Courses: courses, Credits: p.Credits}
}
