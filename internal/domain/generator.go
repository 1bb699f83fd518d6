package domain

import (
	"fmt"
	"sort"
)

type GenerateOptions struct {
	// StartYear is the academic year of the first (Fall) semester.
	StartYear                 int
	IncludeSummer             bool
	MaxSummerTerms            int
	MaxSemesters              int
	CoursesPerRegularSemester int
	CoursesPerSummerSemester  int
	// SummerTechCreditLimit excludes technical courses above this many credits from summers.
	SummerTechCreditLimit int
}

func DefaultGenerateOptions(startYear int) GenerateOptions {
	return GenerateOptions{
		StartYear:                 startYear,
		IncludeSummer:             false,
		MaxSummerTerms:            2,
		MaxSemesters:              12,
		CoursesPerRegularSemester: 3,
		CoursesPerSummerSemester:  2,
		SummerTechCreditLimit:     3,
	}
}

func (o GenerateOptions) Validate() error {
	if o.MaxSemesters <= 0 {
		return fmt.Errorf("max semesters must be positive")
	}
	if o.CoursesPerRegularSemester < 0 || o.CoursesPerSummerSemester < 0 {
		return fmt.Errorf("courses per semester must not be negative")
	}
	if o.MaxSummerTerms < 0 {
		return fmt.Errorf("max summer terms must not be negative")
	}
	return nil
}

type UnmetKind string

const (
	UnmetAreaCredits   UnmetKind = "area-credits"
	UnmetRequired      UnmetKind = "required-course"
	UnmetFirstSemester UnmetKind = "first-semester-course"
	UnmetTotalCredits  UnmetKind = "total-credits"
)

type UnmetRequirement struct {
	Kind   UnmetKind
	Area   string
	Code   string
	Needed int
	Earned int
}

func (u UnmetRequirement) String() string {
	switch u.Kind {
	case UnmetAreaCredits:
		return fmt.Sprintf("%s: %d of %d credits", u.Area, u.Earned, u.Needed)
	case UnmetRequired:
		return fmt.Sprintf("%s: required course %s not scheduled", u.Area, u.Code)
	case UnmetFirstSemester:
		return fmt.Sprintf("first semester: %s could not be placed", u.Code)
	case UnmetTotalCredits:
		return fmt.Sprintf("total: %d of %d credits", u.Earned, u.Needed)
	default:
		return string(u.Kind)
	}
}

type GeneratedPlan struct {
	Ledger        *Ledger
	Unmet         []UnmetRequirement
	PlacedCredits int
}

// Generator assembles a multi-semester plan through the Validator.
type Generator struct {
	validator *Validator
}

func NewGenerator(validator *Validator) *Generator {
	return &Generator{validator: validator}
}

type candidate struct {
	course  Course
	rank    int
	catalog int
}

const (
	rankRequired = iota
	rankFoundation
	rankElective
)

type generation struct {
	reqs    Requirements
	opts    GenerateOptions
	catalog *Catalog
	ledger  *Ledger
	earned  []int
}

func (g *Generator) Generate(reqs Requirements, opts GenerateOptions) (GeneratedPlan, error) {
	if err := opts.Validate(); err != nil {
		return GeneratedPlan{}, err
	}

	catalog := g.validator.catalog
	if err := reqs.Validate(catalog); err != nil {
		return GeneratedPlan{}, err
	}
	areas := make([]DegreeArea, len(reqs.Areas))
	copy(areas, reqs.Areas)
	for i := range areas {
		areas[i].NormalizeCourses()
	}
	reqs.Areas = areas

	slots, err := SequenceCount(TermFall, opts.StartYear, opts.MaxSemesters)
	if err != nil {
		return GeneratedPlan{}, err
	}

	run := &generation{
		reqs:    reqs,
		opts:    opts,
		catalog: catalog,
		ledger:  NewLedger(slots),
		earned:  make([]int, len(reqs.Areas)),
	}

	var unmet []UnmetRequirement
	summersLeft := opts.MaxSummerTerms

	for position := 1; position <= opts.MaxSemesters; position++ {
		if reqs.TotalCredits > 0 && run.ledger.TotalCredits() >= reqs.TotalCredits {
			break
		}
		slot := run.ledger.slots[position-1]

		if position%3 == 0 {
			if !opts.IncludeSummer || summersLeft <= 0 {
				continue
			}
			run.fillSummer(g.validator, slot)
			summersLeft--
			continue
		}

		technicalQuota := opts.CoursesPerRegularSemester
		if position == 1 {
			for _, code := range reqs.FirstSemester {
				course, _ := catalog.Course(code)
				if run.place(g.validator, course, slot) {
					technicalQuota--
					continue
				}
				unmet = append(unmet, UnmetRequirement{Kind: UnmetFirstSemester, Code: NormalizeCode(code)})
			}
		}

		run.fillRegular(g.validator, slot, technicalQuota)
	}

	unmet = append(unmet, run.residuals()...)

	return GeneratedPlan{
		Ledger:        run.ledger,
		Unmet:         unmet,
		PlacedCredits: run.ledger.TotalCredits(),
	}, nil
}

func (r *generation) fillRegular(validator *Validator, slot SemesterSlot, technicalQuota int) {
	perSemester := r.opts.CoursesPerRegularSemester
	r.fill(validator, slot, technicalQuota, func(c candidate, kind AreaKind) bool {
		return kind.Technical()
	})
	r.fill(validator, slot, perSemester, func(c candidate, kind AreaKind) bool {
		return kind == AreaGeneral
	})
}

func (r *generation) fillSummer(validator *Validator, slot SemesterSlot) {
	limit := r.opts.SummerTechCreditLimit
	placed := r.fill(validator, slot, r.opts.CoursesPerSummerSemester, func(c candidate, kind AreaKind) bool {
		return kind == AreaGeneral
	})
	r.fill(validator, slot, r.opts.CoursesPerSummerSemester-placed, func(c candidate, kind AreaKind) bool {
		return kind.Technical() && c.course.Credits <= limit
	})
}

// fill re-ranks after each placement.
func (r *generation) fill(validator *Validator, slot SemesterSlot, quota int, filter func(candidate, AreaKind) bool) int {
	placed := 0
	for placed < quota {
		progress := false
		for _, c := range r.candidates(filter) {
			if r.place(validator, c.course, slot) {
				placed++
				progress = true
				break
			}
		}
		if !progress {
			break
		}
	}
	return placed
}

func (r *generation) place(validator *Validator, course Course, slot SemesterSlot) bool {
	if _, err := validator.Place(course.Code, slot.Name, r.ledger); err != nil {
		return false
	}
	for i, area := range r.reqs.Areas {
		if area.Contains(course.Code) {
			r.earned[i] += course.Credits
		}
	}
	return true
}

// candidates ranks untaken courses: required entries first, then foundation
// areas, then electives of areas still under their minimum. Ties fall back to
// catalog order.
func (r *generation) candidates(filter func(candidate, AreaKind) bool) []candidate {
	best := map[string]candidate{}
	taken := r.ledger.PlacedCodes()

	for i, area := range r.reqs.Areas {
		for _, code := range area.Courses {
			if taken.Has(code) {
				continue
			}
			course, ok := r.catalog.Course(code)
			if !ok {
				continue
			}

			rank := -1
			switch {
			case area.IsRequired(code):
				rank = rankRequired
			case area.Foundation:
				rank = rankFoundation
			case r.earned[i] < area.MinCredits:
				rank = rankElective
			}
			if rank < 0 {
				continue
			}

			c := candidate{course: course, rank: rank, catalog: r.catalog.Index(code)}
			if !filter(c, area.Kind) {
				continue
			}
			if existing, ok := best[course.Code]; ok && existing.rank <= rank {
				continue
			}
			best[course.Code] = c
		}
	}

	out := make([]candidate, 0, len(best))
	for _, c := range best {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].rank != out[j].rank {
			return out[i].rank < out[j].rank
		}
		return out[i].catalog < out[j].catalog
	})
	return out
}

func (r *generation) residuals() []UnmetRequirement {
	var unmet []UnmetRequirement
	taken := r.ledger.PlacedCodes()

	for i, area := range r.reqs.Areas {
		for _, code := range area.Required {
			if !taken.Has(code) {
				unmet = append(unmet, UnmetRequirement{Kind: UnmetRequired, Area: area.Name, Code: code})
			}
		}
		if r.earned[i] < area.MinCredits {
			unmet = append(unmet, UnmetRequirement{
				Kind:   UnmetAreaCredits,
				Area:   area.Name,
				Needed: area.MinCredits,
				Earned: r.earned[i],
			})
		}
	}

	if total := r.ledger.TotalCredits(); total < r.reqs.TotalCredits {
		unmet = append(unmet, UnmetRequirement{Kind: UnmetTotalCredits, Needed: r.reqs.TotalCredits, Earned: total})
	}

	return unmet
}
